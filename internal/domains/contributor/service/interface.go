package service

import (
	"context"

	"mozfest-backend/internal/domains/contributor/model"
)

type Service interface {
	// Create validates the request, uploads both images and persists
	// the row. Either upload failing aborts the whole operation; no
	// row is written unless both uploads succeeded.
	Create(ctx context.Context, req *model.CreateContributorRequest, mosaic, screenshot []byte) (*model.Contributor, error)
	GetByID(ctx context.Context, id int) (*model.Contributor, error)
	List(ctx context.Context) ([]model.Contributor, error)
}
