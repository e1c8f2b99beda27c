package service

import (
	"context"

	"mozfest-backend/internal/domains/story/model"
)

type Service interface {
	// Create validates the request, uploads the image, generates the
	// story id and persists the row. Upload failure aborts with no row
	// written.
	Create(ctx context.Context, req *model.CreateStoryRequest, image []byte) (*model.Story, error)
	List(ctx context.Context) ([]model.Story, error)
}
