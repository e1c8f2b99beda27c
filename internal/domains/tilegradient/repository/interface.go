package repository

import (
	"context"

	"mozfest-backend/internal/domains/tilegradient/model"
)

type Repository interface {
	Create(ctx context.Context, t *model.TileGradient) (*model.TileGradient, error)
	// List returns all tile gradients, newest first.
	List(ctx context.Context) ([]model.TileGradient, error)
}
