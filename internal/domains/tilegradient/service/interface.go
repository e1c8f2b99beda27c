package service

import (
	"context"

	"mozfest-backend/internal/domains/tilegradient/model"
)

type Service interface {
	Create(ctx context.Context, req *model.CreateTileGradientRequest) (*model.TileGradient, error)
	List(ctx context.Context) ([]model.TileGradient, error)
}
