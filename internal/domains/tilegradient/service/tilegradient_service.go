package service

import (
	"context"

	"mozfest-backend/internal/domains/tilegradient/model"
	"mozfest-backend/internal/domains/tilegradient/repository"
)

type tileGradientService struct {
	repo repository.Repository
}

func NewTileGradientService(repo repository.Repository) Service {
	return &tileGradientService{repo: repo}
}

func (s *tileGradientService) Create(ctx context.Context, req *model.CreateTileGradientRequest) (*model.TileGradient, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req.ToEntity())
}

func (s *tileGradientService) List(ctx context.Context) ([]model.TileGradient, error) {
	return s.repo.List(ctx)
}
