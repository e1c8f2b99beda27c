package repository

import (
	"context"

	"mozfest-backend/internal/domains/story/model"
)

// Repository is the story data access contract. The caller supplies
// the pre-generated string id; the store never assigns one.
type Repository interface {
	Create(ctx context.Context, s *model.Story) (*model.Story, error)
	// List returns all stories, newest first.
	List(ctx context.Context) ([]model.Story, error)
}
