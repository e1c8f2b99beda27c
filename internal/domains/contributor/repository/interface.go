package repository

import (
	"context"

	"mozfest-backend/internal/domains/contributor/model"
)

// Repository is the contributor data access contract. Create-only:
// no update or delete is exposed anywhere in the system.
type Repository interface {
	Create(ctx context.Context, c *model.Contributor) (*model.Contributor, error)
	GetByID(ctx context.Context, id int) (*model.Contributor, error)
	// List returns all contributors, newest first.
	List(ctx context.Context) ([]model.Contributor, error)
}
