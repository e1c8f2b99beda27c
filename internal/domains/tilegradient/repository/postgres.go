package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"mozfest-backend/internal/domains/tilegradient/model"
)

// pool abstracts the subset of pgxpool.Pool the repository uses for
// easier testing.
type pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepository struct {
	pool pool
}

func NewPostgresRepository(pool pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, t *model.TileGradient) (*model.TileGradient, error) {
	query := `
        INSERT INTO tile_gradients (from_color, to_color, border, glow)
        VALUES ($1, $2, $3, $4)
        RETURNING id, from_color, to_color, border, glow, created_at
    `

	var created model.TileGradient
	err := r.pool.QueryRow(
		ctx,
		query,
		t.FromColor,
		t.ToColor,
		t.Border,
		t.Glow,
	).Scan(
		&created.ID,
		&created.FromColor,
		&created.ToColor,
		&created.Border,
		&created.Glow,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tile gradient: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.TileGradient, error) {
	query := `
        SELECT id, from_color, to_color, border, glow, created_at
        FROM tile_gradients
        ORDER BY created_at DESC, id DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tile gradients: %w", err)
	}
	defer rows.Close()

	var gradients []model.TileGradient
	for rows.Next() {
		var t model.TileGradient
		if err := rows.Scan(
			&t.ID,
			&t.FromColor,
			&t.ToColor,
			&t.Border,
			&t.Glow,
			&t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tile gradient: %w", err)
		}
		gradients = append(gradients, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tile gradients: %w", err)
	}

	return gradients, nil
}
