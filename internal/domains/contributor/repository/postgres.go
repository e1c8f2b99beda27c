package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"mozfest-backend/internal/domains/contributor/model"
)

// pool abstracts the subset of pgxpool.Pool the repository uses for
// easier testing.
type pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// postgresRepository implements contributor.Repository on pgxpool.
type postgresRepository struct {
	pool pool
}

func NewPostgresRepository(pool pool) Repository {
	return &postgresRepository{pool: pool}
}

// Create inserts a new contributor; id and created_at are assigned by
// the database.
func (r *postgresRepository) Create(ctx context.Context, c *model.Contributor) (*model.Contributor, error) {
	query := `
        INSERT INTO contributors (name, country, series_id, mosaic_url, screenshot_url)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, name, country, series_id, mosaic_url, screenshot_url, created_at
    `

	var created model.Contributor
	err := r.pool.QueryRow(
		ctx,
		query,
		c.Name,
		c.Country,
		c.SeriesID,
		c.MosaicURL,
		c.ScreenshotURL,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Country,
		&created.SeriesID,
		&created.MosaicURL,
		&created.ScreenshotURL,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create contributor: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*model.Contributor, error) {
	query := `
        SELECT id, name, country, series_id, mosaic_url, screenshot_url, created_at
        FROM contributors
        WHERE id = $1
    `

	var c model.Contributor
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Country,
		&c.SeriesID,
		&c.MosaicURL,
		&c.ScreenshotURL,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrContributorNotFound
		}
		return nil, fmt.Errorf("failed to get contributor by id: %w", err)
	}

	return &c, nil
}

// List returns contributors newest first. The serial id breaks ties
// when two rows share a created_at timestamp.
func (r *postgresRepository) List(ctx context.Context) ([]model.Contributor, error) {
	query := `
        SELECT id, name, country, series_id, mosaic_url, screenshot_url, created_at
        FROM contributors
        ORDER BY created_at DESC, id DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contributors: %w", err)
	}
	defer rows.Close()

	var contributors []model.Contributor
	for rows.Next() {
		var c model.Contributor
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Country,
			&c.SeriesID,
			&c.MosaicURL,
			&c.ScreenshotURL,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contributor: %w", err)
		}
		contributors = append(contributors, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contributors: %w", err)
	}

	return contributors, nil
}
