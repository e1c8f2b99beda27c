package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"mozfest-backend/internal/domains/story/model"
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

func (r *postgresRepository) Create(ctx context.Context, s *model.Story) (*model.Story, error) {
	query := `
        INSERT INTO stories (id, title, name, occupation, story, image_url)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, title, name, occupation, story, image_url, created_at
    `

	var created model.Story
	err := r.pool.QueryRow(
		ctx,
		query,
		s.ID,
		s.Title,
		s.Name,
		s.Occupation,
		s.Story,
		s.ImageURL,
	).Scan(
		&created.ID,
		&created.Title,
		&created.Name,
		&created.Occupation,
		&created.Story,
		&created.ImageURL,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create story: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Story, error) {
	query := `
        SELECT id, title, name, occupation, story, image_url, created_at
        FROM stories
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stories: %w", err)
	}
	defer rows.Close()

	var stories []model.Story
	for rows.Next() {
		var s model.Story
		if err := rows.Scan(
			&s.ID,
			&s.Title,
			&s.Name,
			&s.Occupation,
			&s.Story,
			&s.ImageURL,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan story: %w", err)
		}
		stories = append(stories, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stories: %w", err)
	}

	return stories, nil
}
