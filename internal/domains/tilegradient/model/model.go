package model

import (
	"time"
)

// TileGradient stores a UI tile color scheme. Storage column names are
// from_color/to_color; the wire format renames them to from/to (see
// dto.go). Create-only, immutable, no delete.
type TileGradient struct {
	ID        int       `json:"id" db:"id"`
	FromColor string    `json:"from_color" db:"from_color"`
	ToColor   string    `json:"to_color" db:"to_color"`
	Border    string    `json:"border" db:"border"`
	Glow      string    `json:"glow" db:"glow"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
