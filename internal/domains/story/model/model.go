package model

import (
	"time"
)

// Story is a user story submission. The primary key is a UUID string
// generated by the service at creation time, not by the database.
// Create-only, immutable, no delete.
type Story struct {
	ID         string    `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Name       string    `json:"name" db:"name"`
	Occupation string    `json:"occupation" db:"occupation"`
	Story      string    `json:"story" db:"story"`
	ImageURL   string    `json:"image_url" db:"image_url"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
