package model

import (
	"time"
)

// Contributor is a mosaic submission. Rows are created once, never
// updated, never deleted. MosaicURL and ScreenshotURL are set only
// after both uploads succeed; a row never exists with partial uploads.
type Contributor struct {
	ID            int       `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Country       string    `json:"country" db:"country"`
	SeriesID      *string   `json:"series_id" db:"series_id"`
	MosaicURL     *string   `json:"mosaic_url" db:"mosaic_url"`
	ScreenshotURL *string   `json:"screenshot_url" db:"screenshot_url"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
