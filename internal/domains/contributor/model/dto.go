package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateContributorRequest - POST /contributors/ (multipart form fields;
// the mosaic and screenshot files ride alongside in the same form).
type CreateContributorRequest struct {
	Name     string  `form:"name"`
	Country  string  `form:"country"`
	SeriesID *string `form:"series_id"`
}

func (r CreateContributorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Country,
			validation.Required.Error("country is required"),
			validation.Length(1, 255),
		),
	)
}

// ContributorResponse is the full projection, returned by the create
// and single-item endpoints.
type ContributorResponse struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Country       string    `json:"country"`
	SeriesID      *string   `json:"series_id"`
	MosaicURL     *string   `json:"mosaic_url"`
	ScreenshotURL *string   `json:"screenshot_url"`
	CreatedAt     time.Time `json:"created_at"`
}

// ContributorBasicResponse is the listing projection. It must never
// leak screenshot_url or created_at even when the row has them.
type ContributorBasicResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	SeriesID  *string `json:"series_id"`
	MosaicURL *string `json:"mosaic_url"`
}

func (c *Contributor) ToResponse() *ContributorResponse {
	return &ContributorResponse{
		ID:            c.ID,
		Name:          c.Name,
		Country:       c.Country,
		SeriesID:      c.SeriesID,
		MosaicURL:     c.MosaicURL,
		ScreenshotURL: c.ScreenshotURL,
		CreatedAt:     c.CreatedAt,
	}
}

func (c *Contributor) ToBasicResponse() *ContributorBasicResponse {
	return &ContributorBasicResponse{
		ID:        c.ID,
		Name:      c.Name,
		Country:   c.Country,
		SeriesID:  c.SeriesID,
		MosaicURL: c.MosaicURL,
	}
}
