package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateStoryRequest - POST /api/mock/stories (multipart form fields;
// the image file rides alongside in the same form).
type CreateStoryRequest struct {
	Title      string `form:"title"`
	Name       string `form:"name"`
	Occupation string `form:"occupation"`
	Story      string `form:"story"`
}

func (r CreateStoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Occupation,
			validation.Required.Error("occupation is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Story,
			validation.Required.Error("story is required"),
		),
	)
}

type StoryResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Name       string    `json:"name"`
	Occupation string    `json:"occupation"`
	Story      string    `json:"story"`
	ImageURL   string    `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s *Story) ToResponse() *StoryResponse {
	return &StoryResponse{
		ID:         s.ID,
		Title:      s.Title,
		Name:       s.Name,
		Occupation: s.Occupation,
		Story:      s.Story,
		ImageURL:   s.ImageURL,
		CreatedAt:  s.CreatedAt,
	}
}
