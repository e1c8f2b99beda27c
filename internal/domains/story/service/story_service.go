package service

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"mozfest-backend/internal/domains/story/model"
	"mozfest-backend/internal/domains/story/repository"
	"mozfest-backend/internal/infrastructure/storage"
)

const storyFolder = "stories"

type storyService struct {
	repo     repository.Repository
	uploader storage.Uploader
}

func NewStoryService(repo repository.Repository, uploader storage.Uploader) Service {
	return &storyService{
		repo:     repo,
		uploader: uploader,
	}
}

func (s *storyService) Create(ctx context.Context, req *model.CreateStoryRequest, image []byte) (*model.Story, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	imageURL, _, err := s.uploader.Upload(ctx, image, storyFolder)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUploadFailed, err)
	}

	if err := validation.Validate(imageURL, validation.Required, is.URL); err != nil {
		return nil, fmt.Errorf("%w: gateway returned malformed url %q", model.ErrUploadFailed, imageURL)
	}

	story := &model.Story{
		ID:         uuid.NewString(),
		Title:      req.Title,
		Name:       req.Name,
		Occupation: req.Occupation,
		Story:      req.Story,
		ImageURL:   imageURL,
	}

	return s.repo.Create(ctx, story)
}

func (s *storyService) List(ctx context.Context) ([]model.Story, error) {
	return s.repo.List(ctx)
}
