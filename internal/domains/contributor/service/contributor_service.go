package service

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"mozfest-backend/internal/domains/contributor/model"
	"mozfest-backend/internal/domains/contributor/repository"
	"mozfest-backend/internal/infrastructure/storage"
)

const (
	mosaicFolder     = "mosaics"
	screenshotFolder = "screenshots"
)

type contributorService struct {
	repo     repository.Repository
	uploader storage.Uploader
}

func NewContributorService(repo repository.Repository, uploader storage.Uploader) Service {
	return &contributorService{
		repo:     repo,
		uploader: uploader,
	}
}

// Create runs the upload-then-persist workflow: validate, upload the
// mosaic, upload the screenshot, insert the row. Validation happens
// before the first upload so malformed requests never touch the
// gateway, and a failed upload means no row is written.
func (s *contributorService) Create(ctx context.Context, req *model.CreateContributorRequest, mosaic, screenshot []byte) (*model.Contributor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	mosaicURL, _, err := s.uploader.Upload(ctx, mosaic, mosaicFolder)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUploadFailed, err)
	}

	screenshotURL, _, err := s.uploader.Upload(ctx, screenshot, screenshotFolder)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUploadFailed, err)
	}

	// The gateway must hand back absolute URLs; a malformed one means
	// the provider misbehaved, not the caller.
	for _, u := range []string{mosaicURL, screenshotURL} {
		if err := validation.Validate(u, validation.Required, is.URL); err != nil {
			return nil, fmt.Errorf("%w: gateway returned malformed url %q", model.ErrUploadFailed, u)
		}
	}

	contributor := &model.Contributor{
		Name:          req.Name,
		Country:       req.Country,
		SeriesID:      req.SeriesID,
		MosaicURL:     &mosaicURL,
		ScreenshotURL: &screenshotURL,
	}

	return s.repo.Create(ctx, contributor)
}

func (s *contributorService) GetByID(ctx context.Context, id int) (*model.Contributor, error) {
	if id <= 0 {
		return nil, model.ErrContributorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *contributorService) List(ctx context.Context) ([]model.Contributor, error) {
	return s.repo.List(ctx)
}
