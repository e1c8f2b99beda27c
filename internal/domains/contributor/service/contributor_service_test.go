package service

import (
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mozfest-backend/internal/domains/contributor/model"
)

type fakeUploader struct {
	calls []string
	fail  map[string]error
}

func (f *fakeUploader) Upload(_ context.Context, _ []byte, folder string) (string, string, error) {
	f.calls = append(f.calls, folder)
	if err := f.fail[folder]; err != nil {
		return "", "", err
	}
	return "https://img.example.com/" + folder + "/object.jpg", folder + "/object.jpg", nil
}

type fakeRepo struct {
	created []*model.Contributor
	rows    []model.Contributor
}

func (f *fakeRepo) Create(_ context.Context, c *model.Contributor) (*model.Contributor, error) {
	stored := *c
	stored.ID = len(f.created) + 1
	stored.CreatedAt = time.Now()
	f.created = append(f.created, &stored)
	return &stored, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int) (*model.Contributor, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i], nil
		}
	}
	return nil, model.ErrContributorNotFound
}

func (f *fakeRepo) List(_ context.Context) ([]model.Contributor, error) {
	return f.rows, nil
}

func TestCreateUploadsBothImagesThenPersists(t *testing.T) {
	repo := &fakeRepo{}
	uploader := &fakeUploader{}
	svc := NewContributorService(repo, uploader)

	req := &model.CreateContributorRequest{Name: "Ada", Country: "UK"}
	created, err := svc.Create(context.Background(), req, []byte("mosaic"), []byte("screenshot"))

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, []string{"mosaics", "screenshots"}, uploader.calls)
	require.NotNil(t, created.MosaicURL)
	require.NotNil(t, created.ScreenshotURL)
	assert.Contains(t, *created.MosaicURL, "mosaics/")
	assert.Contains(t, *created.ScreenshotURL, "screenshots/")
	assert.Len(t, repo.created, 1)
}

func TestCreateEmptyNameRejectedBeforeAnyUpload(t *testing.T) {
	repo := &fakeRepo{}
	uploader := &fakeUploader{}
	svc := NewContributorService(repo, uploader)

	req := &model.CreateContributorRequest{Name: "", Country: "UK"}
	_, err := svc.Create(context.Background(), req, []byte("mosaic"), []byte("screenshot"))

	require.Error(t, err)
	var vErrs validation.Errors
	assert.ErrorAs(t, err, &vErrs)
	assert.Empty(t, uploader.calls, "validation failure must not trigger uploads")
	assert.Empty(t, repo.created)
}

func TestCreateMosaicUploadFailureWritesNoRow(t *testing.T) {
	repo := &fakeRepo{}
	uploader := &fakeUploader{fail: map[string]error{"mosaics": errors.New("gateway down")}}
	svc := NewContributorService(repo, uploader)

	req := &model.CreateContributorRequest{Name: "Ada", Country: "UK"}
	_, err := svc.Create(context.Background(), req, []byte("mosaic"), []byte("screenshot"))

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUploadFailed)
	assert.Contains(t, err.Error(), "gateway down")
	assert.Equal(t, []string{"mosaics"}, uploader.calls, "screenshot upload must not be attempted")
	assert.Empty(t, repo.created)
}

func TestCreateScreenshotUploadFailureWritesNoRow(t *testing.T) {
	repo := &fakeRepo{}
	uploader := &fakeUploader{fail: map[string]error{"screenshots": errors.New("gateway down")}}
	svc := NewContributorService(repo, uploader)

	req := &model.CreateContributorRequest{Name: "Ada", Country: "UK"}
	_, err := svc.Create(context.Background(), req, []byte("mosaic"), []byte("screenshot"))

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUploadFailed)
	assert.Empty(t, repo.created)
}

func TestGetByIDMissingReturnsNotFound(t *testing.T) {
	svc := NewContributorService(&fakeRepo{}, &fakeUploader{})

	_, err := svc.GetByID(context.Background(), 999999)
	assert.ErrorIs(t, err, model.ErrContributorNotFound)

	_, err = svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, model.ErrContributorNotFound)
}
