package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mozfest-backend/internal/domains/contributor/model"
)

type fakeService struct {
	createCalls int
	created     *model.Contributor
	rows        []model.Contributor
}

func (f *fakeService) Create(_ context.Context, req *model.CreateContributorRequest, _, _ []byte) (*model.Contributor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	f.createCalls++
	return f.created, nil
}

func (f *fakeService) GetByID(_ context.Context, id int) (*model.Contributor, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i], nil
		}
	}
	return nil, model.ErrContributorNotFound
}

func (f *fakeService) List(_ context.Context) ([]model.Contributor, error) {
	return f.rows, nil
}

func setupRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewContributorHandler(svc)

	r := gin.New()
	r.POST("/contributors/", h.Create)
	r.GET("/contributors/:id", h.GetByID)
	r.GET("/api/mock/contributors", h.ListBasic)
	r.GET("/api/mock/contributors/:id", h.GetBasicByID)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for name, data := range files {
		fw, err := w.CreateFormFile(name, name+".jpg")
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func strPtr(s string) *string { return &s }

func TestCreateContributorSuccess(t *testing.T) {
	svc := &fakeService{created: &model.Contributor{
		ID:            1,
		Name:          "Ada",
		Country:       "UK",
		MosaicURL:     strPtr("https://img.example.com/mosaics/a.jpg"),
		ScreenshotURL: strPtr("https://img.example.com/screenshots/a.jpg"),
		CreatedAt:     time.Now(),
	}}
	r := setupRouter(svc)

	body, contentType := multipartBody(t,
		map[string]string{"name": "Ada", "country": "UK"},
		map[string][]byte{"mosaic": []byte("m"), "screenshot": []byte("s")},
	)

	req := httptest.NewRequest(http.MethodPost, "/contributors/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                       `json:"success"`
		Data    *model.ContributorResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Ada", resp.Data.Name)
	require.NotNil(t, resp.Data.MosaicURL)
}

func TestCreateContributorEmptyNameIs422(t *testing.T) {
	svc := &fakeService{}
	r := setupRouter(svc)

	body, contentType := multipartBody(t,
		map[string]string{"name": "", "country": "UK"},
		map[string][]byte{"mosaic": []byte("m"), "screenshot": []byte("s")},
	)

	req := httptest.NewRequest(http.MethodPost, "/contributors/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, svc.createCalls)
}

func TestCreateContributorMissingMosaicIs422(t *testing.T) {
	svc := &fakeService{}
	r := setupRouter(svc)

	body, contentType := multipartBody(t,
		map[string]string{"name": "Ada", "country": "UK"},
		map[string][]byte{"screenshot": []byte("s")},
	)

	req := httptest.NewRequest(http.MethodPost, "/contributors/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, svc.createCalls)
}

func TestGetContributorMissingIs404(t *testing.T) {
	r := setupRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/contributors/999999", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "CONTRIBUTOR_NOT_FOUND", resp.Error.Code)
}

func TestListBasicOmitsScreenshotAndCreatedAt(t *testing.T) {
	svc := &fakeService{rows: []model.Contributor{{
		ID:            2,
		Name:          "B",
		Country:       "DE",
		ScreenshotURL: strPtr("https://img.example.com/screenshots/b.jpg"),
		CreatedAt:     time.Now(),
	}, {
		ID:        1,
		Name:      "A",
		Country:   "UK",
		CreatedAt: time.Now().Add(-time.Minute),
	}}}
	r := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/mock/contributors", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	// Service order is preserved: newest first.
	assert.EqualValues(t, 2, resp.Data[0]["id"])
	assert.NotContains(t, resp.Data[0], "screenshot_url")
	assert.NotContains(t, resp.Data[0], "created_at")
}
