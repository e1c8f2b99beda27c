package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mozfest-backend/internal/domains/tilegradient/model"
)

type fakeService struct {
	rows []model.TileGradient
}

func (f *fakeService) Create(_ context.Context, req *model.CreateTileGradientRequest) (*model.TileGradient, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	entity := req.ToEntity()
	entity.ID = len(f.rows) + 1
	entity.CreatedAt = time.Now()
	// prepend: newest first
	f.rows = append([]model.TileGradient{*entity}, f.rows...)
	return entity, nil
}

func (f *fakeService) List(_ context.Context) ([]model.TileGradient, error) {
	return f.rows, nil
}

func setupRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTileGradientHandler(svc)

	r := gin.New()
	r.POST("/api/mock/tile_gradients", h.Create)
	r.GET("/api/mock/tile_gradients", h.List)
	return r
}

func TestCreateThenListRoundTripsAliases(t *testing.T) {
	r := setupRouter(&fakeService{})

	payload := `{"from":"red","to":"blue","border":"solid","glow":"on"}`
	req := httptest.NewRequest(http.MethodPost, "/api/mock/tile_gradients", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	listReq := httptest.NewRequest(http.MethodGet, "/api/mock/tile_gradients", nil)
	listRec := httptest.NewRecorder()
	r.ServeHTTP(listRec, listReq)

	require.Equal(t, http.StatusOK, listRec.Code)

	var resp struct {
		Data []map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "red", resp.Data[0]["from"])
	assert.Equal(t, "blue", resp.Data[0]["to"])
	assert.Equal(t, "solid", resp.Data[0]["border"])
	assert.Equal(t, "on", resp.Data[0]["glow"])
	assert.NotContains(t, resp.Data[0], "from_color")
	assert.NotContains(t, resp.Data[0], "to_color")
}

func TestCreateMissingFieldIs422(t *testing.T) {
	r := setupRouter(&fakeService{})

	payload := `{"from":"red","border":"solid","glow":"on"}`
	req := httptest.NewRequest(http.MethodPost, "/api/mock/tile_gradients", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListNewestFirst(t *testing.T) {
	svc := &fakeService{}
	r := setupRouter(svc)

	for _, from := range []string{"a", "b"} {
		payload, _ := json.Marshal(map[string]string{"from": from, "to": "x", "border": "s", "glow": "g"})
		req := httptest.NewRequest(http.MethodPost, "/api/mock/tile_gradients", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	listReq := httptest.NewRequest(http.MethodGet, "/api/mock/tile_gradients", nil)
	listRec := httptest.NewRecorder()
	r.ServeHTTP(listRec, listReq)

	var resp struct {
		Data []map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "b", resp.Data[0]["from"])
	assert.Equal(t, "a", resp.Data[1]["from"])
}
