package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"mozfest-backend/internal/domains/tilegradient/model"
	"mozfest-backend/internal/domains/tilegradient/service"
	"mozfest-backend/internal/shared/response"
)

type TileGradientHandler struct {
	service service.Service
}

func NewTileGradientHandler(svc service.Service) *TileGradientHandler {
	return &TileGradientHandler{service: svc}
}

// Create - POST /api/mock/tile_gradients
// JSON body with wire names: {"from": ..., "to": ..., "border": ..., "glow": ...}
func (h *TileGradientHandler) Create(c *gin.Context) {
	var req model.CreateTileGradientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	gradient, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gradient.ToResponse())
}

// List - GET /api/mock/tile_gradients (newest first, aliased out)
func (h *TileGradientHandler) List(c *gin.Context) {
	gradients, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	views := make([]*model.TileGradientResponse, 0, len(gradients))
	for i := range gradients {
		views = append(views, gradients[i].ToResponse())
	}

	response.Success(c, http.StatusOK, views)
}

func (h *TileGradientHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.UnprocessableEntity(c, "invalid tile gradient payload", vErrs)
		return
	}
	response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
}
