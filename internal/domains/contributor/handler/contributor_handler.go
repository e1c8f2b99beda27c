package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"mozfest-backend/internal/domains/contributor/model"
	"mozfest-backend/internal/domains/contributor/service"
	"mozfest-backend/internal/shared/response"
	"mozfest-backend/internal/shared/utils"
)

type ContributorHandler struct {
	service service.Service
}

func NewContributorHandler(svc service.Service) *ContributorHandler {
	return &ContributorHandler{service: svc}
}

// Create - POST /contributors/
// Multipart form: name, country, series_id?, mosaic (file), screenshot (file).
func (h *ContributorHandler) Create(c *gin.Context) {
	var req model.CreateContributorRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Field validation first, so a malformed request never reads the
	// files or touches the upload gateway.
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "invalid contributor payload", err)
		return
	}

	mosaic, err := utils.ReadFormFile(c, "mosaic")
	if err != nil {
		response.UnprocessableEntity(c, "mosaic image is required", err.Error())
		return
	}

	screenshot, err := utils.ReadFormFile(c, "screenshot")
	if err != nil {
		response.UnprocessableEntity(c, "screenshot image is required", err.Error())
		return
	}

	contributor, err := h.service.Create(c.Request.Context(), &req, mosaic, screenshot)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, contributor.ToResponse())
}

// GetByID - GET /contributors/:id (full projection)
func (h *ContributorHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "contributor id must be an integer")
		return
	}

	contributor, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, contributor.ToResponse())
}

// GetBasicByID - GET /api/mock/contributors/:id (basic projection)
func (h *ContributorHandler) GetBasicByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "contributor id must be an integer")
		return
	}

	contributor, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, contributor.ToBasicResponse())
}

// ListBasic - GET /api/mock/contributors (basic projection, newest first)
func (h *ContributorHandler) ListBasic(c *gin.Context) {
	contributors, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	views := make([]*model.ContributorBasicResponse, 0, len(contributors))
	for i := range contributors {
		views = append(views, contributors[i].ToBasicResponse())
	}

	response.Success(c, http.StatusOK, views)
}

func (h *ContributorHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.UnprocessableEntity(c, "invalid contributor payload", vErrs)
		return
	}
	response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
}
