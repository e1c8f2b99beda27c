package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"mozfest-backend/internal/domains/story/model"
	"mozfest-backend/internal/domains/story/service"
	"mozfest-backend/internal/shared/response"
	"mozfest-backend/internal/shared/utils"
)

type StoryHandler struct {
	service service.Service
}

func NewStoryHandler(svc service.Service) *StoryHandler {
	return &StoryHandler{service: svc}
}

// Create - POST /api/mock/stories
// Multipart form: title, name, occupation, story, image (file).
func (h *StoryHandler) Create(c *gin.Context) {
	var req model.CreateStoryRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "invalid story payload", err)
		return
	}

	image, err := utils.ReadFormFile(c, "image")
	if err != nil {
		response.UnprocessableEntity(c, "image is required", err.Error())
		return
	}

	story, err := h.service.Create(c.Request.Context(), &req, image)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, story.ToResponse())
}

// List - GET /api/mock/stories (newest first)
func (h *StoryHandler) List(c *gin.Context) {
	stories, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	views := make([]*model.StoryResponse, 0, len(stories))
	for i := range stories {
		views = append(views, stories[i].ToResponse())
	}

	response.Success(c, http.StatusOK, views)
}

func (h *StoryHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.UnprocessableEntity(c, "invalid story payload", vErrs)
		return
	}
	response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
}
