package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"thumbnail-backend/internal/middleware"
	"thumbnail-backend/internal/models"
	"thumbnail-backend/internal/supabase"
	"thumbnail-backend/internal/thumbnail"
)

const internalErrorMessage = "Internal Server Error"

// ThumbnailService is the orchestrator the handlers drive.
type ThumbnailService interface {
	Generate(ctx context.Context, userID uuid.UUID, req thumbnail.Request) (*models.Thumbnail, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*models.Thumbnail, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.Thumbnail, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type ThumbnailsHandler struct {
	service              ThumbnailService
	deleteReportsMissing bool
}

// NewThumbnailsHandler builds the handler. With deleteReportsMissing set, a
// delete that matched no owned record answers 404 instead of 200.
func NewThumbnailsHandler(service ThumbnailService, deleteReportsMissing bool) *ThumbnailsHandler {
	return &ThumbnailsHandler{
		service:              service,
		deleteReportsMissing: deleteReportsMissing,
	}
}

// GenerateThumbnail godoc
// @Summary     Generate a thumbnail
// @Description Validates the request, renders an image with the inference provider, uploads it and stores the record
// @Tags        thumbnails
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.GenerateThumbnailRequest true "Thumbnail parameters"
// @Success     200 {object} models.GenerateThumbnailResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /thumbnails [post]
func (h *ThumbnailsHandler) GenerateThumbnail(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "You are not logged in."})
		return
	}

	var req models.GenerateThumbnailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	th, err := h.service.Generate(c.Request.Context(), session.UserID, thumbnail.Request{
		Title:       req.Title,
		Style:       thumbnail.Style(req.Style),
		ColorScheme: thumbnail.ColorScheme(req.ColorScheme),
		UserPrompt:  req.Prompt,
		AspectRatio: req.AspectRatio,
		TextOverlay: req.TextOverlay,
	})
	if err != nil {
		var verr *thumbnail.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: verr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, models.GenerateThumbnailResponse{
		Message:   "Thumbnail generated successfully",
		Thumbnail: models.NewThumbnailResponse(th),
	})
}

// ListThumbnails godoc
// @Summary     List thumbnails
// @Description Returns the caller's thumbnails, newest first
// @Tags        thumbnails
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ThumbnailListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /thumbnails [get]
func (h *ThumbnailsHandler) ListThumbnails(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "You are not logged in."})
		return
	}

	thumbnails, err := h.service.List(c.Request.Context(), session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list thumbnails",
			Message: err.Error(),
		})
		return
	}

	resp := models.ThumbnailListResponse{Thumbnails: make([]models.ThumbnailResponse, len(thumbnails))}
	for i := range thumbnails {
		resp.Thumbnails[i] = models.NewThumbnailResponse(&thumbnails[i])
	}
	c.JSON(http.StatusOK, resp)
}

// GetThumbnail godoc
// @Summary     Get a thumbnail
// @Tags        thumbnails
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Thumbnail ID"
// @Success     200 {object} models.ThumbnailResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /thumbnails/{id} [get]
func (h *ThumbnailsHandler) GetThumbnail(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "You are not logged in."})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid thumbnail id", Message: err.Error()})
		return
	}

	th, err := h.service.Get(c.Request.Context(), id, session.UserID)
	if errors.Is(err, supabase.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Thumbnail not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, models.NewThumbnailResponse(th))
}

// DeleteThumbnail godoc
// @Summary     Delete a thumbnail
// @Description Removes the record when the caller owns it. Absent and foreign ids answer 200 unless DELETE_REPORTS_MISSING is set
// @Tags        thumbnails
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Thumbnail ID"
// @Success     200 {object} models.MessageResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /thumbnails/{id} [delete]
func (h *ThumbnailsHandler) DeleteThumbnail(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "You are not logged in."})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid thumbnail id", Message: err.Error()})
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id, session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: errorMessage(err)})
		return
	}
	if !deleted && h.deleteReportsMissing {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Thumbnail not found"})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Thumbnail deleted successfully"})
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return internalErrorMessage
}
