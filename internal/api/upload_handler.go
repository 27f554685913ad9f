package api

import (
	"fmt"
	"net/http"

	"github.com/course-authoring-api/internal/config"
	"github.com/course-authoring-api/internal/models"
	"github.com/course-authoring-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UploadHandler handles markdown upload endpoints
type UploadHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "upload").Logger(),
	}
}

// Parse handles POST /v1/uploads
// Upload flow: raw markdown in, upload audit record + ParsedCourseData
// preview out. The upload id is returned even on failure so the audit
// record stays reachable.
func (h *UploadHandler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Markdown == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "markdown is required"})
		return
	}
	if int64(len(req.Markdown)) > h.cfg.Materialize.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("document too large, max size is %d bytes", h.cfg.Materialize.MaxUploadSize),
		})
		return
	}
	if req.StudentLanguage != "" && !models.ValidLanguages[req.StudentLanguage] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "student_language must be one of: en, ja, both"})
		return
	}

	uploadID, data, err := h.services.Generation.ParseMarkdown(ctx, &req)
	if err != nil {
		if uploadID != "" {
			c.Header("X-Upload-Id", uploadID)
		}
		respondPipelineError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upload_id": uploadID,
		"data":      data,
	})
}

// Get handles GET /v1/uploads/:upload_id
func (h *UploadHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	uploadID := c.Param("upload_id")

	upload, err := h.services.Upload.Get(ctx, uploadID)
	if err != nil {
		h.log.Error().Err(err).Str("upload_id", uploadID).Msg("Failed to get upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get upload"})
		return
	}
	if upload == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "upload not found"})
		return
	}

	c.JSON(http.StatusOK, upload)
}

// List handles GET /v1/uploads
func (h *UploadHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	uploads, err := h.services.Upload.List(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list uploads")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list uploads"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(uploads),
		"uploads": uploads,
	})
}
