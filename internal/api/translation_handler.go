package api

import (
	"net/http"

	"github.com/course-authoring-api/internal/models"
	"github.com/course-authoring-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TranslationHandler handles the admin-triggered translation pass
type TranslationHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewTranslationHandler creates a new TranslationHandler
func NewTranslationHandler(services *service.Services, log zerolog.Logger) *TranslationHandler {
	return &TranslationHandler{
		services: services,
		log:      log.With().Str("handler", "translation").Logger(),
	}
}

// Translate handles POST /v1/courses/:course_id/translate
// Runs the translation pass and returns the translated tree for review;
// nothing is persisted until the apply step
func (h *TranslationHandler) Translate(c *gin.Context) {
	ctx := c.Request.Context()
	courseID := c.Param("course_id")

	output, err := h.services.Translation.Translate(ctx, courseID)
	if err != nil {
		respondPipelineError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"course_id":   courseID,
		"translation": output,
	})
}

// Apply handles POST /v1/courses/:course_id/translation
// Persists a reviewed translation onto the matching records by id
func (h *TranslationHandler) Apply(c *gin.Context) {
	ctx := c.Request.Context()
	courseID := c.Param("course_id")

	var output models.TranslationOutput
	if err := c.ShouldBindJSON(&output); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.services.Translation.Apply(ctx, courseID, &output); err != nil {
		respondPipelineError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"course_id": courseID,
		"status":    "translated",
	})
}
