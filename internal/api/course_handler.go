package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/course-authoring-api/internal/config"
	"github.com/course-authoring-api/internal/models"
	"github.com/course-authoring-api/internal/service"
	"github.com/course-authoring-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CourseHandler handles course creation and admin endpoints
type CourseHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "course").Logger(),
	}
}

// Generate handles POST /v1/courses/generate
// Wizard flow: form parameters in, ParsedCourseData preview out
func (h *CourseHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var params models.WizardParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if params.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}
	if params.StudentLanguage == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "student_language is required (en, ja, both)"})
		return
	}
	if !models.ValidLanguages[params.StudentLanguage] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "student_language must be one of: en, ja, both"})
		return
	}
	if params.TotalWeeks <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total_weeks must be positive"})
		return
	}

	data, err := h.services.Generation.GenerateFromWizard(ctx, params)
	if err != nil {
		respondPipelineError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Confirm handles POST /v1/courses
// Confirm step: the (possibly user-edited) preview data is re-validated and
// materialized into a persisted course tree
func (h *CourseHandler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// The preview step may have edited the data, so it gets the same shape
	// check the raw generation output got
	encoded, err := json.Marshal(req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course data"})
		return
	}
	validated, err := validation.ValidateParsedCourse(encoded)
	if err != nil {
		respondPipelineError(c, h.log, err)
		return
	}

	var startDate *time.Time
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
			return
		}
		startDate = &parsed
	}

	result, err := h.services.Materializer.Materialize(ctx, validated, req.UploadID, startDate)
	if err != nil {
		respondPipelineError(c, h.log, err)
		return
	}

	h.log.Info().
		Str("course_id", result.CourseID).
		Str("slug", result.Slug).
		Int("skipped_weeks", len(result.SkippedWeeks)).
		Msg("Course confirmed")

	c.JSON(http.StatusCreated, result)
}

// Get handles GET /v1/courses/:course_id
func (h *CourseHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	courseID := c.Param("course_id")

	course, err := h.services.Course.Get(ctx, courseID)
	if err != nil {
		h.log.Error().Err(err).Str("course_id", courseID).Msg("Failed to get course")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get course"})
		return
	}
	if course == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}

	c.JSON(http.StatusOK, course)
}

// List handles GET /v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	status := c.Query("status")
	if status != "" && !models.ValidCourseStatuses[status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
		return
	}

	courses, err := h.services.Course.List(ctx, status)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list courses")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list courses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(courses),
		"courses": courses,
	})
}

// Archive handles POST /v1/courses/:course_id/archive
func (h *CourseHandler) Archive(c *gin.Context) {
	ctx := c.Request.Context()
	courseID := c.Param("course_id")

	if err := h.services.Course.Archive(ctx, courseID); err != nil {
		respondPipelineError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"course_id": courseID,
		"status":    models.CourseStatusArchived,
	})
}
