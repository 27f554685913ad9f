package api

import (
	"errors"
	"net/http"

	"github.com/course-authoring-api/internal/generation"
	"github.com/course-authoring-api/internal/service"
	"github.com/course-authoring-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// respondPipelineError maps the pipeline error taxonomy onto HTTP responses.
// Each failure mode keeps a distinct machine-readable code so operators can
// tell "the model errored" apart from "the model's output didn't parse" apart
// from "the payload failed the shape check".
func respondPipelineError(c *gin.Context, log zerolog.Logger, err error) {
	var transportErr *generation.TransportError
	var emptyErr *generation.EmptyResponseError
	var malformedErr *generation.MalformedJSONError
	var truncatedErr *generation.TruncatedError
	var validationErr *validation.SchemaValidationError

	switch {
	case errors.As(err, &transportErr):
		log.Error().Int("status", transportErr.StatusCode).Str("body", transportErr.Body).Msg("Generation endpoint failed")
		c.JSON(http.StatusBadGateway, gin.H{
			"code":  "generation_failed",
			"error": "generation failed, please try again",
		})
	case errors.As(err, &emptyErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"code":  "generation_empty",
			"error": "the model returned no usable content",
		})
	case errors.As(err, &truncatedErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"code":  "generation_truncated",
			"error": err.Error(),
		})
	case errors.As(err, &malformedErr):
		log.Error().Err(malformedErr.Err).Str("text", malformedErr.Text).Msg("Generation output did not parse")
		c.JSON(http.StatusBadGateway, gin.H{
			"code":  "generation_malformed",
			"error": "the model's output could not be parsed",
		})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"code":   "validation_failed",
			"error":  validationErr.Error(),
			"errors": validationErr.Errors,
		})
	case errors.Is(err, service.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
	default:
		log.Error().Err(err).Msg("Pipeline request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
