package service

import (
	"context"
	"errors"
	"time"

	"github.com/course-authoring-api/internal/config"
	"github.com/course-authoring-api/internal/generation"
	"github.com/course-authoring-api/internal/models"
	"github.com/course-authoring-api/internal/repository"
	"github.com/rs/zerolog"
)

// ErrCourseNotFound is returned when a referenced course does not exist
var ErrCourseNotFound = errors.New("course not found")

// GenerationService defines the interface for the two creation flows that
// produce ParsedCourseData for the preview step
type GenerationService interface {
	GenerateFromWizard(ctx context.Context, params models.WizardParams) (*models.ParsedCourseData, error)
	ParseMarkdown(ctx context.Context, req *models.ParseRequest) (string, *models.ParsedCourseData, error)
}

// MaterializerService defines the interface for persisting a confirmed
// curriculum as durable records
type MaterializerService interface {
	Materialize(ctx context.Context, data *models.ParsedCourseData, uploadID string, startDate *time.Time) (*models.MaterializeResult, error)
}

// TranslationService defines the interface for the post-hoc translation pass
type TranslationService interface {
	Translate(ctx context.Context, courseID string) (*models.TranslationOutput, error)
	Apply(ctx context.Context, courseID string, output *models.TranslationOutput) error
}

// CourseService defines the interface for course reads and lifecycle actions
type CourseService interface {
	Get(ctx context.Context, id string) (*models.CourseWithCurriculum, error)
	List(ctx context.Context, status string) ([]*models.Course, error)
	Archive(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// UploadService defines the interface for upload audit-record reads
type UploadService interface {
	Get(ctx context.Context, id string) (*models.CourseUpload, error)
	List(ctx context.Context) ([]*models.CourseUpload, error)
}

// Services holds all service interfaces
type Services struct {
	Generation   GenerationService
	Materializer MaterializerService
	Translation  TranslationService
	Course       CourseService
	Upload       UploadService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, client generation.Client, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Generation:   newGenerationService(repos, client, cfg, log),
		Materializer: newMaterializerService(repos, cfg, log),
		Translation:  newTranslationService(repos, client, cfg, log),
		Course:       newCourseService(repos, log),
		Upload:       newUploadService(repos, log),
	}
}
