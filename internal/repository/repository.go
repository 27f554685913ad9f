package repository

import (
	"context"

	"github.com/course-authoring-api/internal/database"
	"github.com/course-authoring-api/internal/models"
)

// CourseRepository defines the interface for course root-record operations
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	GetWithCurriculum(ctx context.Context, id string) (*models.CourseWithCurriculum, error)
	List(ctx context.Context, status string) ([]*models.Course, error)
	UpdateStatus(ctx context.Context, id string, status models.CourseStatus) error
	UpdateTranslation(ctx context.Context, id string, t *models.TranslationCourseOutput) error
	Count(ctx context.Context) (int, error)
}

// CurriculumRepository defines the interface for week and week-content operations
type CurriculumRepository interface {
	CreateWeek(ctx context.Context, week *models.CourseWeek) error
	BatchInsertSessions(ctx context.Context, sessions []*models.CourseSession) (int, error)
	BatchInsertAssignments(ctx context.Context, assignments []*models.CourseAssignment) (int, error)
	BatchInsertVocabulary(ctx context.Context, vocabulary []*models.CourseVocabulary) (int, error)
	BatchInsertResources(ctx context.Context, resources []*models.CourseResource) (int, error)
	GetCurriculum(ctx context.Context, courseID string) ([]*models.CourseWeekWithContent, error)
	UpdateWeekTranslation(ctx context.Context, id string, t *models.TranslationWeekOutput) error
	UpdateSessionTranslation(ctx context.Context, id string, t *models.TranslationItemOutput) error
	UpdateAssignmentTranslation(ctx context.Context, id string, t *models.TranslationItemOutput) error
}

// UploadRepository defines the interface for ingestion audit records
type UploadRepository interface {
	Create(ctx context.Context, upload *models.CourseUpload) error
	GetByID(ctx context.Context, id string) (*models.CourseUpload, error)
	List(ctx context.Context) ([]*models.CourseUpload, error)
	MarkParsed(ctx context.Context, id string, parsedJSON string) error
	MarkConfirmed(ctx context.Context, id string, courseID string) error
	MarkFailed(ctx context.Context, id string, errorMessage string) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Course     CourseRepository
	Curriculum CurriculumRepository
	Upload     UploadRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Course:     NewCourseRepo(db),
		Curriculum: NewCurriculumRepo(db),
		Upload:     NewUploadRepo(db),
	}
}
