package service

import (
	"context"

	"github.com/course-authoring-api/internal/models"
	"github.com/course-authoring-api/internal/repository"
	"github.com/rs/zerolog"
)

// courseService is the concrete implementation of CourseService
type courseService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newCourseService creates a new CourseService
func newCourseService(repos *repository.Repositories, log zerolog.Logger) *courseService {
	return &courseService{
		repos: repos,
		log:   log.With().Str("service", "course").Logger(),
	}
}

// Get retrieves a course with its full curriculum
func (s *courseService) Get(ctx context.Context, id string) (*models.CourseWithCurriculum, error) {
	return s.repos.Course.GetWithCurriculum(ctx, id)
}

// List retrieves courses, optionally filtered by status
func (s *courseService) List(ctx context.Context, status string) ([]*models.Course, error) {
	return s.repos.Course.List(ctx, status)
}

// Archive sets a course's status to archived. Courses are never hard-deleted
// through this pipeline.
func (s *courseService) Archive(ctx context.Context, id string) error {
	course, err := s.repos.Course.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if course == nil {
		return ErrCourseNotFound
	}

	if err := s.repos.Course.UpdateStatus(ctx, id, models.CourseStatusArchived); err != nil {
		return err
	}

	s.log.Info().Str("course_id", id).Msg("Course archived")
	return nil
}

// Count returns the total number of courses
func (s *courseService) Count(ctx context.Context) (int, error) {
	return s.repos.Course.Count(ctx)
}

// uploadService is the concrete implementation of UploadService
type uploadService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newUploadService creates a new UploadService
func newUploadService(repos *repository.Repositories, log zerolog.Logger) *uploadService {
	return &uploadService{
		repos: repos,
		log:   log.With().Str("service", "upload").Logger(),
	}
}

// Get retrieves one upload audit record
func (s *uploadService) Get(ctx context.Context, id string) (*models.CourseUpload, error) {
	return s.repos.Upload.GetByID(ctx, id)
}

// List retrieves all upload audit records, newest first
func (s *uploadService) List(ctx context.Context) ([]*models.CourseUpload, error) {
	return s.repos.Upload.List(ctx)
}
