package service

import (
	"context"

	"github.com/course-authoring-api/internal/config"
	"github.com/course-authoring-api/internal/generation"
	"github.com/course-authoring-api/internal/models"
	"github.com/course-authoring-api/internal/prompt"
	"github.com/course-authoring-api/internal/repository"
	"github.com/course-authoring-api/internal/validation"
	"github.com/rs/zerolog"
)

// translationService is the concrete implementation of TranslationService
type translationService struct {
	repos  *repository.Repositories
	client generation.Client
	cfg    *config.Config
	log    zerolog.Logger
}

// newTranslationService creates a new TranslationService
func newTranslationService(repos *repository.Repositories, client generation.Client, cfg *config.Config, log zerolog.Logger) *translationService {
	return &translationService{
		repos:  repos,
		client: client,
		cfg:    cfg,
		log:    log.With().Str("service", "translation").Logger(),
	}
}

// BuildTranslationInput gathers a persisted course's English fields into the
// translation tree. Record ids ride along as correlation keys.
func BuildTranslationInput(course *models.CourseWithCurriculum) models.TranslationInput {
	input := models.TranslationInput{
		Course: models.TranslationCourseInput{
			ID:            course.ID,
			TitleEN:       course.TitleEN,
			DescriptionEN: course.DescriptionEN,
			OutcomesEN:    course.OutcomesEN,
		},
		Weeks: make([]models.TranslationWeekInput, 0, len(course.Weeks)),
	}

	for _, week := range course.Weeks {
		weekInput := models.TranslationWeekInput{
			ID:            week.ID,
			TitleEN:       week.TitleEN,
			SubtitleEN:    week.SubtitleEN,
			DescriptionEN: week.DescriptionEN,
			Sessions:      make([]models.TranslationItemInput, 0, len(week.Sessions)),
			Assignments:   make([]models.TranslationItemInput, 0, len(week.Assignments)),
		}
		for _, session := range week.Sessions {
			weekInput.Sessions = append(weekInput.Sessions, models.TranslationItemInput{
				ID:            session.ID,
				TitleEN:       session.TitleEN,
				DescriptionEN: session.DescriptionEN,
			})
		}
		for _, assignment := range week.Assignments {
			weekInput.Assignments = append(weekInput.Assignments, models.TranslationItemInput{
				ID:            assignment.ID,
				TitleEN:       assignment.TitleEN,
				DescriptionEN: assignment.DescriptionEN,
			})
		}
		input.Weeks = append(input.Weeks, weekInput)
	}

	return input
}

// Translate runs the translation pass over an existing course and returns
// the translated tree for admin review. Nothing is persisted here.
func (s *translationService) Translate(ctx context.Context, courseID string) (*models.TranslationOutput, error) {
	course, err := s.repos.Course.GetWithCurriculum(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	input := BuildTranslationInput(course)
	userPrompt, err := prompt.BuildTranslationPrompt(input)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("course_id", courseID).
		Int("weeks", len(input.Weeks)).
		Msg("Translating course content")

	output, err := generation.Structured(ctx, s.client, s.cfg.Generation.MaxTokens,
		prompt.TranslationSystemPrompt, userPrompt, validation.ValidateTranslation)
	if err != nil {
		s.log.Error().Err(err).Str("course_id", courseID).Msg("Translation failed")
		return nil, err
	}

	s.log.Info().
		Str("course_id", courseID).
		Str("title_jp", output.Course.TitleJP).
		Msg("Translation completed")

	return output, nil
}

// Apply maps translated _jp fields back onto the matching records by id.
// English fields and all other metadata stay untouched. Ids the course does
// not contain are logged and skipped; the model must never be trusted to
// invent record identities.
func (s *translationService) Apply(ctx context.Context, courseID string, output *models.TranslationOutput) error {
	course, err := s.repos.Course.GetWithCurriculum(ctx, courseID)
	if err != nil {
		return err
	}
	if course == nil {
		return ErrCourseNotFound
	}

	weekIDs := make(map[string]bool)
	sessionIDs := make(map[string]bool)
	assignmentIDs := make(map[string]bool)
	for _, week := range course.Weeks {
		weekIDs[week.ID] = true
		for _, session := range week.Sessions {
			sessionIDs[session.ID] = true
		}
		for _, assignment := range week.Assignments {
			assignmentIDs[assignment.ID] = true
		}
	}

	if err := s.repos.Course.UpdateTranslation(ctx, course.ID, &output.Course); err != nil {
		return err
	}

	for i := range output.Weeks {
		week := &output.Weeks[i]
		if !weekIDs[week.ID] {
			s.log.Warn().Str("course_id", courseID).Str("week_id", week.ID).Msg("Translated week id not found, skipping")
			continue
		}
		if err := s.repos.Curriculum.UpdateWeekTranslation(ctx, week.ID, week); err != nil {
			return err
		}

		for j := range week.Sessions {
			session := &week.Sessions[j]
			if !sessionIDs[session.ID] {
				s.log.Warn().Str("course_id", courseID).Str("session_id", session.ID).Msg("Translated session id not found, skipping")
				continue
			}
			if err := s.repos.Curriculum.UpdateSessionTranslation(ctx, session.ID, session); err != nil {
				return err
			}
		}

		for j := range week.Assignments {
			assignment := &week.Assignments[j]
			if !assignmentIDs[assignment.ID] {
				s.log.Warn().Str("course_id", courseID).Str("assignment_id", assignment.ID).Msg("Translated assignment id not found, skipping")
				continue
			}
			if err := s.repos.Curriculum.UpdateAssignmentTranslation(ctx, assignment.ID, assignment); err != nil {
				return err
			}
		}
	}

	s.log.Info().Str("course_id", courseID).Msg("Translation applied")
	return nil
}
