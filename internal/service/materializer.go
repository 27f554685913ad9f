package service

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/course-authoring-api/internal/config"
	"github.com/course-authoring-api/internal/models"
	"github.com/course-authoring-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// materializerService is the concrete implementation of MaterializerService
type materializerService struct {
	repos *repository.Repositories
	cfg   *config.Config
	log   zerolog.Logger
}

// newMaterializerService creates a new MaterializerService
func newMaterializerService(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *materializerService {
	return &materializerService{
		repos: repos,
		cfg:   cfg,
		log:   log.With().Str("service", "materializer").Logger(),
	}
}

// Materialize persists a confirmed curriculum as a course tree.
//
// Week content inserts are best-effort by default: a failed week is logged,
// recorded in SkippedWeeks, and skipped, while the course and the remaining
// weeks still persist. A generated 10-week course with one malformed week is
// more useful partially broken than not created at all. MATERIALIZE_STRICT
// flips this to abort-on-first-failure.
//
// Deliberately not idempotent: two calls with the same data create two
// distinct courses.
func (s *materializerService) Materialize(ctx context.Context, data *models.ParsedCourseData, uploadID string, startDate *time.Time) (*models.MaterializeResult, error) {
	course := buildCourse(&data.Course, len(data.Weeks), startDate)

	if err := s.repos.Course.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	s.log.Info().
		Str("course_id", course.ID).
		Str("slug", course.Slug).
		Int("weeks", len(data.Weeks)).
		Msg("Course created, materializing weeks")

	var skippedWeeks []int
	for i := range data.Weeks {
		weekNumber := i + 1
		if err := s.materializeWeek(ctx, course, &data.Weeks[i], weekNumber, startDate); err != nil {
			if s.cfg.Materialize.Strict {
				return nil, fmt.Errorf("failed to materialize week %d: %w", weekNumber, err)
			}
			s.log.Error().Err(err).
				Str("course_id", course.ID).
				Int("week_number", weekNumber).
				Msg("Week materialization failed, skipping its content")
			skippedWeeks = append(skippedWeeks, weekNumber)
		}
	}

	if uploadID != "" {
		if err := s.repos.Upload.MarkConfirmed(ctx, uploadID, course.ID); err != nil {
			s.log.Error().Err(err).
				Str("upload_id", uploadID).
				Str("course_id", course.ID).
				Msg("Failed to confirm upload record")
		}
	}

	s.log.Info().
		Str("course_id", course.ID).
		Int("weeks", len(data.Weeks)).
		Int("skipped", len(skippedWeeks)).
		Msg("Materialization completed")

	return &models.MaterializeResult{
		CourseID:     course.ID,
		Slug:         course.Slug,
		SkippedWeeks: skippedWeeks,
	}, nil
}

// materializeWeek creates one week row and batch-inserts its content.
// weekNumber is the 1-indexed array position, not the generated value:
// gaps or reordering in the input must not produce gaps in stored data.
func (s *materializerService) materializeWeek(ctx context.Context, course *models.Course, parsed *models.ParsedWeek, weekNumber int, startDate *time.Time) error {
	now := time.Now()
	week := &models.CourseWeek{
		ID:            uuid.New().String(),
		CourseID:      course.ID,
		WeekNumber:    weekNumber,
		TitleEN:       parsed.TitleEN,
		TitleJP:       parsed.TitleJP,
		SubtitleEN:    parsed.SubtitleEN,
		SubtitleJP:    parsed.SubtitleJP,
		DescriptionEN: parsed.DescriptionEN,
		DescriptionJP: parsed.DescriptionJP,
		Phase:         parsed.Phase,
		UnlockDate:    UnlockDate(startDate, weekNumber),
		IsUnlocked:    weekNumber == 1,
		CreatedAt:     now,
	}

	if err := s.repos.Curriculum.CreateWeek(ctx, week); err != nil {
		return fmt.Errorf("week insert: %w", err)
	}

	sessions := make([]*models.CourseSession, 0, len(parsed.Sessions))
	for idx, ps := range parsed.Sessions {
		sessions = append(sessions, &models.CourseSession{
			ID:              uuid.New().String(),
			WeekID:          week.ID,
			SortOrder:       idx,
			TitleEN:         ps.TitleEN,
			TitleJP:         ps.TitleJP,
			DescriptionEN:   ps.DescriptionEN,
			DescriptionJP:   ps.DescriptionJP,
			DurationMinutes: ps.DurationMinutes,
			CreatedAt:       now,
		})
	}
	if _, err := s.repos.Curriculum.BatchInsertSessions(ctx, sessions); err != nil {
		return fmt.Errorf("sessions insert: %w", err)
	}

	assignments := make([]*models.CourseAssignment, 0, len(parsed.Assignments))
	for idx, pa := range parsed.Assignments {
		assignmentType := "homework"
		if pa.AssignmentType != nil {
			assignmentType = *pa.AssignmentType
		}
		assignments = append(assignments, &models.CourseAssignment{
			ID:             uuid.New().String(),
			WeekID:         week.ID,
			SortOrder:      idx,
			AssignmentType: assignmentType,
			TitleEN:        pa.TitleEN,
			TitleJP:        pa.TitleJP,
			DescriptionEN:  pa.DescriptionEN,
			DescriptionJP:  pa.DescriptionJP,
			CreatedAt:      now,
		})
	}
	if _, err := s.repos.Curriculum.BatchInsertAssignments(ctx, assignments); err != nil {
		return fmt.Errorf("assignments insert: %w", err)
	}

	vocabulary := make([]*models.CourseVocabulary, 0, len(parsed.Vocabulary))
	for idx, pv := range parsed.Vocabulary {
		vocabulary = append(vocabulary, &models.CourseVocabulary{
			ID:           uuid.New().String(),
			WeekID:       week.ID,
			SortOrder:    idx,
			TermEN:       pv.TermEN,
			TermJP:       pv.TermJP,
			Reading:      pv.Reading,
			DefinitionEN: pv.DefinitionEN,
			DefinitionJP: pv.DefinitionJP,
			CreatedAt:    now,
		})
	}
	if _, err := s.repos.Curriculum.BatchInsertVocabulary(ctx, vocabulary); err != nil {
		return fmt.Errorf("vocabulary insert: %w", err)
	}

	resources := make([]*models.CourseResource, 0, len(parsed.Resources))
	for idx, pr := range parsed.Resources {
		resourceType := "link"
		if pr.ResourceType != nil {
			resourceType = *pr.ResourceType
		}
		resources = append(resources, &models.CourseResource{
			ID:            uuid.New().String(),
			WeekID:        week.ID,
			SortOrder:     idx,
			ResourceType:  resourceType,
			TitleEN:       pr.TitleEN,
			TitleJP:       pr.TitleJP,
			URL:           pr.URL,
			DescriptionEN: pr.DescriptionEN,
			DescriptionJP: pr.DescriptionJP,
			CreatedAt:     now,
		})
	}
	if _, err := s.repos.Curriculum.BatchInsertResources(ctx, resources); err != nil {
		return fmt.Errorf("resources insert: %w", err)
	}

	return nil
}

// buildCourse converts the generated course fields to the storage shape:
// USD decimal dollars become integer cents, JPY passes through unchanged,
// status starts at draft, unpublished.
func buildCourse(parsed *models.ParsedCourse, weekCount int, startDate *time.Time) *models.Course {
	now := time.Now()

	slug := ""
	if parsed.Slug != nil {
		slug = *parsed.Slug
	}
	if slug == "" {
		slug = Slugify(parsed.TitleEN)
	}

	courseCode := ""
	if parsed.CourseCode != nil {
		courseCode = *parsed.CourseCode
	}

	totalWeeks := weekCount
	if parsed.TotalWeeks != nil && *parsed.TotalWeeks > 0 {
		totalWeeks = *parsed.TotalWeeks
	}

	level, format, language := "beginner", "online", "en"
	if parsed.Level != nil {
		level = *parsed.Level
	}
	if parsed.Format != nil {
		format = *parsed.Format
	}
	if parsed.Language != nil {
		language = *parsed.Language
	}

	var priceUSD *int
	if parsed.PriceUSD != nil {
		cents := int(math.Round(*parsed.PriceUSD * 100))
		priceUSD = &cents
	}

	return &models.Course{
		ID:            uuid.New().String(),
		Slug:          slug,
		CourseCode:    courseCode,
		TitleEN:       parsed.TitleEN,
		TitleJP:       parsed.TitleJP,
		DescriptionEN: parsed.DescriptionEN,
		DescriptionJP: parsed.DescriptionJP,
		PriceUSD:      priceUSD,
		PriceJPY:      parsed.PriceJPY,
		StartDate:     startDate,
		TotalWeeks:    totalWeeks,
		MaxEnrollment: parsed.MaxEnrollment,
		OutcomesEN:    parsed.OutcomesEN,
		OutcomesJP:    parsed.OutcomesJP,
		Tools:         parsed.Tools,
		CommunityURL:  parsed.CommunityURL,
		PlatformURL:   parsed.PlatformURL,
		Level:         level,
		Format:        format,
		Language:      language,
		Status:        models.CourseStatusDraft,
		IsPublished:   false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// UnlockDate computes when a week's content becomes visible:
// start_date + (week_number-1)*7 days, or nil when the course has no start date
func UnlockDate(startDate *time.Time, weekNumber int) *time.Time {
	if startDate == nil {
		return nil
	}
	unlock := startDate.AddDate(0, 0, (weekNumber-1)*7)
	return &unlock
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a kebab-case slug from a course title, used when the
// generated data carries no slug
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
