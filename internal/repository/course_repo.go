package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/course-authoring-api/internal/database"
	"github.com/course-authoring-api/internal/models"
	"github.com/lib/pq"
)

// courseRepo is the concrete implementation of CourseRepository
type courseRepo struct {
	db *database.DB
}

// NewCourseRepo creates a new course repository
func NewCourseRepo(db *database.DB) CourseRepository {
	return &courseRepo{db: db}
}

const courseColumns = `id, slug, course_code, title_en, title_jp, description_en, description_jp,
	price_usd, price_jpy, start_date, total_weeks, max_enrollment, current_enrollment,
	outcomes_en, outcomes_jp, tools, community_url, platform_url,
	level, format, language, status, is_published, created_at, updated_at`

// Create inserts a new course row
func (r *courseRepo) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (` + courseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
	`
	_, err := r.db.ExecContext(ctx, query,
		course.ID, course.Slug, course.CourseCode, course.TitleEN, nullStringPtr(course.TitleJP),
		nullStringPtr(course.DescriptionEN), nullStringPtr(course.DescriptionJP),
		nullIntPtr(course.PriceUSD), nullIntPtr(course.PriceJPY), nullTimePtr(course.StartDate),
		course.TotalWeeks, nullIntPtr(course.MaxEnrollment), course.CurrentEnrollment,
		pq.Array(course.OutcomesEN), pq.Array(course.OutcomesJP), pq.Array(course.Tools),
		nullStringPtr(course.CommunityURL), nullStringPtr(course.PlatformURL),
		course.Level, course.Format, course.Language, course.Status, course.IsPublished,
		course.CreatedAt, course.UpdatedAt,
	)
	return err
}

func scanCourse(scanner interface {
	Scan(dest ...interface{}) error
}) (*models.Course, error) {
	var course models.Course
	var titleJP, descEN, descJP, communityURL, platformURL sql.NullString
	var priceUSD, priceJPY, maxEnrollment sql.NullInt64
	var startDate sql.NullTime

	err := scanner.Scan(
		&course.ID, &course.Slug, &course.CourseCode, &course.TitleEN, &titleJP,
		&descEN, &descJP, &priceUSD, &priceJPY, &startDate,
		&course.TotalWeeks, &maxEnrollment, &course.CurrentEnrollment,
		pq.Array(&course.OutcomesEN), pq.Array(&course.OutcomesJP), pq.Array(&course.Tools),
		&communityURL, &platformURL,
		&course.Level, &course.Format, &course.Language, &course.Status, &course.IsPublished,
		&course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	course.TitleJP = ptrFromNullString(titleJP)
	course.DescriptionEN = ptrFromNullString(descEN)
	course.DescriptionJP = ptrFromNullString(descJP)
	course.CommunityURL = ptrFromNullString(communityURL)
	course.PlatformURL = ptrFromNullString(platformURL)
	course.PriceUSD = ptrFromNullInt(priceUSD)
	course.PriceJPY = ptrFromNullInt(priceJPY)
	course.MaxEnrollment = ptrFromNullInt(maxEnrollment)
	if startDate.Valid {
		course.StartDate = &startDate.Time
	}

	return &course, nil
}

// GetByID retrieves a course by ID
func (r *courseRepo) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return course, nil
}

// GetWithCurriculum retrieves a course and its full week/content tree
func (r *courseRepo) GetWithCurriculum(ctx context.Context, id string) (*models.CourseWithCurriculum, error) {
	course, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, nil
	}

	curriculumRepo := NewCurriculumRepo(r.db)
	weeks, err := curriculumRepo.GetCurriculum(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.CourseWithCurriculum{Course: *course, Weeks: weeks}, nil
}

// List retrieves courses, optionally filtered by status, newest first
func (r *courseRepo) List(ctx context.Context, status string) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

// UpdateStatus sets a course's lifecycle status
func (r *courseRepo) UpdateStatus(ctx context.Context, id string, status models.CourseStatus) error {
	query := `UPDATE courses SET status = $1, updated_at = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}

// UpdateTranslation overwrites only the course's _jp fields
func (r *courseRepo) UpdateTranslation(ctx context.Context, id string, t *models.TranslationCourseOutput) error {
	query := `
		UPDATE courses SET title_jp = $1, description_jp = $2, outcomes_jp = $3, updated_at = $4
		WHERE id = $5
	`
	_, err := r.db.ExecContext(ctx, query,
		t.TitleJP, nullStringPtr(t.DescriptionJP), pq.Array(t.OutcomesJP), time.Now(), id,
	)
	return err
}

// Count returns the total number of courses
func (r *courseRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count)
	return count, err
}

// Null conversion helpers shared across the repositories

func nullStringPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullIntPtr(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func nullTimePtr(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func ptrFromNullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func ptrFromNullInt(i sql.NullInt64) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int64)
	return &v
}
