package repository

import (
	"context"
	"database/sql"

	"github.com/course-authoring-api/internal/database"
	"github.com/course-authoring-api/internal/models"
	"github.com/lib/pq"
)

// curriculumRepo is the concrete implementation of CurriculumRepository
type curriculumRepo struct {
	db *database.DB
}

// NewCurriculumRepo creates a new curriculum repository
func NewCurriculumRepo(db *database.DB) CurriculumRepository {
	return &curriculumRepo{db: db}
}

// CreateWeek inserts a new course week row
func (r *curriculumRepo) CreateWeek(ctx context.Context, week *models.CourseWeek) error {
	query := `
		INSERT INTO course_weeks (id, course_id, week_number, title_en, title_jp,
			subtitle_en, subtitle_jp, description_en, description_jp, phase,
			unlock_date, is_unlocked, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query,
		week.ID, week.CourseID, week.WeekNumber, week.TitleEN, nullStringPtr(week.TitleJP),
		nullStringPtr(week.SubtitleEN), nullStringPtr(week.SubtitleJP),
		nullStringPtr(week.DescriptionEN), nullStringPtr(week.DescriptionJP),
		nullStringPtr(week.Phase), nullTimePtr(week.UnlockDate), week.IsUnlocked, week.CreatedAt,
	)
	return err
}

// BatchInsertSessions inserts a week's sessions using the COPY protocol.
// Each batch is atomic per table but not across tables; a failed batch is the
// caller's problem to log and skip.
func (r *curriculumRepo) BatchInsertSessions(ctx context.Context, sessions []*models.CourseSession) (int, error) {
	if len(sessions) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("course_sessions",
		"id", "week_id", "sort_order", "title_en", "title_jp",
		"description_en", "description_jp", "duration_minutes", "video_url", "created_at",
	))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, s := range sessions {
		if _, err := stmt.ExecContext(ctx,
			s.ID, s.WeekID, s.SortOrder, s.TitleEN, nullStringPtr(s.TitleJP),
			nullStringPtr(s.DescriptionEN), nullStringPtr(s.DescriptionJP),
			nullIntPtr(s.DurationMinutes), nullStringPtr(s.VideoURL), s.CreatedAt,
		); err != nil {
			return 0, err
		}
	}

	// Flush the COPY buffer
	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(sessions), nil
}

// BatchInsertAssignments inserts a week's assignments using the COPY protocol
func (r *curriculumRepo) BatchInsertAssignments(ctx context.Context, assignments []*models.CourseAssignment) (int, error) {
	if len(assignments) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("course_assignments",
		"id", "week_id", "sort_order", "assignment_type", "title_en", "title_jp",
		"description_en", "description_jp", "created_at",
	))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, a := range assignments {
		if _, err := stmt.ExecContext(ctx,
			a.ID, a.WeekID, a.SortOrder, a.AssignmentType, a.TitleEN, nullStringPtr(a.TitleJP),
			nullStringPtr(a.DescriptionEN), nullStringPtr(a.DescriptionJP), a.CreatedAt,
		); err != nil {
			return 0, err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(assignments), nil
}

// BatchInsertVocabulary inserts a week's vocabulary terms using the COPY protocol
func (r *curriculumRepo) BatchInsertVocabulary(ctx context.Context, vocabulary []*models.CourseVocabulary) (int, error) {
	if len(vocabulary) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("course_vocabulary",
		"id", "week_id", "sort_order", "term_en", "term_jp",
		"reading", "definition_en", "definition_jp", "created_at",
	))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, v := range vocabulary {
		if _, err := stmt.ExecContext(ctx,
			v.ID, v.WeekID, v.SortOrder, v.TermEN, nullStringPtr(v.TermJP),
			nullStringPtr(v.Reading), nullStringPtr(v.DefinitionEN), nullStringPtr(v.DefinitionJP), v.CreatedAt,
		); err != nil {
			return 0, err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(vocabulary), nil
}

// BatchInsertResources inserts a week's resources using the COPY protocol
func (r *curriculumRepo) BatchInsertResources(ctx context.Context, resources []*models.CourseResource) (int, error) {
	if len(resources) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("course_resources",
		"id", "week_id", "session_id", "sort_order", "resource_type", "title_en", "title_jp",
		"url", "description_en", "description_jp", "created_at",
	))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, res := range resources {
		if _, err := stmt.ExecContext(ctx,
			res.ID, res.WeekID, nullStringPtr(res.SessionID), res.SortOrder, res.ResourceType,
			res.TitleEN, nullStringPtr(res.TitleJP), nullStringPtr(res.URL),
			nullStringPtr(res.DescriptionEN), nullStringPtr(res.DescriptionJP), res.CreatedAt,
		); err != nil {
			return 0, err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(resources), nil
}

// GetCurriculum loads the full week/content tree for a course, weeks ordered
// by week_number and children by sort_order
func (r *curriculumRepo) GetCurriculum(ctx context.Context, courseID string) ([]*models.CourseWeekWithContent, error) {
	weeks, err := r.getWeeks(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if len(weeks) == 0 {
		return []*models.CourseWeekWithContent{}, nil
	}

	byWeek := make(map[string]*models.CourseWeekWithContent, len(weeks))
	result := make([]*models.CourseWeekWithContent, 0, len(weeks))
	for _, w := range weeks {
		entry := &models.CourseWeekWithContent{
			CourseWeek:  *w,
			Sessions:    []*models.CourseSession{},
			Assignments: []*models.CourseAssignment{},
			Vocabulary:  []*models.CourseVocabulary{},
			Resources:   []*models.CourseResource{},
		}
		byWeek[w.ID] = entry
		result = append(result, entry)
	}

	if err := r.loadSessions(ctx, courseID, byWeek); err != nil {
		return nil, err
	}
	if err := r.loadAssignments(ctx, courseID, byWeek); err != nil {
		return nil, err
	}
	if err := r.loadVocabulary(ctx, courseID, byWeek); err != nil {
		return nil, err
	}
	if err := r.loadResources(ctx, courseID, byWeek); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *curriculumRepo) getWeeks(ctx context.Context, courseID string) ([]*models.CourseWeek, error) {
	query := `
		SELECT id, course_id, week_number, title_en, title_jp, subtitle_en, subtitle_jp,
			description_en, description_jp, phase, unlock_date, is_unlocked, created_at
		FROM course_weeks WHERE course_id = $1 ORDER BY week_number
	`
	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weeks []*models.CourseWeek
	for rows.Next() {
		var w models.CourseWeek
		var titleJP, subtitleEN, subtitleJP, descEN, descJP, phase sql.NullString
		var unlockDate sql.NullTime
		if err := rows.Scan(
			&w.ID, &w.CourseID, &w.WeekNumber, &w.TitleEN, &titleJP, &subtitleEN, &subtitleJP,
			&descEN, &descJP, &phase, &unlockDate, &w.IsUnlocked, &w.CreatedAt,
		); err != nil {
			return nil, err
		}
		w.TitleJP = ptrFromNullString(titleJP)
		w.SubtitleEN = ptrFromNullString(subtitleEN)
		w.SubtitleJP = ptrFromNullString(subtitleJP)
		w.DescriptionEN = ptrFromNullString(descEN)
		w.DescriptionJP = ptrFromNullString(descJP)
		w.Phase = ptrFromNullString(phase)
		if unlockDate.Valid {
			w.UnlockDate = &unlockDate.Time
		}
		weeks = append(weeks, &w)
	}

	return weeks, rows.Err()
}

func (r *curriculumRepo) loadSessions(ctx context.Context, courseID string, byWeek map[string]*models.CourseWeekWithContent) error {
	query := `
		SELECT s.id, s.week_id, s.sort_order, s.title_en, s.title_jp,
			s.description_en, s.description_jp, s.duration_minutes, s.video_url, s.created_at
		FROM course_sessions s
		JOIN course_weeks w ON w.id = s.week_id
		WHERE w.course_id = $1
		ORDER BY w.week_number, s.sort_order
	`
	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var s models.CourseSession
		var titleJP, descEN, descJP, videoURL sql.NullString
		var duration sql.NullInt64
		if err := rows.Scan(
			&s.ID, &s.WeekID, &s.SortOrder, &s.TitleEN, &titleJP,
			&descEN, &descJP, &duration, &videoURL, &s.CreatedAt,
		); err != nil {
			return err
		}
		s.TitleJP = ptrFromNullString(titleJP)
		s.DescriptionEN = ptrFromNullString(descEN)
		s.DescriptionJP = ptrFromNullString(descJP)
		s.VideoURL = ptrFromNullString(videoURL)
		s.DurationMinutes = ptrFromNullInt(duration)
		if week, ok := byWeek[s.WeekID]; ok {
			week.Sessions = append(week.Sessions, &s)
		}
	}

	return rows.Err()
}

func (r *curriculumRepo) loadAssignments(ctx context.Context, courseID string, byWeek map[string]*models.CourseWeekWithContent) error {
	query := `
		SELECT a.id, a.week_id, a.sort_order, a.assignment_type, a.title_en, a.title_jp,
			a.description_en, a.description_jp, a.created_at
		FROM course_assignments a
		JOIN course_weeks w ON w.id = a.week_id
		WHERE w.course_id = $1
		ORDER BY w.week_number, a.sort_order
	`
	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a models.CourseAssignment
		var titleJP, descEN, descJP sql.NullString
		if err := rows.Scan(
			&a.ID, &a.WeekID, &a.SortOrder, &a.AssignmentType, &a.TitleEN, &titleJP,
			&descEN, &descJP, &a.CreatedAt,
		); err != nil {
			return err
		}
		a.TitleJP = ptrFromNullString(titleJP)
		a.DescriptionEN = ptrFromNullString(descEN)
		a.DescriptionJP = ptrFromNullString(descJP)
		if week, ok := byWeek[a.WeekID]; ok {
			week.Assignments = append(week.Assignments, &a)
		}
	}

	return rows.Err()
}

func (r *curriculumRepo) loadVocabulary(ctx context.Context, courseID string, byWeek map[string]*models.CourseWeekWithContent) error {
	query := `
		SELECT v.id, v.week_id, v.sort_order, v.term_en, v.term_jp,
			v.reading, v.definition_en, v.definition_jp, v.created_at
		FROM course_vocabulary v
		JOIN course_weeks w ON w.id = v.week_id
		WHERE w.course_id = $1
		ORDER BY w.week_number, v.sort_order
	`
	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var v models.CourseVocabulary
		var termJP, reading, defEN, defJP sql.NullString
		if err := rows.Scan(
			&v.ID, &v.WeekID, &v.SortOrder, &v.TermEN, &termJP,
			&reading, &defEN, &defJP, &v.CreatedAt,
		); err != nil {
			return err
		}
		v.TermJP = ptrFromNullString(termJP)
		v.Reading = ptrFromNullString(reading)
		v.DefinitionEN = ptrFromNullString(defEN)
		v.DefinitionJP = ptrFromNullString(defJP)
		if week, ok := byWeek[v.WeekID]; ok {
			week.Vocabulary = append(week.Vocabulary, &v)
		}
	}

	return rows.Err()
}

func (r *curriculumRepo) loadResources(ctx context.Context, courseID string, byWeek map[string]*models.CourseWeekWithContent) error {
	query := `
		SELECT res.id, res.week_id, res.session_id, res.sort_order, res.resource_type,
			res.title_en, res.title_jp, res.url, res.description_en, res.description_jp, res.created_at
		FROM course_resources res
		JOIN course_weeks w ON w.id = res.week_id
		WHERE w.course_id = $1
		ORDER BY w.week_number, res.sort_order
	`
	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var res models.CourseResource
		var sessionID, titleJP, url, descEN, descJP sql.NullString
		if err := rows.Scan(
			&res.ID, &res.WeekID, &sessionID, &res.SortOrder, &res.ResourceType,
			&res.TitleEN, &titleJP, &url, &descEN, &descJP, &res.CreatedAt,
		); err != nil {
			return err
		}
		res.SessionID = ptrFromNullString(sessionID)
		res.TitleJP = ptrFromNullString(titleJP)
		res.URL = ptrFromNullString(url)
		res.DescriptionEN = ptrFromNullString(descEN)
		res.DescriptionJP = ptrFromNullString(descJP)
		if week, ok := byWeek[res.WeekID]; ok {
			week.Resources = append(week.Resources, &res)
		}
	}

	return rows.Err()
}

// UpdateWeekTranslation overwrites only a week's _jp fields
func (r *curriculumRepo) UpdateWeekTranslation(ctx context.Context, id string, t *models.TranslationWeekOutput) error {
	query := `
		UPDATE course_weeks SET title_jp = $1, subtitle_jp = $2, description_jp = $3
		WHERE id = $4
	`
	_, err := r.db.ExecContext(ctx, query,
		t.TitleJP, nullStringPtr(t.SubtitleJP), nullStringPtr(t.DescriptionJP), id,
	)
	return err
}

// UpdateSessionTranslation overwrites only a session's _jp fields
func (r *curriculumRepo) UpdateSessionTranslation(ctx context.Context, id string, t *models.TranslationItemOutput) error {
	query := `UPDATE course_sessions SET title_jp = $1, description_jp = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, t.TitleJP, nullStringPtr(t.DescriptionJP), id)
	return err
}

// UpdateAssignmentTranslation overwrites only an assignment's _jp fields
func (r *curriculumRepo) UpdateAssignmentTranslation(ctx context.Context, id string, t *models.TranslationItemOutput) error {
	query := `UPDATE course_assignments SET title_jp = $1, description_jp = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, t.TitleJP, nullStringPtr(t.DescriptionJP), id)
	return err
}
