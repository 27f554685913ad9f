package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/course-authoring-api/internal/database"
	"github.com/course-authoring-api/internal/models"
)

// uploadRepo is the concrete implementation of UploadRepository
type uploadRepo struct {
	db *database.DB
}

// NewUploadRepo creates a new upload repository
func NewUploadRepo(db *database.DB) UploadRepository {
	return &uploadRepo{db: db}
}

// Create inserts a new upload audit record
func (r *uploadRepo) Create(ctx context.Context, upload *models.CourseUpload) error {
	query := `
		INSERT INTO course_uploads (id, filename, raw_markdown, parsed_json, course_id,
			status, error_message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		upload.ID, upload.Filename, upload.RawMarkdown, nullStringPtr(upload.ParsedJSON),
		nullStringPtr(upload.CourseID), upload.Status, nullStringPtr(upload.ErrorMessage),
		upload.CreatedAt, upload.UpdatedAt,
	)
	return err
}

// GetByID retrieves an upload by ID
func (r *uploadRepo) GetByID(ctx context.Context, id string) (*models.CourseUpload, error) {
	query := `
		SELECT id, filename, raw_markdown, parsed_json, course_id, status, error_message,
			created_at, updated_at
		FROM course_uploads WHERE id = $1
	`

	var upload models.CourseUpload
	var parsedJSON, courseID, errorMessage sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&upload.ID, &upload.Filename, &upload.RawMarkdown, &parsedJSON, &courseID,
		&upload.Status, &errorMessage, &upload.CreatedAt, &upload.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	upload.ParsedJSON = ptrFromNullString(parsedJSON)
	upload.CourseID = ptrFromNullString(courseID)
	upload.ErrorMessage = ptrFromNullString(errorMessage)

	return &upload, nil
}

// List retrieves all uploads, newest first. Raw markdown is omitted to keep
// the listing light.
func (r *uploadRepo) List(ctx context.Context) ([]*models.CourseUpload, error) {
	query := `
		SELECT id, filename, course_id, status, error_message, created_at, updated_at
		FROM course_uploads ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uploads []*models.CourseUpload
	for rows.Next() {
		var upload models.CourseUpload
		var courseID, errorMessage sql.NullString
		if err := rows.Scan(
			&upload.ID, &upload.Filename, &courseID, &upload.Status, &errorMessage,
			&upload.CreatedAt, &upload.UpdatedAt,
		); err != nil {
			return nil, err
		}
		upload.CourseID = ptrFromNullString(courseID)
		upload.ErrorMessage = ptrFromNullString(errorMessage)
		uploads = append(uploads, &upload)
	}

	return uploads, rows.Err()
}

// MarkParsed transitions an upload to parsed and stores the parsed JSON
func (r *uploadRepo) MarkParsed(ctx context.Context, id string, parsedJSON string) error {
	query := `
		UPDATE course_uploads SET status = $1, parsed_json = $2, error_message = NULL, updated_at = $3
		WHERE id = $4
	`
	_, err := r.db.ExecContext(ctx, query, models.UploadStatusParsed, parsedJSON, time.Now(), id)
	return err
}

// MarkConfirmed transitions an upload to confirmed and links the created course
func (r *uploadRepo) MarkConfirmed(ctx context.Context, id string, courseID string) error {
	query := `
		UPDATE course_uploads SET status = $1, course_id = $2, updated_at = $3
		WHERE id = $4
	`
	_, err := r.db.ExecContext(ctx, query, models.UploadStatusConfirmed, courseID, time.Now(), id)
	return err
}

// MarkFailed transitions an upload to failed with the failure message
func (r *uploadRepo) MarkFailed(ctx context.Context, id string, errorMessage string) error {
	query := `
		UPDATE course_uploads SET status = $1, error_message = $2, updated_at = $3
		WHERE id = $4
	`
	_, err := r.db.ExecContext(ctx, query, models.UploadStatusFailed, errorMessage, time.Now(), id)
	return err
}
