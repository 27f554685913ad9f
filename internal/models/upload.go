package models

import (
	"time"
)

// UploadStatus represents the status of one ingestion attempt
type UploadStatus string

const (
	UploadStatusParsing   UploadStatus = "parsing"
	UploadStatusParsed    UploadStatus = "parsed"
	UploadStatusConfirmed UploadStatus = "confirmed"
	UploadStatusFailed    UploadStatus = "failed"
)

// CourseUpload is the audit/status record of one markdown ingestion attempt.
// Created at upload time, updated at each pipeline stage, terminal at
// confirmed or failed.
type CourseUpload struct {
	ID           string       `json:"id" db:"id"`
	Filename     string       `json:"filename" db:"filename"`
	RawMarkdown  string       `json:"raw_markdown" db:"raw_markdown"`
	ParsedJSON   *string      `json:"parsed_json,omitempty" db:"parsed_json"`
	CourseID     *string      `json:"course_id" db:"course_id"`
	Status       UploadStatus `json:"status" db:"status"`
	ErrorMessage *string      `json:"error_message,omitempty" db:"error_message"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}
