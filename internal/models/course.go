package models

import (
	"time"
)

// CourseStatus represents the lifecycle status of a course
type CourseStatus string

const (
	CourseStatusDraft      CourseStatus = "draft"
	CourseStatusPublished  CourseStatus = "published"
	CourseStatusInProgress CourseStatus = "in-progress"
	CourseStatusCompleted  CourseStatus = "completed"
	CourseStatusArchived   CourseStatus = "archived"
)

// ValidCourseStatuses defines allowed course statuses
var ValidCourseStatuses = map[string]bool{
	"draft":       true,
	"published":   true,
	"in-progress": true,
	"completed":   true,
	"archived":    true,
}

// ValidLevels defines allowed course levels
var ValidLevels = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
}

// ValidFormats defines allowed course formats
var ValidFormats = map[string]bool{
	"online":     true,
	"hybrid":     true,
	"in-person":  true,
	"self-paced": true,
}

// ValidLanguages defines allowed student language targets
var ValidLanguages = map[string]bool{
	"en":   true,
	"ja":   true,
	"both": true,
}

// Course is the root entity of one curriculum. Bilingual fields use pointers
// so "not applicable" (explicit null) stays distinct from "empty string".
// Prices are stored in the currency's smallest unit: USD in cents, JPY in yen.
type Course struct {
	ID                string       `json:"id" db:"id"`
	Slug              string       `json:"slug" db:"slug"`
	CourseCode        string       `json:"course_code" db:"course_code"`
	TitleEN           string       `json:"title_en" db:"title_en"`
	TitleJP           *string      `json:"title_jp" db:"title_jp"`
	DescriptionEN     *string      `json:"description_en" db:"description_en"`
	DescriptionJP     *string      `json:"description_jp" db:"description_jp"`
	PriceUSD          *int         `json:"price_usd" db:"price_usd"`
	PriceJPY          *int         `json:"price_jpy" db:"price_jpy"`
	StartDate         *time.Time   `json:"start_date" db:"start_date"`
	TotalWeeks        int          `json:"total_weeks" db:"total_weeks"`
	MaxEnrollment     *int         `json:"max_enrollment" db:"max_enrollment"`
	CurrentEnrollment int          `json:"current_enrollment" db:"current_enrollment"`
	OutcomesEN        []string     `json:"outcomes_en" db:"outcomes_en"`
	OutcomesJP        []string     `json:"outcomes_jp" db:"outcomes_jp"`
	Tools             []string     `json:"tools" db:"tools"`
	CommunityURL      *string      `json:"community_url" db:"community_url"`
	PlatformURL       *string      `json:"platform_url" db:"platform_url"`
	Level             string       `json:"level" db:"level"`
	Format            string       `json:"format" db:"format"`
	Language          string       `json:"language" db:"language"`
	Status            CourseStatus `json:"status" db:"status"`
	IsPublished       bool         `json:"is_published" db:"is_published"`
	CreatedAt         time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at" db:"updated_at"`
}

// CourseWithCurriculum is a course plus its full week/content tree,
// as returned by the admin detail view and consumed by the translation pass.
type CourseWithCurriculum struct {
	Course
	Weeks []*CourseWeekWithContent `json:"weeks"`
}
