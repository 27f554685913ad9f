package models

import (
	"time"
)

// ValidAssignmentTypes defines allowed assignment types
var ValidAssignmentTypes = map[string]bool{
	"homework": true,
	"project":  true,
	"quiz":     true,
	"reading":  true,
}

// ValidResourceTypes defines allowed resource types
var ValidResourceTypes = map[string]bool{
	"video":    true,
	"article":  true,
	"tool":     true,
	"document": true,
	"link":     true,
}

// CourseWeek belongs to exactly one course, ordered by week_number (1-indexed,
// contiguous). UnlockDate is derived from the course start date; only week 1
// is unlocked at creation time.
type CourseWeek struct {
	ID            string     `json:"id" db:"id"`
	CourseID      string     `json:"course_id" db:"course_id"`
	WeekNumber    int        `json:"week_number" db:"week_number"`
	TitleEN       string     `json:"title_en" db:"title_en"`
	TitleJP       *string    `json:"title_jp" db:"title_jp"`
	SubtitleEN    *string    `json:"subtitle_en" db:"subtitle_en"`
	SubtitleJP    *string    `json:"subtitle_jp" db:"subtitle_jp"`
	DescriptionEN *string    `json:"description_en" db:"description_en"`
	DescriptionJP *string    `json:"description_jp" db:"description_jp"`
	Phase         *string    `json:"phase" db:"phase"`
	UnlockDate    *time.Time `json:"unlock_date" db:"unlock_date"`
	IsUnlocked    bool       `json:"is_unlocked" db:"is_unlocked"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// CourseSession is one live or recorded session within a week
type CourseSession struct {
	ID              string    `json:"id" db:"id"`
	WeekID          string    `json:"week_id" db:"week_id"`
	SortOrder       int       `json:"sort_order" db:"sort_order"`
	TitleEN         string    `json:"title_en" db:"title_en"`
	TitleJP         *string   `json:"title_jp" db:"title_jp"`
	DescriptionEN   *string   `json:"description_en" db:"description_en"`
	DescriptionJP   *string   `json:"description_jp" db:"description_jp"`
	DurationMinutes *int      `json:"duration_minutes" db:"duration_minutes"`
	VideoURL        *string   `json:"video_url" db:"video_url"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// CourseAssignment is one assignment within a week
type CourseAssignment struct {
	ID             string    `json:"id" db:"id"`
	WeekID         string    `json:"week_id" db:"week_id"`
	SortOrder      int       `json:"sort_order" db:"sort_order"`
	AssignmentType string    `json:"assignment_type" db:"assignment_type"`
	TitleEN        string    `json:"title_en" db:"title_en"`
	TitleJP        *string   `json:"title_jp" db:"title_jp"`
	DescriptionEN  *string   `json:"description_en" db:"description_en"`
	DescriptionJP  *string   `json:"description_jp" db:"description_jp"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// CourseVocabulary is one bilingual vocabulary term within a week
type CourseVocabulary struct {
	ID           string    `json:"id" db:"id"`
	WeekID       string    `json:"week_id" db:"week_id"`
	SortOrder    int       `json:"sort_order" db:"sort_order"`
	TermEN       string    `json:"term_en" db:"term_en"`
	TermJP       *string   `json:"term_jp" db:"term_jp"`
	Reading      *string   `json:"reading" db:"reading"`
	DefinitionEN *string   `json:"definition_en" db:"definition_en"`
	DefinitionJP *string   `json:"definition_jp" db:"definition_jp"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// CourseResource is one supplementary resource, attached to a week and
// optionally to a specific session within it
type CourseResource struct {
	ID            string    `json:"id" db:"id"`
	WeekID        string    `json:"week_id" db:"week_id"`
	SessionID     *string   `json:"session_id" db:"session_id"`
	SortOrder     int       `json:"sort_order" db:"sort_order"`
	ResourceType  string    `json:"resource_type" db:"resource_type"`
	TitleEN       string    `json:"title_en" db:"title_en"`
	TitleJP       *string   `json:"title_jp" db:"title_jp"`
	URL           *string   `json:"url" db:"url"`
	DescriptionEN *string   `json:"description_en" db:"description_en"`
	DescriptionJP *string   `json:"description_jp" db:"description_jp"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// CourseWeekWithContent is a week plus all its child records
type CourseWeekWithContent struct {
	CourseWeek
	Sessions    []*CourseSession    `json:"sessions"`
	Assignments []*CourseAssignment `json:"assignments"`
	Vocabulary  []*CourseVocabulary `json:"vocabulary"`
	Resources   []*CourseResource   `json:"resources"`
}
