package models

// WizardParams are the structured form fields collected by the course
// creation wizard. StudentLanguage controls locale-conditional generation:
// unless it is "ja" or "both", every _jp field must come back null.
type WizardParams struct {
	Topic           string   `json:"topic"`
	Audience        string   `json:"audience"`
	Level           string   `json:"level"`
	Format          string   `json:"format"`
	StudentLanguage string   `json:"student_language"`
	TotalWeeks      int      `json:"total_weeks"`
	SessionsPerWeek int      `json:"sessions_per_week"`
	StartDate       string   `json:"start_date,omitempty"`
	PriceUSD        *float64 `json:"price_usd,omitempty"`
	PriceJPY        *int     `json:"price_jpy,omitempty"`
	CourseCode      string   `json:"course_code,omitempty"`
	Slug            string   `json:"slug,omitempty"`
	Tools           []string `json:"tools,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

// ParseRequest is the upload-flow request body: raw markdown plus the
// original filename for the audit record
type ParseRequest struct {
	Filename        string `json:"filename"`
	Markdown        string `json:"markdown"`
	StudentLanguage string `json:"student_language"`
}

// ConfirmRequest is the confirm-step request body: the (possibly user-edited)
// preview data plus the originating upload, if any
type ConfirmRequest struct {
	Data      ParsedCourseData `json:"data"`
	UploadID  string           `json:"upload_id,omitempty"`
	StartDate string           `json:"start_date,omitempty"`
}

// MaterializeResult is what the materializer hands back to the confirm flow
type MaterializeResult struct {
	CourseID     string `json:"course_id"`
	Slug         string `json:"slug"`
	SkippedWeeks []int  `json:"skipped_weeks,omitempty"`
}
