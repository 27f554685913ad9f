package models

// ParsedCourseData is the pipeline's in-memory, pre-persistence representation
// of one generated or extracted curriculum. It is the single contract the
// generation client produces and the materializer consumes; it may be edited
// by the admin in the preview step before being committed.
//
// Field shapes follow the generation contract, not the storage schema:
// price_usd is a decimal dollar amount here and only becomes integer cents
// at materialization time. Every optional or locale-conditional field is a
// pointer so the model's explicit nulls survive the decode.
type ParsedCourseData struct {
	Course ParsedCourse `json:"course"`
	Weeks  []ParsedWeek `json:"weeks"`
}

// ParsedCourse holds the generated course-level fields
type ParsedCourse struct {
	Slug          *string  `json:"slug"`
	CourseCode    *string  `json:"course_code"`
	TitleEN       string   `json:"title_en"`
	TitleJP       *string  `json:"title_jp"`
	DescriptionEN *string  `json:"description_en"`
	DescriptionJP *string  `json:"description_jp"`
	PriceUSD      *float64 `json:"price_usd"`
	PriceJPY      *int     `json:"price_jpy"`
	TotalWeeks    *int     `json:"total_weeks"`
	MaxEnrollment *int     `json:"max_enrollment"`
	OutcomesEN    []string `json:"outcomes_en"`
	OutcomesJP    []string `json:"outcomes_jp"`
	Tools         []string `json:"tools"`
	CommunityURL  *string  `json:"community_url"`
	PlatformURL   *string  `json:"platform_url"`
	Level         *string  `json:"level"`
	Format        *string  `json:"format"`
	Language      *string  `json:"language"`
}

// ParsedWeek holds one generated week and its nested content
type ParsedWeek struct {
	WeekNumber    int                `json:"week_number"`
	TitleEN       string             `json:"title_en"`
	TitleJP       *string            `json:"title_jp"`
	SubtitleEN    *string            `json:"subtitle_en"`
	SubtitleJP    *string            `json:"subtitle_jp"`
	DescriptionEN *string            `json:"description_en"`
	DescriptionJP *string            `json:"description_jp"`
	Phase         *string            `json:"phase"`
	Sessions      []ParsedSession    `json:"sessions"`
	Assignments   []ParsedAssignment `json:"assignments"`
	Vocabulary    []ParsedVocabulary `json:"vocabulary"`
	Resources     []ParsedResource   `json:"resources"`
}

// ParsedSession holds one generated session
type ParsedSession struct {
	TitleEN         string  `json:"title_en"`
	TitleJP         *string `json:"title_jp"`
	DescriptionEN   *string `json:"description_en"`
	DescriptionJP   *string `json:"description_jp"`
	DurationMinutes *int    `json:"duration_minutes"`
}

// ParsedAssignment holds one generated assignment
type ParsedAssignment struct {
	AssignmentType *string `json:"assignment_type"`
	TitleEN        string  `json:"title_en"`
	TitleJP        *string `json:"title_jp"`
	DescriptionEN  *string `json:"description_en"`
	DescriptionJP  *string `json:"description_jp"`
}

// ParsedVocabulary holds one generated vocabulary term
type ParsedVocabulary struct {
	TermEN       string  `json:"term_en"`
	TermJP       *string `json:"term_jp"`
	Reading      *string `json:"reading"`
	DefinitionEN *string `json:"definition_en"`
	DefinitionJP *string `json:"definition_jp"`
}

// ParsedResource holds one generated resource
type ParsedResource struct {
	ResourceType  *string `json:"resource_type"`
	TitleEN       string  `json:"title_en"`
	TitleJP       *string `json:"title_jp"`
	URL           *string `json:"url"`
	DescriptionEN *string `json:"description_en"`
	DescriptionJP *string `json:"description_jp"`
}
