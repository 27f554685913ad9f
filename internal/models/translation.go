package models

// TranslationInput mirrors the course/weeks/sessions/assignments structure
// but carries only English text fields plus each record's immutable id.
// The id is purely a correlation key: the translator must echo it back
// unchanged, never regenerate or reorder it.
type TranslationInput struct {
	Course TranslationCourseInput `json:"course"`
	Weeks  []TranslationWeekInput `json:"weeks"`
}

// TranslationCourseInput carries the course-level English fields
type TranslationCourseInput struct {
	ID            string   `json:"id"`
	TitleEN       string   `json:"title_en"`
	DescriptionEN *string  `json:"description_en"`
	OutcomesEN    []string `json:"outcomes_en"`
}

// TranslationWeekInput carries one week's English fields and children
type TranslationWeekInput struct {
	ID            string                 `json:"id"`
	TitleEN       string                 `json:"title_en"`
	SubtitleEN    *string                `json:"subtitle_en"`
	DescriptionEN *string                `json:"description_en"`
	Sessions      []TranslationItemInput `json:"sessions"`
	Assignments   []TranslationItemInput `json:"assignments"`
}

// TranslationItemInput carries one session's or assignment's English fields
type TranslationItemInput struct {
	ID            string  `json:"id"`
	TitleEN       string  `json:"title_en"`
	DescriptionEN *string `json:"description_en"`
}

// TranslationOutput is the translated mirror of TranslationInput: the same
// ids, Japanese fields only. Applied back onto matching records by id.
type TranslationOutput struct {
	Course TranslationCourseOutput `json:"course"`
	Weeks  []TranslationWeekOutput `json:"weeks"`
}

// TranslationCourseOutput carries the translated course-level fields
type TranslationCourseOutput struct {
	ID            string   `json:"id"`
	TitleJP       string   `json:"title_jp"`
	DescriptionJP *string  `json:"description_jp"`
	OutcomesJP    []string `json:"outcomes_jp"`
}

// TranslationWeekOutput carries one week's translated fields and children
type TranslationWeekOutput struct {
	ID            string                  `json:"id"`
	TitleJP       string                  `json:"title_jp"`
	SubtitleJP    *string                 `json:"subtitle_jp"`
	DescriptionJP *string                 `json:"description_jp"`
	Sessions      []TranslationItemOutput `json:"sessions"`
	Assignments   []TranslationItemOutput `json:"assignments"`
}

// TranslationItemOutput carries one translated session or assignment
type TranslationItemOutput struct {
	ID            string  `json:"id"`
	TitleJP       string  `json:"title_jp"`
	DescriptionJP *string `json:"description_jp"`
}
