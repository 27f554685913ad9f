package prompt

import (
	"fmt"
	"strings"

	"github.com/course-authoring-api/internal/models"
)

// courseSchema enumerates the exact JSON contract the model must return.
// One schema per entity; every nullable field must be present with an
// explicit null, never omitted.
const courseSchema = `Return a single JSON object with this exact structure. Every field listed must be present; use null for any field you cannot fill, never omit it.

{
  "course": {
    "slug": string|null,            // URL-safe kebab-case; generate one from the title if not supplied
    "course_code": string|null,     // convention: "HV-" + 2+ category letters + number, e.g. "HV-AI101"; generate if not supplied
    "title_en": string,             // required
    "title_jp": string|null,
    "description_en": string|null,
    "description_jp": string|null,
    "price_usd": number|null,       // decimal DOLLAR amount, e.g. 299 or 299.50 (not cents)
    "price_jpy": number|null,       // integer yen; JPY has no decimal places
    "total_weeks": number|null,
    "max_enrollment": number|null,
    "outcomes_en": [string]|null,   // learning outcomes
    "outcomes_jp": [string]|null,
    "tools": [string]|null,         // tools and platforms covered
    "community_url": string|null,
    "platform_url": string|null,
    "level": "beginner"|"intermediate"|"advanced"|null,
    "format": "online"|"hybrid"|"in-person"|"self-paced"|null,
    "language": "en"|"ja"|"both"|null
  },
  "weeks": [
    {
      "week_number": number,        // 1-indexed, contiguous
      "title_en": string,
      "title_jp": string|null,
      "subtitle_en": string|null,
      "subtitle_jp": string|null,
      "description_en": string|null,
      "description_jp": string|null,
      "phase": string|null,         // free-text cohort-stage label, e.g. "Foundations"
      "sessions": [
        {
          "title_en": string,
          "title_jp": string|null,
          "description_en": string|null,
          "description_jp": string|null,
          "duration_minutes": number|null
        }
      ],
      "assignments": [
        {
          "assignment_type": "homework"|"project"|"quiz"|"reading"|null,
          "title_en": string,
          "title_jp": string|null,
          "description_en": string|null,
          "description_jp": string|null
        }
      ],
      "vocabulary": [
        {
          "term_en": string,
          "term_jp": string|null,
          "reading": string|null,   // kana reading of term_jp
          "definition_en": string|null,
          "definition_jp": string|null
        }
      ],
      "resources": [
        {
          "resource_type": "video"|"article"|"tool"|"document"|"link"|null,
          "title_en": string,
          "title_jp": string|null,
          "url": string|null,
          "description_en": string|null,
          "description_jp": string|null
        }
      ]
    }
  ]
}

Output ONLY the JSON object. No prose before or after it.`

// languageRules returns the locale-conditional generation rules for the
// requested student language. japaneseVocabulary switches between generating
// vocabulary terms (wizard path) and extracting only what the source
// contains (markdown path).
func languageRules(studentLanguage string, extractOnly bool) string {
	if studentLanguage != "ja" && studentLanguage != "both" {
		return `Language rules:
- The target students do not study in Japanese. Set EVERY field ending in _jp to null. Do not translate anything.
- Leave every "vocabulary" array empty unless the source material explicitly lists vocabulary terms.`
	}

	if extractOnly {
		return `Language rules:
- The target students study in Japanese. Fill every _jp field with a natural Japanese rendering of the corresponding _en field.
- Extract vocabulary terms wherever the source document lists them; do not invent terms the document does not contain.
- Keep established technical terms in katakana or English where that is the standard Japanese usage.`
	}

	return `Language rules:
- The target students study in Japanese. Fill every _jp field with a natural Japanese rendering of the corresponding _en field.
- Generate 5-10 vocabulary terms per week covering that week's key technical concepts, even if no source vocabulary exists.
- Keep established technical terms in katakana or English where that is the standard Japanese usage.`
}

// WizardSystemPrompt is the system instruction for generating a full
// curriculum from structured wizard parameters
func WizardSystemPrompt(studentLanguage string) string {
	var sb strings.Builder
	sb.WriteString("You are a curriculum designer for an AI-education business. You design practical, project-driven courses for working professionals.\n\n")
	sb.WriteString("Given the course parameters in the user message, design a complete week-by-week curriculum.\n\n")
	sb.WriteString(courseSchema)
	sb.WriteString("\n\n")
	sb.WriteString(languageRules(studentLanguage, false))
	return sb.String()
}

// ExtractionSystemPrompt is the system instruction for extracting a
// structured curriculum from an uploaded markdown document
func ExtractionSystemPrompt(studentLanguage string) string {
	var sb strings.Builder
	sb.WriteString("You are a curriculum data extractor. The user message contains a markdown course document. Convert it into structured data without inventing content: extract what the document says, and use null for anything it does not say.\n\n")
	sb.WriteString(courseSchema)
	sb.WriteString("\n\n")
	sb.WriteString(languageRules(studentLanguage, true))
	return sb.String()
}

// BuildWizardPrompt renders the wizard form fields into a single user-turn
// text block. Deterministic given identical input.
func BuildWizardPrompt(params models.WizardParams) string {
	var sb strings.Builder

	sb.WriteString("Design a course with these parameters:\n\n")
	sb.WriteString(fmt.Sprintf("Topic: %s\n", params.Topic))
	sb.WriteString(fmt.Sprintf("Audience: %s\n", params.Audience))
	sb.WriteString(fmt.Sprintf("Level: %s\n", params.Level))
	sb.WriteString(fmt.Sprintf("Format: %s\n", params.Format))
	sb.WriteString(fmt.Sprintf("Student language: %s\n", params.StudentLanguage))
	sb.WriteString(fmt.Sprintf("Number of weeks: %d\n", params.TotalWeeks))
	if params.SessionsPerWeek > 0 {
		sb.WriteString(fmt.Sprintf("Sessions per week: %d\n", params.SessionsPerWeek))
	}
	if params.StartDate != "" {
		sb.WriteString(fmt.Sprintf("Start date: %s\n", params.StartDate))
	}
	if params.PriceUSD != nil {
		sb.WriteString(fmt.Sprintf("Price (USD): %.2f\n", *params.PriceUSD))
	}
	if params.PriceJPY != nil {
		sb.WriteString(fmt.Sprintf("Price (JPY): %d\n", *params.PriceJPY))
	}
	if params.CourseCode != "" {
		sb.WriteString(fmt.Sprintf("Course code: %s\n", params.CourseCode))
	}
	if params.Slug != "" {
		sb.WriteString(fmt.Sprintf("Slug: %s\n", params.Slug))
	}
	if len(params.Tools) > 0 {
		sb.WriteString(fmt.Sprintf("Tools to cover: %s\n", strings.Join(params.Tools, ", ")))
	}
	if params.Notes != "" {
		sb.WriteString(fmt.Sprintf("\nAdditional notes:\n%s\n", params.Notes))
	}

	return sb.String()
}

// BuildMarkdownPrompt wraps an uploaded markdown document for the
// extraction path
func BuildMarkdownPrompt(markdown, filename string) string {
	var sb strings.Builder
	if filename != "" {
		sb.WriteString(fmt.Sprintf("Source file: %s\n\n", filename))
	}
	sb.WriteString("Course document:\n\n")
	sb.WriteString(markdown)
	return sb.String()
}
