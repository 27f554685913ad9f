package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/course-authoring-api/internal/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// SchemaValidationError is the hard-stop failure for generated payloads that
// parsed as JSON but fail the shape check. Nothing is persisted after it.
type SchemaValidationError struct {
	Errors []ValidationError
}

func (e *SchemaValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, ve := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", ve.Field, ve.Message))
	}
	return "course data failed validation: " + strings.Join(parts, "; ")
}

// rawShape probes the untyped payload so "weeks": null and a missing key can
// be told apart from an empty array before the typed decode flattens them
type rawShape struct {
	Course json.RawMessage `json:"course"`
	Weeks  json.RawMessage `json:"weeks"`
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// ValidateParsedCourse checks the decoded generation payload before the
// preview/materialize handoff. The contract is a guard against total
// generation failure: title_en present, weeks is a list. On top of that it
// enforces enum membership and numeric sanity so garbage values fail here
// rather than at the insert.
//
// Week numbers are deliberately not checked for contiguity: the materializer
// renumbers weeks by array position, so gaps or reordering in the input are
// corrected, not rejected.
func ValidateParsedCourse(payload []byte) (*models.ParsedCourseData, error) {
	var shape rawShape
	if err := json.Unmarshal(payload, &shape); err != nil {
		return nil, &SchemaValidationError{Errors: []ValidationError{
			{Field: "course", Message: fmt.Sprintf("payload is not a course object: %v", err)},
		}}
	}

	var errs []ValidationError

	if shape.Weeks == nil || !isJSONArray(shape.Weeks) {
		errs = append(errs, ValidationError{Field: "weeks", Message: "weeks must be a list"})
	}

	var data models.ParsedCourseData
	if err := json.Unmarshal(payload, &data); err != nil {
		errs = append(errs, ValidationError{Field: "course", Message: fmt.Sprintf("payload does not match the course schema: %v", err)})
		return nil, &SchemaValidationError{Errors: errs}
	}

	if strings.TrimSpace(data.Course.TitleEN) == "" {
		errs = append(errs, ValidationError{Field: "title_en", Message: "title_en is required"})
	}

	errs = append(errs, validateCourseFields(&data.Course)...)
	for i := range data.Weeks {
		errs = append(errs, validateWeek(&data.Weeks[i], i)...)
	}

	if len(errs) > 0 {
		return nil, &SchemaValidationError{Errors: errs}
	}
	return &data, nil
}

func validateCourseFields(course *models.ParsedCourse) []ValidationError {
	var errs []ValidationError

	if course.Level != nil && !models.ValidLevels[*course.Level] {
		errs = append(errs, ValidationError{Field: "level", Message: "invalid level, must be one of: beginner, intermediate, advanced", Value: *course.Level})
	}
	if course.Format != nil && !models.ValidFormats[*course.Format] {
		errs = append(errs, ValidationError{Field: "format", Message: "invalid format, must be one of: online, hybrid, in-person, self-paced", Value: *course.Format})
	}
	if course.Language != nil && !models.ValidLanguages[*course.Language] {
		errs = append(errs, ValidationError{Field: "language", Message: "invalid language, must be one of: en, ja, both", Value: *course.Language})
	}
	if course.PriceUSD != nil && *course.PriceUSD < 0 {
		errs = append(errs, ValidationError{Field: "price_usd", Message: "price_usd must not be negative", Value: *course.PriceUSD})
	}
	if course.PriceJPY != nil && *course.PriceJPY < 0 {
		errs = append(errs, ValidationError{Field: "price_jpy", Message: "price_jpy must not be negative", Value: *course.PriceJPY})
	}
	if course.TotalWeeks != nil && *course.TotalWeeks < 0 {
		errs = append(errs, ValidationError{Field: "total_weeks", Message: "total_weeks must not be negative", Value: *course.TotalWeeks})
	}
	if course.MaxEnrollment != nil && *course.MaxEnrollment < 0 {
		errs = append(errs, ValidationError{Field: "max_enrollment", Message: "max_enrollment must not be negative", Value: *course.MaxEnrollment})
	}

	return errs
}

func validateWeek(week *models.ParsedWeek, index int) []ValidationError {
	var errs []ValidationError
	prefix := fmt.Sprintf("weeks[%d]", index)

	if strings.TrimSpace(week.TitleEN) == "" {
		errs = append(errs, ValidationError{Field: prefix + ".title_en", Message: "week title_en is required"})
	}

	for j, a := range week.Assignments {
		if a.AssignmentType != nil && !models.ValidAssignmentTypes[*a.AssignmentType] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s.assignments[%d].assignment_type", prefix, j),
				Message: "invalid assignment_type, must be one of: homework, project, quiz, reading",
				Value:   *a.AssignmentType,
			})
		}
	}
	for j, r := range week.Resources {
		if r.ResourceType != nil && !models.ValidResourceTypes[*r.ResourceType] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s.resources[%d].resource_type", prefix, j),
				Message: "invalid resource_type, must be one of: video, article, tool, document, link",
				Value:   *r.ResourceType,
			})
		}
	}
	for j, s := range week.Sessions {
		if s.DurationMinutes != nil && *s.DurationMinutes < 0 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s.sessions[%d].duration_minutes", prefix, j),
				Message: "duration_minutes must not be negative",
				Value:   *s.DurationMinutes,
			})
		}
	}

	return errs
}

// ValidateTranslation checks the translation pass output: the same shallow
// pattern as the course check, against the translated shape
func ValidateTranslation(payload []byte) (*models.TranslationOutput, error) {
	var shape rawShape
	if err := json.Unmarshal(payload, &shape); err != nil {
		return nil, &SchemaValidationError{Errors: []ValidationError{
			{Field: "course", Message: fmt.Sprintf("payload is not a translation object: %v", err)},
		}}
	}

	var errs []ValidationError

	if shape.Weeks == nil || !isJSONArray(shape.Weeks) {
		errs = append(errs, ValidationError{Field: "weeks", Message: "weeks must be a list"})
	}

	var out models.TranslationOutput
	if err := json.Unmarshal(payload, &out); err != nil {
		errs = append(errs, ValidationError{Field: "course", Message: fmt.Sprintf("payload does not match the translation schema: %v", err)})
		return nil, &SchemaValidationError{Errors: errs}
	}

	if strings.TrimSpace(out.Course.TitleJP) == "" {
		errs = append(errs, ValidationError{Field: "title_jp", Message: "course title_jp is required"})
	}

	if len(errs) > 0 {
		return nil, &SchemaValidationError{Errors: errs}
	}
	return &out, nil
}
