package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateParsedCourse(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantErrors int
		wantFields []string
	}{
		{
			name: "valid minimal course",
			payload: `{
				"course": {"title_en": "AI Foundations"},
				"weeks": []
			}`,
			wantErrors: 0,
		},
		{
			name: "valid full week",
			payload: `{
				"course": {
					"title_en": "AI Foundations",
					"level": "beginner",
					"format": "online",
					"language": "both",
					"price_usd": 299.5,
					"price_jpy": 44800
				},
				"weeks": [{
					"week_number": 1,
					"title_en": "Getting Started",
					"sessions": [{"title_en": "Intro", "duration_minutes": 90}],
					"assignments": [{"title_en": "First prompt", "assignment_type": "homework"}],
					"vocabulary": [{"term_en": "prompt"}],
					"resources": [{"title_en": "Docs", "resource_type": "article"}]
				}]
			}`,
			wantErrors: 0,
		},
		{
			name:       "missing title_en",
			payload:    `{"course": {}, "weeks": []}`,
			wantErrors: 1,
			wantFields: []string{"title_en"},
		},
		{
			name:       "missing weeks key",
			payload:    `{"course": {"title_en": "X"}}`,
			wantErrors: 1,
			wantFields: []string{"weeks"},
		},
		{
			name:       "weeks is null",
			payload:    `{"course": {"title_en": "X"}, "weeks": null}`,
			wantErrors: 1,
			wantFields: []string{"weeks"},
		},
		{
			name:       "weeks is an object",
			payload:    `{"course": {"title_en": "X"}, "weeks": {"1": {}}}`,
			wantErrors: 2, // shape error plus typed decode failure
			wantFields: []string{"weeks"},
		},
		{
			name: "invalid level enum",
			payload: `{
				"course": {"title_en": "X", "level": "expert"},
				"weeks": []
			}`,
			wantErrors: 1,
			wantFields: []string{"level"},
		},
		{
			name: "negative price",
			payload: `{
				"course": {"title_en": "X", "price_usd": -10},
				"weeks": []
			}`,
			wantErrors: 1,
			wantFields: []string{"price_usd"},
		},
		{
			name: "invalid assignment type",
			payload: `{
				"course": {"title_en": "X"},
				"weeks": [{
					"week_number": 1,
					"title_en": "W1",
					"assignments": [{"title_en": "A", "assignment_type": "essay"}]
				}]
			}`,
			wantErrors: 1,
			wantFields: []string{"weeks[0].assignments[0].assignment_type"},
		},
		{
			name: "week missing title",
			payload: `{
				"course": {"title_en": "X"},
				"weeks": [{"week_number": 1}]
			}`,
			wantErrors: 1,
			wantFields: []string{"weeks[0].title_en"},
		},
		{
			name: "non-contiguous week numbers are accepted",
			payload: `{
				"course": {"title_en": "X"},
				"weeks": [
					{"week_number": 3, "title_en": "First"},
					{"week_number": 7, "title_en": "Second"}
				]
			}`,
			wantErrors: 0,
		},
		{
			name: "multiple errors accumulate",
			payload: `{
				"course": {"level": "expert", "price_jpy": -1},
				"weeks": [{"week_number": 1}]
			}`,
			wantErrors: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ValidateParsedCourse([]byte(tt.payload))

			if tt.wantErrors == 0 {
				if err != nil {
					t.Fatalf("ValidateParsedCourse() unexpected error: %v", err)
				}
				if data == nil {
					t.Fatal("Expected parsed data for valid payload")
				}
				return
			}

			if err == nil {
				t.Fatal("Expected validation error")
			}
			var schemaErr *SchemaValidationError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("Expected *SchemaValidationError, got %T: %v", err, err)
			}
			if len(schemaErr.Errors) != tt.wantErrors {
				t.Errorf("Got %d errors, want %d. Errors: %v", len(schemaErr.Errors), tt.wantErrors, schemaErr.Errors)
			}
			for _, wantField := range tt.wantFields {
				found := false
				for _, ve := range schemaErr.Errors {
					if ve.Field == wantField {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("Expected error on field %q, got %v", wantField, schemaErr.Errors)
				}
			}
		})
	}
}

func TestValidateParsedCourse_NotAnObject(t *testing.T) {
	_, err := ValidateParsedCourse([]byte(`["not", "a", "course"]`))
	if err == nil {
		t.Fatal("Expected error for non-object payload")
	}
	var schemaErr *SchemaValidationError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Expected *SchemaValidationError, got %T", err)
	}
}

func TestSchemaValidationError_Message(t *testing.T) {
	err := &SchemaValidationError{Errors: []ValidationError{
		{Field: "title_en", Message: "title_en is required"},
		{Field: "weeks", Message: "weeks must be a list"},
	}}

	msg := err.Error()
	if !strings.Contains(msg, "title_en is required") || !strings.Contains(msg, "weeks must be a list") {
		t.Errorf("Error message should name every failure, got: %s", msg)
	}
}

func TestValidateTranslation(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantErr    bool
		wantFields []string
	}{
		{
			name: "valid translation",
			payload: `{
				"course": {"id": "c-1", "title_jp": "AI入門"},
				"weeks": [{
					"id": "w-1",
					"title_jp": "はじめに",
					"sessions": [{"id": "s-42", "title_jp": "モデルとは"}],
					"assignments": []
				}]
			}`,
			wantErr: false,
		},
		{
			name:       "missing title_jp",
			payload:    `{"course": {"id": "c-1"}, "weeks": []}`,
			wantErr:    true,
			wantFields: []string{"title_jp"},
		},
		{
			name:       "weeks missing",
			payload:    `{"course": {"id": "c-1", "title_jp": "AI入門"}}`,
			wantErr:    true,
			wantFields: []string{"weeks"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ValidateTranslation([]byte(tt.payload))

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("ValidateTranslation() unexpected error: %v", err)
				}
				if out == nil {
					t.Fatal("Expected output for valid payload")
				}
				return
			}

			if err == nil {
				t.Fatal("Expected validation error")
			}
			var schemaErr *SchemaValidationError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("Expected *SchemaValidationError, got %T: %v", err, err)
			}
			for _, wantField := range tt.wantFields {
				found := false
				for _, ve := range schemaErr.Errors {
					if ve.Field == wantField {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("Expected error on field %q, got %v", wantField, schemaErr.Errors)
				}
			}
		})
	}
}
