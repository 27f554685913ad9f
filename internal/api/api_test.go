package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/course-authoring-api/internal/api"
	"github.com/course-authoring-api/internal/config"
	"github.com/course-authoring-api/internal/generation"
	"github.com/course-authoring-api/internal/mocks"
	"github.com/course-authoring-api/internal/models"
	"github.com/course-authoring-api/internal/repository"
	"github.com/course-authoring-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type testRouter struct {
	router     *gin.Engine
	courses    *mocks.MockCourseRepository
	curriculum *mocks.MockCurriculumRepository
	uploads    *mocks.MockUploadRepository
	client     *mocks.MockGenerationClient
}

func setupTestRouter(client *mocks.MockGenerationClient) *testRouter {
	gin.SetMode(gin.TestMode)

	curriculum := mocks.NewMockCurriculumRepository()
	courses := mocks.NewMockCourseRepository()
	courses.Curriculum = curriculum
	uploads := mocks.NewMockUploadRepository()

	repos := &repository.Repositories{
		Course:     courses,
		Curriculum: curriculum,
		Upload:     uploads,
	}
	cfg := &config.Config{
		Server:      config.ServerConfig{Port: "8080"},
		Generation:  config.GenerationConfig{MaxTokens: 1000},
		Materialize: config.MaterializeConfig{MaxUploadSize: 1024},
	}

	log := zerolog.Nop()
	services := service.NewServices(repos, client, cfg, log)

	return &testRouter{
		router:     api.NewRouter(services, cfg, log),
		courses:    courses,
		curriculum: curriculum,
		uploads:    uploads,
		client:     client,
	}
}

const fencedCourseJSON = "```json\n" + `{
	"course": {"title_en": "AI Foundations", "price_usd": 299},
	"weeks": [{"week_number": 1, "title_en": "Getting Started"}]
}` + "\n```"

func TestHealthEndpoint(t *testing.T) {
	tr := setupTestRouter(mocks.NewMockGenerationClient())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "course-authoring-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	tr := setupTestRouter(mocks.NewMockGenerationClient())
	tr.courses.Create(context.Background(), &models.Course{ID: "c-1", TitleEN: "A"})
	tr.courses.Create(context.Background(), &models.Course{ID: "c-2", TitleEN: "B"})

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	db := response["database"].(map[string]interface{})
	if db["courses"].(float64) != 2 {
		t.Errorf("Expected 2 courses, got %v", db["courses"])
	}
}

func TestGenerateEndpoint(t *testing.T) {
	tr := setupTestRouter(mocks.NewMockGenerationClient(fencedCourseJSON))

	body, _ := json.Marshal(models.WizardParams{
		Topic:           "AI for Marketers",
		StudentLanguage: "en",
		TotalWeeks:      4,
	})
	req := httptest.NewRequest("POST", "/v1/courses/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response struct {
		Data models.ParsedCourseData `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response.Data.Course.TitleEN != "AI Foundations" {
		t.Errorf("Expected generated course in response, got %+v", response.Data.Course)
	}
}

func TestGenerateEndpoint_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing topic", `{"student_language": "en", "total_weeks": 4}`},
		{"missing student_language", `{"topic": "AI", "total_weeks": 4}`},
		{"invalid student_language", `{"topic": "AI", "student_language": "fr", "total_weeks": 4}`},
		{"zero weeks", `{"topic": "AI", "student_language": "en"}`},
		{"malformed body", `{"topic":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := setupTestRouter(mocks.NewMockGenerationClient(fencedCourseJSON))

			req := httptest.NewRequest("POST", "/v1/courses/generate", bytes.NewReader([]byte(tt.body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			tr.router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestGenerateEndpoint_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		client     *mocks.MockGenerationClient
		wantStatus int
		wantCode   string
	}{
		{
			name: "transport error maps to 502",
			client: func() *mocks.MockGenerationClient {
				c := mocks.NewMockGenerationClient()
				c.Err = &generation.TransportError{StatusCode: 500, Body: "down"}
				return c
			}(),
			wantStatus: http.StatusBadGateway,
			wantCode:   "generation_failed",
		},
		{
			name: "truncation maps to 502",
			client: func() *mocks.MockGenerationClient {
				c := mocks.NewMockGenerationClient()
				c.Completions = []*generation.Completion{{Text: `{"cut`, StopReason: "max_tokens"}}
				return c
			}(),
			wantStatus: http.StatusBadGateway,
			wantCode:   "generation_truncated",
		},
		{
			name:       "prose output maps to 502",
			client:     mocks.NewMockGenerationClient("I cannot design that course."),
			wantStatus: http.StatusBadGateway,
			wantCode:   "generation_malformed",
		},
		{
			name:       "shape failure maps to 422",
			client:     mocks.NewMockGenerationClient(`{"course": {}, "weeks": []}`),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "validation_failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := setupTestRouter(tt.client)

			body := `{"topic": "AI", "student_language": "en", "total_weeks": 4}`
			req := httptest.NewRequest("POST", "/v1/courses/generate", bytes.NewReader([]byte(body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			tr.router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}

			var response map[string]interface{}
			json.Unmarshal(w.Body.Bytes(), &response)
			if response["code"] != tt.wantCode {
				t.Errorf("Expected code '%s', got '%v'", tt.wantCode, response["code"])
			}
		})
	}
}

func TestConfirmEndpoint(t *testing.T) {
	tr := setupTestRouter(mocks.NewMockGenerationClient())

	body := `{
		"data": {
			"course": {"title_en": "AI Foundations", "price_usd": 299},
			"weeks": [{"week_number": 1, "title_en": "Getting Started"}]
		},
		"start_date": "2026-09-07"
	}`
	req := httptest.NewRequest("POST", "/v1/courses", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var result models.MaterializeResult
	json.Unmarshal(w.Body.Bytes(), &result)
	if result.CourseID == "" {
		t.Fatal("Expected a course id in the response")
	}

	course, _ := tr.courses.GetWithCurriculum(context.Background(), result.CourseID)
	if course == nil {
		t.Fatal("Course should be persisted")
	}
	if course.PriceUSD == nil || *course.PriceUSD != 29900 {
		t.Errorf("Expected price stored as cents, got %v", course.PriceUSD)
	}
	wantUnlock := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	if course.Weeks[0].UnlockDate == nil || !course.Weeks[0].UnlockDate.Equal(wantUnlock) {
		t.Errorf("Expected week 1 unlock on start date, got %v", course.Weeks[0].UnlockDate)
	}
}

func TestConfirmEndpoint_RevalidatesEditedData(t *testing.T) {
	tr := setupTestRouter(mocks.NewMockGenerationClient())

	// edited payload lost its title
	body := `{"data": {"course": {"title_en": ""}, "weeks": []}}`
	req := httptest.NewRequest("POST", "/v1/courses", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected status 422, got %d: %s", w.Code, w.Body.String())
	}

	count, _ := tr.courses.Count(context.Background())
	if count != 0 {
		t.Errorf("Nothing should be persisted after a validation failure, found %d courses", count)
	}
}

func TestConfirmEndpoint_BadStartDate(t *testing.T) {
	tr := setupTestRouter(mocks.NewMockGenerationClient())

	body := `{
		"data": {"course": {"title_en": "X"}, "weeks": []},
		"start_date": "09/07/2026"
	}`
	req := httptest.NewRequest("POST", "/v1/courses", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestGetCourseEndpoint(t *testing.T) {
	tr := setupTestRouter(mocks.NewMockGenerationClient())
	tr.courses.Create(context.Background(), &models.Course{
		ID:      "c-1",
		Slug:    "ai-foundations",
		TitleEN: "AI Foundations",
		Status:  models.CourseStatusDraft,
	})

	req := httptest.NewRequest("GET", "/v1/courses/c-1", nil)
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var course models.CourseWithCurriculum
	json.Unmarshal(w.Body.Bytes(), &course)
	if course.TitleEN != "AI Foundations" {
		t.Errorf("Expected course in response, got %+v", course)
	}
}

func TestGetCourseEndpoint_NotFound(t *testing.T) {
	tr := setupTestRouter(mocks.NewMockGenerationClient())

	req := httptest.NewRequest("GET", "/v1/courses/missing", nil)
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestListCoursesEndpoint(t *testing.T) {
	tr := setupTestRouter(mocks.NewMockGenerationClient())
	tr.courses.Create(context.Background(), &models.Course{ID: "c-1", TitleEN: "A", Status: models.CourseStatusDraft})
	tr.courses.Create(context.Background(), &models.Course{ID: "c-2", TitleEN: "B", Status: models.CourseStatusPublished})

	req := httptest.NewRequest("GET", "/v1/courses?status=draft", nil)
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Count   int             `json:"count"`
		Courses []models.Course `json:"courses"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response.Count != 1 || response.Courses[0].ID != "c-1" {
		t.Errorf("Expected only the draft course, got %+v", response)
	}
}

func TestListCoursesEndpoint_InvalidStatus(t *testing.T) {
	tr := setupTestRouter(mocks.NewMockGenerationClient())

	req := httptest.NewRequest("GET", "/v1/courses?status=bogus", nil)
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestArchiveEndpoint(t *testing.T) {
	tr := setupTestRouter(mocks.NewMockGenerationClient())
	tr.courses.Create(context.Background(), &models.Course{ID: "c-1", TitleEN: "A", Status: models.CourseStatusPublished})

	req := httptest.NewRequest("POST", "/v1/courses/c-1/archive", nil)
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	course, _ := tr.courses.GetByID(context.Background(), "c-1")
	if course.Status != models.CourseStatusArchived {
		t.Errorf("Expected archived status, got %s", course.Status)
	}
}

func TestArchiveEndpoint_NotFound(t *testing.T) {
	tr := setupTestRouter(mocks.NewMockGenerationClient())

	req := httptest.NewRequest("POST", "/v1/courses/missing/archive", nil)
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestUploadEndpoint(t *testing.T) {
	tr := setupTestRouter(mocks.NewMockGenerationClient(fencedCourseJSON))

	body, _ := json.Marshal(models.ParseRequest{
		Filename: "course.md",
		Markdown: "# AI Foundations\n\nWeek 1: Getting Started",
	})
	req := httptest.NewRequest("POST", "/v1/uploads", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response struct {
		UploadID string                  `json:"upload_id"`
		Data     models.ParsedCourseData `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response.UploadID == "" {
		t.Fatal("Expected an upload id")
	}
	if response.Data.Course.TitleEN != "AI Foundations" {
		t.Errorf("Expected parsed data in response, got %+v", response.Data.Course)
	}

	upload, _ := tr.uploads.GetByID(context.Background(), response.UploadID)
	if upload == nil || upload.Status != models.UploadStatusParsed {
		t.Errorf("Expected a parsed upload record, got %+v", upload)
	}
}

func TestUploadEndpoint_TooLarge(t *testing.T) {
	tr := setupTestRouter(mocks.NewMockGenerationClient())

	big := make([]byte, 2048)
	for i := range big {
		big[i] = 'a'
	}
	body, _ := json.Marshal(models.ParseRequest{Filename: "big.md", Markdown: string(big)})
	req := httptest.NewRequest("POST", "/v1/uploads", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for oversized document, got %d", w.Code)
	}
}

func TestUploadEndpoint_FailureKeepsAuditRecord(t *testing.T) {
	client := mocks.NewMockGenerationClient()
	client.Err = &generation.TransportError{StatusCode: 500, Body: "down"}
	tr := setupTestRouter(client)

	body, _ := json.Marshal(models.ParseRequest{Filename: "course.md", Markdown: "# Broken"})
	req := httptest.NewRequest("POST", "/v1/uploads", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("Expected status 502, got %d", w.Code)
	}

	uploadID := w.Header().Get("X-Upload-Id")
	if uploadID == "" {
		t.Fatal("Expected X-Upload-Id header on failure")
	}
	upload, _ := tr.uploads.GetByID(context.Background(), uploadID)
	if upload == nil || upload.Status != models.UploadStatusFailed {
		t.Errorf("Expected a failed upload record, got %+v", upload)
	}
}

func TestGetUploadEndpoint(t *testing.T) {
	tr := setupTestRouter(mocks.NewMockGenerationClient())
	tr.uploads.Create(context.Background(), &models.CourseUpload{
		ID:       "u-1",
		Filename: "course.md",
		Status:   models.UploadStatusParsed,
	})

	req := httptest.NewRequest("GET", "/v1/uploads/u-1", nil)
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var upload models.CourseUpload
	json.Unmarshal(w.Body.Bytes(), &upload)
	if upload.Filename != "course.md" {
		t.Errorf("Expected upload record, got %+v", upload)
	}
}

func TestTranslateEndpoint(t *testing.T) {
	translationJSON := `{
		"course": {"id": "c-1", "title_jp": "AI入門"},
		"weeks": []
	}`
	tr := setupTestRouter(mocks.NewMockGenerationClient(translationJSON))
	tr.courses.Create(context.Background(), &models.Course{ID: "c-1", TitleEN: "AI Foundations"})

	req := httptest.NewRequest("POST", "/v1/courses/c-1/translate", nil)
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response struct {
		Translation models.TranslationOutput `json:"translation"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response.Translation.Course.TitleJP != "AI入門" {
		t.Errorf("Expected translated title in response, got %+v", response.Translation.Course)
	}
}

func TestApplyTranslationEndpoint(t *testing.T) {
	tr := setupTestRouter(mocks.NewMockGenerationClient())
	tr.courses.Create(context.Background(), &models.Course{ID: "c-1", TitleEN: "AI Foundations"})

	body := `{"course": {"id": "c-1", "title_jp": "AI入門"}, "weeks": []}`
	req := httptest.NewRequest("POST", "/v1/courses/c-1/translation", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	course, _ := tr.courses.GetByID(context.Background(), "c-1")
	if course.TitleJP == nil || *course.TitleJP != "AI入門" {
		t.Errorf("Expected applied translation, got %v", course.TitleJP)
	}
}
