package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/course-authoring-api/internal/config"
	"github.com/course-authoring-api/internal/generation"
	"github.com/course-authoring-api/internal/models"
	"github.com/course-authoring-api/internal/prompt"
	"github.com/course-authoring-api/internal/repository"
	"github.com/course-authoring-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// generationService is the concrete implementation of GenerationService
type generationService struct {
	repos  *repository.Repositories
	client generation.Client
	cfg    *config.Config
	log    zerolog.Logger
}

// newGenerationService creates a new GenerationService
func newGenerationService(repos *repository.Repositories, client generation.Client, cfg *config.Config, log zerolog.Logger) *generationService {
	return &generationService{
		repos:  repos,
		client: client,
		cfg:    cfg,
		log:    log.With().Str("service", "generation").Logger(),
	}
}

// GenerateFromWizard runs the wizard flow: parameters in, validated
// ParsedCourseData out. No persistence happens here; the result goes to the
// preview step.
func (s *generationService) GenerateFromWizard(ctx context.Context, params models.WizardParams) (*models.ParsedCourseData, error) {
	systemPrompt := prompt.WizardSystemPrompt(params.StudentLanguage)
	userPrompt := prompt.BuildWizardPrompt(params)

	s.log.Info().
		Str("topic", params.Topic).
		Str("student_language", params.StudentLanguage).
		Int("total_weeks", params.TotalWeeks).
		Msg("Generating course from wizard parameters")

	data, err := generation.Structured(ctx, s.client, s.cfg.Generation.MaxTokens,
		systemPrompt, userPrompt, validation.ValidateParsedCourse)
	if err != nil {
		s.log.Error().Err(err).Str("topic", params.Topic).Msg("Course generation failed")
		return nil, err
	}

	s.log.Info().
		Str("title", data.Course.TitleEN).
		Int("weeks", len(data.Weeks)).
		Msg("Course generated")

	return data, nil
}

// ParseMarkdown runs the upload flow: an audit record is created in
// "parsing", then transitions to "parsed" with the extracted JSON or
// "failed" with the error message. Returns the upload id in both cases so
// the caller can surface the audit record.
func (s *generationService) ParseMarkdown(ctx context.Context, req *models.ParseRequest) (string, *models.ParsedCourseData, error) {
	now := time.Now()
	upload := &models.CourseUpload{
		ID:          uuid.New().String(),
		Filename:    req.Filename,
		RawMarkdown: req.Markdown,
		Status:      models.UploadStatusParsing,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repos.Upload.Create(ctx, upload); err != nil {
		return "", nil, err
	}

	s.log.Info().
		Str("upload_id", upload.ID).
		Str("filename", req.Filename).
		Int("size_bytes", len(req.Markdown)).
		Msg("Parsing uploaded course document")

	systemPrompt := prompt.ExtractionSystemPrompt(req.StudentLanguage)
	userPrompt := prompt.BuildMarkdownPrompt(req.Markdown, req.Filename)

	data, err := generation.Structured(ctx, s.client, s.cfg.Generation.MaxTokens,
		systemPrompt, userPrompt, validation.ValidateParsedCourse)
	if err != nil {
		s.log.Error().Err(err).Str("upload_id", upload.ID).Msg("Document parsing failed")
		if markErr := s.repos.Upload.MarkFailed(ctx, upload.ID, err.Error()); markErr != nil {
			s.log.Error().Err(markErr).Str("upload_id", upload.ID).Msg("Failed to record upload failure")
		}
		return upload.ID, nil, err
	}

	parsedJSON, err := json.Marshal(data)
	if err != nil {
		return upload.ID, nil, err
	}
	if err := s.repos.Upload.MarkParsed(ctx, upload.ID, string(parsedJSON)); err != nil {
		s.log.Error().Err(err).Str("upload_id", upload.ID).Msg("Failed to record parsed payload")
	}

	s.log.Info().
		Str("upload_id", upload.ID).
		Str("title", data.Course.TitleEN).
		Int("weeks", len(data.Weeks)).
		Msg("Document parsed")

	return upload.ID, data, nil
}
