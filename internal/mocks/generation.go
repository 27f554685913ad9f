package mocks

import (
	"context"

	"github.com/course-authoring-api/internal/generation"
)

// CompleteCall records the prompts of one Complete invocation
type CompleteCall struct {
	SystemPrompt string
	UserPrompt   string
}

// MockGenerationClient is a scriptable implementation of generation.Client.
// Completions are returned in order; the last one repeats if calls exceed
// the scripted responses.
type MockGenerationClient struct {
	Completions []*generation.Completion
	Err         error
	Calls       []CompleteCall
}

func NewMockGenerationClient(texts ...string) *MockGenerationClient {
	m := &MockGenerationClient{}
	for _, text := range texts {
		m.Completions = append(m.Completions, &generation.Completion{
			Text:       text,
			StopReason: "end_turn",
		})
	}
	return m
}

func (m *MockGenerationClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (*generation.Completion, error) {
	m.Calls = append(m.Calls, CompleteCall{SystemPrompt: systemPrompt, UserPrompt: userPrompt})
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Completions) == 0 {
		return &generation.Completion{Text: "", StopReason: "end_turn"}, nil
	}
	idx := len(m.Calls) - 1
	if idx >= len(m.Completions) {
		idx = len(m.Completions) - 1
	}
	return m.Completions[idx], nil
}
