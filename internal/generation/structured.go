package generation

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
)

// Models frequently wrap JSON output in a fenced code block even when asked
// not to. Match the first fence and take its body.
var fenceRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSON strips a markdown code fence from response text if one is
// present, falling back to the raw text
func ExtractJSON(text string) string {
	if m := fenceRegex.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return strings.TrimSpace(text)
}

// Structured is the shared structured-generation primitive: prompt in,
// validated value out. It is parameterized by a system prompt and an
// output-shape validator so the three call sites (wizard generation,
// markdown extraction, translation) share one fence-stripping/decoding path.
//
// A stop reason of "max_tokens" fails fast with a TruncatedError before any
// decode is attempted; a truncated JSON body would otherwise surface as a
// misleading generic parse error.
func Structured[T any](ctx context.Context, c Client, maxTokens int, systemPrompt, userPrompt string, validate func([]byte) (T, error)) (T, error) {
	var zero T

	completion, err := c.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return zero, err
	}

	if completion.StopReason == "max_tokens" {
		return zero, &TruncatedError{MaxTokens: maxTokens}
	}

	payload := ExtractJSON(completion.Text)
	if !json.Valid([]byte(payload)) {
		// Re-run the decode purely to capture the parse error for the message
		var probe any
		decodeErr := json.Unmarshal([]byte(payload), &probe)
		return zero, &MalformedJSONError{Err: decodeErr, Text: payload}
	}

	return validate([]byte(payload))
}
