package prompt

import (
	"encoding/json"
	"fmt"

	"github.com/course-authoring-api/internal/models"
)

// TranslationSystemPrompt is the system instruction for the post-hoc
// translation pass over an already-persisted course
const TranslationSystemPrompt = `You are a professional English-to-Japanese translator specializing in technology education content.

The user message contains a JSON tree of course content: a course, its weeks, and each week's sessions and assignments. Every record carries an "id" and English fields ending in _en.

Return a JSON object with the identical tree structure where:
- Every "id" is echoed back EXACTLY as received. Never change, regenerate, or reorder ids. Never add or drop records.
- Each _en field is replaced by a _jp field containing its Japanese translation ("title_en" becomes "title_jp", and so on).
- Fields that are null in the input stay null in the output.

Translation register:
- Use polite/formal Japanese (desu/masu form) appropriate for professional education material.
- Keep established technical terms in katakana or English where that is the standard Japanese usage (e.g. プロンプト, API, ChatGPT). Do not force-translate product names.

Output ONLY the JSON object. No prose before or after it.`

// BuildTranslationPrompt renders the English-only course tree as the
// user-turn text block
func BuildTranslationPrompt(input models.TranslationInput) (string, error) {
	encoded, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode translation input: %w", err)
	}
	return fmt.Sprintf("Translate this course content:\n\n%s", string(encoded)), nil
}
