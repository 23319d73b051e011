// Package assess obtains ATS compatibility assessments for résumé text from a
// generative-text service.
package assess

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/types"
)

// maxResumeChars caps how much résumé text is embedded in the prompt.
// Longer résumés are silently truncated, not rejected.
const maxResumeChars = 4000

// Assessor runs the assessment pipeline against an llm.Client. It holds no
// per-request state and is safe for concurrent use.
type Assessor struct {
	client llm.Client
}

// NewAssessor creates an Assessor backed by the given client.
func NewAssessor(client llm.Client) *Assessor {
	return &Assessor{client: client}
}

// Assess sends the résumé text to the generative service and parses the JSON
// object embedded in the response. All failures are returned as *Error; the
// parsed result is not validated for score range or list lengths.
func (a *Assessor) Assess(ctx context.Context, resumeText string) (*types.AtsAssessment, error) {
	prompt := buildPrompt(resumeText)

	raw, err := a.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, &Error{Message: "Gemini request failed", Cause: err}
	}

	payload, err := ExtractJSON(raw)
	if err != nil {
		return nil, &Error{Message: "Gemini response contained no JSON object", Cause: err}
	}

	var result types.AtsAssessment
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, &Error{Message: "failed to parse assessment JSON", Cause: err}
	}

	return &result, nil
}

// Analyze is a convenience wrapper that creates a Gemini client for a single
// assessment and closes it afterwards. A missing or rejected API key surfaces
// here as an assessment error.
func Analyze(ctx context.Context, resumeText, apiKey string) (*types.AtsAssessment, error) {
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, &Error{Message: "failed to create Gemini client", Cause: err}
	}
	defer func() { _ = client.Close() }()

	return NewAssessor(client).Assess(ctx, resumeText)
}

// ExtractJSON returns the substring from the first '{' to the last '}'
// inclusive. This tolerates leading and trailing commentary the service may
// emit around the JSON object.
func ExtractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON object delimiters found in response")
	}
	return text[start : end+1], nil
}

// buildPrompt formats the embedded analysis prompt with truncated résumé text.
func buildPrompt(resumeText string) string {
	template := prompts.MustGet("ats.json", "analyze")
	return prompts.Format(template, map[string]string{
		"ResumeText": truncate(resumeText, maxResumeChars),
	})
}

// truncate returns the first limit runes of s.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
