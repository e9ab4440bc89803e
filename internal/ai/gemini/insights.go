package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	_ "embed"

	"github.com/yksoni-monk/JobApplicationAI/internal/ai"

	"github.com/mitchellh/mapstructure"
)

//go:embed resume_prompt.md
var resumePromptTemplate string

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Insights extracts structured resume insights through a single generation
// call that requests a JSON response.
type Insights struct {
	generator contentGenerator
}

func NewInsights(generator contentGenerator) *Insights {
	return &Insights{generator: generator}
}

// AnalyzeResume asks the model for key skills, strengths, and a summary of
// the provided resume text.
func (i *Insights) AnalyzeResume(ctx context.Context, resumeText string) (*ai.ResumeInsights, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return nil, fmt.Errorf("resume text must not be empty")
	}

	prompt := strings.ReplaceAll(resumePromptTemplate, "{{RESUME_TEXT}}", resumeText)

	raw, err := i.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	insights, err := parseInsights(raw)
	if err != nil {
		return nil, err
	}

	insights.Raw = raw
	return insights, nil
}

func parseInsights(raw string) (*ai.ResumeInsights, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	var insights ai.ResumeInsights
	cfg := &mapstructure.DecoderConfig{
		Result:           &insights,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("build insights decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}

	insights.Summary = strings.TrimSpace(insights.Summary)
	for idx, skill := range insights.KeySkills {
		insights.KeySkills[idx] = strings.TrimSpace(skill)
	}
	for idx, s := range insights.Strengths {
		insights.Strengths[idx] = strings.TrimSpace(s)
	}

	return &insights, nil
}

// extractJSON strips markdown code fences that models sometimes wrap around
// JSON payloads despite instructions.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
