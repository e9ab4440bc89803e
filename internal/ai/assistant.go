// Package ai defines the interface between the pipeline and the hosted LLM
// backend that generates analysis and email content.
package ai

import "context"

// Generator produces text for a prompt. Implementations wrap a hosted LLM.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

// ResumeInsights is the structured result of the LLM resume analysis stage.
type ResumeInsights struct {
	KeySkills []string `mapstructure:"key_skills"`
	Strengths []string `mapstructure:"strengths"`
	Summary   string   `mapstructure:"summary"`
	Raw       string   `mapstructure:"-"`
}
