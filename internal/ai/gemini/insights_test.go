package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) Model() string {
	return "stub-model"
}

func TestAnalyzeResume(t *testing.T) {
	stub := &stubGenerator{response: `{"key_skills": ["Go", "Kubernetes"], "strengths": ["ships fast"], "summary": " Seasoned engineer. "}`}
	insights := NewInsights(stub)

	result, err := insights.AnalyzeResume(context.Background(), "resume body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.KeySkills) != 2 || result.KeySkills[0] != "Go" {
		t.Fatalf("unexpected key skills: %v", result.KeySkills)
	}
	if result.Summary != "Seasoned engineer." {
		t.Fatalf("expected trimmed summary, got %q", result.Summary)
	}
	if result.Raw == "" {
		t.Fatal("expected raw response to be preserved")
	}
	if !strings.Contains(stub.lastPrompt, "resume body") {
		t.Fatal("expected resume text to be embedded in prompt")
	}
}

func TestAnalyzeResumeFencedResponse(t *testing.T) {
	stub := &stubGenerator{response: "```json\n{\"key_skills\": [\"Python\"], \"strengths\": [], \"summary\": \"ok\"}\n```"}
	insights := NewInsights(stub)

	result, err := insights.AnalyzeResume(context.Background(), "resume body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.KeySkills) != 1 || result.KeySkills[0] != "Python" {
		t.Fatalf("unexpected key skills: %v", result.KeySkills)
	}
}

func TestAnalyzeResumeGeneratorError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	insights := NewInsights(stub)

	if _, err := insights.AnalyzeResume(context.Background(), "resume body"); err == nil {
		t.Fatal("expected generator error to propagate")
	}
}

func TestAnalyzeResumeMalformedResponse(t *testing.T) {
	stub := &stubGenerator{response: "I cannot do that."}
	insights := NewInsights(stub)

	if _, err := insights.AnalyzeResume(context.Background(), "resume body"); err == nil {
		t.Fatal("expected parse error for non-JSON response")
	}
}

func TestAnalyzeResumeEmptyInput(t *testing.T) {
	insights := NewInsights(&stubGenerator{})
	if _, err := insights.AnalyzeResume(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty resume text")
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare json", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "plain fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding space", in: "  {\"a\":1}  ", want: `{"a":1}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.in); got != tc.want {
				t.Fatalf("extractJSON(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
