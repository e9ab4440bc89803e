package pipeline

import (
	"context"
	"strings"

	"github.com/yksoni-monk/JobApplicationAI/internal/analysis"
	"github.com/yksoni-monk/JobApplicationAI/internal/email"

	"go.uber.org/zap"
)

// Summary is the final report of a workflow run.
type Summary struct {
	OverallAssessment  string   `json:"overall_assessment"`
	KeyHighlights      []string `json:"key_highlights"`
	EmailEffectiveness string   `json:"email_effectiveness"`
	NextSteps          []string `json:"next_steps"`
	ResumeSummary      string   `json:"resume_summary"`
	JobSummary         string   `json:"job_summary"`
	ValueProposition   string   `json:"value_proposition"`
	Metrics            Metrics  `json:"metrics"`
}

type Metrics struct {
	SkillMatchScore         float64 `json:"skill_match_score"`
	RelevantExperienceCount int     `json:"relevant_experience_count"`
	EmailStyle              string  `json:"email_style"`
}

func (p *Pipeline) buildSummary(ctx context.Context, resumeText, jobText string, strategy *analysis.Strategy, content *email.Content) *Summary {
	resumeSummary := p.generateOrFallback(ctx, "resume summary",
		resumeSummaryPrompt(resumeText, jobText),
		func() string { return fallbackResumeSummary(resumeText) },
	)

	jobSummary := p.generateOrFallback(ctx, "job summary",
		jobSummaryPrompt(jobText),
		func() string { return fallbackJobSummary(jobText) },
	)

	valueProp := p.generateOrFallback(ctx, "value proposition",
		valuePropositionPrompt(resumeSummary, jobSummary),
		fallbackValueProposition,
	)

	return &Summary{
		OverallAssessment:  overallAssessment(strategy),
		KeyHighlights:      strategy.Recommendations,
		EmailEffectiveness: emailEffectiveness(content),
		NextSteps:          nextSteps(strategy),
		ResumeSummary:      resumeSummary,
		JobSummary:         jobSummary,
		ValueProposition:   valueProp,
		Metrics: Metrics{
			SkillMatchScore:         strategy.SkillMatchScore,
			RelevantExperienceCount: strategy.RelevantExperienceCount,
			EmailStyle:              content.StyleUsed,
		},
	}
}

// generateOrFallback asks the LLM and falls back to a deterministic summary
// when the call fails. The failure is logged, not hidden.
func (p *Pipeline) generateOrFallback(ctx context.Context, what, prompt string, fallback func() string) string {
	out, err := p.generator.GenerateContent(ctx, prompt)
	if err != nil {
		p.logger.Warn("llm generation failed, using fallback",
			zap.String("what", what),
			zap.Error(err),
		)
		return fallback()
	}
	return strings.TrimSpace(out)
}

func overallAssessment(s *analysis.Strategy) string {
	switch {
	case s.SkillMatchScore >= 0.7 && s.RelevantExperienceCount > 0:
		return "Strong application with excellent skill match and relevant experience"
	case s.SkillMatchScore >= 0.4 || s.RelevantExperienceCount > 0:
		return "Good application with moderate skill match and some relevant experience"
	default:
		return "Challenging application requiring emphasis on transferable skills and potential"
	}
}

func emailEffectiveness(content *email.Content) string {
	switch bodyLen := len(content.Body); {
	case bodyLen > 500:
		return "Comprehensive email with detailed experience highlights"
	case bodyLen > 300:
		return "Well-balanced email with good detail level"
	default:
		return "Concise email - consider adding more specific examples"
	}
}

func nextSteps(s *analysis.Strategy) []string {
	var steps []string

	if s.SkillMatchScore < 0.5 {
		steps = append(steps, "Consider highlighting transferable skills and learning ability")
	}
	if s.RelevantExperienceCount == 0 {
		steps = append(steps, "Emphasize project work and academic achievements")
	}

	return append(steps,
		"Review and customize the generated email",
		"Prepare specific examples for interview questions",
		"Research the company culture and recent news",
		"Prepare questions about the role and team",
	)
}

func fallbackResumeSummary(resumeText string) string {
	lines := firstLines(resumeText, 3)
	if len(lines) == 0 {
		return "Experienced professional with relevant background in technology and business."
	}
	return "Experienced professional with background in technology and business. Key areas include: " + strings.Join(lines, ", ")
}

func fallbackJobSummary(jobText string) string {
	lines := firstLines(jobText, 2)
	if len(lines) == 0 {
		return "Technical role requiring relevant experience and skills."
	}
	return "Role requiring technical expertise and business acumen. Key focus areas: " + strings.Join(lines, ", ")
}

func fallbackValueProposition() string {
	return "My experience in technology and business leadership directly aligns with your needs. I can bring proven results and strategic thinking to help achieve your goals."
}

func firstLines(text string, n int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == n {
			break
		}
	}
	return lines
}
