// Package pipeline orchestrates the resume-to-email workflow: cached
// document extraction, heuristic analysis, strategy, email generation, and
// the final summary.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yksoni-monk/JobApplicationAI/internal/ai"
	"github.com/yksoni-monk/JobApplicationAI/internal/analysis"
	"github.com/yksoni-monk/JobApplicationAI/internal/email"

	"go.uber.org/zap"
)

// DocumentSource provides plain text for the two input documents. The
// document.Parser satisfies it; tests substitute fixtures.
type DocumentSource interface {
	ResumeText(path string) (string, error)
	JobText(path string) (string, error)
}

// ResumeAnalyzer extracts structured insights from resume text via the LLM.
type ResumeAnalyzer interface {
	AnalyzeResume(ctx context.Context, resumeText string) (*ai.ResumeInsights, error)
}

// Deps are the collaborators a Pipeline needs.
type Deps struct {
	Documents DocumentSource
	Generator ai.Generator
	Analyzer  ResumeAnalyzer
	Logger    *zap.Logger
	OutputDir string
}

// Pipeline runs the workflow end to end.
type Pipeline struct {
	documents DocumentSource
	generator ai.Generator
	analyzer  ResumeAnalyzer
	logger    *zap.Logger
	outputDir string
}

// Result is the complete outcome of one workflow run, persisted as JSON.
type Result struct {
	Success               bool                    `json:"success"`
	EmailStyleUsed        string                  `json:"email_style_used"`
	Resume                *analysis.ResumeContent `json:"resume"`
	ResumeInsights        *ai.ResumeInsights      `json:"resume_insights,omitempty"`
	Job                   *analysis.JobAnalysis   `json:"job_analysis"`
	Strategy              *analysis.Strategy      `json:"strategic_analysis"`
	Email                 *email.Content          `json:"email"`
	RefinementSuggestions string                  `json:"refinement_suggestions,omitempty"`
	Summary               *Summary                `json:"final_summary"`
	EmailPath             string                  `json:"email_path"`
	ResultsPath           string                  `json:"results_path"`
	ElapsedSeconds        float64                 `json:"elapsed_seconds"`
	Timestamp             string                  `json:"timestamp"`
}

func New(deps Deps) (*Pipeline, error) {
	if deps.Documents == nil {
		return nil, fmt.Errorf("document source is required")
	}
	if deps.Generator == nil {
		return nil, fmt.Errorf("generator is required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.OutputDir == "" {
		deps.OutputDir = "output"
	}

	return &Pipeline{
		documents: deps.Documents,
		generator: deps.Generator,
		analyzer:  deps.Analyzer,
		logger:    deps.Logger,
		outputDir: deps.OutputDir,
	}, nil
}

// Run executes the workflow for the given input files and email style
// ("auto" resolves the style from the job profile).
func (p *Pipeline) Run(ctx context.Context, resumePath, jobPath, style string) (*Result, error) {
	start := time.Now()

	if style != analysis.StyleAuto && !email.IsKnownStyle(style) {
		return nil, fmt.Errorf("unknown email style %q", style)
	}

	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	p.logger.Info("parsing resume", zap.String("path", resumePath))
	resumeText, err := p.documents.ResumeText(resumePath)
	if err != nil {
		return nil, fmt.Errorf("resume parsing failed: %w", err)
	}

	p.logger.Info("reading job description", zap.String("path", jobPath))
	jobText, err := p.documents.JobText(jobPath)
	if err != nil {
		return nil, fmt.Errorf("job analysis failed: %w", err)
	}

	p.logger.Info("structuring resume")
	resume := analysis.StructureResume(resumeText)

	insights := p.resumeInsights(ctx, resumeText)
	if insights != nil && len(resume.Skills) == 0 {
		resume.Skills = insights.KeySkills
	}

	p.logger.Info("analyzing job description")
	job := analysis.AnalyzeJob(jobText)

	p.logger.Info("performing strategic analysis")
	strategy := analysis.Strategize(resume, job)

	if style == analysis.StyleAuto {
		style = analysis.OptimalStyle(job, strategy)
		p.logger.Info("email style selected", zap.String("style", style))
	}

	p.logger.Info("generating email", zap.String("style", style))
	content, err := email.Compose(resume, job, style)
	if err != nil {
		return nil, fmt.Errorf("email generation failed: %w", err)
	}

	refinement := p.generateOrFallback(ctx, "email refinement",
		refinementPrompt(content.FullEmail),
		func() string { return "" },
	)

	emailPath := filepath.Join(p.outputDir, "email.md")
	if err := content.SaveMarkdown(emailPath, map[string]string{"Style": style}); err != nil {
		return nil, err
	}

	p.logger.Info("generating final summary")
	summary := p.buildSummary(ctx, resumeText, jobText, strategy, content)

	result := &Result{
		Success:               true,
		EmailStyleUsed:        style,
		Resume:                resume,
		ResumeInsights:        insights,
		Job:                   job,
		Strategy:              strategy,
		Email:                 content,
		RefinementSuggestions: refinement,
		Summary:               summary,
		EmailPath:             emailPath,
		ResultsPath:           filepath.Join(p.outputDir, "workflow_results.json"),
		ElapsedSeconds:        time.Since(start).Seconds(),
		Timestamp:             time.Now().Format(time.RFC3339),
	}

	if err := p.saveResult(result); err != nil {
		return nil, err
	}

	p.logger.Info("workflow completed",
		zap.Float64("skill_match_score", strategy.SkillMatchScore),
		zap.String("assessment", summary.OverallAssessment),
		zap.Float64("elapsed_seconds", result.ElapsedSeconds),
	)

	return result, nil
}

// resumeInsights runs the LLM resume analysis. A failure degrades the run to
// heuristics only instead of aborting it.
func (p *Pipeline) resumeInsights(ctx context.Context, resumeText string) *ai.ResumeInsights {
	if p.analyzer == nil {
		return nil
	}

	p.logger.Info("analyzing resume with llm", zap.String("model", p.generator.Model()))
	insights, err := p.analyzer.AnalyzeResume(ctx, resumeText)
	if err != nil {
		p.logger.Warn("llm resume analysis failed, continuing with heuristics", zap.Error(err))
		return nil
	}
	return insights
}

func (p *Pipeline) saveResult(result *Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling workflow results: %w", err)
	}
	if err := os.WriteFile(result.ResultsPath, data, 0o644); err != nil {
		return fmt.Errorf("writing workflow results: %w", err)
	}
	return nil
}
