package email

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yksoni-monk/JobApplicationAI/internal/analysis"
)

func sampleInputs() (*analysis.ResumeContent, *analysis.JobAnalysis) {
	resume := &analysis.ResumeContent{
		RawText: "Jane Doe\nSenior engineer with a decade of Go.",
		Sections: map[string]string{
			"Work Experience": "Built Go and Kubernetes platforms.",
		},
		Skills: []string{"Go", "Kubernetes", "PostgreSQL"},
	}
	job := &analysis.JobAnalysis{
		CompanyInfo: analysis.CompanyInfo{Name: "Acme Technologies"},
		Requirements: analysis.Requirements{
			TechnicalSkills: []string{"go", "kubernetes"},
		},
		IndustryFocus: []string{"finance"},
	}
	return resume, job
}

func TestComposeExecutiveFormal(t *testing.T) {
	resume, job := sampleInputs()

	content, err := Compose(resume, job, "executive_formal")
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}

	if !strings.Contains(content.Subject, "Acme Technologies") {
		t.Fatalf("subject missing company: %q", content.Subject)
	}
	if content.Greeting != "Dear Hiring Manager," {
		t.Fatalf("greeting = %q", content.Greeting)
	}
	if !strings.Contains(content.Body, "Acme Technologies") {
		t.Fatal("body should mention the company")
	}
	if strings.Contains(content.FullEmail, "{") {
		t.Fatalf("unfilled placeholder left in email:\n%s", content.FullEmail)
	}
	if !strings.Contains(content.Signature, "Jane Doe") {
		t.Fatalf("signature = %q, want candidate name", content.Signature)
	}
	if content.StyleUsed != "executive_formal" {
		t.Fatalf("style used = %q", content.StyleUsed)
	}
}

func TestComposeAllStyles(t *testing.T) {
	resume, job := sampleInputs()

	for _, style := range Styles() {
		content, err := Compose(resume, job, style)
		if err != nil {
			t.Fatalf("Compose(%s) error: %v", style, err)
		}
		if strings.Contains(content.FullEmail, "{") {
			t.Fatalf("style %s left unfilled placeholders:\n%s", style, content.FullEmail)
		}
	}
}

func TestComposeUnknownCompany(t *testing.T) {
	resume, job := sampleInputs()
	job.CompanyInfo.Name = ""

	content, err := Compose(resume, job, "startup_casual")
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}
	if !strings.Contains(content.Subject, "the company") {
		t.Fatalf("subject = %q, want fallback company name", content.Subject)
	}
}

func TestComposeRejectsAutoStyle(t *testing.T) {
	resume, job := sampleInputs()
	if _, err := Compose(resume, job, analysis.StyleAuto); err == nil {
		t.Fatal("expected error for unresolved auto style")
	}
}

func TestGetTemplateFallback(t *testing.T) {
	got := GetTemplate("no_such_style")
	want := GetTemplate("executive_formal")
	if got.Subject != want.Subject {
		t.Fatal("unknown style should fall back to executive_formal")
	}
}

func TestIsKnownStyle(t *testing.T) {
	for _, style := range Styles() {
		if !IsKnownStyle(style) {
			t.Fatalf("style %q should be known", style)
		}
	}
	if IsKnownStyle("auto") {
		t.Fatal("auto is a selection mode, not a template style")
	}
}

func TestSaveMarkdown(t *testing.T) {
	resume, job := sampleInputs()
	content, err := Compose(resume, job, "executive_formal")
	if err != nil {
		t.Fatalf("Compose error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out", "email.md")
	err = content.SaveMarkdown(path, map[string]string{"Style": content.StyleUsed})
	if err != nil {
		t.Fatalf("SaveMarkdown error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved email: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, content.Subject) {
		t.Fatal("saved markdown missing subject")
	}
	if !strings.Contains(text, "## Email Metadata") {
		t.Fatal("saved markdown missing metadata section")
	}
	if !strings.Contains(text, "**Style:** executive_formal") {
		t.Fatal("saved markdown missing style metadata")
	}
}
