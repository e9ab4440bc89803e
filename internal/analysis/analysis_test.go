package analysis

import (
	"strings"
	"testing"
)

const sampleResume = `Jane Doe
jane.doe@example.com
Phone: 555-0100

Technical Skills
Go, Python, Kubernetes, PostgreSQL

Work Experience
Built Go microservices on Kubernetes at a payments company.
Led migration to PostgreSQL.

Education
BS in Computer Science`

const sampleJob = `Senior Backend Engineer at Acme Technologies

Location: San Francisco, CA

We are a fast-growing startup in the finance industry looking for an
engineer with 5+ years of experience. You will be responsible for designing
scalable Go services. Must have experience with Kubernetes and PostgreSQL.
Strong leadership and communication skills required. Bachelor's degree preferred.
We offer a fast-paced environment and a collaborative culture.`

func TestStructureResume(t *testing.T) {
	content := StructureResume(sampleResume)

	if len(content.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d: %v", len(content.Sections), content.Sections)
	}

	wantSkills := []string{"Python", "Kubernetes", "PostgreSQL"}
	for _, skill := range wantSkills {
		found := false
		for _, got := range content.Skills {
			if got == skill {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected skill %q in %v", skill, content.Skills)
		}
	}

	if content.ContactInfo["email"] != "jane.doe@example.com" {
		t.Fatalf("unexpected contact info: %v", content.ContactInfo)
	}
}

func TestCandidateName(t *testing.T) {
	if got := CandidateName(sampleResume); got != "Jane Doe" {
		t.Fatalf("CandidateName = %q, want %q", got, "Jane Doe")
	}
	if got := CandidateName(""); got != "Your Name" {
		t.Fatalf("CandidateName on empty text = %q, want fallback", got)
	}
}

func TestAnalyzeJob(t *testing.T) {
	job := AnalyzeJob(sampleJob)

	if job.CompanyInfo.Name == "" {
		t.Fatal("expected a company name to be extracted")
	}
	if !strings.Contains(job.CompanyInfo.Name, "Acme Technologies") {
		t.Fatalf("company name = %q", job.CompanyInfo.Name)
	}

	for _, want := range []string{"go", "kubernetes", "postgresql"} {
		found := false
		for _, got := range job.Requirements.TechnicalSkills {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected technical skill %q in %v", want, job.Requirements.TechnicalSkills)
		}
	}

	if job.CompanySize != "startup" {
		t.Fatalf("company size = %q, want startup", job.CompanySize)
	}
	if job.CompanyStage != "early-stage" {
		t.Fatalf("company stage = %q, want early-stage", job.CompanyStage)
	}

	foundFinance := false
	for _, ind := range job.IndustryFocus {
		if ind == "finance" {
			foundFinance = true
		}
	}
	if !foundFinance {
		t.Fatalf("expected finance industry focus, got %v", job.IndustryFocus)
	}

	if len(job.Responsibilities) == 0 {
		t.Fatal("expected responsibilities to be extracted")
	}
	if len(job.KeyPhrases) == 0 {
		t.Fatal("expected key phrases to be extracted")
	}
	if job.TextLength != len(sampleJob) {
		t.Fatalf("text length = %d, want %d", job.TextLength, len(sampleJob))
	}
}

func TestStrategize(t *testing.T) {
	resume := StructureResume(sampleResume)
	job := AnalyzeJob(sampleJob)

	s := Strategize(resume, job)

	if s.SkillMatchScore <= 0 {
		t.Fatalf("expected positive skill match score, got %v", s.SkillMatchScore)
	}
	if s.RelevantExperienceCount == 0 {
		t.Fatal("expected relevant experience to be counted")
	}
	if len(s.Recommendations) == 0 {
		t.Fatal("expected recommendations")
	}
	if s.ContentFocus == FocusTransferableSkills {
		t.Fatalf("unexpected content focus %q for a matching resume", s.ContentFocus)
	}
}

func TestStrategizeNoOverlap(t *testing.T) {
	resume := StructureResume("John Smith\n\nSkills\nWatercolor painting, pottery")
	job := AnalyzeJob(sampleJob)

	s := Strategize(resume, job)

	if s.SkillMatchScore != 0 {
		t.Fatalf("expected zero score, got %v", s.SkillMatchScore)
	}
	if s.ContentFocus != FocusTransferableSkills {
		t.Fatalf("content focus = %q, want %q", s.ContentFocus, FocusTransferableSkills)
	}
}

func TestOptimalStyle(t *testing.T) {
	tests := []struct {
		name string
		job  *JobAnalysis
		want string
	}{
		{
			name: "startup prefers casual",
			job:  &JobAnalysis{CompanySize: "startup"},
			want: StyleStartupCasual,
		},
		{
			name: "enterprise prefers formal",
			job:  &JobAnalysis{CompanySize: "enterprise"},
			want: StyleExecutiveFormal,
		},
		{
			name: "leadership role",
			job: &JobAnalysis{
				CompanySize:  "unknown",
				Requirements: Requirements{SoftSkills: []string{"leadership"}},
			},
			want: StyleLeadershipFocused,
		},
		{
			name: "default",
			job:  &JobAnalysis{CompanySize: "unknown"},
			want: StyleExecutiveFormal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &Strategy{CompanySize: tc.job.CompanySize, CompanyStage: tc.job.CompanyStage}
			if got := OptimalStyle(tc.job, s); got != tc.want {
				t.Fatalf("OptimalStyle = %q, want %q", got, tc.want)
			}
		})
	}
}
