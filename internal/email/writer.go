package email

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yksoni-monk/JobApplicationAI/internal/analysis"
)

// Content is a fully rendered email plus its parts.
type Content struct {
	Subject   string `json:"subject"`
	Greeting  string `json:"greeting"`
	Body      string `json:"body"`
	Closing   string `json:"closing"`
	Signature string `json:"signature"`
	FullEmail string `json:"full_email"`
	StyleUsed string `json:"style_used"`
}

// relevantSection is an experience section scored against job requirements.
type relevantSection struct {
	name  string
	score int
}

// Compose builds the email for the given style from resume content and job
// analysis. Style "auto" must be resolved by the caller before composing.
func Compose(resume *analysis.ResumeContent, job *analysis.JobAnalysis, style string) (*Content, error) {
	if resume == nil || job == nil {
		return nil, fmt.Errorf("resume content and job analysis are required")
	}
	if style == analysis.StyleAuto {
		return nil, fmt.Errorf("style %q must be resolved before composing", style)
	}

	name := analysis.CandidateName(resume.RawText)
	skills := resume.Skills
	company := job.CompanyInfo.Name
	if company == "" {
		company = "the company"
	}

	relevant := scoreRelevantExperience(resume.Sections, job.Requirements.TechnicalSkills)

	ctx := map[string]string{
		"recipient":        defaultRecipient,
		"name":             name,
		"company":          company,
		"role":             "the position",
		"years_experience": "5+",
		"key_areas":        joinOr(firstN(skills, 3), "technology and innovation"),
		"industry_focus":   joinOr(job.IndustryFocus, "technology and innovation"),
		"specific_skills":  joinOr(firstN(skills, 5), "technical expertise"),

		"specific_innovation":     "innovative solutions",
		"key_technology":          firstOr(skills, "technology"),
		"specific_technical_area": "technical development",
		"related_technologies":    joinOr(firstN(skills, 3), "various technologies"),
		"company_mission":         "innovation and growth",
		"leadership_areas":        "team leadership and technical direction",

		"relevant_experience_paragraph":        experienceParagraph(relevant),
		"technical_achievements_paragraph":     technicalParagraph(skills),
		"leadership_impact_paragraph":          leadershipParagraph(),
		"startup_experience_paragraph":         startupParagraph(),
		"project_achievements_paragraph":       projectParagraph(relevant),
		"innovation_contributions_paragraph":   innovationParagraph(skills),
		"team_building_achievements_paragraph": teamParagraph(),
		"strategic_impact_paragraph":           strategicParagraph(),

		"call_to_action": "I would welcome the opportunity to discuss how my experience can contribute to your team's success.",
	}

	t := GetTemplate(style)

	return &Content{
		Subject:   fill(t.Subject, ctx),
		Greeting:  fill(t.Greeting, ctx),
		Body:      strings.TrimSpace(fill(t.Body, ctx)),
		Closing:   fill(t.Closing, ctx),
		Signature: fill(t.Signature, ctx),
		FullEmail: t.Render(ctx),
		StyleUsed: style,
	}, nil
}

// SaveMarkdown writes the email as a markdown document.
func (c *Content) SaveMarkdown(path string, metadata map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n---\n\n", c.Subject)
	fmt.Fprintf(&b, "**Subject:** %s\n\n---\n\n", c.Subject)
	fmt.Fprintf(&b, "%s\n\n%s\n\n%s\n\n%s\n", c.Greeting, c.Body, c.Closing, c.Signature)

	if len(metadata) > 0 {
		b.WriteString("\n---\n\n## Email Metadata\n\n")
		keys := make([]string, 0, len(metadata))
		for k := range metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "**%s:** %s\n", k, metadata[k])
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing email markdown: %w", err)
	}
	return nil
}

func scoreRelevantExperience(sections map[string]string, required []string) []relevantSection {
	var scored []relevantSection
	for name, body := range sections {
		lowerName := strings.ToLower(name)
		if !strings.Contains(lowerName, "experience") &&
			!strings.Contains(lowerName, "work") &&
			!strings.Contains(lowerName, "employment") {
			continue
		}
		lowerBody := strings.ToLower(body)
		score := 0
		for _, skill := range required {
			if strings.Contains(lowerBody, strings.ToLower(skill)) {
				score++
			}
		}
		if score > 0 {
			scored = append(scored, relevantSection{name: name, score: score})
		}
	}
	sort.Slice(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	if len(scored) > 3 {
		scored = scored[:3]
	}
	return scored
}

func experienceParagraph(relevant []relevantSection) string {
	if len(relevant) == 0 {
		return "I have extensive experience in technology and innovation, with a proven track record of delivering impactful solutions."
	}

	var b strings.Builder
	b.WriteString("My relevant experience includes ")
	for i, section := range relevant {
		if i > 0 {
			b.WriteString(", as well as ")
		}
		b.WriteString("work in " + strings.ToLower(section.name))
		if i == 1 {
			break
		}
	}
	b.WriteString(". I have consistently demonstrated the ability to deliver high-quality solutions and drive innovation in fast-paced environments.")
	return b.String()
}

func technicalParagraph(skills []string) string {
	if len(skills) == 0 {
		return "I have a strong technical background with expertise in developing scalable solutions and implementing cutting-edge technologies."
	}
	return fmt.Sprintf("I bring deep technical expertise in %s, with a proven track record of architecting and implementing solutions that drive business value and technical excellence.",
		strings.Join(firstN(skills, 5), ", "))
}

func leadershipParagraph() string {
	return "Throughout my career, I have demonstrated strong leadership skills, successfully leading cross-functional teams and mentoring junior developers to deliver high-impact projects."
}

func startupParagraph() string {
	return "I have experience working in dynamic, fast-paced environments where adaptability and quick decision-making are crucial for success."
}

func projectParagraph(relevant []relevantSection) string {
	if len(relevant) == 0 {
		return "I have successfully delivered numerous high-impact projects, consistently meeting deadlines and exceeding expectations."
	}
	return fmt.Sprintf("I have successfully delivered projects in %s, demonstrating strong project management skills and technical execution.",
		strings.ToLower(relevant[0].name))
}

func innovationParagraph(skills []string) string {
	if len(skills) == 0 {
		return "I have consistently contributed to innovation initiatives, bringing creative solutions to complex technical challenges."
	}
	return fmt.Sprintf("I have been at the forefront of innovation in %s, developing novel approaches that have significantly improved system performance and user experience.", skills[0])
}

func teamParagraph() string {
	return "I have successfully built and led high-performing teams, creating collaborative environments that foster innovation and professional growth."
}

func strategicParagraph() string {
	return "I have contributed to strategic initiatives that have driven significant business outcomes, demonstrating the ability to align technical solutions with organizational goals."
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func firstOr(items []string, fallback string) string {
	if len(items) > 0 {
		return items[0]
	}
	return fallback
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
