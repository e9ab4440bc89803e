// Package analysis implements the keyword and regex heuristics applied to
// resume and job description text before any LLM is involved.
package analysis

import "strings"

// ResumeContent is the structured view of a resume built from its raw text.
type ResumeContent struct {
	RawText     string            `json:"raw_text"`
	Sections    map[string]string `json:"sections"`
	Skills      []string          `json:"skills"`
	ContactInfo map[string]string `json:"contact_info"`
}

// Headers that mark the start of a resume section.
var sectionHeaders = []string{
	"experience", "work experience", "employment history",
	"education", "academic background", "qualifications",
	"skills", "technical skills", "competencies",
	"projects", "achievements", "summary", "objective",
}

// StructureResume splits raw resume text into named sections and derives
// skills and contact information from them.
func StructureResume(text string) *ResumeContent {
	content := &ResumeContent{
		RawText:     text,
		Sections:    map[string]string{},
		ContactInfo: map[string]string{},
	}

	var currentSection string
	var sectionLines []string

	flush := func() {
		if currentSection != "" && len(sectionLines) > 0 {
			content.Sections[currentSection] = strings.Join(sectionLines, "\n")
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isSectionHeader(line) {
			flush()
			currentSection = line
			sectionLines = nil
			continue
		}

		if currentSection != "" {
			sectionLines = append(sectionLines, line)
			continue
		}

		// Lines before the first section are usually contact details.
		lower := strings.ToLower(line)
		if strings.Contains(line, "@") || strings.Contains(lower, "phone") || strings.Contains(lower, "linkedin") {
			content.ContactInfo[contactKey(line)] = line
		}
	}
	flush()

	content.Skills = extractSkills(content.Sections)

	return content
}

func isSectionHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, header := range sectionHeaders {
		if strings.Contains(lower, header) {
			return true
		}
	}
	return false
}

func contactKey(line string) string {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(line, "@"):
		return "email"
	case strings.Contains(lower, "linkedin"):
		return "linkedin"
	case strings.Contains(lower, "phone"), strings.Contains(lower, "mobile"), strings.Contains(lower, "cell"):
		return "phone"
	default:
		return lower
	}
}

func extractSkills(sections map[string]string) []string {
	var skills []string
	for name, body := range sections {
		if !strings.Contains(strings.ToLower(name), "skill") {
			continue
		}
		for _, line := range strings.Split(body, "\n") {
			for _, skill := range strings.Split(line, ",") {
				skill = strings.TrimSpace(skill)
				if len(skill) > 2 {
					skills = append(skills, skill)
				}
			}
		}
	}
	return skills
}

// CandidateName guesses the candidate's name from the top of the resume.
// The first non-empty line not carrying contact details usually is it.
func CandidateName(rawText string) string {
	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= 2 {
			continue
		}
		lower := strings.ToLower(line)
		skip := false
		for _, kw := range []string{"email", "phone", "linkedin", "github"} {
			if strings.Contains(lower, kw) {
				skip = true
				break
			}
		}
		if !skip {
			return line
		}
	}
	return "Your Name"
}
