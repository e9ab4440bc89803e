package analysis

import "strings"

// Email styles the pipeline can produce.
const (
	StyleAuto              = "auto"
	StyleExecutiveFormal   = "executive_formal"
	StyleStartupCasual     = "startup_casual"
	StyleTechnicalDetailed = "technical_detailed"
	StyleLeadershipFocused = "leadership_focused"
)

// Content focus levels derived from the skill match.
const (
	FocusComprehensiveMatch = "comprehensive_match"
	FocusModerateMatch      = "moderate_match"
	FocusTransferableSkills = "transferable_skills"
)

// Strategy captures how well the resume matches the job and what the email
// should emphasize.
type Strategy struct {
	SkillMatchScore         float64  `json:"skill_match_score"`
	SkillMatches            []string `json:"skill_matches"`
	RelevantExperienceCount int      `json:"relevant_experience_count"`
	CompanySize             string   `json:"company_size"`
	CompanyStage            string   `json:"company_stage"`
	Recommendations         []string `json:"strategic_recommendations"`
	ContentFocus            string   `json:"content_focus"`
}

// Strategize compares resume content against the job analysis.
func Strategize(resume *ResumeContent, job *JobAnalysis) *Strategy {
	required := job.Requirements.TechnicalSkills

	var matches []string
	for _, skill := range resume.Skills {
		for _, req := range required {
			if strings.EqualFold(strings.TrimSpace(skill), req) {
				matches = append(matches, skill)
				break
			}
		}
	}

	score := 0.0
	if len(required) > 0 {
		score = float64(len(matches)) / float64(len(required))
	}

	relevantExperience := countRelevantExperience(resume.Sections, required)

	s := &Strategy{
		SkillMatchScore:         score,
		SkillMatches:            matches,
		RelevantExperienceCount: relevantExperience,
		CompanySize:             job.CompanySize,
		CompanyStage:            job.CompanyStage,
		ContentFocus:            contentFocus(score, relevantExperience),
	}
	s.Recommendations = recommendations(s)

	return s
}

func countRelevantExperience(sections map[string]string, required []string) int {
	count := 0
	for name, body := range sections {
		lowerName := strings.ToLower(name)
		if !containsAny(lowerName, "experience", "work", "employment") {
			continue
		}
		lowerBody := strings.ToLower(body)
		for _, skill := range required {
			if strings.Contains(lowerBody, strings.ToLower(skill)) {
				count++
				break
			}
		}
	}
	return count
}

func contentFocus(score float64, relevantExperience int) string {
	switch {
	case score >= 0.7 && relevantExperience > 0:
		return FocusComprehensiveMatch
	case score >= 0.4 || relevantExperience > 0:
		return FocusModerateMatch
	default:
		return FocusTransferableSkills
	}
}

func recommendations(s *Strategy) []string {
	var recs []string

	switch {
	case s.SkillMatchScore >= 0.7:
		recs = append(recs, "Strong technical skill match - emphasize technical expertise")
	case s.SkillMatchScore >= 0.4:
		recs = append(recs, "Moderate skill match - focus on transferable skills and learning ability")
	default:
		recs = append(recs, "Limited skill match - emphasize adaptability and transferable experience")
	}

	if s.CompanySize == "startup" || s.CompanyStage == "early-stage" {
		recs = append(recs, "Startup environment - emphasize adaptability and quick execution")
	} else if s.CompanySize == "enterprise" {
		recs = append(recs, "Enterprise environment - emphasize process and scalability")
	}

	if s.RelevantExperienceCount > 0 {
		recs = append(recs, "Relevant experience available - highlight specific achievements")
	} else {
		recs = append(recs, "Limited direct experience - emphasize transferable skills and potential")
	}

	return recs
}

// OptimalStyle picks the email style that fits the company profile.
func OptimalStyle(job *JobAnalysis, s *Strategy) string {
	switch {
	case s.CompanySize == "startup" || s.CompanyStage == "early-stage":
		return StyleStartupCasual
	case s.CompanySize == "enterprise":
		return StyleExecutiveFormal
	case mentionsLeadership(job):
		return StyleLeadershipFocused
	default:
		return StyleExecutiveFormal
	}
}

func mentionsLeadership(job *JobAnalysis) bool {
	for _, skill := range job.Requirements.SoftSkills {
		if skill == "leadership" {
			return true
		}
	}
	return false
}
