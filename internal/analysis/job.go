package analysis

import (
	"regexp"
	"strings"
)

// JobAnalysis is the keyword/regex view of a job description.
type JobAnalysis struct {
	CompanyInfo      CompanyInfo  `json:"company_info"`
	Requirements     Requirements `json:"requirements"`
	Responsibilities []string     `json:"responsibilities"`
	CompanySize      string       `json:"company_size"`
	CompanyStage     string       `json:"company_stage"`
	IndustryFocus    []string     `json:"industry_focus"`
	KeyPhrases       []string     `json:"key_phrases"`
	TextLength       int          `json:"text_length"`
}

type CompanyInfo struct {
	Name     string `json:"name,omitempty"`
	Location string `json:"location,omitempty"`
}

type Requirements struct {
	TechnicalSkills []string `json:"technical_skills"`
	ExperienceLevel []string `json:"experience_level"`
	Education       []string `json:"education"`
	SoftSkills      []string `json:"soft_skills"`
}

var technicalSkills = []string{
	"python", "java", "javascript", "c++", "c#", "go", "rust", "scala",
	"machine learning", "ai", "artificial intelligence", "deep learning",
	"data science", "analytics", "sql", "nosql", "mongodb", "postgresql",
	"aws", "azure", "gcp", "cloud", "docker", "kubernetes", "microservices",
	"react", "angular", "vue", "node.js", "django", "flask", "spring",
	"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy",
}

var softSkills = []string{
	"leadership", "communication", "teamwork", "problem solving",
	"analytical thinking", "creativity", "adaptability", "time management",
	"project management", "collaboration", "mentoring", "strategic thinking",
}

var industries = []string{
	"healthcare", "finance", "e-commerce", "education", "automotive",
	"aerospace", "defense", "energy", "telecommunications", "media",
	"entertainment", "real estate", "transportation", "logistics",
	"manufacturing", "retail", "consulting", "non-profit",
}

var buzzwords = []string{
	"fast-paced environment", "dynamic team", "innovative solutions",
	"cutting-edge technology", "collaborative culture", "growth mindset",
	"results-driven", "customer-focused", "data-driven", "agile",
	"scalable", "high-performance", "mission-critical", "end-to-end",
}

var (
	companyNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)at\s+([A-Z][a-zA-Z\s&]+(?:Inc|Corp|LLC|Ltd|Company|Technologies|Systems))`),
		regexp.MustCompile(`([A-Z][a-zA-Z\s&]+(?:Inc|Corp|LLC|Ltd|Company|Technologies|Systems))`),
		regexp.MustCompile(`(?i)company:\s*([A-Z][a-zA-Z\s&]+)`),
		regexp.MustCompile(`(?i)organization:\s*([A-Z][a-zA-Z\s&]+)`),
	}

	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)location:\s*([A-Z][a-zA-Z\s,]+)`),
		regexp.MustCompile(`in\s+([A-Z][a-zA-Z\s,]+(?:CA|NY|TX|WA|MA))`),
		regexp.MustCompile(`(?i)based\s+in\s+([A-Z][a-zA-Z\s,]+)`),
	}

	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s*of\s*experience`),
		regexp.MustCompile(`(\d+)\+?\s*years?\s*in\s*[a-zA-Z\s]+`),
		regexp.MustCompile(`senior\s+level`),
		regexp.MustCompile(`entry\s+level`),
		regexp.MustCompile(`junior`),
		regexp.MustCompile(`mid\s+level`),
		regexp.MustCompile(`lead`),
		regexp.MustCompile(`principal`),
	}

	educationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`bs\s+in\s+[a-zA-Z\s]+`),
		regexp.MustCompile(`ms\s+in\s+[a-zA-Z\s]+`),
		regexp.MustCompile(`phd\s+in\s+[a-zA-Z\s]+`),
		regexp.MustCompile(`bachelor[^s]*s?\s+degree`),
		regexp.MustCompile(`master[^s]*s?\s+degree`),
		regexp.MustCompile(`doctorate`),
	}

	responsibilityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)responsible\s+for\s+([^.]*)`),
		regexp.MustCompile(`(?i)will\s+([^.]*)`),
		regexp.MustCompile(`(?i)must\s+([^.]*)`),
		regexp.MustCompile(`(?i)expected\s+to\s+([^.]*)`),
		regexp.MustCompile(`(?i)primary\s+duties\s+include\s+([^.]*)`),
	}
)

// AnalyzeJob runs all heuristics over a job description.
func AnalyzeJob(text string) *JobAnalysis {
	lower := strings.ToLower(text)

	return &JobAnalysis{
		CompanyInfo:      extractCompanyInfo(text),
		Requirements:     extractRequirements(lower),
		Responsibilities: extractResponsibilities(text),
		CompanySize:      determineCompanySize(lower),
		CompanyStage:     determineCompanyStage(lower),
		IndustryFocus:    matchKeywords(lower, industries),
		KeyPhrases:       matchKeywords(lower, buzzwords),
		TextLength:       len(text),
	}
}

func extractCompanyInfo(text string) CompanyInfo {
	info := CompanyInfo{}
	for _, pattern := range companyNamePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			info.Name = strings.TrimSpace(m[1])
			break
		}
	}
	for _, pattern := range locationPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			info.Location = strings.TrimSpace(m[1])
			break
		}
	}
	return info
}

func extractRequirements(lower string) Requirements {
	req := Requirements{
		TechnicalSkills: matchKeywords(lower, technicalSkills),
		SoftSkills:      matchKeywords(lower, softSkills),
	}

	for _, pattern := range experiencePatterns {
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			if len(m) > 1 {
				req.ExperienceLevel = append(req.ExperienceLevel, m[1])
			} else {
				req.ExperienceLevel = append(req.ExperienceLevel, m[0])
			}
		}
	}

	for _, pattern := range educationPatterns {
		for _, m := range pattern.FindAllString(lower, -1) {
			req.Education = append(req.Education, m)
		}
	}

	return req
}

func extractResponsibilities(text string) []string {
	var out []string
	for _, pattern := range responsibilityPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			out = append(out, strings.TrimSpace(m[1]))
		}
	}
	return out
}

func determineCompanySize(lower string) string {
	switch {
	case containsAny(lower, "startup", "early stage", "seed", "series a"):
		return "startup"
	case containsAny(lower, "fortune 500", "enterprise", "large corporation"):
		return "enterprise"
	case containsAny(lower, "mid-size", "medium-sized", "growing company"):
		return "mid-size"
	default:
		return "unknown"
	}
}

func determineCompanyStage(lower string) string {
	switch {
	case containsAny(lower, "startup", "early stage", "seed funding"):
		return "early-stage"
	case containsAny(lower, "growth stage", "scaling", "series b", "series c"):
		return "growth-stage"
	case containsAny(lower, "established", "mature", "stable"):
		return "mature"
	default:
		return "unknown"
	}
}

func matchKeywords(lower string, keywords []string) []string {
	var found []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

func containsAny(lower string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
