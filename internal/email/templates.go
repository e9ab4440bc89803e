// Package email renders tailored outreach emails from resume and job
// analysis data using a set of style templates.
package email

import (
	"fmt"
	"strings"
)

// Template is one email style. Bodies carry {placeholder} variables that are
// substituted from a context map at render time.
type Template struct {
	Subject   string
	Greeting  string
	Body      string
	Closing   string
	Signature string
}

const defaultRecipient = "Hiring Manager"

var templates = map[string]Template{
	"executive_formal": {
		Subject:  "Experienced {role} Professional - {company} Opportunity",
		Greeting: "Dear {recipient},",
		Body: `I am writing to express my strong interest in the {role} position at {company}. With {years_experience} years of experience in {key_areas}, I believe I can make significant contributions to your team and help drive {company}'s continued success.

{relevant_experience_paragraph}

{technical_achievements_paragraph}

{leadership_impact_paragraph}

I am particularly drawn to {company}'s mission in {industry_focus} and believe my background in {specific_skills} aligns perfectly with your current needs. I would welcome the opportunity to discuss how my experience can contribute to {company}'s growth and innovation.

{call_to_action}`,
		Closing:   "I look forward to the possibility of contributing to {company}'s success.",
		Signature: "Best regards,\n{name}",
	},
	"startup_casual": {
		Subject:  "Hey {company} team - {role} role looks perfect!",
		Greeting: "Hi {recipient},",
		Body: `I came across your {role} opening and got really excited about the opportunity to join {company}! Your work in {industry_focus} is exactly what I've been looking for.

{relevant_experience_paragraph}

{startup_experience_paragraph}

{technical_achievements_paragraph}

What really caught my attention is {company}'s approach to {specific_innovation}. I've been working on similar challenges and would love to bring my experience to help scale your solutions.

{call_to_action}`,
		Closing:   "Looking forward to potentially joining the {company} team!",
		Signature: "Cheers,\n{name}",
	},
	"technical_detailed": {
		Subject:  "Senior {role} - {key_technology} Expert for {company}",
		Greeting: "Dear {recipient},",
		Body: `I am excited to apply for the {role} position at {company}. With deep expertise in {key_technology} and {years_experience} years of experience building scalable systems, I am confident I can contribute significantly to your technical initiatives.

{technical_achievements_paragraph}

{project_achievements_paragraph}

{innovation_contributions_paragraph}

{company}'s focus on {specific_technical_area} particularly interests me, as I have extensive experience in {related_technologies}. I would welcome the opportunity to discuss how my technical background can accelerate {company}'s development efforts.

{call_to_action}`,
		Closing:   "I look forward to discussing how my technical expertise can benefit {company}.",
		Signature: "Best regards,\n{name}",
	},
	"leadership_focused": {
		Subject:  "Strategic {role} Leader - Driving {company} Growth",
		Greeting: "Dear {recipient},",
		Body: `I am writing to express my interest in the {role} position at {company}. As a proven leader with {years_experience} years of experience building and scaling teams, I am excited about the opportunity to contribute to {company}'s strategic growth.

{leadership_impact_paragraph}

{team_building_achievements_paragraph}

{strategic_impact_paragraph}

{company}'s mission to {company_mission} resonates strongly with my own values and experience. I believe my background in {leadership_areas} can help {company} achieve its ambitious goals while building a world-class team.

{call_to_action}`,
		Closing:   "I look forward to discussing how my leadership experience can contribute to {company}'s success.",
		Signature: "Best regards,\n{name}",
	},
}

// GetTemplate returns the template for a style, falling back to the formal
// executive style for unknown names.
func GetTemplate(style string) Template {
	if t, ok := templates[style]; ok {
		return t
	}
	return templates["executive_formal"]
}

// Styles lists the available template styles.
func Styles() []string {
	return []string{"executive_formal", "startup_casual", "technical_detailed", "leadership_focused"}
}

// IsKnownStyle reports whether style names a template.
func IsKnownStyle(style string) bool {
	_, ok := templates[style]
	return ok
}

// fill substitutes {placeholder} variables from ctx. Unknown placeholders
// are left intact so a missing context entry is visible in the output.
func fill(text string, ctx map[string]string) string {
	for key, value := range ctx {
		text = strings.ReplaceAll(text, "{"+key+"}", value)
	}
	return text
}

// Render formats the whole email as plain text.
func (t Template) Render(ctx map[string]string) string {
	return fmt.Sprintf("Subject: %s\n\n%s\n\n%s\n\n%s\n\n%s",
		fill(t.Subject, ctx),
		fill(t.Greeting, ctx),
		strings.TrimSpace(fill(t.Body, ctx)),
		fill(t.Closing, ctx),
		fill(t.Signature, ctx),
	)
}
