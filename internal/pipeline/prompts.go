package pipeline

import "fmt"

// Prompt inputs are truncated so a long document cannot blow up request
// size; the LLM cost dominates run latency as it is.
const (
	maxResumeChars = 1500
	maxJobChars    = 1500
	maxEmailChars  = 3000
)

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func resumeSummaryPrompt(resumeText, jobText string) string {
	return fmt.Sprintf(`Based on the following resume content and job requirements, create a targeted summary that:
1. Highlights the 3-4 most relevant experiences for this specific role
2. Emphasizes skills that directly match the job requirements
3. Shows quantifiable achievements that demonstrate value
4. Focuses on experience that would be most valuable to this position

Resume Content:
%s

Job Requirements:
%s

Please provide a concise summary (150-200 words) that connects the candidate's experience to this specific role.
Focus on concrete achievements and relevant skills.`,
		truncate(resumeText, maxResumeChars),
		truncate(jobText, maxJobChars),
	)
}

func jobSummaryPrompt(jobText string) string {
	return fmt.Sprintf(`Based on the following job description, create a focused summary that highlights:
1. The 3-4 most critical technical skills required
2. Key responsibilities that define the role
3. Experience level and qualifications needed
4. What success looks like in this position

Job Description:
%s

Please provide a concise summary (150-200 words) focusing on the most important requirements and expectations.`,
		truncate(jobText, maxJobChars),
	)
}

func valuePropositionPrompt(resumeSummary, jobSummary string) string {
	return fmt.Sprintf(`Based on the candidate's experience and the job requirements, write 2-3 specific sentences that:
1. Show exactly how the candidate's experience addresses the job's key needs
2. Provide concrete examples of value they can bring
3. Connect their achievements to the role's success metrics

Candidate's Relevant Experience:
%s

Job Requirements:
%s

Write 2-3 sentences that specifically show how this candidate's experience translates to value in this role.
Be specific and concrete, not generic.`,
		resumeSummary,
		jobSummary,
	)
}

func refinementPrompt(fullEmail string) string {
	return fmt.Sprintf(`Review and optimize the following email content for maximum impact:

Email Content:
%s

Please provide:
1. Suggestions for improving the opening hook
2. Ways to make the experience highlights more compelling
3. Recommendations for strengthening the call-to-action
4. Overall tone and style assessment
5. Any specific improvements for better engagement`,
		truncate(fullEmail, maxEmailChars),
	)
}
