package gateway

import (
	"fmt"
	"strings"
)

func coverLetterPrompt(jobDescription string, candidate CandidateProfile) string {
	name := fallback(candidate.Name, "Candidate")
	experience := fallback(candidate.Experience, "Not provided")
	skills := fallback(candidate.Skills, "Not provided")
	linkedin := fallback(candidate.LinkedinURL, "Not provided")

	return fmt.Sprintf(`Generate a professional, personalized cover letter for this job:

Job Description:
%s

Candidate Profile:
- Name: %s
- Experience: %s
- Skills: %s
- LinkedIn: %s

Requirements:
- Make it professional but personable
- Highlight relevant experience and skills
- Keep it concise (250-300 words)
- Include specific examples where possible
- End with a strong call to action

Format as a complete cover letter ready to send.`, jobDescription, name, experience, skills, linkedin)
}

func interviewPrepPrompt(companyName, jobTitle, companyInfo string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Create a comprehensive interview preparation guide for:

Position: %s
Company: %s
`, jobTitle, companyName)

	if strings.TrimSpace(companyInfo) != "" {
		fmt.Fprintf(&b, "Company Info: %s\n", companyInfo)
	}

	b.WriteString(`
Include:
1. 10 common interview questions for this role
2. Suggested answers framework (STAR method)
3. 5 insightful questions to ask the interviewer
4. Company culture insights (if available)
5. Key skills to emphasize
6. Red flags to watch for

Format as a structured guide.`)

	return b.String()
}

func fallback(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
