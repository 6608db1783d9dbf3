package dto

type CoverLetterResponse struct {
	CoverLetter string `json:"coverLetter"`
	TokensUsed  int    `json:"tokensUsed,omitempty"`
}

type InterviewPrepResponse struct {
	Guide      string `json:"guide"`
	TokensUsed int    `json:"tokensUsed,omitempty"`
}
