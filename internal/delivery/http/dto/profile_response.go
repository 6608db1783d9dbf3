package dto

import (
	"time"

	"jobtrack/internal/domain/profile"
)

type ProfileResponse struct {
	ResumeURL           string            `json:"resume_url,omitempty"`
	CoverLetterTemplate string            `json:"cover_letter_template,omitempty"`
	LinkedinURL         string            `json:"linkedin_url,omitempty"`
	PortfolioURL        string            `json:"portfolio_url,omitempty"`
	GithubURL           string            `json:"github_url,omitempty"`
	Phone               string            `json:"phone,omitempty"`
	SavedAnswers        map[string]string `json:"saved_answers"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	answers := p.SavedAnswers
	if answers == nil {
		answers = map[string]string{}
	}
	return ProfileResponse{
		ResumeURL:           p.ResumeURL,
		CoverLetterTemplate: p.CoverLetterTemplate,
		LinkedinURL:         p.LinkedinURL,
		PortfolioURL:        p.PortfolioURL,
		GithubURL:           p.GithubURL,
		Phone:               p.Phone,
		SavedAnswers:        answers,
		UpdatedAt:           p.UpdatedAt,
	}
}
