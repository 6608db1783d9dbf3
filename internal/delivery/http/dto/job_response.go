package dto

import (
	"time"

	"jobtrack/internal/domain/job"

	"github.com/google/uuid"
)

type SavedJobResponse struct {
	ID             uuid.UUID `json:"id"`
	JobTitle       string    `json:"job_title"`
	CompanyName    string    `json:"company_name"`
	Location       string    `json:"location,omitempty"`
	SalaryRange    string    `json:"salary_range,omitempty"`
	JobURL         string    `json:"job_url,omitempty"`
	JobDescription string    `json:"job_description,omitempty"`
	Source         string    `json:"source,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewSavedJobResponse(sj job.SavedJob) SavedJobResponse {
	return SavedJobResponse{
		ID:             sj.ID,
		JobTitle:       sj.JobTitle,
		CompanyName:    sj.CompanyName,
		Location:       sj.Location,
		SalaryRange:    sj.SalaryRange,
		JobURL:         sj.JobURL,
		JobDescription: sj.JobDescription,
		Source:         sj.Source,
		CreatedAt:      sj.CreatedAt,
	}
}
