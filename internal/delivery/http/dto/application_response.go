package dto

import (
	"time"

	"jobtrack/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID             uuid.UUID `json:"id"`
	JobTitle       string    `json:"job_title"`
	CompanyName    string    `json:"company_name"`
	CompanyWebsite string    `json:"company_website,omitempty"`
	Location       string    `json:"location,omitempty"`
	SalaryRange    string    `json:"salary_range,omitempty"`
	JobDescription string    `json:"job_description,omitempty"`
	JobURL         string    `json:"job_url,omitempty"`
	Source         string    `json:"source"`
	Status         string    `json:"status"`
	AppliedDate    string    `json:"applied_date,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewApplicationResponse(app application.Application) ApplicationResponse {
	res := ApplicationResponse{
		ID:             app.ID,
		JobTitle:       app.JobTitle,
		CompanyName:    app.CompanyName,
		CompanyWebsite: app.CompanyWebsite,
		Location:       app.Location,
		SalaryRange:    app.SalaryRange,
		JobDescription: app.JobDescription,
		JobURL:         app.JobURL,
		Source:         app.Source,
		Status:         app.Status,
		Notes:          app.Notes,
		CreatedAt:      app.CreatedAt,
		UpdatedAt:      app.UpdatedAt,
	}
	if app.AppliedDate != nil {
		res.AppliedDate = app.AppliedDate.UTC().Format("2006-01-02")
	}
	return res
}

type TimelineEventResponse struct {
	ID        uuid.UUID `json:"id"`
	EventType string    `json:"event_type"`
	Title     string    `json:"title,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	EventDate time.Time `json:"event_date"`
	CreatedAt time.Time `json:"created_at"`
}

func NewTimelineEventResponse(ev application.TimelineEvent) TimelineEventResponse {
	return TimelineEventResponse{
		ID:        ev.ID,
		EventType: ev.EventType,
		Title:     ev.Title,
		Notes:     ev.Notes,
		EventDate: ev.EventDate,
		CreatedAt: ev.CreatedAt,
	}
}
