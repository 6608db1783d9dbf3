package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	StatusSaved        = "saved"
	StatusApplied      = "applied"
	StatusInterviewing = "interviewing"
	StatusOffer        = "offer"
	StatusRejected     = "rejected"
	StatusWithdrawn    = "withdrawn"
)

const (
	SourceLinkedIn   = "linkedin"
	SourceIndeed     = "indeed"
	SourceGoogleJobs = "google_jobs"
	SourceManual     = "manual"
)

// Timeline event types written as side effects of application actions.
const (
	EventCreated = "created"
	EventApplied = "applied"
)

var ErrNotFound = errors.New("application not found")

type Application struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	JobTitle       string
	CompanyName    string
	CompanyWebsite string
	Location       string
	SalaryRange    string
	JobDescription string
	JobURL         string
	Source         string
	Status         string
	AppliedDate    *time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TimelineEvent is append-only: rows are inserted when an application changes
// state and never updated or deleted afterwards.
type TimelineEvent struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	EventType     string
	Title         string
	Notes         string
	EventDate     time.Time
	CreatedAt     time.Time
}

func ValidStatus(status string) bool {
	switch status {
	case StatusSaved, StatusApplied, StatusInterviewing, StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

func ValidSource(source string) bool {
	switch source {
	case SourceLinkedIn, SourceIndeed, SourceGoogleJobs, SourceManual:
		return true
	}
	return false
}
