package job

import (
	"time"

	"github.com/google/uuid"
)

// SavedJob is a search result the user bookmarked without opening an
// application for it yet.
type SavedJob struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	JobTitle       string
	CompanyName    string
	Location       string
	SalaryRange    string
	JobURL         string
	JobDescription string
	Source         string
	CreatedAt      time.Time
}
