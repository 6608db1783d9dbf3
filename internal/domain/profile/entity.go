package profile

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

// Profile holds personalization data used to enrich AI prompts. One row per
// user; SavedAnswers is a free-form key/value store ("experience", "skills", ...).
type Profile struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	ResumeURL           string
	CoverLetterTemplate string
	LinkedinURL         string
	PortfolioURL        string
	GithubURL           string
	Phone               string
	SavedAnswers        map[string]string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
