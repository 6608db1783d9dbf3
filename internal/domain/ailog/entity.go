package ailog

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeCoverLetter   = "cover_letter"
	TypeInterviewPrep = "interview_prep"
)

// GenerationLog records one AI gateway call for cost accounting. Rows are
// written on every successful generation and never read back by this service.
type GenerationLog struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	ApplicationID  *uuid.UUID
	GenerationType string
	Prompt         string
	Result         string
	TokensUsed     int
	CreatedAt      time.Time
}
