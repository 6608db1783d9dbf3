package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Subscription tiers, ordered free < pro < premium. Tier changes happen in the
// billing system; this service only reads the stored value.
const (
	TierFree    = "free"
	TierPro     = "pro"
	TierPremium = "premium"
)

var ErrNotFound = errors.New("user not found")

// User mirrors one row in users. AuthSubject is the identity provider's
// subject id; rows are provisioned at first sign-in, outside this service.
type User struct {
	ID               uuid.UUID
	AuthSubject      string
	Email            string
	Name             string
	SubscriptionTier string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func ValidTier(tier string) bool {
	switch tier {
	case TierFree, TierPro, TierPremium:
		return true
	}
	return false
}
