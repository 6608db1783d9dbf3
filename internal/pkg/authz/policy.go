package authz

import "jobtrack/internal/domain/user"

type Feature string

const (
	FeatureCoverLetter   Feature = "cover_letter"
	FeatureInterviewPrep Feature = "interview_prep"
)

// policy maps each tier-gated feature to the subscription tiers allowed to
// use it. Features absent from the table are open to every tier.
var policy = map[Feature]map[string]bool{
	FeatureCoverLetter: {
		user.TierPro:     true,
		user.TierPremium: true,
	},
	FeatureInterviewPrep: {
		user.TierPro:     true,
		user.TierPremium: true,
	},
}

func Allowed(feature Feature, tier string) bool {
	tiers, gated := policy[feature]
	if !gated {
		return true
	}
	return tiers[tier]
}
