package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// searchCacheKey is stable across equivalent searches: parameters are
// normalized and hashed so free-text queries never leak into key space.
func searchCacheKey(query, location, datePosted, employmentType string, limit int) string {
	raw := strings.Join([]string{
		strings.ToLower(strings.TrimSpace(query)),
		strings.ToLower(strings.TrimSpace(location)),
		datePosted,
		employmentType,
		fmt.Sprintf("%d", limit),
	}, "|")

	h := sha256.Sum256([]byte(raw))
	return "jobsearch:" + hex.EncodeToString(h[:16])
}
