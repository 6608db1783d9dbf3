package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"jobtrack/internal/gateway"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 50
)

type JobSearchInput struct {
	Query          string
	Location       string
	DatePosted     string
	EmploymentType string
	Limit          int
}

// JobSearchUsecase forwards queries to the aggregation gateway and passes the
// result list through unmodified. No user row is read: searching is open to
// every authenticated caller regardless of tier.
type JobSearchUsecase interface {
	Search(ctx context.Context, in JobSearchInput) ([]json.RawMessage, error)
}

type JobSearch struct {
	gw     gateway.Client
	cache  SearchCache
	logger *log.Logger
}

func NewJobSearchUsecase(gw gateway.Client, cache SearchCache, logger *log.Logger) *JobSearch {
	return &JobSearch{gw: gw, cache: cache, logger: logger}
}

var validDatePosted = map[string]bool{
	"today": true,
	"week":  true,
	"month": true,
}

var validEmploymentType = map[string]bool{
	"FULLTIME":   true,
	"PARTTIME":   true,
	"CONTRACTOR": true,
	"INTERN":     true,
}

func (u *JobSearch) Search(ctx context.Context, in JobSearchInput) ([]json.RawMessage, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return nil, NewValidationError("query required")
	}
	if in.DatePosted != "" && !validDatePosted[in.DatePosted] {
		return nil, NewValidationError("invalid datePosted: " + in.DatePosted)
	}
	if in.EmploymentType != "" && !validEmploymentType[in.EmploymentType] {
		return nil, NewValidationError("invalid employmentType: " + in.EmploymentType)
	}

	limit := in.Limit
	if limit == 0 {
		limit = defaultSearchLimit
	}
	if limit < 0 || limit > maxSearchLimit {
		return nil, NewValidationError("invalid limit")
	}

	key := searchCacheKey(query, in.Location, in.DatePosted, in.EmploymentType, limit)
	if u.cache != nil {
		var cached []json.RawMessage
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	jobs, err := u.gw.SearchJobs(ctx, gateway.JobSearchParams{
		Query:          query,
		Location:       strings.TrimSpace(in.Location),
		DatePosted:     in.DatePosted,
		EmploymentType: in.EmploymentType,
		Limit:          limit,
	})
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[JobSearch] gateway search failed err=%v", err)
		}
		return nil, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, jobs, 0); err != nil && u.logger != nil {
			u.logger.Printf("[JobSearch] cache write failed key=%s err=%v", key, err)
		}
	}

	return jobs, nil
}
