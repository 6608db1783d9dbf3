package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

type mockSearchCache struct {
	store map[string][]byte
	sets  int
}

func (m *mockSearchCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (m *mockSearchCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.store == nil {
		m.store = map[string][]byte{}
	}
	m.store[key] = b
	m.sets++
	return nil
}

func TestJobSearch_MissingQuery(t *testing.T) {
	gw := &mockGateway{}
	uc := NewJobSearchUsecase(gw, nil, nil)

	_, err := uc.Search(context.Background(), JobSearchInput{Query: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if gw.searchJobsCalls != 0 {
		t.Fatalf("gateway must not be called on validation failure")
	}
}

func TestJobSearch_InvalidFilters(t *testing.T) {
	cases := []struct {
		name string
		in   JobSearchInput
	}{
		{"bad datePosted", JobSearchInput{Query: "go", DatePosted: "yesterday"}},
		{"bad employmentType", JobSearchInput{Query: "go", EmploymentType: "GIG"}},
		{"negative limit", JobSearchInput{Query: "go", Limit: -1}},
		{"limit over max", JobSearchInput{Query: "go", Limit: 51}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := &mockGateway{}
			uc := NewJobSearchUsecase(gw, nil, nil)

			_, err := uc.Search(context.Background(), tc.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if gw.searchJobsCalls != 0 {
				t.Fatalf("gateway must not be called")
			}
		})
	}
}

func TestJobSearch_PassThrough(t *testing.T) {
	raw := []json.RawMessage{json.RawMessage(`{"title":"Go Engineer","company":"Acme"}`)}
	gw := &mockGateway{searchJobsResult: raw}
	uc := NewJobSearchUsecase(gw, nil, nil)

	jobs, err := uc.Search(context.Background(), JobSearchInput{Query: "golang", DatePosted: "week"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(jobs) != 1 || string(jobs[0]) != string(raw[0]) {
		t.Fatalf("result must pass through unmodified, got %v", jobs)
	}
}

func TestJobSearch_GatewayFailure(t *testing.T) {
	gw := &mockGateway{searchJobsErr: errors.New("upstream 503")}
	uc := NewJobSearchUsecase(gw, nil, nil)

	_, err := uc.Search(context.Background(), JobSearchInput{Query: "golang"})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestJobSearch_CacheHitSkipsGateway(t *testing.T) {
	gw := &mockGateway{searchJobsResult: []json.RawMessage{json.RawMessage(`{"title":"one"}`)}}
	c := &mockSearchCache{}
	uc := NewJobSearchUsecase(gw, c, nil)

	in := JobSearchInput{Query: "golang", Location: "Jakarta"}
	first, err := uc.Search(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gw.searchJobsCalls != 1 || c.sets != 1 {
		t.Fatalf("expected one gateway call and one cache write, got %d/%d", gw.searchJobsCalls, c.sets)
	}

	second, err := uc.Search(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gw.searchJobsCalls != 1 {
		t.Fatalf("second search must be served from cache, gateway calls=%d", gw.searchJobsCalls)
	}
	if len(second) != len(first) || string(second[0]) != string(first[0]) {
		t.Fatalf("cached result differs from original")
	}
}

func TestJobSearch_CacheKeyDistinguishesParams(t *testing.T) {
	a := searchCacheKey("golang", "Jakarta", "week", "", 20)
	b := searchCacheKey("golang", "Jakarta", "month", "", 20)
	if a == b {
		t.Fatalf("different params must hash to different keys")
	}

	c := searchCacheKey("  Golang ", "Jakarta", "week", "", 20)
	d := searchCacheKey("golang", "Jakarta", "week", "", 20)
	if c != d {
		t.Fatalf("query normalization must collapse case and whitespace")
	}
}
