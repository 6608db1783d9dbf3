package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobtrack/internal/config"
)

func newTestClient(t *testing.T, handler http.Handler) (Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(config.GatewayConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}, nil)
	return c, srv
}

func TestSearchJobs_SendsAuthAndDecodesData(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody JobSearchParams

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		_, _ = w.Write([]byte(`{"data":[{"title":"Go Engineer"},{"title":"Backend Engineer"}]}`))
	}))

	jobs, err := c.SearchJobs(context.Background(), JobSearchParams{Query: "golang", Limit: 20})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if gotPath != "/google-jobs/search" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotBody.Query != "golang" || gotBody.Limit != 20 {
		t.Fatalf("request body not forwarded: %+v", gotBody)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if !strings.Contains(string(jobs[0]), "Go Engineer") {
		t.Fatalf("job payload not passed through: %s", jobs[0])
	}
}

func TestSearchJobs_EmptyDataIsEmptySlice(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":null}`))
	}))

	jobs, err := c.SearchJobs(context.Background(), JobSearchParams{Query: "golang", Limit: 20})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if jobs == nil || len(jobs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", jobs)
	}
}

func TestPost_Non2xxIsError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"upstream down"}`))
	}))

	_, err := c.SearchJobs(context.Background(), JobSearchParams{Query: "golang", Limit: 20})
	if err == nil {
		t.Fatalf("expected error on 502")
	}
	if !strings.Contains(err.Error(), "status=502") {
		t.Fatalf("error should carry the status: %v", err)
	}
}

func TestGenerateCoverLetter_BuildsChatRequest(t *testing.T) {
	var gotReq chatRequest

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openrouter/chat" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		_, _ = w.Write([]byte(`{"data":{"content":"Dear team","usage":{"total_tokens":123}}}`))
	}))

	gen, err := c.GenerateCoverLetter(context.Background(), "Build Go services", CandidateProfile{
		Name:   "Alex",
		Skills: "Go, SQL",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gen.Content != "Dear team" || gen.TokensUsed != 123 {
		t.Fatalf("unexpected generation: %+v", gen)
	}

	if gotReq.Model != defaultChatModel {
		t.Fatalf("unexpected model: %s", gotReq.Model)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Fatalf("expected a single user message, got %+v", gotReq.Messages)
	}
	prompt := gotReq.Messages[0].Content
	if !strings.Contains(prompt, "Build Go services") {
		t.Fatalf("prompt missing job description")
	}
	if !strings.Contains(prompt, "Go, SQL") {
		t.Fatalf("prompt missing candidate skills")
	}
}

func TestGenerateCoverLetter_EmptyContentIsError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"content":"  "}}`))
	}))

	if _, err := c.GenerateCoverLetter(context.Background(), "desc", CandidateProfile{}); err == nil {
		t.Fatalf("expected error on empty generation")
	}
}

func TestSearchCompanyInfo_JoinsMarkdown(t *testing.T) {
	var gotReq webSearchRequest

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/firecrawl/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		_, _ = w.Write([]byte(`{"data":[
			{"title":"About","markdown":"Acme builds rockets."},
			{"title":"Empty","markdown":"   "},
			{"title":"Careers","markdown":"We value curiosity."}
		]}`))
	}))

	info, err := c.SearchCompanyInfo(context.Background(), "Acme")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if info != "Acme builds rockets.\n\nWe value curiosity." {
		t.Fatalf("unexpected joined markdown: %q", info)
	}
	if !strings.Contains(gotReq.Query, "Acme") {
		t.Fatalf("company name missing from search query: %q", gotReq.Query)
	}
	if gotReq.Limit != 3 {
		t.Fatalf("unexpected search limit: %d", gotReq.Limit)
	}
}
