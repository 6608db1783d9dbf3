package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"jobtrack/internal/config"
)

// Client talks to the external aggregation gateway that fronts job search,
// web search and chat-completion providers. One synchronous HTTP POST per
// capability; no retries. Any non-2xx answer surfaces as an error the caller
// maps to an upstream failure.
type Client interface {
	SearchJobs(ctx context.Context, params JobSearchParams) ([]json.RawMessage, error)
	SearchCompanyInfo(ctx context.Context, companyName string) (string, error)
	GenerateCoverLetter(ctx context.Context, jobDescription string, candidate CandidateProfile) (Generation, error)
	GenerateInterviewPrep(ctx context.Context, companyName, jobTitle, companyInfo string) (Generation, error)
}

type JobSearchParams struct {
	Query          string `json:"query"`
	Location       string `json:"location,omitempty"`
	DatePosted     string `json:"datePosted,omitempty"`
	EmploymentType string `json:"employmentType,omitempty"`
	Limit          int    `json:"limit"`
}

type CandidateProfile struct {
	Name        string
	Experience  string
	Skills      string
	LinkedinURL string
}

type Generation struct {
	Content    string
	TokensUsed int
}

const defaultChatModel = "anthropic/claude-3.5-sonnet"

type httpGatewayClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *log.Logger
}

func NewClient(cfg config.GatewayConfig, logger *log.Logger) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpGatewayClient{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:  cfg.APIKey,
		model:   defaultChatModel,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type jobSearchResponse struct {
	Data []json.RawMessage `json:"data"`
}

func (c *httpGatewayClient) SearchJobs(ctx context.Context, params JobSearchParams) ([]json.RawMessage, error) {
	var out jobSearchResponse
	if err := c.post(ctx, "google-jobs/search", params, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return []json.RawMessage{}, nil
	}
	return out.Data, nil
}

type webSearchRequest struct {
	Query         string         `json:"query"`
	Limit         int            `json:"limit"`
	ScrapeOptions map[string]any `json:"scrapeOptions"`
}

type webSearchResponse struct {
	Data []struct {
		Title    string `json:"title"`
		Markdown string `json:"markdown"`
	} `json:"data"`
}

func (c *httpGatewayClient) SearchCompanyInfo(ctx context.Context, companyName string) (string, error) {
	req := webSearchRequest{
		Query: fmt.Sprintf("%s company culture values mission careers", companyName),
		Limit: 3,
		ScrapeOptions: map[string]any{
			"formats":         []string{"markdown"},
			"onlyMainContent": true,
		},
	}

	var out webSearchResponse
	if err := c.post(ctx, "firecrawl/search", req, &out); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, item := range out.Data {
		md := strings.TrimSpace(item.Markdown)
		if md == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(md)
	}
	return b.String(), nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Data struct {
		Content string `json:"content"`
		Usage   struct {
			TotalTokens int `json:"total_tokens"`
		} `json:"usage"`
	} `json:"data"`
}

func (c *httpGatewayClient) GenerateCoverLetter(ctx context.Context, jobDescription string, candidate CandidateProfile) (Generation, error) {
	return c.generateText(ctx, coverLetterPrompt(jobDescription, candidate))
}

func (c *httpGatewayClient) GenerateInterviewPrep(ctx context.Context, companyName, jobTitle, companyInfo string) (Generation, error) {
	return c.generateText(ctx, interviewPrepPrompt(companyName, jobTitle, companyInfo))
}

func (c *httpGatewayClient) generateText(ctx context.Context, prompt string) (Generation, error) {
	req := chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	}

	var out chatResponse
	if err := c.post(ctx, "openrouter/chat", req, &out); err != nil {
		return Generation{}, err
	}
	if strings.TrimSpace(out.Data.Content) == "" {
		return Generation{}, errors.New("gateway returned empty generation")
	}
	return Generation{Content: out.Data.Content, TokensUsed: out.Data.Usage.TotalTokens}, nil
}

func (c *httpGatewayClient) post(ctx context.Context, path string, body any, out any) error {
	if c == nil || c.client == nil {
		return errors.New("nil gateway client")
	}
	endpoint := c.baseURL + "/" + path

	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		err := fmt.Errorf("gateway request failed: path=%s status=%d body=%s", path, resp.StatusCode, bodyStr)
		if c.logger != nil {
			c.logger.Printf("[Gateway] request error endpoint=%s status=%d body=%q", endpoint, resp.StatusCode, bodyStr)
		}
		return err
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return err
	}
	return nil
}

var _ Client = (*httpGatewayClient)(nil)
