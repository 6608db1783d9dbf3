package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/domain/application"
	"jobtrack/internal/pkg/session"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "handler-test-secret"

type stubApplicationUsecase struct {
	listResult []application.Application
	listErr    error

	createResult application.Application
	createErr    error
	lastCreate   usecase.CreateApplicationInput

	timelineResult []application.TimelineEvent
	timelineErr    error
}

func (s *stubApplicationUsecase) List(_ context.Context, _ string) ([]application.Application, error) {
	return s.listResult, s.listErr
}

func (s *stubApplicationUsecase) Create(_ context.Context, _ string, in usecase.CreateApplicationInput) (application.Application, error) {
	s.lastCreate = in
	if s.createErr != nil {
		return application.Application{}, s.createErr
	}
	return s.createResult, nil
}

func (s *stubApplicationUsecase) Timeline(_ context.Context, _ string, _ uuid.UUID) ([]application.TimelineEvent, error) {
	return s.timelineResult, s.timelineErr
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T, uc usecase.ApplicationUsecase) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	authMw := middleware.NewAuthMiddleware(session.NewHMACVerifier(testSecret))
	g := app.Group("/api/v1", authMw.Middleware())
	NewApplicationHandler(uc).RegisterRoutes(g)

	return app
}

func testToken(t *testing.T) string {
	t.Helper()
	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, session.Claims{
		Subject: "user_test",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return s
}

func TestApplicationRoutes_MissingTokenIs401(t *testing.T) {
	app := newTestApp(t, &stubApplicationUsecase{})

	req := httptest.NewRequest("GET", "/api/v1/applications", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestApplicationCreate_ReturnsCreatedEnvelope(t *testing.T) {
	appID := uuid.New()
	stub := &stubApplicationUsecase{
		createResult: application.Application{
			ID:          appID,
			JobTitle:    "Go Engineer",
			CompanyName: "Acme",
			Source:      application.SourceManual,
			Status:      application.StatusSaved,
		},
	}
	app := newTestApp(t, stub)

	body := bytes.NewBufferString(`{"job_title":"Go Engineer","company_name":"Acme"}`)
	req := httptest.NewRequest("POST", "/api/v1/applications", body)
	req.Header.Set("Authorization", "Bearer "+testToken(t))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if env.Status != fiber.StatusCreated {
		t.Fatalf("envelope status mismatch: %d", env.Status)
	}

	var data struct {
		Application struct {
			ID       string `json:"id"`
			JobTitle string `json:"job_title"`
			Status   string `json:"status"`
		} `json:"application"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	if data.Application.ID != appID.String() {
		t.Fatalf("unexpected application id: %s", data.Application.ID)
	}
	if data.Application.Status != application.StatusSaved {
		t.Fatalf("unexpected status: %s", data.Application.Status)
	}

	if stub.lastCreate.JobTitle != "Go Engineer" || stub.lastCreate.CompanyName != "Acme" {
		t.Fatalf("request fields not forwarded: %+v", stub.lastCreate)
	}
}

func TestApplicationCreate_ValidationErrorKeepsMessage(t *testing.T) {
	stub := &stubApplicationUsecase{createErr: usecase.NewValidationError("job_title required")}
	app := newTestApp(t, stub)

	req := httptest.NewRequest("POST", "/api/v1/applications", bytes.NewBufferString(`{"company_name":"Acme"}`))
	req.Header.Set("Authorization", "Bearer "+testToken(t))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if env.Message != "job_title required" {
		t.Fatalf("validation message lost: %q", env.Message)
	}
}

func TestApplicationTimeline_BadIDIs400(t *testing.T) {
	app := newTestApp(t, &stubApplicationUsecase{})

	req := httptest.NewRequest("GET", "/api/v1/applications/not-a-uuid/timeline", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestApplicationTimeline_NotOwnedIs404(t *testing.T) {
	stub := &stubApplicationUsecase{timelineErr: application.ErrNotFound}
	app := newTestApp(t, stub)

	req := httptest.NewRequest("GET", "/api/v1/applications/"+uuid.NewString()+"/timeline", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestApplicationList_InternalErrorIsGeneric(t *testing.T) {
	stub := &stubApplicationUsecase{listErr: usecase.ErrInternal}
	app := newTestApp(t, stub)

	req := httptest.NewRequest("GET", "/api/v1/applications", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if env.Message == usecase.ErrInternal.Error() {
		t.Fatalf("internal detail leaked into the response: %q", env.Message)
	}
}
