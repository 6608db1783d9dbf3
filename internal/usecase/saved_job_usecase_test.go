package usecase

import (
	"context"
	"errors"
	"testing"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/domain/user"
	"jobtrack/internal/repository"

	"github.com/google/uuid"
)

type mockSavedJobRepo struct {
	byUser  map[uuid.UUID][]job.SavedJob
	created []repository.SavedJobCreate
	err     error
}

func (m *mockSavedJobRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]job.SavedJob, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byUser[userID], nil
}

func (m *mockSavedJobRepo) Create(_ context.Context, in repository.SavedJobCreate) (job.SavedJob, error) {
	if m.err != nil {
		return job.SavedJob{}, m.err
	}
	m.created = append(m.created, in)
	return job.SavedJob{
		ID:          uuid.New(),
		UserID:      in.UserID,
		JobTitle:    in.JobTitle,
		CompanyName: in.CompanyName,
	}, nil
}

func TestSavedJobSave_MissingFields(t *testing.T) {
	usr := newTestUser("sub-1")
	repo := &mockSavedJobRepo{}
	uc := NewSavedJobUsecase(mockUserRepo{users: map[string]user.User{"sub-1": usr}}, repo, nil)

	_, err := uc.Save(context.Background(), "sub-1", SaveJobInput{JobTitle: "  "})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if got := ve.Error(); got != "job_title, company_name required" {
		t.Fatalf("unexpected validation message: %q", got)
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected no insert on validation failure")
	}
}

func TestSavedJobSave_AttributedToCaller(t *testing.T) {
	usr := newTestUser("sub-1")
	repo := &mockSavedJobRepo{}
	uc := NewSavedJobUsecase(mockUserRepo{users: map[string]user.User{"sub-1": usr}}, repo, nil)

	sj, err := uc.Save(context.Background(), "sub-1", SaveJobInput{
		JobTitle:    " Go Engineer ",
		CompanyName: "Acme",
		Source:      "google_jobs",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sj.UserID != usr.ID {
		t.Fatalf("saved job attributed to wrong user")
	}
	if sj.JobTitle != "Go Engineer" {
		t.Fatalf("title not trimmed: %q", sj.JobTitle)
	}
}

func TestSavedJobList_ScopedToUser(t *testing.T) {
	userA := newTestUser("sub-a")
	userB := newTestUser("sub-b")

	repo := &mockSavedJobRepo{byUser: map[uuid.UUID][]job.SavedJob{
		userA.ID: {{ID: uuid.New(), UserID: userA.ID}},
		userB.ID: {{ID: uuid.New(), UserID: userB.ID}, {ID: uuid.New(), UserID: userB.ID}},
	}}
	uc := NewSavedJobUsecase(mockUserRepo{users: map[string]user.User{
		"sub-a": userA,
		"sub-b": userB,
	}}, repo, nil)

	items, err := uc.List(context.Background(), "sub-b")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, it := range items {
		if it.UserID != userB.ID {
			t.Fatalf("list returned another user's saved job")
		}
	}
}

func TestSavedJobSave_RepoFailure(t *testing.T) {
	usr := newTestUser("sub-1")
	repo := &mockSavedJobRepo{err: errors.New("insert failed")}
	uc := NewSavedJobUsecase(mockUserRepo{users: map[string]user.User{"sub-1": usr}}, repo, nil)

	_, err := uc.Save(context.Background(), "sub-1", SaveJobInput{JobTitle: "SWE", CompanyName: "Acme"})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
