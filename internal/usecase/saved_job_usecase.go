package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/domain/user"
	"jobtrack/internal/repository"
)

type SaveJobInput struct {
	JobTitle       string
	CompanyName    string
	Location       string
	SalaryRange    string
	JobURL         string
	JobDescription string
	Source         string
}

type SavedJobUsecase interface {
	List(ctx context.Context, authSubject string) ([]job.SavedJob, error)
	Save(ctx context.Context, authSubject string, in SaveJobInput) (job.SavedJob, error)
}

type SavedJobs struct {
	users  repository.UserRepository
	saved  repository.SavedJobRepository
	logger *log.Logger
}

func NewSavedJobUsecase(users repository.UserRepository, saved repository.SavedJobRepository, logger *log.Logger) *SavedJobs {
	return &SavedJobs{users: users, saved: saved, logger: logger}
}

func (u *SavedJobs) List(ctx context.Context, authSubject string) ([]job.SavedJob, error) {
	usr, err := u.resolveUser(ctx, authSubject)
	if err != nil {
		return nil, err
	}

	items, err := u.saved.ListByUser(ctx, usr.ID)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[SavedJobs] list failed user=%s err=%v", usr.ID, err)
		}
		return nil, ErrInternal
	}
	return items, nil
}

func (u *SavedJobs) Save(ctx context.Context, authSubject string, in SaveJobInput) (job.SavedJob, error) {
	usr, err := u.resolveUser(ctx, authSubject)
	if err != nil {
		return job.SavedJob{}, err
	}

	in.JobTitle = strings.TrimSpace(in.JobTitle)
	in.CompanyName = strings.TrimSpace(in.CompanyName)

	var missing []string
	if in.JobTitle == "" {
		missing = append(missing, "job_title")
	}
	if in.CompanyName == "" {
		missing = append(missing, "company_name")
	}
	if len(missing) > 0 {
		return job.SavedJob{}, NewValidationError(strings.Join(missing, ", ") + " required")
	}

	sj, err := u.saved.Create(ctx, repository.SavedJobCreate{
		UserID:         usr.ID,
		JobTitle:       in.JobTitle,
		CompanyName:    in.CompanyName,
		Location:       in.Location,
		SalaryRange:    in.SalaryRange,
		JobURL:         in.JobURL,
		JobDescription: in.JobDescription,
		Source:         in.Source,
	})
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[SavedJobs] save failed user=%s err=%v", usr.ID, err)
		}
		return job.SavedJob{}, ErrInternal
	}
	return sj, nil
}

func (u *SavedJobs) resolveUser(ctx context.Context, authSubject string) (user.User, error) {
	usr, err := u.users.GetByAuthSubject(ctx, authSubject)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		if u.logger != nil {
			u.logger.Printf("[SavedJobs] user lookup failed err=%v", err)
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}
