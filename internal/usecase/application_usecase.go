package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"jobtrack/internal/domain/application"
	"jobtrack/internal/domain/user"
	"jobtrack/internal/repository"

	"github.com/google/uuid"
)

type CreateApplicationInput struct {
	JobTitle       string
	CompanyName    string
	CompanyWebsite string
	Location       string
	SalaryRange    string
	JobDescription string
	JobURL         string
	Source         string
	Status         string
	AppliedDate    string
	Notes          string
}

type ApplicationUsecase interface {
	List(ctx context.Context, authSubject string) ([]application.Application, error)
	Create(ctx context.Context, authSubject string, in CreateApplicationInput) (application.Application, error)
	Timeline(ctx context.Context, authSubject string, applicationID uuid.UUID) ([]application.TimelineEvent, error)
}

type Applications struct {
	users    repository.UserRepository
	apps     repository.ApplicationRepository
	timeline repository.TimelineRepository
	logger   *log.Logger
}

func NewApplicationUsecase(
	users repository.UserRepository,
	apps repository.ApplicationRepository,
	timeline repository.TimelineRepository,
	logger *log.Logger,
) *Applications {
	return &Applications{users: users, apps: apps, timeline: timeline, logger: logger}
}

func (u *Applications) List(ctx context.Context, authSubject string) ([]application.Application, error) {
	usr, err := u.resolveUser(ctx, authSubject)
	if err != nil {
		return nil, err
	}

	items, err := u.apps.ListByUser(ctx, usr.ID)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Applications] list failed user=%s err=%v", usr.ID, err)
		}
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Applications) Create(ctx context.Context, authSubject string, in CreateApplicationInput) (application.Application, error) {
	usr, err := u.resolveUser(ctx, authSubject)
	if err != nil {
		return application.Application{}, err
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
		return application.Application{}, NewValidationError(strings.Join(missing, ", ") + " required")
	}

	source := in.Source
	if source == "" {
		source = application.SourceManual
	}
	if !application.ValidSource(source) {
		return application.Application{}, NewValidationError("invalid source: " + source)
	}

	status := in.Status
	if status == "" {
		status = application.StatusSaved
	}
	if !application.ValidStatus(status) {
		return application.Application{}, NewValidationError("invalid status: " + status)
	}

	var appliedDate *string
	if d := strings.TrimSpace(in.AppliedDate); d != "" {
		appliedDate = &d
	}

	// Any status other than applied is recorded as a plain creation; the
	// status itself stays unconstrained, matching the tracker's permissive model.
	ev := repository.TimelineEventCreate{
		EventType: application.EventCreated,
		Title:     "Application saved",
	}
	if status == application.StatusApplied {
		ev.EventType = application.EventApplied
		ev.Title = "Application submitted"
	}

	app, err := u.apps.CreateWithEvent(ctx, repository.ApplicationCreate{
		UserID:         usr.ID,
		JobTitle:       in.JobTitle,
		CompanyName:    in.CompanyName,
		CompanyWebsite: in.CompanyWebsite,
		Location:       in.Location,
		SalaryRange:    in.SalaryRange,
		JobDescription: in.JobDescription,
		JobURL:         in.JobURL,
		Source:         source,
		Status:         status,
		AppliedDate:    appliedDate,
		Notes:          in.Notes,
	}, ev)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Applications] create failed user=%s err=%v", usr.ID, err)
		}
		return application.Application{}, ErrInternal
	}
	return app, nil
}

func (u *Applications) Timeline(ctx context.Context, authSubject string, applicationID uuid.UUID) ([]application.TimelineEvent, error) {
	usr, err := u.resolveUser(ctx, authSubject)
	if err != nil {
		return nil, err
	}

	// Ownership check first so other users' applications read as missing.
	if _, err := u.apps.GetByIDForUser(ctx, applicationID, usr.ID); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return nil, application.ErrNotFound
		}
		if u.logger != nil {
			u.logger.Printf("[Applications] ownership check failed application=%s err=%v", applicationID, err)
		}
		return nil, ErrInternal
	}

	events, err := u.timeline.ListByApplication(ctx, applicationID)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Applications] timeline failed application=%s err=%v", applicationID, err)
		}
		return nil, ErrInternal
	}
	return events, nil
}

func (u *Applications) resolveUser(ctx context.Context, authSubject string) (user.User, error) {
	usr, err := u.users.GetByAuthSubject(ctx, authSubject)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		if u.logger != nil {
			u.logger.Printf("[Applications] user lookup failed err=%v", err)
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}
