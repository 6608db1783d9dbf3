package usecase

import (
	"context"
	"errors"
	"log"

	"jobtrack/internal/domain/profile"
	"jobtrack/internal/domain/user"
	"jobtrack/internal/repository"
)

type UpdateProfileInput struct {
	ResumeURL           *string
	CoverLetterTemplate *string
	LinkedinURL         *string
	PortfolioURL        *string
	GithubURL           *string
	Phone               *string
	SavedAnswers        map[string]string
}

func (in UpdateProfileInput) empty() bool {
	return in.ResumeURL == nil && in.CoverLetterTemplate == nil && in.LinkedinURL == nil &&
		in.PortfolioURL == nil && in.GithubURL == nil && in.Phone == nil && in.SavedAnswers == nil
}

type ProfileUsecase interface {
	Get(ctx context.Context, authSubject string) (profile.Profile, error)
	Update(ctx context.Context, authSubject string, in UpdateProfileInput) (profile.Profile, error)
}

type Profiles struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	logger   *log.Logger
}

func NewProfileUsecase(users repository.UserRepository, profiles repository.ProfileRepository, logger *log.Logger) *Profiles {
	return &Profiles{users: users, profiles: profiles, logger: logger}
}

func (u *Profiles) Get(ctx context.Context, authSubject string) (profile.Profile, error) {
	usr, err := u.resolveUser(ctx, authSubject)
	if err != nil {
		return profile.Profile{}, err
	}

	p, err := u.profiles.GetByUserID(ctx, usr.ID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Profile{}, profile.ErrNotFound
		}
		if u.logger != nil {
			u.logger.Printf("[Profiles] get failed user=%s err=%v", usr.ID, err)
		}
		return profile.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Profiles) Update(ctx context.Context, authSubject string, in UpdateProfileInput) (profile.Profile, error) {
	usr, err := u.resolveUser(ctx, authSubject)
	if err != nil {
		return profile.Profile{}, err
	}

	if in.empty() {
		return profile.Profile{}, NewValidationError("no profile fields provided")
	}

	p, err := u.profiles.Upsert(ctx, repository.ProfileUpsert{
		UserID:              usr.ID,
		ResumeURL:           in.ResumeURL,
		CoverLetterTemplate: in.CoverLetterTemplate,
		LinkedinURL:         in.LinkedinURL,
		PortfolioURL:        in.PortfolioURL,
		GithubURL:           in.GithubURL,
		Phone:               in.Phone,
		SavedAnswers:        in.SavedAnswers,
	})
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Profiles] upsert failed user=%s err=%v", usr.ID, err)
		}
		return profile.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Profiles) resolveUser(ctx context.Context, authSubject string) (user.User, error) {
	usr, err := u.users.GetByAuthSubject(ctx, authSubject)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		if u.logger != nil {
			u.logger.Printf("[Profiles] user lookup failed err=%v", err)
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}
