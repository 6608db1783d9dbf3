package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"jobtrack/internal/domain/ailog"
	"jobtrack/internal/domain/profile"
	"jobtrack/internal/domain/user"
	"jobtrack/internal/gateway"
	"jobtrack/internal/pkg/authz"
	"jobtrack/internal/repository"

	"github.com/google/uuid"
)

type CoverLetterInput struct {
	JobDescription string
	ApplicationID  *uuid.UUID
}

type InterviewPrepInput struct {
	CompanyName string
	JobTitle    string
}

type AIGeneration struct {
	Content    string
	TokensUsed int
}

type AIUsecase interface {
	GenerateCoverLetter(ctx context.Context, authSubject string, in CoverLetterInput) (AIGeneration, error)
	GenerateInterviewPrep(ctx context.Context, authSubject string, in InterviewPrepInput) (AIGeneration, error)
}

type AI struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	genLogs  repository.GenerationLogRepository
	gw       gateway.Client
	logger   *log.Logger
}

func NewAIUsecase(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	genLogs repository.GenerationLogRepository,
	gw gateway.Client,
	logger *log.Logger,
) *AI {
	return &AI{users: users, profiles: profiles, genLogs: genLogs, gw: gw, logger: logger}
}

func (u *AI) GenerateCoverLetter(ctx context.Context, authSubject string, in CoverLetterInput) (AIGeneration, error) {
	if strings.TrimSpace(in.JobDescription) == "" {
		return AIGeneration{}, NewValidationError("jobDescription required")
	}

	usr, err := u.resolveUser(ctx, authSubject)
	if err != nil {
		return AIGeneration{}, err
	}
	if !authz.Allowed(authz.FeatureCoverLetter, usr.SubscriptionTier) {
		return AIGeneration{}, ErrTierInsufficient
	}

	candidate := u.candidateProfile(ctx, usr)

	gen, err := u.gw.GenerateCoverLetter(ctx, in.JobDescription, candidate)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[AI] cover letter generation failed user=%s err=%v", usr.ID, err)
		}
		return AIGeneration{}, ErrInternal
	}

	u.writeLog(ctx, repository.GenerationLogCreate{
		UserID:         usr.ID,
		ApplicationID:  in.ApplicationID,
		GenerationType: ailog.TypeCoverLetter,
		Prompt:         in.JobDescription,
		Result:         gen.Content,
		TokensUsed:     gen.TokensUsed,
	})

	return AIGeneration{Content: gen.Content, TokensUsed: gen.TokensUsed}, nil
}

func (u *AI) GenerateInterviewPrep(ctx context.Context, authSubject string, in InterviewPrepInput) (AIGeneration, error) {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.JobTitle = strings.TrimSpace(in.JobTitle)

	var missing []string
	if in.CompanyName == "" {
		missing = append(missing, "companyName")
	}
	if in.JobTitle == "" {
		missing = append(missing, "jobTitle")
	}
	if len(missing) > 0 {
		return AIGeneration{}, NewValidationError(strings.Join(missing, ", ") + " required")
	}

	usr, err := u.resolveUser(ctx, authSubject)
	if err != nil {
		return AIGeneration{}, err
	}
	if !authz.Allowed(authz.FeatureInterviewPrep, usr.SubscriptionTier) {
		return AIGeneration{}, ErrTierInsufficient
	}

	// Company research enriches the prompt when available; a lookup failure
	// only costs the enrichment, not the generation.
	companyInfo, err := u.gw.SearchCompanyInfo(ctx, in.CompanyName)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[AI] company info lookup failed company=%q err=%v", in.CompanyName, err)
		}
		companyInfo = ""
	}

	gen, err := u.gw.GenerateInterviewPrep(ctx, in.CompanyName, in.JobTitle, companyInfo)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[AI] interview prep generation failed user=%s err=%v", usr.ID, err)
		}
		return AIGeneration{}, ErrInternal
	}

	u.writeLog(ctx, repository.GenerationLogCreate{
		UserID:         usr.ID,
		GenerationType: ailog.TypeInterviewPrep,
		Prompt:         in.JobTitle + " at " + in.CompanyName,
		Result:         gen.Content,
		TokensUsed:     gen.TokensUsed,
	})

	return AIGeneration{Content: gen.Content, TokensUsed: gen.TokensUsed}, nil
}

func (u *AI) candidateProfile(ctx context.Context, usr user.User) gateway.CandidateProfile {
	candidate := gateway.CandidateProfile{Name: usr.Name}

	p, err := u.profiles.GetByUserID(ctx, usr.ID)
	if err != nil {
		if !errors.Is(err, profile.ErrNotFound) && u.logger != nil {
			u.logger.Printf("[AI] profile lookup failed user=%s err=%v", usr.ID, err)
		}
		return candidate
	}

	candidate.Experience = p.SavedAnswers["experience"]
	candidate.Skills = p.SavedAnswers["skills"]
	candidate.LinkedinURL = p.LinkedinURL
	return candidate
}

// writeLog is best-effort: usage accounting must never cost the user a
// generation that already succeeded.
func (u *AI) writeLog(ctx context.Context, in repository.GenerationLogCreate) {
	if err := u.genLogs.Create(ctx, in); err != nil && u.logger != nil {
		u.logger.Printf("[AI] generation log write failed user=%s type=%s err=%v", in.UserID, in.GenerationType, err)
	}
}

func (u *AI) resolveUser(ctx context.Context, authSubject string) (user.User, error) {
	usr, err := u.users.GetByAuthSubject(ctx, authSubject)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		if u.logger != nil {
			u.logger.Printf("[AI] user lookup failed err=%v", err)
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}
