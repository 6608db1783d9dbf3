package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"jobtrack/internal/database"
	"jobtrack/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProfileUpsert struct {
	UserID              uuid.UUID
	ResumeURL           *string
	CoverLetterTemplate *string
	LinkedinURL         *string
	PortfolioURL        *string
	GithubURL           *string
	Phone               *string
	SavedAnswers        map[string]string
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	// Upsert creates the row on first write; nil fields keep their stored value.
	Upsert(ctx context.Context, in ProfileUpsert) (profile.Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `id, user_id, resume_url, cover_letter_template, linkedin_url,
	portfolio_url, github_url, phone, saved_answers, created_at, updated_at`

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+`
		 FROM user_profiles
		 WHERE user_id = $1`,
		userID,
	)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, in ProfileUpsert) (profile.Profile, error) {
	var answers []byte
	if in.SavedAnswers != nil {
		b, err := json.Marshal(in.SavedAnswers)
		if err != nil {
			return profile.Profile{}, err
		}
		answers = b
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO user_profiles
			(user_id, resume_url, cover_letter_template, linkedin_url, portfolio_url, github_url, phone, saved_answers)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8::jsonb, '{}'::jsonb))
		 ON CONFLICT (user_id) DO UPDATE SET
			resume_url = COALESCE(EXCLUDED.resume_url, user_profiles.resume_url),
			cover_letter_template = COALESCE(EXCLUDED.cover_letter_template, user_profiles.cover_letter_template),
			linkedin_url = COALESCE(EXCLUDED.linkedin_url, user_profiles.linkedin_url),
			portfolio_url = COALESCE(EXCLUDED.portfolio_url, user_profiles.portfolio_url),
			github_url = COALESCE(EXCLUDED.github_url, user_profiles.github_url),
			phone = COALESCE(EXCLUDED.phone, user_profiles.phone),
			saved_answers = CASE WHEN $8::jsonb IS NULL THEN user_profiles.saved_answers ELSE EXCLUDED.saved_answers END,
			updated_at = now()
		 RETURNING `+profileColumns,
		in.UserID, in.ResumeURL, in.CoverLetterTemplate, in.LinkedinURL,
		in.PortfolioURL, in.GithubURL, in.Phone, answers,
	)
	return scanProfile(row)
}

func scanProfile(row scannable) (profile.Profile, error) {
	var p profile.Profile
	var resume, template, linkedin, portfolio, github, phone sql.NullString
	var answers []byte

	err := row.Scan(
		&p.ID, &p.UserID, &resume, &template, &linkedin,
		&portfolio, &github, &phone, &answers, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return profile.Profile{}, err
	}

	p.ResumeURL = resume.String
	p.CoverLetterTemplate = template.String
	p.LinkedinURL = linkedin.String
	p.PortfolioURL = portfolio.String
	p.GithubURL = github.String
	p.Phone = phone.String

	p.SavedAnswers = map[string]string{}
	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &p.SavedAnswers); err != nil {
			return profile.Profile{}, err
		}
	}
	return p, nil
}

var _ ProfileRepository = (*PostgresProfileRepository)(nil)
