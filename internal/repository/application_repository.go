package repository

import (
	"context"
	"database/sql"
	"errors"

	"jobtrack/internal/database"
	"jobtrack/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ApplicationCreate struct {
	UserID         uuid.UUID
	JobTitle       string
	CompanyName    string
	CompanyWebsite string
	Location       string
	SalaryRange    string
	JobDescription string
	JobURL         string
	Source         string
	Status         string
	AppliedDate    *string
	Notes          string
}

type TimelineEventCreate struct {
	EventType string
	Title     string
	Notes     string
}

type ApplicationRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]application.Application, error)
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (application.Application, error)
	// CreateWithEvent inserts the application and its initial timeline event
	// in one transaction, so no application row exists without its audit row.
	CreateWithEvent(ctx context.Context, in ApplicationCreate, ev TimelineEventCreate) (application.Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `id, user_id, job_title, company_name, company_website, location,
	salary_range, job_description, job_url, source, status, applied_date, notes,
	created_at, updated_at`

func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+`
		 FROM applications
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+`
		 FROM applications
		 WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return app, nil
}

func (r *PostgresApplicationRepository) CreateWithEvent(ctx context.Context, in ApplicationCreate, ev TimelineEventCreate) (application.Application, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return application.Application{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	row := tx.QueryRow(ctx,
		`INSERT INTO applications
			(user_id, job_title, company_name, company_website, location, salary_range,
			 job_description, job_url, source, status, applied_date, notes)
		 VALUES ($1, $2, $3, NULLIF($4,''), NULLIF($5,''), NULLIF($6,''),
			 NULLIF($7,''), NULLIF($8,''), $9, $10, $11, NULLIF($12,''))
		 RETURNING `+applicationColumns,
		in.UserID, in.JobTitle, in.CompanyName, in.CompanyWebsite, in.Location,
		in.SalaryRange, in.JobDescription, in.JobURL, in.Source, in.Status,
		in.AppliedDate, in.Notes,
	)
	app, err := scanApplication(row)
	if err != nil {
		return application.Application{}, err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO timeline_events (application_id, event_type, title)
		 VALUES ($1, $2, NULLIF($3,''))`,
		app.ID, ev.EventType, ev.Title,
	)
	if err != nil {
		return application.Application{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return application.Application{}, err
	}
	return app, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanApplication(row scannable) (application.Application, error) {
	var app application.Application
	var website, location, salary, desc, url, notes sql.NullString
	var appliedDate sql.NullTime

	err := row.Scan(
		&app.ID, &app.UserID, &app.JobTitle, &app.CompanyName, &website, &location,
		&salary, &desc, &url, &app.Source, &app.Status, &appliedDate, &notes,
		&app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return application.Application{}, err
	}

	app.CompanyWebsite = website.String
	app.Location = location.String
	app.SalaryRange = salary.String
	app.JobDescription = desc.String
	app.JobURL = url.String
	app.Notes = notes.String
	if appliedDate.Valid {
		t := appliedDate.Time
		app.AppliedDate = &t
	}
	return app, nil
}

var _ ApplicationRepository = (*PostgresApplicationRepository)(nil)
