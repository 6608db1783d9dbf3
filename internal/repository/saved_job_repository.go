package repository

import (
	"context"
	"database/sql"

	"jobtrack/internal/database"
	"jobtrack/internal/domain/job"

	"github.com/google/uuid"
)

type SavedJobCreate struct {
	UserID         uuid.UUID
	JobTitle       string
	CompanyName    string
	Location       string
	SalaryRange    string
	JobURL         string
	JobDescription string
	Source         string
}

type SavedJobRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]job.SavedJob, error)
	Create(ctx context.Context, in SavedJobCreate) (job.SavedJob, error)
}

type PostgresSavedJobRepository struct {
	db database.DB
}

func NewPostgresSavedJobRepository(db database.DB) *PostgresSavedJobRepository {
	return &PostgresSavedJobRepository{db: db}
}

const savedJobColumns = `id, user_id, job_title, company_name, location, salary_range,
	job_url, job_description, source, created_at`

func (r *PostgresSavedJobRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]job.SavedJob, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+savedJobColumns+`
		 FROM saved_jobs
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.SavedJob, 0)
	for rows.Next() {
		sj, err := scanSavedJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sj)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSavedJobRepository) Create(ctx context.Context, in SavedJobCreate) (job.SavedJob, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO saved_jobs
			(user_id, job_title, company_name, location, salary_range, job_url, job_description, source)
		 VALUES ($1, $2, $3, NULLIF($4,''), NULLIF($5,''), NULLIF($6,''), NULLIF($7,''), NULLIF($8,''))
		 RETURNING `+savedJobColumns,
		in.UserID, in.JobTitle, in.CompanyName, in.Location, in.SalaryRange,
		in.JobURL, in.JobDescription, in.Source,
	)
	return scanSavedJob(row)
}

func scanSavedJob(row scannable) (job.SavedJob, error) {
	var sj job.SavedJob
	var location, salary, url, desc, source sql.NullString
	err := row.Scan(
		&sj.ID, &sj.UserID, &sj.JobTitle, &sj.CompanyName, &location, &salary,
		&url, &desc, &source, &sj.CreatedAt,
	)
	if err != nil {
		return job.SavedJob{}, err
	}
	sj.Location = location.String
	sj.SalaryRange = salary.String
	sj.JobURL = url.String
	sj.JobDescription = desc.String
	sj.Source = source.String
	return sj, nil
}

var _ SavedJobRepository = (*PostgresSavedJobRepository)(nil)
