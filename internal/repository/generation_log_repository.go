package repository

import (
	"context"

	"jobtrack/internal/database"

	"github.com/google/uuid"
)

type GenerationLogCreate struct {
	UserID         uuid.UUID
	ApplicationID  *uuid.UUID
	GenerationType string
	Prompt         string
	Result         string
	TokensUsed     int
}

// GenerationLogRepository is write-only: rows feed offline cost accounting
// and are never read back by the service.
type GenerationLogRepository interface {
	Create(ctx context.Context, in GenerationLogCreate) error
}

type PostgresGenerationLogRepository struct {
	db database.DB
}

func NewPostgresGenerationLogRepository(db database.DB) *PostgresGenerationLogRepository {
	return &PostgresGenerationLogRepository{db: db}
}

func (r *PostgresGenerationLogRepository) Create(ctx context.Context, in GenerationLogCreate) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO ai_generations
			(user_id, application_id, generation_type, prompt, result, tokens_used)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		in.UserID, in.ApplicationID, in.GenerationType, in.Prompt, in.Result, in.TokensUsed,
	)
	return err
}

var _ GenerationLogRepository = (*PostgresGenerationLogRepository)(nil)
