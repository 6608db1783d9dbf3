package repository

import (
	"context"
	"database/sql"
	"errors"

	"jobtrack/internal/database"
	"jobtrack/internal/domain/user"

	"github.com/jackc/pgx/v5"
)

type UserRepository interface {
	GetByAuthSubject(ctx context.Context, authSubject string) (user.User, error)
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) GetByAuthSubject(ctx context.Context, authSubject string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, auth_subject, email, name, subscription_tier, created_at, updated_at
		 FROM users
		 WHERE auth_subject = $1`,
		authSubject,
	)

	var u user.User
	var name sql.NullString
	if err := row.Scan(&u.ID, &u.AuthSubject, &u.Email, &name, &u.SubscriptionTier, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	if name.Valid {
		u.Name = name.String
	}
	return u, nil
}

var _ UserRepository = (*PostgresUserRepository)(nil)
