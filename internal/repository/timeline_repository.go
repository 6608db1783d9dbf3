package repository

import (
	"context"
	"database/sql"

	"jobtrack/internal/database"
	"jobtrack/internal/domain/application"

	"github.com/google/uuid"
)

type TimelineRepository interface {
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]application.TimelineEvent, error)
}

type PostgresTimelineRepository struct {
	db database.DB
}

func NewPostgresTimelineRepository(db database.DB) *PostgresTimelineRepository {
	return &PostgresTimelineRepository{db: db}
}

func (r *PostgresTimelineRepository) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]application.TimelineEvent, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, application_id, event_type, title, notes, event_date, created_at
		 FROM timeline_events
		 WHERE application_id = $1
		 ORDER BY event_date ASC`,
		applicationID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.TimelineEvent, 0)
	for rows.Next() {
		var ev application.TimelineEvent
		var title, notes sql.NullString
		if err := rows.Scan(&ev.ID, &ev.ApplicationID, &ev.EventType, &title, &notes, &ev.EventDate, &ev.CreatedAt); err != nil {
			return nil, err
		}
		ev.Title = title.String
		ev.Notes = notes.String
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ TimelineRepository = (*PostgresTimelineRepository)(nil)
