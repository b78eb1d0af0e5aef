package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"roster/internal/servicerecord/models"
	"roster/pkg/domain"
)

// PostgresStore persists service record entries in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed service record store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, entry *models.Entry) error {
	var performedBy *uuid.UUID
	if entry.PerformedBy != nil {
		u := uuid.UUID(*entry.PerformedBy)
		performedBy = &u
	}
	payload := entry.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO service_records (id, soldier_id, action_type, payload, performed_by, visibility, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.UUID(entry.ID), uuid.UUID(entry.SoldierID), string(entry.ActionType), []byte(payload),
		performedBy, string(entry.Visibility), entry.OccurredAt)
	if err != nil {
		return fmt.Errorf("append service record: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListBySoldier(ctx context.Context, soldierID domain.SoldierID, visibilities []models.Visibility) ([]*models.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, soldier_id, action_type, payload, performed_by, visibility, occurred_at
		FROM service_records
		WHERE soldier_id = $1 AND visibility = ANY($2)
		ORDER BY occurred_at ASC, id ASC
	`, uuid.UUID(soldierID), pq.Array(visibilityStrings(visibilities)))
	if err != nil {
		return nil, fmt.Errorf("list service records: %w", err)
	}
	return scanEntries(rows)
}

func (s *PostgresStore) ListRecent(ctx context.Context, limit int) ([]*models.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, soldier_id, action_type, payload, performed_by, visibility, occurred_at
		FROM service_records
		ORDER BY occurred_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent service records: %w", err)
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]*models.Entry, error) {
	defer rows.Close()

	var out []*models.Entry
	for rows.Next() {
		var (
			id, soldierID      uuid.UUID
			action, visibility string
			payload            []byte
			performedBy        uuid.NullUUID
			occurredAt         time.Time
		)
		if err := rows.Scan(&id, &soldierID, &action, &payload, &performedBy, &visibility, &occurredAt); err != nil {
			return nil, fmt.Errorf("scan service record: %w", err)
		}
		entry := &models.Entry{
			ID:         domain.RecordID(id),
			SoldierID:  domain.SoldierID(soldierID),
			ActionType: models.ActionType(action),
			Payload:    payload,
			Visibility: models.Visibility(visibility),
			OccurredAt: occurredAt,
		}
		if performedBy.Valid {
			u := domain.UserID(performedBy.UUID)
			entry.PerformedBy = &u
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service records: %w", err)
	}
	return out, nil
}

func visibilityStrings(vs []models.Visibility) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
