package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"roster/internal/enlistment/models"
	"roster/internal/platform/postgres"
	"roster/pkg/domain"
	"roster/pkg/platform/sentinel"
)

// PostgresStore persists enlistments in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const enlistmentColumns = `id, user_id, display_name, discord_username, age, timezone, arma_experience,
	why_join, referred_by, notes, status, submitted_at, reviewed_at, reviewed_by, soldier_id`

func (s *PostgresStore) Create(ctx context.Context, e *models.Enlistment) error {
	_, err := postgres.ExecerFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO enlistments (`+enlistmentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NULL, NULL, NULL)
	`, uuid.UUID(e.ID), nullUser(e.UserID), e.DisplayName, e.DiscordUsername, e.Age, e.Timezone,
		e.ArmaExperience, e.WhyJoin, e.ReferredBy, e.Notes, string(e.Status), e.SubmittedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert enlistment: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.EnlistmentID) (*models.Enlistment, error) {
	row := postgres.ExecerFrom(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+enlistmentColumns+` FROM enlistments WHERE id = $1`, uuid.UUID(id))
	return scanEnlistment(row)
}

func (s *PostgresStore) Transition(ctx context.Context, id domain.EnlistmentID, from, to models.Status, reviewer *domain.UserID, at time.Time) error {
	res, err := postgres.ExecerFrom(ctx, s.db).ExecContext(ctx, `
		UPDATE enlistments SET status = $3, reviewed_at = $4, reviewed_by = $5
		WHERE id = $1 AND status = $2
	`, uuid.UUID(id), string(from), string(to), at, nullUser(reviewer))
	if err != nil {
		return fmt.Errorf("transition enlistment: %w", err)
	}
	return s.checkUpdated(ctx, res, id)
}

func (s *PostgresStore) MarkAccepted(ctx context.Context, id domain.EnlistmentID, from models.Status, soldierID domain.SoldierID, reviewer *domain.UserID, at time.Time) error {
	res, err := postgres.ExecerFrom(ctx, s.db).ExecContext(ctx, `
		UPDATE enlistments
		SET status = $3, reviewed_at = $4, reviewed_by = $5, soldier_id = $6
		WHERE id = $1 AND status = $2 AND soldier_id IS NULL
	`, uuid.UUID(id), string(from), string(models.StatusAccepted), at, nullUser(reviewer), uuid.UUID(soldierID))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("accept enlistment: %w", err)
	}
	return s.checkUpdated(ctx, res, id)
}

func (s *PostgresStore) EnsureAccepted(ctx context.Context, id domain.EnlistmentID, reviewer *domain.UserID, at time.Time) error {
	res, err := postgres.ExecerFrom(ctx, s.db).ExecContext(ctx, `
		UPDATE enlistments
		SET status = $2,
		    reviewed_at = COALESCE(reviewed_at, $3),
		    reviewed_by = COALESCE(reviewed_by, $4)
		WHERE id = $1 AND soldier_id IS NOT NULL
	`, uuid.UUID(id), string(models.StatusAccepted), at, nullUser(reviewer))
	if err != nil {
		return fmt.Errorf("ensure enlistment accepted: %w", err)
	}
	return s.checkUpdated(ctx, res, id)
}

// checkUpdated distinguishes a missing enlistment from a lost compare-and-set.
func (s *PostgresStore) checkUpdated(ctx context.Context, res sql.Result, id domain.EnlistmentID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	return sentinel.ErrConflict
}

func (s *PostgresStore) List(ctx context.Context, statuses []models.Status) ([]*models.Enlistment, error) {
	filter := make([]string, len(statuses))
	for i, st := range statuses {
		filter[i] = string(st)
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+enlistmentColumns+`
		FROM enlistments
		WHERE cardinality($1::text[]) = 0 OR status = ANY($1::text[])
		ORDER BY submitted_at ASC
	`, pq.Array(filter))
	if err != nil {
		return nil, fmt.Errorf("list enlistments: %w", err)
	}
	defer rows.Close()

	var out []*models.Enlistment
	for rows.Next() {
		e, err := scanEnlistment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enlistments: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) CountByStatus(ctx context.Context) (map[models.Status]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM enlistments GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count enlistments: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Status]int, len(models.Statuses))
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan enlistment count: %w", err)
		}
		counts[models.Status(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enlistment counts: %w", err)
	}
	return counts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEnlistment(row rowScanner) (*models.Enlistment, error) {
	var (
		e                         models.Enlistment
		id                        uuid.UUID
		userID, reviewer, soldier uuid.NullUUID
		status                    string
		reviewedAt                sql.NullTime
	)
	err := row.Scan(&id, &userID, &e.DisplayName, &e.DiscordUsername, &e.Age, &e.Timezone, &e.ArmaExperience,
		&e.WhyJoin, &e.ReferredBy, &e.Notes, &status, &e.SubmittedAt, &reviewedAt, &reviewer, &soldier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan enlistment: %w", err)
	}
	e.ID = domain.EnlistmentID(id)
	e.Status = models.Status(status)
	if userID.Valid {
		u := domain.UserID(userID.UUID)
		e.UserID = &u
	}
	if reviewedAt.Valid {
		t := reviewedAt.Time
		e.ReviewedAt = &t
	}
	if reviewer.Valid {
		u := domain.UserID(reviewer.UUID)
		e.ReviewedBy = &u
	}
	if soldier.Valid {
		sid := domain.SoldierID(soldier.UUID)
		e.SoldierID = &sid
	}
	return &e, nil
}

func nullUser(id *domain.UserID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: uuid.UUID(*id), Valid: true}
}
