package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"roster/internal/attendance/models"
	"roster/internal/platform/postgres"
	"roster/pkg/domain"
	"roster/pkg/platform/sentinel"
)

const foreignKeyViolation = "23503"

// PostgresStore persists operations and attendance in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// RunInTx runs fn in a transaction that the store's writes join.
func (s *PostgresStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return postgres.RunInTx(ctx, s.db, fn)
}

const operationColumns = `id, title, operation_date, operation_type, status, description, created_by, created_at`

func (s *PostgresStore) CreateOperation(ctx context.Context, op *models.Operation) error {
	var createdBy uuid.NullUUID
	if op.CreatedBy != nil {
		createdBy = uuid.NullUUID{UUID: uuid.UUID(*op.CreatedBy), Valid: true}
	}
	_, err := postgres.ExecerFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO operations (`+operationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, uuid.UUID(op.ID), op.Title, op.OperationDate, string(op.OperationType), string(op.Status),
		op.Description, createdBy, op.CreatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindOperation(ctx context.Context, id domain.OperationID) (*models.Operation, error) {
	row := postgres.ExecerFrom(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+operationColumns+` FROM operations WHERE id = $1`, uuid.UUID(id))
	op, err := scanOperation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find operation: %w", err)
	}
	return op, nil
}

func (s *PostgresStore) ListCompletedOperations(ctx context.Context, limit int) ([]*models.Operation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+operationColumns+`
		FROM operations
		WHERE status = 'completed'
		ORDER BY operation_date DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list completed operations: %w", err)
	}
	defer rows.Close()

	var out []*models.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		out = append(out, op)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CountCompletedOperations(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM operations WHERE status = 'completed'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count completed operations: %w", err)
	}
	return n, nil
}

// Upsert inserts or replaces the row for (soldier_id, operation_id). The original
// id and created_at survive a replace.
func (s *PostgresStore) Upsert(ctx context.Context, row *models.Attendance) (*models.Attendance, error) {
	var recordedBy uuid.NullUUID
	if row.RecordedBy != nil {
		recordedBy = uuid.NullUUID{UUID: uuid.UUID(*row.RecordedBy), Valid: true}
	}
	stored := *row
	err := postgres.ExecerFrom(ctx, s.db).QueryRowContext(ctx, `
		INSERT INTO operation_attendance (id, operation_id, soldier_id, status, role_held, notes, recorded_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (soldier_id, operation_id) DO UPDATE SET
			status = EXCLUDED.status,
			role_held = EXCLUDED.role_held,
			notes = EXCLUDED.notes,
			recorded_by = EXCLUDED.recorded_by,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`, row.ID, uuid.UUID(row.OperationID), uuid.UUID(row.SoldierID), string(row.Status),
		row.RoleHeld, row.Notes, recordedBy, row.CreatedAt, row.UpdatedAt,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("upsert attendance: %w", err)
	}
	return &stored, nil
}

const attendanceColumns = `id, operation_id, soldier_id, status, role_held, notes, recorded_by, created_at, updated_at`

func (s *PostgresStore) ListByOperation(ctx context.Context, operationID domain.OperationID) ([]*models.Attendance, error) {
	rows, err := postgres.ExecerFrom(ctx, s.db).QueryContext(ctx, `
		SELECT `+attendanceColumns+`
		FROM operation_attendance
		WHERE operation_id = $1
		ORDER BY created_at ASC
	`, uuid.UUID(operationID))
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return scanAttendance(rows)
}

func (s *PostgresStore) ListByOperations(ctx context.Context, ids []domain.OperationID) ([]*models.Attendance, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+attendanceColumns+`
		FROM operation_attendance
		WHERE operation_id = ANY($1::uuid[])
	`, pq.Array(raw))
	if err != nil {
		return nil, fmt.Errorf("list attendance for operations: %w", err)
	}
	return scanAttendance(rows)
}

func (s *PostgresStore) SoldierPresence(ctx context.Context, soldierID domain.SoldierID) (int, *time.Time, error) {
	var (
		count int
		last  sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), MAX(created_at)
		FROM operation_attendance
		WHERE soldier_id = $1 AND status = 'present'
	`, uuid.UUID(soldierID)).Scan(&count, &last)
	if err != nil {
		return 0, nil, fmt.Errorf("load soldier presence: %w", err)
	}
	if !last.Valid {
		return count, nil, nil
	}
	return count, &last.Time, nil
}

func (s *PostgresStore) CombatRecord(ctx context.Context, soldierID domain.SoldierID) ([]*models.CombatEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT o.id, o.title, o.operation_date, o.operation_type, o.status, o.description, o.created_by, o.created_at,
		       a.status, a.role_held, a.notes, a.created_at
		FROM operation_attendance a
		JOIN operations o ON o.id = a.operation_id
		WHERE a.soldier_id = $1
		ORDER BY a.created_at DESC
	`, uuid.UUID(soldierID))
	if err != nil {
		return nil, fmt.Errorf("load combat record: %w", err)
	}
	defer rows.Close()

	var out []*models.CombatEntry
	for rows.Next() {
		var (
			entry          models.CombatEntry
			opID           uuid.UUID
			kind, opStatus string
			status         string
			createdBy      uuid.NullUUID
		)
		op := &entry.Operation
		if err := rows.Scan(&opID, &op.Title, &op.OperationDate, &kind, &opStatus, &op.Description, &createdBy, &op.CreatedAt,
			&status, &entry.RoleHeld, &entry.Notes, &entry.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan combat record: %w", err)
		}
		op.ID = domain.OperationID(opID)
		op.OperationType = models.OperationType(kind)
		op.Status = models.OperationStatus(opStatus)
		if createdBy.Valid {
			u := domain.UserID(createdBy.UUID)
			op.CreatedBy = &u
		}
		entry.Status = models.Status(status)
		out = append(out, &entry)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOperation(row rowScanner) (*models.Operation, error) {
	var (
		op           models.Operation
		id           uuid.UUID
		kind, status string
		createdBy    uuid.NullUUID
	)
	if err := row.Scan(&id, &op.Title, &op.OperationDate, &kind, &status, &op.Description, &createdBy, &op.CreatedAt); err != nil {
		return nil, err
	}
	op.ID = domain.OperationID(id)
	op.OperationType = models.OperationType(kind)
	op.Status = models.OperationStatus(status)
	if createdBy.Valid {
		u := domain.UserID(createdBy.UUID)
		op.CreatedBy = &u
	}
	return &op, nil
}

func scanAttendance(rows *sql.Rows) ([]*models.Attendance, error) {
	defer rows.Close()

	var out []*models.Attendance
	for rows.Next() {
		var (
			row             models.Attendance
			opID, soldierID uuid.UUID
			status          string
			recordedBy      uuid.NullUUID
		)
		if err := rows.Scan(&row.ID, &opID, &soldierID, &status, &row.RoleHeld, &row.Notes, &recordedBy, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		row.OperationID = domain.OperationID(opID)
		row.SoldierID = domain.SoldierID(soldierID)
		row.Status = models.Status(status)
		if recordedBy.Valid {
			u := domain.UserID(recordedBy.UUID)
			row.RecordedBy = &u
		}
		out = append(out, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendance: %w", err)
	}
	return out, nil
}
