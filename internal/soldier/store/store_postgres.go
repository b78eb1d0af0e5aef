package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"roster/internal/platform/postgres"
	"roster/internal/soldier/models"
	"roster/pkg/domain"
	"roster/pkg/platform/sentinel"
)

// PostgresStore persists soldiers, reference data and grants in PostgreSQL.
// Writes join the transaction carried on the context, if any.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed soldier store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const soldierColumns = `id, user_id, discord_id, display_name, callsign, mos, rank_id, unit_id, status, joined_at, updated_at, enlistment_id`

func (s *PostgresStore) Create(ctx context.Context, soldier *models.Soldier) error {
	_, err := postgres.ExecerFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO soldiers (`+soldierColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, uuid.UUID(soldier.ID), nullUser(soldier.UserID), nullString(soldier.DiscordID), soldier.DisplayName,
		soldier.Callsign, soldier.MOS, uuid.UUID(soldier.RankID), nullUnit(soldier.UnitID),
		string(soldier.Status), soldier.JoinedAt, soldier.UpdatedAt, nullEnlistment(soldier.EnlistmentID))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert soldier: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.SoldierID) (*models.Soldier, error) {
	row := postgres.ExecerFrom(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+soldierColumns+` FROM soldiers WHERE id = $1`, uuid.UUID(id))
	return scanSoldier(row)
}

func (s *PostgresStore) FindByUserID(ctx context.Context, userID domain.UserID) (*models.Soldier, error) {
	row := postgres.ExecerFrom(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+soldierColumns+` FROM soldiers WHERE user_id = $1`, uuid.UUID(userID))
	return scanSoldier(row)
}

// FindByEnlistment returns the soldier created from an enlistment.
func (s *PostgresStore) FindByEnlistment(ctx context.Context, enlistmentID domain.EnlistmentID) (*models.Soldier, error) {
	row := postgres.ExecerFrom(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+soldierColumns+` FROM soldiers WHERE enlistment_id = $1`, uuid.UUID(enlistmentID))
	return scanSoldier(row)
}

func (s *PostgresStore) UpdateRank(ctx context.Context, id domain.SoldierID, from, to domain.RankID, at time.Time) error {
	res, err := postgres.ExecerFrom(ctx, s.db).ExecContext(ctx, `
		UPDATE soldiers SET rank_id = $3, updated_at = $4
		WHERE id = $1 AND rank_id = $2
	`, uuid.UUID(id), uuid.UUID(from), uuid.UUID(to), at)
	if err != nil {
		return fmt.Errorf("update soldier rank: %w", err)
	}
	return s.checkUpdated(ctx, res, id)
}

func (s *PostgresStore) UpdateUnit(ctx context.Context, id domain.SoldierID, from *domain.UnitID, to domain.UnitID, at time.Time) error {
	res, err := postgres.ExecerFrom(ctx, s.db).ExecContext(ctx, `
		UPDATE soldiers SET unit_id = $3, updated_at = $4
		WHERE id = $1 AND unit_id IS NOT DISTINCT FROM $2
	`, uuid.UUID(id), nullUnit(from), uuid.UUID(to), at)
	if err != nil {
		return fmt.Errorf("update soldier unit: %w", err)
	}
	return s.checkUpdated(ctx, res, id)
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, id domain.SoldierID, from, to models.Status, at time.Time) error {
	res, err := postgres.ExecerFrom(ctx, s.db).ExecContext(ctx, `
		UPDATE soldiers SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2
	`, uuid.UUID(id), string(from), string(to), at)
	if err != nil {
		return fmt.Errorf("update soldier status: %w", err)
	}
	return s.checkUpdated(ctx, res, id)
}

// checkUpdated distinguishes a missing soldier from a lost compare-and-set.
func (s *PostgresStore) checkUpdated(ctx context.Context, res sql.Result, id domain.SoldierID) error {
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

func (s *PostgresStore) ListByStatus(ctx context.Context, status models.Status) ([]*models.Soldier, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.user_id, s.discord_id, s.display_name, s.callsign, s.mos, s.rank_id, s.unit_id, s.status, s.joined_at, s.updated_at, s.enlistment_id
		FROM soldiers s
		JOIN ranks r ON r.id = s.rank_id
		WHERE s.status = $1
		ORDER BY r.sort_order DESC, s.display_name ASC
	`, string(status))
	if err != nil {
		return nil, fmt.Errorf("list soldiers: %w", err)
	}
	defer rows.Close()

	var out []*models.Soldier
	for rows.Next() {
		soldier, err := scanSoldier(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, soldier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate soldiers: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) CountByStatus(ctx context.Context) (map[models.Status]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM soldiers GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count soldiers: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Status]int, len(models.Statuses))
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan soldier count: %w", err)
		}
		counts[models.Status(status)] = n
	}
	return counts, rows.Err()
}

func (s *PostgresStore) DisplayNames(ctx context.Context, ids []domain.SoldierID) (map[domain.SoldierID]string, error) {
	out := make(map[domain.SoldierID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, display_name FROM soldiers WHERE id = ANY($1::uuid[])`, pq.Array(raw))
	if err != nil {
		return nil, fmt.Errorf("load soldier names: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan soldier name: %w", err)
		}
		out[domain.SoldierID(id)] = name
	}
	return out, rows.Err()
}

// -----------------------------------------------------------------------------
// Reference data
// -----------------------------------------------------------------------------

func (s *PostgresStore) FindRank(ctx context.Context, id domain.RankID) (*models.Rank, error) {
	var rank models.Rank
	var raw uuid.UUID
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, abbreviation, sort_order FROM ranks WHERE id = $1`, uuid.UUID(id),
	).Scan(&raw, &rank.Name, &rank.Abbreviation, &rank.SortOrder)
	if err != nil {
		return nil, notFound(err, "find rank")
	}
	rank.ID = domain.RankID(raw)
	return &rank, nil
}

func (s *PostgresStore) FindUnit(ctx context.Context, id domain.UnitID) (*models.Unit, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, abbreviation, parent_unit_id FROM units WHERE id = $1`, uuid.UUID(id))
	unit, err := scanUnit(row)
	if err != nil {
		return nil, notFound(err, "find unit")
	}
	return unit, nil
}

func (s *PostgresStore) FindQualification(ctx context.Context, id domain.QualificationID) (*models.Qualification, error) {
	var q models.Qualification
	var raw uuid.UUID
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, abbreviation, description FROM qualifications WHERE id = $1`, uuid.UUID(id),
	).Scan(&raw, &q.Name, &q.Abbreviation, &q.Description)
	if err != nil {
		return nil, notFound(err, "find qualification")
	}
	q.ID = domain.QualificationID(raw)
	return &q, nil
}

func (s *PostgresStore) FindAward(ctx context.Context, id domain.AwardID) (*models.Award, error) {
	var a models.Award
	var raw uuid.UUID
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, precedence FROM awards WHERE id = $1`, uuid.UUID(id),
	).Scan(&raw, &a.Name, &a.Description, &a.Precedence)
	if err != nil {
		return nil, notFound(err, "find award")
	}
	a.ID = domain.AwardID(raw)
	return &a, nil
}

func (s *PostgresStore) ListUnits(ctx context.Context) ([]*models.Unit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, abbreviation, parent_unit_id FROM units ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var out []*models.Unit
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		out = append(out, unit)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListRanks(ctx context.Context) ([]*models.Rank, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, abbreviation, sort_order FROM ranks ORDER BY sort_order ASC`)
	if err != nil {
		return nil, fmt.Errorf("list ranks: %w", err)
	}
	defer rows.Close()
	var out []*models.Rank
	for rows.Next() {
		var rank models.Rank
		var raw uuid.UUID
		if err := rows.Scan(&raw, &rank.Name, &rank.Abbreviation, &rank.SortOrder); err != nil {
			return nil, fmt.Errorf("scan rank: %w", err)
		}
		rank.ID = domain.RankID(raw)
		out = append(out, &rank)
	}
	return out, rows.Err()
}

// -----------------------------------------------------------------------------
// Grants
// -----------------------------------------------------------------------------

func (s *PostgresStore) GrantQualification(ctx context.Context, grant *models.SoldierQualification) error {
	_, err := postgres.ExecerFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO soldier_qualifications (id, soldier_id, qualification_id, awarded_by, awarded_at)
		VALUES ($1, $2, $3, $4, $5)
	`, grant.ID, uuid.UUID(grant.SoldierID), uuid.UUID(grant.QualificationID), nullUser(grant.AwardedBy), grant.AwardedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("grant qualification: %w", err)
	}
	return nil
}

func (s *PostgresStore) GrantAward(ctx context.Context, grant *models.SoldierAward) error {
	_, err := postgres.ExecerFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO soldier_awards (id, soldier_id, award_id, citation, awarded_by, awarded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, grant.ID, uuid.UUID(grant.SoldierID), uuid.UUID(grant.AwardID), grant.Citation, nullUser(grant.AwardedBy), grant.AwardedAt)
	if err != nil {
		return fmt.Errorf("grant award: %w", err)
	}
	return nil
}

func (s *PostgresStore) RecordDiscipline(ctx context.Context, action *models.DisciplinaryAction) error {
	_, err := postgres.ExecerFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO disciplinary_actions (id, soldier_id, action_type, reason, issued_by, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, action.ID, uuid.UUID(action.SoldierID), string(action.ActionType), action.Reason, nullUser(action.IssuedBy), action.IssuedAt)
	if err != nil {
		return fmt.Errorf("record disciplinary action: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListQualifications(ctx context.Context, soldierID domain.SoldierID) ([]*models.HeldQualification, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT q.id, q.name, q.abbreviation, q.description, sq.awarded_at
		FROM soldier_qualifications sq
		JOIN qualifications q ON q.id = sq.qualification_id
		WHERE sq.soldier_id = $1
		ORDER BY sq.awarded_at ASC
	`, uuid.UUID(soldierID))
	if err != nil {
		return nil, fmt.Errorf("list qualifications: %w", err)
	}
	defer rows.Close()
	var out []*models.HeldQualification
	for rows.Next() {
		var held models.HeldQualification
		var raw uuid.UUID
		q := &held.Qualification
		if err := rows.Scan(&raw, &q.Name, &q.Abbreviation, &q.Description, &held.AwardedAt); err != nil {
			return nil, fmt.Errorf("scan qualification: %w", err)
		}
		q.ID = domain.QualificationID(raw)
		out = append(out, &held)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListAwards(ctx context.Context, soldierID domain.SoldierID) ([]*models.HeldAward, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.name, a.description, a.precedence, sa.citation, sa.awarded_at
		FROM soldier_awards sa
		JOIN awards a ON a.id = sa.award_id
		WHERE sa.soldier_id = $1
		ORDER BY sa.awarded_at ASC
	`, uuid.UUID(soldierID))
	if err != nil {
		return nil, fmt.Errorf("list awards: %w", err)
	}
	defer rows.Close()
	var out []*models.HeldAward
	for rows.Next() {
		var held models.HeldAward
		var raw uuid.UUID
		a := &held.Award
		if err := rows.Scan(&raw, &a.Name, &a.Description, &a.Precedence, &held.Citation, &held.AwardedAt); err != nil {
			return nil, fmt.Errorf("scan award: %w", err)
		}
		a.ID = domain.AwardID(raw)
		out = append(out, &held)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListDiscipline(ctx context.Context, soldierID domain.SoldierID) ([]*models.DisciplinaryAction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, soldier_id, action_type, reason, issued_by, issued_at
		FROM disciplinary_actions
		WHERE soldier_id = $1
		ORDER BY issued_at ASC
	`, uuid.UUID(soldierID))
	if err != nil {
		return nil, fmt.Errorf("list disciplinary actions: %w", err)
	}
	defer rows.Close()
	var out []*models.DisciplinaryAction
	for rows.Next() {
		var (
			action   models.DisciplinaryAction
			sid      uuid.UUID
			kind     string
			issuedBy uuid.NullUUID
		)
		if err := rows.Scan(&action.ID, &sid, &kind, &action.Reason, &issuedBy, &action.IssuedAt); err != nil {
			return nil, fmt.Errorf("scan disciplinary action: %w", err)
		}
		action.SoldierID = domain.SoldierID(sid)
		action.ActionType = models.DisciplineType(kind)
		if issuedBy.Valid {
			u := domain.UserID(issuedBy.UUID)
			action.IssuedBy = &u
		}
		out = append(out, &action)
	}
	return out, rows.Err()
}

// -----------------------------------------------------------------------------
// Scanning helpers
// -----------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSoldier(row rowScanner) (*models.Soldier, error) {
	var (
		soldier        models.Soldier
		id, rankID     uuid.UUID
		userID, unitID uuid.NullUUID
		enlistmentID   uuid.NullUUID
		discordID      sql.NullString
		status         string
	)
	err := row.Scan(&id, &userID, &discordID, &soldier.DisplayName, &soldier.Callsign, &soldier.MOS,
		&rankID, &unitID, &status, &soldier.JoinedAt, &soldier.UpdatedAt, &enlistmentID)
	if err != nil {
		return nil, notFound(err, "scan soldier")
	}
	soldier.ID = domain.SoldierID(id)
	soldier.RankID = domain.RankID(rankID)
	soldier.Status = models.Status(status)
	if userID.Valid {
		u := domain.UserID(userID.UUID)
		soldier.UserID = &u
	}
	if unitID.Valid {
		u := domain.UnitID(unitID.UUID)
		soldier.UnitID = &u
	}
	if discordID.Valid {
		d := discordID.String
		soldier.DiscordID = &d
	}
	if enlistmentID.Valid {
		e := domain.EnlistmentID(enlistmentID.UUID)
		soldier.EnlistmentID = &e
	}
	return &soldier, nil
}

func scanUnit(row rowScanner) (*models.Unit, error) {
	var (
		unit   models.Unit
		id     uuid.UUID
		parent uuid.NullUUID
	)
	if err := row.Scan(&id, &unit.Name, &unit.Abbreviation, &parent); err != nil {
		return nil, err
	}
	unit.ID = domain.UnitID(id)
	if parent.Valid {
		p := domain.UnitID(parent.UUID)
		unit.ParentID = &p
	}
	return &unit, nil
}

func notFound(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nullUser(id *domain.UserID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: uuid.UUID(*id), Valid: true}
}

func nullUnit(id *domain.UnitID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: uuid.UUID(*id), Valid: true}
}

func nullEnlistment(id *domain.EnlistmentID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: uuid.UUID(*id), Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
