package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
)

func row(op domain.OperationID, status Status) *Attendance {
	return &Attendance{ID: uuid.New(), OperationID: op, SoldierID: domain.SoldierID(uuid.New()), Status: status}
}

func TestPerOperationTrend(t *testing.T) {
	op := domain.OperationID(uuid.New())

	t.Run("no rows is all zeros", func(t *testing.T) {
		got := PerOperationTrend(op, nil)
		assert.Equal(t, Trend{OperationID: op}, got)
	})

	t.Run("counts by status and rounds percentage", func(t *testing.T) {
		rows := []*Attendance{
			row(op, StatusPresent),
			row(op, StatusPresent),
			row(op, StatusExcused),
		}
		got := PerOperationTrend(op, rows)
		assert.Equal(t, 2, got.Present)
		assert.Equal(t, 1, got.Excused)
		assert.Equal(t, 0, got.Absent)
		assert.Equal(t, 3, got.Total)
		assert.Equal(t, 67, got.Percentage)
	})

	t.Run("rows for other operations are ignored", func(t *testing.T) {
		other := domain.OperationID(uuid.New())
		got := PerOperationTrend(op, []*Attendance{row(other, StatusPresent), row(op, StatusAbsent)})
		assert.Equal(t, 1, got.Total)
		assert.Equal(t, 0, got.Percentage)
	})
}

func TestPerSoldierSummary(t *testing.T) {
	soldier := domain.SoldierID(uuid.New())

	t.Run("no completed operations leaves percent nil", func(t *testing.T) {
		got := PerSoldierSummary(soldier, 0, 0, nil)
		assert.Nil(t, got.AttendancePercent)
		assert.Equal(t, 0, got.TotalOperations)
	})

	t.Run("percent rounds to nearest", func(t *testing.T) {
		last := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		got := PerSoldierSummary(soldier, 3, 1, &last)
		require.NotNil(t, got.AttendancePercent)
		assert.Equal(t, 33, *got.AttendancePercent)
		assert.Equal(t, 1, got.OperationCount)
		assert.Equal(t, &last, got.LastActiveDate)
	})
}

func TestParsing(t *testing.T) {
	t.Run("operation status defaults to completed", func(t *testing.T) {
		st, err := ParseOperationStatus("")
		require.NoError(t, err)
		assert.Equal(t, OperationCompleted, st)
	})

	t.Run("operation type defaults to operation", func(t *testing.T) {
		kind, err := ParseOperationType("")
		require.NoError(t, err)
		assert.Equal(t, OperationTypeOperation, kind)
	})

	t.Run("attendance status is closed", func(t *testing.T) {
		_, err := ParseStatus("late")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		st, err := ParseStatus(" Present ")
		require.NoError(t, err)
		assert.Equal(t, StatusPresent, st)
	})

	t.Run("operation requires title and date", func(t *testing.T) {
		now := time.Now()
		_, err := NewOperation(" ", now, OperationTypeFTX, OperationCompleted, "", nil, now)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		_, err = NewOperation("Op Anvil", time.Time{}, OperationTypeFTX, OperationCompleted, "", nil, now)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}
