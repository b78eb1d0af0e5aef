package handler

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/internal/soldier/models"
	dErrors "roster/pkg/domain-errors"
)

func TestTransferRequestValidate(t *testing.T) {
	unit := uuid.NewString()
	tests := []struct {
		name string
		req  TransferRequest
		code dErrors.Code
	}{
		{"missing unit", TransferRequest{EffectiveDate: "2025-01-01"}, dErrors.CodeInvalidInput},
		{"bad date", TransferRequest{UnitID: unit, EffectiveDate: "yesterday"}, dErrors.CodeValidation},
		{"missing date", TransferRequest{UnitID: unit}, dErrors.CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			assert.True(t, dErrors.HasCode(err, tt.code), "got %v", err)
		})
	}

	t.Run("valid", func(t *testing.T) {
		req := TransferRequest{UnitID: unit, EffectiveDate: " 2025-03-04 ", Reason: "  reorg  "}
		require.NoError(t, req.Validate())
		assert.Equal(t, 4, req.parsedEffectiveDate.Day())
		assert.Equal(t, "reorg", req.Reason)
	})
}

func TestStatusChangeRequestValidate(t *testing.T) {
	req := StatusChangeRequest{Status: "LOA"}
	require.NoError(t, req.Validate())
	assert.Equal(t, models.StatusLOA, req.parsedStatus)

	bad := StatusChangeRequest{Status: "vacation"}
	assert.True(t, dErrors.HasCode(bad.Validate(), dErrors.CodeValidation))
}

func TestDisciplineRequestValidate(t *testing.T) {
	missingReason := DisciplineRequest{ActionType: "verbal_warning"}
	assert.True(t, dErrors.HasCode(missingReason.Validate(), dErrors.CodeValidation))

	badType := DisciplineRequest{ActionType: "flogging", Reason: "no"}
	assert.True(t, dErrors.HasCode(badType.Validate(), dErrors.CodeValidation))

	ok := DisciplineRequest{ActionType: "Written_Warning", Reason: "late"}
	require.NoError(t, ok.Validate())
	assert.Equal(t, models.DisciplineWrittenWarning, ok.parsedType)
}

func TestQualificationRequestOptionalDate(t *testing.T) {
	req := QualificationRequest{QualificationID: uuid.NewString()}
	require.NoError(t, req.Validate())
	assert.True(t, req.parsedAwardedAt.IsZero())

	req.AwardedDate = "2025-13-01"
	assert.True(t, dErrors.HasCode(req.Validate(), dErrors.CodeValidation))
}

func TestReasonLengthCountsCharacters(t *testing.T) {
	accented := strings.Repeat("é", maxReasonLength)
	ok := DisciplineRequest{ActionType: "verbal_warning", Reason: accented}
	require.NoError(t, ok.Validate(), "1000 two-byte characters fit")

	long := DisciplineRequest{ActionType: "verbal_warning", Reason: accented + "é"}
	assert.True(t, dErrors.HasCode(long.Validate(), dErrors.CodeValidation))
}
