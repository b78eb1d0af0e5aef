package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
)

// DisciplineType is the severity of a disciplinary action.
type DisciplineType string

const (
	DisciplineVerbalWarning  DisciplineType = "verbal_warning"
	DisciplineWrittenWarning DisciplineType = "written_warning"
	DisciplineDemotion       DisciplineType = "demotion"
	DisciplineSuspension     DisciplineType = "suspension"
	DisciplineRemoval        DisciplineType = "removal"
)

func ParseDisciplineType(s string) (DisciplineType, error) {
	t := DisciplineType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case DisciplineVerbalWarning, DisciplineWrittenWarning, DisciplineDemotion, DisciplineSuspension, DisciplineRemoval:
		return t, nil
	}
	return "", dErrors.New(dErrors.CodeValidation, "invalid disciplinary action type: "+s)
}

// DisciplinaryAction is a leadership-only record against a soldier.
type DisciplinaryAction struct {
	ID         uuid.UUID
	SoldierID  domain.SoldierID
	ActionType DisciplineType
	Reason     string
	IssuedBy   *domain.UserID
	IssuedAt   time.Time
}
