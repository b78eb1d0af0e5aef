package models

import (
	"time"

	"github.com/google/uuid"

	"roster/pkg/domain"
)

// Rank is a grade in the hierarchy; higher SortOrder is more senior.
type Rank struct {
	ID           domain.RankID
	Name         string
	Abbreviation string
	SortOrder    int
}

// Unit is an organizational element, optionally nested under a parent.
type Unit struct {
	ID           domain.UnitID
	Name         string
	Abbreviation string
	ParentID     *domain.UnitID
}

type Qualification struct {
	ID           domain.QualificationID
	Name         string
	Abbreviation string
	Description  string
}

type Award struct {
	ID          domain.AwardID
	Name        string
	Description string
	Precedence  int
}

// SoldierQualification records that a soldier holds a qualification. A soldier holds
// each qualification at most once.
type SoldierQualification struct {
	ID              uuid.UUID
	SoldierID       domain.SoldierID
	QualificationID domain.QualificationID
	AwardedBy       *domain.UserID
	AwardedAt       time.Time
}

// SoldierAward records one presentation of an award. Awards may repeat.
type SoldierAward struct {
	ID        uuid.UUID
	SoldierID domain.SoldierID
	AwardID   domain.AwardID
	Citation  string
	AwardedBy *domain.UserID
	AwardedAt time.Time
}

// HeldQualification is a qualification joined with when it was granted.
type HeldQualification struct {
	Qualification Qualification
	AwardedAt     time.Time
}

// HeldAward is an award joined with its citation and date.
type HeldAward struct {
	Award     Award
	Citation  string
	AwardedAt time.Time
}
