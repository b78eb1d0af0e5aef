package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "roster/pkg/domain-errors"
)

// Typed identifiers keep ids of different aggregates from being mixed up at
// compile time. All are UUIDs; the zero value is the nil UUID.

func parseUUID(s, kind string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" id is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind+" id")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" id cannot be nil")
	}
	return u, nil
}

func unmarshalUUID(text []byte) (uuid.UUID, error) {
	if len(text) == 0 {
		return uuid.Nil, nil
	}
	return uuid.ParseBytes(text)
}

// UserID identifies a user.
type UserID uuid.UUID

// ParseUserID parses external input into a UserID, rejecting empty and nil values.
func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s, "user")
	return UserID(u), err
}

func (i UserID) String() string { return uuid.UUID(i).String() }

func (i UserID) IsNil() bool { return uuid.UUID(i) == uuid.Nil }

func (i UserID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *UserID) UnmarshalText(text []byte) error {
	u, err := unmarshalUUID(text)
	if err != nil {
		return err
	}
	*i = UserID(u)
	return nil
}

// EnlistmentID identifies an enlistment.
type EnlistmentID uuid.UUID

// ParseEnlistmentID parses external input into an EnlistmentID, rejecting empty and nil values.
func ParseEnlistmentID(s string) (EnlistmentID, error) {
	u, err := parseUUID(s, "enlistment")
	return EnlistmentID(u), err
}

func (i EnlistmentID) String() string { return uuid.UUID(i).String() }

func (i EnlistmentID) IsNil() bool { return uuid.UUID(i) == uuid.Nil }

func (i EnlistmentID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *EnlistmentID) UnmarshalText(text []byte) error {
	u, err := unmarshalUUID(text)
	if err != nil {
		return err
	}
	*i = EnlistmentID(u)
	return nil
}

// SoldierID identifies a soldier.
type SoldierID uuid.UUID

// ParseSoldierID parses external input into a SoldierID, rejecting empty and nil values.
func ParseSoldierID(s string) (SoldierID, error) {
	u, err := parseUUID(s, "soldier")
	return SoldierID(u), err
}

func (i SoldierID) String() string { return uuid.UUID(i).String() }

func (i SoldierID) IsNil() bool { return uuid.UUID(i) == uuid.Nil }

func (i SoldierID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *SoldierID) UnmarshalText(text []byte) error {
	u, err := unmarshalUUID(text)
	if err != nil {
		return err
	}
	*i = SoldierID(u)
	return nil
}

// RankID identifies a rank.
type RankID uuid.UUID

// ParseRankID parses external input into a RankID, rejecting empty and nil values.
func ParseRankID(s string) (RankID, error) {
	u, err := parseUUID(s, "rank")
	return RankID(u), err
}

func (i RankID) String() string { return uuid.UUID(i).String() }

func (i RankID) IsNil() bool { return uuid.UUID(i) == uuid.Nil }

func (i RankID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *RankID) UnmarshalText(text []byte) error {
	u, err := unmarshalUUID(text)
	if err != nil {
		return err
	}
	*i = RankID(u)
	return nil
}

// UnitID identifies a unit.
type UnitID uuid.UUID

// ParseUnitID parses external input into a UnitID, rejecting empty and nil values.
func ParseUnitID(s string) (UnitID, error) {
	u, err := parseUUID(s, "unit")
	return UnitID(u), err
}

func (i UnitID) String() string { return uuid.UUID(i).String() }

func (i UnitID) IsNil() bool { return uuid.UUID(i) == uuid.Nil }

func (i UnitID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *UnitID) UnmarshalText(text []byte) error {
	u, err := unmarshalUUID(text)
	if err != nil {
		return err
	}
	*i = UnitID(u)
	return nil
}

// RecordID identifies a service record.
type RecordID uuid.UUID

// ParseRecordID parses external input into a RecordID, rejecting empty and nil values.
func ParseRecordID(s string) (RecordID, error) {
	u, err := parseUUID(s, "service record")
	return RecordID(u), err
}

func (i RecordID) String() string { return uuid.UUID(i).String() }

func (i RecordID) IsNil() bool { return uuid.UUID(i) == uuid.Nil }

func (i RecordID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *RecordID) UnmarshalText(text []byte) error {
	u, err := unmarshalUUID(text)
	if err != nil {
		return err
	}
	*i = RecordID(u)
	return nil
}

// OperationID identifies an operation.
type OperationID uuid.UUID

// ParseOperationID parses external input into an OperationID, rejecting empty and nil values.
func ParseOperationID(s string) (OperationID, error) {
	u, err := parseUUID(s, "operation")
	return OperationID(u), err
}

func (i OperationID) String() string { return uuid.UUID(i).String() }

func (i OperationID) IsNil() bool { return uuid.UUID(i) == uuid.Nil }

func (i OperationID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *OperationID) UnmarshalText(text []byte) error {
	u, err := unmarshalUUID(text)
	if err != nil {
		return err
	}
	*i = OperationID(u)
	return nil
}

// QualificationID identifies a qualification.
type QualificationID uuid.UUID

// ParseQualificationID parses external input into a QualificationID, rejecting empty and nil values.
func ParseQualificationID(s string) (QualificationID, error) {
	u, err := parseUUID(s, "qualification")
	return QualificationID(u), err
}

func (i QualificationID) String() string { return uuid.UUID(i).String() }

func (i QualificationID) IsNil() bool { return uuid.UUID(i) == uuid.Nil }

func (i QualificationID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *QualificationID) UnmarshalText(text []byte) error {
	u, err := unmarshalUUID(text)
	if err != nil {
		return err
	}
	*i = QualificationID(u)
	return nil
}

// AwardID identifies an award.
type AwardID uuid.UUID

// ParseAwardID parses external input into an AwardID, rejecting empty and nil values.
func ParseAwardID(s string) (AwardID, error) {
	u, err := parseUUID(s, "award")
	return AwardID(u), err
}

func (i AwardID) String() string { return uuid.UUID(i).String() }

func (i AwardID) IsNil() bool { return uuid.UUID(i) == uuid.Nil }

func (i AwardID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *AwardID) UnmarshalText(text []byte) error {
	u, err := unmarshalUUID(text)
	if err != nil {
		return err
	}
	*i = AwardID(u)
	return nil
}
