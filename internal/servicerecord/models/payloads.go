package models

// Payload shapes stored in Entry.Payload, one per ActionType.

type EnlistmentPayload struct {
	EnlistmentID    string `json:"enlistment_id"`
	DisplayName     string `json:"display_name"`
	PerformedByName string `json:"performed_by_name"`
}

type PromotionPayload struct {
	FromRankID      string `json:"from_rank_id"`
	FromRankName    string `json:"from_rank_name"`
	ToRankID        string `json:"to_rank_id"`
	ToRankName      string `json:"to_rank_name"`
	Reason          string `json:"reason"`
	PerformedByName string `json:"performed_by_name"`
}

type TransferPayload struct {
	FromUnitID      *string `json:"from_unit_id"`
	FromUnitName    *string `json:"from_unit_name"`
	ToUnitID        string  `json:"to_unit_id"`
	ToUnitName      string  `json:"to_unit_name"`
	EffectiveDate   string  `json:"effective_date"`
	Reason          string  `json:"reason"`
	PerformedByName string  `json:"performed_by_name"`
}

type StatusChangePayload struct {
	FromStatus      string `json:"from_status"`
	ToStatus        string `json:"to_status"`
	Reason          string `json:"reason"`
	PerformedByName string `json:"performed_by_name"`
}

type QualificationPayload struct {
	QualificationID   string `json:"qualification_id"`
	QualificationName string `json:"qualification_name"`
	AwardedDate       string `json:"awarded_date"`
	Notes             string `json:"notes,omitempty"`
	PerformedByName   string `json:"performed_by_name"`
}

type AwardPayload struct {
	AwardID         string `json:"award_id"`
	AwardName       string `json:"award_name"`
	AwardedDate     string `json:"awarded_date"`
	Citation        string `json:"citation"`
	PerformedByName string `json:"performed_by_name"`
}

type DisciplinePayload struct {
	ActionType      string `json:"action_type"`
	Reason          string `json:"reason"`
	PerformedByName string `json:"performed_by_name"`
}

type NotePayload struct {
	Note            string `json:"note"`
	PerformedByName string `json:"performed_by_name"`
}
