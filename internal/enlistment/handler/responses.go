package handler

import (
	"time"

	"roster/internal/enlistment/models"
)

type TransitionOption struct {
	Status string `json:"status"`
	Label  string `json:"label"`
}

type EnlistmentResponse struct {
	ID              string             `json:"id"`
	DisplayName     string             `json:"display_name"`
	DiscordUsername string             `json:"discord_username"`
	Age             int                `json:"age"`
	Timezone        string             `json:"timezone"`
	ArmaExperience  string             `json:"arma_experience"`
	WhyJoin         string             `json:"why_join"`
	ReferredBy      string             `json:"referred_by,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	Status          string             `json:"status"`
	StatusLabel     string             `json:"status_label"`
	NextStatuses    []TransitionOption `json:"next_statuses"`
	SubmittedAt     time.Time          `json:"submitted_at"`
	ReviewedAt      *time.Time         `json:"reviewed_at"`
	ReviewedBy      *string            `json:"reviewed_by"`
	SoldierID       *string            `json:"soldier_id"`
}

// SubmitResponse is returned to the public applicant; it omits review details.
type SubmitResponse struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ListResponse struct {
	Enlistments []EnlistmentResponse `json:"enlistments"`
	Counts      map[string]int       `json:"counts"`
}

type AcceptResponse struct {
	Enlistment EnlistmentResponse `json:"enlistment"`
	SoldierID  string             `json:"soldier_id"`
	Converted  bool               `json:"converted"`
}

func toEnlistmentResponse(e *models.Enlistment) EnlistmentResponse {
	next := make([]TransitionOption, 0, 2)
	for _, target := range e.Status.AllowedTargets() {
		next = append(next, TransitionOption{Status: string(target), Label: target.Label()})
	}
	var reviewer, soldier *string
	if e.ReviewedBy != nil {
		s := e.ReviewedBy.String()
		reviewer = &s
	}
	if e.SoldierID != nil {
		s := e.SoldierID.String()
		soldier = &s
	}
	return EnlistmentResponse{
		ID:              e.ID.String(),
		DisplayName:     e.DisplayName,
		DiscordUsername: e.DiscordUsername,
		Age:             e.Age,
		Timezone:        e.Timezone,
		ArmaExperience:  e.ArmaExperience,
		WhyJoin:         e.WhyJoin,
		ReferredBy:      e.ReferredBy,
		Notes:           e.Notes,
		Status:          string(e.Status),
		StatusLabel:     e.Status.Label(),
		NextStatuses:    next,
		SubmittedAt:     e.SubmittedAt,
		ReviewedAt:      e.ReviewedAt,
		ReviewedBy:      reviewer,
		SoldierID:       soldier,
	}
}

func toCounts(counts map[models.Status]int) map[string]int {
	out := make(map[string]int, len(models.Statuses))
	for _, st := range models.Statuses {
		out[string(st)] = counts[st]
	}
	return out
}
