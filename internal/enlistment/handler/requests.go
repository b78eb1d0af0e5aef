package handler

import (
	"strings"
	"unicode/utf8"

	"roster/internal/enlistment/models"
	"roster/pkg/domain"
	dErrors "roster/pkg/domain-errors"
)

// SubmitRequest is the public application form for POST /enlistments.
type SubmitRequest struct {
	DisplayName     string `json:"display_name"`
	DiscordUsername string `json:"discord_username"`
	Age             int    `json:"age"`
	Timezone        string `json:"timezone"`
	ArmaExperience  string `json:"arma_experience"`
	WhyJoin         string `json:"why_join"`
	ReferredBy      string `json:"referred_by"`
}

func (r *SubmitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.DisplayName = strings.TrimSpace(r.DisplayName)
	r.DiscordUsername = strings.TrimSpace(r.DiscordUsername)
	r.Timezone = strings.TrimSpace(r.Timezone)
	r.ArmaExperience = strings.TrimSpace(r.ArmaExperience)
	r.WhyJoin = strings.TrimSpace(r.WhyJoin)
	r.ReferredBy = strings.TrimSpace(r.ReferredBy)

	if err := lengthBetween("display_name", r.DisplayName, 2, 50); err != nil {
		return err
	}
	if err := lengthBetween("discord_username", r.DiscordUsername, 2, 50); err != nil {
		return err
	}
	if r.Age < 16 || r.Age > 99 {
		return dErrors.New(dErrors.CodeValidation, "age must be between 16 and 99")
	}
	if r.Timezone == "" {
		return dErrors.New(dErrors.CodeValidation, "timezone is required")
	}
	if err := lengthBetween("arma_experience", r.ArmaExperience, 10, 1000); err != nil {
		return err
	}
	if err := lengthBetween("why_join", r.WhyJoin, 10, 2000); err != nil {
		return err
	}
	if utf8.RuneCountInString(r.ReferredBy) > 100 {
		return dErrors.New(dErrors.CodeValidation, "referred_by must be at most 100 characters")
	}
	return nil
}

func (r *SubmitRequest) submission(userID *domain.UserID) models.Submission {
	return models.Submission{
		UserID:          userID,
		DisplayName:     r.DisplayName,
		DiscordUsername: r.DiscordUsername,
		Age:             r.Age,
		Timezone:        r.Timezone,
		ArmaExperience:  r.ArmaExperience,
		WhyJoin:         r.WhyJoin,
		ReferredBy:      r.ReferredBy,
	}
}

func lengthBetween(field, value string, lo, hi int) error {
	n := utf8.RuneCountInString(value)
	if n < lo || n > hi {
		return dErrors.New(dErrors.CodeValidation, field+" has an invalid length")
	}
	return nil
}

// AdvanceRequest is the body for POST /enlistments/{id}/advance.
type AdvanceRequest struct {
	TargetStatus string `json:"target_status"`

	parsedTarget models.Status
}

func (r *AdvanceRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if strings.TrimSpace(r.TargetStatus) == "" {
		return dErrors.New(dErrors.CodeValidation, "target_status is required")
	}
	target, err := models.ParseStatus(r.TargetStatus)
	if err != nil {
		return err
	}
	r.parsedTarget = target
	return nil
}

// AcceptRequest is the body for POST /enlistments/{id}/accept.
type AcceptRequest struct {
	RankID string  `json:"rank_id"`
	UnitID *string `json:"unit_id"`

	parsedRankID domain.RankID
	parsedUnitID *domain.UnitID
}

func (r *AcceptRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	rankID, err := domain.ParseRankID(r.RankID)
	if err != nil {
		return err
	}
	r.parsedRankID = rankID
	if r.UnitID != nil && strings.TrimSpace(*r.UnitID) != "" {
		unitID, err := domain.ParseUnitID(*r.UnitID)
		if err != nil {
			return err
		}
		r.parsedUnitID = &unitID
	}
	return nil
}
