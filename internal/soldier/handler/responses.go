package handler

import (
	"encoding/json"
	"time"

	attmodels "roster/internal/attendance/models"
	srmodels "roster/internal/servicerecord/models"
	"roster/internal/soldier/models"
	"roster/internal/soldier/service"
	"roster/pkg/domain"
)

type RankResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	SortOrder    int    `json:"sort_order"`
}

type UnitResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	ParentID     *string `json:"parent_id,omitempty"`
}

type SoldierResponse struct {
	ID          string        `json:"id"`
	UserID      *string       `json:"user_id,omitempty"`
	DisplayName string        `json:"display_name"`
	Callsign    string        `json:"callsign,omitempty"`
	MOS         string        `json:"mos,omitempty"`
	RankID      string        `json:"rank_id"`
	Rank        *RankResponse `json:"rank,omitempty"`
	UnitID      *string       `json:"unit_id"`
	Unit        *UnitResponse `json:"unit,omitempty"`
	Status      string        `json:"status"`
	StatusLabel string        `json:"status_label"`
	JoinedAt    time.Time     `json:"joined_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type EntryResponse struct {
	ID          string          `json:"id"`
	ActionType  string          `json:"action_type"`
	Payload     json.RawMessage `json:"payload"`
	PerformedBy *string         `json:"performed_by"`
	Visibility  string          `json:"visibility"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

type QualificationResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	AwardedAt    time.Time `json:"awarded_at"`
}

type AwardResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Citation  string    `json:"citation"`
	AwardedAt time.Time `json:"awarded_at"`
}

type DisciplineResponse struct {
	ID         string    `json:"id"`
	ActionType string    `json:"action_type"`
	Reason     string    `json:"reason"`
	IssuedBy   *string   `json:"issued_by"`
	IssuedAt   time.Time `json:"issued_at"`
}

type AttendanceSummaryResponse struct {
	OperationCount    int        `json:"operation_count"`
	TotalOperations   int        `json:"total_operations"`
	AttendancePercent *int       `json:"attendance_percent"`
	LastActiveDate    *time.Time `json:"last_active_date"`
}

type CombatEntryResponse struct {
	OperationID   string    `json:"operation_id"`
	Title         string    `json:"title"`
	OperationDate time.Time `json:"operation_date"`
	OperationType string    `json:"operation_type"`
	Status        string    `json:"status"`
	RoleHeld      string    `json:"role_held,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

type ProfileResponse struct {
	Soldier           SoldierResponse            `json:"soldier"`
	ServiceHistory    []EntryResponse            `json:"service_history"`
	AssignmentHistory []EntryResponse            `json:"assignment_history"`
	Qualifications    []QualificationResponse    `json:"qualifications"`
	Awards            []AwardResponse            `json:"awards"`
	Discipline        []DisciplineResponse       `json:"discipline,omitempty"`
	Attendance        *AttendanceSummaryResponse `json:"attendance"`
	CombatRecord      []CombatEntryResponse      `json:"combat_record"`
}

type RosterResponse struct {
	Soldiers []SoldierResponse `json:"soldiers"`
	Units    []UnitResponse    `json:"units"`
	Total    int               `json:"total"`
}

type GrantResponse struct {
	ID        string    `json:"id"`
	SoldierID string    `json:"soldier_id"`
	AwardedAt time.Time `json:"awarded_at"`
}

type NoteResponse struct {
	RecordID string `json:"record_id"`
}

func toSoldierResponse(s *models.Soldier, rank *models.Rank, unit *models.Unit) SoldierResponse {
	resp := SoldierResponse{
		ID:          s.ID.String(),
		UserID:      userString(s.UserID),
		DisplayName: s.DisplayName,
		Callsign:    s.Callsign,
		MOS:         s.MOS,
		RankID:      s.RankID.String(),
		Status:      string(s.Status),
		StatusLabel: s.Status.Label(),
		JoinedAt:    s.JoinedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.UnitID != nil {
		id := s.UnitID.String()
		resp.UnitID = &id
	}
	if rank != nil {
		r := toRankResponse(rank)
		resp.Rank = &r
	}
	if unit != nil {
		u := toUnitResponse(unit)
		resp.Unit = &u
	}
	return resp
}

func toRankResponse(r *models.Rank) RankResponse {
	return RankResponse{ID: r.ID.String(), Name: r.Name, Abbreviation: r.Abbreviation, SortOrder: r.SortOrder}
}

func toUnitResponse(u *models.Unit) UnitResponse {
	resp := UnitResponse{ID: u.ID.String(), Name: u.Name, Abbreviation: u.Abbreviation}
	if u.ParentID != nil {
		p := u.ParentID.String()
		resp.ParentID = &p
	}
	return resp
}

func toEntryResponses(entries []*srmodels.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryResponse{
			ID:          e.ID.String(),
			ActionType:  string(e.ActionType),
			Payload:     e.Payload,
			PerformedBy: userString(e.PerformedBy),
			Visibility:  string(e.Visibility),
			OccurredAt:  e.OccurredAt,
		})
	}
	return out
}

func toProfileResponse(p *service.Profile) ProfileResponse {
	resp := ProfileResponse{
		Soldier:           toSoldierResponse(p.Soldier, p.Rank, p.Unit),
		ServiceHistory:    toEntryResponses(p.History),
		AssignmentHistory: toEntryResponses(p.Assignments),
		Qualifications:    make([]QualificationResponse, 0, len(p.Qualifications)),
		Awards:            make([]AwardResponse, 0, len(p.Awards)),
		CombatRecord:      make([]CombatEntryResponse, 0, len(p.CombatRecord)),
	}
	for _, q := range p.Qualifications {
		resp.Qualifications = append(resp.Qualifications, QualificationResponse{
			ID:           q.Qualification.ID.String(),
			Name:         q.Qualification.Name,
			Abbreviation: q.Qualification.Abbreviation,
			AwardedAt:    q.AwardedAt,
		})
	}
	for _, a := range p.Awards {
		resp.Awards = append(resp.Awards, AwardResponse{
			ID:        a.Award.ID.String(),
			Name:      a.Award.Name,
			Citation:  a.Citation,
			AwardedAt: a.AwardedAt,
		})
	}
	for _, d := range p.Discipline {
		resp.Discipline = append(resp.Discipline, DisciplineResponse{
			ID:         d.ID.String(),
			ActionType: string(d.ActionType),
			Reason:     d.Reason,
			IssuedBy:   userString(d.IssuedBy),
			IssuedAt:   d.IssuedAt,
		})
	}
	if p.Attendance != nil {
		resp.Attendance = toAttendanceSummary(*p.Attendance)
	}
	for _, c := range p.CombatRecord {
		resp.CombatRecord = append(resp.CombatRecord, CombatEntryResponse{
			OperationID:   c.Operation.ID.String(),
			Title:         c.Operation.Title,
			OperationDate: c.Operation.OperationDate,
			OperationType: string(c.Operation.OperationType),
			Status:        string(c.Status),
			RoleHeld:      c.RoleHeld,
			Notes:         c.Notes,
		})
	}
	return resp
}

func toAttendanceSummary(s attmodels.SoldierSummary) *AttendanceSummaryResponse {
	return &AttendanceSummaryResponse{
		OperationCount:    s.OperationCount,
		TotalOperations:   s.TotalOperations,
		AttendancePercent: s.AttendancePercent,
		LastActiveDate:    s.LastActiveDate,
	}
}

func toRosterResponse(r *service.Roster) RosterResponse {
	units := make(map[domain.UnitID]*models.Unit, len(r.Units))
	resp := RosterResponse{
		Soldiers: make([]SoldierResponse, 0, len(r.Soldiers)),
		Units:    make([]UnitResponse, 0, len(r.Units)),
		Total:    len(r.Soldiers),
	}
	for _, u := range r.Units {
		units[u.ID] = u
		resp.Units = append(resp.Units, toUnitResponse(u))
	}
	for _, s := range r.Soldiers {
		var unit *models.Unit
		if s.UnitID != nil {
			unit = units[*s.UnitID]
		}
		resp.Soldiers = append(resp.Soldiers, toSoldierResponse(s, r.Ranks[s.RankID], unit))
	}
	return resp
}

// OrbatResponse is the public order of battle. It carries names and ranks only.
type OrbatResponse struct {
	Units []OrbatNodeResponse `json:"units"`
}

type OrbatNodeResponse struct {
	Unit     UnitResponse           `json:"unit"`
	Soldiers []OrbatSoldierResponse `json:"soldiers"`
	Children []OrbatNodeResponse    `json:"children"`
}

type OrbatSoldierResponse struct {
	DisplayName      string `json:"display_name"`
	Callsign         string `json:"callsign,omitempty"`
	RankName         string `json:"rank_name,omitempty"`
	RankAbbreviation string `json:"rank_abbreviation,omitempty"`
}

func toOrbatResponse(o *service.Orbat) OrbatResponse {
	return OrbatResponse{Units: toOrbatNodes(o.Units, o.Ranks)}
}

func toOrbatNodes(nodes []*models.OrbatNode, ranks map[domain.RankID]*models.Rank) []OrbatNodeResponse {
	out := make([]OrbatNodeResponse, 0, len(nodes))
	for _, n := range nodes {
		node := OrbatNodeResponse{
			Unit:     toUnitResponse(n.Unit),
			Soldiers: make([]OrbatSoldierResponse, 0, len(n.Soldiers)),
			Children: toOrbatNodes(n.Children, ranks),
		}
		for _, s := range n.Soldiers {
			soldier := OrbatSoldierResponse{DisplayName: s.DisplayName, Callsign: s.Callsign}
			if rank := ranks[s.RankID]; rank != nil {
				soldier.RankName = rank.Name
				soldier.RankAbbreviation = rank.Abbreviation
			}
			node.Soldiers = append(node.Soldiers, soldier)
		}
		out = append(out, node)
	}
	return out
}

func userString(id *domain.UserID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
