package handler

import (
	"time"

	"roster/internal/attendance/models"
	"roster/internal/attendance/service"
	"roster/pkg/domain"
)

type OperationResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	OperationDate time.Time `json:"operation_date"`
	OperationType string    `json:"operation_type"`
	Status        string    `json:"status"`
	Description   string    `json:"description,omitempty"`
	CreatedBy     *string   `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

type AttendanceResponse struct {
	ID          string    `json:"id"`
	SoldierID   string    `json:"soldier_id"`
	SoldierName string    `json:"soldier_name,omitempty"`
	Status      string    `json:"status"`
	RoleHeld    string    `json:"role_held,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	RecordedBy  *string   `json:"recorded_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TrendResponse struct {
	OperationID string `json:"operation_id"`
	Present     int    `json:"present"`
	Excused     int    `json:"excused"`
	Absent      int    `json:"absent"`
	Total       int    `json:"total"`
	Percentage  int    `json:"percentage"`
}

type OperationDetailResponse struct {
	Operation  OperationResponse    `json:"operation"`
	Attendance []AttendanceResponse `json:"attendance"`
	Trend      TrendResponse        `json:"trend"`
}

type RecordAttendanceResponse struct {
	OperationID string               `json:"operation_id"`
	Records     []AttendanceResponse `json:"records"`
}

func userString(id *domain.UserID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func toOperationResponse(op *models.Operation) OperationResponse {
	return OperationResponse{
		ID:            op.ID.String(),
		Title:         op.Title,
		OperationDate: op.OperationDate,
		OperationType: string(op.OperationType),
		Status:        string(op.Status),
		Description:   op.Description,
		CreatedBy:     userString(op.CreatedBy),
		CreatedAt:     op.CreatedAt,
	}
}

func toAttendanceResponse(row *models.Attendance, name string) AttendanceResponse {
	return AttendanceResponse{
		ID:          row.ID.String(),
		SoldierID:   row.SoldierID.String(),
		SoldierName: name,
		Status:      string(row.Status),
		RoleHeld:    row.RoleHeld,
		Notes:       row.Notes,
		RecordedBy:  userString(row.RecordedBy),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toTrendResponse(t models.Trend) TrendResponse {
	return TrendResponse{
		OperationID: t.OperationID.String(),
		Present:     t.Present,
		Excused:     t.Excused,
		Absent:      t.Absent,
		Total:       t.Total,
		Percentage:  t.Percentage,
	}
}

func toOperationDetailResponse(d *service.OperationDetail) OperationDetailResponse {
	rows := make([]AttendanceResponse, len(d.Attendance))
	for i, row := range d.Attendance {
		rows[i] = toAttendanceResponse(row.Attendance, row.SoldierName)
	}
	return OperationDetailResponse{
		Operation:  toOperationResponse(d.Operation),
		Attendance: rows,
		Trend:      toTrendResponse(d.Trend),
	}
}
