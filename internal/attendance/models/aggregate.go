package models

import (
	"math"
	"time"

	"roster/pkg/domain"
)

// Trend summarizes attendance at one operation.
type Trend struct {
	OperationID domain.OperationID
	Present     int
	Excused     int
	Absent      int
	Total       int
	Percentage  int
}

// SoldierSummary summarizes one soldier's attendance across completed operations.
type SoldierSummary struct {
	SoldierID         domain.SoldierID
	OperationCount    int
	TotalOperations   int
	AttendancePercent *int
	LastActiveDate    *time.Time
}

// PerOperationTrend counts rows by status. Percentage is present over total, or 0
// when nothing was recorded. Rows for other operations are ignored.
func PerOperationTrend(operationID domain.OperationID, rows []*Attendance) Trend {
	t := Trend{OperationID: operationID}
	for _, row := range rows {
		if row == nil || row.OperationID != operationID {
			continue
		}
		switch row.Status {
		case StatusPresent:
			t.Present++
		case StatusExcused:
			t.Excused++
		case StatusAbsent:
			t.Absent++
		default:
			continue
		}
		t.Total++
	}
	t.Percentage = percent(t.Present, t.Total)
	return t
}

// PerSoldierSummary builds a soldier's attendance summary. AttendancePercent is nil
// when there are no completed operations to measure against.
func PerSoldierSummary(soldierID domain.SoldierID, totalOperations, presentCount int, lastActive *time.Time) SoldierSummary {
	s := SoldierSummary{
		SoldierID:       soldierID,
		OperationCount:  presentCount,
		TotalOperations: totalOperations,
		LastActiveDate:  lastActive,
	}
	if totalOperations > 0 {
		p := percent(presentCount, totalOperations)
		s.AttendancePercent = &p
	}
	return s
}

func percent(n, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}
