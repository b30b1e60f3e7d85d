package derive

import (
	"sort"
	"time"

	"github.com/govkit/governance-service/internal/domain"
)

// TotalHours sums all logged hours.
func TotalHours(logs []domain.HoursLog) float64 {
	total := 0.0
	for _, l := range logs {
		total += l.Hours
	}
	return total
}

// HoursThisWeek sums logs dated within the current week (Monday start).
func HoursThisWeek(logs []domain.HoursLog, now time.Time) float64 {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday closes the week
	}
	year, month, day := now.Date()
	weekStart := time.Date(year, month, day, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 7)

	total := 0.0
	for _, l := range logs {
		d, ok := parseDate(l.Date, now.Location())
		if !ok {
			continue
		}
		if !d.Before(weekStart) && d.Before(weekEnd) {
			total += l.Hours
		}
	}
	return total
}

// StaffHours is one row of the per-staff hours summary.
type StaffHours struct {
	StaffID string  `json:"staffId"`
	Name    string  `json:"name"`
	Total   float64 `json:"total"`
}

// SummarizeByStaff totals hours per staff member, highest first. Staff with
// no logs still appear at zero.
func SummarizeByStaff(staff []domain.Staff, logs []domain.HoursLog) []StaffHours {
	index := make(map[string]int, len(staff))
	rows := make([]StaffHours, 0, len(staff))
	for _, s := range staff {
		index[s.ID] = len(rows)
		rows = append(rows, StaffHours{StaffID: s.ID, Name: s.Name})
	}
	for _, l := range logs {
		if i, ok := index[l.StaffID]; ok {
			rows[i].Total += l.Hours
		}
	}
	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].Total > rows[b].Total
	})
	return rows
}
