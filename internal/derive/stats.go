package derive

import (
	"math"
	"sort"
	"time"

	"github.com/govkit/governance-service/internal/domain"
)

// DashboardStats summarizes a deliverable set for the landing view.
type DashboardStats struct {
	TotalDeliverables int `json:"totalDeliverables"`
	Completed         int `json:"completed"`
	InProgress        int `json:"inProgress"`
	AtRisk            int `json:"atRisk"`
	Blocked           int `json:"blocked"`
	NotStarted        int `json:"notStarted"`
	CompletionRate    int `json:"completionRate"`
	AvgProgress       int `json:"avgProgress"`
}

// Dashboard computes the stat card values over the given deliverables.
// Completion rate and average progress round to whole percent.
func Dashboard(deliverables []domain.Deliverable) DashboardStats {
	stats := DashboardStats{TotalDeliverables: len(deliverables)}
	progressSum := 0
	for _, d := range deliverables {
		progressSum += d.Progress
		switch d.Status {
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusInProgress:
			stats.InProgress++
		case domain.StatusAtRisk:
			stats.AtRisk++
		case domain.StatusBlocked:
			stats.Blocked++
		case domain.StatusNotStarted:
			stats.NotStarted++
		}
	}
	if stats.TotalDeliverables > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Completed) / float64(stats.TotalDeliverables) * 100))
		stats.AvgProgress = int(math.Round(float64(progressSum) / float64(stats.TotalDeliverables)))
	}
	return stats
}

// FilterByOwner keeps the deliverables owned by one staff member.
func FilterByOwner(deliverables []domain.Deliverable, ownerID string) []domain.Deliverable {
	out := make([]domain.Deliverable, 0, len(deliverables))
	for _, d := range deliverables {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out
}

// StaleDeliverables returns non-completed deliverables whose last update is
// older than the threshold.
func StaleDeliverables(deliverables []domain.Deliverable, now time.Time, threshold time.Duration) []domain.Deliverable {
	cutoff := now.Add(-threshold)
	out := make([]domain.Deliverable, 0)
	for _, d := range deliverables {
		if d.Status == domain.StatusCompleted {
			continue
		}
		if d.UpdatedAt.Before(cutoff) {
			out = append(out, d)
		}
	}
	return out
}

// UserActivity is one row of the per-user activity ranking.
type UserActivity struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Actions    int        `json:"actions"`
	LastActive *time.Time `json:"lastActive,omitempty"`
}

// RankUserActivity counts audit actions per staff member, stamping the most
// recent action time, and orders rows by action count descending. Every staff
// member appears, including those with no recorded activity.
func RankUserActivity(staff []domain.Staff, entries []domain.AuditEntry) []UserActivity {
	index := make(map[string]int, len(staff))
	rows := make([]UserActivity, 0, len(staff))
	for _, s := range staff {
		index[s.ID] = len(rows)
		rows = append(rows, UserActivity{ID: s.ID, Name: s.Name})
	}

	for _, e := range entries {
		i, ok := index[e.UserID]
		if !ok {
			continue
		}
		rows[i].Actions++
		ts := e.Timestamp
		rows[i].LastActive = &ts
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].Actions > rows[b].Actions
	})
	return rows
}
