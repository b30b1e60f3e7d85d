package derive

import (
	"sort"
	"strings"
	"time"

	"github.com/govkit/governance-service/internal/domain"
)

// SortField names a sortable table column.
type SortField string

const (
	SortByTitle    SortField = "title"
	SortByStatus   SortField = "status"
	SortByPriority SortField = "priority"
	SortByProgress SortField = "progress"
	SortByDueDate  SortField = "dueDate"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

var priorityRank = map[domain.Priority]int{
	domain.PriorityLow:      0,
	domain.PriorityMedium:   1,
	domain.PriorityHigh:     2,
	domain.PriorityCritical: 3,
}

var statusRank = map[domain.DeliverableStatus]int{
	domain.StatusNotStarted: 0,
	domain.StatusInProgress: 1,
	domain.StatusAtRisk:     2,
	domain.StatusBlocked:    3,
	domain.StatusCompleted:  4,
}

// SortDeliverables returns a sorted copy; the input is left untouched. Dates
// compare as dates, priority and status by their enum order, and ties keep
// collection order.
func SortDeliverables(items []domain.Deliverable, field SortField, dir SortDirection) []domain.Deliverable {
	out := make([]domain.Deliverable, len(items))
	copy(out, items)

	less := lessFunc(field)
	sort.SliceStable(out, func(a, b int) bool {
		if dir == SortDesc {
			return less(out[b], out[a])
		}
		return less(out[a], out[b])
	})
	return out
}

func lessFunc(field SortField) func(a, b domain.Deliverable) bool {
	switch field {
	case SortByStatus:
		return func(a, b domain.Deliverable) bool { return statusRank[a.Status] < statusRank[b.Status] }
	case SortByPriority:
		return func(a, b domain.Deliverable) bool { return priorityRank[a.Priority] < priorityRank[b.Priority] }
	case SortByProgress:
		return func(a, b domain.Deliverable) bool { return a.Progress < b.Progress }
	case SortByTitle:
		return func(a, b domain.Deliverable) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	default: // due date
		return func(a, b domain.Deliverable) bool {
			da, _ := parseDate(a.DueDate, time.UTC)
			db, _ := parseDate(b.DueDate, time.UTC)
			return da.Before(db)
		}
	}
}
