package derive

import (
	"github.com/govkit/governance-service/internal/domain"
)

// KanbanColumn is one board column with its cards in collection order.
type KanbanColumn struct {
	Key          string               `json:"key"`
	Label        string               `json:"label"`
	Deliverables []domain.Deliverable `json:"deliverables"`
}

// GroupByStatus buckets deliverables into the fixed board column order. Every
// column appears even when empty.
func GroupByStatus(deliverables []domain.Deliverable) []KanbanColumn {
	out := make([]KanbanColumn, 0, len(domain.BoardStatuses))
	for _, status := range domain.BoardStatuses {
		col := KanbanColumn{Key: string(status), Label: string(status), Deliverables: []domain.Deliverable{}}
		for _, d := range deliverables {
			if d.Status == status {
				col.Deliverables = append(col.Deliverables, d)
			}
		}
		out = append(out, col)
	}
	return out
}

// GroupByWorkstream buckets deliverables per workstream, labeled with the
// workstream name.
func GroupByWorkstream(deliverables []domain.Deliverable, workstreams []domain.Workstream) []KanbanColumn {
	out := make([]KanbanColumn, 0, len(workstreams))
	for _, w := range workstreams {
		col := KanbanColumn{Key: w.ID, Label: w.Name, Deliverables: []domain.Deliverable{}}
		for _, d := range deliverables {
			if d.WorkstreamID == w.ID {
				col.Deliverables = append(col.Deliverables, d)
			}
		}
		out = append(out, col)
	}
	return out
}

// GroupByOwner buckets deliverables per owning staff member.
func GroupByOwner(deliverables []domain.Deliverable, staff []domain.Staff) []KanbanColumn {
	out := make([]KanbanColumn, 0, len(staff))
	for _, s := range staff {
		col := KanbanColumn{Key: s.ID, Label: s.Name, Deliverables: []domain.Deliverable{}}
		for _, d := range deliverables {
			if d.OwnerID == s.ID {
				col.Deliverables = append(col.Deliverables, d)
			}
		}
		out = append(out, col)
	}
	return out
}
