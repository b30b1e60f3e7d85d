package derive

import (
	"math"
	"time"

	"github.com/govkit/governance-service/internal/domain"
)

const dateLayout = "2006-01-02"

// Timeline is the visible gantt window: the start of the previous month
// through the end of the month after next, relative to the reference day.
type Timeline struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	TotalDays int       `json:"totalDays"`
}

// NewTimeline computes the window around today.
func NewTimeline(today time.Time) Timeline {
	year, month, _ := today.Date()
	start := time.Date(year, month-1, 1, 0, 0, 0, 0, today.Location())
	// first day of month+3, minus a day, is the end of month+2
	end := time.Date(year, month+3, 1, 0, 0, 0, 0, today.Location()).AddDate(0, 0, -1)
	days := int(end.Sub(start).Hours()/24) + 1
	return Timeline{Start: start, End: end, TotalDays: days}
}

// BarPosition places one deliverable bar inside the window, as percentages of
// the window width rounded to two decimals.
type BarPosition struct {
	LeftPct  float64 `json:"leftPct"`
	WidthPct float64 `json:"widthPct"`
}

// Bar converts a date range into a window-relative position. Dates outside
// the window clamp to its edges; an unparseable date yields a zero-width bar.
func (t Timeline) Bar(startDate, dueDate string) BarPosition {
	start, okStart := parseDate(startDate, t.Start.Location())
	due, okDue := parseDate(dueDate, t.Start.Location())
	if !okStart || !okDue {
		return BarPosition{}
	}

	startDay := t.dayIndex(start)
	endDay := t.dayIndex(due)
	if endDay < startDay {
		endDay = startDay
	}

	left := float64(startDay) / float64(t.TotalDays) * 100
	width := float64(endDay-startDay) / float64(t.TotalDays) * 100
	return BarPosition{LeftPct: round2(left), WidthPct: round2(width)}
}

// dayIndex is the index of the first window day on or after d, clamped into
// [0, TotalDays].
func (t Timeline) dayIndex(d time.Time) int {
	idx := int(math.Ceil(d.Sub(t.Start).Hours() / 24))
	if idx < 0 {
		return 0
	}
	if idx > t.TotalDays {
		return t.TotalDays
	}
	return idx
}

// GanttGroup pairs a workstream with its deliverables, in collection order.
type GanttGroup struct {
	Workstream   domain.Workstream    `json:"workstream"`
	Deliverables []domain.Deliverable `json:"deliverables"`
}

// GroupForGantt buckets deliverables under their workstream.
func GroupForGantt(workstreams []domain.Workstream, deliverables []domain.Deliverable) []GanttGroup {
	out := make([]GanttGroup, 0, len(workstreams))
	for _, w := range workstreams {
		group := GanttGroup{Workstream: w, Deliverables: []domain.Deliverable{}}
		for _, d := range deliverables {
			if d.WorkstreamID == w.ID {
				group.Deliverables = append(group.Deliverables, d)
			}
		}
		out = append(out, group)
	}
	return out
}

func parseDate(value string, loc *time.Location) (time.Time, bool) {
	if t, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
