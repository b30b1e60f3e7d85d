package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govkit/governance-service/internal/domain"
)

func TestNewTimelineWindow(t *testing.T) {
	today := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	tl := NewTimeline(today)

	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), tl.Start)
	assert.Equal(t, time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC), tl.End)
	// Feb(28) + Mar(31) + Apr(30) + May(31)
	assert.Equal(t, 120, tl.TotalDays)
}

func TestNewTimelineCrossesYearBoundary(t *testing.T) {
	today := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	tl := NewTimeline(today)

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), tl.Start)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), tl.End)
}

func TestBarPositions(t *testing.T) {
	tl := NewTimeline(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name  string
		start string
		due   string
		check func(t *testing.T, bar BarPosition)
	}{
		{
			name:  "inside window",
			start: "2026-03-01",
			due:   "2026-03-31",
			check: func(t *testing.T, bar BarPosition) {
				assert.InDelta(t, 23.33, bar.LeftPct, 0.01)
				assert.InDelta(t, 25.0, bar.WidthPct, 0.01)
			},
		},
		{
			name:  "clamps to window start",
			start: "2025-06-01",
			due:   "2026-02-10",
			check: func(t *testing.T, bar BarPosition) {
				assert.Equal(t, 0.0, bar.LeftPct)
				assert.Greater(t, bar.WidthPct, 0.0)
			},
		},
		{
			name:  "clamps to window end",
			start: "2026-05-20",
			due:   "2027-01-01",
			check: func(t *testing.T, bar BarPosition) {
				assert.InDelta(t, 100.0, bar.LeftPct+bar.WidthPct, 0.01)
			},
		},
		{
			name:  "due before start collapses",
			start: "2026-03-10",
			due:   "2026-03-01",
			check: func(t *testing.T, bar BarPosition) {
				assert.Equal(t, 0.0, bar.WidthPct)
			},
		},
		{
			name:  "unparseable date yields zero bar",
			start: "garbage",
			due:   "2026-03-31",
			check: func(t *testing.T, bar BarPosition) {
				assert.Equal(t, BarPosition{}, bar)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tl.Bar(tt.start, tt.due))
		})
	}
}

func TestGroupForGantt(t *testing.T) {
	workstreams := []domain.Workstream{
		{ID: "1", Name: "Platform"},
		{ID: "2", Name: "Analytics"},
	}
	deliverables := []domain.Deliverable{
		{ID: "d1", WorkstreamID: "1"},
		{ID: "d2", WorkstreamID: "2"},
		{ID: "d3", WorkstreamID: "1"},
	}

	groups := GroupForGantt(workstreams, deliverables)
	require.Len(t, groups, 2)
	require.Len(t, groups[0].Deliverables, 2)
	assert.Equal(t, "d1", groups[0].Deliverables[0].ID)
	assert.Equal(t, "d3", groups[0].Deliverables[1].ID)
	require.Len(t, groups[1].Deliverables, 1)
}
