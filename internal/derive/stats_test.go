package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govkit/governance-service/internal/domain"
)

func TestDashboardStats(t *testing.T) {
	deliverables := []domain.Deliverable{
		{ID: "1", Status: domain.StatusInProgress, Progress: 45},
		{ID: "2", Status: domain.StatusNotStarted, Progress: 0},
		{ID: "3", Status: domain.StatusAtRisk, Progress: 65},
		{ID: "4", Status: domain.StatusCompleted, Progress: 100},
	}

	stats := Dashboard(deliverables)
	assert.Equal(t, 4, stats.TotalDeliverables)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 1, stats.AtRisk)
	assert.Equal(t, 1, stats.NotStarted)
	assert.Equal(t, 0, stats.Blocked)
	assert.Equal(t, 25, stats.CompletionRate)
	// (45+0+65+100)/4 = 52.5, rounds to 53
	assert.Equal(t, 53, stats.AvgProgress)
}

func TestDashboardStatsEmpty(t *testing.T) {
	stats := Dashboard(nil)
	assert.Equal(t, 0, stats.TotalDeliverables)
	assert.Equal(t, 0, stats.CompletionRate)
	assert.Equal(t, 0, stats.AvgProgress)
}

func TestFilterByOwner(t *testing.T) {
	deliverables := []domain.Deliverable{
		{ID: "1", OwnerID: "2"},
		{ID: "2", OwnerID: "3"},
		{ID: "3", OwnerID: "2"},
	}

	mine := FilterByOwner(deliverables, "2")
	require.Len(t, mine, 2)
	assert.Equal(t, "1", mine[0].ID)
	assert.Equal(t, "3", mine[1].ID)
}

func TestStaleDeliverables(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	threshold := 7 * 24 * time.Hour

	deliverables := []domain.Deliverable{
		{ID: "fresh", Status: domain.StatusInProgress, UpdatedAt: now.Add(-2 * 24 * time.Hour)},
		{ID: "stale", Status: domain.StatusInProgress, UpdatedAt: now.Add(-10 * 24 * time.Hour)},
		{ID: "done", Status: domain.StatusCompleted, UpdatedAt: now.Add(-30 * 24 * time.Hour)},
	}

	stale := StaleDeliverables(deliverables, now, threshold)
	require.Len(t, stale, 1)
	assert.Equal(t, "stale", stale[0].ID)
}

func TestRankUserActivity(t *testing.T) {
	staff := []domain.Staff{
		{ID: "1", Name: "Sarah"},
		{ID: "2", Name: "Michael"},
		{ID: "3", Name: "Emma"},
	}
	early := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	late := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	entries := []domain.AuditEntry{
		{UserID: "2", Timestamp: early},
		{UserID: "2", Timestamp: late},
		{UserID: "1", Timestamp: early},
	}

	rows := RankUserActivity(staff, entries)
	require.Len(t, rows, 3)

	assert.Equal(t, "Michael", rows[0].Name)
	assert.Equal(t, 2, rows[0].Actions)
	require.NotNil(t, rows[0].LastActive)
	assert.True(t, rows[0].LastActive.Equal(late))

	assert.Equal(t, "Sarah", rows[1].Name)
	assert.Equal(t, 1, rows[1].Actions)

	assert.Equal(t, "Emma", rows[2].Name)
	assert.Equal(t, 0, rows[2].Actions)
	assert.Nil(t, rows[2].LastActive)
}
