package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govkit/governance-service/internal/domain"
)

func TestTotalHours(t *testing.T) {
	logs := []domain.HoursLog{
		{Hours: 4},
		{Hours: 2.5},
		{Hours: 1},
	}
	assert.Equal(t, 7.5, TotalHours(logs))
	assert.Equal(t, 0.0, TotalHours(nil))
}

func TestHoursThisWeek(t *testing.T) {
	// Wednesday 2026-04-15; the week runs Mon 13th through Sun 19th
	now := time.Date(2026, 4, 15, 14, 0, 0, 0, time.UTC)

	logs := []domain.HoursLog{
		{Date: "2026-04-13", Hours: 8},   // Monday, in week
		{Date: "2026-04-19", Hours: 2},   // Sunday, in week
		{Date: "2026-04-12", Hours: 6},   // previous Sunday
		{Date: "2026-04-20", Hours: 4},   // next Monday
		{Date: "invalid-date", Hours: 9}, // skipped
	}
	assert.Equal(t, 10.0, HoursThisWeek(logs, now))
}

func TestHoursThisWeekOnSunday(t *testing.T) {
	// Sunday closes the week that started the previous Monday
	now := time.Date(2026, 4, 19, 9, 0, 0, 0, time.UTC)
	logs := []domain.HoursLog{
		{Date: "2026-04-13", Hours: 3},
		{Date: "2026-04-20", Hours: 5},
	}
	assert.Equal(t, 3.0, HoursThisWeek(logs, now))
}

func TestSummarizeByStaff(t *testing.T) {
	staff := []domain.Staff{
		{ID: "1", Name: "Sarah"},
		{ID: "2", Name: "Michael"},
		{ID: "3", Name: "Emma"},
	}
	logs := []domain.HoursLog{
		{StaffID: "2", Hours: 5},
		{StaffID: "2", Hours: 3},
		{StaffID: "1", Hours: 4},
		{StaffID: "unknown", Hours: 100},
	}

	rows := SummarizeByStaff(staff, logs)
	require.Len(t, rows, 3)
	assert.Equal(t, "Michael", rows[0].Name)
	assert.Equal(t, 8.0, rows[0].Total)
	assert.Equal(t, "Sarah", rows[1].Name)
	assert.Equal(t, 4.0, rows[1].Total)
	assert.Equal(t, "Emma", rows[2].Name)
	assert.Equal(t, 0.0, rows[2].Total)
}
