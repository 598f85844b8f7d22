package views_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/models"
	"taskboard/internal/views"
)

func TestMonthGridShape(t *testing.T) {
	// A leap February plus a few awkward month shapes.
	months := []struct {
		year  int
		month time.Month
	}{
		{2024, time.February}, // leap February
		{2025, time.February}, // 28 days starting Saturday
		{2025, time.June},     // starts on a Sunday
		{2025, time.August},   // ends on a Sunday
		{2026, time.February}, // 28 days starting on a Sunday: exactly 4 weeks
	}

	for _, tt := range months {
		t.Run(fmt.Sprintf("%d-%s", tt.year, tt.month), func(t *testing.T) {
			grid := views.MonthGrid(tt.year, tt.month)

			assert.Equal(t, 0, len(grid)%7, "grid length must be a whole number of weeks")
			require.NotEmpty(t, grid)
			assert.Equal(t, time.Sunday, grid[0].Weekday(), "grid must start on a Sunday")
			assert.Equal(t, time.Saturday, grid[len(grid)-1].Weekday())

			first := models.NewDate(tt.year, tt.month, 1)
			last := models.DateOf(first.AddDate(0, 1, -1))
			assert.Contains(t, grid, first)
			assert.Contains(t, grid, last)
		})
	}
}

func TestMonthGridIsContiguous(t *testing.T) {
	grid := views.MonthGrid(2025, time.June)
	for i := 1; i < len(grid); i++ {
		assert.True(t, grid[i].Equal(grid[i-1].AddDays(1)),
			"days must be consecutive with no gaps")
	}
}

func TestWeeksRegroups(t *testing.T) {
	grid := views.MonthGrid(2025, time.June)
	weeks := views.Weeks(grid)

	assert.Len(t, weeks, len(grid)/7)
	for _, week := range weeks {
		assert.Len(t, week, 7)
	}
	assert.Equal(t, grid[0], weeks[0][0])
}

// Two tasks due 2025-06-01 must be found by exact-date lookup from any
// month whose grid includes that date. June 1 2025 is a Sunday, so it also
// appears as a trailing day in May's grid.
func TestTasksOnAcrossMonthGrids(t *testing.T) {
	due := models.NewDate(2025, time.June, 1)
	tasks := []models.Task{
		{ID: 1, Title: "first", DueDate: due},
		{ID: 2, Title: "second", DueDate: due},
		{ID: 3, Title: "other day", DueDate: models.NewDate(2025, time.June, 2)},
	}

	for _, month := range []time.Month{time.May, time.June} {
		grid := views.MonthGrid(2025, month)
		require.Contains(t, grid, due, "grid for %s must include the date", month)

		got := views.TasksOn(tasks, due)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(2), got[1].ID)
	}
}

func TestTasksOnEmptyDay(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, DueDate: models.NewDate(2025, time.June, 1)},
	}
	assert.Empty(t, views.TasksOn(tasks, models.NewDate(2025, time.June, 15)))
}
