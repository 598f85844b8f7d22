package views

import (
	"time"

	"taskboard/internal/models"
)

// MonthGrid builds the calendar grid for a month: Sunday-start weeks from
// the week containing the 1st through the week containing the last day.
// Leading and trailing days belong to the adjacent months; the result is
// always a whole number of weeks.
func MonthGrid(year int, month time.Month) []models.Date {
	first := models.NewDate(year, month, 1)
	last := first.AddDate(0, 1, -1) // last day of month

	start := models.DateOf(first.AddDate(0, 0, -int(first.Weekday())))
	end := models.DateOf(last.AddDate(0, 0, int(time.Saturday-last.Weekday())))

	var days []models.Date
	for d := start; !d.After(end.Time); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// Weeks regroups a grid into rows of seven.
func Weeks(grid []models.Date) [][]models.Date {
	weeks := make([][]models.Date, 0, len(grid)/7)
	for i := 0; i+7 <= len(grid); i += 7 {
		weeks = append(weeks, grid[i:i+7])
	}
	return weeks
}

// TasksOn selects the tasks due exactly on the given date. Works off the
// already-fetched collection; opening a day never triggers a request.
func TasksOn(tasks []models.Task, date models.Date) []models.Task {
	var due []models.Task
	for _, task := range tasks {
		if task.DueDate.Equal(date) {
			due = append(due, task)
		}
	}
	return due
}
