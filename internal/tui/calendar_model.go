package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/models"
	"taskboard/internal/views"
)

// CalendarModel renders one month as a Sunday-start grid. Day cells show
// the count of tasks due that day; the popover lists them, straight from
// the fetched collection.
type CalendarModel struct {
	width  int
	height int

	year  int
	month time.Month

	tasks  []models.Task
	cursor int // index into the current grid

	popoverOpen bool
}

func NewCalendarModel() CalendarModel {
	now := time.Now()
	m := CalendarModel{
		year:  now.Year(),
		month: now.Month(),
	}
	m.cursor = m.indexOf(models.DateOf(now))
	return m
}

func (m *CalendarModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *CalendarModel) setTasks(tasks []models.Task) {
	m.tasks = tasks
}

func (m CalendarModel) grid() []models.Date {
	return views.MonthGrid(m.year, m.month)
}

// indexOf locates a date in the current grid, falling back to the first of
// the month when the date is outside it.
func (m CalendarModel) indexOf(date models.Date) int {
	for i, day := range m.grid() {
		if day.Equal(date) {
			return i
		}
	}
	first := models.NewDate(m.year, m.month, 1)
	for i, day := range m.grid() {
		if day.Equal(first) {
			return i
		}
	}
	return 0
}

func (m *CalendarModel) shiftMonth(delta int) {
	t := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	m.year = t.Year()
	m.month = t.Month()
	m.cursor = m.indexOf(models.NewDate(m.year, m.month, 1))
	m.popoverOpen = false
}

func (m CalendarModel) Update(msg tea.Msg) (CalendarModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.popoverOpen {
		switch keyMsg.String() {
		case "esc", "enter", "q":
			m.popoverOpen = false
		}
		return m, nil
	}

	grid := m.grid()
	switch keyMsg.String() {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < len(grid)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor-7 >= 0 {
			m.cursor -= 7
		}
	case "down", "j":
		if m.cursor+7 < len(grid) {
			m.cursor += 7
		}
	case "n", "pgdown":
		m.shiftMonth(1)
	case "p", "pgup":
		m.shiftMonth(-1)
	case "enter":
		m.popoverOpen = true
	}
	return m, nil
}

func (m CalendarModel) View() string {
	grid := m.grid()
	today := models.DateOf(time.Now())

	var b strings.Builder

	monthName := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
	b.WriteString(titleStyle.Render(monthName) + "\n\n")

	for _, name := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		b.WriteString(mutedStyle.Render(fmt.Sprintf(" %-5s", name)))
	}
	b.WriteString("\n")

	for _, week := range views.Weeks(grid) {
		for _, day := range week {
			b.WriteString(m.renderCell(day, grid, today))
		}
		b.WriteString("\n")
	}

	if m.popoverOpen {
		b.WriteString("\n" + m.renderPopover(grid[m.cursor]))
	}

	return b.String()
}

func (m CalendarModel) renderCell(day models.Date, grid []models.Date, today models.Date) string {
	count := len(views.TasksOn(m.tasks, day))

	cell := fmt.Sprintf("%2d", day.Day())
	if count > 0 {
		cell += fmt.Sprintf("·%d", count)
	}
	cell = fmt.Sprintf(" %-5s", cell)

	selected := day.Equal(grid[m.cursor])
	switch {
	case selected:
		return selectedRowStyle.Render(cell)
	case day.Equal(today):
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true).Render(cell)
	case day.Month() != m.month:
		return mutedStyle.Render(cell)
	case count > 0:
		return warningStyle.Render(cell)
	default:
		return rowStyle.Render(cell)
	}
}

func (m CalendarModel) renderPopover(day models.Date) string {
	due := views.TasksOn(m.tasks, day)

	var b strings.Builder
	b.WriteString(titleStyle.Render(day.Format("Monday, 2 January")) + "\n")

	if len(due) == 0 {
		b.WriteString(mutedStyle.Render("No tasks for this date"))
	}
	for _, task := range due {
		b.WriteString("\n" + statusStyle(string(task.Status)).Render("• ") + task.Title)
		if task.Description != "" {
			b.WriteString("\n  " + mutedStyle.Render(truncate(task.Description, 60)))
		}
	}

	return modalStyle.Render(b.String())
}
