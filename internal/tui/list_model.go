package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/models"
	"taskboard/internal/views"
)

// ListModel renders the task table: search box, fixed-size pages sliced
// client-side, and the delete confirmation modal. It never talks to the
// network; the root model owns fetching and hands the collection down.
type ListModel struct {
	width  int
	height int

	tasks []models.Task

	search       textinput.Model
	searchActive bool

	cursor   int // index within the current page
	page     int
	pageSize int

	// delete flow
	confirmID      int64
	confirmTitle   string
	deleteInFlight bool
	deleteErr      string
}

func NewListModel(pageSize int) ListModel {
	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.CharLimit = 100
	search.Width = 40
	search.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	search.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))

	if pageSize < 1 {
		pageSize = 5
	}
	return ListModel{
		search:   search,
		pageSize: pageSize,
	}
}

func (m *ListModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *ListModel) setTasks(tasks []models.Task) {
	m.tasks = tasks
	m.clamp()
}

// capturesKeys reports whether the list needs the whole keyboard (search
// typing or the confirm modal), so global shortcuts stay out of the way.
func (m ListModel) capturesKeys() bool {
	return m.searchActive || m.confirmID != 0 || m.deleteInFlight
}

func (m ListModel) filtered() []models.Task {
	return views.Filter(m.tasks, m.search.Value())
}

func (m ListModel) pageTasks() []models.Task {
	return views.Paginate(m.filtered(), m.page, m.pageSize)
}

func (m *ListModel) clamp() {
	if last := views.LastPage(len(m.filtered()), m.pageSize); m.page > last {
		m.page = last
	}
	if n := len(m.pageTasks()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m ListModel) handleDeleted() ListModel {
	m.confirmID = 0
	m.confirmTitle = ""
	m.deleteInFlight = false
	m.deleteErr = ""
	return m
}

func (m ListModel) handleDeleteFailed(err error) ListModel {
	m.confirmID = 0
	m.confirmTitle = ""
	m.deleteInFlight = false
	m.deleteErr = err.Error()
	return m
}

func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.deleteInFlight {
		return m, nil // single outstanding delete; ignore input until it lands
	}

	if m.confirmID != 0 {
		return m.updateConfirm(keyMsg)
	}

	if m.searchActive {
		return m.updateSearch(keyMsg)
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.pageTasks())-1 {
			m.cursor++
		}
	case "[", "left", "h":
		if m.page > 0 {
			m.page--
			m.clamp()
		}
	case "]", "right", "l":
		if m.page < views.LastPage(len(m.filtered()), m.pageSize) {
			m.page++
			m.clamp()
		}
	case "+", "=":
		m.pageSize++
		m.page = 0 // page resets whenever the page size changes
		m.clamp()
	case "-":
		if m.pageSize > 1 {
			m.pageSize--
			m.page = 0
			m.clamp()
		}
	case "/":
		m.searchActive = true
		return m, m.search.Focus()
	case "enter", "e":
		if task, ok := m.selected(); ok {
			edit := task
			return m, func() tea.Msg { return openFormMsg{task: &edit} }
		}
	case "d":
		if task, ok := m.selected(); ok {
			m.confirmID = task.ID
			m.confirmTitle = task.Title
			m.deleteErr = ""
		}
	}

	return m, nil
}

func (m ListModel) updateConfirm(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.deleteInFlight = true
		id := m.confirmID
		return m, func() tea.Msg { return performDeleteMsg{id: id} }
	case "n", "esc":
		m.confirmID = 0
		m.confirmTitle = ""
	}
	return m, nil
}

func (m ListModel) updateSearch(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searchActive = false
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	// Narrowing or widening the filter starts over from the first page so
	// the user is never stranded beyond the new last page.
	if m.search.Value() != before {
		m.page = 0
		m.cursor = 0
		m.clamp()
	}
	return m, cmd
}

func (m ListModel) selected() (models.Task, bool) {
	page := m.pageTasks()
	if m.cursor < 0 || m.cursor >= len(page) {
		return models.Task{}, false
	}
	return page[m.cursor], true
}

func (m ListModel) View() string {
	var b strings.Builder

	searchLabel := "/ "
	if m.searchActive {
		searchLabel = successStyle.Render("/ ")
	}
	b.WriteString(searchLabel + m.search.View() + "\n\n")

	filtered := m.filtered()
	if len(filtered) == 0 {
		if m.search.Value() != "" {
			b.WriteString(mutedStyle.Render("No tasks match the search."))
		} else {
			b.WriteString(mutedStyle.Render("No tasks yet. Press a to add one."))
		}
		b.WriteString("\n")
		return b.String()
	}

	header := fmt.Sprintf("  %-5s %-30s %-12s %-12s", "ID", "TITLE", "STATUS", "DUE")
	b.WriteString(titleStyle.Render(header) + "\n")

	for i, task := range m.pageTasks() {
		line := fmt.Sprintf("  %-5d %-30s %-12s %-12s",
			task.ID,
			truncate(task.Title, 30),
			task.Status,
			task.DueDate.String(),
		)
		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render("  "+fmt.Sprintf("%-5d ", task.ID)) +
				rowStyle.Render(fmt.Sprintf("%-30s ", truncate(task.Title, 30))) +
				statusStyle(string(task.Status)).Render(fmt.Sprintf("%-12s ", task.Status)) +
				rowStyle.Render(fmt.Sprintf("%-12s", task.DueDate.String())))
		}
		b.WriteString("\n")
	}

	last := views.LastPage(len(filtered), m.pageSize)
	b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("page %d/%d • %d tasks • %d per page",
		m.page+1, last+1, len(filtered), m.pageSize)))

	if m.deleteErr != "" {
		b.WriteString("\n" + errorStyle.Render("Delete failed: "+m.deleteErr))
	}

	if m.confirmID != 0 {
		modal := modalStyle.Render(fmt.Sprintf(
			"Delete task %q?\n\n%s",
			m.confirmTitle,
			helpStyle.Render("y confirm • n cancel"),
		))
		if m.deleteInFlight {
			modal = modalStyle.Render("Deleting...")
		}
		b.WriteString("\n\n" + modal)
	}

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
