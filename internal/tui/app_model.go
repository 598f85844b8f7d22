package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/client"
	"taskboard/internal/models"
)

type view int

const (
	viewTasks view = iota
	viewCalendar
	viewTeam
	viewForm
)

type loadState int

const (
	stateLoading loadState = iota
	stateReady
	stateError
)

// openFormMsg asks the root model to open the task form. A nil task means
// create; otherwise the form edits a copy of the task.
type openFormMsg struct{ task *models.Task }

// performDeleteMsg is emitted by the list once the user has confirmed.
type performDeleteMsg struct{ id int64 }

// refreshRequestMsg asks the root model for a fresh list fetch.
type refreshRequestMsg struct{}

// submitDraftMsg carries a completed form draft. id zero means create.
type submitDraftMsg struct {
	id    int64
	draft client.TaskDraft
}

// Model is the root of the client: it owns the fetched collection and the
// pull-only sync state machine; the sub-models derive everything they show
// from the collection it hands them.
type Model struct {
	api    *client.Client
	width  int
	height int

	view view

	state    loadState
	tasks    []models.Task
	loadErr  string
	fetchGen int

	list     ListModel
	form     FormModel
	calendar CalendarModel
	team     TeamModel
}

func NewModel(api *client.Client, pageSize int) Model {
	return Model{
		api:      api,
		view:     viewTasks,
		state:    stateLoading,
		fetchGen: 1,
		list:     NewListModel(pageSize),
		calendar: NewCalendarModel(),
		team:     NewTeamModel(),
	}
}

func (m Model) Init() tea.Cmd {
	return fetchTasksCmd(m.api, m.fetchGen)
}

// refresh supersedes any in-flight fetch by bumping the generation.
func (m *Model) refresh() tea.Cmd {
	m.fetchGen++
	m.state = stateLoading
	return fetchTasksCmd(m.api, m.fetchGen)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.setSize(msg.Width, msg.Height)
		m.form.setSize(msg.Width, msg.Height)
		m.calendar.setSize(msg.Width, msg.Height)
		return m, nil

	case tasksLoadedMsg:
		if msg.gen != m.fetchGen {
			return m, nil // stale response, a newer fetch is in flight
		}
		m.state = stateReady
		m.loadErr = ""
		m.tasks = msg.tasks
		m.list.setTasks(msg.tasks)
		m.calendar.setTasks(msg.tasks)
		return m, nil

	case tasksLoadFailedMsg:
		if msg.gen != m.fetchGen {
			return m, nil
		}
		m.state = stateError
		m.loadErr = msg.err.Error()
		return m, nil

	case refreshRequestMsg:
		return m, m.refresh()

	case openFormMsg:
		m.form = NewFormModel(msg.task)
		m.form.setSize(m.width, m.height)
		m.view = viewForm
		return m, m.form.Init()

	case submitDraftMsg:
		return m, saveTaskCmd(m.api, msg.id, msg.draft)

	case taskSavedMsg:
		var cmd tea.Cmd
		m.form, cmd = m.form.handleSaved(msg)
		return m, tea.Batch(cmd, m.refresh())

	case taskSaveFailedMsg:
		m.form = m.form.handleSaveFailed(msg)
		return m, nil

	case flashClearMsg:
		m.form = m.form.clearFlash()
		return m, nil

	case performDeleteMsg:
		return m, deleteTaskCmd(m.api, msg.id)

	case taskDeletedMsg:
		m.list = m.list.handleDeleted()
		return m, m.refresh()

	case taskDeleteFailedMsg:
		// Keep the stale list visible; only surface the error.
		m.list = m.list.handleDeleteFailed(msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The form owns the keyboard completely while open.
	if m.view == viewForm {
		if msg.String() == "esc" && !m.form.inFlight {
			m.view = viewTasks
			return m, nil
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	// While the list's search box or confirm modal is active, keys go there.
	if m.view == viewTasks && m.list.capturesKeys() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "1":
		m.view = viewTasks
		return m, nil
	case "2":
		m.view = viewCalendar
		return m, nil
	case "3":
		m.view = viewTeam
		return m, nil
	case "r":
		return m, m.refresh()
	case "a":
		return m, func() tea.Msg { return openFormMsg{task: nil} }
	}

	var cmd tea.Cmd
	switch m.view {
	case viewTasks:
		m.list, cmd = m.list.Update(msg)
	case viewCalendar:
		m.calendar, cmd = m.calendar.Update(msg)
	case viewTeam:
		m.team, cmd = m.team.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch m.view {
	case viewForm:
		b.WriteString(m.form.View())
	case viewCalendar:
		b.WriteString(m.bodyOr(m.calendar.View()))
	case viewTeam:
		b.WriteString(m.team.View())
	default:
		b.WriteString(m.bodyOr(m.list.View()))
	}

	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

// bodyOr substitutes the loading/error banner for views that render the
// fetched collection.
func (m Model) bodyOr(ready string) string {
	switch m.state {
	case stateLoading:
		return mutedStyle.Render("Loading tasks...")
	case stateError:
		return errorStyle.Render("Could not load tasks: "+m.loadErr) + "\n" +
			helpStyle.Render("press r to retry")
	default:
		return ready
	}
}

func (m Model) tabBar() string {
	tabs := []struct {
		label string
		v     view
	}{
		{"1 Tasks", viewTasks},
		{"2 Calendar", viewCalendar},
		{"3 Team", viewTeam},
	}

	rendered := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		style := tabStyle
		if m.view == tab.v || (m.view == viewForm && tab.v == viewTasks) {
			style = activeTabStyle
		}
		rendered = append(rendered, style.Render(tab.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) helpLine() string {
	switch m.view {
	case viewForm:
		return helpStyle.Render("tab/enter next field • ctrl+s save • esc back")
	case viewCalendar:
		return helpStyle.Render("arrows move day • n/p month • enter day tasks • r refresh • q quit")
	case viewTeam:
		return helpStyle.Render("1/2/3 switch view • q quit")
	default:
		return helpStyle.Render("arrows move • / search • a add • enter edit • d delete • [/] page • +/- page size • r refresh • q quit")
	}
}
