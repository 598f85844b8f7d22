package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/client"
	"taskboard/internal/models"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldDueDate
	fieldStatus
	fieldCount
)

// FormModel is the create/edit form. The draft lives here until a save
// succeeds; a failed save keeps every field as typed.
type FormModel struct {
	width  int
	height int

	taskID int // zero while creating
	inputs []textinput.Model
	status int // index into models.Statuses()
	focus  int

	inFlight bool
	flash    string // transient success indicator
	err      string // persistent until the next submit
}

func NewFormModel(task *models.Task) FormModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	}

	inputs[fieldTitle].Placeholder = "Task title (required)"
	inputs[fieldTitle].CharLimit = 200
	inputs[fieldDescription].Placeholder = "Description (optional)"
	inputs[fieldDescription].CharLimit = 500
	inputs[fieldDueDate].Placeholder = "Due date, YYYY-MM-DD (required)"
	inputs[fieldDueDate].CharLimit = 10

	m := FormModel{inputs: inputs}

	if task != nil {
		m.taskID = int(task.ID)
		m.inputs[fieldTitle].SetValue(task.Title)
		m.inputs[fieldDescription].SetValue(task.Description)
		m.inputs[fieldDueDate].SetValue(task.DueDate.String())
		for i, status := range models.Statuses() {
			if status == task.Status {
				m.status = i
			}
		}
	}

	m.inputs[fieldTitle].Focus()
	return m
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *FormModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

func (m FormModel) handleSaved(msg taskSavedMsg) (FormModel, tea.Cmd) {
	m.inFlight = false
	m.err = ""
	if msg.created {
		m.flash = fmt.Sprintf("Task %q created", msg.task.Title)
		m = m.resetDraft()
	} else {
		m.flash = fmt.Sprintf("Task %q updated", msg.task.Title)
	}
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return flashClearMsg{}
	})
}

func (m FormModel) handleSaveFailed(msg taskSaveFailedMsg) FormModel {
	m.inFlight = false
	m.flash = ""
	m.err = msg.err.Error() // stays until the next submit; draft untouched
	return m
}

func (m FormModel) clearFlash() FormModel {
	m.flash = ""
	return m
}

func (m FormModel) resetDraft() FormModel {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.status = 0
	m.focus = fieldTitle
	m.refocus()
	return m
}

func (m *FormModel) refocus() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

func (m FormModel) Update(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	if m.inFlight {
		return m, nil // submission disabled while a request is in flight
	}

	switch msg.String() {
	case "ctrl+s":
		return m.submit()

	case "tab", "down":
		m.focus = (m.focus + 1) % fieldCount
		m.refocus()
		return m, nil

	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		m.refocus()
		return m, nil

	case "enter":
		if m.focus == fieldCount-1 {
			return m.submit()
		}
		m.focus++
		m.refocus()
		return m, nil

	case "left", "right":
		if m.focus == fieldStatus {
			n := len(models.Statuses())
			if msg.String() == "right" {
				m.status = (m.status + 1) % n
			} else {
				m.status = (m.status + n - 1) % n
			}
			return m, nil
		}
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// submit validates locally first; an invalid draft never leaves the client.
func (m FormModel) submit() (FormModel, tea.Cmd) {
	m.flash = ""

	title := strings.TrimSpace(m.inputs[fieldTitle].Value())
	if title == "" {
		m.err = "title must not be empty"
		return m, nil
	}

	dueDate, err := models.ParseDate(strings.TrimSpace(m.inputs[fieldDueDate].Value()))
	if err != nil {
		m.err = "due date must be a valid YYYY-MM-DD date"
		return m, nil
	}

	m.err = ""
	m.inFlight = true

	draft := client.TaskDraft{
		Title:       title,
		Description: m.inputs[fieldDescription].Value(),
		Status:      models.Statuses()[m.status],
		DueDate:     dueDate,
	}
	id := int64(m.taskID)
	return m, func() tea.Msg { return submitDraftMsg{id: id, draft: draft} }
}

func (m FormModel) View() string {
	var b strings.Builder

	heading := "New task"
	if m.taskID != 0 {
		heading = fmt.Sprintf("Edit task #%d", m.taskID)
	}
	b.WriteString(titleStyle.Render(heading) + "\n\n")

	labels := []string{"Title", "Description", "Due date"}
	for i, input := range m.inputs {
		label := labels[i]
		style := mutedStyle
		if m.focus == i {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		}
		b.WriteString(style.Render(fmt.Sprintf("%-12s", label)) + input.View() + "\n")
	}

	statusLabel := mutedStyle
	if m.focus == fieldStatus {
		statusLabel = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}
	status := models.Statuses()[m.status]
	b.WriteString(statusLabel.Render(fmt.Sprintf("%-12s", "Status")) +
		statusStyle(string(status)).Render("< "+string(status)+" >") + "\n")

	b.WriteString("\n")
	switch {
	case m.inFlight:
		b.WriteString(warningStyle.Render("Saving..."))
	case m.err != "":
		b.WriteString(errorStyle.Render("Failed to save task: " + m.err))
	case m.flash != "":
		b.WriteString(successStyle.Render(m.flash))
	}
	b.WriteString("\n")

	return boxStyle.Render(b.String())
}
