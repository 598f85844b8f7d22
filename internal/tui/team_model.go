package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/views"
)

// TeamModel shows the static roster. Nothing here is fetched or editable.
type TeamModel struct {
	members []views.TeamMember
}

func NewTeamModel() TeamModel {
	return TeamModel{members: views.TeamMembers()}
}

func (m TeamModel) Update(msg tea.Msg) (TeamModel, tea.Cmd) {
	return m, nil
}

func (m TeamModel) View() string {
	cards := make([]string, 0, len(m.members))
	for _, member := range m.members {
		var b strings.Builder
		b.WriteString(titleStyle.Render(member.Name) + "\n")
		b.WriteString(mutedStyle.Render(member.Role) + "\n")
		b.WriteString(rowStyle.Render(member.Email) + "\n\n")
		b.WriteString(rowStyle.Render(strings.Join(member.Expertise, " · ")) + "\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d/%d tasks done • %d active projects",
			member.TasksCompleted, member.TasksTotal, member.ActiveProjects)))
		cards = append(cards, boxStyle.Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
