package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/client"
	"taskboard/internal/models"
)

// Fetch results carry the generation they were requested under. The root
// model drops any result whose generation is stale, so a refresh or a view
// switch supersedes an in-flight response instead of racing it.
type tasksLoadedMsg struct {
	gen   int
	tasks []models.Task
}

type tasksLoadFailedMsg struct {
	gen int
	err error
}

type taskSavedMsg struct {
	task    models.Task
	created bool
}

type taskSaveFailedMsg struct{ err error }

type taskDeletedMsg struct{ id int64 }

type taskDeleteFailedMsg struct{ err error }

// flashClearMsg ends the transient success indicator on the form.
type flashClearMsg struct{}

func fetchTasksCmd(api *client.Client, gen int) tea.Cmd {
	return func() tea.Msg {
		tasks, err := api.ListTasks(context.Background())
		if err != nil {
			return tasksLoadFailedMsg{gen: gen, err: err}
		}
		return tasksLoadedMsg{gen: gen, tasks: tasks}
	}
}

func saveTaskCmd(api *client.Client, id int64, draft client.TaskDraft) tea.Cmd {
	return func() tea.Msg {
		var (
			task *models.Task
			err  error
		)
		if id == 0 {
			task, err = api.CreateTask(context.Background(), draft)
		} else {
			task, err = api.UpdateTask(context.Background(), id, draft)
		}
		if err != nil {
			return taskSaveFailedMsg{err: err}
		}
		return taskSavedMsg{task: *task, created: id == 0}
	}
}

func deleteTaskCmd(api *client.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := api.DeleteTask(context.Background(), id); err != nil {
			return taskDeleteFailedMsg{err: err}
		}
		return taskDeletedMsg{id: id}
	}
}
