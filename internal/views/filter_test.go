package views_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/models"
	"taskboard/internal/views"
)

func makeTasks() []models.Task {
	return []models.Task{
		{ID: 1, Title: "Write spec", Description: "", Status: models.StatusPending, DueDate: models.NewDate(2025, time.June, 1)},
		{ID: 2, Title: "Review PR", Description: "backend changes", Status: models.StatusInProgress, DueDate: models.NewDate(2025, time.June, 2)},
		{ID: 3, Title: "Deploy", Description: "push to SPEC environment", Status: models.StatusCompleted, DueDate: models.NewDate(2025, time.June, 3)},
		{ID: 4, Title: "Standup notes", Description: "weekly sync", Status: models.StatusPending, DueDate: models.NewDate(2025, time.June, 1)},
	}
}

func TestFilterEmptyTermReturnsAll(t *testing.T) {
	tasks := makeTasks()
	assert.Equal(t, tasks, views.Filter(tasks, ""))
}

func TestFilterMatchesTitleOrDescription(t *testing.T) {
	tasks := makeTasks()

	tests := []struct {
		term string
		ids  []int64
	}{
		{"spec", []int64{1, 3}},   // title of 1, description of 3
		{"SPEC", []int64{1, 3}},   // case-insensitive both ways
		{"backend", []int64{2}},   // description only
		{"standup", []int64{4}},   // title only
		{"nothing", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := views.Filter(tasks, tt.term)
			ids := make([]int64, 0, len(got))
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	tasks := makeTasks()

	once := views.Filter(tasks, "spec")
	twice := views.Filter(once, "spec")
	assert.Equal(t, once, twice)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	tasks := makeTasks()
	views.Filter(tasks, "spec")
	assert.Equal(t, makeTasks(), tasks)
}

// Filtering then paging must equal paging a pre-filtered list, for every
// page and term including the empty one.
func TestFilterCommutesWithPagination(t *testing.T) {
	tasks := makeTasks()

	for _, term := range []string{"", "spec", "e", "nothing"} {
		filtered := views.Filter(tasks, term)
		for size := 1; size <= len(tasks)+1; size++ {
			for page := 0; page <= views.LastPage(len(filtered), size); page++ {
				direct := views.Paginate(views.Filter(tasks, term), page, size)
				prefiltered := views.Paginate(filtered, page, size)
				assert.Equal(t, prefiltered, direct,
					fmt.Sprintf("term=%q page=%d size=%d", term, page, size))
			}
		}
	}
}

func TestPaginateSlices(t *testing.T) {
	tasks := makeTasks()

	first := views.Paginate(tasks, 0, 3)
	assert.Len(t, first, 3)
	assert.Equal(t, int64(1), first[0].ID)

	second := views.Paginate(tasks, 1, 3)
	assert.Len(t, second, 1)
	assert.Equal(t, int64(4), second[0].ID)
}

func TestPaginateClampsOutOfRangePage(t *testing.T) {
	tasks := makeTasks()

	// Page 9 does not exist; clamp to the last page instead of going blank.
	got := views.Paginate(tasks, 9, 3)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(4), got[0].ID)

	assert.Empty(t, views.Paginate(nil, 0, 3))
}

func TestLastPage(t *testing.T) {
	assert.Equal(t, 0, views.LastPage(0, 5))
	assert.Equal(t, 0, views.LastPage(5, 5))
	assert.Equal(t, 1, views.LastPage(6, 5))
	assert.Equal(t, 1, views.LastPage(10, 5))
	assert.Equal(t, 2, views.LastPage(11, 5))
}
