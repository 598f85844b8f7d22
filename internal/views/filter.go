// Package views holds the pure derivations the client renders from the
// fetched task collection: search filtering, client-side pagination and
// calendar bucketing. Nothing here performs a request or mutates its input.
package views

import (
	"strings"

	"taskboard/internal/models"
)

// Filter returns the tasks whose title or description contains term,
// case-insensitively. An empty term returns the whole collection.
func Filter(tasks []models.Task, term string) []models.Task {
	if term == "" {
		return tasks
	}

	needle := strings.ToLower(term)
	filtered := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Title), needle) ||
			strings.Contains(strings.ToLower(task.Description), needle) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// Paginate slices tasks into fixed-size pages. An out-of-range page is
// clamped to the last page rather than returning an empty slice; sizes
// below one fall back to one.
func Paginate(tasks []models.Task, page, size int) []models.Task {
	if size < 1 {
		size = 1
	}
	if page < 0 {
		page = 0
	}
	if last := LastPage(len(tasks), size); page > last {
		page = last
	}

	start := page * size
	if start >= len(tasks) {
		return []models.Task{}
	}
	end := start + size
	if end > len(tasks) {
		end = len(tasks)
	}
	return tasks[start:end]
}

// LastPage is the index of the final page for a collection of n items.
func LastPage(n, size int) int {
	if size < 1 {
		size = 1
	}
	if n <= size {
		return 0
	}
	return (n - 1) / size
}
