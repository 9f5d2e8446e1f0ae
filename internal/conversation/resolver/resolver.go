// Package resolver maps a user-supplied task reference onto a task list.
package resolver

import (
	"strconv"
	"strings"

	"task-assistant/internal/model"
)

// Resolve finds the task an identifier refers to. An integer n in
// [1, len(tasks)] selects tasks[n-1], matching how lists are numbered for the
// user. Any other non-empty identifier selects the first task whose title
// contains it, ignoring case. ok is false when nothing matches.
func Resolve(identifier string, tasks []model.TaskSummary) (model.TaskSummary, bool) {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return model.TaskSummary{}, false
	}

	if n, err := strconv.Atoi(strings.TrimPrefix(id, "#")); err == nil {
		if n >= 1 && n <= len(tasks) {
			return tasks[n-1], true
		}
	}

	needle := strings.ToLower(id)
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), needle) {
			return t, true
		}
	}
	return model.TaskSummary{}, false
}
