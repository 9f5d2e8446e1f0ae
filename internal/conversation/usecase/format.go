package usecase

import (
	"fmt"
	"strings"
	"time"

	"task-assistant/internal/conversation"
	"task-assistant/internal/model"
)

// formatTaskList renders at most MaxListedTasks numbered entries followed by
// "...and N more" when the list is longer.
func formatTaskList(tasks []model.TaskSummary, loc *time.Location) string {
	var b strings.Builder
	for i, t := range capTasks(tasks) {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, formatTaskLine(t, loc))
	}
	if extra := len(tasks) - conversation.MaxListedTasks; extra > 0 {
		fmt.Fprintf(&b, "\n...and %d more", extra)
	}
	return b.String()
}

func formatTaskLine(t model.TaskSummary, loc *time.Location) string {
	details := []string{string(t.Status)}
	if t.Priority != "" {
		details = append(details, string(t.Priority))
	}
	if t.DueDate != nil {
		details = append(details, "due "+t.DueDate.In(loc).Format(shortDate))
	}
	return fmt.Sprintf("%s %s [%s]", statusIcon(t.Status), t.Title, strings.Join(details, ", "))
}

func statusIcon(s model.Status) string {
	switch s {
	case model.StatusCompleted:
		return "✅"
	case model.StatusInProgress:
		return "⏳"
	default:
		return "⬜"
	}
}

// capTasks returns a copy of the first MaxListedTasks tasks.
func capTasks(tasks []model.TaskSummary) []model.TaskSummary {
	n := min(len(tasks), conversation.MaxListedTasks)
	return append([]model.TaskSummary(nil), tasks[:n]...)
}

func formatCreated(t model.Task, loc *time.Location) string {
	s := fmt.Sprintf(msgTaskCreated, t.Title, t.Priority)
	if t.DueDate != nil {
		s += fmt.Sprintf(msgTaskDue, t.DueDate.In(loc).Format(dueDateLayout))
	}
	return s
}

func formatStats(s model.TaskStats) string {
	return fmt.Sprintf(msgStats,
		s.TotalTasks, s.PendingTasks, s.InProgressTasks, s.CompletedTasks, s.OverdueTasks,
		s.HighPriority, s.MediumPriority, s.LowPriority)
}
