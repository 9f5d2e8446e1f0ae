package model

import (
	"strings"
	"time"
)

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Status is the lifecycle state of a task. "overdue" is a display state
// derived from the due date and is never stored.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// ParsePriority normalizes a priority word. ok is false for unknown values.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "urgent", "important":
		return PriorityHigh, true
	case "medium", "normal":
		return PriorityMedium, true
	case "low":
		return PriorityLow, true
	}
	return "", false
}

// ParseStatus normalizes a status word. ok is false for unknown values.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "todo":
		return StatusPending, true
	case "in-progress", "in progress", "in_progress", "progress", "ongoing":
		return StatusInProgress, true
	case "completed", "complete", "done":
		return StatusCompleted, true
	}
	return "", false
}

// ParsePriorityOr is ParsePriority with def for unknown values.
func ParsePriorityOr(s string, def Priority) Priority {
	if p, ok := ParsePriority(s); ok {
		return p
	}
	return def
}

// ParseStatusOr is ParseStatus with def for unknown values.
func ParseStatusOr(s string, def Status) Status {
	if st, ok := ParseStatus(s); ok {
		return st
	}
	return def
}

// Task is a task as returned by the task store.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Summary projects a Task into the read-only view the interpreter works with.
func (t Task) Summary() TaskSummary {
	return TaskSummary{
		ID:       t.ID,
		Title:    t.Title,
		Status:   t.Status,
		Priority: t.Priority,
		DueDate:  t.DueDate,
	}
}

// TaskSummary is the read-only projection of a task used for listing,
// filtering and reference resolution. Priority and DueDate may be empty.
type TaskSummary struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Status   Status     `json:"status"`
	Priority Priority   `json:"priority,omitempty"`
	DueDate  *time.Time `json:"dueDate,omitempty"`
}

// TaskStats holds aggregate counts reported by the task store.
type TaskStats struct {
	TotalTasks      int `json:"totalTasks"`
	PendingTasks    int `json:"pendingTasks"`
	InProgressTasks int `json:"inProgressTasks"`
	CompletedTasks  int `json:"completedTasks"`
	OverdueTasks    int `json:"overdueTasks"`
	HighPriority    int `json:"highPriority"`
	MediumPriority  int `json:"mediumPriority"`
	LowPriority     int `json:"lowPriority"`
}
