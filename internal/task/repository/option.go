package repository

import (
	"time"

	"task-assistant/internal/model"
)

// CreateTaskOptions holds the fields for a new task.
type CreateTaskOptions struct {
	Title       string
	Description string
	Priority    model.Priority
	Status      model.Status
	DueDate     *time.Time
}

// UpdateTaskOptions is a partial update; zero values are left untouched.
type UpdateTaskOptions struct {
	Status   model.Status
	Priority model.Priority
}

// IsEmpty reports whether the update carries no field at all.
func (o UpdateTaskOptions) IsEmpty() bool {
	return o.Status == "" && o.Priority == ""
}
