package repository

import (
	"context"

	"task-assistant/internal/model"
)

// TaskStore is the external task store the interpreter reads from and issues
// commands against. It is the sole source of truth for task existence and order.
type TaskStore interface {
	List(ctx context.Context) ([]model.TaskSummary, error)
	Create(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	Update(ctx context.Context, id string, opt UpdateTaskOptions) (model.Task, error)
	Remove(ctx context.Context, id string) error
	Stats(ctx context.Context) (model.TaskStats, error)
}
