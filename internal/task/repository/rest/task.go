package rest

import (
	"context"
	"strings"

	"task-assistant/internal/model"
	"task-assistant/internal/task/repository"
	pkgLog "task-assistant/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a task store backed by the task REST API.
func New(client *Client, l pkgLog.Logger) repository.TaskStore {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) List(ctx context.Context) ([]model.TaskSummary, error) {
	dtos, err := r.client.ListTasks(ctx)
	if err != nil {
		r.l.Errorf(ctx, "rest repository: List: %v", err)
		return nil, err
	}

	tasks := make([]model.TaskSummary, 0, len(dtos))
	for _, d := range dtos {
		tasks = append(tasks, dtoToTask(d).Summary())
	}
	return tasks, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if strings.TrimSpace(opt.Title) == "" {
		return model.Task{}, repository.ErrEmptyTitle
	}

	status := opt.Status
	if status == "" {
		status = model.StatusPending
	}
	priority := opt.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	dto, err := r.client.CreateTask(ctx, CreateTaskRequest{
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    string(priority),
		Status:      string(status),
		DueDate:     opt.DueDate,
	})
	if err != nil {
		r.l.Errorf(ctx, "rest repository: Create: %v", err)
		return model.Task{}, err
	}
	return dtoToTask(*dto), nil
}

func (r *implRepository) Update(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	if opt.IsEmpty() {
		return model.Task{}, repository.ErrEmptyUpdate
	}

	dto, err := r.client.UpdateTask(ctx, id, UpdateTaskRequest{
		Status:   string(opt.Status),
		Priority: string(opt.Priority),
	})
	if err != nil {
		r.l.Errorf(ctx, "rest repository: Update: %v", err)
		return model.Task{}, err
	}
	return dtoToTask(*dto), nil
}

func (r *implRepository) Remove(ctx context.Context, id string) error {
	if err := r.client.DeleteTask(ctx, id); err != nil {
		r.l.Errorf(ctx, "rest repository: Remove: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) Stats(ctx context.Context) (model.TaskStats, error) {
	s, err := r.client.GetStats(ctx)
	if err != nil {
		r.l.Errorf(ctx, "rest repository: Stats: %v", err)
		return model.TaskStats{}, err
	}
	return model.TaskStats{
		TotalTasks:      s.TotalTasks,
		PendingTasks:    s.PendingTasks,
		InProgressTasks: s.InProgressTasks,
		CompletedTasks:  s.CompletedTasks,
		OverdueTasks:    s.OverdueTasks,
		HighPriority:    s.HighPriority,
		MediumPriority:  s.MediumPriority,
		LowPriority:     s.LowPriority,
	}, nil
}

// dtoToTask converts the wire object; unknown status/priority strings are kept as-is.
func dtoToTask(d TaskDTO) model.Task {
	t := model.Task{
		ID:          d.Identifier(),
		Title:       d.Title,
		Description: d.Description,
		Status:      model.Status(d.Status),
		Priority:    model.Priority(d.Priority),
		DueDate:     d.DueDate,
	}
	if s, ok := model.ParseStatus(d.Status); ok {
		t.Status = s
	}
	if p, ok := model.ParsePriority(d.Priority); ok {
		t.Priority = p
	}
	if d.CreatedAt != nil {
		t.CreatedAt = *d.CreatedAt
	}
	if d.UpdatedAt != nil {
		t.UpdatedAt = *d.UpdatedAt
	}
	return t
}
