package docstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"task-assistant/internal/model"
	"task-assistant/internal/task/repository"
	pkgLog "task-assistant/pkg/log"
)

type implRepository struct {
	root string
	loc  *time.Location
	l    pkgLog.Logger
	mu   sync.Mutex
}

// New opens (creating if needed) a directory of markdown task files.
// Due dates are interpreted in loc; nil means UTC.
func New(root string, loc *time.Location, l pkgLog.Logger) (repository.TaskStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("docstore: root path is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("docstore: create root: %w", err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &implRepository{root: root, loc: loc, l: l}, nil
}

// List returns tasks in creation order. Unreadable files are skipped.
func (r *implRepository) List(ctx context.Context) ([]model.TaskSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	files, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.TaskSummary, 0, len(files))
	for _, f := range files {
		out = append(out, r.toTask(f).Summary())
	}
	return out, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	title := strings.TrimSpace(opt.Title)
	if title == "" {
		return model.Task{}, repository.ErrEmptyTitle
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	status := opt.Status
	if status == "" {
		status = model.StatusPending
	}
	priority := opt.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	now := timeNow()
	meta := taskMeta{
		Schema:    schemaVersion,
		ID:        newID(),
		Title:     title,
		Status:    string(status),
		Priority:  string(priority),
		CreatedAt: &now,
		UpdatedAt: &now,
	}
	if opt.DueDate != nil {
		meta.Due = opt.DueDate.In(r.loc).Format(dueLayout)
	}

	f := &taskFile{
		meta: meta,
		body: opt.Description,
		path: filepath.Join(r.root, fmt.Sprintf("%s__%s%s", meta.ID, slugify(title), fileExt)),
	}
	if err := writeTaskFile(f); err != nil {
		r.l.Errorf(ctx, "docstore repository: Create: %v", err)
		return model.Task{}, err
	}
	return r.toTask(f), nil
}

func (r *implRepository) Update(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	if opt.IsEmpty() {
		return model.Task{}, repository.ErrEmptyUpdate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.find(id)
	if err != nil {
		return model.Task{}, err
	}
	if opt.Status != "" {
		f.meta.Status = string(opt.Status)
	}
	if opt.Priority != "" {
		f.meta.Priority = string(opt.Priority)
	}
	now := timeNow()
	f.meta.UpdatedAt = &now

	if err := writeTaskFile(f); err != nil {
		r.l.Errorf(ctx, "docstore repository: Update: %v", err)
		return model.Task{}, err
	}
	return r.toTask(f), nil
}

func (r *implRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.find(id)
	if err != nil {
		return err
	}
	if err := os.Remove(f.path); err != nil {
		r.l.Errorf(ctx, "docstore repository: Remove: %v", err)
		return err
	}
	return nil
}

// Stats counts tasks locally. Overdue means due before today and not completed.
func (r *implRepository) Stats(ctx context.Context) (model.TaskStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	files, err := r.loadAll(ctx)
	if err != nil {
		return model.TaskStats{}, err
	}

	now := timeNow().In(r.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, r.loc)

	var s model.TaskStats
	for _, f := range files {
		t := r.toTask(f)
		s.TotalTasks++
		switch t.Status {
		case model.StatusPending:
			s.PendingTasks++
		case model.StatusInProgress:
			s.InProgressTasks++
		case model.StatusCompleted:
			s.CompletedTasks++
		}
		switch t.Priority {
		case model.PriorityHigh:
			s.HighPriority++
		case model.PriorityMedium:
			s.MediumPriority++
		case model.PriorityLow:
			s.LowPriority++
		}
		if t.DueDate != nil && t.DueDate.Before(today) && t.Status != model.StatusCompleted {
			s.OverdueTasks++
		}
	}
	return s, nil
}

func (r *implRepository) loadAll(ctx context.Context) ([]*taskFile, error) {
	paths, err := filepath.Glob(filepath.Join(r.root, idPrefix+"*"+fileExt))
	if err != nil {
		return nil, err
	}

	files := make([]*taskFile, 0, len(paths))
	for _, p := range paths {
		f, err := readTaskFile(p)
		if err != nil {
			r.l.Warnf(ctx, "docstore repository: skipping %s: %v", p, err)
			continue
		}
		files = append(files, f)
	}

	// ULIDs sort by creation time.
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].meta.ID < files[j].meta.ID
	})
	return files, nil
}

func (r *implRepository) find(id string) (*taskFile, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.ContainsAny(id, `/\*?[`) {
		return nil, repository.ErrTaskNotFound
	}
	paths, err := filepath.Glob(filepath.Join(r.root, id+"__*"+fileExt))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, repository.ErrTaskNotFound
	}
	return readTaskFile(paths[0])
}

func (r *implRepository) toTask(f *taskFile) model.Task {
	t := model.Task{
		ID:          f.meta.ID,
		Title:       f.meta.Title,
		Description: f.body,
		Status:      model.Status(f.meta.Status),
		Priority:    model.Priority(f.meta.Priority),
	}
	if f.meta.Due != "" {
		if d, err := time.ParseInLocation(dueLayout, f.meta.Due, r.loc); err == nil {
			t.DueDate = &d
		}
	}
	if f.meta.CreatedAt != nil {
		t.CreatedAt = *f.meta.CreatedAt
	}
	if f.meta.UpdatedAt != nil {
		t.UpdatedAt = *f.meta.UpdatedAt
	}
	return t
}
