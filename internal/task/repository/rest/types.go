package rest

import (
	"fmt"
	"time"
)

// APIError is returned for any non-success HTTP status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("task API error %d: %s", e.StatusCode, e.Body)
}

// TaskDTO is the task object on the wire. Document stores expose "_id",
// relational ones "id"; both are accepted.
type TaskDTO struct {
	ID          string     `json:"id,omitempty"`
	MongoID     string     `json:"_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Identifier returns whichever id field the server populated.
func (t TaskDTO) Identifier() string {
	if t.ID != "" {
		return t.ID
	}
	return t.MongoID
}

// CreateTaskRequest is the body for POST /api/tasks.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// UpdateTaskRequest is the body for PATCH /api/tasks/{id}.
type UpdateTaskRequest struct {
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// StatsDTO is the body of GET /api/tasks/stats.
type StatsDTO struct {
	TotalTasks      int `json:"totalTasks"`
	PendingTasks    int `json:"pendingTasks"`
	InProgressTasks int `json:"inProgressTasks"`
	CompletedTasks  int `json:"completedTasks"`
	OverdueTasks    int `json:"overdueTasks"`
	HighPriority    int `json:"highPriority"`
	MediumPriority  int `json:"mediumPriority"`
	LowPriority     int `json:"lowPriority"`
}
