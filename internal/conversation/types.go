package conversation

import (
	"encoding/json"
	"time"

	"task-assistant/internal/model"
)

// Intent is the classified goal of one utterance. Kind selects the variant;
// only the fields of that variant are meaningful.
type Intent struct {
	Kind IntentKind `json:"intent"`

	// create_task
	TaskTitle string         `json:"taskTitle,omitempty"`
	Priority  model.Priority `json:"priority,omitempty"`
	DueDate   *time.Time     `json:"dueDate,omitempty"`

	// filter_tasks
	FilterType  FilterType `json:"filterType,omitempty"`
	FilterValue string     `json:"filterValue,omitempty"`

	// update_task, delete_task
	Action         UpdateAction `json:"action,omitempty"`
	TaskIdentifier string       `json:"taskIdentifier,omitempty"`
	NewValue       string       `json:"newValue,omitempty"`

	// conversation
	IsGreeting bool `json:"isGreeting,omitempty"`
}

// DueDateLayout renders dueDate as ISO-8601 with milliseconds.
const DueDateLayout = "2006-01-02T15:04:05.000Z07:00"

// MarshalJSON writes dueDate in DueDateLayout.
func (i Intent) MarshalJSON() ([]byte, error) {
	type plain Intent
	out := struct {
		plain
		DueDate string `json:"dueDate,omitempty"`
	}{plain: plain(i)}
	if i.DueDate != nil {
		out.DueDate = i.DueDate.Format(DueDateLayout)
	}
	return json.Marshal(out)
}

// ConversationIntent is the catch-all intent.
func ConversationIntent(greeting bool) Intent {
	return Intent{Kind: IntentConversation, IsGreeting: greeting}
}

// ClassifyResult carries the intent plus how it was obtained. Intent is
// always usable; Err explains a degraded classification.
type ClassifyResult struct {
	Intent Intent
	Source Source
	Err    error
}

// PendingAction is saved disambiguation state.
type PendingAction struct {
	Type         PendingType         `json:"type"`
	Tasks        []model.TaskSummary `json:"tasks,omitempty"`
	SelectedTask *model.TaskSummary  `json:"selectedTask,omitempty"`
}

// Message is one entry of the conversation history.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Context is the per-session state carried across turns. It is treated as
// an immutable value: every turn returns a new one.
type Context struct {
	PendingAction *PendingAction `json:"pendingAction,omitempty"`
	History       []Message      `json:"conversationHistory"`
	LastTaskID    string         `json:"lastTaskId,omitempty"`
	LastTaskTitle string         `json:"lastTaskTitle,omitempty"`
}

// Clone returns a deep copy sharing no slices or pointers with c.
func (c Context) Clone() Context {
	out := c
	if c.History != nil {
		out.History = append([]Message(nil), c.History...)
	}
	if c.PendingAction != nil {
		pa := *c.PendingAction
		if pa.Tasks != nil {
			pa.Tasks = append([]model.TaskSummary(nil), pa.Tasks...)
		}
		if pa.SelectedTask != nil {
			t := *pa.SelectedTask
			pa.SelectedTask = &t
		}
		out.PendingAction = &pa
	}
	return out
}

// TurnInput is one user utterance. Now is the reference time for date
// expressions; zero means the use case's clock.
type TurnInput struct {
	Text    string
	Context Context
	Now     time.Time
}

// TurnOutput is the reply and the context to use for the next turn.
type TurnOutput struct {
	Response string
	Context  Context
}
