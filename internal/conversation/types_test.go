package conversation

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-assistant/internal/model"
)

func TestContextClone(t *testing.T) {
	selected := model.TaskSummary{ID: "1", Title: "Buy milk"}
	orig := Context{
		History: []Message{{Role: RoleUser, Content: "hi"}},
		PendingAction: &PendingAction{
			Type:         PendingSelectStatus,
			Tasks:        []model.TaskSummary{selected},
			SelectedTask: &selected,
		},
		LastTaskID: "1",
	}

	cp := orig.Clone()
	cp.History[0].Content = "changed"
	cp.PendingAction.Tasks[0].Title = "changed"
	cp.PendingAction.SelectedTask.Title = "changed"
	cp.PendingAction.Type = PendingSelectTask

	assert.Equal(t, "hi", orig.History[0].Content)
	assert.Equal(t, "Buy milk", orig.PendingAction.Tasks[0].Title)
	assert.Equal(t, "Buy milk", orig.PendingAction.SelectedTask.Title)
	assert.Equal(t, PendingSelectStatus, orig.PendingAction.Type)
	assert.Equal(t, "1", cp.LastTaskID)
}

func TestContextClone_Empty(t *testing.T) {
	cp := Context{}.Clone()
	assert.Nil(t, cp.PendingAction)
	assert.Nil(t, cp.History)
}

func TestIntentMarshalJSON(t *testing.T) {
	due := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
	it := Intent{Kind: IntentCreateTask, TaskTitle: "buy milk", Priority: model.PriorityMedium, DueDate: &due}

	data, err := json.Marshal(it)
	require.NoError(t, err)
	assert.JSONEq(t, `{"intent":"create_task","taskTitle":"buy milk","priority":"medium","dueDate":"2025-01-11T00:00:00.000Z"}`, string(data))

	data, err = json.Marshal(Intent{Kind: IntentFilterTasks, FilterType: FilterPriority, FilterValue: "high"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"intent":"filter_tasks","filterType":"priority","filterValue":"high"}`, string(data))
}
