package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-assistant/config"
	"task-assistant/internal/conversation"
	"task-assistant/pkg/log"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		TaskStore: config.TaskStoreConfig{
			Driver:       config.TaskStoreDriverDocstore,
			DocstorePath: t.TempDir(),
		},
		Conversation: config.ConversationConfig{Timezone: "UTC", HistoryLimit: 10},
	}
}

func TestBuild_EndToEnd(t *testing.T) {
	a, err := Build(context.Background(), testConfig(t), log.NewNop())
	require.NoError(t, err)

	now := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)
	run := func(text string, cc conversation.Context) conversation.TurnOutput {
		return a.UseCase.HandleTurn(context.Background(), conversation.TurnInput{Text: text, Context: cc, Now: now})
	}

	out := run("create task buy milk tomorrow", conversation.Context{})
	assert.Contains(t, out.Response, "Task created")

	out = run("mark task 1 as done", out.Context)
	assert.Contains(t, out.Response, "Task updated")

	tasks, err := a.Store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "buy milk", tasks[0].Title)
	assert.Equal(t, "completed", string(tasks[0].Status))

	out = run("delete milk", out.Context)
	assert.Contains(t, out.Response, "Task deleted")

	out = run("what is this", out.Context)
	assert.NotEmpty(t, out.Response)
}

func TestNewTaskStore_UnknownDriver(t *testing.T) {
	a, err := Build(context.Background(), testConfig(t), log.NewNop())
	require.NoError(t, err)

	_, err = NewTaskStore(config.TaskStoreConfig{Driver: "memos"}, a.Dates, log.NewNop())
	assert.Error(t, err)
}
