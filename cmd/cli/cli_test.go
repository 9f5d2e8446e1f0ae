package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`task_store:
  driver: docstore
  docstore_path: %s
conversation:
  timezone: UTC
llm:
  fallback_enabled: false
`, filepath.Join(dir, "tasks"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", writeConfig(t)}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseDateCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"tomorrow", []string{"buy", "milk", "tomorrow"}, "2025-01-11\n"},
		{"next friday", []string{"report next friday"}, "2025-01-17\n"},
		{"no date", []string{"buy milk"}, "no date found\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", append([]string{"parse-date", "--ref", "2025-01-10"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestParseDateCommandBadRef(t *testing.T) {
	_, err := run(t, "", "parse-date", "--ref", "10/01/2025", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestClassifyCommand(t *testing.T) {
	out, err := run(t, "", "classify", "--ref", "2025-01-10", "delete task 2")
	require.NoError(t, err)
	assert.Contains(t, out, `"intent": "delete_task"`)
	assert.Contains(t, out, `"taskIdentifier": "2"`)
	assert.Contains(t, out, `"source": "rule"`)
	assert.NotContains(t, out, `"error"`)
}

func TestClassifyCommandDegraded(t *testing.T) {
	out, err := run(t, "", "classify", "--ref", "2025-01-10", "xyzzy plugh")
	require.NoError(t, err)
	assert.Contains(t, out, `"source": "degraded"`)
	assert.Contains(t, out, `"error"`)
}

func TestChatCommand(t *testing.T) {
	out, err := run(t, "create task buy milk tomorrow\n\nshow all my tasks\nexit\nshow all my tasks\n", "chat")
	require.NoError(t, err)
	assert.Contains(t, out, "Task created")
	assert.Contains(t, out, "buy milk")
	assert.Equal(t, 1, strings.Count(out, "📋 Your tasks (1)"))
}

func TestChatCommandEOF(t *testing.T) {
	out, err := run(t, "hello", "chat")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "> \n"))
}

func TestGCalAuthCommandMissingCredentials(t *testing.T) {
	_, err := run(t, "", "gcal-auth")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no credentials file")

	_, err = run(t, "", "gcal-auth", "--credentials", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read credentials file")
}

func TestClassifyCommandDueDate(t *testing.T) {
	out, err := run(t, "", "classify", "--ref", "2025-01-10", "create task buy milk tomorrow")
	require.NoError(t, err)
	assert.Contains(t, out, `"intent": "create_task"`)
	assert.Contains(t, out, `"dueDate": "2025-01-11T00:00:00.000Z"`)
}
