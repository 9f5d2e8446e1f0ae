package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"task-assistant/internal/model"
)

func TestResolve(t *testing.T) {
	tasks := []model.TaskSummary{
		{ID: "a", Title: "Buy groceries"},
		{ID: "b", Title: "Write report"},
		{ID: "c", Title: "Call 2 clients"},
	}

	tests := []struct {
		name       string
		identifier string
		wantID     string
		wantOK     bool
	}{
		{name: "ordinal", identifier: "2", wantID: "b", wantOK: true},
		{name: "ordinal with hash", identifier: "#3", wantID: "c", wantOK: true},
		{name: "ordinal with spaces", identifier: " 1 ", wantID: "a", wantOK: true},
		{name: "ordinal out of range", identifier: "7", wantOK: false},
		{name: "zero", identifier: "0", wantOK: false},
		{name: "substring case-insensitive", identifier: "GROCERIES", wantID: "a", wantOK: true},
		{name: "first match wins", identifier: "r", wantID: "a", wantOK: true},
		{name: "out-of-range number falls back to title", identifier: "2 clients", wantID: "c", wantOK: true},
		{name: "no match", identifier: "gym", wantOK: false},
		{name: "empty", identifier: "", wantOK: false},
		{name: "blank", identifier: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.identifier, tasks)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, got.ID)
			}
		})
	}
}

func TestResolve_EmptyList(t *testing.T) {
	_, ok := Resolve("1", nil)
	assert.False(t, ok)
}
