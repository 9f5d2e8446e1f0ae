package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Host  string         `json:"host"`
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "Task Assistant API", parsed.Info.Title)
	assert.Equal(t, "localhost:8080", parsed.Host)
	assert.Contains(t, parsed.Paths, "/api/v1/conversation/turns")
	assert.Contains(t, parsed.Paths, "/api/v1/conversation/sessions/{id}")
}
