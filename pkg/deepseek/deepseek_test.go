package deepseek_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"task-assistant/pkg/deepseek"
)

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"message": "invalid api key", "type": "auth"}}`))
			return
		}

		var req deepseek.Request
		json.NewDecoder(r.Body).Decode(&req)
		if req.Model != "qwen-plus" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(deepseek.Response{
			Model: req.Model,
			Choices: []deepseek.Choice{{
				Message: deepseek.Message{Role: "assistant", Content: `{"intent":"get_statistics"}`},
			}},
			Usage: deepseek.Usage{PromptTokens: 3, CompletionTokens: 4, TotalTokens: 7},
		})
	}))
	defer ts.Close()

	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		c, err := deepseek.New(deepseek.Config{APIKey: "sk-test", Model: "qwen-plus", BaseURL: ts.URL + "/"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		resp, err := c.GenerateContent(ctx, &deepseek.Request{
			Messages:       []deepseek.Message{{Role: "user", Content: "stats please"}},
			ResponseFormat: &deepseek.ResponseFormat{Type: "json_object"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != `{"intent":"get_statistics"}` {
			t.Errorf("unexpected response: %+v", resp)
		}
		if resp.Usage.TotalTokens != 7 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("API error message", func(t *testing.T) {
		c, _ := deepseek.New(deepseek.Config{APIKey: "wrong", BaseURL: ts.URL})
		_, err := c.GenerateContent(ctx, &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "hi"}},
		})
		if err == nil || !strings.Contains(err.Error(), "invalid api key") {
			t.Fatalf("expected API error, got %v", err)
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		c, err := deepseek.New(deepseek.Config{APIKey: "k"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Model() != deepseek.DefaultModel {
			t.Errorf("expected default model, got %s", c.Model())
		}
		if _, err := deepseek.New(deepseek.Config{}); err == nil {
			t.Error("expected error without API key")
		}
	})
}
