package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"task-assistant/pkg/telegram"
)

func TestBot(t *testing.T) {
	var sent []string
	var secret string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)

		switch {
		case strings.HasSuffix(r.URL.Path, "/setWebhook"):
			if req["url"] == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid url"}`))
				return
			}
			secret, _ = req["secret_token"].(string)
			w.Write([]byte(`{"ok": true}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			text := req["text"].(string)
			if text == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			sent = append(sent, text)
			w.Write([]byte(`{"ok": true}`))
		case strings.HasSuffix(r.URL.Path, "/sendChatAction"):
			w.Write([]byte(`{"ok": true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)
	ctx := context.Background()

	t.Run("SetWebhook Success", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "https://example.com/webhook/telegram", "s3cret"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if secret != "s3cret" {
			t.Errorf("secret token not sent, got %q", secret)
		}
	})

	t.Run("SetWebhook API Failed", func(t *testing.T) {
		err := bot.SetWebhook(ctx, "cause_error", "")
		if err == nil || !strings.Contains(err.Error(), "invalid url") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SendMessage Success", func(t *testing.T) {
		sent = nil
		if err := bot.SendMessage(ctx, 12345, "Hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sent) != 1 || sent[0] != "Hello" {
			t.Errorf("unexpected sent messages: %v", sent)
		}
	})

	t.Run("SendMessage splits long text", func(t *testing.T) {
		sent = nil
		long := strings.Repeat("a", telegram.MaxMessageLength) + "\nb"
		if err := bot.SendMessage(ctx, 12345, long); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sent) != 2 {
			t.Fatalf("expected 2 chunks, got %d", len(sent))
		}
	})

	t.Run("SendMessage HTTP Failed", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 12345, "cause_500"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("SendTyping", func(t *testing.T) {
		if err := bot.SendTyping(ctx, 12345); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSplitMessage(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{name: "short", text: "hello", limit: 10, want: []string{"hello"}},
		{name: "line boundary", text: "aaa\nbbb\nccc", limit: 8, want: []string{"aaa\nbbb\n", "ccc"}},
		{name: "hard split", text: "abcdefghij", limit: 4, want: []string{"abcd", "efgh", "ij"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := telegram.SplitMessage(tt.text, tt.limit)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("SplitMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
