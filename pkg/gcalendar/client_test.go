package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"task-assistant/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestNewClientFromCredentials(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.json")

	t.Run("broken credentials", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(`{"broken":true}`), tokenPath); err == nil {
			t.Error("expected decoding failure")
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), tokenPath); err == nil {
			t.Error("expected missing token error")
		}
	})

	t.Run("installed app with token file", func(t *testing.T) {
		credsPath := filepath.Join(dir, "credentials.json")
		os.WriteFile(credsPath, []byte(installedCreds), 0o600)
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)

		if _, err := gcalendar.NewClientFromCredentialsFile(ctx, credsPath); err != nil {
			t.Fatalf("expected client, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsFile(ctx, filepath.Join(dir, "nope.json")); err == nil {
			t.Error("expected read error")
		}
	})
}

func TestCreateAllDayEvent(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/calendar/v3/calendars/primary/events" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"id": "event-123", "summary": "Buy milk", "htmlLink": "https://calendar.google.com/event-uri"}`))
	})

	date := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	event, err := client.CreateAllDayEvent(context.Background(), gcalendar.AllDayEventRequest{
		Summary: "Buy milk",
		Date:    date,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.ID != "event-123" || event.Date != "2025-12-31" {
		t.Errorf("unexpected event: %+v", event)
	}

	start := got["start"].(map[string]any)
	end := got["end"].(map[string]any)
	if start["date"] != "2025-12-31" || end["date"] != "2026-01-01" {
		t.Errorf("unexpected span: %v -> %v", start, end)
	}
}

func TestCreateAllDayEvent_Errors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	ctx := context.Background()

	_, err := client.CreateAllDayEvent(ctx, gcalendar.AllDayEventRequest{Summary: " ", Date: time.Now()})
	if !errors.Is(err, gcalendar.ErrEmptySummary) {
		t.Errorf("expected ErrEmptySummary, got %v", err)
	}

	_, err = client.CreateAllDayEvent(ctx, gcalendar.AllDayEventRequest{CalendarID: "work", Summary: "x", Date: time.Now()})
	if err == nil {
		t.Error("expected API error")
	}
}
