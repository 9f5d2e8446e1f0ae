package llmprovider

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"task-assistant/config"
)

type mockProvider struct {
	name      string
	failTimes int
	delay     time.Duration
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.failTimes < 0 || m.callCount <= m.failTimes {
		return nil, errors.New("mock provider error")
	}
	return &Response{
		Text:         "response from " + m.name,
		ProviderName: m.name,
		ModelName:    m.name + "-model",
		Usage:        &Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func userRequest(text string) *Request {
	return &Request{Messages: []Message{{Role: "user", Text: text}}}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary"}
	secondary := &mockProvider{name: "secondary"}
	logger := &mockLogger{}
	m := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 3}, logger)

	resp, err := m.GenerateContent(context.Background(), userRequest("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("expected primary, got %s", resp.ProviderName)
	}
	if secondary.callCount != 0 {
		t.Errorf("secondary should not be called, got %d calls", secondary.callCount)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("expected one success log, got %d", len(logger.infoMessages))
	}
}

func TestGenerateContent_RetryThenSucceed(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: 2}
	m := NewManager([]Provider{primary}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

	resp, err := m.GenerateContent(context.Background(), userRequest("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary.callCount != 3 {
		t.Errorf("expected 3 calls, got %d", primary.callCount)
	}
	if resp.Text != "response from primary" {
		t.Errorf("unexpected text: %s", resp.Text)
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: -1}
	secondary := &mockProvider{name: "secondary"}
	logger := &mockLogger{}
	m := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2}, logger)

	resp, err := m.GenerateContent(context.Background(), userRequest("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("expected secondary, got %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("expected primary retried twice, got %d", primary.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("expected one failure log, got %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	m := NewManager([]Provider{
		&mockProvider{name: "a", failTimes: -1},
		&mockProvider{name: "b", failTimes: -1},
	}, &Config{FallbackEnabled: true}, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), userRequest("hi"))
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
	var pErr *ProviderError
	if !errors.As(err, &pErr) || pErr.Provider != "b" {
		t.Errorf("expected ProviderError for b, got %v", err)
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: -1}
	secondary := &mockProvider{name: "secondary"}
	m := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: false}, &mockLogger{})

	if _, err := m.GenerateContent(context.Background(), userRequest("hi")); err == nil {
		t.Fatal("expected error")
	}
	if secondary.callCount != 0 {
		t.Errorf("secondary should not be called")
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", delay: time.Second}
	m := NewManager([]Provider{slow}, &Config{MaxTotalTimeout: 20 * time.Millisecond}, &mockLogger{})

	start := time.Now()
	_, err := m.GenerateContent(context.Background(), userRequest("hi"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Errorf("timeout not enforced")
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	m := NewManager(nil, nil, &mockLogger{})
	if _, err := m.GenerateContent(context.Background(), userRequest("hi")); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestGenerateContent_InvalidRequest(t *testing.T) {
	m := NewManager([]Provider{&mockProvider{name: "a"}}, nil, &mockLogger{})
	if _, err := m.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestInitializeProviders(t *testing.T) {
	ctx := context.Background()

	t.Run("sorted and skips broken", func(t *testing.T) {
		providers, err := InitializeProviders(ctx, config.LLMConfig{Providers: []config.ProviderConfig{
			{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "k", Model: "deepseek-chat"},
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "gemini-2.5-flash"},
			{Name: "unknown", Enabled: true, Priority: 3, APIKey: "k"},
			{Name: "qwen", Enabled: true, Priority: 4},
			{Name: "qwen", Enabled: false, Priority: 5, APIKey: "k"},
		}}, &mockLogger{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(providers) != 2 {
			t.Fatalf("expected 2 providers, got %d", len(providers))
		}
		if providers[0].Name() != "gemini" || providers[1].Name() != "deepseek" {
			t.Errorf("unexpected order: %s, %s", providers[0].Name(), providers[1].Name())
		}
	})

	t.Run("qwen defaults", func(t *testing.T) {
		providers, err := InitializeProviders(ctx, config.LLMConfig{Providers: []config.ProviderConfig{
			{Name: "qwen", Enabled: true, Priority: 1, APIKey: "k"},
		}}, &mockLogger{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if providers[0].Name() != "qwen" || !strings.HasPrefix(providers[0].Model(), "qwen") {
			t.Errorf("unexpected provider: %s/%s", providers[0].Name(), providers[0].Model())
		}
	})

	t.Run("none enabled", func(t *testing.T) {
		_, err := InitializeProviders(ctx, config.LLMConfig{}, &mockLogger{})
		if !errors.Is(err, ErrNoProvidersConfigured) {
			t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})
}
