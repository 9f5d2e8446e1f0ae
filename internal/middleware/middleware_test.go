package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	pkgLog "task-assistant/pkg/log"
	"task-assistant/pkg/telegram"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := c.Request.Context().Value(pkgLog.RequestIDKey).(string)
		c.String(http.StatusOK, id)
	})
	r.GET("/", handlers...)
	return r
}

func do(r http.Handler, header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	if header != "" {
		req.Header.Set(header, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	mw := New(&mockLogger{}, 10)
	r := newEngine(mw.RateLimit())

	assert.Equal(t, http.StatusOK, do(r, "", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, "", "").Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(&mockLogger{}, 0)
	r := newEngine(mw.RateLimit())

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, do(r, "", "").Code)
	}
}

func TestRequestID(t *testing.T) {
	mw := New(&mockLogger{}, 0)
	r := newEngine(mw.RequestID())

	w := do(r, RequestIDHeader, "req-42")
	assert.Equal(t, "req-42", w.Body.String())
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))

	w = do(r, "", "")
	assert.Len(t, w.Body.String(), 36)
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))
}

func TestTelegramSecret(t *testing.T) {
	mw := New(&mockLogger{}, 0)

	r := newEngine(mw.TelegramSecret("s3cret"))
	assert.Equal(t, http.StatusOK, do(r, telegram.SecretTokenHeader, "s3cret").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, telegram.SecretTokenHeader, "wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "", "").Code)

	open := newEngine(mw.TelegramSecret(""))
	assert.Equal(t, http.StatusOK, do(open, "", "").Code)
}
