package gateway

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ticketdesk/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (m *testLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Panic(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Panicf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// closeNotifyRecorder adds the CloseNotify method httputil.ReverseProxy
// reaches through gin's response writer, which httptest.ResponseRecorder
// does not provide.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newCloseNotifyRecorder() *closeNotifyRecorder {
	return &closeNotifyRecorder{httptest.NewRecorder(), make(chan bool, 1)}
}

func (w *closeNotifyRecorder) CloseNotify() <-chan bool { return w.closed }

func newBackend(t *testing.T, name string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Backend", name)
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, name+":"+r.Method+":"+r.URL.Path)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestGateway(t *testing.T) (*gin.Engine, *httptest.Server, *httptest.Server, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tickets := newBackend(t, "tickets")
	auth := newBackend(t, "auth")
	notification := newBackend(t, "notification")

	h, err := New(&testLogger{}, config.GatewayConfig{
		TicketsURL:      tickets.URL,
		AuthURL:         auth.URL,
		NotificationURL: notification.URL,
	})
	require.NoError(t, err)

	r := gin.New()
	h.RegisterRoutes(r)
	return r, tickets, auth, notification
}

func TestForwardByPrefix(t *testing.T) {
	r, _, _, _ := newTestGateway(t)

	tcs := []struct {
		path    string
		backend string
	}{
		{"/tickets", "tickets"},
		{"/tickets/abc/comments", "tickets"},
		{"/auth/login", "auth"},
		{"/notify", "notification"},
		{"/notifications/u1", "notification"},
		{"/ws/u1", "notification"},
	}
	for _, tc := range tcs {
		t.Run(tc.path, func(t *testing.T) {
			w := newCloseNotifyRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.backend, w.Header().Get("X-Backend"))
			assert.Contains(t, w.Body.String(), tc.path)
		})
	}
}

func TestForwardPreservesMethodAndBody(t *testing.T) {
	r, _, _, _ := newTestGateway(t)

	for _, method := range []string{http.MethodPost, http.MethodPatch, http.MethodDelete} {
		w := newCloseNotifyRecorder()
		req := httptest.NewRequest(method, "/tickets/t1", strings.NewReader(`{}`))
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "tickets:"+method)
	}
}

func TestUnknownServiceReturns404(t *testing.T) {
	r, _, _, _ := newTestGateway(t)

	w := newCloseNotifyRecorder()
	req := httptest.NewRequest(http.MethodGet, "/billing/invoices", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unknown service")
}

func TestUpstreamDownReturns502(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()

	h, err := New(&testLogger{}, config.GatewayConfig{
		TicketsURL:      dead.URL,
		AuthURL:         dead.URL,
		NotificationURL: dead.URL,
	})
	require.NoError(t, err)

	r := gin.New()
	h.RegisterRoutes(r)

	w := newCloseNotifyRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tickets", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
