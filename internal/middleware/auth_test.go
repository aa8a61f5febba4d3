package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketdesk/internal/model"
	"ticketdesk/pkg/response"
	"ticketdesk/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
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

type fakeManager struct {
	payload scope.Payload
	err     error
}

func (f *fakeManager) CreateToken(p scope.Payload) (string, error) { return "token", nil }
func (f *fakeManager) Verify(token string) (scope.Payload, error)  { return f.payload, f.err }

func newAuthRouter(mgr scope.Manager, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := New(&testLogger{}, mgr)

	r := gin.New()
	handlers := []gin.HandlerFunc{m.Auth()}
	if len(roles) > 0 {
		handlers = append(handlers, m.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		p, _ := scope.GetPayloadFromContext(c.Request.Context())
		response.OK(c, gin.H{"user_id": p.UserID})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	r := newAuthRouter(&fakeManager{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	r := newAuthRouter(&fakeManager{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "token-without-scheme")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	r := newAuthRouter(&fakeManager{err: errors.New("expired")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthSetsPayload(t *testing.T) {
	r := newAuthRouter(&fakeManager{payload: scope.Payload{UserID: "u1", Role: model.RoleUser}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestRequireRole(t *testing.T) {
	mgr := &fakeManager{payload: scope.Payload{UserID: "u1", Role: model.RoleUser}}
	r := newAuthRouter(mgr, model.RoleAdmin, model.RoleAgent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	mgr.payload.Role = model.RoleAgent
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
