package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ticketdesk/config"
	"ticketdesk/internal/model"
	"ticketdesk/internal/notification"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger implements log.Logger for testing.
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

// fakeUseCase is a scriptable notification.UseCase for handler tests.
type fakeUseCase struct {
	published   []notification.PublishInput
	publishErr  error
	history     []model.Notification
	historyErr  error
	historyIn   notification.HistoryInput
	markReadErr error
	markReadID  string
}

func (f *fakeUseCase) Run()                                            {}
func (f *fakeUseCase) Shutdown(ctx context.Context) error              { return nil }
func (f *fakeUseCase) Subscribe(userID string, ch notification.Channel)   {}
func (f *fakeUseCase) Unsubscribe(userID string, ch notification.Channel) {}

func (f *fakeUseCase) Publish(ctx context.Context, ip notification.PublishInput) (model.Notification, error) {
	if f.publishErr != nil {
		return model.Notification{}, f.publishErr
	}
	f.published = append(f.published, ip)
	return model.Notification{
		ID:               "n-1",
		UserID:           ip.UserID,
		Message:          ip.Message,
		TicketID:         ip.TicketID,
		NotificationType: ip.NotificationType,
		CreatedAt:        time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}, nil
}

func (f *fakeUseCase) History(ctx context.Context, ip notification.HistoryInput) ([]model.Notification, error) {
	f.historyIn = ip
	return f.history, f.historyErr
}

func (f *fakeUseCase) MarkRead(ctx context.Context, id string) error {
	f.markReadID = id
	return f.markReadErr
}

func newTestRouter(uc notification.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(uc, &testLogger{}, config.WebSocketConfig{SendBufferSize: 8})
	h.RegisterRoutes(r.Group("/"))
	return r
}

func TestNotifyQueued(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	body := `{"user_id":"u1","message":"ticket updated","ticket_id":"t1","notification_type":"ticket_update"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)

	var resp struct {
		Status       string             `json:"status"`
		Notification model.Notification `json:"notification"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "queued", resp.Status)
	assert.Equal(t, "u1", resp.Notification.UserID)
	assert.Equal(t, "ticket updated", resp.Notification.Message)

	require.Len(t, uc.published, 1)
	assert.Equal(t, "ticket_update", uc.published[0].NotificationType)
}

func TestNotifyRejectsMissingFields(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notify", strings.NewReader(`{"user_id":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, uc.published)
}

func TestNotifyValidationErrorFromUseCase(t *testing.T) {
	uc := &fakeUseCase{publishErr: notification.ErrTypeRequired}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	body := `{"user_id":"u1","message":"m","notification_type":"bogus"}`
	req := httptest.NewRequest(http.MethodPost, "/notify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistoryReturnsRecords(t *testing.T) {
	uc := &fakeUseCase{
		history: []model.Notification{
			{ID: "n2", UserID: "u1", Message: "second"},
			{ID: "n1", UserID: "u1", Message: "first"},
		},
	}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notifications/u1?limit=5", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", uc.historyIn.UserID)
	assert.Equal(t, int64(5), uc.historyIn.Limit)

	var resp struct {
		Data []model.Notification `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "n2", resp.Data[0].ID)
}

func TestMarkRead(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/notifications/u1/read/n1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "n1", uc.markReadID)
}

func TestMarkReadNotFound(t *testing.T) {
	uc := &fakeUseCase{markReadErr: notification.ErrNotFound}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/notifications/u1/read/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
