package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ticketdesk/config"
	"ticketdesk/internal/model"
	"ticketdesk/internal/notification"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWSConnection(bufferSize int) *wsConnection {
	return newWSConnection(nil, "u1", config.WebSocketConfig{SendBufferSize: bufferSize}, &testLogger{})
}

func TestWSConnectionSendBuffers(t *testing.T) {
	ws := newTestWSConnection(2)

	require.NoError(t, ws.Send(model.Notification{ID: "n1", UserID: "u1", Message: "first"}))

	var got model.Notification
	require.NoError(t, json.Unmarshal(<-ws.send, &got))
	assert.Equal(t, "n1", got.ID)
	assert.Equal(t, "first", got.Message)
}

func TestWSConnectionSendBufferFull(t *testing.T) {
	ws := newTestWSConnection(1)

	require.NoError(t, ws.Send(model.Notification{ID: "n1"}))
	assert.ErrorIs(t, ws.Send(model.Notification{ID: "n2"}), notification.ErrSendBufferFull)
}

func TestWSConnectionSendAfterClose(t *testing.T) {
	ws := newTestWSConnection(4)
	close(ws.done)

	assert.ErrorIs(t, ws.Send(model.Notification{ID: "n1"}), notification.ErrChannelClosed)
}

func TestWSConnectionWritePumpOneFramePerRecord(t *testing.T) {
	upgraded := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		conn, err := (&websocket.Upgrader{}).Upgrade(w, r, nil)
		if err != nil {
			return
		}
		upgraded <- conn
	}))
	defer srv.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer client.Close()

	serverConn := <-upgraded
	ws := newWSConnection(serverConn, "u1", config.WebSocketConfig{
		SendBufferSize: 4,
		PingInterval:   time.Minute,
		WriteWait:      time.Second,
	}, &testLogger{})

	// A burst: both records are queued before the pump wakes up, so they
	// must still come out as separate frames.
	require.NoError(t, ws.Send(model.Notification{ID: "n1", UserID: "u1", Message: "ticket updated"}))
	require.NoError(t, ws.Send(model.Notification{ID: "n2", UserID: "u1", Message: "new comment"}))

	go ws.writePump()
	defer ws.close()

	for _, want := range []string{"n1", "n2"} {
		client.SetReadDeadline(time.Now().Add(time.Second))
		_, frame, err := client.ReadMessage()
		require.NoError(t, err)

		var got model.Notification
		require.NoError(t, json.Unmarshal(frame, &got), "each frame must hold exactly one record")
		assert.Equal(t, want, got.ID)
	}
}
