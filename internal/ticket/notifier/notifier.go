// Package notifier pushes ticket events to the notification service over its
// internal HTTP API.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ticketdesk/config"
	"ticketdesk/internal/ticket"
	pkgLog "ticketdesk/pkg/log"
)

type implNotifier struct {
	l       pkgLog.Logger
	client  *http.Client
	baseURL string
}

var _ ticket.Notifier = &implNotifier{}

func New(l pkgLog.Logger, cfg config.NotifierConfig) *implNotifier {
	return &implNotifier{
		l:       l,
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
	}
}

type notifyPayload struct {
	UserID           string `json:"user_id"`
	Message          string `json:"message"`
	TicketID         string `json:"ticket_id,omitempty"`
	NotificationType string `json:"notification_type"`
}

func (n *implNotifier) Notify(ctx context.Context, ip ticket.NotifyInput) error {
	body, err := json.Marshal(notifyPayload{
		UserID:           ip.UserID,
		Message:          ip.Message,
		TicketID:         ip.TicketID,
		NotificationType: ip.NotificationType,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/notify", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notification service returned %d", resp.StatusCode)
	}

	return nil
}
