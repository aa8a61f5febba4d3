package notification

import "errors"

var (
	ErrUserIDRequired  = errors.New("user_id is required")
	ErrMessageRequired = errors.New("message is required")
	ErrTypeRequired    = errors.New("notification_type is required")
	ErrNotFound        = errors.New("notification not found")

	// ErrChannelClosed is returned by a Channel whose connection has been
	// torn down; the bus treats it as a delivery failure.
	ErrChannelClosed = errors.New("channel closed")

	// ErrSendBufferFull is returned when a channel's outbound buffer is full;
	// the slow channel is treated as dead rather than blocking the dispatch
	// loop.
	ErrSendBufferFull = errors.New("send buffer full")
)
