package usecase

import (
	"testing"
	"time"

	"ticketdesk/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := newDeliveryQueue()
	q.push(model.Notification{Message: "first"})
	q.push(model.Notification{Message: "second"})
	q.push(model.Notification{Message: "third"})

	for _, want := range []string{"first", "second", "third"} {
		n, ok := q.pop()
		require.True(t, ok)
		assert.Equal(t, want, n.Message)
	}
	assert.Equal(t, 0, q.len())
}

func TestQueuePopBlocksUntilPush(t *testing.T) {
	q := newDeliveryQueue()

	got := make(chan model.Notification, 1)
	go func() {
		n, ok := q.pop()
		if ok {
			got <- n
		}
	}()

	// Give the consumer a moment to park on the empty queue.
	time.Sleep(20 * time.Millisecond)
	q.push(model.Notification{Message: "wakeup"})

	select {
	case n := <-got:
		assert.Equal(t, "wakeup", n.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("pop did not wake up after push")
	}
}

func TestQueueCloseDrainsRemaining(t *testing.T) {
	q := newDeliveryQueue()
	q.push(model.Notification{Message: "pending"})
	q.close()

	n, ok := q.pop()
	require.True(t, ok)
	assert.Equal(t, "pending", n.Message)

	_, ok = q.pop()
	assert.False(t, ok)

	// Pushing after close is a no-op.
	q.push(model.Notification{Message: "late"})
	_, ok = q.pop()
	assert.False(t, ok)
}

func TestQueueCloseUnblocksWaiter(t *testing.T) {
	q := newDeliveryQueue()

	done := make(chan bool, 1)
	go func() {
		_, ok := q.pop()
		done <- ok
	}()

	time.Sleep(20 * time.Millisecond)
	q.close()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("pop did not return after close")
	}
}
