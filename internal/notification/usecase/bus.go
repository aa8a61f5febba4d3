package usecase

import (
	"context"
	"sync"

	"ticketdesk/internal/model"
	"ticketdesk/internal/notification"
	"ticketdesk/pkg/log"
)

// eventBus fans notification records out to the live channels of their target
// user. It owns the subscription registry and the delivery queue; channel
// handles are weak references, the bus never manages connection lifecycle.
type eventBus struct {
	l log.Logger

	// userID -> set of live channels. A key exists iff its set is non-empty.
	mu          sync.RWMutex
	subscribers map[string]map[notification.Channel]struct{}

	queue *deliveryQueue
	done  chan struct{}
}

func newEventBus(l log.Logger) *eventBus {
	return &eventBus{
		l:           l,
		subscribers: make(map[string]map[notification.Channel]struct{}),
		queue:       newDeliveryQueue(),
		done:        make(chan struct{}),
	}
}

// subscribe registers a channel for a user. Adding the same channel twice is
// a no-op.
func (b *eventBus) subscribe(userID string, ch notification.Channel) {
	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.subscribers[userID]
	if !ok {
		set = make(map[notification.Channel]struct{})
		b.subscribers[userID] = set
	}
	set[ch] = struct{}{}
}

// unsubscribe removes a channel for a user. Removing an absent channel is a
// no-op. The per-user entry is deleted as soon as its set becomes empty.
func (b *eventBus) unsubscribe(userID string, ch notification.Channel) {
	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.subscribers[userID]
	if !ok {
		return
	}
	delete(set, ch)
	if len(set) == 0 {
		delete(b.subscribers, userID)
	}
}

// channelsFor returns a snapshot of the user's live channels. The dispatch
// loop iterates the snapshot so concurrent subscribe/unsubscribe calls cannot
// tear the fan-out pass.
func (b *eventBus) channelsFor(userID string) []notification.Channel {
	b.mu.RLock()
	defer b.mu.RUnlock()

	set, ok := b.subscribers[userID]
	if !ok {
		return nil
	}
	chans := make([]notification.Channel, 0, len(set))
	for ch := range set {
		chans = append(chans, ch)
	}
	return chans
}

// publish enqueues a record for fan-out. It never blocks the producer and
// gives no delivery guarantee.
func (b *eventBus) publish(n model.Notification) {
	b.queue.push(n)
}

// run is the dispatch loop. It drains the delivery queue until shutdown,
// delivering each record to every live channel of its target user. A failed
// send marks the channel dead; dead channels are pruned after the pass.
// Failures are contained per channel and never stop the loop.
func (b *eventBus) run() {
	defer close(b.done)

	for {
		n, ok := b.queue.pop()
		if !ok {
			return
		}
		b.dispatch(n)
	}
}

func (b *eventBus) dispatch(n model.Notification) {
	chans := b.channelsFor(n.UserID)
	if len(chans) == 0 {
		// Nobody is listening: the record is dropped from realtime delivery
		// and offline retrieval goes through the store.
		return
	}

	var dead []notification.Channel
	for _, ch := range chans {
		if err := ch.Send(n); err != nil {
			b.l.Warnf(context.Background(), "internal.notification.usecase.dispatch: dropping dead channel for user %s: %v", n.UserID, err)
			dead = append(dead, ch)
		}
	}

	for _, ch := range dead {
		b.unsubscribe(n.UserID, ch)
	}
}

// shutdown closes the queue and waits for the dispatch loop to drain it.
func (b *eventBus) shutdown(ctx context.Context) error {
	b.queue.close()
	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
