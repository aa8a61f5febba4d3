package usecase

import (
	"sync"

	"ticketdesk/internal/model"
)

// deliveryQueue is an unbounded FIFO of notification records with a single
// consumer (the dispatch loop). Pushes never block; pops park until a record
// arrives or the queue is closed.
type deliveryQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []model.Notification
	closed bool
}

func newDeliveryQueue() *deliveryQueue {
	q := &deliveryQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends a record to the tail. Pushing to a closed queue is a no-op.
func (q *deliveryQueue) push(n model.Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.items = append(q.items, n)
	q.cond.Signal()
}

// pop removes the head record, blocking while the queue is empty. After close,
// remaining records are still drained; once empty it returns ok=false.
func (q *deliveryQueue) pop() (model.Notification, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		return model.Notification{}, false
	}

	n := q.items[0]
	q.items = q.items[1:]
	return n, true
}

// close wakes the consumer; pending records are drained before pop reports
// exhaustion.
func (q *deliveryQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.cond.Broadcast()
}

func (q *deliveryQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
