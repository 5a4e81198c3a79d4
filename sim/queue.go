// Implements the EventQueue, which holds all events waiting to be dispatched.
// Events are pushed on scheduling and popped in timestamp order.

package sim

import "container/heap"

// queueEntry pairs a pending event with its insertion sequence number.
type queueEntry[T any] struct {
	ev  TimedEvent[T]
	seq uint64
}

// entryHeap implements heap.Interface over queue entries.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type entryHeap[T any] []queueEntry[T]

func (h entryHeap[T]) Len() int { return len(h) }

// Less orders entries by timestamp, then by insertion sequence.
func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].ev.Time != h[j].ev.Time {
		return h[i].ev.Time < h[j].ev.Time
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) {
	*h = append(*h, x.(queueEntry[T]))
}

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// EventQueue is a min-priority queue of pending timed events with
// deterministic ordering: timestamp first, then FIFO by insertion order
// among events sharing a timestamp. Each queue carries its own monotonic
// sequence counter, so two queues fed the same pushes pop identical
// streams. Duplicate events are retained, not deduplicated.
//
// The queue enforces no clock discipline of its own; rejecting
// past-scheduled events is the EventLoop's job.
type EventQueue[T any] struct {
	entries entryHeap[T]
	nextSeq uint64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue[T any]() *EventQueue[T] {
	q := &EventQueue[T]{
		entries: make(entryHeap[T], 0),
	}
	heap.Init(&q.entries)
	return q
}

// Len returns the number of pending events.
func (q *EventQueue[T]) Len() int {
	return len(q.entries)
}

// Push adds an event to the queue. O(log n).
func (q *EventQueue[T]) Push(t int64, payload T) {
	q.nextSeq++
	heap.Push(&q.entries, queueEntry[T]{
		ev:  TimedEvent[T]{Time: t, Payload: payload},
		seq: q.nextSeq,
	})
}

// PopMin removes and returns the earliest pending event.
// The second return value is false if the queue is empty.
// Successive pops yield non-decreasing timestamps.
func (q *EventQueue[T]) PopMin() (TimedEvent[T], bool) {
	if len(q.entries) == 0 {
		var zero TimedEvent[T]
		return zero, false
	}
	entry := heap.Pop(&q.entries).(queueEntry[T])
	return entry.ev, true
}

// Peek returns the earliest pending event without removing it.
// The second return value is false if the queue is empty.
func (q *EventQueue[T]) Peek() (TimedEvent[T], bool) {
	if len(q.entries) == 0 {
		var zero TimedEvent[T]
		return zero, false
	}
	return q.entries[0].ev, true
}
