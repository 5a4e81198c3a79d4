// Tracks loop-wide execution counters for final reporting.

package sim

import "fmt"

// LoopMetrics aggregates counters about event-loop execution. Useful for
// asserting dispatch behavior in tests and for spotting misbehaving
// models (a growing PastEventsDropped usually means an agent computes
// times relative to the wrong clock).
type LoopMetrics struct {
	EventsDispatched  int // events popped from the queue and broadcast
	ActCalls          int // total Act invocations across all dispatches
	EventsScheduled   int // events accepted into the queue (seeds and responses)
	PastEventsDropped int // events discarded for being scheduled behind the clock
	AgentsSpawned     int // agents appended via responses (seed agents not counted)
	RunCalls          int // Run invocations, including ones that dispatched nothing
}

// String renders the counters as a single log-friendly line.
func (m LoopMetrics) String() string {
	return fmt.Sprintf("dispatched=%d acts=%d scheduled=%d dropped=%d spawned=%d runs=%d",
		m.EventsDispatched, m.ActCalls, m.EventsScheduled, m.PastEventsDropped, m.AgentsSpawned, m.RunCalls)
}
