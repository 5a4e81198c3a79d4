package sim

// Agent is the contract between the event loop and domain behavior.
// T is the event payload type shared by every agent in a loop; S is the
// stats snapshot type. The loop holds agents purely through this
// interface and never inspects concrete types, so the set of behaviors
// is open: domain models bring their own implementations.
//
// Agents have no identity inside the loop beyond their position in the
// population, which is fixed at insertion and never reused.
type Agent[T, S any] interface {
	// Act delivers the event dispatched at tick now to this agent.
	// It must be synchronous and non-blocking, may mutate only the
	// agent's own state, and reports all external effects through the
	// returned Response. Scheduling a time earlier than now is a
	// logical error; the loop discards such events (observably, see
	// LoopMetrics.PastEventsDropped) rather than failing.
	//
	// Domain-level failures have no error channel here: encode them as
	// terminal agent state and surface them via Stats.
	Act(now int64, payload T) Response[T, S]

	// Stats returns a snapshot of the agent's current state. It must
	// not mutate the agent and must be safe to call repeatedly at any
	// point between Act calls.
	Stats() S
}
