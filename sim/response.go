package sim

// Response carries the effects of a single Act call back to the loop:
// new events to schedule and new agents to append to the population.
// The zero value is a valid empty response. A Response is written by
// exactly one Act call and read exactly once at integration; agents
// must not retain it.
//
// No validation happens at construction time. The loop validates event
// times when it integrates the response against its own clock.
type Response[T, S any] struct {
	Events []TimedEvent[T]
	Agents []Agent[T, S]
}

// SingleEvent builds a response carrying one event and nothing else.
func SingleEvent[T, S any](t int64, payload T) Response[T, S] {
	return Response[T, S]{
		Events: []TimedEvent[T]{{Time: t, Payload: payload}},
	}
}

// AddEvent appends an event to the response.
func (r *Response[T, S]) AddEvent(t int64, payload T) {
	r.Events = append(r.Events, TimedEvent[T]{Time: t, Payload: payload})
}

// AddAgent appends a new agent to the response.
func (r *Response[T, S]) AddAgent(a Agent[T, S]) {
	if a == nil {
		panic("AddAgent: agent must not be nil")
	}
	r.Agents = append(r.Agents, a)
}
