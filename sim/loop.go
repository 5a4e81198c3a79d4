package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/samthorold/abm-sub000/sim/trace"
)

// EventLoop is the core object that holds simulation time, the pending
// event queue, and the live agent population. It dispatches events in
// timestamp order and broadcasts each one to every agent that was alive
// when the event's tick began.
//
// The queue and the population are owned exclusively by the loop: agents
// only ever touch them through Response values, and callers only ever
// read agent state through Stats. The population is append-only; agents
// are never removed or reordered.
//
// An EventLoop is strictly single-threaded and not safe for concurrent
// use. Run many independent loops in parallel with sim/ensemble instead.
type EventLoop[T, S any] struct {
	queue      *EventQueue[T]
	population []Agent[T, S]
	clock      int64
	metrics    LoopMetrics

	// Trace optionally records execution; assign after construction and
	// before the first Run call. Nil means no recording.
	Trace *trace.Trace
}

// NewEventLoop creates a loop from seed events and a seed population.
// The clock starts at tick 0, so seed events must carry non-negative
// times; a negative seed time is a past-schedule and is discarded the
// same way mid-run past-schedules are (counted, warned, never fatal).
// Seed agents enter the population in the given order.
func NewEventLoop[T, S any](seedEvents []TimedEvent[T], seedAgents []Agent[T, S]) *EventLoop[T, S] {
	loop := &EventLoop[T, S]{
		queue:      NewEventQueue[T](),
		population: make([]Agent[T, S], 0, len(seedAgents)),
	}
	loop.population = append(loop.population, seedAgents...)
	for _, ev := range seedEvents {
		loop.schedule(ev.Time, ev.Payload)
	}
	return loop
}

// Run dispatches pending events until the queue is exhausted or the next
// event lies beyond the until tick, and returns the number of events
// dispatched by this call.
//
// The horizon is inclusive: an event at exactly until is dispatched. The
// first event strictly beyond until is left in the queue unconsumed, so
// a later Run call with a larger horizon resumes exactly where this one
// stopped. Running with until below the current clock dispatches nothing.
func (l *EventLoop[T, S]) Run(until int64) int {
	l.metrics.RunCalls++
	startClock := l.clock
	dispatched := 0

	for {
		next, ok := l.queue.Peek()
		if !ok {
			break
		}
		if next.Time > until {
			break
		}

		ev, _ := l.queue.PopMin()
		if ev.Time < l.clock {
			panic(fmt.Sprintf("Clock went backwards: %d < %d", ev.Time, l.clock))
		}
		l.clock = ev.Time

		l.dispatch(ev)
		dispatched++
	}

	l.metrics.EventsDispatched += dispatched
	if l.Trace != nil {
		l.Trace.RecordRun(trace.RunRecord{
			Until:      until,
			StartClock: startClock,
			EndClock:   l.clock,
			Dispatched: dispatched,
		})
	}
	logrus.Infof("[tick %07d] Run ended: %s", l.clock, l.metrics)
	return dispatched
}

// dispatch broadcasts one event to the population alive at tick start.
// The bound is snapshotted before the first Act call, so agents appended
// while the tick is in flight do not receive this event; their first
// delivery is the next dispatched event.
func (l *EventLoop[T, S]) dispatch(ev TimedEvent[T]) {
	n := len(l.population)
	logrus.Debugf("[tick %07d] Dispatching event to %d agents", l.clock, n)
	for i := 0; i < n; i++ {
		resp := l.population[i].Act(l.clock, ev.Payload)
		l.metrics.ActCalls++
		l.integrate(resp)
	}
	if l.Trace != nil {
		l.Trace.RecordDispatch(trace.DispatchRecord{
			Tick:       l.clock,
			ActCalls:   n,
			Population: len(l.population),
		})
	}
}

// integrate applies one response: schedules its events and appends its
// agents. Responses are applied immediately, agent by agent, so events
// emitted by earlier agents are already queued when later agents act.
func (l *EventLoop[T, S]) integrate(resp Response[T, S]) {
	for _, ev := range resp.Events {
		l.schedule(ev.Time, ev.Payload)
	}
	for _, a := range resp.Agents {
		l.population = append(l.population, a)
		l.metrics.AgentsSpawned++
		if l.Trace != nil {
			l.Trace.RecordSpawn(trace.SpawnRecord{
				Tick:  l.clock,
				Index: len(l.population) - 1,
			})
		}
	}
}

// schedule validates an event time against the clock and enqueues it.
// Same-tick times are legal (the event dispatches later in the same run);
// times behind the clock are discarded without failing the run.
func (l *EventLoop[T, S]) schedule(t int64, payload T) {
	if t < l.clock {
		l.metrics.PastEventsDropped++
		logrus.Warnf("[tick %07d] Dropping event scheduled for past tick %d", l.clock, t)
		if l.Trace != nil {
			l.Trace.RecordDrop(trace.DropRecord{Tick: l.clock, ScheduledFor: t})
		}
		return
	}
	l.queue.Push(t, payload)
	l.metrics.EventsScheduled++
}

// Stats snapshots every live agent in population order: seed agents
// first, then spawned agents in the order they were appended. Exactly
// one Stats call is made per agent. This is the only read channel for
// agent state.
func (l *EventLoop[T, S]) Stats() []S {
	out := make([]S, 0, len(l.population))
	for _, a := range l.population {
		out = append(out, a.Stats())
	}
	return out
}

// Clock returns the current simulation tick: 0 before the first
// dispatch, afterwards the timestamp of the most recently dispatched
// event. The clock never moves backwards.
func (l *EventLoop[T, S]) Clock() int64 {
	return l.clock
}

// PopulationSize returns the number of live agents.
func (l *EventLoop[T, S]) PopulationSize() int {
	return len(l.population)
}

// QueueLen returns the number of pending events.
func (l *EventLoop[T, S]) QueueLen() int {
	return l.queue.Len()
}

// Metrics returns a copy of the loop's execution counters.
func (l *EventLoop[T, S]) Metrics() LoopMetrics {
	return l.metrics
}
