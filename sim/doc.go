// Package sim provides a minimal discrete-event simulation kernel for
// agent-based models.
//
// # Reading Guide
//
// Start with these three files to understand the kernel:
//   - event.go: TimedEvent, the (tick, payload) pair that drives a simulation
//   - queue.go: EventQueue, the deterministic min-priority queue of pending events
//   - loop.go: EventLoop, which owns the clock and the population and runs the dispatch cycle
//
// # Architecture
//
// The kernel is payload-opaque: it orders events by tick, advances the clock,
// and broadcasts each event to every live agent, but it never inspects
// payloads and never enumerates concrete agent types. Domain models plug in
// through two generic seams:
//   - Agent: reacts to deliveries (Act) and projects its state (Stats)
//   - Response: the write-once carrier through which an Act call emits new
//     events and new agents
//
// Everything else an agent-based model needs lives in sub-packages:
//   - sim/trace/: in-memory execution records (dispatches, drops, spawns, run windows)
//   - sim/ensemble/: parallel execution of independent loops across scenarios
//
// The kernel itself never samples randomness, never touches the filesystem,
// and never spawns goroutines. A single EventLoop is strictly sequential;
// parallelism exists only across independent loops (see sim/ensemble).
package sim
