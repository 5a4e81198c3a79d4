// Package trace provides execution-trace recording for event-loop analysis.
// This package has no dependencies on sim/: it stores pure data types,
// importing only github.com/google/uuid for record identity.
package trace

// DispatchRecord captures a single event dispatch.
type DispatchRecord struct {
	Tick       int64
	ActCalls   int // agents that received the event (population snapshot at tick start)
	Population int // population size after the tick completed, spawns included
}

// DropRecord captures one past-scheduled event discard.
type DropRecord struct {
	Tick         int64 // clock value when the discard happened
	ScheduledFor int64 // the requested tick, strictly below Tick
}

// SpawnRecord captures one agent appended to the population.
type SpawnRecord struct {
	Tick  int64
	Index int // position assigned in the population
}

// RunRecord captures one Run window on a loop. Resumed runs on the same
// loop produce separate records with distinct RunIDs.
type RunRecord struct {
	RunID      string // assigned by RecordRun if empty
	Until      int64
	StartClock int64
	EndClock   int64
	Dispatched int
}
