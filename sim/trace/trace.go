package trace

import "github.com/google/uuid"

// Level controls the verbosity of execution tracing.
type Level string

const (
	// LevelNone disables tracing (zero overhead).
	LevelNone Level = "none"
	// LevelDrops captures past-schedule discards only.
	LevelDrops Level = "drops"
	// LevelDispatch captures discards plus per-dispatch, spawn, and
	// run-window records.
	LevelDispatch Level = "dispatch"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:     true,
	LevelDrops:    true,
	LevelDispatch: true,
	"":            true, // empty defaults to none
}

// levelRank orders levels by verbosity for gating comparisons.
var levelRank = map[Level]int{
	"":            0,
	LevelNone:     0,
	LevelDrops:    1,
	LevelDispatch: 2,
}

// IsValidLevel returns true if the given level string is a recognized trace level.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// Config controls trace collection behavior.
type Config struct {
	Level Level
}

// captures reports whether the configured level keeps records gated at min.
func (c Config) captures(min Level) bool {
	return levelRank[c.Level] >= levelRank[min]
}

// Trace collects execution records across the Run calls of one loop.
type Trace struct {
	ID         string // unique per trace, assigned by New
	Config     Config
	Dispatches []DispatchRecord
	Drops      []DropRecord
	Spawns     []SpawnRecord
	Runs       []RunRecord
}

// New creates a Trace ready for recording.
func New(config Config) *Trace {
	return &Trace{
		ID:         uuid.NewString(),
		Config:     config,
		Dispatches: make([]DispatchRecord, 0),
		Drops:      make([]DropRecord, 0),
		Spawns:     make([]SpawnRecord, 0),
		Runs:       make([]RunRecord, 0),
	}
}

// RecordDispatch appends a dispatch record at LevelDispatch.
func (tr *Trace) RecordDispatch(record DispatchRecord) {
	if !tr.Config.captures(LevelDispatch) {
		return
	}
	tr.Dispatches = append(tr.Dispatches, record)
}

// RecordDrop appends a discard record at LevelDrops and above.
func (tr *Trace) RecordDrop(record DropRecord) {
	if !tr.Config.captures(LevelDrops) {
		return
	}
	tr.Drops = append(tr.Drops, record)
}

// RecordSpawn appends a spawn record at LevelDispatch.
func (tr *Trace) RecordSpawn(record SpawnRecord) {
	if !tr.Config.captures(LevelDispatch) {
		return
	}
	tr.Spawns = append(tr.Spawns, record)
}

// RecordRun appends a run-window record at LevelDispatch, assigning a
// fresh RunID when the record carries none.
func (tr *Trace) RecordRun(record RunRecord) {
	if !tr.Config.captures(LevelDispatch) {
		return
	}
	if record.RunID == "" {
		record.RunID = uuid.NewString()
	}
	tr.Runs = append(tr.Runs, record)
}
