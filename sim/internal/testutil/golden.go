// Package testutil provides shared test infrastructure for the simulation
// kernel. It consolidates the golden scenario types and loader used by the
// sim/ test package.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/golden.json.
type GoldenDataset struct {
	Scenarios []GoldenScenario `json:"scenarios"`
}

// GoldenScenario is one fully deterministic kernel run with its expected
// outcome. Model selects the agent wiring ("replicator", "past-emitter",
// or "none"); the remaining config fields apply per model.
type GoldenScenario struct {
	Name      string       `json:"name"`
	Model     string       `json:"model"`
	Period    int64        `json:"period"`
	PastBy    int64        `json:"past_by"`
	SeedTimes []int64      `json:"seed_times"`
	Until     int64        `json:"until"`
	Expect    GoldenExpect `json:"expect"`
}

// GoldenExpect holds the expected end state of a golden scenario.
// All fields are exact: golden runs contain no randomness.
type GoldenExpect struct {
	Dispatched        int   `json:"dispatched"`
	FinalClock        int64 `json:"final_clock"`
	FinalPopulation   int   `json:"final_population"`
	QueueRemaining    int   `json:"queue_remaining"`
	ActCalls          int   `json:"act_calls"`
	PastEventsDropped int   `json:"past_events_dropped"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}
