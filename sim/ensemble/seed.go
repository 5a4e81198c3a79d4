package ensemble

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// SeedKey uniquely identifies a reproducible ensemble run.
// Two ensembles with the same SeedKey and identical builders MUST
// produce identical results.
type SeedKey int64

// ScenarioName returns the seed-derivation name for scenario N.
func ScenarioName(scenario int) string {
	return fmt.Sprintf("scenario_%d", scenario)
}

// ScenarioSeed derives the deterministic seed for one scenario:
// master key XOR fnv1a64(scenario name). Distinct scenarios get isolated
// streams, and the same (key, scenario) pair always derives the same
// seed, so a single scenario can be re-run alone for debugging.
func ScenarioSeed(key SeedKey, scenario int) int64 {
	return int64(key) ^ fnv1a64(ScenarioName(scenario))
}

// ScenarioRNG returns a deterministically seeded RNG for one scenario.
// Agents that need randomness draw from it inside their builder; the
// event loop itself never samples.
//
// Thread-safety: NOT thread-safe. Confine each returned RNG to its
// scenario's goroutine.
func ScenarioRNG(key SeedKey, scenario int) *rand.Rand {
	return rand.New(rand.NewSource(ScenarioSeed(key, scenario)))
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
