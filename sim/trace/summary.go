package trace

// Summary aggregates statistics from a Trace.
type Summary struct {
	TotalDispatches int
	TotalActCalls   int
	TotalDrops      int
	TotalSpawns     int
	RunWindows      int
	FirstTick       int64 // tick of the first recorded dispatch (0 if none)
	LastTick        int64 // tick of the last recorded dispatch (0 if none)
	PeakPopulation  int
}

// Summarize computes aggregate statistics from a Trace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(tr *Trace) *Summary {
	summary := &Summary{}
	if tr == nil {
		return summary
	}

	summary.TotalDrops = len(tr.Drops)
	summary.TotalSpawns = len(tr.Spawns)
	summary.RunWindows = len(tr.Runs)

	if len(tr.Dispatches) > 0 {
		summary.TotalDispatches = len(tr.Dispatches)
		summary.FirstTick = tr.Dispatches[0].Tick
		summary.LastTick = tr.Dispatches[len(tr.Dispatches)-1].Tick
		for _, d := range tr.Dispatches {
			summary.TotalActCalls += d.ActCalls
			if d.Population > summary.PeakPopulation {
				summary.PeakPopulation = d.Population
			}
		}
	}

	return summary
}
