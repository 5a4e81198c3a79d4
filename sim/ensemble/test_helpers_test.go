package ensemble

import (
	"math/rand"
	"sync"
	"time"

	"github.com/samthorold/abm-sub000/sim"
)

// staticAgent reports a fixed value and never reacts.
type staticAgent struct {
	id int
}

func (a *staticAgent) Act(now int64, payload string) sim.Response[string, int] {
	return sim.Response[string, int]{}
}

func (a *staticAgent) Stats() int { return a.id }

// walkerAgent takes one random step per delivery. Built with a
// scenario-derived RNG it makes whole-ensemble determinism observable.
type walkerAgent struct {
	rng      *rand.Rand
	position int
}

func (a *walkerAgent) Act(now int64, payload string) sim.Response[string, int] {
	a.position += a.rng.Intn(3) - 1
	return sim.Response[string, int]{}
}

func (a *walkerAgent) Stats() int { return a.position }

// panicAgent fails its scenario on the first delivery.
type panicAgent struct{}

func (a *panicAgent) Act(now int64, payload string) sim.Response[string, int] {
	panic("agent exploded")
}

func (a *panicAgent) Stats() int { return 0 }

// concurrencyGauge tracks the peak number of simultaneous act calls
// across scenarios.
type concurrencyGauge struct {
	mu      sync.Mutex
	current int
	peak    int
}

func (g *concurrencyGauge) enter() {
	g.mu.Lock()
	g.current++
	if g.current > g.peak {
		g.peak = g.current
	}
	g.mu.Unlock()
}

func (g *concurrencyGauge) exit() {
	g.mu.Lock()
	g.current--
	g.mu.Unlock()
}

func (g *concurrencyGauge) max() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.peak
}

// gaugedAgent reports into a shared gauge and lingers long enough for
// overlapping scenarios to be observed.
type gaugedAgent struct {
	gauge *concurrencyGauge
}

func (a *gaugedAgent) Act(now int64, payload string) sim.Response[string, int] {
	a.gauge.enter()
	time.Sleep(2 * time.Millisecond)
	a.gauge.exit()
	return sim.Response[string, int]{}
}

func (a *gaugedAgent) Stats() int { return 0 }

// pulse returns count seed events at consecutive ticks starting at zero.
func pulse(count int) []sim.TimedEvent[string] {
	events := make([]sim.TimedEvent[string], 0, count)
	for i := 0; i < count; i++ {
		events = append(events, sim.TimedEvent[string]{Time: int64(i), Payload: "pulse"})
	}
	return events
}

// singleAgentLoop builds a loop delivering count pulses to one agent.
func singleAgentLoop(agent sim.Agent[string, int], count int) *sim.EventLoop[string, int] {
	return sim.NewEventLoop(pulse(count), []sim.Agent[string, int]{agent})
}
