package sim

import "fmt"

// Test agents exercising the kernel contract from the collaborator side.
// Payloads are plain strings and stats are ints (act counts unless noted),
// so every helper satisfies Agent[string, int] and they can share a loop.

// journal collects cross-agent observations in arrival order, letting
// tests assert global delivery order across a population.
type journal struct {
	entries []string
}

func (j *journal) add(name string, now int64, payload string) {
	j.entries = append(j.entries, fmt.Sprintf("%s@%d:%s", name, now, payload))
}

// passiveAgent ignores every event. Stats reports its fixed id, which
// makes population ordering observable through Stats().
type passiveAgent struct {
	id int
}

func (a *passiveAgent) Act(now int64, payload string) Response[string, int] {
	return Response[string, int]{}
}

func (a *passiveAgent) Stats() int { return a.id }

// counterAgent counts deliveries and emits nothing.
type counterAgent struct {
	acts int
}

func (a *counterAgent) Act(now int64, payload string) Response[string, int] {
	a.acts++
	return Response[string, int]{}
}

func (a *counterAgent) Stats() int { return a.acts }

// recorderAgent logs every delivery it receives, optionally into a
// shared journal.
type recorderAgent struct {
	name     string
	log      *journal
	times    []int64
	payloads []string
}

func (a *recorderAgent) Act(now int64, payload string) Response[string, int] {
	a.times = append(a.times, now)
	a.payloads = append(a.payloads, payload)
	if a.log != nil {
		a.log.add(a.name, now, payload)
	}
	return Response[string, int]{}
}

func (a *recorderAgent) Stats() int { return len(a.times) }

// chainAgent schedules a follow-up event a fixed step after each
// delivery, keeping the loop busy until the horizon cuts it off.
type chainAgent struct {
	step int64
	acts int
}

func (a *chainAgent) Act(now int64, payload string) Response[string, int] {
	a.acts++
	return SingleEvent[string, int](now+a.step, payload)
}

func (a *chainAgent) Stats() int { return a.acts }

// replicatorAgent schedules its next cycle and spawns one passive
// observer per delivery. Observers never emit, so the population grows
// by exactly one per dispatched event.
type replicatorAgent struct {
	period  int64
	spawned int
}

func (a *replicatorAgent) Act(now int64, payload string) Response[string, int] {
	a.spawned++
	resp := Response[string, int]{}
	resp.AddEvent(now+a.period, payload)
	resp.AddAgent(&passiveAgent{id: a.spawned})
	return resp
}

func (a *replicatorAgent) Stats() int { return a.spawned }

// breederAgent spawns one clone of itself per delivery and emits no
// events, so the population doubles on every dispatched event.
type breederAgent struct{}

func (a *breederAgent) Act(now int64, payload string) Response[string, int] {
	resp := Response[string, int]{}
	resp.AddAgent(&breederAgent{})
	return resp
}

func (a *breederAgent) Stats() int { return 1 }

// pastEmitterAgent tries to schedule behind the clock on every delivery.
type pastEmitterAgent struct {
	by   int64
	acts int
}

func (a *pastEmitterAgent) Act(now int64, payload string) Response[string, int] {
	a.acts++
	return SingleEvent[string, int](now-a.by, payload)
}

func (a *pastEmitterAgent) Stats() int { return a.acts }

// onceEchoAgent re-emits its first delivery at the same tick, then goes
// quiet.
type onceEchoAgent struct {
	echoed bool
	acts   int
}

func (a *onceEchoAgent) Act(now int64, payload string) Response[string, int] {
	a.acts++
	if a.echoed {
		return Response[string, int]{}
	}
	a.echoed = true
	return SingleEvent[string, int](now, "echo")
}

func (a *onceEchoAgent) Stats() int { return a.acts }

// recruiterAgent spawns one recorder into the population on its first
// delivery and keeps a handle to it for inspection.
type recruiterAgent struct {
	log     *journal
	recruit *recorderAgent
	acts    int
}

func (a *recruiterAgent) Act(now int64, payload string) Response[string, int] {
	a.acts++
	if a.recruit != nil {
		return Response[string, int]{}
	}
	a.recruit = &recorderAgent{name: "recruit", log: a.log}
	resp := Response[string, int]{}
	resp.AddAgent(a.recruit)
	return resp
}

func (a *recruiterAgent) Stats() int { return a.acts }
