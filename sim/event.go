package sim

// TimedEvent pairs a simulation tick with an opaque domain payload.
// Time is a non-negative logical tick; it carries no wall-clock meaning.
// The payload type T is chosen by the domain model and is never inspected
// by the kernel. Payloads should be treated as immutable once scheduled:
// the kernel passes them by value to every agent in the population.
type TimedEvent[T any] struct {
	Time    int64
	Payload T
}

// Before reports whether e is ordered strictly ahead of other.
// Ordering considers Time alone; payloads never participate, so two
// events at the same tick are unordered with respect to each other.
func (e TimedEvent[T]) Before(other TimedEvent[T]) bool {
	return e.Time < other.Time
}
