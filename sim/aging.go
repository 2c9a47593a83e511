package sim

// AgingPolicy is the opt-in starvation guard for priority scheduling.
// Every Interval ticks a ready task has waited, its effective priority value
// drops by Step (lower value = higher priority). The base Priority field is
// never modified; aging is applied only when selectors compare tasks, so it
// takes effect exactly at re-selection points.
//
// The zero policy is invalid; construct through RunSpec validation.
type AgingPolicy struct {
	Step     int64 // priority decrement per full interval waited, > 0
	Interval int64 // ticks of waiting per decrement, > 0
}

// Effective returns the aged priority value of t at the given clock.
// Waiting time here is time since arrival: aging is only consulted for
// not-yet-dispatched tasks under the non-preemptive priority policy.
func (a *AgingPolicy) Effective(t *Task, clock int64) int64 {
	waited := clock - t.Arrival
	if waited <= 0 {
		return t.Priority
	}
	return t.Priority - a.Step*(waited/a.Interval)
}

func (a *AgingPolicy) validate() error {
	if a.Step < 1 {
		return invalidInputf("aging step must be >= 1, got %d", a.Step)
	}
	if a.Interval < 1 {
		return invalidInputf("aging interval must be >= 1, got %d", a.Interval)
	}
	return nil
}
