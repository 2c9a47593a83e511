package sim

// Selector picks the next task to run from the ready set, or returns nil to
// signal idle. Implementations are pure: they never mutate tasks and never
// reorder the ready slice. The running task (nil when the CPU is idle) is
// part of the ready set for preemptive policies.
//
// Every selector breaks remaining ties by task ID so that runs over the same
// input are bit-identical.
type Selector interface {
	Select(ready []*Task, clock int64, running *Task) *Task
}

// minBy returns the ready task for which less reports it ordered before all
// others. less must be a strict weak ordering ending in the ID tie-break.
func minBy(ready []*Task, less func(a, b *Task) bool) *Task {
	var best *Task
	for _, t := range ready {
		if best == nil || less(t, best) {
			best = t
		}
	}
	return best
}

// fcfsSelector orders by arrival time, then ID (original input order).
type fcfsSelector struct{}

func (fcfsSelector) Select(ready []*Task, _ int64, _ *Task) *Task {
	return minBy(ready, func(a, b *Task) bool {
		if a.Arrival != b.Arrival {
			return a.Arrival < b.Arrival
		}
		return a.ID < b.ID
	})
}

// sjfSelector orders by total burst, then arrival, then ID.
// Used at idle points only; the chosen task runs uninterrupted.
type sjfSelector struct{}

func (sjfSelector) Select(ready []*Task, _ int64, _ *Task) *Task {
	return minBy(ready, func(a, b *Task) bool {
		if a.Burst != b.Burst {
			return a.Burst < b.Burst
		}
		if a.Arrival != b.Arrival {
			return a.Arrival < b.Arrival
		}
		return a.ID < b.ID
	})
}

// srtfSelector orders by remaining time, then arrival, then ID.
// Evaluated every tick; a newly arrived task with less remaining work than
// the incumbent wins immediately, which is what makes the policy preemptive.
type srtfSelector struct{}

func (srtfSelector) Select(ready []*Task, _ int64, _ *Task) *Task {
	return minBy(ready, func(a, b *Task) bool {
		if a.Remaining != b.Remaining {
			return a.Remaining < b.Remaining
		}
		if a.Arrival != b.Arrival {
			return a.Arrival < b.Arrival
		}
		return a.ID < b.ID
	})
}

// prioritySelector orders by priority value (lower wins), then arrival, then
// ID. With a non-nil aging policy the compared value is the aged effective
// priority at the current clock; base Priority is never mutated.
type prioritySelector struct {
	aging *AgingPolicy
}

func (p prioritySelector) Select(ready []*Task, clock int64, _ *Task) *Task {
	return minBy(ready, func(a, b *Task) bool {
		pa, pb := a.Priority, b.Priority
		if p.aging != nil {
			pa = p.aging.Effective(a, clock)
			pb = p.aging.Effective(b, clock)
		}
		if pa != pb {
			return pa < pb
		}
		if a.Arrival != b.Arrival {
			return a.Arrival < b.Arrival
		}
		return a.ID < b.ID
	})
}

// newSelector creates the Selector for a policy. Round Robin is
// queue-disciplined rather than selector-driven and has no Selector.
func newSelector(policy Policy, aging *AgingPolicy) Selector {
	switch policy {
	case PolicyFCFS:
		return fcfsSelector{}
	case PolicySJF:
		return sjfSelector{}
	case PolicySRTF:
		return srtfSelector{}
	case PolicyPriority:
		return prioritySelector{aging: aging}
	default:
		return nil
	}
}
