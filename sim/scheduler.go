// The per-policy dispatch loops. Non-preemptive policies jump the clock from
// completion to completion; SRTF advances tick by tick; Round Robin advances
// one quantum-bounded slice per dispatch cycle. All three record allocation
// slices into the run's trace and are bounded by the divergence budget.

package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// arrivalOrder returns task indexes sorted by (arrival, ID) — the admission
// order every policy uses for tasks that become ready at the same instant.
func arrivalOrder(tasks []*Task) []int {
	order := make([]int, len(tasks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := tasks[order[i]], tasks[order[j]]
		if a.Arrival != b.Arrival {
			return a.Arrival < b.Arrival
		}
		return a.ID < b.ID
	})
	return order
}

// readyTasks returns every arrived, unfinished task at the current clock.
func (s *Simulator) readyTasks() []*Task {
	var ready []*Task
	for _, t := range s.tasks {
		if t.readyAt(s.clock) {
			if t.State == StateUnarrived {
				t.State = StateReady
			}
			ready = append(ready, t)
		}
	}
	return ready
}

// nextArrival returns the earliest arrival among unfinished tasks that have
// not yet arrived. ok is false when every remaining task has arrived.
func (s *Simulator) nextArrival() (int64, bool) {
	var next int64
	found := false
	for _, t := range s.tasks {
		if t.Remaining > 0 && t.Arrival > s.clock {
			if !found || t.Arrival < next {
				next = t.Arrival
				found = true
			}
		}
	}
	return next, found
}

// runNonPreemptive drives FCFS, SJF, and Priority: at each idle point the
// selector picks one ready task, which then runs uninterrupted to completion.
// Idle gaps jump straight to the next arrival and leave no slice behind.
func (s *Simulator) runNonPreemptive(sel Selector) error {
	n := len(s.tasks)
	for completed, dispatches := 0, 0; completed < n; dispatches++ {
		if dispatches > n {
			return divergencef("%d dispatches for %d tasks", dispatches, n)
		}
		ready := s.readyTasks()
		if len(ready) == 0 {
			next, ok := s.nextArrival()
			if !ok {
				return divergencef("no ready task and no future arrival at tick %d", s.clock)
			}
			s.clock = next
			ready = s.readyTasks()
		}
		t := sel.Select(ready, s.clock, nil)

		start := s.clock
		t.State = StateRunning
		t.Start = start
		s.clock = start + t.Burst
		t.Remaining = 0
		t.Completion = s.clock
		t.State = StateCompleted
		s.trace.Record(t.ID, start, s.clock)
		completed++
		logrus.Debugf("[tick %07d] T%d ran %d..%d and completed", s.clock, t.ID, start, s.clock)
	}
	return nil
}

// runSRTF drives preemptive SJF at unit-tick granularity, the reference
// semantics: every tick the ready task with the least remaining work runs for
// one tick. A shorter new arrival therefore preempts the incumbent at its
// arrival tick. The ready set is kept in a tree ordered by
// (remaining, arrival, ID), so the winner is always the tree minimum.
func (s *Simulator) runSRTF() error {
	rt := newReadyTree()
	order := arrivalOrder(s.tasks)
	next := 0 // index into order of the next unadmitted task

	admit := func() {
		for next < len(order) && s.tasks[order[next]].Arrival <= s.clock {
			t := s.tasks[order[next]]
			t.State = StateReady
			rt.Insert(t)
			next++
		}
	}

	n := len(s.tasks)
	completed := 0
	for ticks := int64(0); completed < n; {
		admit()
		if rt.Len() == 0 {
			if next >= len(order) {
				return divergencef("no ready task and no future arrival at tick %d", s.clock)
			}
			s.clock = s.tasks[order[next]].Arrival
			continue
		}

		t := rt.Min()
		if t.Start < 0 {
			t.Start = s.clock
			logrus.Debugf("[tick %07d] T%d first dispatch", s.clock, t.ID)
		}
		rt.Remove(t)
		t.State = StateRunning
		t.Remaining--
		s.trace.Record(t.ID, s.clock, s.clock+1)
		s.clock++

		ticks++
		if ticks > s.budget {
			return divergencef("tick budget %d exceeded with %d/%d tasks complete", s.budget, completed, n)
		}

		if t.Remaining == 0 {
			t.Completion = s.clock
			t.State = StateCompleted
			completed++
			logrus.Debugf("[tick %07d] T%d completed", s.clock, t.ID)
		} else {
			t.State = StateReady
			rt.Insert(t)
		}
	}
	return nil
}

// runRoundRobin drives the FIFO quantum discipline. Per dispatch cycle:
// admit arrivals in (arrival, ID) order, dequeue the head, run
// min(remaining, quantum) ticks, then admit tasks that arrived during the
// slice BEFORE re-enqueuing the incumbent. That admission order is the
// fairness contract; reversing it changes every waiting time.
func (s *Simulator) runRoundRobin() error {
	rq := &ReadyQueue{}
	order := arrivalOrder(s.tasks)
	next := 0

	admit := func() {
		for next < len(order) && s.tasks[order[next]].Arrival <= s.clock {
			t := s.tasks[order[next]]
			t.State = StateReady
			rq.Enqueue(t)
			next++
		}
	}

	n := len(s.tasks)
	completed := 0
	for consumed := int64(0); completed < n; {
		admit()
		if rq.Len() == 0 {
			if next >= len(order) {
				return divergencef("empty ready queue and no future arrival at tick %d", s.clock)
			}
			s.clock = s.tasks[order[next]].Arrival
			continue
		}

		t := rq.Dequeue()
		if t.Start < 0 {
			t.Start = s.clock
		}
		t.State = StateRunning
		slice := min(t.Remaining, s.Quantum)
		start := s.clock
		s.clock += slice
		t.Remaining -= slice
		s.trace.Record(t.ID, start, s.clock)
		logrus.Debugf("[tick %07d] T%d ran slice %d..%d, remaining %d (queue %s)",
			s.clock, t.ID, start, s.clock, t.Remaining, rq)

		consumed += slice
		if consumed > s.budget {
			return divergencef("tick budget %d exceeded with %d/%d tasks complete", s.budget, completed, n)
		}

		admit() // slice-period arrivals enter ahead of the incumbent
		if t.Remaining == 0 {
			t.Completion = s.clock
			t.State = StateCompleted
			completed++
		} else {
			t.State = StateReady
			rq.Enqueue(t)
		}
	}
	return nil
}
