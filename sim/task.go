// Defines the Task struct that models a single process in the simulation.
// Tracks arrival, CPU demand, remaining work, and the timestamps needed
// for turnaround/waiting/response accounting.

package sim

import (
	"fmt"
)

// TaskState represents the lifecycle state of a task.
type TaskState string

const (
	StateUnarrived TaskState = "unarrived"
	StateReady     TaskState = "ready"
	StateRunning   TaskState = "running"
	StateCompleted TaskState = "completed"
)

// TaskSpec is the immutable input descriptor for one task.
// Priority is only consulted by the priority policy; lower value means
// higher priority.
type TaskSpec struct {
	Arrival  int64 `yaml:"arrival"`
	Burst    int64 `yaml:"burst"`
	Priority int64 `yaml:"priority"`
}

// Task is the simulation-state view of a TaskSpec. One Task belongs to
// exactly one Simulator run; tasks are arena-indexed by ID (1-based input
// order) and never shared across runs.
type Task struct {
	ID       int   // 1-based input order; final tie-break only, never a priority
	Arrival  int64 // tick the task becomes ready
	Burst    int64 // total CPU demand in ticks
	Priority int64 // lower = higher priority (priority policy only)

	Remaining  int64     // ticks of work left; reaches 0 exactly once
	State      TaskState // unarrived, ready, running, completed
	Start      int64     // tick of first dispatch; -1 until dispatched
	Completion int64     // tick Remaining hit 0; -1 until completed
}

// Turnaround is completion minus arrival. Only meaningful once completed.
func (t *Task) Turnaround() int64 {
	return t.Completion - t.Arrival
}

// Waiting is turnaround minus burst: time spent ready but not running.
func (t *Task) Waiting() int64 {
	return t.Turnaround() - t.Burst
}

// Response is the delay from arrival to first dispatch.
func (t *Task) Response() int64 {
	return t.Start - t.Arrival
}

// readyAt reports whether the task has arrived and still has work left.
func (t *Task) readyAt(clock int64) bool {
	return t.Arrival <= clock && t.Remaining > 0
}

func (t Task) String() string {
	return fmt.Sprintf("Task: (ID: %d, State: %s, Arrival: %d, Remaining: %d/%d)",
		t.ID, t.State, t.Arrival, t.Remaining, t.Burst)
}

// buildTasks materializes fresh simulation state from validated specs.
// IDs follow input order so every run over the same specs starts identical.
func buildTasks(specs []TaskSpec) []*Task {
	tasks := make([]*Task, len(specs))
	for i, s := range specs {
		tasks[i] = &Task{
			ID:         i + 1,
			Arrival:    s.Arrival,
			Burst:      s.Burst,
			Priority:   s.Priority,
			Remaining:  s.Burst,
			State:      StateUnarrived,
			Start:      -1,
			Completion: -1,
		}
	}
	return tasks
}

// validateSpecs rejects malformed input before any simulation state exists.
// The returned error names the offending field and task position.
func validateSpecs(specs []TaskSpec) error {
	if len(specs) == 0 {
		return invalidInputf("task list is empty")
	}
	for i, s := range specs {
		if s.Arrival < 0 {
			return invalidInputf("task %d: arrival must be >= 0, got %d", i+1, s.Arrival)
		}
		if s.Burst < 1 {
			return invalidInputf("task %d: burst must be >= 1, got %d", i+1, s.Burst)
		}
	}
	return nil
}
