// Package sim provides a deterministic single-CPU scheduling simulation
// engine for the classical dispatching policies: FCFS, SJF (non-preemptive
// and preemptive/SRTF), Round Robin, and non-preemptive Priority.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - task.go: Task lifecycle (unarrived → ready → running → completed) and input validation
//   - scheduler.go: the per-policy dispatch loops (clock jumps, ticks, quanta)
//   - metrics.go: turnaround/waiting/response aggregation over a finished run
//
// # Contracts
//
// A run is a pure function of its RunSpec: same tasks, policy, and
// parameters always produce bit-identical results. Ties everywhere resolve
// by arrival time and finally by task ID (input order), so no schedule
// depends on map iteration or sort instability. Malformed input is rejected
// up front with ErrInvalidInput; the divergence guard turns any broken
// internal invariant into ErrDivergence instead of a hang.
//
// Runs share no state, so callers may execute independent runs concurrently
// (policy comparisons, quantum sweeps) without synchronization.
//
// Allocation slices are recorded in the sim/trace sub-package; rendering and
// file I/O are the caller's concern.
package sim
