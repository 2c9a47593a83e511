// sim/simulator.go
package sim

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/proc-sim/proc-sim/sim/trace"
)

// Simulator is the core object that holds one run's clock, task arena, and
// allocation trace. A Simulator is single-use: NewSimulator validates the
// input and materializes fresh task state, Run executes to completion, and
// nothing is shared with any other run. Independent runs over the same specs
// are therefore safe to execute concurrently.
type Simulator struct {
	RunID   string
	Policy  Policy
	Quantum int64
	Aging   *AgingPolicy

	clock  int64
	tasks  []*Task
	trace  *trace.Trace
	budget int64 // divergence guard: sum of bursts plus the latest arrival
}

// Result is the complete outcome of one run: per-task metrics, the
// allocation trace, and its summary.
type Result struct {
	RunID   string
	Policy  Policy
	Metrics *Metrics
	Trace   *trace.Trace
	Summary *trace.Summary
}

// NewSimulator validates the run spec and prepares an isolated run.
// All input errors wrap ErrInvalidInput and are reported before any
// simulation state exists.
func NewSimulator(spec RunSpec) (*Simulator, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	policy, err := ParsePolicy(spec.Policy)
	if err != nil {
		return nil, err
	}

	var totalBurst, maxArrival int64
	for _, t := range spec.Tasks {
		totalBurst += t.Burst
		if t.Arrival > maxArrival {
			maxArrival = t.Arrival
		}
	}

	s := &Simulator{
		RunID:   uuid.NewString(),
		Policy:  policy,
		Quantum: spec.Quantum,
		Aging:   spec.agingPolicy(),
		tasks:   buildTasks(spec.Tasks),
		budget:  totalBurst + maxArrival,
	}
	s.trace = trace.New(s.RunID, string(policy))
	return s, nil
}

// Run executes the simulation to completion and aggregates metrics.
// The only possible error is ErrDivergence, which indicates a broken
// internal invariant, never bad input.
func (s *Simulator) Run() (*Result, error) {
	logrus.Infof("run %s: %s over %d tasks", s.RunID, s.Policy, len(s.tasks))

	var err error
	switch s.Policy {
	case PolicySRTF:
		err = s.runSRTF()
	case PolicyRoundRobin:
		err = s.runRoundRobin()
	default:
		err = s.runNonPreemptive(newSelector(s.Policy, s.Aging))
	}
	if err != nil {
		return nil, err
	}

	summary := trace.Summarize(s.trace)
	logrus.Infof("run %s: done at tick %d (%d slices, %d preemptions)",
		s.RunID, s.clock, len(s.trace.Slices), summary.Preemptions)

	return &Result{
		RunID:   s.RunID,
		Policy:  s.Policy,
		Metrics: Aggregate(s.tasks, s.trace),
		Trace:   s.trace,
		Summary: summary,
	}, nil
}

// Run validates and executes a single scheduling run. It is the package's
// one-call entry point; callers comparing policies invoke it once per policy,
// each call on its own isolated task state.
func Run(spec RunSpec) (*Result, error) {
	s, err := NewSimulator(spec)
	if err != nil {
		return nil, err
	}
	return s.Run()
}
