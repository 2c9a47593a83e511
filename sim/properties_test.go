// Cross-policy properties every schedule must satisfy, checked over a grab
// bag of task sets rather than one hand-picked scenario.

package sim

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// propertySets covers simultaneous arrivals, staggered arrivals, idle gaps,
// duplicate bursts, and single-task runs.
var propertySets = [][]TaskSpec{
	{{Arrival: 0, Burst: 8}, {Arrival: 0, Burst: 4}, {Arrival: 0, Burst: 2}},
	{{Arrival: 0, Burst: 5, Priority: 3}, {Arrival: 2, Burst: 5, Priority: 1}, {Arrival: 4, Burst: 1, Priority: 2}},
	{{Arrival: 3, Burst: 4}, {Arrival: 3, Burst: 4}, {Arrival: 3, Burst: 4}},
	{{Arrival: 0, Burst: 1}, {Arrival: 20, Burst: 7}, {Arrival: 21, Burst: 2}},
	{{Arrival: 6, Burst: 9}},
}

func runAllPolicies(t *testing.T, tasks []TaskSpec) []*Result {
	t.Helper()
	var results []*Result
	for _, p := range AllPolicies() {
		spec := RunSpec{Policy: string(p), Tasks: tasks}
		if p.NeedsQuantum() {
			spec.Quantum = 3
		}
		results = append(results, mustRun(t, spec))
	}
	return results
}

func TestConservation_AllocatedTicksEqualTotalBurst(t *testing.T) {
	for _, tasks := range propertySets {
		var totalBurst int64
		for _, ts := range tasks {
			totalBurst += ts.Burst
		}
		for _, result := range runAllPolicies(t, tasks) {
			if got := result.Trace.TotalAllocated(); got != totalBurst {
				t.Errorf("%s: allocated %d ticks, want %d", result.Policy, got, totalBurst)
			}
		}
	}
}

func TestNonNegativity_WaitingAndTurnaroundBounds(t *testing.T) {
	for _, tasks := range propertySets {
		for _, result := range runAllPolicies(t, tasks) {
			for _, tm := range result.Metrics.Tasks {
				if tm.Waiting < 0 {
					t.Errorf("%s: task %d waiting %d < 0", result.Policy, tm.ID, tm.Waiting)
				}
				if tm.Turnaround < tm.Burst {
					t.Errorf("%s: task %d turnaround %d < burst %d", result.Policy, tm.ID, tm.Turnaround, tm.Burst)
				}
				if tm.Response < 0 || tm.Response > tm.Waiting {
					t.Errorf("%s: task %d response %d outside [0, waiting=%d]", result.Policy, tm.ID, tm.Response, tm.Waiting)
				}
			}
		}
	}
}

func TestFCFS_CompletionOrderIsArrivalOrder(t *testing.T) {
	for _, tasks := range propertySets {
		result := mustRun(t, RunSpec{Policy: "fcfs", Tasks: tasks})
		var prev int64 = -1
		order := arrivalOrder(buildTasks(tasks))
		for _, idx := range order {
			completion := result.Metrics.Tasks[idx].Completion
			if completion <= prev {
				t.Errorf("FCFS completion out of arrival order for set %v", tasks)
			}
			prev = completion
		}
	}
}

func TestSJF_AverageWaitingNotWorseThanFCFS(t *testing.T) {
	// Holds whenever all tasks are available at time 0.
	sets := [][]TaskSpec{
		{{Burst: 8}, {Burst: 4}, {Burst: 2}},
		{{Burst: 1}, {Burst: 1}, {Burst: 9}, {Burst: 3}},
		{{Burst: 6}, {Burst: 6}},
	}
	for _, tasks := range sets {
		sjf := mustRun(t, RunSpec{Policy: "sjf", Tasks: tasks})
		fcfs := mustRun(t, RunSpec{Policy: "fcfs", Tasks: tasks})
		if sjf.Metrics.AvgWaiting > fcfs.Metrics.AvgWaiting {
			t.Errorf("SJF avg waiting %v exceeds FCFS %v for %v",
				sjf.Metrics.AvgWaiting, fcfs.Metrics.AvgWaiting, tasks)
		}
	}
}

func TestRoundRobin_DispatchCyclesBounded(t *testing.T) {
	for quantum := int64(1); quantum <= 5; quantum++ {
		result := mustRun(t, RunSpec{Policy: "rr", Quantum: quantum, Tasks: []TaskSpec{
			{Arrival: 0, Burst: 8}, {Arrival: 0, Burst: 4}, {Arrival: 3, Burst: 5},
		}})
		// Slices per task never exceed ceil(burst/quantum); merging can only
		// reduce the count.
		perTask := make(map[int]int64)
		for _, s := range result.Trace.Slices {
			perTask[s.TaskID]++
		}
		bursts := map[int]int64{1: 8, 2: 4, 3: 5}
		for id, burst := range bursts {
			bound := (burst + quantum - 1) / quantum
			if perTask[id] > bound {
				t.Errorf("quantum %d: task %d used %d cycles, bound %d", quantum, id, perTask[id], bound)
			}
		}
	}
}

func TestDeterminism_RepeatedRunsBitIdentical(t *testing.T) {
	for _, tasks := range propertySets {
		for _, p := range AllPolicies() {
			spec := RunSpec{Policy: string(p), Tasks: tasks}
			if p.NeedsQuantum() {
				spec.Quantum = 2
			}
			a := mustRun(t, spec)
			b := mustRun(t, spec)
			if diff := cmp.Diff(a.Metrics, b.Metrics); diff != "" {
				t.Errorf("%s: metrics differ across identical runs:\n%s", p, diff)
			}
			if diff := cmp.Diff(a.Trace.Slices, b.Trace.Slices); diff != "" {
				t.Errorf("%s: traces differ across identical runs:\n%s", p, diff)
			}
		}
	}
}

func TestIsolation_ConcurrentRunsDoNotInterfere(t *testing.T) {
	// Each invocation builds its own task arena, so parallel runs over the
	// same spec must all agree with a sequential run.
	spec := RunSpec{Policy: "srtf", Tasks: propertySets[1]}
	want := mustRun(t, spec)

	const workers = 8
	results := make([]*Result, workers)
	errs := make([]error, workers)
	done := make(chan int, workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			results[i], errs[i] = Run(spec)
			done <- i
		}(i)
	}
	for i := 0; i < workers; i++ {
		<-done
	}
	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d: %v", i, errs[i])
		}
		if diff := cmp.Diff(want.Trace.Slices, results[i].Trace.Slices); diff != "" {
			t.Errorf("worker %d trace diverged:\n%s", i, diff)
		}
	}
}
