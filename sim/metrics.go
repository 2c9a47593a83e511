// Aggregates per-task and simulation-wide performance metrics:
// completion, turnaround, waiting, and response times plus their averages.

package sim

import (
	"fmt"

	"github.com/proc-sim/proc-sim/sim/trace"
)

// TaskMetrics is the computed row for one completed task.
type TaskMetrics struct {
	ID         int
	Arrival    int64
	Burst      int64
	Priority   int64
	Start      int64 // first dispatch tick
	Completion int64
	Turnaround int64 // Completion - Arrival
	Waiting    int64 // Turnaround - Burst
	Response   int64 // Start - Arrival
}

// Metrics aggregates statistics about one completed run for final reporting.
type Metrics struct {
	Tasks []TaskMetrics // in task ID order

	AvgTurnaround float64
	AvgWaiting    float64
	AvgResponse   float64
	P95Waiting    float64

	// Throughput is tasks completed per tick of makespan.
	Throughput float64
}

// Aggregate derives metrics from a completed task list and its trace.
// It is a pure function: task state is read, never mutated, and it must only
// be called once every task has a completion time.
func Aggregate(tasks []*Task, tr *trace.Trace) *Metrics {
	m := &Metrics{Tasks: make([]TaskMetrics, len(tasks))}

	turnarounds := make([]int64, len(tasks))
	waits := make([]int64, len(tasks))
	responses := make([]int64, len(tasks))
	for i, t := range tasks {
		m.Tasks[i] = TaskMetrics{
			ID:         t.ID,
			Arrival:    t.Arrival,
			Burst:      t.Burst,
			Priority:   t.Priority,
			Start:      t.Start,
			Completion: t.Completion,
			Turnaround: t.Turnaround(),
			Waiting:    t.Waiting(),
			Response:   t.Response(),
		}
		turnarounds[i] = t.Turnaround()
		waits[i] = t.Waiting()
		responses[i] = t.Response()
	}

	m.AvgTurnaround = Mean(turnarounds)
	m.AvgWaiting = Mean(waits)
	m.AvgResponse = Mean(responses)
	m.P95Waiting = Percentile(waits, 95)

	if summary := trace.Summarize(tr); summary.Makespan > 0 {
		m.Throughput = float64(len(tasks)) / float64(summary.Makespan)
	}
	return m
}

// Print displays the aggregate metrics at the end of a run.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Completed Tasks        : %d\n", len(m.Tasks))
	fmt.Printf("Average Turnaround     : %.2f ticks\n", m.AvgTurnaround)
	fmt.Printf("Average Waiting        : %.2f ticks\n", m.AvgWaiting)
	fmt.Printf("Average Response       : %.2f ticks\n", m.AvgResponse)
	fmt.Printf("P95 Waiting            : %.2f ticks\n", m.P95Waiting)
	fmt.Printf("Throughput             : %.4f tasks/tick\n", m.Throughput)
}
