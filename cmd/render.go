// Table and Gantt rendering for run results. The engine mandates no output
// format; everything here is presentation over sim.Result.

package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	sim "github.com/proc-sim/proc-sim/sim"
)

// renderResult prints one run: title, optional Gantt line, the per-task
// schedule table with average footers, and the trace summary.
func renderResult(w io.Writer, result *sim.Result, gantt bool) {
	fmt.Fprintf(w, "------ %s ------\n", result.Policy)
	if gantt {
		outputGantt(w, result)
	}

	rows := make([][]string, len(result.Metrics.Tasks))
	for i, t := range result.Metrics.Tasks {
		rows[i] = []string{
			fmt.Sprintf("P%d", t.ID),
			strconv.FormatInt(t.Arrival, 10),
			strconv.FormatInt(t.Burst, 10),
			strconv.FormatInt(t.Priority, 10),
			strconv.FormatInt(t.Completion, 10),
			strconv.FormatInt(t.Turnaround, 10),
			strconv.FormatInt(t.Waiting, 10),
			strconv.FormatInt(t.Response, 10),
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Priority", "Completion", "Turnaround", "Waiting", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.Metrics.AvgTurnaround),
		fmt.Sprintf("Average\n%.2f", result.Metrics.AvgWaiting),
		fmt.Sprintf("Average\n%.2f", result.Metrics.AvgResponse),
	})
	table.Render()

	fmt.Fprintf(w, "Makespan %d ticks, utilization %.2f, %d context switches, %d preemptions (run %s)\n\n",
		result.Summary.Makespan, result.Summary.Utilization,
		result.Summary.ContextSwitches, result.Summary.Preemptions, result.RunID)
}

// outputGantt prints the allocation slices as a chart line: task labels
// between bars, slice boundary ticks below.
func outputGantt(w io.Writer, result *sim.Result) {
	fmt.Fprintln(w, "Gantt schedule")
	fmt.Fprint(w, "|")
	for _, s := range result.Trace.Slices {
		label := fmt.Sprintf("P%d", s.TaskID)
		padding := strings.Repeat(" ", (8-len(label))/2)
		fmt.Fprint(w, padding, label, padding, "|")
	}
	fmt.Fprintln(w)
	for i, s := range result.Trace.Slices {
		fmt.Fprint(w, s.Start, "\t")
		if i == len(result.Trace.Slices)-1 {
			fmt.Fprint(w, s.End)
		}
	}
	fmt.Fprintf(w, "\n\n")
}

// renderComparison prints one row of averages per policy.
func renderComparison(w io.Writer, results []*sim.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg Turnaround", "Avg Waiting", "Avg Response", "Context Switches", "Preemptions"})
	for _, r := range results {
		table.Append([]string{
			r.Policy.String(),
			fmt.Sprintf("%.2f", r.Metrics.AvgTurnaround),
			fmt.Sprintf("%.2f", r.Metrics.AvgWaiting),
			fmt.Sprintf("%.2f", r.Metrics.AvgResponse),
			strconv.Itoa(r.Summary.ContextSwitches),
			strconv.Itoa(r.Summary.Preemptions),
		})
	}
	table.Render()
}

// renderSweep prints one row of averages per quantum value.
func renderSweep(w io.Writer, quantumMin int64, results []*sim.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Quantum", "Avg Turnaround", "Avg Waiting", "Avg Response", "Context Switches"})
	for i, r := range results {
		table.Append([]string{
			strconv.FormatInt(quantumMin+int64(i), 10),
			fmt.Sprintf("%.2f", r.Metrics.AvgTurnaround),
			fmt.Sprintf("%.2f", r.Metrics.AvgWaiting),
			fmt.Sprintf("%.2f", r.Metrics.AvgResponse),
			strconv.Itoa(r.Summary.ContextSwitches),
		})
	}
	table.Render()
}

// writeCSV exports per-task results for external tooling.
func writeCSV(path string, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"run_id", "policy", "id", "arrival", "burst", "priority",
		"completion", "turnaround", "waiting", "response"}); err != nil {
		return err
	}
	for _, t := range result.Metrics.Tasks {
		rec := []string{
			result.RunID,
			string(result.Policy),
			strconv.Itoa(t.ID),
			strconv.FormatInt(t.Arrival, 10),
			strconv.FormatInt(t.Burst, 10),
			strconv.FormatInt(t.Priority, 10),
			strconv.FormatInt(t.Completion, 10),
			strconv.FormatInt(t.Turnaround, 10),
			strconv.FormatInt(t.Waiting, 10),
			strconv.FormatInt(t.Response, 10),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
