package cmd

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/proc-sim/proc-sim/sim"
)

func sampleResult(t *testing.T) *sim.Result {
	t.Helper()
	result, err := sim.Run(sim.RunSpec{Policy: "rr", Quantum: 4, Tasks: []sim.TaskSpec{
		{Arrival: 0, Burst: 8},
		{Arrival: 0, Burst: 4},
		{Arrival: 0, Burst: 2},
	}})
	require.NoError(t, err)
	return result
}

func TestRenderResult_TableAndGantt(t *testing.T) {
	// GIVEN a finished Round Robin run
	result := sampleResult(t)

	// WHEN rendered with the Gantt line enabled
	var buf bytes.Buffer
	renderResult(&buf, result, true)
	out := buf.String()

	// THEN the chart, every task row, and the averages footer appear
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "P3")
	assert.Contains(t, out, "TURNAROUND")
	// average turnaround of this run is (14+8+10)/3
	assert.Contains(t, out, "10.67")
	assert.Contains(t, out, result.RunID)
}

func TestRenderResult_GanttSuppressed(t *testing.T) {
	result := sampleResult(t)

	var buf bytes.Buffer
	renderResult(&buf, result, false)

	assert.NotContains(t, buf.String(), "Gantt schedule")
}

func TestRenderComparison_OneRowPerPolicy(t *testing.T) {
	tasks := []sim.TaskSpec{{Arrival: 0, Burst: 3}, {Arrival: 1, Burst: 2}}
	var results []*sim.Result
	for _, p := range sim.AllPolicies() {
		spec := sim.RunSpec{Policy: string(p), Tasks: tasks}
		if p.NeedsQuantum() {
			spec.Quantum = 2
		}
		result, err := sim.Run(spec)
		require.NoError(t, err)
		results = append(results, result)
	}

	var buf bytes.Buffer
	renderComparison(&buf, results)
	out := buf.String()

	assert.Contains(t, out, "FCFS")
	assert.Contains(t, out, "Round Robin")
	assert.Contains(t, out, "SRTF")
}

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	result := sampleResult(t)
	path := filepath.Join(t.TempDir(), "results.csv")

	require.NoError(t, writeCSV(path, result))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 4, "header plus one row per task")
	assert.Equal(t, "run_id", records[0][0])
	assert.Equal(t, "waiting", records[0][8])
	assert.Equal(t, "1", records[1][2], "first data row is task 1")
}
