package trace

// Summary aggregates statistics from a Trace.
type Summary struct {
	Makespan        int64   // last completion tick minus first dispatch tick
	Busy            int64   // total allocated ticks
	Idle            int64   // makespan minus busy (gaps with no ready task)
	Utilization     float64 // busy / makespan; 0 for an empty trace
	ContextSwitches int     // adjacent slice pairs with different tasks
	Preemptions     int     // slices after which the same task ran again later
}

// Summarize computes aggregate statistics from a Trace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(t *Trace) *Summary {
	summary := &Summary{}
	if t == nil || len(t.Slices) == 0 {
		return summary
	}

	first := t.Slices[0].Start
	last := t.Slices[len(t.Slices)-1].End
	summary.Makespan = last - first
	summary.Busy = t.TotalAllocated()
	summary.Idle = summary.Makespan - summary.Busy
	if summary.Makespan > 0 {
		summary.Utilization = float64(summary.Busy) / float64(summary.Makespan)
	}

	for i := 1; i < len(t.Slices); i++ {
		if t.Slices[i].TaskID != t.Slices[i-1].TaskID {
			summary.ContextSwitches++
		}
	}

	// A slice is a preemption if its task shows up again in a later slice:
	// it was descheduled with work left.
	lastSlice := make(map[int]int)
	for i, s := range t.Slices {
		lastSlice[s.TaskID] = i
	}
	for i, s := range t.Slices {
		if lastSlice[s.TaskID] > i {
			summary.Preemptions++
		}
	}

	return summary
}
