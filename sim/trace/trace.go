package trace

// Trace collects the CPU allocation slices of one scheduling run.
// Idle gaps are represented by holes between slices, never by slices.
type Trace struct {
	RunID  string // caller-assigned run identifier
	Policy string // policy name, for reporting only
	Slices []Slice
}

// New creates a Trace ready for recording.
func New(runID, policy string) *Trace {
	return &Trace{
		RunID:  runID,
		Policy: policy,
		Slices: make([]Slice, 0),
	}
}

// Record appends an allocation of taskID over [start, end). A slice that
// continues the previous one for the same task is merged, so tick-driven
// and event-driven runs of the same schedule produce identical traces.
func (t *Trace) Record(taskID int, start, end int64) {
	if n := len(t.Slices); n > 0 {
		last := &t.Slices[n-1]
		if last.TaskID == taskID && last.End == start {
			last.End = end
			return
		}
	}
	t.Slices = append(t.Slices, Slice{TaskID: taskID, Start: start, End: end})
}

// TotalAllocated returns the summed duration of all slices.
func (t *Trace) TotalAllocated() int64 {
	var total int64
	for _, s := range t.Slices {
		total += s.Duration()
	}
	return total
}
