// Package trace provides allocation-trace recording for scheduling analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// Slice captures one contiguous CPU allocation: task ID and the half-open
// tick interval [Start, End) it ran for.
type Slice struct {
	TaskID int
	Start  int64
	End    int64
}

// Duration returns the slice length in ticks.
func (s Slice) Duration() int64 {
	return s.End - s.Start
}
