package trace

import (
	"testing"
)

func TestRecord_AppendsSlices(t *testing.T) {
	tr := New("run-1", "fcfs")
	tr.Record(1, 0, 4)
	tr.Record(2, 4, 6)

	if len(tr.Slices) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(tr.Slices))
	}
	if tr.Slices[0] != (Slice{TaskID: 1, Start: 0, End: 4}) {
		t.Errorf("first slice: got %+v", tr.Slices[0])
	}
}

func TestRecord_MergesContiguousSameTask(t *testing.T) {
	// GIVEN per-tick recordings of the same running task
	tr := New("run-1", "srtf")
	tr.Record(1, 0, 1)
	tr.Record(1, 1, 2)
	tr.Record(1, 2, 3)

	// THEN they collapse into one slice, identical to an event-driven run
	if len(tr.Slices) != 1 {
		t.Fatalf("expected 1 merged slice, got %d", len(tr.Slices))
	}
	if tr.Slices[0] != (Slice{TaskID: 1, Start: 0, End: 3}) {
		t.Errorf("merged slice: got %+v", tr.Slices[0])
	}
}

func TestRecord_NoMergeAcrossIdleGap(t *testing.T) {
	// Same task but non-contiguous ticks: the idle hole must survive
	tr := New("run-1", "fcfs")
	tr.Record(1, 0, 2)
	tr.Record(1, 10, 12)

	if len(tr.Slices) != 2 {
		t.Fatalf("expected 2 slices across the gap, got %d", len(tr.Slices))
	}
}

func TestRecord_NoMergeAcrossTaskSwitch(t *testing.T) {
	tr := New("run-1", "rr")
	tr.Record(1, 0, 2)
	tr.Record(2, 2, 4)
	tr.Record(1, 4, 6)

	if len(tr.Slices) != 3 {
		t.Fatalf("expected 3 slices, got %d", len(tr.Slices))
	}
}

func TestTotalAllocated_SumsDurations(t *testing.T) {
	tr := New("run-1", "rr")
	tr.Record(1, 0, 3)
	tr.Record(2, 5, 9)

	if got := tr.TotalAllocated(); got != 7 {
		t.Errorf("TotalAllocated: got %d, want 7", got)
	}
}
