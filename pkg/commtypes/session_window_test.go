package commtypes

import (
	"testing"

	"session-stream/pkg/common_errors"
)

func mustWindow(t testing.TB, start int64, end int64) SessionWindow {
	w, err := NewSessionWindow(start, end)
	if err != nil {
		t.Fatalf("fail to create session window: %v", err)
	}
	return w
}

func TestSessionWindowRejectsEndBeforeStart(t *testing.T) {
	_, err := NewSessionWindow(10, 5)
	if err != common_errors.ErrWindowEndBeforeStart {
		t.Fatalf("expected ErrWindowEndBeforeStart, got %v", err)
	}
}

func TestSessionWindowPointWindow(t *testing.T) {
	w := mustWindow(t, 7, 7)
	if w.Start() != 7 || w.End() != 7 {
		t.Fatalf("expected [7, 7], got [%d, %d]", w.Start(), w.End())
	}
}

func TestSessionWindowOverlap(t *testing.T) {
	a := mustWindow(t, 0, 10)
	cases := []struct {
		name    string
		other   SessionWindow
		overlap bool
	}{
		{"contained", mustWindow(t, 3, 6), true},
		{"touchesEnd", mustWindow(t, 10, 20), true},
		{"touchesStart", mustWindow(t, 0, 0), true},
		{"disjointAfter", mustWindow(t, 11, 20), false},
	}
	for _, c := range cases {
		other := c.other
		if got := a.Overlap(&other); got != c.overlap {
			t.Fatalf("%s: expected overlap %v, got %v", c.name, c.overlap, got)
		}
		// overlap is symmetric
		if got := other.Overlap(&a); got != c.overlap {
			t.Fatalf("%s reversed: expected overlap %v, got %v", c.name, c.overlap, got)
		}
	}
}

func TestMergeSessionWindow(t *testing.T) {
	merged := MergeSessionWindow(mustWindow(t, 5, 8), mustWindow(t, 2, 6))
	if merged.Start() != 2 || merged.End() != 8 {
		t.Fatalf("expected [2, 8], got [%d, %d]", merged.Start(), merged.End())
	}
	same := MergeSessionWindow(merged, merged)
	if !same.Equal(merged) {
		t.Fatalf("merging a window with itself should be identity")
	}
}

func TestStreamTimeTrackerNeverDecreases(t *testing.T) {
	tracker := NewStreamTimeTracker()
	if tracker.GetStreamTime() != RecordTimestampUnknown {
		t.Fatalf("expected initial stream time %d, got %d", RecordTimestampUnknown, tracker.GetStreamTime())
	}
	if got := tracker.AdvanceStreamTime(100); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	// an older timestamp leaves the watermark alone
	if got := tracker.AdvanceStreamTime(40); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	if got := tracker.AdvanceStreamTime(160); got != 160 {
		t.Fatalf("expected 160, got %d", got)
	}
}
