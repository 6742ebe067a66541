package processor

import (
	"testing"
	"time"

	"session-stream/pkg/common_errors"
)

func TestSessionWindowsRejectsNegativeGap(t *testing.T) {
	_, err := NewSessionWindowsNoGrace(-1 * time.Millisecond)
	if err != common_errors.ErrNegativeInactivityGap {
		t.Fatalf("expected ErrNegativeInactivityGap, got %v", err)
	}
}

func TestSessionWindowsRejectsNegativeGrace(t *testing.T) {
	_, err := NewSessionWindowsWithGrace(5*time.Millisecond, -1*time.Millisecond)
	if err != common_errors.ErrNegativeGracePeriod {
		t.Fatalf("expected ErrNegativeGracePeriod, got %v", err)
	}
}

func TestSessionWindowsZeroGapAllowed(t *testing.T) {
	w, err := NewSessionWindowsNoGrace(0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if w.GapMs() != 0 || w.GracePeriodMs() != 0 {
		t.Fatalf("expected zero gap and grace, got %d and %d", w.GapMs(), w.GracePeriodMs())
	}
}
