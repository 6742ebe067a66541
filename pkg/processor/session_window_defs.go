package processor

import (
	"time"

	"session-stream/pkg/common_errors"
)

// SessionWindows groups records into per-key sessions separated by gaps of
// inactivity. Two records of the same key belong to the same session when
// their timestamps are at most the inactivity gap apart.
type SessionWindows struct {
	gapMs   int64
	graceMs int64
}

func NewSessionWindowsNoGrace(inactivityGap time.Duration) (*SessionWindows, error) {
	return NewSessionWindowsWithGrace(inactivityGap, 0)
}

// NewSessionWindowsWithGrace admits out of order records for afterWindowEnd
// past the point where the inactivity gap alone would have closed a session.
func NewSessionWindowsWithGrace(inactivityGap time.Duration, afterWindowEnd time.Duration) (*SessionWindows, error) {
	gapMs := inactivityGap.Milliseconds()
	if gapMs < 0 {
		return nil, common_errors.ErrNegativeInactivityGap
	}
	graceMs := afterWindowEnd.Milliseconds()
	if graceMs < 0 {
		return nil, common_errors.ErrNegativeGracePeriod
	}
	return &SessionWindows{
		gapMs:   gapMs,
		graceMs: graceMs,
	}, nil
}

func (w *SessionWindows) GapMs() int64 { return w.gapMs }

func (w *SessionWindows) GracePeriodMs() int64 { return w.graceMs }
