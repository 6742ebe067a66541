package commtypes

import "session-stream/pkg/utils/syncutils"

// RecordTimestampUnknown is the sentinel the stream-time watermark starts
// from; any real record timestamp advances past it.
const RecordTimestampUnknown int64 = -1

type StreamTimeTracker interface {
	// AdvanceStreamTime moves the watermark to max(current, ts) and returns
	// the watermark after the update. It never decreases.
	AdvanceStreamTime(ts int64) int64
	GetStreamTime() int64
}

type streamTimeTracker struct {
	lock      syncutils.Mutex
	timeStamp int64
}

func NewStreamTimeTracker() StreamTimeTracker {
	return &streamTimeTracker{
		timeStamp: RecordTimestampUnknown,
	}
}

func (s *streamTimeTracker) AdvanceStreamTime(ts int64) int64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	if ts > s.timeStamp {
		s.timeStamp = ts
	}
	return s.timeStamp
}

func (s *streamTimeTracker) GetStreamTime() int64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.timeStamp
}
