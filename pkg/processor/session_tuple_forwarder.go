package processor

import (
	"session-stream/pkg/commtypes"
	"session-stream/pkg/optional"

	"github.com/gammazero/deque"
)

// SessionTupleForwarderG buffers the change records one input record
// produces (session deletions followed by the merged insertion) so they
// are emitted downstream in exactly that order. The forwarded timestamp is
// always the session window end time.
type SessionTupleForwarderG[K, V any] struct {
	buffered      *deque.Deque[commtypes.MessageG[commtypes.WindowedKeyG[K], commtypes.ChangeG[V]]]
	sendOldValues bool
}

func NewSessionTupleForwarderG[K, V any](sendOldValues bool) *SessionTupleForwarderG[K, V] {
	return &SessionTupleForwarderG[K, V]{
		buffered:      deque.New[commtypes.MessageG[commtypes.WindowedKeyG[K], commtypes.ChangeG[V]]](),
		sendOldValues: sendOldValues,
	}
}

// MaybeForward enqueues a change for the given session. Without
// sendOldValues the old value is stripped first; a change that then
// carries neither value is a no-op and is suppressed.
func (f *SessionTupleForwarderG[K, V]) MaybeForward(sessionKey commtypes.WindowedKeyG[K],
	newVal optional.Option[V], oldVal optional.Option[V],
) {
	if !f.sendOldValues {
		oldVal = optional.None[V]()
	}
	if newVal.IsNone() && oldVal.IsNone() {
		return
	}
	f.buffered.PushBack(commtypes.MessageG[commtypes.WindowedKeyG[K], commtypes.ChangeG[V]]{
		Key:       optional.Some(sessionKey),
		Value:     optional.Some(commtypes.ChangeG[V]{NewVal: newVal, OldVal: oldVal}),
		Timestamp: sessionKey.Window.End(),
	})
}

// Drain hands out everything forwarded so far in FIFO order.
func (f *SessionTupleForwarderG[K, V]) Drain() []commtypes.MessageG[commtypes.WindowedKeyG[K], commtypes.ChangeG[V]] {
	if f.buffered.Len() == 0 {
		return nil
	}
	out := make([]commtypes.MessageG[commtypes.WindowedKeyG[K], commtypes.ChangeG[V]], 0, f.buffered.Len())
	for f.buffered.Len() > 0 {
		out = append(out, f.buffered.PopFront())
	}
	return out
}
