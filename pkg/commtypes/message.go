package commtypes

import (
	"fmt"

	"session-stream/pkg/optional"
)

// MessageG is a keyed record flowing through the processor graph. Key and
// Value are optional: a tombstone carries no value, and repartitioned
// records may carry no key.
type MessageG[K, V any] struct {
	Key       optional.Option[K]
	Value     optional.Option[V]
	Timestamp int64
	InjT      int64
}

var _ = fmt.Stringer(MessageG[int, int]{})

func (m MessageG[K, V]) String() string {
	return fmt.Sprintf("MsgG: {Key: %s, Value: %s, Ts: %d, InjectTs: %d}", m.Key, m.Value, m.Timestamp, m.InjT)
}

func (m *MessageG[K, V]) UpdateInjectTime(ts int64) {
	m.InjT = ts
}

func (m MessageG[K, V]) ExtractInjectTimeMs() int64 {
	return m.InjT
}

func (m MessageG[K, V]) ExtractEventTime() (int64, error) {
	return m.Timestamp, nil
}

func (m *MessageG[K, V]) UpdateEventTime(ts int64) {
	m.Timestamp = ts
}
