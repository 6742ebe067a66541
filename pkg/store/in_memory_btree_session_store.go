package store

import (
	"context"
	"math"

	"session-stream/pkg/commtypes"
	"session-stream/pkg/optional"
	"session-stream/pkg/utils/syncutils"

	"github.com/google/btree"
	"github.com/rs/zerolog/log"
)

type sessionEntryG[K, V any] struct {
	key   K
	val   V
	end   int64
	start int64
}

// InMemoryBTreeSessionStoreG keeps sessions in a single btree ordered by
// (key, end, start), so all sessions of one key sit in one contiguous run
// ordered by end time.
type InMemoryBTreeSessionStoreG[K, V any] struct {
	mux                syncutils.Mutex
	store              *btree.BTreeG[sessionEntryG[K, V]]
	compareFunc        CompareFuncG[K]
	kvPairSerde        commtypes.SerdeG[commtypes.KeyValuePair[commtypes.WindowedKeyG[K], V]]
	name               string
	retentionPeriod    int64
	observedStreamTime int64
}

var _ = CoreSessionStoreG[int, int](&InMemoryBTreeSessionStoreG[int, int]{})

func NewInMemoryBTreeSessionStore[K, V any](name string, retentionPeriod int64,
	compareFunc CompareFuncG[K],
) *InMemoryBTreeSessionStoreG[K, V] {
	return &InMemoryBTreeSessionStoreG[K, V]{
		name:            name,
		retentionPeriod: retentionPeriod,
		compareFunc:     compareFunc,
		store: btree.NewG(2, btree.LessFunc[sessionEntryG[K, V]](
			func(a, b sessionEntryG[K, V]) bool {
				c := compareFunc(a.key, b.key)
				if c != 0 {
					return c < 0
				}
				if a.end != b.end {
					return a.end < b.end
				}
				return a.start < b.start
			})),
	}
}

func (st *InMemoryBTreeSessionStoreG[K, V]) Name() string          { return st.name }
func (st *InMemoryBTreeSessionStoreG[K, V]) TableType() TABLE_TYPE { return BTREE }

func (st *InMemoryBTreeSessionStoreG[K, V]) SetKVSerde(serdeFormat commtypes.SerdeFormat,
	keySerde commtypes.SerdeG[commtypes.WindowedKeyG[K]], valSerde commtypes.SerdeG[V],
) error {
	var err error
	st.kvPairSerde, err = commtypes.GetKeyValuePairSerdeG(serdeFormat, keySerde, valSerde)
	return err
}

func (st *InMemoryBTreeSessionStoreG[K, V]) Put(ctx context.Context,
	sessionKey commtypes.WindowedKeyG[K], value optional.Option[V],
) error {
	st.mux.Lock()
	defer st.mux.Unlock()
	st.removeExpiredSessions()
	windowEnd := sessionKey.Window.End()
	if windowEnd > st.observedStreamTime {
		st.observedStreamTime = windowEnd
	}
	if windowEnd <= st.observedStreamTime-st.retentionPeriod {
		log.Warn().Msgf("Skipping record for expired segment.")
		return nil
	}
	entry := sessionEntryG[K, V]{
		key:   sessionKey.Key,
		end:   windowEnd,
		start: sessionKey.Window.Start(),
	}
	val, exists := value.Take()
	if exists {
		entry.val = val
		st.store.ReplaceOrInsert(entry)
	} else {
		st.store.Delete(entry)
	}
	return nil
}

func (st *InMemoryBTreeSessionStoreG[K, V]) Remove(ctx context.Context,
	sessionKey commtypes.WindowedKeyG[K],
) error {
	st.mux.Lock()
	defer st.mux.Unlock()
	st.store.Delete(sessionEntryG[K, V]{
		key:   sessionKey.Key,
		end:   sessionKey.Window.End(),
		start: sessionKey.Window.Start(),
	})
	return nil
}

func (st *InMemoryBTreeSessionStoreG[K, V]) FetchSession(ctx context.Context, key K,
	sessionStartTime int64, sessionEndTime int64,
) (V, bool, error) {
	st.mux.Lock()
	defer st.mux.Unlock()
	var v V
	st.removeExpiredSessions()
	if sessionEndTime <= st.observedStreamTime-st.retentionPeriod {
		return v, false, nil
	}
	entry, exists := st.store.Get(sessionEntryG[K, V]{
		key:   key,
		end:   sessionEndTime,
		start: sessionStartTime,
	})
	return entry.val, exists, nil
}

func (st *InMemoryBTreeSessionStoreG[K, V]) FindSessions(ctx context.Context, key K,
	earliestSessionEndTime int64, latestSessionStartTime int64,
) (KeyValueIteratorG[commtypes.WindowedKeyG[K], V], error) {
	st.mux.Lock()
	defer st.mux.Unlock()
	st.removeExpiredSessions()
	minEnd := st.observedStreamTime - st.retentionPeriod + 1
	if minEnd < earliestSessionEndTime {
		minEnd = earliestSessionEndTime
	}
	var entries []commtypes.KeyValuePair[commtypes.WindowedKeyG[K], V]
	var retErr error
	st.store.AscendGreaterOrEqual(sessionEntryG[K, V]{key: key, end: minEnd, start: math.MinInt64},
		btree.ItemIteratorG[sessionEntryG[K, V]](func(entry sessionEntryG[K, V]) bool {
			if st.compareFunc(entry.key, key) != 0 {
				return false
			}
			if entry.start > latestSessionStartTime {
				return true
			}
			win, err := commtypes.NewSessionWindow(entry.start, entry.end)
			if err != nil {
				retErr = err
				return false
			}
			entries = append(entries, commtypes.KeyValuePair[commtypes.WindowedKeyG[K], V]{
				Key:   commtypes.WindowedKeyG[K]{Key: key, Window: win},
				Value: entry.val,
			})
			return true
		}))
	if retErr != nil {
		return EmptyKeyValueIteratorG[commtypes.WindowedKeyG[K], V]{}, retErr
	}
	return NewSliceKeyValueIteratorG(entries), nil
}

func (st *InMemoryBTreeSessionStoreG[K, V]) iterAll(
	iterFunc func(commtypes.WindowedKeyG[K], V) error,
) error {
	st.mux.Lock()
	defer st.mux.Unlock()
	var retErr error
	st.store.Ascend(btree.ItemIteratorG[sessionEntryG[K, V]](func(entry sessionEntryG[K, V]) bool {
		win, err := commtypes.NewSessionWindow(entry.start, entry.end)
		if err != nil {
			retErr = err
			return false
		}
		retErr = iterFunc(commtypes.WindowedKeyG[K]{Key: entry.key, Window: win}, entry.val)
		return retErr == nil
	}))
	return retErr
}

func (st *InMemoryBTreeSessionStoreG[K, V]) Snapshot(ctx context.Context) ([][]byte, error) {
	return snapshotSessionStore(st.kvPairSerde, st.iterAll)
}

func (st *InMemoryBTreeSessionStoreG[K, V]) RestoreFromSnapshot(payloads [][]byte) error {
	return restoreSessionStore[K, V](st, st.kvPairSerde, payloads)
}

// caller must hold mux
func (st *InMemoryBTreeSessionStoreG[K, V]) removeExpiredSessions() {
	minLiveTime := st.observedStreamTime - st.retentionPeriod + 1
	if minLiveTime <= 0 {
		return
	}
	var expired []sessionEntryG[K, V]
	st.store.Ascend(btree.ItemIteratorG[sessionEntryG[K, V]](func(entry sessionEntryG[K, V]) bool {
		if entry.end < minLiveTime {
			expired = append(expired, entry)
		}
		return true
	}))
	for _, entry := range expired {
		st.store.Delete(entry)
	}
}
