package store

import (
	"context"

	"session-stream/pkg/commtypes"
	"session-stream/pkg/optional"
	"session-stream/pkg/utils/syncutils"

	"github.com/rs/zerolog/log"
	"github.com/zhangyunhao116/skipmap"
)

// InMemorySkipMapSessionStoreG keeps sessions in nested skipmaps laid out
// as session end time -> key -> session start time -> aggregate, so that
// expiry can drop whole end-time segments and FindSessions can scan ends
// in order.
type InMemorySkipMapSessionStoreG[K, V any] struct {
	mux                syncutils.RWMutex
	store              *skipmap.Int64Map[*skipmap.FuncMap[K, *skipmap.Int64Map[V]]]
	compareFunc        CompareFuncG[K]
	kvPairSerde        commtypes.SerdeG[commtypes.KeyValuePair[commtypes.WindowedKeyG[K], V]]
	name               string
	retentionPeriod    int64
	observedStreamTime int64 // protected by mux
}

var _ = CoreSessionStoreG[int, int](&InMemorySkipMapSessionStoreG[int, int]{})

func NewInMemorySkipMapSessionStore[K, V any](name string, retentionPeriod int64,
	compareFunc CompareFuncG[K],
) *InMemorySkipMapSessionStoreG[K, V] {
	return &InMemorySkipMapSessionStoreG[K, V]{
		name:               name,
		retentionPeriod:    retentionPeriod,
		observedStreamTime: 0,
		store:              skipmap.NewInt64[*skipmap.FuncMap[K, *skipmap.Int64Map[V]]](),
		compareFunc:        compareFunc,
	}
}

func (s *InMemorySkipMapSessionStoreG[K, V]) Name() string          { return s.name }
func (s *InMemorySkipMapSessionStoreG[K, V]) TableType() TABLE_TYPE { return SKIPMAP }

func (s *InMemorySkipMapSessionStoreG[K, V]) SetKVSerde(serdeFormat commtypes.SerdeFormat,
	keySerde commtypes.SerdeG[commtypes.WindowedKeyG[K]], valSerde commtypes.SerdeG[V],
) error {
	var err error
	s.kvPairSerde, err = commtypes.GetKeyValuePairSerdeG(serdeFormat, keySerde, valSerde)
	return err
}

func (s *InMemorySkipMapSessionStoreG[K, V]) Put(ctx context.Context,
	sessionKey commtypes.WindowedKeyG[K], value optional.Option[V],
) error {
	s.removeExpiredSegments()
	windowEnd := sessionKey.Window.End()
	s.mux.Lock()
	if windowEnd > s.observedStreamTime {
		s.observedStreamTime = windowEnd
	}
	expired := windowEnd <= s.observedStreamTime-s.retentionPeriod
	s.mux.Unlock()
	if expired {
		log.Warn().Msgf("Skipping record for expired segment.")
		return nil
	}
	val, exists := value.Take()
	if !exists {
		return s.Remove(ctx, sessionKey)
	}
	keyMap, _ := s.store.LoadOrStore(windowEnd, skipmap.NewFunc[K, *skipmap.Int64Map[V]](
		func(a, b K) bool {
			return s.compareFunc(a, b) < 0
		}))
	startMap, _ := keyMap.LoadOrStore(sessionKey.Key, skipmap.NewInt64[V]())
	startMap.Store(sessionKey.Window.Start(), val)
	return nil
}

func (s *InMemorySkipMapSessionStoreG[K, V]) Remove(ctx context.Context,
	sessionKey commtypes.WindowedKeyG[K],
) error {
	keyMap, ok := s.store.Load(sessionKey.Window.End())
	if !ok {
		return nil
	}
	startMap, ok := keyMap.Load(sessionKey.Key)
	if !ok {
		return nil
	}
	startMap.Delete(sessionKey.Window.Start())
	if startMap.Len() == 0 {
		keyMap.Delete(sessionKey.Key)
		if keyMap.Len() == 0 {
			s.store.Delete(sessionKey.Window.End())
		}
	}
	return nil
}

func (s *InMemorySkipMapSessionStoreG[K, V]) FetchSession(ctx context.Context, key K,
	sessionStartTime int64, sessionEndTime int64,
) (V, bool, error) {
	var v V
	s.removeExpiredSegments()
	s.mux.RLock()
	expired := sessionEndTime <= s.observedStreamTime-s.retentionPeriod
	s.mux.RUnlock()
	if expired {
		return v, false, nil
	}
	keyMap, ok := s.store.Load(sessionEndTime)
	if !ok {
		return v, false, nil
	}
	startMap, ok := keyMap.Load(key)
	if !ok {
		return v, false, nil
	}
	v, exists := startMap.Load(sessionStartTime)
	return v, exists, nil
}

func (s *InMemorySkipMapSessionStoreG[K, V]) FindSessions(ctx context.Context, key K,
	earliestSessionEndTime int64, latestSessionStartTime int64,
) (KeyValueIteratorG[commtypes.WindowedKeyG[K], V], error) {
	s.removeExpiredSegments()
	s.mux.RLock()
	minEnd := s.observedStreamTime - s.retentionPeriod + 1
	s.mux.RUnlock()
	if minEnd < earliestSessionEndTime {
		minEnd = earliestSessionEndTime
	}
	var entries []commtypes.KeyValuePair[commtypes.WindowedKeyG[K], V]
	var retErr error
	s.store.RangeFrom(minEnd, func(end int64, keyMap *skipmap.FuncMap[K, *skipmap.Int64Map[V]]) bool {
		startMap, ok := keyMap.Load(key)
		if !ok {
			return true
		}
		startMap.Range(func(start int64, v V) bool {
			if start > latestSessionStartTime {
				return false
			}
			win, err := commtypes.NewSessionWindow(start, end)
			if err != nil {
				retErr = err
				return false
			}
			entries = append(entries, commtypes.KeyValuePair[commtypes.WindowedKeyG[K], V]{
				Key:   commtypes.WindowedKeyG[K]{Key: key, Window: win},
				Value: v,
			})
			return true
		})
		return retErr == nil
	})
	if retErr != nil {
		return EmptyKeyValueIteratorG[commtypes.WindowedKeyG[K], V]{}, retErr
	}
	return NewSliceKeyValueIteratorG(entries), nil
}

func (s *InMemorySkipMapSessionStoreG[K, V]) iterAll(
	iterFunc func(commtypes.WindowedKeyG[K], V) error,
) error {
	var retErr error
	s.store.Range(func(end int64, keyMap *skipmap.FuncMap[K, *skipmap.Int64Map[V]]) bool {
		keyMap.Range(func(k K, startMap *skipmap.Int64Map[V]) bool {
			startMap.Range(func(start int64, v V) bool {
				win, err := commtypes.NewSessionWindow(start, end)
				if err != nil {
					retErr = err
					return false
				}
				retErr = iterFunc(commtypes.WindowedKeyG[K]{Key: k, Window: win}, v)
				return retErr == nil
			})
			return retErr == nil
		})
		return retErr == nil
	})
	return retErr
}

func (s *InMemorySkipMapSessionStoreG[K, V]) Snapshot(ctx context.Context) ([][]byte, error) {
	return snapshotSessionStore(s.kvPairSerde, s.iterAll)
}

func (s *InMemorySkipMapSessionStoreG[K, V]) RestoreFromSnapshot(payloads [][]byte) error {
	return restoreSessionStore[K, V](s, s.kvPairSerde, payloads)
}

func (s *InMemorySkipMapSessionStoreG[K, V]) removeExpiredSegments() {
	s.mux.RLock()
	minLiveTime := s.observedStreamTime - s.retentionPeriod + 1
	s.mux.RUnlock()
	if minLiveTime <= 0 {
		return
	}
	s.store.Range(func(end int64, _ *skipmap.FuncMap[K, *skipmap.Int64Map[V]]) bool {
		if end < minLiveTime {
			s.store.Delete(end)
			return true
		} else {
			return false
		}
	})
}
