package store

import (
	"context"

	"session-stream/pkg/commtypes"
	"session-stream/pkg/optional"
)

// CoreSessionStoreG keeps one entry per live session per key. A session is
// addressed by its key plus the window [start, end] it currently spans.
type CoreSessionStoreG[K, V any] interface {
	StateStore
	// Put stores the aggregate for the given session. A None value acts as
	// a delete of that session.
	Put(ctx context.Context, sessionKey commtypes.WindowedKeyG[K], value optional.Option[V]) error
	// Remove drops the session if it exists; removing an absent session is
	// a no-op.
	Remove(ctx context.Context, sessionKey commtypes.WindowedKeyG[K]) error
	// FetchSession looks up the aggregate of the session with exactly the
	// given start and end timestamps.
	FetchSession(ctx context.Context, key K, sessionStartTime int64, sessionEndTime int64) (V, bool, error)
	// FindSessions returns all sessions of key that could merge with a
	// window whose timestamps span [earliestSessionEndTime,
	// latestSessionStartTime]: sessions with end >= earliestSessionEndTime
	// and start <= latestSessionStartTime, ordered by session end time.
	FindSessions(ctx context.Context, key K, earliestSessionEndTime int64,
		latestSessionStartTime int64) (KeyValueIteratorG[commtypes.WindowedKeyG[K], V], error)
	TableType() TABLE_TYPE
	SetKVSerde(serdeFormat commtypes.SerdeFormat,
		keySerde commtypes.SerdeG[commtypes.WindowedKeyG[K]], valSerde commtypes.SerdeG[V]) error
	Snapshot(ctx context.Context) ([][]byte, error)
	RestoreFromSnapshot(payloads [][]byte) error
}

func NewCoreSessionStoreG[K, V any](tabType TABLE_TYPE, name string,
	retentionPeriod int64, compareFunc CompareFuncG[K],
) CoreSessionStoreG[K, V] {
	switch tabType {
	case BTREE:
		return NewInMemoryBTreeSessionStore[K, V](name, retentionPeriod, compareFunc)
	default:
		return NewInMemorySkipMapSessionStore[K, V](name, retentionPeriod, compareFunc)
	}
}
