package snapshot_store

import (
	"context"
	"fmt"
	"os"

	"session-stream/pkg/common_errors"
	"session-stream/pkg/commtypes"
	"session-stream/pkg/hashfuncs"
	"session-stream/pkg/redis_client"
	"session-stream/pkg/store"

	"github.com/go-redis/redis/v9"
)

// SnapshotStore persists an opaque snapshot blob per store name and
// sequence number.
type SnapshotStore interface {
	StoreSnapshot(ctx context.Context, snapshot []byte, storeName string, seqNum uint64) error
	GetSnapshot(ctx context.Context, storeName string, seqNum uint64) ([]byte, error)
}

type RedisSnapshotStore struct {
	rdb_arr []*redis.Client
}

var _ = SnapshotStore(&RedisSnapshotStore{})

func NewRedisSnapshotStore(createSnapshot bool) RedisSnapshotStore {
	if createSnapshot {
		return RedisSnapshotStore{rdb_arr: redis_client.GetRedisClients()}
	} else {
		return RedisSnapshotStore{}
	}
}

func (rs *RedisSnapshotStore) StoreSnapshot(ctx context.Context, snapshot []byte,
	storeName string, seqNum uint64,
) error {
	key := fmt.Sprintf("%s_%#x", storeName, seqNum)
	idx := hashfuncs.NameHash(key) % uint64(len(rs.rdb_arr))
	fmt.Fprintf(os.Stderr, "store snapshot key: %s at redis[%d]\n", key, idx)
	return rs.rdb_arr[idx].Set(ctx, key, snapshot, 0).Err()
}

func (rs *RedisSnapshotStore) GetSnapshot(ctx context.Context, storeName string, seqNum uint64) ([]byte, error) {
	key := fmt.Sprintf("%s_%#x", storeName, seqNum)
	idx := hashfuncs.NameHash(key) % uint64(len(rs.rdb_arr))
	fmt.Fprintf(os.Stderr, "get snapshot key: %s at redis[%d]\n", key, idx)
	bs, err := rs.rdb_arr[idx].Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, common_errors.ErrSnapshotNotFound
	}
	return bs, err
}

// StoreSessionSnapshot packs every live session of the given store into one
// payload array blob and persists it under the store's name.
func StoreSessionSnapshot[K, V any](ctx context.Context, ss SnapshotStore,
	sessionStore store.CoreSessionStoreG[K, V], seqNum uint64,
	payloadSerde commtypes.SerdeG[commtypes.PayloadArr],
) error {
	payloads, err := sessionStore.Snapshot(ctx)
	if err != nil {
		return err
	}
	enc, err := payloadSerde.Encode(commtypes.PayloadArr{Payloads: payloads})
	if err != nil {
		return err
	}
	return ss.StoreSnapshot(ctx, enc, sessionStore.Name(), seqNum)
}

func RestoreSessionSnapshot[K, V any](ctx context.Context, ss SnapshotStore,
	sessionStore store.CoreSessionStoreG[K, V], seqNum uint64,
	payloadSerde commtypes.SerdeG[commtypes.PayloadArr],
) error {
	blob, err := ss.GetSnapshot(ctx, sessionStore.Name(), seqNum)
	if err != nil {
		return err
	}
	parr, err := payloadSerde.Decode(blob)
	if err != nil {
		return err
	}
	return sessionStore.RestoreFromSnapshot(parr.Payloads)
}
