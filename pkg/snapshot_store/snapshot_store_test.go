package snapshot_store

import (
	"context"
	"fmt"
	"math"
	"testing"

	"session-stream/pkg/common_errors"
	"session-stream/pkg/commtypes"
	"session-stream/pkg/optional"
	"session-stream/pkg/store"
)

type memSnapshotStore struct {
	blobs map[string][]byte
}

var _ = SnapshotStore(&memSnapshotStore{})

func newMemSnapshotStore() *memSnapshotStore {
	return &memSnapshotStore{blobs: make(map[string][]byte)}
}

func (m *memSnapshotStore) StoreSnapshot(ctx context.Context, snapshot []byte, storeName string, seqNum uint64) error {
	m.blobs[fmt.Sprintf("%s_%#x", storeName, seqNum)] = snapshot
	return nil
}

func (m *memSnapshotStore) GetSnapshot(ctx context.Context, storeName string, seqNum uint64) ([]byte, error) {
	bs, ok := m.blobs[fmt.Sprintf("%s_%#x", storeName, seqNum)]
	if !ok {
		return nil, common_errors.ErrSnapshotNotFound
	}
	return bs, nil
}

func getSessionStoreWithSerde(t *testing.T, name string) *store.InMemorySkipMapSessionStoreG[string, uint64] {
	st := store.NewInMemorySkipMapSessionStore[string, uint64](name, 3600000,
		store.CompareFuncG[string](store.StringCompare))
	wkSerde, err := commtypes.GetWindowedKeySerdeG[string](commtypes.MSGP, commtypes.StringSerdeG{})
	if err != nil {
		t.Fatalf("fail to get windowed key serde: %v", err)
	}
	if err := st.SetKVSerde(commtypes.MSGP, wkSerde, commtypes.Uint64SerdeG{}); err != nil {
		t.Fatalf("fail to set kv serde: %v", err)
	}
	return st
}

func putSession(ctx context.Context, t *testing.T, st *store.InMemorySkipMapSessionStoreG[string, uint64],
	key string, start int64, end int64, count uint64,
) {
	win, err := commtypes.NewSessionWindow(start, end)
	if err != nil {
		t.Fatalf("fail to create session window: %v", err)
	}
	err = st.Put(ctx, commtypes.WindowedKeyG[string]{Key: key, Window: win}, optional.Some(count))
	if err != nil {
		t.Fatalf("fail to put: %v", err)
	}
}

func TestSessionSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	ss := newMemSnapshotStore()
	payloadSerde, err := commtypes.GetPayloadArrSerdeG(commtypes.MSGP)
	if err != nil {
		t.Fatalf("fail to get payload serde: %v", err)
	}

	src := getSessionStoreWithSerde(t, "sessionTab")
	putSession(ctx, t, src, "A", 10, 20, 3)
	putSession(ctx, t, src, "A", 30, 30, 1)
	putSession(ctx, t, src, "B", 5, 12, 2)

	if err := StoreSessionSnapshot[string, uint64](ctx, ss, src, 42, payloadSerde); err != nil {
		t.Fatalf("fail to store snapshot: %v", err)
	}

	dst := getSessionStoreWithSerde(t, "sessionTab")
	if err := RestoreSessionSnapshot[string, uint64](ctx, ss, dst, 42, payloadSerde); err != nil {
		t.Fatalf("fail to restore snapshot: %v", err)
	}
	for _, key := range []string{"A", "B"} {
		iter, err := dst.FindSessions(ctx, key, 0, math.MaxInt64)
		if err != nil {
			t.Fatalf("fail to find sessions: %v", err)
		}
		var got []string
		for iter.HasNext() {
			kv := iter.Next()
			got = append(got, fmt.Sprintf("%d-%d:%d", kv.Key.Window.Start(), kv.Key.Window.End(), kv.Value))
		}
		iter.Close()
		var want []string
		switch key {
		case "A":
			want = []string{"10-20:3", "30-30:1"}
		case "B":
			want = []string{"5-12:2"}
		}
		if len(got) != len(want) {
			t.Fatalf("key %s: expected %v, got %v", key, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("key %s: expected %v, got %v", key, want, got)
			}
		}
	}
}

func TestMissingSnapshot(t *testing.T) {
	ctx := context.Background()
	ss := newMemSnapshotStore()
	payloadSerde, err := commtypes.GetPayloadArrSerdeG(commtypes.MSGP)
	if err != nil {
		t.Fatalf("fail to get payload serde: %v", err)
	}
	dst := getSessionStoreWithSerde(t, "sessionTab")
	err = RestoreSessionSnapshot[string, uint64](ctx, ss, dst, 7, payloadSerde)
	if !common_errors.IsSnapshotNotFoundError(err) {
		t.Fatalf("expected snapshot not found, got %v", err)
	}
}
