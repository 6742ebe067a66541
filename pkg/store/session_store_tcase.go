package store

import (
	"context"
	"fmt"
	"math"
	"testing"

	"session-stream/pkg/commtypes"
	"session-stream/pkg/optional"
)

const TEST_RETENTION_PERIOD = int64(30000)

func mustSessionKeyG(t testing.TB, key uint32, start int64, end int64) commtypes.WindowedKeyG[uint32] {
	win, err := commtypes.NewSessionWindow(start, end)
	if err != nil {
		t.Fatalf("fail to create session window: %v", err)
	}
	return commtypes.WindowedKeyG[uint32]{Key: key, Window: win}
}

func putSessionBatchG(ctx context.Context, store CoreSessionStoreG[uint32, string], t testing.TB) {
	entries := []struct {
		val   string
		key   uint32
		start int64
		end   int64
	}{
		{key: 1, start: 0, end: 5, val: "e1"},
		{key: 1, start: 10, end: 20, val: "e2"},
		{key: 1, start: 25, end: 25, val: "e3"},
		{key: 2, start: 8, end: 16, val: "o1"},
	}
	for _, e := range entries {
		err := store.Put(ctx, mustSessionKeyG(t, e.key, e.start, e.end), optional.Some(e.val))
		if err != nil {
			t.Fatalf("fail to put: %v", err)
		}
	}
}

func collectSessionsG(ctx context.Context, store CoreSessionStoreG[uint32, string],
	key uint32, earliestSessionEndTime int64, latestSessionStartTime int64,
) ([]string, error) {
	iter, err := store.FindSessions(ctx, key, earliestSessionEndTime, latestSessionStartTime)
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	var res []string
	for iter.HasNext() {
		kv := iter.Next()
		res = append(res, fmt.Sprintf("%d-%d:%s", kv.Key.Window.Start(), kv.Key.Window.End(), kv.Value))
	}
	return res, nil
}

func checkSessionsG(t testing.TB, got []string, expected []string) {
	if len(got) != len(expected) {
		t.Fatalf("expected sessions %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected sessions %v, got %v", expected, got)
		}
	}
}

func checkFetchSessionG(ctx context.Context, store CoreSessionStoreG[uint32, string],
	key uint32, start int64, end int64, expectedVal string, expectedExists bool, t testing.TB,
) {
	v, exists, err := store.FetchSession(ctx, key, start, end)
	if err != nil {
		t.Fatalf("fail to fetch session: %v", err)
	}
	if exists != expectedExists {
		t.Fatalf("session (%d, [%d, %d]) exists: %v, expected %v", key, start, end, exists, expectedExists)
	}
	if exists && v != expectedVal {
		t.Fatalf("session (%d, [%d, %d]) got val %s, expected %s", key, start, end, v, expectedVal)
	}
}

func PutAndFetchSessionTestG(ctx context.Context, store CoreSessionStoreG[uint32, string], t testing.TB) {
	putSessionBatchG(ctx, store, t)
	checkFetchSessionG(ctx, store, 1, 0, 5, "e1", true, t)
	checkFetchSessionG(ctx, store, 1, 10, 20, "e2", true, t)
	checkFetchSessionG(ctx, store, 1, 25, 25, "e3", true, t)
	checkFetchSessionG(ctx, store, 2, 8, 16, "o1", true, t)
	checkFetchSessionG(ctx, store, 1, 0, 4, "", false, t)
	checkFetchSessionG(ctx, store, 3, 0, 5, "", false, t)

	err := store.Put(ctx, mustSessionKeyG(t, 1, 0, 5), optional.Some("e1x"))
	if err != nil {
		t.Fatalf("fail to put: %v", err)
	}
	checkFetchSessionG(ctx, store, 1, 0, 5, "e1x", true, t)
}

func FindSessionsRangeTestG(ctx context.Context, store CoreSessionStoreG[uint32, string], t testing.TB) {
	putSessionBatchG(ctx, store, t)

	got, err := collectSessionsG(ctx, store, 1, 0, math.MaxInt64)
	if err != nil {
		t.Fatalf("fail to find sessions: %v", err)
	}
	checkSessionsG(t, got, []string{"0-5:e1", "10-20:e2", "25-25:e3"})

	// both range bounds are inclusive
	got, err = collectSessionsG(ctx, store, 1, 5, 10)
	if err != nil {
		t.Fatalf("fail to find sessions: %v", err)
	}
	checkSessionsG(t, got, []string{"0-5:e1", "10-20:e2"})

	got, err = collectSessionsG(ctx, store, 1, 6, 9)
	if err != nil {
		t.Fatalf("fail to find sessions: %v", err)
	}
	checkSessionsG(t, got, nil)

	got, err = collectSessionsG(ctx, store, 2, 0, 100)
	if err != nil {
		t.Fatalf("fail to find sessions: %v", err)
	}
	checkSessionsG(t, got, []string{"8-16:o1"})

	got, err = collectSessionsG(ctx, store, 9, 0, 100)
	if err != nil {
		t.Fatalf("fail to find sessions: %v", err)
	}
	checkSessionsG(t, got, nil)
}

func RemoveSessionTestG(ctx context.Context, store CoreSessionStoreG[uint32, string], t testing.TB) {
	putSessionBatchG(ctx, store, t)
	err := store.Remove(ctx, mustSessionKeyG(t, 1, 10, 20))
	if err != nil {
		t.Fatalf("fail to remove: %v", err)
	}
	checkFetchSessionG(ctx, store, 1, 10, 20, "", false, t)
	checkFetchSessionG(ctx, store, 1, 0, 5, "e1", true, t)
	checkFetchSessionG(ctx, store, 1, 25, 25, "e3", true, t)

	// removing an absent session is a no-op
	err = store.Remove(ctx, mustSessionKeyG(t, 1, 10, 20))
	if err != nil {
		t.Fatalf("fail to remove: %v", err)
	}
	err = store.Remove(ctx, mustSessionKeyG(t, 7, 0, 1))
	if err != nil {
		t.Fatalf("fail to remove: %v", err)
	}
}

func PutNoneDeletesSessionTestG(ctx context.Context, store CoreSessionStoreG[uint32, string], t testing.TB) {
	putSessionBatchG(ctx, store, t)
	err := store.Put(ctx, mustSessionKeyG(t, 1, 0, 5), optional.None[string]())
	if err != nil {
		t.Fatalf("fail to put: %v", err)
	}
	checkFetchSessionG(ctx, store, 1, 0, 5, "", false, t)
	checkFetchSessionG(ctx, store, 1, 10, 20, "e2", true, t)
}

func SessionExpirationTestG(ctx context.Context, store CoreSessionStoreG[uint32, string], t testing.TB) {
	err := store.Put(ctx, mustSessionKeyG(t, 1, 0, 5), optional.Some("e1"))
	if err != nil {
		t.Fatalf("fail to put: %v", err)
	}
	// advances observed stream time far enough to expire the first session
	err = store.Put(ctx, mustSessionKeyG(t, 1, 1000, TEST_RETENTION_PERIOD+10000), optional.Some("live"))
	if err != nil {
		t.Fatalf("fail to put: %v", err)
	}
	got, err := collectSessionsG(ctx, store, 1, 0, math.MaxInt64)
	if err != nil {
		t.Fatalf("fail to find sessions: %v", err)
	}
	checkSessionsG(t, got, []string{fmt.Sprintf("1000-%d:live", TEST_RETENTION_PERIOD+10000)})

	// writes into an already expired segment are dropped
	err = store.Put(ctx, mustSessionKeyG(t, 1, 100, 9000), optional.Some("late"))
	if err != nil {
		t.Fatalf("fail to put: %v", err)
	}
	checkFetchSessionG(ctx, store, 1, 100, 9000, "", false, t)
}

func SessionSnapshotRestoreTestG(ctx context.Context, src CoreSessionStoreG[uint32, string],
	dst CoreSessionStoreG[uint32, string], t testing.TB,
) {
	wkSerde, err := commtypes.GetWindowedKeySerdeG[uint32](commtypes.MSGP, commtypes.Uint32SerdeG{})
	if err != nil {
		t.Fatalf("fail to get windowed key serde: %v", err)
	}
	if err := src.SetKVSerde(commtypes.MSGP, wkSerde, commtypes.StringSerdeG{}); err != nil {
		t.Fatalf("fail to set kv serde: %v", err)
	}
	if err := dst.SetKVSerde(commtypes.MSGP, wkSerde, commtypes.StringSerdeG{}); err != nil {
		t.Fatalf("fail to set kv serde: %v", err)
	}
	putSessionBatchG(ctx, src, t)
	payloads, err := src.Snapshot(ctx)
	if err != nil {
		t.Fatalf("fail to snapshot: %v", err)
	}
	if err := dst.RestoreFromSnapshot(payloads); err != nil {
		t.Fatalf("fail to restore: %v", err)
	}
	for _, key := range []uint32{1, 2} {
		want, err := collectSessionsG(ctx, src, key, 0, math.MaxInt64)
		if err != nil {
			t.Fatalf("fail to find sessions: %v", err)
		}
		got, err := collectSessionsG(ctx, dst, key, 0, math.MaxInt64)
		if err != nil {
			t.Fatalf("fail to find sessions: %v", err)
		}
		checkSessionsG(t, got, want)
	}
}
