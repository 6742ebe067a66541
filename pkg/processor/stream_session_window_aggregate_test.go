package processor

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"testing"
	"time"

	"session-stream/pkg/commtypes"
	"session-stream/pkg/optional"
	"session-stream/pkg/store"
)

var (
	COUNT_INIT_G = InitializerFuncG[uint64](func() optional.Option[uint64] {
		return optional.Some(uint64(0))
	})
	COUNT_AGG_G = AggregatorFuncG[string, string, uint64](
		func(key string, value string, aggregate optional.Option[uint64]) optional.Option[uint64] {
			return optional.Some(aggregate.Unwrap() + 1)
		})
	COUNT_MERGER_G = MergerFuncG[string, uint64](
		func(key string, aggOne optional.Option[uint64], aggTwo optional.Option[uint64]) optional.Option[uint64] {
			return optional.Some(aggOne.Unwrap() + aggTwo.Unwrap())
		})
)

func getCountSessionStore() *store.InMemorySkipMapSessionStoreG[string, uint64] {
	return store.NewInMemorySkipMapSessionStore[string, uint64]("sessionStore", 3600000,
		store.CompareFuncG[string](store.StringCompare))
}

func getSessionAggProc(t testing.TB, st store.CoreSessionStoreG[string, uint64],
	gap time.Duration, grace time.Duration, sendOldValues bool,
) *StreamSessionWindowAggregateProcessorG[string, string, uint64] {
	windows, err := NewSessionWindowsWithGrace(gap, grace)
	if err != nil {
		t.Fatalf("fail to create session windows: %v", err)
	}
	p := NewStreamSessionWindowAggregateProcessorG[string, string, uint64]("sessionAgg",
		st, windows, COUNT_INIT_G, COUNT_AGG_G, COUNT_MERGER_G)
	if sendOldValues {
		p.EnableSendingOldValues()
	}
	return p
}

func pushRecord(ctx context.Context, t testing.TB,
	p *StreamSessionWindowAggregateProcessorG[string, string, uint64],
	key string, ts int64,
) []commtypes.MessageG[commtypes.WindowedKeyG[string], commtypes.ChangeG[uint64]] {
	out, err := p.ProcessAndReturn(ctx, commtypes.MessageG[string, string]{
		Key:       optional.Some(key),
		Value:     optional.Some("x"),
		Timestamp: ts,
	})
	if err != nil {
		t.Fatalf("process err: %v", err)
	}
	return out
}

func sessionKeyForTest(t testing.TB, key string, start int64, end int64) commtypes.WindowedKeyG[string] {
	win, err := commtypes.NewSessionWindow(start, end)
	if err != nil {
		t.Fatalf("fail to create session window: %v", err)
	}
	return commtypes.WindowedKeyG[string]{Key: key, Window: win}
}

func insertionMsg(wk commtypes.WindowedKeyG[string], count uint64) commtypes.MessageG[commtypes.WindowedKeyG[string], commtypes.ChangeG[uint64]] {
	return commtypes.MessageG[commtypes.WindowedKeyG[string], commtypes.ChangeG[uint64]]{
		Key:       optional.Some(wk),
		Value:     optional.Some(commtypes.ChangeG[uint64]{NewVal: optional.Some(count), OldVal: optional.None[uint64]()}),
		Timestamp: wk.Window.End(),
	}
}

func retractionMsg(wk commtypes.WindowedKeyG[string], count uint64) commtypes.MessageG[commtypes.WindowedKeyG[string], commtypes.ChangeG[uint64]] {
	return commtypes.MessageG[commtypes.WindowedKeyG[string], commtypes.ChangeG[uint64]]{
		Key:       optional.Some(wk),
		Value:     optional.Some(commtypes.ChangeG[uint64]{NewVal: optional.None[uint64](), OldVal: optional.Some(count)}),
		Timestamp: wk.Window.End(),
	}
}

func checkOutMsgs(t testing.TB,
	got []commtypes.MessageG[commtypes.WindowedKeyG[string], commtypes.ChangeG[uint64]],
	expected []commtypes.MessageG[commtypes.WindowedKeyG[string], commtypes.ChangeG[uint64]],
) {
	if !reflect.DeepEqual(expected, got) {
		fmt.Fprintf(os.Stderr, "Expected output: \n")
		for _, m := range expected {
			fmt.Fprintf(os.Stderr, "\t%s\n", m)
		}
		fmt.Fprintf(os.Stderr, "Got output: \n")
		for _, m := range got {
			fmt.Fprintf(os.Stderr, "\t%s\n", m)
		}
		t.Fatalf("should equal.")
	}
}

func checkStoredSession(ctx context.Context, t testing.TB, st store.CoreSessionStoreG[string, uint64],
	key string, start int64, end int64, expectedCount uint64, expectedExists bool,
) {
	v, exists, err := st.FetchSession(ctx, key, start, end)
	if err != nil {
		t.Fatalf("fetch session err: %v", err)
	}
	if exists != expectedExists {
		t.Fatalf("session (%s, [%d, %d]) exists: %v, expected %v", key, start, end, exists, expectedExists)
	}
	if exists && v != expectedCount {
		t.Fatalf("session (%s, [%d, %d]) count %d, expected %d", key, start, end, v, expectedCount)
	}
}

func TestSessionAggCreatesSingleSession(t *testing.T) {
	ctx := context.Background()
	st := getCountSessionStore()
	p := getSessionAggProc(t, st, 5*time.Millisecond, 0, false)
	out := pushRecord(ctx, t, p, "A", 10)
	checkOutMsgs(t, out, []commtypes.MessageG[commtypes.WindowedKeyG[string], commtypes.ChangeG[uint64]]{
		insertionMsg(sessionKeyForTest(t, "A", 10, 10), 1),
	})
	checkStoredSession(ctx, t, st, "A", 10, 10, 1, true)
}

func TestSessionAggMergesRecordWithinGap(t *testing.T) {
	ctx := context.Background()
	st := getCountSessionStore()
	p := getSessionAggProc(t, st, 5*time.Millisecond, 0, false)
	pushRecord(ctx, t, p, "A", 10)
	out := pushRecord(ctx, t, p, "A", 14)
	// without sendOldValues the retraction of [10, 10] carries no value
	// on either side and is suppressed
	checkOutMsgs(t, out, []commtypes.MessageG[commtypes.WindowedKeyG[string], commtypes.ChangeG[uint64]]{
		insertionMsg(sessionKeyForTest(t, "A", 10, 14), 2),
	})
	checkStoredSession(ctx, t, st, "A", 10, 14, 2, true)
	checkStoredSession(ctx, t, st, "A", 10, 10, 0, false)
}

func TestSessionAggForwardsRetractionsWithOldValues(t *testing.T) {
	ctx := context.Background()
	st := getCountSessionStore()
	p := getSessionAggProc(t, st, 5*time.Millisecond, 0, true)
	pushRecord(ctx, t, p, "A", 10)
	out := pushRecord(ctx, t, p, "A", 14)
	checkOutMsgs(t, out, []commtypes.MessageG[commtypes.WindowedKeyG[string], commtypes.ChangeG[uint64]]{
		retractionMsg(sessionKeyForTest(t, "A", 10, 10), 1),
		insertionMsg(sessionKeyForTest(t, "A", 10, 14), 2),
	})
}

func TestSessionAggGapBoundary(t *testing.T) {
	ctx := context.Background()
	st := getCountSessionStore()
	p := getSessionAggProc(t, st, 5*time.Millisecond, 0, false)
	pushRecord(ctx, t, p, "A", 10)
	// exactly gap apart still merges
	pushRecord(ctx, t, p, "A", 15)
	checkStoredSession(ctx, t, st, "A", 10, 15, 2, true)
	// gap + 1 apart starts a new session
	pushRecord(ctx, t, p, "A", 21)
	checkStoredSession(ctx, t, st, "A", 10, 15, 2, true)
	checkStoredSession(ctx, t, st, "A", 21, 21, 1, true)
}

func TestSessionAggBridgesTwoSessions(t *testing.T) {
	ctx := context.Background()
	st := getCountSessionStore()
	p := getSessionAggProc(t, st, 5*time.Millisecond, 0, true)
	pushRecord(ctx, t, p, "A", 10)
	pushRecord(ctx, t, p, "A", 20)
	checkStoredSession(ctx, t, st, "A", 10, 10, 1, true)
	checkStoredSession(ctx, t, st, "A", 20, 20, 1, true)

	// a record in between is within gap of both sessions and fuses them
	out := pushRecord(ctx, t, p, "A", 15)
	checkOutMsgs(t, out, []commtypes.MessageG[commtypes.WindowedKeyG[string], commtypes.ChangeG[uint64]]{
		retractionMsg(sessionKeyForTest(t, "A", 10, 10), 1),
		retractionMsg(sessionKeyForTest(t, "A", 20, 20), 1),
		insertionMsg(sessionKeyForTest(t, "A", 10, 20), 3),
	})
	checkStoredSession(ctx, t, st, "A", 10, 20, 3, true)
	checkStoredSession(ctx, t, st, "A", 10, 10, 0, false)
	checkStoredSession(ctx, t, st, "A", 20, 20, 0, false)
}

func TestSessionAggKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	st := getCountSessionStore()
	p := getSessionAggProc(t, st, 5*time.Millisecond, 0, false)
	pushRecord(ctx, t, p, "A", 10)
	pushRecord(ctx, t, p, "B", 12)
	checkStoredSession(ctx, t, st, "A", 10, 10, 1, true)
	checkStoredSession(ctx, t, st, "B", 12, 12, 1, true)
}

func TestSessionAggDropsExpiredRecord(t *testing.T) {
	ctx := context.Background()
	st := getCountSessionStore()
	p := getSessionAggProc(t, st, 5*time.Millisecond, 2*time.Millisecond, false)
	pushRecord(ctx, t, p, "A", 100)
	// closeTime = 100 - 2 - 5 = 93; a lone record at 90 closes at 90 < 93
	out := pushRecord(ctx, t, p, "A", 90)
	if out != nil {
		t.Fatalf("expected no output for expired record, got %v", out)
	}
	if p.DroppedRecords() != 1 {
		t.Fatalf("expected 1 dropped record, got %d", p.DroppedRecords())
	}
	// the store is untouched by the dropped record
	checkStoredSession(ctx, t, st, "A", 90, 90, 0, false)
	checkStoredSession(ctx, t, st, "A", 100, 100, 1, true)
}

func TestSessionAggGraceAdmitsLateRecord(t *testing.T) {
	ctx := context.Background()
	st := getCountSessionStore()
	p := getSessionAggProc(t, st, 5*time.Millisecond, 2*time.Millisecond, false)
	pushRecord(ctx, t, p, "A", 100)
	// closeTime = 93, so a lone record at 93 is still admitted
	out := pushRecord(ctx, t, p, "A", 93)
	checkOutMsgs(t, out, []commtypes.MessageG[commtypes.WindowedKeyG[string], commtypes.ChangeG[uint64]]{
		insertionMsg(sessionKeyForTest(t, "A", 93, 93), 1),
	})
}

func TestSessionAggExpiredRecordStillAdvancesStreamTime(t *testing.T) {
	ctx := context.Background()
	st := getCountSessionStore()
	p := getSessionAggProc(t, st, 5*time.Millisecond, 0, false)
	pushRecord(ctx, t, p, "A", 300)
	out := pushRecord(ctx, t, p, "A", 200)
	if out != nil {
		t.Fatalf("expected no output for expired record, got %v", out)
	}
	if p.ObservedStreamTime() != 300 {
		t.Fatalf("expected stream time 300, got %d", p.ObservedStreamTime())
	}
}

func TestSessionAggNullKeySkipped(t *testing.T) {
	ctx := context.Background()
	st := getCountSessionStore()
	p := getSessionAggProc(t, st, 5*time.Millisecond, 0, false)
	pushRecord(ctx, t, p, "A", 10)
	out, err := p.ProcessAndReturn(ctx, commtypes.MessageG[string, string]{
		Key:       optional.None[string](),
		Value:     optional.Some("x"),
		Timestamp: 500,
	})
	if err != nil {
		t.Fatalf("process err: %v", err)
	}
	if out != nil {
		t.Fatalf("expected no output for null key record, got %v", out)
	}
	if p.DroppedRecords() != 1 {
		t.Fatalf("expected 1 dropped record, got %d", p.DroppedRecords())
	}
	// a skipped record must not advance the watermark
	if p.ObservedStreamTime() != 10 {
		t.Fatalf("expected stream time 10, got %d", p.ObservedStreamTime())
	}
}

func TestSessionAggOrderIndependentFinalState(t *testing.T) {
	ctx := context.Background()
	perms := [][]int64{
		{10, 12, 14},
		{10, 14, 12},
		{14, 10, 12},
		{14, 12, 10},
		{12, 10, 14},
		{12, 14, 10},
	}
	for _, perm := range perms {
		st := getCountSessionStore()
		p := getSessionAggProc(t, st, 5*time.Millisecond, 0, false)
		for _, ts := range perm {
			pushRecord(ctx, t, p, "A", ts)
		}
		checkStoredSession(ctx, t, st, "A", 10, 14, 3, true)
	}
}

func TestSessionWindowValueGetter(t *testing.T) {
	ctx := context.Background()
	st := getCountSessionStore()
	p := getSessionAggProc(t, st, 5*time.Millisecond, 0, false)
	pushRecord(ctx, t, p, "A", 10)
	pushRecord(ctx, t, p, "A", 14)

	getter := NewSessionWindowValueGetterG[string, uint64](st)
	vts, found, err := getter.Get(ctx, sessionKeyForTest(t, "A", 10, 14))
	if err != nil {
		t.Fatalf("get err: %v", err)
	}
	if !found {
		t.Fatalf("expected session to be found")
	}
	expected := commtypes.ValueTimestampG[uint64]{Value: 2, Timestamp: 14}
	if vts != expected {
		t.Fatalf("expected %v, got %v", expected, vts)
	}

	_, found, err = getter.Get(ctx, sessionKeyForTest(t, "A", 10, 10))
	if err != nil {
		t.Fatalf("get err: %v", err)
	}
	if found {
		t.Fatalf("merged away session should not be found")
	}
}

func TestSessionAggOnBTreeStore(t *testing.T) {
	ctx := context.Background()
	st := store.NewInMemoryBTreeSessionStore[string, uint64]("sessionStore", 3600000,
		store.CompareFuncG[string](store.StringCompare))
	p := getSessionAggProc(t, st, 5*time.Millisecond, 0, true)
	pushRecord(ctx, t, p, "A", 10)
	pushRecord(ctx, t, p, "A", 20)
	out := pushRecord(ctx, t, p, "A", 15)
	checkOutMsgs(t, out, []commtypes.MessageG[commtypes.WindowedKeyG[string], commtypes.ChangeG[uint64]]{
		retractionMsg(sessionKeyForTest(t, "A", 10, 10), 1),
		retractionMsg(sessionKeyForTest(t, "A", 20, 20), 1),
		insertionMsg(sessionKeyForTest(t, "A", 10, 20), 3),
	})
	checkStoredSession(ctx, t, st, "A", 10, 20, 3, true)
}

func TestSessionAggDropsExpiredRecordFreshKey(t *testing.T) {
	ctx := context.Background()
	st := getCountSessionStore()
	p := getSessionAggProc(t, st, 5*time.Millisecond, 2*time.Millisecond, false)

	out := pushRecord(ctx, t, p, "a", 100)
	checkOutMsgs(t, out, []commtypes.MessageG[commtypes.WindowedKeyG[string], commtypes.ChangeG[uint64]]{
		insertionMsg(sessionKeyForTest(t, "a", 100, 100), 1),
	})

	// close time is 100 - 2 - 5 = 93; a first record of another key at 90
	// is already expired and must not create a session
	out = pushRecord(ctx, t, p, "b", 90)
	checkOutMsgs(t, out, nil)
	if got := p.DroppedRecords(); got != 1 {
		t.Fatalf("expected 1 dropped record, got %d", got)
	}
	checkStoredSession(ctx, t, st, "b", 90, 90, 0, false)
	checkStoredSession(ctx, t, st, "a", 100, 100, 1, true)
}

func TestSessionAggDuplicateTimestampOverwrites(t *testing.T) {
	ctx := context.Background()
	st := getCountSessionStore()
	p := getSessionAggProc(t, st, 5*time.Millisecond, 0, false)

	out := pushRecord(ctx, t, p, "a", 10)
	checkOutMsgs(t, out, []commtypes.MessageG[commtypes.WindowedKeyG[string], commtypes.ChangeG[uint64]]{
		insertionMsg(sessionKeyForTest(t, "a", 10, 10), 1),
	})

	// the merged window equals the candidate window, so no retraction is
	// emitted and the stored session is overwritten in place
	out = pushRecord(ctx, t, p, "a", 10)
	checkOutMsgs(t, out, []commtypes.MessageG[commtypes.WindowedKeyG[string], commtypes.ChangeG[uint64]]{
		insertionMsg(sessionKeyForTest(t, "a", 10, 10), 2),
	})
	checkStoredSession(ctx, t, st, "a", 10, 10, 2, true)
}
