package store

import (
	"context"
	"testing"
)

func getSkipMapSessionStore() *InMemorySkipMapSessionStoreG[uint32, string] {
	return NewInMemorySkipMapSessionStore[uint32, string]("test1", TEST_RETENTION_PERIOD,
		CompareFuncG[uint32](IntegerCompare[uint32]))
}

func TestSkipMapSessionPutAndFetch(t *testing.T) {
	ctx := context.Background()
	store := getSkipMapSessionStore()
	PutAndFetchSessionTestG(ctx, store, t)
}

func TestSkipMapSessionFindSessionsRange(t *testing.T) {
	ctx := context.Background()
	store := getSkipMapSessionStore()
	FindSessionsRangeTestG(ctx, store, t)
}

func TestSkipMapSessionRemove(t *testing.T) {
	ctx := context.Background()
	store := getSkipMapSessionStore()
	RemoveSessionTestG(ctx, store, t)
}

func TestSkipMapSessionPutNoneDeletes(t *testing.T) {
	ctx := context.Background()
	store := getSkipMapSessionStore()
	PutNoneDeletesSessionTestG(ctx, store, t)
}

func TestSkipMapSessionExpiration(t *testing.T) {
	ctx := context.Background()
	store := getSkipMapSessionStore()
	SessionExpirationTestG(ctx, store, t)
}

func TestSkipMapSessionSnapshotRestore(t *testing.T) {
	ctx := context.Background()
	src := getSkipMapSessionStore()
	dst := getSkipMapSessionStore()
	SessionSnapshotRestoreTestG(ctx, src, dst, t)
}
