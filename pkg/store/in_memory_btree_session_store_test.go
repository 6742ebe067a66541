package store

import (
	"context"
	"testing"
)

func getBTreeSessionStore() *InMemoryBTreeSessionStoreG[uint32, string] {
	return NewInMemoryBTreeSessionStore[uint32, string]("test1", TEST_RETENTION_PERIOD,
		CompareFuncG[uint32](IntegerCompare[uint32]))
}

func TestBTreeSessionPutAndFetch(t *testing.T) {
	ctx := context.Background()
	store := getBTreeSessionStore()
	PutAndFetchSessionTestG(ctx, store, t)
}

func TestBTreeSessionFindSessionsRange(t *testing.T) {
	ctx := context.Background()
	store := getBTreeSessionStore()
	FindSessionsRangeTestG(ctx, store, t)
}

func TestBTreeSessionRemove(t *testing.T) {
	ctx := context.Background()
	store := getBTreeSessionStore()
	RemoveSessionTestG(ctx, store, t)
}

func TestBTreeSessionPutNoneDeletes(t *testing.T) {
	ctx := context.Background()
	store := getBTreeSessionStore()
	PutNoneDeletesSessionTestG(ctx, store, t)
}

func TestBTreeSessionExpiration(t *testing.T) {
	ctx := context.Background()
	store := getBTreeSessionStore()
	SessionExpirationTestG(ctx, store, t)
}

func TestBTreeSessionSnapshotRestore(t *testing.T) {
	ctx := context.Background()
	src := getBTreeSessionStore()
	dst := getBTreeSessionStore()
	SessionSnapshotRestoreTestG(ctx, src, dst, t)
}

func TestMixedBackendSnapshotRestore(t *testing.T) {
	ctx := context.Background()
	src := getBTreeSessionStore()
	dst := getSkipMapSessionStore()
	SessionSnapshotRestoreTestG(ctx, src, dst, t)
}
