package store

import (
	"session-stream/pkg/common_errors"
	"session-stream/pkg/commtypes"
)

type KeyValueIteratorG[K, V any] interface {
	HasNext() bool
	Next() commtypes.KeyValuePair[K, V]
	PeekNextKey() K
	Close()
}

type EmptyKeyValueIteratorG[K, V any] struct{}

var _ = KeyValueIteratorG[int, int](EmptyKeyValueIteratorG[int, int]{})

func (e EmptyKeyValueIteratorG[K, V]) HasNext() bool { return false }

func (e EmptyKeyValueIteratorG[K, V]) Next() commtypes.KeyValuePair[K, V] {
	panic(common_errors.ErrIteratorOutOfBound)
}

func (e EmptyKeyValueIteratorG[K, V]) PeekNextKey() K {
	panic(common_errors.ErrIteratorOutOfBound)
}

func (e EmptyKeyValueIteratorG[K, V]) Close() {}

// sliceKeyValueIteratorG iterates over a snapshot of entries collected
// under the store's read lock, so the caller can mutate the store while
// the iterator is open.
type sliceKeyValueIteratorG[K, V any] struct {
	entries []commtypes.KeyValuePair[K, V]
	idx     int
}

var _ = KeyValueIteratorG[int, int](&sliceKeyValueIteratorG[int, int]{})

func NewSliceKeyValueIteratorG[K, V any](entries []commtypes.KeyValuePair[K, V]) KeyValueIteratorG[K, V] {
	return &sliceKeyValueIteratorG[K, V]{entries: entries}
}

func (it *sliceKeyValueIteratorG[K, V]) HasNext() bool {
	return it.idx < len(it.entries)
}

func (it *sliceKeyValueIteratorG[K, V]) Next() commtypes.KeyValuePair[K, V] {
	if it.idx >= len(it.entries) {
		panic(common_errors.ErrIteratorOutOfBound)
	}
	kv := it.entries[it.idx]
	it.idx += 1
	return kv
}

func (it *sliceKeyValueIteratorG[K, V]) PeekNextKey() K {
	if it.idx >= len(it.entries) {
		panic(common_errors.ErrIteratorOutOfBound)
	}
	return it.entries[it.idx].Key
}

func (it *sliceKeyValueIteratorG[K, V]) Close() {
	it.entries = nil
	it.idx = 0
}
