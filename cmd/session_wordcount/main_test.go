package main

import "testing"

func TestOffsetDedupKey(t *testing.T) {
	// same offset on different partitions must not collide, even when the
	// offset is wider than 48 bits
	hugeOff := int64(1) << 50
	if offsetDedupKey(0, hugeOff) == offsetDedupKey(1, hugeOff) {
		t.Fatalf("dedup key collides across partitions for offset %#x", hugeOff)
	}
	if offsetDedupKey(3, 7) == offsetDedupKey(4, 7) {
		t.Fatalf("dedup key collides across partitions")
	}
	if offsetDedupKey(3, 7) != offsetDedupKey(3, 7) {
		t.Fatalf("dedup key should be deterministic")
	}
	// partition bits survive the offset mask
	if got := offsetDedupKey(5, hugeOff|42) >> 48; got != 5 {
		t.Fatalf("expected partition 5 in high bits, got %d", got)
	}
	if got := offsetDedupKey(5, 42) & (1<<48 - 1); got != 42 {
		t.Fatalf("expected offset 42 in low bits, got %d", got)
	}
}
