package processor

import "session-stream/pkg/optional"

type AggregatorG[K, V, VA any] interface {
	Apply(key K, value V, aggregate optional.Option[VA]) optional.Option[VA]
}

type AggregatorFuncG[K, V, VA any] func(key K, value V, aggregate optional.Option[VA]) optional.Option[VA]

func (fn AggregatorFuncG[K, V, VA]) Apply(key K, value V, aggregate optional.Option[VA]) optional.Option[VA] {
	return fn(key, value, aggregate)
}

type InitializerG[VA any] interface {
	Apply() optional.Option[VA]
}

type InitializerFuncG[VA any] func() optional.Option[VA]

func (fn InitializerFuncG[VA]) Apply() optional.Option[VA] {
	return fn()
}

// MergerG combines the aggregates of two sessions that merged into one.
// The merge op must be commutative since sessions arrive in end time
// order, not in the order they were created.
type MergerG[K, VA any] interface {
	Apply(key K, aggOne optional.Option[VA], aggTwo optional.Option[VA]) optional.Option[VA]
}

type MergerFuncG[K, VA any] func(key K, aggOne optional.Option[VA], aggTwo optional.Option[VA]) optional.Option[VA]

func (fn MergerFuncG[K, VA]) Apply(key K, aggOne optional.Option[VA], aggTwo optional.Option[VA]) optional.Option[VA] {
	return fn(key, aggOne, aggTwo)
}
