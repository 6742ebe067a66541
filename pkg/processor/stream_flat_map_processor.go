package processor

import (
	"context"

	"session-stream/pkg/commtypes"
)

type FlatMapperG[K, V, KR, VR any] interface {
	FlatMap(msg commtypes.MessageG[K, V]) ([]commtypes.MessageG[KR, VR], error)
}

type FlatMapperFuncG[K, V, KR, VR any] func(msg commtypes.MessageG[K, V]) ([]commtypes.MessageG[KR, VR], error)

var _ = FlatMapperG[int, int, int, int](FlatMapperFuncG[int, int, int, int](nil))

func (fn FlatMapperFuncG[K, V, KR, VR]) FlatMap(msg commtypes.MessageG[K, V]) ([]commtypes.MessageG[KR, VR], error) {
	return fn(msg)
}

type StreamFlatMapProcessorG[K, V, KR, VR any] struct {
	mapper FlatMapperG[K, V, KR, VR]
	name   string
	BaseProcessorG[K, V, KR, VR]
}

var _ = ProcessorG[int, int, int, int](&StreamFlatMapProcessorG[int, int, int, int]{})

func NewStreamFlatMapProcessorG[K, V, KR, VR any](name string,
	mapper FlatMapperG[K, V, KR, VR],
) *StreamFlatMapProcessorG[K, V, KR, VR] {
	p := &StreamFlatMapProcessorG[K, V, KR, VR]{
		mapper: mapper,
		name:   name,
	}
	p.BaseProcessorG.ProcessingFuncG = p.ProcessAndReturn
	return p
}

func (p *StreamFlatMapProcessorG[K, V, KR, VR]) Name() string { return p.name }

func (p *StreamFlatMapProcessorG[K, V, KR, VR]) ProcessAndReturn(ctx context.Context,
	msg commtypes.MessageG[K, V],
) ([]commtypes.MessageG[KR, VR], error) {
	return p.mapper.FlatMap(msg)
}
