package processor

import (
	"context"

	"session-stream/pkg/commtypes"
)

type ProcessFuncG[K, V any] func(ctx context.Context, msg commtypes.MessageG[K, V]) error

type ProcessorG[KIn, VIn, KOut, VOut any] interface {
	Name() string
	ProcessAndReturn(ctx context.Context, msg commtypes.MessageG[KIn, VIn]) ([]commtypes.MessageG[KOut, VOut], error)
	Process(ctx context.Context, msg commtypes.MessageG[KIn, VIn]) error
	NextProcessor(next ProcessFuncG[KOut, VOut])
}

type BaseProcessorG[KIn, VIn, KOut, VOut any] struct {
	ProcessingFuncG func(ctx context.Context, msg commtypes.MessageG[KIn, VIn]) ([]commtypes.MessageG[KOut, VOut], error)
	nexts           []ProcessFuncG[KOut, VOut]
}

func (b *BaseProcessorG[KIn, VIn, KOut, VOut]) NextProcessor(next ProcessFuncG[KOut, VOut]) {
	b.nexts = append(b.nexts, next)
}

func (b *BaseProcessorG[KIn, VIn, KOut, VOut]) Process(ctx context.Context, msg commtypes.MessageG[KIn, VIn]) error {
	msgs, err := b.ProcessingFuncG(ctx, msg)
	if err != nil {
		return err
	}
	for _, m := range msgs {
		for _, next := range b.nexts {
			if err := next(ctx, m); err != nil {
				return err
			}
		}
	}
	return nil
}
