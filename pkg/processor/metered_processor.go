package processor

import (
	"context"

	"session-stream/pkg/commtypes"
	"session-stream/pkg/stats"
)

type MeteredProcessorG[KIn, VIn, KOut, VOut any] struct {
	proc      ProcessorG[KIn, VIn, KOut, VOut]
	latencies *stats.ConcurrentStatsCollector[int64]
}

var _ = ProcessorG[int, int, int, int](&MeteredProcessorG[int, int, int, int]{})

func NewMeteredProcessorG[KIn, VIn, KOut, VOut any](
	proc ProcessorG[KIn, VIn, KOut, VOut],
) *MeteredProcessorG[KIn, VIn, KOut, VOut] {
	return &MeteredProcessorG[KIn, VIn, KOut, VOut]{
		proc:      proc,
		latencies: stats.NewConcurrentStatsCollector[int64](proc.Name(), stats.DEFAULT_COLLECT_DURATION),
	}
}

func (p *MeteredProcessorG[KIn, VIn, KOut, VOut]) Name() string { return p.proc.Name() }

func (p *MeteredProcessorG[KIn, VIn, KOut, VOut]) ProcessAndReturn(ctx context.Context,
	msg commtypes.MessageG[KIn, VIn],
) ([]commtypes.MessageG[KOut, VOut], error) {
	procStart := stats.TimerBegin()
	msgs, err := p.proc.ProcessAndReturn(ctx, msg)
	elapsed := stats.Elapsed(procStart).Microseconds()
	p.latencies.AddSample(elapsed)
	return msgs, err
}

func (p *MeteredProcessorG[KIn, VIn, KOut, VOut]) Process(ctx context.Context,
	msg commtypes.MessageG[KIn, VIn],
) error {
	return p.proc.Process(ctx, msg)
}

func (p *MeteredProcessorG[KIn, VIn, KOut, VOut]) NextProcessor(next ProcessFuncG[KOut, VOut]) {
	p.proc.NextProcessor(next)
}

func (p *MeteredProcessorG[KIn, VIn, KOut, VOut]) InnerProcessor() ProcessorG[KIn, VIn, KOut, VOut] {
	return p.proc
}
