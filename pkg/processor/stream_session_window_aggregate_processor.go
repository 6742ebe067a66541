package processor

import (
	"context"
	"fmt"

	"session-stream/pkg/commtypes"
	"session-stream/pkg/debug"
	"session-stream/pkg/optional"
	"session-stream/pkg/stats"
	"session-stream/pkg/store"

	"github.com/rs/zerolog/log"
)

// StreamSessionWindowAggregateProcessorG folds each record of a key into a
// session window. The record first spans the candidate window [ts, ts];
// every stored session of the key whose window sits within the inactivity
// gap of ts is merged into the candidate, removed from the store and
// retracted downstream, and the combined session is stored and forwarded.
//
// Records whose merged window closed more than gap plus grace before the
// observed stream time are dropped.
type StreamSessionWindowAggregateProcessorG[K, V, VA any] struct {
	store             store.CoreSessionStoreG[K, VA]
	initializer       InitializerG[VA]
	aggregator        AggregatorG[K, V, VA]
	sessionMerger     MergerG[K, VA]
	tupleForwarder    *SessionTupleForwarderG[K, VA]
	streamTimeTracker commtypes.StreamTimeTracker
	windows           *SessionWindows
	droppedRecords    stats.Counter
	name              string
	BaseProcessorG[K, V, commtypes.WindowedKeyG[K], commtypes.ChangeG[VA]]
}

var _ = ProcessorG[int, int, commtypes.WindowedKeyG[int], commtypes.ChangeG[int]](
	&StreamSessionWindowAggregateProcessorG[int, int, int]{})

func NewStreamSessionWindowAggregateProcessorG[K, V, VA any](name string,
	sessionStore store.CoreSessionStoreG[K, VA], windows *SessionWindows,
	initializer InitializerG[VA], aggregator AggregatorG[K, V, VA],
	sessionMerger MergerG[K, VA],
) *StreamSessionWindowAggregateProcessorG[K, V, VA] {
	p := &StreamSessionWindowAggregateProcessorG[K, V, VA]{
		store:             sessionStore,
		initializer:       initializer,
		aggregator:        aggregator,
		sessionMerger:     sessionMerger,
		tupleForwarder:    NewSessionTupleForwarderG[K, VA](false),
		streamTimeTracker: commtypes.NewStreamTimeTracker(),
		windows:           windows,
		droppedRecords:    stats.NewCounter(name + "_droppedRecords"),
		name:              name,
	}
	p.BaseProcessorG.ProcessingFuncG = p.ProcessAndReturn
	return p
}

func (p *StreamSessionWindowAggregateProcessorG[K, V, VA]) Name() string { return p.name }

// EnableSendingOldValues makes retractions carry the replaced aggregate, so
// a downstream table can subtract it.
func (p *StreamSessionWindowAggregateProcessorG[K, V, VA]) EnableSendingOldValues() {
	p.tupleForwarder.sendOldValues = true
}

// ObservedStreamTime is the per-key-partition watermark records have
// advanced so far.
func (p *StreamSessionWindowAggregateProcessorG[K, V, VA]) ObservedStreamTime() int64 {
	return p.streamTimeTracker.GetStreamTime()
}

func (p *StreamSessionWindowAggregateProcessorG[K, V, VA]) DroppedRecords() uint64 {
	return p.droppedRecords.GetCount()
}

func (p *StreamSessionWindowAggregateProcessorG[K, V, VA]) ProcessAndReturn(ctx context.Context,
	msg commtypes.MessageG[K, V],
) ([]commtypes.MessageG[commtypes.WindowedKeyG[K], commtypes.ChangeG[VA]], error) {
	key, hasKey := msg.Key.Take()
	if !hasKey {
		log.Warn().
			Str("value", msg.Value.String()).
			Int64("timestamp", msg.Timestamp).
			Msg("Skipping record due to null key.")
		p.droppedRecords.Tick(1)
		return nil, nil
	}

	timestamp := msg.Timestamp
	observedStreamTime := p.streamTimeTracker.AdvanceStreamTime(timestamp)
	closeTime := observedStreamTime - p.windows.GracePeriodMs() - p.windows.GapMs()

	newSessionWindow, err := commtypes.NewSessionWindow(timestamp, timestamp)
	if err != nil {
		return nil, err
	}
	mergedWindow := newSessionWindow
	agg := p.initializer.Apply()
	var merged []commtypes.KeyValuePair[commtypes.WindowedKeyG[K], VA]

	iter, err := p.store.FindSessions(ctx, key,
		timestamp-p.windows.GapMs(), timestamp+p.windows.GapMs())
	if err != nil {
		return nil, fmt.Errorf("find sessions err: %v", err)
	}
	defer iter.Close()
	for iter.HasNext() {
		next := iter.Next()
		merged = append(merged, next)
		agg = p.sessionMerger.Apply(key, agg, optional.Some(next.Value))
		mergedWindow = commtypes.MergeSessionWindow(mergedWindow, next.Key.Window)
	}
	debug.Assert(mergedWindow.Start() <= timestamp && timestamp <= mergedWindow.End(),
		"merged window should cover the record timestamp")

	if mergedWindow.End() < closeTime {
		log.Warn().
			Interface("key", key).
			Int64("timestamp", timestamp).
			Int64("windowStart", mergedWindow.Start()).
			Int64("windowEnd", mergedWindow.End()).
			Int64("expiration", closeTime).
			Int64("streamTime", observedStreamTime).
			Msg("Skipping record for expired window.")
		p.droppedRecords.Tick(1)
		return nil, nil
	}

	if !mergedWindow.Equal(newSessionWindow) {
		for _, session := range merged {
			if err := p.store.Remove(ctx, session.Key); err != nil {
				return nil, fmt.Errorf("session remove err: %v", err)
			}
			p.tupleForwarder.MaybeForward(session.Key, optional.None[VA](), optional.Some(session.Value))
		}
	}

	val, _ := msg.Value.Take()
	agg = p.aggregator.Apply(key, val, agg)
	sessionKey := commtypes.WindowedKeyG[K]{Key: key, Window: mergedWindow}
	if err := p.store.Put(ctx, sessionKey, agg); err != nil {
		return nil, fmt.Errorf("session put err: %v", err)
	}
	p.tupleForwarder.MaybeForward(sessionKey, agg, optional.None[VA]())
	return p.tupleForwarder.Drain(), nil
}
