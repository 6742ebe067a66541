package processor

import (
	"context"

	"session-stream/pkg/commtypes"
	"session-stream/pkg/store"
)

// SessionWindowValueGetterG exposes the session table as a point lookup
// keyed by windowed key. The returned timestamp is the session end time.
type SessionWindowValueGetterG[K, VA any] struct {
	store store.CoreSessionStoreG[K, VA]
}

func NewSessionWindowValueGetterG[K, VA any](
	sessionStore store.CoreSessionStoreG[K, VA],
) *SessionWindowValueGetterG[K, VA] {
	return &SessionWindowValueGetterG[K, VA]{store: sessionStore}
}

func (g *SessionWindowValueGetterG[K, VA]) Get(ctx context.Context,
	key commtypes.WindowedKeyG[K],
) (commtypes.ValueTimestampG[VA], bool, error) {
	v, found, err := g.store.FetchSession(ctx, key.Key, key.Window.Start(), key.Window.End())
	if err != nil || !found {
		return commtypes.ValueTimestampG[VA]{}, false, err
	}
	return commtypes.ValueTimestampG[VA]{
		Value:     v,
		Timestamp: key.Window.End(),
	}, true, nil
}
