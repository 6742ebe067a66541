package store

import (
	"context"

	"session-stream/pkg/common_errors"
	"session-stream/pkg/commtypes"
	"session-stream/pkg/optional"
)

// snapshotSessionStore serializes every live session into one payload per
// session via the store's kv pair serde.
func snapshotSessionStore[K, V any](
	kvPairSerde commtypes.SerdeG[commtypes.KeyValuePair[commtypes.WindowedKeyG[K], V]],
	iterAll func(func(commtypes.WindowedKeyG[K], V) error) error,
) ([][]byte, error) {
	if kvPairSerde == nil {
		return nil, common_errors.ErrSnapshotSerdeNotSet
	}
	var payloads [][]byte
	err := iterAll(func(wk commtypes.WindowedKeyG[K], v V) error {
		enc, err := kvPairSerde.Encode(commtypes.KeyValuePair[commtypes.WindowedKeyG[K], V]{
			Key:   wk,
			Value: v,
		})
		if err != nil {
			return err
		}
		payloads = append(payloads, enc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payloads, nil
}

func restoreSessionStore[K, V any](store CoreSessionStoreG[K, V],
	kvPairSerde commtypes.SerdeG[commtypes.KeyValuePair[commtypes.WindowedKeyG[K], V]],
	payloads [][]byte,
) error {
	if kvPairSerde == nil {
		return common_errors.ErrSnapshotSerdeNotSet
	}
	ctx := context.Background()
	for _, payload := range payloads {
		kv, err := kvPairSerde.Decode(payload)
		if err != nil {
			return err
		}
		if err := store.Put(ctx, kv.Key, optional.Some(kv.Value)); err != nil {
			return err
		}
	}
	return nil
}
