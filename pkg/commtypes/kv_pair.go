//go:generate msgp
//msgp:ignore KeyValuePair KeyValuePairJSONSerdeG KeyValuePairMsgpSerdeG
package commtypes

import (
	"encoding/json"
	"fmt"

	"session-stream/pkg/common_errors"
)

type KeyValuePair[K, V any] struct {
	Key   K
	Value V
}

type KeyValueSerialized struct {
	KeyEnc   []byte `json:"kenc" msg:"kenc"`
	ValueEnc []byte `json:"venc" msg:"venc"`
}

func kvPairToKVPairSer[K, V any](value KeyValuePair[K, V], keySerde SerdeG[K], valSerde SerdeG[V]) (*KeyValueSerialized, error) {
	kenc, err := keySerde.Encode(value.Key)
	if err != nil {
		return nil, fmt.Errorf("fail to encode key: %v", err)
	}
	venc, err := valSerde.Encode(value.Value)
	if err != nil {
		return nil, fmt.Errorf("fail to encode val: %v", err)
	}
	return &KeyValueSerialized{
		KeyEnc:   kenc,
		ValueEnc: venc,
	}, nil
}

func kvPairSerToKVPair[K, V any](value *KeyValueSerialized, keySerde SerdeG[K], valSerde SerdeG[V]) (KeyValuePair[K, V], error) {
	key, err := keySerde.Decode(value.KeyEnc)
	if err != nil {
		return KeyValuePair[K, V]{}, fmt.Errorf("fail to decode key: %v", err)
	}
	val, err := valSerde.Decode(value.ValueEnc)
	if err != nil {
		return KeyValuePair[K, V]{}, fmt.Errorf("fail to decode val: %v", err)
	}
	return KeyValuePair[K, V]{
		Key:   key,
		Value: val,
	}, nil
}

type KeyValuePairJSONSerdeG[K, V any] struct {
	KeySerde SerdeG[K]
	ValSerde SerdeG[V]
}

var _ = SerdeG[KeyValuePair[int, int]](KeyValuePairJSONSerdeG[int, int]{})

func (s KeyValuePairJSONSerdeG[K, V]) Encode(v KeyValuePair[K, V]) ([]byte, error) {
	kvser, err := kvPairToKVPairSer(v, s.KeySerde, s.ValSerde)
	if err != nil {
		return nil, err
	}
	return json.Marshal(kvser)
}

func (s KeyValuePairJSONSerdeG[K, V]) Decode(v []byte) (KeyValuePair[K, V], error) {
	kvser := KeyValueSerialized{}
	if err := json.Unmarshal(v, &kvser); err != nil {
		return KeyValuePair[K, V]{}, err
	}
	return kvPairSerToKVPair(&kvser, s.KeySerde, s.ValSerde)
}

type KeyValuePairMsgpSerdeG[K, V any] struct {
	KeySerde SerdeG[K]
	ValSerde SerdeG[V]
}

var _ = SerdeG[KeyValuePair[int, int]](KeyValuePairMsgpSerdeG[int, int]{})

func (s KeyValuePairMsgpSerdeG[K, V]) Encode(v KeyValuePair[K, V]) ([]byte, error) {
	kvser, err := kvPairToKVPairSer(v, s.KeySerde, s.ValSerde)
	if err != nil {
		return nil, err
	}
	return kvser.MarshalMsg(nil)
}

func (s KeyValuePairMsgpSerdeG[K, V]) Decode(v []byte) (KeyValuePair[K, V], error) {
	kvser := KeyValueSerialized{}
	if _, err := kvser.UnmarshalMsg(v); err != nil {
		return KeyValuePair[K, V]{}, err
	}
	return kvPairSerToKVPair(&kvser, s.KeySerde, s.ValSerde)
}

func GetKeyValuePairSerdeG[K, V any](serdeFormat SerdeFormat, keySerde SerdeG[K], valSerde SerdeG[V]) (SerdeG[KeyValuePair[K, V]], error) {
	switch serdeFormat {
	case JSON:
		return KeyValuePairJSONSerdeG[K, V]{KeySerde: keySerde, ValSerde: valSerde}, nil
	case MSGP:
		return KeyValuePairMsgpSerdeG[K, V]{KeySerde: keySerde, ValSerde: valSerde}, nil
	default:
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}
