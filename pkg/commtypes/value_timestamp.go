//go:generate msgp
//msgp:ignore ValueTimestampG ValueTimestampGJSONSerdeG ValueTimestampGMsgpSerdeG
package commtypes

import (
	"encoding/json"

	"session-stream/pkg/common_errors"
	"session-stream/pkg/optional"
)

type ValueTimestampG[V any] struct {
	Value     V
	Timestamp int64
}

func CreateValueTimestampGOptional[V any](val optional.Option[V], ts int64) optional.Option[ValueTimestampG[V]] {
	v, hasV := val.Take()
	if hasV {
		return optional.Some(ValueTimestampG[V]{
			Value:     v,
			Timestamp: ts,
		})
	}
	return optional.None[ValueTimestampG[V]]()
}

type ValueTimestampSerialized struct {
	ValueSerialized []byte `json:"vs,omitempty" msg:"vs,omitempty"`
	Timestamp       int64  `json:"ts,omitempty" msg:"ts,omitempty"`
}

func valTsGToValueTsSer[V any](value ValueTimestampG[V], valSerde SerdeG[V]) (*ValueTimestampSerialized, error) {
	enc, err := valSerde.Encode(value.Value)
	if err != nil {
		return nil, err
	}
	return &ValueTimestampSerialized{
		Timestamp:       value.Timestamp,
		ValueSerialized: enc,
	}, nil
}

func valTsSerToValueTsG[V any](vtsSer *ValueTimestampSerialized, valSerde SerdeG[V]) (ValueTimestampG[V], error) {
	var v V
	var err error
	if vtsSer.ValueSerialized != nil {
		v, err = valSerde.Decode(vtsSer.ValueSerialized)
		if err != nil {
			return ValueTimestampG[V]{}, err
		}
	}
	return ValueTimestampG[V]{
		Timestamp: vtsSer.Timestamp,
		Value:     v,
	}, nil
}

type ValueTimestampGJSONSerdeG[V any] struct {
	ValJSONSerde SerdeG[V]
}

var _ = SerdeG[ValueTimestampG[int]](ValueTimestampGJSONSerdeG[int]{})

func (s ValueTimestampGJSONSerdeG[V]) Encode(value ValueTimestampG[V]) ([]byte, error) {
	vs, err := valTsGToValueTsSer(value, s.ValJSONSerde)
	if err != nil {
		return nil, err
	}
	return json.Marshal(vs)
}

func (s ValueTimestampGJSONSerdeG[V]) Decode(value []byte) (ValueTimestampG[V], error) {
	vs := ValueTimestampSerialized{}
	if err := json.Unmarshal(value, &vs); err != nil {
		return ValueTimestampG[V]{}, err
	}
	return valTsSerToValueTsG(&vs, s.ValJSONSerde)
}

type ValueTimestampGMsgpSerdeG[V any] struct {
	ValMsgpSerde SerdeG[V]
}

var _ = SerdeG[ValueTimestampG[int]](ValueTimestampGMsgpSerdeG[int]{})

func (s ValueTimestampGMsgpSerdeG[V]) Encode(value ValueTimestampG[V]) ([]byte, error) {
	vs, err := valTsGToValueTsSer(value, s.ValMsgpSerde)
	if err != nil {
		return nil, err
	}
	return vs.MarshalMsg(nil)
}

func (s ValueTimestampGMsgpSerdeG[V]) Decode(value []byte) (ValueTimestampG[V], error) {
	vs := ValueTimestampSerialized{}
	if _, err := vs.UnmarshalMsg(value); err != nil {
		return ValueTimestampG[V]{}, err
	}
	return valTsSerToValueTsG(&vs, s.ValMsgpSerde)
}

func GetValueTsGSerdeG[V any](serdeFormat SerdeFormat, valSerde SerdeG[V]) (SerdeG[ValueTimestampG[V]], error) {
	if serdeFormat == JSON {
		return ValueTimestampGJSONSerdeG[V]{
			ValJSONSerde: valSerde,
		}, nil
	} else if serdeFormat == MSGP {
		return ValueTimestampGMsgpSerdeG[V]{
			ValMsgpSerde: valSerde,
		}, nil
	} else {
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}
