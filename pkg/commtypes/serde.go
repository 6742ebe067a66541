//go:generate stringer -type=SerdeFormat
package commtypes

import (
	"encoding/binary"
	"math"

	"golang.org/x/xerrors"
)

var (
	sizeNot8 = xerrors.New("size of value to deserialized is not 8")
	sizeNot4 = xerrors.New("size of value to deserialized is not 4")
	sizeNot2 = xerrors.New("size of value to deserialized is not 2")
)

type SerdeFormat uint8

const (
	JSON SerdeFormat = 0
	MSGP SerdeFormat = 1
)

type EncoderG[V any] interface {
	Encode(v V) ([]byte, error)
}

type EncoderFuncG[V any] func(v V) ([]byte, error)

func (ef EncoderFuncG[V]) Encode(v V) ([]byte, error) {
	return ef(v)
}

type DecoderG[V any] interface {
	Decode([]byte) (V, error)
}

type DecoderFuncG[V any] func([]byte) (V, error)

func (df DecoderFuncG[V]) Decode(b []byte) (V, error) {
	return df(b)
}

type SerdeG[V any] interface {
	EncoderG[V]
	DecoderG[V]
}

type StringSerdeG struct{}

var _ = SerdeG[string](StringSerdeG{})

func (s StringSerdeG) Encode(value string) ([]byte, error) {
	return []byte(value), nil
}

func (s StringSerdeG) Decode(value []byte) (string, error) {
	return string(value), nil
}

type Int64SerdeG struct{}

var _ = SerdeG[int64](Int64SerdeG{})

func (s Int64SerdeG) Encode(value int64) ([]byte, error) {
	bs := make([]byte, 8)
	binary.BigEndian.PutUint64(bs, uint64(value))
	return bs, nil
}

func (s Int64SerdeG) Decode(value []byte) (int64, error) {
	if len(value) != 8 {
		return 0, sizeNot8
	}
	return int64(binary.BigEndian.Uint64(value)), nil
}

type Uint64SerdeG struct{}

var _ = SerdeG[uint64](Uint64SerdeG{})

func (s Uint64SerdeG) Encode(value uint64) ([]byte, error) {
	bs := make([]byte, 8)
	binary.BigEndian.PutUint64(bs, value)
	return bs, nil
}

func (s Uint64SerdeG) Decode(value []byte) (uint64, error) {
	if len(value) != 8 {
		return 0, sizeNot8
	}
	return binary.BigEndian.Uint64(value), nil
}

type Uint32SerdeG struct{}

var _ = SerdeG[uint32](Uint32SerdeG{})

func (s Uint32SerdeG) Encode(value uint32) ([]byte, error) {
	bs := make([]byte, 4)
	binary.BigEndian.PutUint32(bs, value)
	return bs, nil
}

func (s Uint32SerdeG) Decode(value []byte) (uint32, error) {
	if len(value) != 4 {
		return 0, sizeNot4
	}
	return binary.BigEndian.Uint32(value), nil
}

type Uint16SerdeG struct{}

var _ = SerdeG[uint16](Uint16SerdeG{})

func (s Uint16SerdeG) Encode(value uint16) ([]byte, error) {
	bs := make([]byte, 2)
	binary.BigEndian.PutUint16(bs, value)
	return bs, nil
}

func (s Uint16SerdeG) Decode(value []byte) (uint16, error) {
	if len(value) != 2 {
		return 0, sizeNot2
	}
	return binary.BigEndian.Uint16(value), nil
}

type Float64SerdeG struct{}

var _ = SerdeG[float64](Float64SerdeG{})

func (s Float64SerdeG) Encode(value float64) ([]byte, error) {
	bits := math.Float64bits(value)
	bs := make([]byte, 8)
	binary.BigEndian.PutUint64(bs, bits)
	return bs, nil
}

func (s Float64SerdeG) Decode(value []byte) (float64, error) {
	if len(value) != 8 {
		return 0, sizeNot8
	}
	bits := binary.BigEndian.Uint64(value)
	return math.Float64frombits(bits), nil
}
