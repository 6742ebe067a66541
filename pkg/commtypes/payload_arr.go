//go:generate msgp
//msgp:ignore PayloadArrJSONSerdeG PayloadArrMsgpSerdeG
package commtypes

import (
	"encoding/json"

	"session-stream/pkg/common_errors"
)

// PayloadArr batches multiple encoded payloads into one blob.
type PayloadArr struct {
	Payloads [][]byte `json:"parr" msg:"parr"`
}

type PayloadArrJSONSerdeG struct{}

var _ = SerdeG[PayloadArr](PayloadArrJSONSerdeG{})

func (s PayloadArrJSONSerdeG) Encode(value PayloadArr) ([]byte, error) {
	return json.Marshal(&value)
}

func (s PayloadArrJSONSerdeG) Decode(value []byte) (PayloadArr, error) {
	p := PayloadArr{}
	if err := json.Unmarshal(value, &p); err != nil {
		return PayloadArr{}, err
	}
	return p, nil
}

type PayloadArrMsgpSerdeG struct{}

var _ = SerdeG[PayloadArr](PayloadArrMsgpSerdeG{})

func (s PayloadArrMsgpSerdeG) Encode(value PayloadArr) ([]byte, error) {
	return value.MarshalMsg(nil)
}

func (s PayloadArrMsgpSerdeG) Decode(value []byte) (PayloadArr, error) {
	p := PayloadArr{}
	if _, err := p.UnmarshalMsg(value); err != nil {
		return PayloadArr{}, err
	}
	return p, nil
}

func GetPayloadArrSerdeG(serdeFormat SerdeFormat) (SerdeG[PayloadArr], error) {
	switch serdeFormat {
	case JSON:
		return PayloadArrJSONSerdeG{}, nil
	case MSGP:
		return PayloadArrMsgpSerdeG{}, nil
	default:
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}
