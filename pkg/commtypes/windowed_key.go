//go:generate msgp
//msgp:ignore WindowedKeyG WindowedKeyJSONSerdeG WindowedKeyMsgpSerdeG
package commtypes

import (
	"encoding/json"
	"fmt"

	"session-stream/pkg/common_errors"
)

// WindowedKeyG is the primary key of a session store entry. At any instant
// no two stored sessions for the same Key have overlapping windows.
type WindowedKeyG[K any] struct {
	Key    K
	Window SessionWindow
}

var _ = fmt.Stringer(WindowedKeyG[int]{})

func (wk WindowedKeyG[K]) String() string {
	return fmt.Sprintf("WindowedKey: {Key: %v, Window: %s}", wk.Key, wk.Window)
}

type WindowedKeySerialized struct {
	KeySerialized    []byte `json:"ks" msg:"ks"`
	WindowSerialized []byte `json:"ws" msg:"ws"`
}

func winKeyGToWinKeySer[K any](value WindowedKeyG[K], keySerde SerdeG[K], windowSerde SerdeG[SessionWindow]) (*WindowedKeySerialized, error) {
	kenc, err := keySerde.Encode(value.Key)
	if err != nil {
		return nil, err
	}
	wenc, err := windowSerde.Encode(value.Window)
	if err != nil {
		return nil, err
	}
	return &WindowedKeySerialized{
		KeySerialized:    kenc,
		WindowSerialized: wenc,
	}, nil
}

func winKeySerToWinKeyG[K any](wkSer *WindowedKeySerialized, keySerde SerdeG[K], windowSerde SerdeG[SessionWindow]) (WindowedKeyG[K], error) {
	k, err := keySerde.Decode(wkSer.KeySerialized)
	if err != nil {
		return WindowedKeyG[K]{}, err
	}
	w, err := windowSerde.Decode(wkSer.WindowSerialized)
	if err != nil {
		return WindowedKeyG[K]{}, err
	}
	return WindowedKeyG[K]{
		Key:    k,
		Window: w,
	}, nil
}

type WindowedKeyJSONSerdeG[K any] struct {
	KeyJSONSerde SerdeG[K]
}

var _ = SerdeG[WindowedKeyG[int]](WindowedKeyJSONSerdeG[int]{})

func (s WindowedKeyJSONSerdeG[K]) Encode(value WindowedKeyG[K]) ([]byte, error) {
	wk, err := winKeyGToWinKeySer(value, s.KeyJSONSerde, SessionWindowJSONSerdeG{})
	if err != nil {
		return nil, err
	}
	return json.Marshal(wk)
}

func (s WindowedKeyJSONSerdeG[K]) Decode(value []byte) (WindowedKeyG[K], error) {
	wk := WindowedKeySerialized{}
	if err := json.Unmarshal(value, &wk); err != nil {
		return WindowedKeyG[K]{}, err
	}
	return winKeySerToWinKeyG(&wk, s.KeyJSONSerde, SessionWindowJSONSerdeG{})
}

type WindowedKeyMsgpSerdeG[K any] struct {
	KeyMsgpSerde SerdeG[K]
}

var _ = SerdeG[WindowedKeyG[int]](WindowedKeyMsgpSerdeG[int]{})

func (s WindowedKeyMsgpSerdeG[K]) Encode(value WindowedKeyG[K]) ([]byte, error) {
	wk, err := winKeyGToWinKeySer(value, s.KeyMsgpSerde, SessionWindowMsgpSerdeG{})
	if err != nil {
		return nil, err
	}
	return wk.MarshalMsg(nil)
}

func (s WindowedKeyMsgpSerdeG[K]) Decode(value []byte) (WindowedKeyG[K], error) {
	wk := WindowedKeySerialized{}
	if _, err := wk.UnmarshalMsg(value); err != nil {
		return WindowedKeyG[K]{}, err
	}
	return winKeySerToWinKeyG(&wk, s.KeyMsgpSerde, SessionWindowMsgpSerdeG{})
}

func GetWindowedKeySerdeG[K any](serdeFormat SerdeFormat, keySerde SerdeG[K]) (SerdeG[WindowedKeyG[K]], error) {
	switch serdeFormat {
	case JSON:
		return WindowedKeyJSONSerdeG[K]{KeyJSONSerde: keySerde}, nil
	case MSGP:
		return WindowedKeyMsgpSerdeG[K]{KeyMsgpSerde: keySerde}, nil
	default:
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}
