//go:generate msgp
//msgp:ignore SessionWindowJSONSerdeG SessionWindowMsgpSerdeG
package commtypes

import (
	"encoding/json"
	"fmt"

	"session-stream/pkg/common_errors"
	"session-stream/pkg/utils"
)

// SessionWindow is a dynamically sized window with inclusive [start, end]
// bounds. A zero-length window (start == end) holds a single record.
type SessionWindow struct {
	BaseWindow
}

var _ = Window(&SessionWindow{})

func NewSessionWindow(startMs int64, endMs int64) (SessionWindow, error) {
	if endMs < startMs {
		return SessionWindow{}, common_errors.ErrWindowEndBeforeStart
	}
	return SessionWindow{
		BaseWindow: NewBaseWindow(startMs, endMs),
	}, nil
}

// Overlap uses inclusive bounds on both sides, unlike hopping/tumbling
// windows whose end is exclusive.
func (w *SessionWindow) Overlap(other Window) bool {
	return other.Start() <= w.EndTs && w.StartTs <= other.End()
}

func (w SessionWindow) Equal(other SessionWindow) bool {
	return w.StartTs == other.StartTs && w.EndTs == other.EndTs
}

func (w SessionWindow) String() string {
	return fmt.Sprintf("SessionWindow: {Start: %d, End: %d}", w.StartTs, w.EndTs)
}

// MergeSessionWindow returns the smallest window covering both inputs.
func MergeSessionWindow(a SessionWindow, b SessionWindow) SessionWindow {
	return SessionWindow{BaseWindow: NewBaseWindow(
		utils.MinInt64(a.StartTs, b.StartTs),
		utils.MaxInt64(a.EndTs, b.EndTs))}
}

type SessionWindowJSONSerdeG struct{}

var _ = SerdeG[SessionWindow](SessionWindowJSONSerdeG{})

func (s SessionWindowJSONSerdeG) Encode(value SessionWindow) ([]byte, error) {
	return json.Marshal(&value)
}

func (s SessionWindowJSONSerdeG) Decode(value []byte) (SessionWindow, error) {
	sw := SessionWindow{}
	if err := json.Unmarshal(value, &sw); err != nil {
		return SessionWindow{}, err
	}
	return sw, nil
}

type SessionWindowMsgpSerdeG struct{}

var _ = SerdeG[SessionWindow](SessionWindowMsgpSerdeG{})

func (s SessionWindowMsgpSerdeG) Encode(value SessionWindow) ([]byte, error) {
	return value.MarshalMsg(nil)
}

func (s SessionWindowMsgpSerdeG) Decode(value []byte) (SessionWindow, error) {
	sw := SessionWindow{}
	if _, err := sw.UnmarshalMsg(value); err != nil {
		return SessionWindow{}, err
	}
	return sw, nil
}

func GetSessionWindowSerdeG(serdeFormat SerdeFormat) (SerdeG[SessionWindow], error) {
	switch serdeFormat {
	case JSON:
		return SessionWindowJSONSerdeG{}, nil
	case MSGP:
		return SessionWindowMsgpSerdeG{}, nil
	default:
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}
