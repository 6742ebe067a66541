//go:generate msgp
//msgp:ignore Window
package commtypes

import (
	"time"
)

type Window interface {
	// returns window start in unix timestamp (ms)
	Start() int64
	// returns window end in unix timestamp (ms)
	End() int64
	// returns window start time
	StartTime() time.Time
	// returns window end time
	EndTime() time.Time
	// check if the given window overlaps with this window
	Overlap(other Window) bool
}

type BaseWindow struct {
	StartTs int64 `json:"startTs" msg:"startTs"`
	EndTs   int64 `json:"endTs" msg:"endTs"`
}

func NewBaseWindow(startTs int64, endTs int64) BaseWindow {
	return BaseWindow{
		StartTs: startTs,
		EndTs:   endTs,
	}
}

func (w *BaseWindow) Start() int64 {
	return w.StartTs
}

func (w *BaseWindow) End() int64 {
	return w.EndTs
}

func (w *BaseWindow) StartTime() time.Time {
	return time.UnixMilli(w.StartTs)
}

func (w *BaseWindow) EndTime() time.Time {
	return time.UnixMilli(w.EndTs)
}
