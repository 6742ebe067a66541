package stats

import "golang.org/x/exp/constraints"

// POf returns the sample at the given percentile of a sorted slice.
func POf[E constraints.Ordered](t []E, percent float64) E {
	return t[(int(float64(len(t))*percent+0.5) - 1)]
}
