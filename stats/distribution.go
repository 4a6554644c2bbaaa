package stats

import (
	moremath "github.com/aclements/go-moremath/stats"
)

type Distribution struct {
	Min    float64
	Max    float64
	Median float64
	IQR    float64
}

// Describe summarises xs by order statistics. It is false for an empty
// sample. xs is not modified.
func Describe(xs []float64) (Distribution, bool) {
	if len(xs) == 0 {
		return Distribution{}, false
	}
	sample := moremath.Sample{Xs: xs}.Copy().Sort()
	lo, hi := sample.Bounds()
	return Distribution{
		Min:    lo,
		Max:    hi,
		Median: sample.Quantile(0.5),
		IQR:    sample.IQR(),
	}, true
}
