package stats

import (
	"github.com/aclements/go-moremath/fit"
)

// Slope is the ordinary least squares gradient of ys over xs. It is 0 when
// there are fewer than two points or every x is the same.
func Slope(xs, ys []float64) float64 {
	if len(xs) < 2 || len(xs) != len(ys) || isConstant(xs) {
		return 0
	}
	result := fit.PolynomialRegression(xs, ys, nil, 1)
	if len(result.Coefficients) < 2 {
		return 0
	}
	return result.Coefficients[1]
}

// RollingSlope returns, for every index, the slope over the trailing
// `points` pairs ending there, and 0 until that many pairs exist.
func RollingSlope(xs, ys []float64, points int) []float64 {
	slopes := make([]float64, len(xs))
	if points < 2 {
		return slopes
	}
	for i := points - 1; i < len(xs) && i < len(ys); i++ {
		slopes[i] = Slope(xs[i-points+1:i+1], ys[i-points+1:i+1])
	}
	return slopes
}

func isConstant(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}
