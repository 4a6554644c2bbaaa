package core

import (
	"cellframe/scalar"
	"cellframe/stats"
	"time"
)

type RatePoint struct {
	Elapsed float64 // seconds since the first row
	Mean    float64
	Slope   float64
}

// RateOfChange fits a least squares line through the trailing `points`
// rolling means of the given kind, against elapsed seconds. Cells without a
// rolling mean of that kind are left out of the series. Nothing in the
// column is modified.
func (column *Column) RateOfChange(kind scalar.Kind, points int) []RatePoint {
	if len(column.cells) == 0 {
		return nil
	}

	origin := column.cells[0].row.Timestamp()
	xs := make([]float64, 0, len(column.cells))
	ys := make([]float64, 0, len(column.cells))
	for _, cell := range column.cells {
		mean, ok := cell.RollingMean()
		if !ok || mean.Kind() != kind {
			continue
		}
		y, ok := mean.ToFloat64()
		if !ok {
			continue
		}
		xs = append(xs, elapsedSeconds(origin, cell.row.Timestamp()))
		ys = append(ys, y)
	}

	slopes := stats.RollingSlope(xs, ys, points)
	series := make([]RatePoint, len(xs))
	for i := range xs {
		series[i] = RatePoint{Elapsed: xs[i], Mean: ys[i], Slope: slopes[i]}
	}
	return series
}

func elapsedSeconds(origin, at time.Time) float64 {
	return at.Sub(origin).Seconds()
}
