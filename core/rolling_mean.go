package core

import (
	"cellframe/scalar"
	"cellframe/window"
)

// UpdateRollingMean swaps in a new configuration and rebuilds every cell's
// rolling mean, or clears them all when disabled.
func (column *Column) UpdateRollingMean(rollingMean RollingMean) {
	rollingMean = NewRollingMean(rollingMean.Enabled, rollingMean.Window)
	if rollingMean != column.rollingMean {
		column.rollingMean = rollingMean
		column.windowing = window.NewTrailing(rollingMean.Window)
	}

	for i, cell := range column.cells {
		if column.rollingMean.Enabled {
			column.cellRollingMean(i)
		} else {
			cell.SetRollingMean(scalar.Null(), false)
		}
	}
	column.version++
}

// RollingMeans is the memoised series, with Null where no mean exists.
func (column *Column) RollingMeans() []scalar.Value {
	means := make([]scalar.Value, len(column.cells))
	for i, cell := range column.cells {
		means[i], _ = cell.RollingMean()
	}
	return means
}

func (column *Column) recalculateRollingMeans(lo, hi int) {
	for i := lo; i <= hi; i++ {
		column.cellRollingMean(i)
	}
}

// cellRollingMean memoises the mean of the non-null values in the trailing
// window ending at position. The sum and the count are taken in the widened
// kind, so the result follows the scalar arithmetic rules, and the mean is
// converted back to the kind of the window's values. A window of only nulls
// yields a present Null.
func (column *Column) cellRollingMean(position int) (scalar.Value, bool) {
	cell := column.cells[position]
	lo, hi, ok := column.windowing.Bounds(position, len(column.cells))
	if !ok {
		cell.SetRollingMean(scalar.Null(), false)
		return scalar.Null(), false
	}

	kind := scalar.KindNull
	sum := scalar.Null()
	count := int64(0)
	for _, member := range column.cells[lo : hi+1] {
		if member.value.IsNull() {
			continue
		}
		if count == 0 {
			kind = member.value.Kind()
			sum = member.value.Widen()
		} else {
			kind = scalar.Unify(kind, member.value.Kind())
			sum = sum.Add(member.value.Widen())
		}
		count++
	}

	mean := scalar.Convert(sum.Div(scalar.FromInt64(sum.Kind(), count)), kind)
	cell.SetRollingMean(mean, true)
	return mean, true
}
