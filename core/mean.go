package core

import (
	"cellframe/scalar"
)

type number interface {
	~int64 | ~uint64 | ~float64
}

func collect[T number](cells []*Cell, kind scalar.Kind, widen func(scalar.Value) (T, bool)) []T {
	values := make([]T, 0, len(cells))
	for _, cell := range cells {
		if cell.value.Kind() != kind {
			continue
		}
		if v, ok := widen(cell.value); ok {
			values = append(values, v)
		}
	}
	return values
}

// meanOf divides in T, so integer means truncate. A total that overflows T
// yields false.
func meanOf[T number](values []T) (T, bool) {
	var total T
	if len(values) == 0 {
		return total, false
	}
	for _, v := range values {
		next := total + v
		if (v > 0 && next < total) || (v < 0 && next > total) {
			return 0, false
		}
		total = next
	}
	return total / T(len(values)), true
}

// Mean aggregates the cells sharing the kind of the first non-null cell;
// cells of any other kind are skipped. The result keeps that kind, except
// booleans, whose mean is the Float64 fraction of true values. Text and
// empty columns have no mean.
func (column *Column) Mean() (scalar.Value, bool) {
	kind := scalar.KindNull
	for _, cell := range column.cells {
		if !cell.value.IsNull() {
			kind = cell.value.Kind()
			break
		}
	}

	switch {
	case kind.IsSigned():
		mean, ok := meanOf(collect(column.cells, kind, scalar.Value.WidenSigned))
		return scalar.Convert(scalar.Int64(mean), kind), ok
	case kind.IsUnsigned():
		mean, ok := meanOf(collect(column.cells, kind, scalar.Value.WidenUnsigned))
		return scalar.Convert(scalar.Uint64(mean), kind), ok
	case kind.IsFloat():
		mean, ok := meanOf(collect(column.cells, kind, scalar.Value.ToFloat64))
		return scalar.Convert(scalar.Float64(mean), kind), ok
	case kind == scalar.KindBoolean:
		truths := collect(column.cells, kind, func(value scalar.Value) (float64, bool) {
			b, ok := value.AsBool()
			if b {
				return 1, ok
			}
			return 0, ok
		})
		mean, ok := meanOf(truths)
		return scalar.Float64(mean), ok
	}
	return scalar.Null(), false
}
