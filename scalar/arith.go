package scalar

import (
	"math"
	"math/bits"
)

type op uint8

const (
	opAdd op = iota
	opSub
	opMul
	opDiv
)

// Arithmetic never panics. Null or non-numeric operands give Null, and so
// does integer overflow, underflow or division by zero. Subtracting
// unsigned integers gives a signed Int64 difference.

func (value Value) Add(other Value) Value { return apply(opAdd, value, other) }

func (value Value) Sub(other Value) Value { return apply(opSub, value, other) }

func (value Value) Mul(other Value) Value { return apply(opMul, value, other) }

func (value Value) Div(other Value) Value { return apply(opDiv, value, other) }

func apply(operation op, a, b Value) Value {
	if !a.kind.IsNumeric() || !b.kind.IsNumeric() {
		return Null()
	}
	kind := unify(a.kind, b.kind)
	switch {
	case kind.IsFloat():
		return applyFloat(operation, kind, a, b)
	case kind.IsSigned():
		x, okx := toInt64(a)
		y, oky := toInt64(b)
		if !okx || !oky {
			return Null()
		}
		r, ok := applySigned(operation, x, y)
		if !ok {
			return Null()
		}
		return fromSigned(kind, r)
	default:
		if operation == opSub {
			return signedDifference(a.u, b.u)
		}
		r, ok := applyUnsigned(operation, a.u, b.u)
		if !ok {
			return Null()
		}
		return fromUnsigned(kind, r)
	}
}

func toInt64(value Value) (int64, bool) {
	if value.kind.IsUnsigned() {
		if value.u > math.MaxInt64 {
			return 0, false
		}
		return int64(value.u), true
	}
	return value.i, true
}

func applyFloat(operation op, kind Kind, a, b Value) Value {
	x, _ := a.ToFloat64()
	y, _ := b.ToFloat64()
	var r float64
	switch operation {
	case opAdd:
		r = x + y
	case opSub:
		r = x - y
	case opMul:
		r = x * y
	case opDiv:
		if y == 0 {
			return Null()
		}
		r = x / y
	}
	return fromFloat(kind, r)
}

func applySigned(operation op, x, y int64) (int64, bool) {
	switch operation {
	case opAdd:
		r := x + y
		if (x > 0 && y > 0 && r < 0) || (x < 0 && y < 0 && r >= 0) {
			return 0, false
		}
		return r, true
	case opSub:
		r := x - y
		if (x >= 0 && y < 0 && r < 0) || (x < 0 && y > 0 && r >= 0) {
			return 0, false
		}
		return r, true
	case opMul:
		if x == 0 || y == 0 {
			return 0, true
		}
		if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
			return 0, false
		}
		r := x * y
		if r/y != x {
			return 0, false
		}
		return r, true
	default:
		if y == 0 || (x == math.MinInt64 && y == -1) {
			return 0, false
		}
		return x / y, true
	}
}

func applyUnsigned(operation op, x, y uint64) (uint64, bool) {
	switch operation {
	case opAdd:
		r, carry := bits.Add64(x, y, 0)
		return r, carry == 0
	case opMul:
		hi, lo := bits.Mul64(x, y)
		return lo, hi == 0
	default:
		if y == 0 {
			return 0, false
		}
		return x / y, true
	}
}

func signedDifference(x, y uint64) Value {
	if x >= y {
		d := x - y
		if d > math.MaxInt64 {
			return Null()
		}
		return Int64(int64(d))
	}
	d := y - x
	if d > 1<<63 {
		return Null()
	}
	// -(1<<63) is representable even though 1<<63 is not.
	return Int64(int64(-d))
}
