package scalar

import (
	"math"
)

func signedRange(kind Kind) (int64, int64) {
	switch kind {
	case KindInt8:
		return math.MinInt8, math.MaxInt8
	case KindInt16:
		return math.MinInt16, math.MaxInt16
	case KindInt32:
		return math.MinInt32, math.MaxInt32
	}
	return math.MinInt64, math.MaxInt64
}

func unsignedMax(kind Kind) uint64 {
	switch kind {
	case KindUInt8:
		return math.MaxUint8
	case KindUInt16:
		return math.MaxUint16
	case KindUInt32:
		return math.MaxUint32
	}
	return math.MaxUint64
}

// fromSigned builds a signed value of kind, or Null if n does not fit.
func fromSigned(kind Kind, n int64) Value {
	lo, hi := signedRange(kind)
	if n < lo || n > hi {
		return Null()
	}
	return Value{kind: kind, i: n}
}

func fromUnsigned(kind Kind, n uint64) Value {
	if n > unsignedMax(kind) {
		return Null()
	}
	return Value{kind: kind, u: n}
}

func fromFloat(kind Kind, f float64) Value {
	if kind == KindFloat32 {
		return Float32(float32(f))
	}
	return Float64(f)
}

// FromInt64 builds the integer n in the numeric family of kind. It is how
// counts enter mixed arithmetic. Non-numeric kinds and values that do not
// fit yield Null.
func FromInt64(kind Kind, n int64) Value {
	switch {
	case kind.IsSigned():
		return fromSigned(kind, n)
	case kind.IsUnsigned():
		if n < 0 {
			return Null()
		}
		return fromUnsigned(kind, uint64(n))
	case kind.IsFloat():
		return fromFloat(kind, float64(n))
	}
	return Null()
}

// Convert changes a numeric value to another numeric kind. Floats are
// truncated toward zero when converted to integers. Anything that does not
// fit, or is not numeric, yields Null.
func Convert(value Value, kind Kind) Value {
	if value.kind == kind {
		return value
	}
	if !value.kind.IsNumeric() || !kind.IsNumeric() {
		return Null()
	}
	if kind.IsFloat() {
		f, _ := value.ToFloat64()
		return fromFloat(kind, f)
	}
	switch {
	case value.kind.IsSigned():
		if kind.IsSigned() {
			return fromSigned(kind, value.i)
		}
		if value.i < 0 {
			return Null()
		}
		return fromUnsigned(kind, uint64(value.i))
	case value.kind.IsUnsigned():
		if kind.IsUnsigned() {
			return fromUnsigned(kind, value.u)
		}
		if value.u > math.MaxInt64 {
			return Null()
		}
		return fromSigned(kind, int64(value.u))
	}
	f := math.Trunc(value.f)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	if kind.IsSigned() {
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return Null()
		}
		return fromSigned(kind, int64(f))
	}
	if f < 0 || f >= math.MaxUint64 {
		return Null()
	}
	return fromUnsigned(kind, uint64(f))
}

// From converts a native Go value. The second result is false for types
// that have no scalar kind.
func From(native interface{}) (Value, bool) {
	switch v := native.(type) {
	case nil:
		return Null(), true
	case Value:
		return v, true
	case bool:
		return Bool(v), true
	case string:
		return Text(v), true
	case uint8:
		return Uint8(v), true
	case uint16:
		return Uint16(v), true
	case uint32:
		return Uint32(v), true
	case uint64:
		return Uint64(v), true
	case uint:
		return Uint(v), true
	case int8:
		return Int8(v), true
	case int16:
		return Int16(v), true
	case int32:
		return Int32(v), true
	case int64:
		return Int64(v), true
	case int:
		return Int(v), true
	case float32:
		return Float32(v), true
	case float64:
		return Float64(v), true
	}
	return Null(), false
}
