package scalar

import (
	"math"
	"strconv"
)

// Value is an immutable tagged union over the scalar kinds. The zero Value
// is Null.
type Value struct {
	kind Kind
	b    bool
	s    string
	i    int64
	u    uint64
	f    float64
}

// Key is the hashable identity of a Value, used as a map key by grouping
// indexes. Equal values always produce equal keys.
type Key struct {
	kind Kind
	s    string
	bits uint64
}

var canonicalNaN = math.Float64bits(math.NaN())

func Null() Value { return Value{} }

func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

func Text(s string) Value { return Value{kind: KindUtf8, s: s} }

func Uint8(n uint8) Value { return Value{kind: KindUInt8, u: uint64(n)} }

func Uint16(n uint16) Value { return Value{kind: KindUInt16, u: uint64(n)} }

func Uint32(n uint32) Value { return Value{kind: KindUInt32, u: uint64(n)} }

func Uint64(n uint64) Value { return Value{kind: KindUInt64, u: n} }

func Uint(n uint) Value { return Uint64(uint64(n)) }

func Int8(n int8) Value { return Value{kind: KindInt8, i: int64(n)} }

func Int16(n int16) Value { return Value{kind: KindInt16, i: int64(n)} }

func Int32(n int32) Value { return Value{kind: KindInt32, i: int64(n)} }

func Int64(n int64) Value { return Value{kind: KindInt64, i: n} }

func Int(n int) Value { return Int64(int64(n)) }

func Float32(f float32) Value { return Value{kind: KindFloat32, f: float64(f)} }

func Float64(f float64) Value { return Value{kind: KindFloat64, f: f} }

func (value Value) Kind() Kind {
	return value.kind
}

func (value Value) IsNull() bool {
	return value.kind == KindNull
}

func (value Value) IsNumeric() bool {
	return value.kind.IsNumeric()
}

func (value Value) Clone() Value {
	return value
}

func (value Value) Key() Key {
	key := Key{kind: value.kind}
	switch {
	case value.kind == KindUtf8:
		key.s = value.s
	case value.kind == KindBoolean:
		if value.b {
			key.bits = 1
		}
	case value.kind.IsSigned():
		key.bits = uint64(value.i)
	case value.kind.IsUnsigned():
		key.bits = value.u
	case value.kind.IsFloat():
		switch {
		case math.IsNaN(value.f):
			key.bits = canonicalNaN
		case value.f == 0:
			key.bits = 0
		default:
			key.bits = math.Float64bits(value.f)
		}
	}
	return key
}

// Equal reports whether both values have the same kind and payload. Unlike
// float comparison, NaN is equal to NaN.
func (value Value) Equal(other Value) bool {
	return value.Key() == other.Key()
}

func (value Value) String() string {
	switch {
	case value.kind == KindNull:
		return "null"
	case value.kind == KindBoolean:
		return strconv.FormatBool(value.b)
	case value.kind == KindUtf8:
		return value.s
	case value.kind.IsSigned():
		return strconv.FormatInt(value.i, 10)
	case value.kind.IsUnsigned():
		return strconv.FormatUint(value.u, 10)
	case value.kind == KindFloat32:
		return strconv.FormatFloat(value.f, 'g', -1, 32)
	default:
		return strconv.FormatFloat(value.f, 'g', -1, 64)
	}
}

func (value Value) AsBool() (bool, bool) {
	return value.b, value.kind == KindBoolean
}

func (value Value) AsText() (string, bool) {
	return value.s, value.kind == KindUtf8
}

func (value Value) AsUint8() (uint8, bool) {
	return uint8(value.u), value.kind == KindUInt8
}

func (value Value) AsUint16() (uint16, bool) {
	return uint16(value.u), value.kind == KindUInt16
}

func (value Value) AsUint32() (uint32, bool) {
	return uint32(value.u), value.kind == KindUInt32
}

func (value Value) AsUint64() (uint64, bool) {
	return value.u, value.kind == KindUInt64
}

func (value Value) AsInt8() (int8, bool) {
	return int8(value.i), value.kind == KindInt8
}

func (value Value) AsInt16() (int16, bool) {
	return int16(value.i), value.kind == KindInt16
}

func (value Value) AsInt32() (int32, bool) {
	return int32(value.i), value.kind == KindInt32
}

func (value Value) AsInt64() (int64, bool) {
	return value.i, value.kind == KindInt64
}

func (value Value) AsFloat32() (float32, bool) {
	return float32(value.f), value.kind == KindFloat32
}

func (value Value) AsFloat64() (float64, bool) {
	return value.f, value.kind == KindFloat64
}

// ToFloat64 widens any numeric kind to float64.
func (value Value) ToFloat64() (float64, bool) {
	switch {
	case value.kind.IsSigned():
		return float64(value.i), true
	case value.kind.IsUnsigned():
		return float64(value.u), true
	case value.kind.IsFloat():
		return value.f, true
	}
	return 0, false
}

// WidenSigned returns any signed integer kind as int64.
func (value Value) WidenSigned() (int64, bool) {
	return value.i, value.kind.IsSigned()
}

// WidenUnsigned returns any unsigned integer kind as uint64.
func (value Value) WidenUnsigned() (uint64, bool) {
	return value.u, value.kind.IsUnsigned()
}

// Widen moves a numeric value into the 64-bit kind of its family, so sums
// of narrow values do not overflow early. Other values are returned as is.
func (value Value) Widen() Value {
	switch {
	case value.kind.IsSigned():
		return Int64(value.i)
	case value.kind.IsUnsigned():
		return Uint64(value.u)
	case value.kind.IsFloat():
		return Float64(value.f)
	}
	return value
}
