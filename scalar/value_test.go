package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Equal(t *testing.T) {
	assert.True(t, Uint16(67).Equal(Uint16(67)))
	assert.False(t, Uint16(67).Equal(Uint32(67)))
	assert.False(t, Text("a").Equal(Text("b")))
	assert.True(t, Null().Equal(Value{}))
	assert.True(t, Float64(math.NaN()).Equal(Float64(math.NaN())))
	assert.True(t, Float64(0).Equal(Float64(math.Copysign(0, -1))))
}

func TestValue_KeyGroupsEqualValues(t *testing.T) {
	groups := make(map[Key]int)
	for _, value := range []Value{Int64(1), Int64(1), Text("1"), Float64(math.NaN()), Float64(math.NaN()), Bool(true)} {
		groups[value.Key()]++
	}
	assert.Equal(t, 4, len(groups))
	assert.Equal(t, 2, groups[Int64(1).Key()])
	assert.Equal(t, 2, groups[Float64(math.NaN()).Key()])
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "null", Null().String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "whoop", Text("whoop").String())
	assert.Equal(t, "-10", Int8(-10).String())
	assert.Equal(t, "68", Uint16(68).String())
	assert.Equal(t, "68.5", Float64(68.5).String())
	assert.Equal(t, "0.1", Float32(0.1).String())
}

func TestValue_Conversions(t *testing.T) {
	n, ok := Uint16(67).AsUint16()
	assert.True(t, ok)
	assert.Equal(t, uint16(67), n)

	_, ok = Uint16(67).AsInt64()
	assert.False(t, ok)

	s, ok := Text("x").AsText()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	f, ok := Int8(-3).ToFloat64()
	assert.True(t, ok)
	assert.Equal(t, -3.0, f)

	_, ok = Bool(true).ToFloat64()
	assert.False(t, ok)
}

func TestFromInt64(t *testing.T) {
	assert.Equal(t, Uint16(2), FromInt64(KindUInt16, 2))
	assert.Equal(t, Float32(2), FromInt64(KindFloat32, 2))
	assert.True(t, FromInt64(KindUInt8, -1).IsNull())
	assert.True(t, FromInt64(KindInt8, 300).IsNull())
	assert.True(t, FromInt64(KindUtf8, 1).IsNull())
}

func TestConvert(t *testing.T) {
	assert.Equal(t, Int16(-5), Convert(Int64(-5), KindInt16))
	assert.True(t, Convert(Int64(-5), KindUInt16).IsNull())
	assert.Equal(t, Uint8(3), Convert(Float64(3.9), KindUInt8))
	assert.True(t, Convert(Float64(math.NaN()), KindInt32).IsNull())
	assert.True(t, Convert(Uint64(math.MaxUint64), KindInt64).IsNull())
	assert.True(t, Convert(Text("3"), KindInt64).IsNull())
}

func TestFrom(t *testing.T) {
	value, ok := From(6)
	assert.True(t, ok)
	assert.Equal(t, Int64(6), value)

	value, ok = From(nil)
	assert.True(t, ok)
	assert.True(t, value.IsNull())

	_, ok = From([]int{1})
	assert.False(t, ok)
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("U16")
	assert.NoError(t, err)
	assert.Equal(t, KindUInt16, kind)
	assert.Equal(t, "u16", kind.String())

	kind, err = ParseKind("string")
	assert.NoError(t, err)
	assert.Equal(t, KindUtf8, kind)

	_, err = ParseKind("decimal")
	assert.Error(t, err)
}

func TestValue_Widen(t *testing.T) {
	assert.True(t, Uint8(200).Widen().Equal(Uint64(200)))
	assert.True(t, Int8(-3).Widen().Equal(Int64(-3)))
	assert.True(t, Float32(1.5).Widen().Equal(Float64(1.5)))
	assert.True(t, Text("x").Widen().Equal(Text("x")))
	assert.True(t, Null().Widen().IsNull())

	// u8 200 + 100 overflows in its own kind but not once widened.
	assert.True(t, Uint8(200).Add(Uint8(100)).IsNull())
	assert.True(t, Uint8(200).Widen().Add(Uint8(100).Widen()).Equal(Uint64(300)))
}

func TestUnify(t *testing.T) {
	assert.Equal(t, KindUInt16, Unify(KindUInt8, KindUInt16))
	assert.Equal(t, KindInt64, Unify(KindUInt8, KindInt8))
	assert.Equal(t, KindFloat32, Unify(KindFloat32, KindFloat32))
	assert.Equal(t, KindFloat64, Unify(KindFloat32, KindInt8))
}
