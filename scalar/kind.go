package scalar

import (
	"fmt"
	"strings"
)

type Kind uint8

const (
	KindNull Kind = iota
	KindBoolean
	KindUtf8
	KindUInt8
	KindUInt16
	KindUInt32
	KindUInt64
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
)

var kindNames = map[Kind]string{
	KindNull:    "null",
	KindBoolean: "bool",
	KindUtf8:    "String",
	KindUInt8:   "u8",
	KindUInt16:  "u16",
	KindUInt32:  "u32",
	KindUInt64:  "u64",
	KindInt8:    "i8",
	KindInt16:   "i16",
	KindInt32:   "i32",
	KindInt64:   "i64",
	KindFloat32: "f32",
	KindFloat64: "f64",
}

func (kind Kind) String() string {
	if name, ok := kindNames[kind]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(kind))
}

// ParseKind accepts the names printed by Kind.String, case-insensitively,
// plus a few common aliases.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "null":
		return KindNull, nil
	case "bool", "boolean":
		return KindBoolean, nil
	case "string", "utf8", "text":
		return KindUtf8, nil
	case "u8", "uint8":
		return KindUInt8, nil
	case "u16", "uint16":
		return KindUInt16, nil
	case "u32", "uint32":
		return KindUInt32, nil
	case "u64", "uint64", "usize":
		return KindUInt64, nil
	case "i8", "int8":
		return KindInt8, nil
	case "i16", "int16":
		return KindInt16, nil
	case "i32", "int32":
		return KindInt32, nil
	case "i64", "int64", "isize":
		return KindInt64, nil
	case "f32", "float32":
		return KindFloat32, nil
	case "f64", "float64":
		return KindFloat64, nil
	}
	return KindNull, fmt.Errorf("unknown scalar kind %q", name)
}

func (kind Kind) IsSigned() bool {
	return kind >= KindInt8 && kind <= KindInt64
}

func (kind Kind) IsUnsigned() bool {
	return kind >= KindUInt8 && kind <= KindUInt64
}

func (kind Kind) IsInteger() bool {
	return kind.IsSigned() || kind.IsUnsigned()
}

func (kind Kind) IsFloat() bool {
	return kind == KindFloat32 || kind == KindFloat64
}

func (kind Kind) IsNumeric() bool {
	return kind.IsInteger() || kind.IsFloat()
}

// Width in bits of a numeric kind, 0 otherwise.
func (kind Kind) Width() int {
	switch kind {
	case KindUInt8, KindInt8:
		return 8
	case KindUInt16, KindInt16:
		return 16
	case KindUInt32, KindInt32, KindFloat32:
		return 32
	case KindUInt64, KindInt64, KindFloat64:
		return 64
	}
	return 0
}

// Unify is the kind arithmetic between a and b produces.
func Unify(a, b Kind) Kind {
	return unify(a, b)
}

// unify picks the kind two numeric operands are computed in.
func unify(a, b Kind) Kind {
	if a == b {
		return a
	}
	if a.IsFloat() || b.IsFloat() {
		return KindFloat64
	}
	if a.IsSigned() == b.IsSigned() {
		if a.Width() >= b.Width() {
			return a
		}
		return b
	}
	return KindInt64
}
