package reform

import (
	"fmt"
	"math"
	"strconv"
)

// ValueKind identifies the variant held by a Value.
type ValueKind int

const (
	KindString ValueKind = iota
	KindInt
	KindUint
	KindFloat
	KindBool
	KindChar
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	default:
		return "unknown"
	}
}

// Value is a closed union of every kind of datum the engine can format or
// extract: string, signed integer, unsigned integer, float, bool and a
// single character. A Value is immutable once constructed.
type Value struct {
	kind ValueKind
	s    string
	i    int64
	u    uint64
	f    float64
	b    bool
	c    rune
}

// String constructs a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int constructs a signed integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Uint constructs an unsigned integer Value.
func Uint(u uint64) Value { return Value{kind: KindUint, u: u} }

// Float constructs a floating point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool constructs a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Char constructs a single-character Value.
func Char(c rune) Value { return Value{kind: KindChar, c: c} }

// ValueOf converts common Go scalar types to a Value.
// Unsupported types are rendered through fmt and stored as strings.
func ValueOf(v interface{}) Value {
	switch x := v.(type) {
	case Value:
		return x
	case string:
		return String(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Uint(uint64(x))
	case uint8:
		return Uint(uint64(x))
	case uint16:
		return Uint(uint64(x))
	case uint32:
		return Uint(uint64(x))
	case uint64:
		return Uint(x)
	case uintptr:
		return Uint(uint64(x))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case bool:
		return Bool(x)
	case rune:
		// rune aliases int32; character literals land here
		return Char(x)
	default:
		return String(fmt.Sprintf("%v", v))
	}
}

// Kind returns the variant tag of this value.
func (v Value) Kind() ValueKind { return v.kind }

// AsStr returns the string content if this is a string value.
func (v Value) AsStr() (string, bool) {
	if v.kind == KindString {
		return v.s, true
	}
	return "", false
}

// AsInt returns this value as a signed integer, if possible.
// Unsigned values convert when they fit; booleans convert to 0/1.
func (v Value) AsInt() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindUint:
		if v.u <= math.MaxInt64 {
			return int64(v.u), true
		}
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// AsUint returns this value as an unsigned integer, if possible.
// Non-negative signed values convert; booleans convert to 0/1.
func (v Value) AsUint() (uint64, bool) {
	switch v.kind {
	case KindUint:
		return v.u, true
	case KindInt:
		if v.i >= 0 {
			return uint64(v.i), true
		}
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// AsFloat returns this value as a float, if possible.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	case KindUint:
		return float64(v.u), true
	}
	return 0, false
}

// AsBool returns the boolean content if this is a boolean value.
func (v Value) AsBool() (bool, bool) {
	if v.kind == KindBool {
		return v.b, true
	}
	return false, false
}

// AsChar returns this value as a single character, if possible.
// Single-character strings convert.
func (v Value) AsChar() (rune, bool) {
	switch v.kind {
	case KindChar:
		return v.c, true
	case KindString:
		runes := []rune(v.s)
		if len(runes) == 1 {
			return runes[0], true
		}
	}
	return 0, false
}

// ToInt converts this value to a signed integer for formatting.
func (v Value) ToInt() (int64, error) {
	if i, ok := v.AsInt(); ok {
		return i, nil
	}
	return 0, NewConversionError(fmt.Sprintf("cannot convert %s value to int", v.kind), nil)
}

// ToUint converts this value to an unsigned integer for formatting.
func (v Value) ToUint() (uint64, error) {
	if u, ok := v.AsUint(); ok {
		return u, nil
	}
	return 0, NewConversionError(fmt.Sprintf("cannot convert %s value to uint", v.kind), nil)
}

// ToFloat converts this value to a float for formatting.
func (v Value) ToFloat() (float64, error) {
	if f, ok := v.AsFloat(); ok {
		return f, nil
	}
	return 0, NewConversionError(fmt.Sprintf("cannot convert %s value to float", v.kind), nil)
}

// String renders the natural textual form of the value.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindChar:
		return string(v.c)
	default:
		return ""
	}
}
