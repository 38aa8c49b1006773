package exprlang

import (
	"strconv"
)

// ValueKind discriminates the variant held by a Value.
type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is the engine's tagged value: Nil, Bool, Int (64-bit signed),
// Float (64-bit IEEE-754) or String (owned UTF-8). Values are cheap to copy
// — a Go struct copy copies the string header, and since Go strings are
// immutable the shared bytes can never change under a copy — and never hold
// a back-reference into the store or the VM.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
}

// Nil is the single nil value.
var Nil = Value{kind: KindNil}

// BoolValue constructs a Bool value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// IntValue constructs an Int value.
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// FloatValue constructs a Float value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// StringValue constructs a String value.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNil() bool    { return v.kind == KindNil }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsInt() bool    { return v.kind == KindInt }
func (v Value) IsFloat() bool  { return v.kind == KindFloat }
func (v Value) IsString() bool { return v.kind == KindString }
func (v Value) IsNumber() bool { return v.kind == KindInt || v.kind == KindFloat }

// Bool returns the boolean payload; zero-value false if the Value isn't a Bool.
func (v Value) Bool() bool { return v.b }

// Int returns the int64 payload; zero if the Value isn't an Int.
func (v Value) Int() int64 { return v.i }

// Float returns the float64 payload; zero if the Value isn't a Float.
func (v Value) Float() float64 { return v.f }

// Str returns the string payload; empty string if the Value isn't a String.
func (v Value) Str() string { return v.s }

// AsFloat widens an Int or Float to float64. Used by the mixed-numeric
// promotion rules in arith.go.
func (v Value) AsFloat() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// ToInt64 converts a host scalar Value to int64, failing for non-numeric
// kinds.
func (v Value) ToInt64() (int64, error) {
	switch v.kind {
	case KindInt:
		return v.i, nil
	case KindFloat:
		return int64(v.f), nil
	default:
		return 0, newExecError(ErrNoNumber, "cannot convert %s to int64", v.kind)
	}
}

// ToFloat64 converts a host scalar Value to float64, failing for
// non-numeric kinds.
func (v Value) ToFloat64() (float64, error) {
	switch v.kind {
	case KindInt:
		return float64(v.i), nil
	case KindFloat:
		return v.f, nil
	default:
		return 0, newExecError(ErrNoNumber, "cannot convert %s to float64", v.kind)
	}
}

// ToBool converts a host scalar Value to bool, failing for non-Bool kinds.
func (v Value) ToBool() (bool, error) {
	if v.kind != KindBool {
		return false, newExecError(ErrNoBoolean, "cannot convert %s to bool", v.kind)
	}
	return v.b, nil
}

// ToString converts a host scalar Value to its raw string payload, failing
// for non-String kinds. Use Display to render any kind instead.
func (v Value) ToString() (string, error) {
	if v.kind != KindString {
		return "", newExecError(ErrNoNumber, "cannot convert %s to string", v.kind)
	}
	return v.s, nil
}

// Display renders the value's displayed form: true/false
// for Bool, "nil" for Nil, the platform default signed/float
// representation for numbers (the float form is the shortest round-trip
// representation, matching Go's strconv.FormatFloat with 'g' and -1
// precision), and the raw bytes for String.
func (v Value) Display() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	default:
		return ""
	}
}
