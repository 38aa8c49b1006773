package exprlang

import "math"

// equalTolerance is the fixed absolute tolerance used to compare a Float
// against another Float or an Int promoted to Float. A deliberate, fixed
// choice rather than a relative (ULP-based) comparison.
const equalTolerance = 2e-15

// addValues implements the Add opcode's operand rules: string
// concatenation via Display when either operand is a String,
// Int+Int with native 64-bit arithmetic (overflow is unchecked and wraps,
// as Go's int64 + does), Int/Float promotion
// otherwise, and the NilValue/BoolNoArithmetic fatal cases.
func addValues(a, b Value, line int) (Value, error) {
	if a.IsString() || b.IsString() {
		return StringValue(a.Display() + b.Display()), nil
	}
	if err := checkArithmeticOperands(a, b, line); err != nil {
		return Value{}, err
	}
	if a.IsFloat() || b.IsFloat() {
		return FloatValue(a.AsFloat() + b.AsFloat()), nil
	}
	return IntValue(a.Int() + b.Int()), nil
}

func subValues(a, b Value, line int) (Value, error) {
	if a.IsString() || b.IsString() {
		return Value{}, newExecErrorAt(ErrOnlyAdd, line, "only + is defined on strings")
	}
	if err := checkArithmeticOperands(a, b, line); err != nil {
		return Value{}, err
	}
	if a.IsFloat() || b.IsFloat() {
		return FloatValue(a.AsFloat() - b.AsFloat()), nil
	}
	return IntValue(a.Int() - b.Int()), nil
}

func mulValues(a, b Value, line int) (Value, error) {
	if a.IsString() || b.IsString() {
		return Value{}, newExecErrorAt(ErrOnlyAdd, line, "only + is defined on strings")
	}
	if err := checkArithmeticOperands(a, b, line); err != nil {
		return Value{}, err
	}
	if a.IsFloat() || b.IsFloat() {
		return FloatValue(a.AsFloat() * b.AsFloat()), nil
	}
	return IntValue(a.Int() * b.Int()), nil
}

// divValues follows native signed-integer semantics for Int/Int division by
// zero: it traps (panics), matching Go's own `/` behavior rather than
// catching and converting it to an Error. Hosts that cannot tolerate a
// panic from a script should validate divisors before running untrusted
// scripts, or recover() around Execute.
func divValues(a, b Value, line int) (Value, error) {
	if a.IsString() || b.IsString() {
		return Value{}, newExecErrorAt(ErrOnlyAdd, line, "only + is defined on strings")
	}
	if err := checkArithmeticOperands(a, b, line); err != nil {
		return Value{}, err
	}
	if a.IsFloat() || b.IsFloat() {
		return FloatValue(a.AsFloat() / b.AsFloat()), nil
	}
	return IntValue(a.Int() / b.Int()), nil
}

func checkArithmeticOperands(a, b Value, line int) error {
	if a.IsNil() || b.IsNil() {
		return newExecErrorAt(ErrNilValue, line, "nil operand in arithmetic expression")
	}
	if a.IsBool() || b.IsBool() {
		return newExecErrorAt(ErrBoolNoArithmetic, line, "bool operand in arithmetic expression")
	}
	return nil
}

// compareValues implements Less/Greater: defined only on Int/Float mixes.
func compareValues(a, b Value, line int) (less bool, greater bool, err error) {
	if !a.IsNumber() || !b.IsNumber() {
		return false, false, newExecErrorAt(ErrNoComparison, line, "comparison requires numeric operands, got %s and %s", a.Kind(), b.Kind())
	}
	if a.IsFloat() || b.IsFloat() {
		af, bf := a.AsFloat(), b.AsFloat()
		return af < bf, af > bf, nil
	}
	return a.Int() < b.Int(), a.Int() > b.Int(), nil
}

// equalValues implements pointwise equality. It never fails: unmatched
// cross-type pairs are simply unequal.
func equalValues(a, b Value) bool {
	switch {
	case a.IsBool() && b.IsBool():
		return a.Bool() == b.Bool()
	case a.IsInt() && b.IsInt():
		return a.Int() == b.Int()
	case a.IsNumber() && b.IsNumber():
		return math.Abs(a.AsFloat()-b.AsFloat()) <= equalTolerance
	case a.IsString() && b.IsString():
		return a.Str() == b.Str()
	case a.IsNil() && b.IsNil():
		return true
	default:
		return false
	}
}

// notValue implements the logical ! operator: the only place a non-boolean
// is demoted to a boolean result.
func notValue(v Value) Value {
	switch {
	case v.IsNil():
		return BoolValue(true)
	case v.IsBool():
		return BoolValue(!v.Bool())
	default:
		return BoolValue(false)
	}
}

// negateValue implements unary '-': Int or Float only.
func negateValue(v Value, line int) (Value, error) {
	switch {
	case v.IsInt():
		return IntValue(-v.Int()), nil
	case v.IsFloat():
		return FloatValue(-v.Float()), nil
	default:
		return Value{}, newExecErrorAt(ErrNoNumber, line, "unary - requires a number, got %s", v.Kind())
	}
}

// bitwiseAnd/Or/Xor/Not require Int operands.
func bitwiseAnd(a, b Value, line int) (Value, error) {
	if !a.IsInt() || !b.IsInt() {
		return Value{}, newExecErrorAt(ErrNoInteger, line, "& requires int operands, got %s and %s", a.Kind(), b.Kind())
	}
	return IntValue(a.Int() & b.Int()), nil
}

func bitwiseOr(a, b Value, line int) (Value, error) {
	if !a.IsInt() || !b.IsInt() {
		return Value{}, newExecErrorAt(ErrNoInteger, line, "| requires int operands, got %s and %s", a.Kind(), b.Kind())
	}
	return IntValue(a.Int() | b.Int()), nil
}

func bitwiseXor(a, b Value, line int) (Value, error) {
	if !a.IsInt() || !b.IsInt() {
		return Value{}, newExecErrorAt(ErrNoInteger, line, "^ requires int operands, got %s and %s", a.Kind(), b.Kind())
	}
	return IntValue(a.Int() ^ b.Int()), nil
}

func bitwiseNot(a Value, line int) (Value, error) {
	if !a.IsInt() {
		return Value{}, newExecErrorAt(ErrNoInteger, line, "~ requires an int operand, got %s", a.Kind())
	}
	return IntValue(^a.Int()), nil
}
