package exprlang

import "testing"

func TestValueDisplay(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Nil, "nil"},
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
		{IntValue(-42), "-42"},
		{FloatValue(1.0 / 3.0), "0.3333333333333333"},
		{StringValue("hi"), "hi"},
	}
	for _, c := range cases {
		if got := c.v.Display(); got != c.want {
			t.Errorf("Display(%+v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestValuePredicates(t *testing.T) {
	if !IntValue(1).IsNumber() || !FloatValue(1).IsNumber() {
		t.Error("Int and Float should both be IsNumber")
	}
	if BoolValue(true).IsNumber() || StringValue("x").IsNumber() || Nil.IsNumber() {
		t.Error("Bool, String, Nil must not be IsNumber")
	}
}

func TestValueConversions(t *testing.T) {
	if _, err := StringValue("x").ToInt64(); err == nil {
		t.Error("ToInt64 on a String should fail")
	}
	if v, err := IntValue(7).ToInt64(); err != nil || v != 7 {
		t.Errorf("ToInt64 on Int = (%v, %v), want (7, nil)", v, err)
	}
	if _, err := IntValue(1).ToBool(); err == nil {
		t.Error("ToBool on an Int should fail")
	}
	if b, err := BoolValue(true).ToBool(); err != nil || !b {
		t.Errorf("ToBool on Bool = (%v, %v), want (true, nil)", b, err)
	}
}

func TestAsFloatWidensInt(t *testing.T) {
	if got := IntValue(3).AsFloat(); got != 3.0 {
		t.Errorf("AsFloat(Int(3)) = %v, want 3.0", got)
	}
}
