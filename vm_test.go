package exprlang

import "testing"

func runScript(t *testing.T, src string, store Store) string {
	t.Helper()
	rt := NewRuntime()
	if _, err := rt.Run(src, store); err != nil {
		t.Fatalf("running %q: %v", src, err)
	}
	return rt.Stdout()
}

func TestVMScenarioArithmeticAndGrouping(t *testing.T) {
	got := runScript(t, "print (5 - (3 - 1)) + -1;", newMapStore())
	if got != "2\n" {
		t.Errorf("got %q, want %q", got, "2\n")
	}
}

func TestVMScenarioLogicalAndComparison(t *testing.T) {
	got := runScript(t, "print !(5 - 4 > 3 * 2 == !nil);", newMapStore())
	if got != "true\n" {
		t.Errorf("got %q, want %q", got, "true\n")
	}
}

func TestVMScenarioFloatDivision(t *testing.T) {
	got := runScript(t, "print 1.0 / 3.0;", newMapStore())
	if got != "0.3333333333333333\n" {
		t.Errorf("got %q, want %q", got, "0.3333333333333333\n")
	}
}

func TestVMScenarioCompoundAssign(t *testing.T) {
	got := runScript(t, "test:=3;test+=(17-10)*2-7;print test;", newMapStore())
	if got != "10\n" {
		t.Errorf("got %q, want %q", got, "10\n")
	}
}

func TestVMScenarioMultipleVariables(t *testing.T) {
	got := runScript(t, "param_A:=7;param_B:=5;param_B*=2;param_C:=(param_A*3)+param_B;print param_B;print param_C", newMapStore())
	if got != "10\n31\n" {
		t.Errorf("got %q, want %q", got, "10\n31\n")
	}
}

func TestVMScenarioTernary(t *testing.T) {
	got := runScript(t, "val_A:=2;val_B:=(val_A>1)?42:24;print val_B", newMapStore())
	if got != "42\n" {
		t.Errorf("got %q, want %q", got, "42\n")
	}
}

func TestVMScenarioBitwise(t *testing.T) {
	got := runScript(t, "value:=0x7F;val_A:=value&0x0F;val_B:=value|0xF0;print val_A;print val_B", newMapStore())
	if got != "15\n255\n" {
		t.Errorf("got %q, want %q", got, "15\n255\n")
	}
}

func TestVMScenarioFloatTolerance(t *testing.T) {
	rt := NewRuntime()
	chunk, err := rt.Parse("5 == 4.999999999999998;print 5 == 4.999999999999998;")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rt.Execute(chunk, newMapStore()); err != nil {
		t.Fatal(err)
	}
	if rt.Stdout() != "true\n" {
		t.Errorf("got %q, want %q", rt.Stdout(), "true\n")
	}
}

func TestVMScenarioBoolArithmeticFatal(t *testing.T) {
	rt := NewRuntime()
	_, err := rt.Run("true + 1;", newMapStore())
	if err == nil {
		t.Fatal("true + 1 must be an execution error")
	}
	cerr, ok := err.(*Error)
	if !ok || cerr.Code != ErrBoolNoArithmetic {
		t.Errorf("got %v, want BoolNoArithmetic", err)
	}
}

func TestVMScenarioStringPlusBool(t *testing.T) {
	got := runScript(t, "print 'x' + true;", newMapStore())
	if got != "xtrue\n" {
		t.Errorf("got %q, want %q", got, "xtrue\n")
	}
}

func TestVMShortCircuitAnd(t *testing.T) {
	store := newMapStore()
	store.Define("touched", BoolValue(false))
	// The right-hand side assigns touched:=true, which must never run
	// because the left-hand side of && is false.
	rt := NewRuntime()
	if _, err := rt.Run("false && (touched=true);", store); err != nil {
		t.Fatal(err)
	}
	v, err := store.Get("touched")
	if err != nil {
		t.Fatal(err)
	}
	if v.Bool() {
		t.Error("&& must short-circuit and skip its right-hand side")
	}
}

func TestVMShortCircuitOr(t *testing.T) {
	store := newMapStore()
	store.Define("touched", BoolValue(false))
	rt := NewRuntime()
	if _, err := rt.Run("true || (touched=true);", store); err != nil {
		t.Fatal(err)
	}
	v, _ := store.Get("touched")
	if v.Bool() {
		t.Error("|| must short-circuit and skip its right-hand side")
	}
}

func TestVMStackBoundary(t *testing.T) {
	rt := NewRuntime(StackSize(4))
	// Four bare-expression statements push exactly 4 values onto a
	// 4-capacity stack with nothing to pop them: this must still succeed.
	if _, err := rt.Run("1;2;3;4;", newMapStore()); err != nil {
		t.Fatalf("filling the stack to capacity should succeed: %v", err)
	}
}

func TestVMStackOverflow(t *testing.T) {
	rt := NewRuntime(StackSize(4))
	_, err := rt.Run("1;2;3;4;5;", newMapStore())
	if err == nil {
		t.Fatal("pushing past the stack's capacity must fail")
	}
	cerr, ok := err.(*Error)
	if !ok || cerr.Code != ErrStackOverflow {
		t.Errorf("got %v, want StackOverflow", err)
	}
}

func TestVMGetExternalUndefined(t *testing.T) {
	rt := NewRuntime()
	_, err := rt.Run("print missing;", newMapStore())
	if err == nil {
		t.Fatal("reading an undefined variable must fail")
	}
	cerr, ok := err.(*Error)
	if !ok || cerr.Code != ErrEnvironment {
		t.Errorf("got %v, want Environment", err)
	}
}

func TestVMSetExternalUndefined(t *testing.T) {
	rt := NewRuntime()
	_, err := rt.Run("missing=1;", newMapStore())
	if err == nil {
		t.Fatal("setting an undefined variable must fail")
	}
}

func TestVMClearIdempotent(t *testing.T) {
	rt := NewRuntime()
	if _, err := rt.Run("print 1;", newMapStore()); err != nil {
		t.Fatal(err)
	}
	rt.Clear()
	rt.Clear()
	if rt.Stdout() != "" {
		t.Errorf("Clear should leave an empty buffer, got %q", rt.Stdout())
	}
}

func TestVMContinueRunAccumulates(t *testing.T) {
	rt := NewRuntime()
	store := newMapStore()
	if _, err := rt.Run("print 1;", store); err != nil {
		t.Fatal(err)
	}
	if _, err := rt.ContinueRun("print 2;", store); err != nil {
		t.Fatal(err)
	}
	if rt.Stdout() != "1\n2\n" {
		t.Errorf("got %q, want %q", rt.Stdout(), "1\n2\n")
	}
}
