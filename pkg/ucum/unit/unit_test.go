package unit

import (
	"math"
	"testing"

	"github.com/sambeau/ucum/pkg/ucum/catalog"
)

func gram(t *testing.T) *Unit {
	t.Helper()
	tab := catalog.Builtin()
	a, ok := tab.AtomByCaseSensitive("g")
	if !ok {
		t.Fatal("gram atom missing from builtin catalog")
	}
	return FromAtom(a)
}

func meter(t *testing.T) *Unit {
	t.Helper()
	tab := catalog.Builtin()
	a, ok := tab.AtomByCaseSensitive("m")
	if !ok {
		t.Fatal("meter atom missing from builtin catalog")
	}
	return FromAtom(a)
}

func second(t *testing.T) *Unit {
	t.Helper()
	tab := catalog.Builtin()
	a, _ := tab.AtomByCaseSensitive("s")
	return FromAtom(a)
}

func celsius(t *testing.T) *Unit {
	t.Helper()
	tab := catalog.Builtin()
	a, _ := tab.AtomByCaseSensitive("Cel")
	return FromAtom(a)
}

func degF(t *testing.T) *Unit {
	t.Helper()
	tab := catalog.Builtin()
	a, _ := tab.AtomByCaseSensitive("[degF]")
	return FromAtom(a)
}

func TestCloneIsIndependent(t *testing.T) {
	g := gram(t)
	cp := g.Clone()
	cp.Magnitude = 999
	if g.Magnitude == 999 {
		t.Fatal("clone mutation leaked into original")
	}
}

func TestMultiplyCommutative(t *testing.T) {
	g := gram(t)
	m := meter(t)

	gm, err := g.MultiplyThese(m)
	if err != nil {
		t.Fatalf("g*m: %v", err)
	}
	mg, err := m.MultiplyThese(g)
	if err != nil {
		t.Fatalf("m*g: %v", err)
	}
	if !gm.Equals(mg) {
		t.Errorf("multiplication not commutative: %+v vs %+v", gm, mg)
	}
}

func TestDivideDimensionSubtracts(t *testing.T) {
	m := meter(t)
	s := second(t)
	mps, err := m.Divide(s)
	if err != nil {
		t.Fatalf("m/s: %v", err)
	}
	if mps.Dim.GetElementAt(0) != 1 || mps.Dim.GetElementAt(1) != -1 {
		t.Errorf("m/s dimension = %v", mps.Dim)
	}
}

func TestInvertInvolution(t *testing.T) {
	m := meter(t)
	cp := m.Clone()
	if err := cp.Invert(); err != nil {
		t.Fatalf("invert: %v", err)
	}
	if err := cp.Invert(); err != nil {
		t.Fatalf("second invert: %v", err)
	}
	if !cp.Equals(m) {
		t.Errorf("double invert should be identity: %+v vs %+v", cp, m)
	}
}

func TestInvertStringTransform(t *testing.T) {
	cases := []struct{ in, want string }{
		{"m/s", "/m.s"},
		{"m.s", "/m.s"},
		{"/m.s", "m.s"},
	}
	for _, c := range cases {
		if got := invertString(c.in); got != c.want {
			t.Errorf("invertString(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPowerLaws(t *testing.T) {
	m := meter(t)
	a := m.Clone()
	if err := a.Power(2); err != nil {
		t.Fatalf("Power(2): %v", err)
	}
	if err := a.Power(3); err != nil {
		t.Fatalf("Power(3): %v", err)
	}

	b := m.Clone()
	if err := b.Power(6); err != nil {
		t.Fatalf("Power(6): %v", err)
	}

	if !a.Equals(b) {
		t.Errorf("(m^2)^3 should equal m^6: %+v vs %+v", a, b)
	}
}

func TestNonRatioMultiplicationFails(t *testing.T) {
	c1 := celsius(t)
	c2 := celsius(t)
	if _, err := c1.MultiplyThese(c2); err != ErrNonRatioMultiplication {
		t.Errorf("expected ErrNonRatioMultiplication, got %v", err)
	}
}

func TestNonRatioDivisionFails(t *testing.T) {
	c := celsius(t)
	m := meter(t)
	if _, err := c.Divide(m); err != ErrNonRatioDivision {
		t.Errorf("expected ErrNonRatioDivision, got %v", err)
	}
}

func TestConvertFromSpecialToSpecial(t *testing.T) {
	f := degF(t)
	c := celsius(t)
	got, err := c.ConvertFrom(0, f) // 0 degF -> Cel
	if err != nil {
		t.Fatalf("ConvertFrom: %v", err)
	}
	want := -17.7778
	if math.Abs(got-want) > 1e-3 {
		t.Errorf("0 degF in Cel = %v, want ~%v", got, want)
	}
}

func TestConvertFromIdentity(t *testing.T) {
	m := meter(t)
	got, err := m.ConvertFrom(5, m)
	if err != nil {
		t.Fatalf("ConvertFrom: %v", err)
	}
	if got != 5 {
		t.Errorf("identity conversion changed value: %v", got)
	}
}

func TestConvertFromIncommensurable(t *testing.T) {
	m := meter(t)
	g := gram(t)
	if _, err := m.ConvertFrom(1, g); err == nil {
		t.Fatal("expected incommensurable error")
	}
}

func TestMutateCoherentOnSpecialUnit(t *testing.T) {
	f := degF(t)
	x, err := f.MutateCoherent(32)
	if err != nil {
		t.Fatalf("MutateCoherent: %v", err)
	}
	if math.Abs(x-273.15) > 1e-9 {
		t.Errorf("32 degF coherent = %v, want 273.15", x)
	}
	if f.IsRatio() == false {
		t.Errorf("after MutateCoherent, unit should be ratio scale")
	}
	if f.Magnitude != 1 {
		t.Errorf("coherent magnitude should be 1, got %v", f.Magnitude)
	}
}
