package catalog

import "testing"

func TestBuiltinLooksUpBaseAtoms(t *testing.T) {
	tab := Builtin()
	for _, code := range []string{"m", "s", "g", "rad", "K", "C", "cd"} {
		a, ok := tab.AtomByCaseSensitive(code)
		if !ok {
			t.Fatalf("expected base atom %q in builtin catalog", code)
		}
		if !a.IsBase {
			t.Errorf("%q should be marked IsBase", code)
		}
	}
}

func TestCaseInsensitiveLookupFoldsMicro(t *testing.T) {
	tab := Builtin()
	p, ok := tab.PrefixByCaseInsensitive("u")
	if !ok || p.CS != "u" {
		t.Fatalf("expected ci lookup of 'u' to find micro prefix, got %v ok=%v", p, ok)
	}
}

func TestAtomByNameIsCaseInsensitive(t *testing.T) {
	tab := Builtin()
	a, ok := tab.AtomByName("GRAM")
	if !ok || a.CS != "g" {
		t.Fatalf("expected name lookup to find gram, got %v ok=%v", a, ok)
	}
}

func TestAtomsBySynonym(t *testing.T) {
	tab := Builtin()
	atoms := tab.AtomsBySynonym("mole")
	if len(atoms) != 1 || atoms[0].CS != "mol" {
		t.Fatalf("expected synonym lookup to find mol, got %v", atoms)
	}
}

func TestBaseAtomForDimension(t *testing.T) {
	tab := Builtin()
	a, ok := tab.BaseAtomForDimension(0) // length
	if !ok || a.CS != "m" {
		t.Fatalf("expected base atom for length to be m, got %v ok=%v", a, ok)
	}
}

func TestOverlayAddsAtomWithoutMutatingBase(t *testing.T) {
	base := Builtin()
	yamlDoc := []byte(`
atoms:
  - cs: "[zorp]"
    ci: "[ZORP]"
    name: zorp unit
    magnitude: 42
    dimension: [0, 0, 0, 0, 0, 0, 0]
`)
	merged, err := LoadOverlay(base, yamlDoc)
	if err != nil {
		t.Fatalf("LoadOverlay: %v", err)
	}
	if _, ok := base.AtomByCaseSensitive("[zorp]"); ok {
		t.Fatal("base table should not have been mutated")
	}
	a, ok := merged.AtomByCaseSensitive("[zorp]")
	if !ok || a.Magnitude != 42 {
		t.Fatalf("expected merged table to contain zorp, got %v ok=%v", a, ok)
	}
}
