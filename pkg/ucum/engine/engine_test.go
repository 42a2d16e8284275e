package engine

import (
	"math"
	"testing"

	"github.com/sambeau/ucum/pkg/ucum/catalog"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return New(catalog.Builtin())
}

func TestValidateAcceptsKnownExpression(t *testing.T) {
	e := newEngine(t)
	r := e.Validate("kg.m/s2")
	if !r.Valid || r.Err != nil {
		t.Fatalf("expected valid, got %+v", r)
	}
}

func TestValidateRejectsUnknownAtom(t *testing.T) {
	e := newEngine(t)
	r := e.Validate("glorp")
	if r.Valid || r.Err == nil {
		t.Fatalf("expected invalid, got %+v", r)
	}
	if r.Err.Code != "PARSE-0106" {
		t.Errorf("expected PARSE-0106, got %s", r.Err.Code)
	}
}

func TestConvertUnitToSimpleRatio(t *testing.T) {
	e := newEngine(t)
	v, r := e.ConvertUnitTo(1000, "g", "[lb_av]", 0)
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	want := 1000 / 453.59237
	if math.Abs(v-want) > 1e-9 {
		t.Errorf("1000 g in lb = %v, want %v", v, want)
	}
}

func TestConvertUnitToSpecialTemperature(t *testing.T) {
	e := newEngine(t)
	v, r := e.ConvertUnitTo(0, "[degF]", "Cel", 0)
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if math.Abs(v-(-17.7778)) > 1e-3 {
		t.Errorf("0 degF in Cel = %v, want ~-17.7778", v)
	}
}

func TestConvertUnitToIncommensurableFails(t *testing.T) {
	e := newEngine(t)
	_, r := e.ConvertUnitTo(1, "g", "/g", 0)
	if r.Err == nil {
		t.Fatal("expected an error converting g to /g")
	}
	if r.Err.Code != "DIM-0301" {
		t.Errorf("expected DIM-0301, got %s", r.Err.Code)
	}
}

func TestConvertUnitToArbitraryUnitBlocked(t *testing.T) {
	e := newEngine(t)
	_, r := e.ConvertUnitTo(1, "[iU]", "mg", 0)
	if r.Err == nil || r.Err.Code != "ARB-0501" {
		t.Fatalf("expected ARB-0501, got %+v", r.Err)
	}
}

func TestConvertUnitToMassSubstanceRequiresMolecularWeight(t *testing.T) {
	e := newEngine(t)
	_, r := e.ConvertUnitTo(90, "mg/dL", "mmol/L", 0)
	if r.Err == nil || r.Err.Code != "DIM-0303" {
		t.Fatalf("expected DIM-0303, got %+v", r.Err)
	}
}

func TestConvertUnitToMassSubstanceBridged(t *testing.T) {
	e := newEngine(t)
	// glucose: molecular weight ~180.16 g/mol. 90 mg/dL ~= 5.0 mmol/L.
	v, r := e.ConvertUnitTo(90, "mg/dL", "mmol/L", 180.16)
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if math.Abs(v-5.0) > 0.1 {
		t.Errorf("90 mg/dL in mmol/L = %v, want ~5.0", v)
	}
}

func TestConvertToBaseUnitsRebuildsCanonicalCode(t *testing.T) {
	e := newEngine(t)
	v, r := e.ConvertToBaseUnits(1, "km/h")
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	want := 1000.0 / 3600.0
	if math.Abs(v-want) > 1e-9 {
		t.Errorf("1 km/h coherent = %v, want %v", v, want)
	}
	if r.CanonicalCode != "m/s" {
		t.Errorf("canonical code = %q, want m/s", r.CanonicalCode)
	}
}

func TestConvertToBaseUnitsDimensionless(t *testing.T) {
	e := newEngine(t)
	v, r := e.ConvertToBaseUnits(5, "1")
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if v != 5 || r.CanonicalCode != "1" {
		t.Errorf("got v=%v code=%q, want 5/\"1\"", v, r.CanonicalCode)
	}
}

func TestConvertUnitToIncommensurableKeepsSiblingRepairAdvisory(t *testing.T) {
	e := newEngine(t)
	// "mol" and "78.4(mmol/L)/s" are genuinely incommensurable, but the
	// to-side sibling-number repair ("78.4(..." -> "78.4.(...") must
	// still surface as an advisory alongside the DIM-0301 error.
	_, r := e.ConvertUnitTo(1, "mol", "78.4(mmol/L)/s", 0)
	if r.Err == nil || r.Err.Code != "DIM-0301" {
		t.Fatalf("expected DIM-0301, got %+v", r.Err)
	}
	if len(r.Advisories) == 0 {
		t.Fatal("expected the sibling-number-repair advisory to survive the error path")
	}
	if r.Advisories[0].Code != "ADVISE-0201" {
		t.Errorf("expected ADVISE-0201, got %s", r.Advisories[0].Code)
	}
}

func TestConvertUnitToMassSubstanceBridgedKeepsAdvisories(t *testing.T) {
	e := newEngine(t)
	// "1(mmol)/L" repairs to "1.(mmol)/L" (multiplying by the
	// dimensionless 1 leaves the value unchanged) purely to exercise
	// the sibling-number-repair advisory on a successful bridge.
	v, r := e.ConvertUnitTo(90, "mg/dL", "1(mmol)/L", 180.16)
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if math.Abs(v-5.0) > 0.1 {
		t.Errorf("90 mg/dL in mmol/L = %v, want ~5.0", v)
	}
	if len(r.Advisories) == 0 {
		t.Fatal("expected the sibling-number-repair advisory to survive a successful bridge")
	}
}

func TestConvertToBaseUnitsSpecialUnitReportsExponentsAndSpecialFlag(t *testing.T) {
	e := newEngine(t)
	v, r := e.ConvertToBaseUnits(32, "[degF]")
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if math.Abs(v-273.15) > 1e-6 {
		t.Errorf("32 degF coherent = %v, want 273.15", v)
	}
	if !r.FromUnitIsSpecial {
		t.Error("expected FromUnitIsSpecial to be true for [degF]")
	}
	if r.UnitToExp["K"] != 1 {
		t.Errorf("expected UnitToExp[K] = 1, got %+v", r.UnitToExp)
	}
}

func TestConvertToBaseUnitsRatioUnitIsNotSpecial(t *testing.T) {
	e := newEngine(t)
	_, r := e.ConvertToBaseUnits(1, "km/h")
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if r.FromUnitIsSpecial {
		t.Error("expected FromUnitIsSpecial to be false for km/h")
	}
	if r.UnitToExp["m"] != 1 || r.UnitToExp["s"] != -1 {
		t.Errorf("unexpected UnitToExp: %+v", r.UnitToExp)
	}
}

func TestCheckSynonymsResolvesSynonym(t *testing.T) {
	e := newEngine(t)
	info := e.CheckSynonyms("mole")
	if info == nil {
		t.Fatal("expected synonym info for \"mole\"")
	}
	if info.CS != "mol" {
		t.Errorf("expected mole to resolve to mol, got %q", info.CS)
	}
}

func TestCheckSynonymsSurfacesGuidance(t *testing.T) {
	e := newEngine(t)
	info := e.CheckSynonyms("[degF]")
	if info == nil {
		t.Fatal("expected synonym info for [degF]")
	}
	if info.Guidance == "" {
		t.Error("expected non-empty guidance for [degF]")
	}
}

func TestCheckSynonymsUnknownAtomReturnsNil(t *testing.T) {
	e := newEngine(t)
	if info := e.CheckSynonyms("glorp"); info != nil {
		t.Errorf("expected nil, got %+v", info)
	}
}
