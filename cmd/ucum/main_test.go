package main

import (
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestValidateValidExpression(t *testing.T) {
	out, err := exec.Command("./ucum", "validate", "kg.m/s2").CombinedOutput()
	if err != nil {
		t.Fatalf("validate failed: %v\n%s", err, out)
	}
	if strings.TrimSpace(string(out)) != "kg.m/s2" {
		t.Errorf("got %q, want kg.m/s2", out)
	}
}

func TestValidateUnknownAtomExitsNonZero(t *testing.T) {
	cmd := exec.Command("./ucum", "validate", "glorp")
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("expected a non-zero exit, got output: %s", out)
	}
	if !strings.Contains(string(out), "unknown unit atom") {
		t.Errorf("expected an unknown-atom message, got: %s", out)
	}
}

func TestConvertSimpleRatio(t *testing.T) {
	out, err := exec.Command("./ucum", "convert", "1000", "g", "kg").CombinedOutput()
	if err != nil {
		t.Fatalf("convert failed: %v\n%s", err, out)
	}
	if strings.TrimSpace(string(out)) != "1" {
		t.Errorf("got %q, want 1", out)
	}
}

func TestConvertMassSubstanceNeedsMolecularWeight(t *testing.T) {
	cmd := exec.Command("./ucum", "convert", "90", "mg/dL", "mmol/L")
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("expected a non-zero exit, got: %s", out)
	}
	if !strings.Contains(string(out), "molecular weight") {
		t.Errorf("expected a molecular-weight hint, got: %s", out)
	}
}

func TestBaseRebuildsCanonicalCode(t *testing.T) {
	out, err := exec.Command("./ucum", "base", "1", "km/h").CombinedOutput()
	if err != nil {
		t.Fatalf("base failed: %v\n%s", err, out)
	}
	if !strings.Contains(string(out), "m/s") {
		t.Errorf("expected canonical code m/s, got: %s", out)
	}
}

func TestSynonymsReportsGuidance(t *testing.T) {
	out, err := exec.Command("./ucum", "synonyms", "[degF]").CombinedOutput()
	if err != nil {
		t.Fatalf("synonyms failed: %v\n%s", err, out)
	}
	if !strings.Contains(string(out), "guidance:") {
		t.Errorf("expected guidance line, got: %s", out)
	}
}

func TestMain(m *testing.M) {
	buildCmd := exec.Command("go", "build", "-o", "ucum", ".")
	if err := buildCmd.Run(); err != nil {
		os.Exit(1)
	}

	code := m.Run()

	os.Remove("ucum")
	os.Exit(code)
}
