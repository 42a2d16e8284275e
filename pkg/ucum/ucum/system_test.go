package ucum

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewValidatesBuiltinAtom(t *testing.T) {
	s := New(nil)
	r := s.Validate("kg.m/s2")
	if !r.Valid || r.Err != nil {
		t.Fatalf("expected valid, got %+v", r)
	}
}

func TestNewFromOverlayAddsAtom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	doc := []byte("atoms:\n  - cs: \"[zorp]\"\n    ci: \"[ZORP]\"\n    name: zorp unit\n    magnitude: 42\n    dimension: [0,0,0,0,0,0,0]\n")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}
	s, err := NewFromOverlay(path, nil)
	if err != nil {
		t.Fatalf("NewFromOverlay: %v", err)
	}
	r := s.Validate("[zorp]")
	if !r.Valid {
		t.Fatalf("expected overlay atom to validate, got %+v", r)
	}
}

func TestConvertUnitToDelegates(t *testing.T) {
	s := New(nil)
	v, r := s.ConvertUnitTo(1000, "g", "[lb_av]", 0)
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if v <= 0 {
		t.Errorf("expected positive conversion result, got %v", v)
	}
}

func TestBufferedLoggerCapturesLines(t *testing.T) {
	l := NewBufferedLogger()
	l.LogLine("hello", "world")
	lines := l.Lines()
	if len(lines) != 1 || lines[0] != "hello world" {
		t.Fatalf("unexpected lines: %v", lines)
	}
}
