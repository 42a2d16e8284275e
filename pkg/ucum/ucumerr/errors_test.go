package ucumerr

import "testing"

func TestNewRendersTemplate(t *testing.T) {
	err := New("DIM-0301", map[string]any{"From": "g", "To": "/g"})
	want := "Sorry. g cannot be converted to /g."
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
	if err.Class != ClassDimension {
		t.Errorf("Class = %v, want %v", err.Class, ClassDimension)
	}
}

func TestNewUnknownCodeDoesNotPanic(t *testing.T) {
	err := New("NOT-A-CODE", nil)
	if err.Class != ClassInternal {
		t.Errorf("unknown code should be ClassInternal, got %v", err.Class)
	}
}

func TestErrorStringIncludesHints(t *testing.T) {
	e := &Error{Message: "boom", Hints: []string{"try this"}}
	s := e.Error()
	if s != "boom\n  try this" {
		t.Errorf("Error() = %q", s)
	}
}

func TestTopMatches(t *testing.T) {
	candidates := []string{"mol", "mmol", "cmol", "kg", "mg"}
	got := TopMatches("mmo", candidates, 3)
	if len(got) == 0 {
		t.Fatal("expected at least one fuzzy match")
	}
	found := false
	for _, g := range got {
		if g == "mol" || g == "mmol" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected mol/mmol among matches, got %v", got)
	}
}

func TestTopMatchesEmptyInput(t *testing.T) {
	if got := TopMatches("", []string{"a", "b"}, 3); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
