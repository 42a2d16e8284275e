package catalog

import (
	"gopkg.in/yaml.v3"

	"github.com/sambeau/ucum/pkg/ucum/dimension"
)

// OverlayAtom is the YAML-facing shape of an atom override, mirroring
// config.Config's yaml-tag idiom (config/config.go) rather than
// exposing the internal Atom struct directly.
type OverlayAtom struct {
	CS             string   `yaml:"cs"`
	CI             string   `yaml:"ci"`
	Name           string   `yaml:"name"`
	PrintSymbol    string   `yaml:"print_symbol"`
	Property       string   `yaml:"property"`
	Magnitude      float64  `yaml:"magnitude"`
	MagnitudeExact string   `yaml:"magnitude_exact"`
	Dimension      []int    `yaml:"dimension"` // length 0 (dimensionless) or dimension.Size
	Special        string   `yaml:"special"`
	ConversionPfx  float64  `yaml:"conversion_prefix"`
	IsBase         bool     `yaml:"is_base"`
	IsMetric       bool     `yaml:"is_metric"`
	IsArbitrary    bool     `yaml:"is_arbitrary"`
	Synonyms       []string `yaml:"synonyms"`
	Guidance       string   `yaml:"guidance"`
	Category       string   `yaml:"category"`
}

// Overlay is a YAML document describing additional or replacement
// atoms layered on top of a base Table.
type Overlay struct {
	Atoms []OverlayAtom `yaml:"atoms"`
}

// ParseOverlay parses YAML overlay bytes without applying them.
func ParseOverlay(data []byte) (*Overlay, error) {
	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Apply merges the overlay onto base, returning a new, independent
// Table. base is never mutated — the engine's concurrency model
// requires every published Table to be immutable (spec.md §5).
func (o *Overlay) Apply(base *Table) *Table {
	atoms := make([]Atom, 0, len(base.byCS)+len(o.Atoms))
	for _, a := range base.byCS {
		atoms = append(atoms, *a)
	}
	for _, oa := range o.Atoms {
		atoms = append(atoms, oa.toAtom())
	}
	prefixes := make([]Prefix, 0, len(base.prefixByCS))
	for _, p := range base.prefixByCS {
		prefixes = append(prefixes, *p)
	}
	return NewTable(atoms, prefixes)
}

func (oa OverlayAtom) toAtom() Atom {
	dv := dimension.Zero()
	if len(oa.Dimension) == dimension.Size {
		var comps [dimension.Size]int
		copy(comps[:], oa.Dimension)
		dv = dimension.New(comps)
	}
	return Atom{
		CS:             oa.CS,
		CI:             oa.CI,
		Name:           oa.Name,
		PrintSymbol:    oa.PrintSymbol,
		Property:       oa.Property,
		Magnitude:      oa.Magnitude,
		MagnitudeExact: oa.MagnitudeExact,
		Dimension:      dv,
		Special:        oa.Special,
		IsSpecial:      oa.Special != "",
		ConversionPfx:  orOne(oa.ConversionPfx),
		IsBase:         oa.IsBase,
		IsMetric:       oa.IsMetric,
		IsArbitrary:    oa.IsArbitrary,
		Synonyms:       oa.Synonyms,
		Guidance:       oa.Guidance,
		Category:       oa.Category,
	}
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// LoadOverlay parses YAML overlay bytes and applies them to base in
// one call.
func LoadOverlay(base *Table, data []byte) (*Table, error) {
	o, err := ParseOverlay(data)
	if err != nil {
		return nil, err
	}
	return o.Apply(base), nil
}
