// Package catalog is the in-memory atom and prefix table (component
// B): a process-wide, read-only-after-init catalog of UCUM unit atoms
// and metric prefixes, indexed by case-sensitive code, case-insensitive
// code, and name.
package catalog

import "github.com/sambeau/ucum/pkg/ucum/dimension"

// Atom is a single catalog entry. Atoms are immutable once the Table
// that holds them has been built.
type Atom struct {
	CS             string // case-sensitive code, the catalog's primary key
	CI             string // case-insensitive code
	Name           string
	PrintSymbol    string
	Property       string // e.g. "length", "mass", "substance amount"
	MagnitudeExact string // the magnitude as written in the source definition
	Magnitude      float64
	Dimension      dimension.Vector
	Special        string // name of a special.Pair, or "" for ratio-scale
	ConversionPfx  float64
	IsBase         bool
	IsMetric       bool
	IsSpecial      bool
	IsArbitrary    bool
	DefError       bool // the definition did not parse cleanly at catalog build time
	Synonyms       []string
	Guidance       string
	Category       string
	Source         string
	LOINCProperty  string
}

// Prefix is a scalar multiplier attachable only to metric atoms.
type Prefix struct {
	CS     string
	CI     string
	Name   string
	Value  float64
	Metric bool
}
