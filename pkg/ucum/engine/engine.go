// Package engine implements the Conversion Engine (component F): the
// orchestration layer that turns a catalog.Table and parser.Parser
// into the three public operations spec.md names — validate,
// convertUnitTo, and convertToBaseUnits — plus checkSynonyms, the
// metadata lookup this implementation adds to surface an atom's
// guidance text, property category, and source standard.
package engine

import (
	"strconv"
	"strings"

	"github.com/sambeau/ucum/pkg/ucum/catalog"
	"github.com/sambeau/ucum/pkg/ucum/dimension"
	"github.com/sambeau/ucum/pkg/ucum/parser"
	"github.com/sambeau/ucum/pkg/ucum/suggest"
	"github.com/sambeau/ucum/pkg/ucum/ucumerr"
	"github.com/sambeau/ucum/pkg/ucum/unit"
)

// Engine is the read-only, concurrency-safe entry point built on top
// of an immutable catalog.Table. Multiple goroutines may call its
// methods concurrently; nothing here is mutated after New returns.
type Engine struct {
	tab *catalog.Table
	p   *parser.Parser
	sug *suggest.Index
}

// New builds an Engine over tab.
func New(tab *catalog.Table) *Engine {
	return &Engine{tab: tab, p: parser.New(tab), sug: suggest.New(tab)}
}

// Result is the outcome of Validate: either a resolved Unit with its
// canonical code, or a structured error with candidate suggestions.
// FromUnitIsSpecial and UnitToExp are populated by ConvertToBaseUnits
// only: whether the source unit used a non-linear scale, and the
// resulting coherent dimension expressed as base-atom-code -> exponent.
type Result struct {
	Valid             bool
	Unit              *unit.Unit
	CanonicalCode     string
	FromUnitIsSpecial bool
	UnitToExp         map[string]int
	Advisories        []*ucumerr.Error
	Err               *ucumerr.Error
	Suggestions       []string
}

// Validate parses raw and reports whether it is a well-formed UCUM
// expression, per spec.md's validate operation.
func (e *Engine) Validate(raw string) *Result {
	out := e.p.Parse(raw)
	if out.Err != nil {
		return &Result{Err: out.Err, Suggestions: out.Suggestions}
	}
	return &Result{
		Valid:         true,
		Unit:          out.Unit,
		CanonicalCode: out.Unit.String(),
		Advisories:    out.Advisories,
	}
}

// ConvertUnitTo converts value, expressed in fromRaw, into toRaw.
// molecularWeight (grams per mole) is used only when the two units
// differ by exactly a mass/substance-amount factor — e.g. mg/dL to
// mmol/L — and is ignored otherwise; pass 0 when none is available.
func (e *Engine) ConvertUnitTo(value float64, fromRaw, toRaw string, molecularWeight float64) (float64, *Result) {
	from := e.p.Parse(fromRaw)
	if from.Err != nil {
		return 0, &Result{Err: from.Err, Suggestions: from.Suggestions}
	}
	to := e.p.Parse(toRaw)
	if to.Err != nil {
		return 0, &Result{Err: to.Err, Suggestions: to.Suggestions}
	}

	advisories := append(from.Advisories, to.Advisories...)

	if from.Unit.IsArbitrary || to.Unit.IsArbitrary {
		arb := fromRaw
		if to.Unit.IsArbitrary {
			arb = toRaw
		}
		return 0, &Result{Err: ucumerr.New("ARB-0501", map[string]any{"Unit": arb}), Advisories: advisories}
	}

	if from.Unit.Dim.Equals(to.Unit.Dim) {
		v, err := to.Unit.ConvertFrom(value, from.Unit)
		if err != nil {
			return 0, &Result{Err: ucumerr.New("DIM-0301", map[string]any{"From": fromRaw, "To": toRaw}), Advisories: advisories}
		}
		return v, &Result{Valid: true, Unit: to.Unit, CanonicalCode: to.Unit.String(), Advisories: advisories}
	}

	if bridgeDim, ok := massSubstanceMismatch(from.Unit.Dim, to.Unit.Dim); ok && mentionsMole(fromRaw, toRaw) {
		if molecularWeight <= 0 {
			return 0, &Result{Err: ucumerr.New("DIM-0303", map[string]any{"From": fromRaw, "To": toRaw}), Advisories: advisories}
		}
		avogadro := e.avogadro()
		v, cerr := bridgeMassSubstance(value, from.Unit, to.Unit, bridgeDim, molecularWeight, avogadro)
		if cerr != nil {
			return 0, &Result{Err: ucumerr.New("DIM-0301", map[string]any{"From": fromRaw, "To": toRaw}), Advisories: advisories}
		}
		return v, &Result{Valid: true, Unit: to.Unit, CanonicalCode: to.Unit.String(), Advisories: advisories}
	}

	return 0, &Result{Err: ucumerr.New("DIM-0301", map[string]any{"From": fromRaw, "To": toRaw}), Advisories: advisories}
}

// massSubstanceMismatch reports whether a and b differ by exactly one
// unit of mass dimension in either direction — the signature of a
// mass-concentration-vs-substance-concentration pair like mg/dL and
// mmol/L — and returns the signed mass exponent difference (from - to).
func massSubstanceMismatch(a, b dimension.Vector) (int, bool) {
	diff := a.Sub(b)
	if diff.IsNull() {
		return 0, false
	}
	for i := 0; i < dimension.Size; i++ {
		idx := dimension.Index(i)
		v := diff.GetElementAt(idx)
		if idx == dimension.Mass {
			if v != 1 && v != -1 {
				return 0, false
			}
			continue
		}
		if v != 0 {
			return 0, false
		}
	}
	return diff.GetElementAt(dimension.Mass), true
}

func mentionsMole(fromRaw, toRaw string) bool {
	return strings.Contains(fromRaw, "mol") || strings.Contains(toRaw, "mol")
}

// bridgeMassSubstance converts value via the shared coherent base,
// applying molecularWeight (g/mol) to cross the mass/substance gap.
// massExpDiff is +1 when fromUnit carries the extra mass dimension
// (e.g. converting mg/dL -> mmol/L) and -1 the other way around.
//
// The catalog models "mol" as a dimensionless pseudo-unit scaled by
// Avogadro's number, so a coherent mole-side value is already scaled
// by avogadro; bridging through real moles (mass / molecularWeight)
// needs that factor put back in, or divided back out, to land on the
// same coherent basis the target side's own magnitude expects.
func bridgeMassSubstance(value float64, fromUnit, toUnit *unit.Unit, massExpDiff int, molecularWeight, avogadro float64) (float64, error) {
	fromCoherent, err := fromUnit.ConvertCoherent(value)
	if err != nil {
		return 0, err
	}
	var bridgedCoherentValue float64
	if massExpDiff == 1 {
		// fromUnit (mass side) -> toUnit (mole side).
		bridgedCoherentValue = fromCoherent / molecularWeight * avogadro
	} else {
		// fromUnit (mole side) -> toUnit (mass side).
		bridgedCoherentValue = fromCoherent / avogadro * molecularWeight
	}
	toCoherent := toUnit.Clone()
	if _, err := toCoherent.MutateCoherent(0); err != nil {
		return 0, err
	}
	return toUnit.ConvertFrom(bridgedCoherentValue, toCoherent)
}

// avogadro returns the catalog's own mol-atom magnitude, keeping the
// bridge calculation consistent with however the loaded catalog
// defines mol rather than hardcoding the constant a second time.
func (e *Engine) avogadro() float64 {
	if a, ok := e.tab.AtomByCaseSensitive("mol"); ok {
		return a.Magnitude
	}
	return 6.02214076e23
}

// ConvertToBaseUnits rewrites raw's dimension into its coherent base
// form and rebuilds a canonical display code from the catalog's base
// atoms rather than by reusing the parsed expression's own (possibly
// prefixed, possibly special-scale) code string.
func (e *Engine) ConvertToBaseUnits(value float64, raw string) (float64, *Result) {
	out := e.p.Parse(raw)
	if out.Err != nil {
		return 0, &Result{Err: out.Err, Suggestions: out.Suggestions}
	}
	if out.Unit.IsArbitrary {
		return 0, &Result{Err: ucumerr.New("ARB-0501", map[string]any{"Unit": raw})}
	}
	coherentValue, err := out.Unit.ConvertCoherent(value)
	if err != nil {
		return 0, &Result{Err: ucumerr.New("DIM-0302", map[string]any{"Unit": raw})}
	}
	code := e.buildCoherentCode(out.Unit.Dim)
	unitToExp := e.buildUnitToExp(out.Unit.Dim)
	coherent := unit.Dimensionless()
	coherent.Dim = out.Unit.Dim.Clone()
	coherent.CS, coherent.CI = code, code
	return coherentValue, &Result{
		Valid:             true,
		Unit:              coherent,
		CanonicalCode:     code,
		FromUnitIsSpecial: out.Unit.IsSpecial,
		UnitToExp:         unitToExp,
		Advisories:        out.Advisories,
	}
}

// buildCoherentCode regenerates a dimension vector's canonical code by
// walking each non-zero axis and looking up its base atom, instead of
// string-manipulating whatever code the input happened to use.
func (e *Engine) buildCoherentCode(d dimension.Vector) string {
	if d.IsZero() {
		return "1"
	}
	var numer, denom []string
	for i := 0; i < dimension.Size; i++ {
		idx := dimension.Index(i)
		exp := d.GetElementAt(idx)
		if exp == 0 {
			continue
		}
		a, ok := e.tab.BaseAtomForDimension(idx)
		if !ok {
			continue
		}
		if exp > 0 {
			numer = append(numer, expCode(a.CS, exp))
		} else {
			denom = append(denom, expCode(a.CS, -exp))
		}
	}
	switch {
	case len(numer) == 0 && len(denom) == 0:
		return "1"
	case len(denom) == 0:
		return strings.Join(numer, ".")
	case len(numer) == 0:
		return "/" + strings.Join(denom, ".")
	default:
		return strings.Join(numer, ".") + "/" + strings.Join(denom, ".")
	}
}

// buildUnitToExp walks the same axes as buildCoherentCode but returns
// them as a base-atom-code -> exponent map instead of a flattened
// string, for callers that need the exponents individually.
func (e *Engine) buildUnitToExp(d dimension.Vector) map[string]int {
	out := map[string]int{}
	for i := 0; i < dimension.Size; i++ {
		idx := dimension.Index(i)
		exp := d.GetElementAt(idx)
		if exp == 0 {
			continue
		}
		a, ok := e.tab.BaseAtomForDimension(idx)
		if !ok {
			continue
		}
		out[a.CS] = exp
	}
	return out
}

func expCode(cs string, exp int) string {
	if exp == 1 {
		return cs
	}
	return cs + strconv.Itoa(exp)
}

// SynonymInfo surfaces the descriptive metadata a bare atom lookup
// carries beyond its conversion factor: display name, free-text
// guidance, property category, the standard it comes from, and any
// alternate names it is known by.
type SynonymInfo struct {
	CS       string
	Name     string
	Guidance string
	Category string
	Source   string
	Synonyms []string
}

// CheckSynonyms looks raw up as a single bare atom code, display name,
// or synonym (ignoring any prefix or exponent) and returns its
// descriptive metadata, or nil if raw names nothing known. An exact
// code match is tried first, then the synonym index, then a name
// match, so "mole" resolves to mol the same way "[degF]" resolves to
// itself.
func (e *Engine) CheckSynonyms(raw string) *SynonymInfo {
	trimmed := strings.TrimSpace(raw)
	if a, ok := e.tab.AtomByCaseSensitive(trimmed); ok {
		return newSynonymInfo(a)
	}
	if a, ok := e.tab.AtomByCaseInsensitive(trimmed); ok {
		return newSynonymInfo(a)
	}
	if atoms := e.tab.AtomsBySynonym(trimmed); len(atoms) > 0 {
		return newSynonymInfo(atoms[0])
	}
	if matches := e.sug.MatchName(trimmed, 1); len(matches) > 0 {
		return newSynonymInfo(matches[0].Atom)
	}
	return nil
}

func newSynonymInfo(a *catalog.Atom) *SynonymInfo {
	return &SynonymInfo{
		CS:       a.CS,
		Name:     a.Name,
		Guidance: a.Guidance,
		Category: a.Category,
		Source:   a.Source,
		Synonyms: a.Synonyms,
	}
}
