// Package parser implements the Expression Parser (component E): the
// five-phase pipeline spec'd for turning a raw unit-expression string
// into an algebraic unit.Unit, generalised from
// github.com/sambeau/basil's pkg/parsley/parser hand-written
// recursive-descent structure down to UCUM's much smaller grammar:
//
//	Expression := ['/'] Term (('.'|'/') Term)*
//	Term       := Component
//	Component  := '(' Expression ')' Exponent? Annotation?
//	            | Atom Exponent? Annotation? | Number Annotation?
//	            | Annotation
//
// where Exponent on an Atom is a signed integer fused directly onto the
// Atom token (no operator). On a parenthesised group it is a separate
// trailing NUMBER token, so only an unsigned exponent is accepted there.
package parser

import (
	"strconv"
	"strings"

	"github.com/sambeau/ucum/pkg/ucum/catalog"
	"github.com/sambeau/ucum/pkg/ucum/lexer"
	"github.com/sambeau/ucum/pkg/ucum/suggest"
	"github.com/sambeau/ucum/pkg/ucum/ucumerr"
	"github.com/sambeau/ucum/pkg/ucum/unit"
)

// MaxExpressionLength bounds input size (SPEC_FULL.md's ambient-safety
// addition over the distilled spec): a pathological input shouldn't be
// given to the lexer at all.
const MaxExpressionLength = 64 * 1024

// Outcome is everything Parse can hand back: a resolved unit on
// success, non-fatal advisories either way, and a structured error
// (with suggestions attached) on failure.
type Outcome struct {
	Unit        *unit.Unit
	Advisories  []*ucumerr.Error
	Err         *ucumerr.Error
	Suggestions []string
}

// Parser holds the catalog a single Parse call resolves atoms against.
// A Parser is reentrant for concurrent Parse calls: it never mutates
// tab or any Unit it looks up.
type Parser struct {
	tab *catalog.Table
	sug *suggest.Index
}

// New builds a Parser over tab.
func New(tab *catalog.Table) *Parser {
	return &Parser{tab: tab, sug: suggest.New(tab)}
}

// Parse runs the full pipeline over raw and returns an Outcome.
func (p *Parser) Parse(raw string) *Outcome {
	if raw == "" {
		return &Outcome{Err: ucumerr.New("PARSE-0101", nil)}
	}
	if len(raw) > MaxExpressionLength {
		return &Outcome{Err: ucumerr.New("PARSE-0110", nil)}
	}

	stripped, annotations, err := extractAnnotations(raw)
	if err != nil {
		return &Outcome{Err: err}
	}

	if err := checkBalance(stripped); err != nil {
		return &Outcome{Err: err}
	}

	repaired, advisories := repairSiblingNumbers(stripped)

	s := &state{
		p:   p,
		lex: lexer.New(repaired),
		raw: raw,
	}
	s.advance()
	s.advance()

	u, perr := s.parseExpression()
	if perr != nil {
		return &Outcome{Err: perr, Suggestions: s.suggestions, Advisories: advisories}
	}
	if s.cur.Type != lexer.EOF {
		return &Outcome{Err: ucumerr.New("PARSE-0102", map[string]any{"Unit": raw}), Advisories: advisories}
	}

	out := &Outcome{Unit: u, Advisories: advisories}
	out.Advisories = append(out.Advisories, p.annotationAdvisories(annotations)...)
	return out
}

// annotationAdvisories checks every extracted {...} annotation against
// the catalog's codes, names and synonyms: an expression that is already syntactically
// valid but annotated with something that looks like a unit name gets
// a "did you mean" nudge (scenario: "{gram}" attached to a bare "1").
func (p *Parser) annotationAdvisories(annotations []string) []*ucumerr.Error {
	var out []*ucumerr.Error
	for _, a := range annotations {
		term := strings.TrimSpace(a)
		if term == "" {
			continue
		}
		matches := p.sug.MatchName(term, 1)
		for _, m := range matches {
			out = append(out, ucumerr.New("ADVISE-0202", map[string]any{
				"Input":      "{" + a + "}",
				"Suggestion": m.Atom.CS,
				"Name":       m.Atom.Name,
			}))
		}
	}
	return out
}

// extractAnnotations removes every top-level {...} span, replacing it
// with a lexer.ANNOT placeholder, and returns the annotation bodies in
// order. Annotations do not nest; an unterminated '{' is a parse error.
func extractAnnotations(raw string) (string, []string, *ucumerr.Error) {
	var out strings.Builder
	var annotations []string
	i := 0
	for i < len(raw) {
		if raw[i] == '{' {
			end := strings.IndexByte(raw[i+1:], '}')
			if end == -1 {
				return "", nil, ucumerr.New("PARSE-0105", nil)
			}
			body := raw[i+1 : i+1+end]
			annotations = append(annotations, body)
			out.WriteByte(lexer.AnnotMarker)
			out.WriteString(strconv.Itoa(len(annotations) - 1))
			out.WriteByte(lexer.AnnotMarker)
			i = i + 1 + end + 1
			continue
		}
		out.WriteByte(raw[i])
		i++
	}
	return out.String(), annotations, nil
}

// checkBalance verifies every '(' has a matching ')' and every '['
// has a matching ']', on the post-annotation-extraction string.
func checkBalance(s string) *ucumerr.Error {
	parenDepth := 0
	parenStart := 0
	bracketDepth := 0
	bracketStart := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			if parenDepth == 0 {
				parenStart = i
			}
			parenDepth++
		case ')':
			parenDepth--
			if parenDepth < 0 {
				return ucumerr.New("PARSE-0103", map[string]any{"Pos": i})
			}
		case '[':
			if bracketDepth == 0 {
				bracketStart = i
			}
			bracketDepth++
		case ']':
			bracketDepth--
			if bracketDepth < 0 {
				return ucumerr.New("PARSE-0104", map[string]any{"Pos": i})
			}
		}
	}
	if parenDepth != 0 {
		return ucumerr.New("PARSE-0103", map[string]any{"Pos": parenStart})
	}
	if bracketDepth != 0 {
		return ucumerr.New("PARSE-0104", map[string]any{"Pos": bracketStart})
	}
	return nil
}

// repairSiblingNumbers inserts an explicit '.' between a digit run and
// an immediately following '(', e.g. "4(mmol/L)" -> "4.(mmol/L)",
// recording a non-fatal advisory for each rewrite.
func repairSiblingNumbers(s string) (string, []*ucumerr.Error) {
	var out strings.Builder
	var advisories []*ucumerr.Error
	for i := 0; i < len(s); i++ {
		out.WriteByte(s[i])
		if isDigit(s[i]) && i+1 < len(s) && s[i+1] == '(' {
			out.WriteByte('.')
		}
	}
	rewritten := out.String()
	if rewritten != s {
		advisories = append(advisories, ucumerr.New("ADVISE-0201", map[string]any{
			"Original":  s,
			"Rewritten": rewritten,
		}))
	}
	return rewritten, advisories
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// state carries one Parse call's token cursor and atom-resolution
// bookkeeping, mirroring the two-token lookahead of a typical
// hand-written recursive-descent parser.
type state struct {
	p           *Parser
	lex         *lexer.Lexer
	cur, peek   lexer.Token
	raw         string
	suggestions []string
}

func (s *state) advance() {
	s.cur = s.peek
	s.peek = s.lex.NextToken()
}

// parseExpression implements Expression := ['/'] Term (('.'|'/') Term)*.
func (s *state) parseExpression() (*unit.Unit, *ucumerr.Error) {
	if s.cur.Type == lexer.SLASH {
		s.advance()
		rhs, err := s.parseTerm()
		if err != nil {
			return nil, err
		}
		acc := unit.Dimensionless()
		result, derr := acc.Divide(rhs)
		if derr != nil {
			return nil, scaleError(derr)
		}
		return s.parseExpressionTail(result)
	}

	left, err := s.parseTerm()
	if err != nil {
		return nil, err
	}
	return s.parseExpressionTail(left)
}

func (s *state) parseExpressionTail(left *unit.Unit) (*unit.Unit, *ucumerr.Error) {
	for s.cur.Type == lexer.DOT || s.cur.Type == lexer.SLASH {
		op := s.cur.Type
		s.advance()
		right, err := s.parseTerm()
		if err != nil {
			return nil, err
		}
		var combined *unit.Unit
		var aerr error
		if op == lexer.DOT {
			combined, aerr = left.MultiplyThese(right)
		} else {
			combined, aerr = left.Divide(right)
		}
		if aerr != nil {
			return nil, scaleError(aerr)
		}
		left = combined
	}
	return left, nil
}

func scaleError(err error) *ucumerr.Error {
	switch err {
	case unit.ErrNonRatioMultiplication:
		return ucumerr.New("SCALE-0401", nil)
	case unit.ErrNonRatioDivision:
		return ucumerr.New("SCALE-0402", nil)
	case unit.ErrNonRatioPower:
		return ucumerr.New("SCALE-0403", nil)
	case unit.ErrNonRatioInvert:
		return ucumerr.New("SCALE-0404", nil)
	default:
		return ucumerr.New("INTERNAL-0601", map[string]any{"Name": err.Error()})
	}
}

// parseTerm implements Term := Component.
func (s *state) parseTerm() (*unit.Unit, *ucumerr.Error) {
	return s.parseComponent()
}

func (s *state) parseComponent() (*unit.Unit, *ucumerr.Error) {
	switch s.cur.Type {
	case lexer.LPAREN:
		s.advance()
		inner, err := s.parseExpression()
		if err != nil {
			return nil, err
		}
		if s.cur.Type != lexer.RPAREN {
			return nil, ucumerr.New("PARSE-0105", nil)
		}
		s.advance()
		if exp, ok := s.tryReadExponent(); ok {
			if perr := inner.Power(exp); perr != nil {
				return nil, scaleError(perr)
			}
		}
		s.consumeTrailingAnnotation()
		return inner, nil

	case lexer.NUMBER:
		n, convErr := strconv.ParseFloat(s.cur.Literal, 64)
		if convErr != nil {
			return nil, ucumerr.New("PARSE-0109", map[string]any{"Literal": s.cur.Literal})
		}
		s.advance()
		u := unit.Dimensionless()
		u.Magnitude = n
		u.CS = strconv.FormatFloat(n, 'g', -1, 64)
		u.CI = u.CS
		s.consumeTrailingAnnotation()
		return u, nil

	case lexer.ANNOT:
		s.advance()
		return unit.Dimensionless(), nil

	case lexer.ATOM:
		token := s.cur.Literal
		s.advance()
		u, err := s.resolveAtomToken(token)
		if err != nil {
			return nil, err
		}
		s.consumeTrailingAnnotation()
		return u, nil

	case lexer.EOF:
		return nil, ucumerr.New("PARSE-0105", nil)

	default:
		return nil, ucumerr.New("PARSE-0102", map[string]any{"Unit": s.raw})
	}
}

// consumeTrailingAnnotation swallows an ANNOT token immediately
// following an atom, number, or parenthesised group, implementing the
// AnnotatedAtom production (e.g. "mg/dL{creat}"): the annotation
// attaches to the Component it follows rather than starting a new one.
func (s *state) consumeTrailingAnnotation() {
	if s.cur.Type == lexer.ANNOT {
		s.advance()
	}
}

// tryReadExponent consumes a trailing NUMBER token if one immediately
// follows a closing paren, representing "(...)2" group exponentiation.
func (s *state) tryReadExponent() (int, bool) {
	if s.cur.Type != lexer.NUMBER {
		return 0, false
	}
	n, err := strconv.Atoi(s.cur.Literal)
	if err != nil {
		return 0, false
	}
	s.advance()
	return n, true
}

// resolveAtomToken resolves a raw ATOM token (e.g. "mg", "m-2",
// "[lb_av]") into a Unit, trying the whole token as an atom code
// first, then splitting off a fused trailing signed exponent.
func (s *state) resolveAtomToken(token string) (*unit.Unit, *ucumerr.Error) {
	if a, ok := s.p.tab.AtomByCaseSensitive(token); ok {
		return unit.FromAtom(a), nil
	}
	if pu, ok := s.resolvePrefixedAtom(token); ok {
		return pu, nil
	}

	base, exp, hasExp := splitTrailingExponent(token)
	if hasExp {
		if a, ok := s.p.tab.AtomByCaseSensitive(base); ok {
			u := unit.FromAtom(a)
			if perr := u.Power(exp); perr != nil {
				return nil, scaleError(perr)
			}
			return u, nil
		}
		if pu, ok := s.resolvePrefixedAtom(base); ok {
			if perr := pu.Power(exp); perr != nil {
				return nil, scaleError(perr)
			}
			return pu, nil
		}
	}

	if s.isDoublePrefixed(token) {
		return nil, ucumerr.New("PARSE-0107", map[string]any{"Token": token})
	}
	s.suggestions = s.p.sug.ForUnknownAtom(token, 3)
	return nil, ucumerr.New("PARSE-0106", map[string]any{"Token": token})
}

// resolvePrefixedAtom tries every registered prefix as a leading
// substring of code and, among the splits whose remainder is a
// registered metric atom, accepts the one with the longest prefix
// (a longer prefix leaves a shorter, more specific remainder).
func (s *state) resolvePrefixedAtom(code string) (*unit.Unit, bool) {
	best, ok := s.splitPrefixedAtom(code)
	if !ok {
		return nil, false
	}
	pfx, atom := best.pfx, best.atom
	u := unit.FromAtom(atom)
	u.MultiplyThis(pfx.Value)
	u.CS = pfx.CS + atom.CS
	u.CI = pfx.CI + atom.CI
	if atom.Name != "" {
		u.Name = pfx.Name + atom.Name
	}
	return u, true
}

type prefixSplit struct {
	pfx  *catalog.Prefix
	atom *catalog.Atom
}

func (s *state) splitPrefixedAtom(code string) (prefixSplit, bool) {
	var best prefixSplit
	bestLen := -1
	for i := 1; i < len(code); i++ {
		pfxCode, remainder := code[:i], code[i:]
		p, ok := s.p.tab.PrefixByCaseSensitive(pfxCode)
		if !ok {
			continue
		}
		a, ok := s.p.tab.AtomByCaseSensitive(remainder)
		if !ok || !a.IsMetric {
			continue
		}
		if i > bestLen {
			best = prefixSplit{pfx: p, atom: a}
			bestLen = i
		}
	}
	return best, bestLen >= 0
}

// isDoublePrefixed detects the "mcg" shape: a prefix followed by a
// remainder which itself only resolves as prefix+atom, never as a
// registered atom on its own. UCUM forbids stacking two prefixes.
func (s *state) isDoublePrefixed(code string) bool {
	for i := 1; i < len(code); i++ {
		pfxCode, remainder := code[:i], code[i:]
		if _, ok := s.p.tab.PrefixByCaseSensitive(pfxCode); !ok {
			continue
		}
		if _, ok := s.splitPrefixedAtom(remainder); ok {
			return true
		}
	}
	return false
}

// splitTrailingExponent peels a signed integer suffix off an atom
// token, mirroring unit.splitTrailingExponent but kept local: the
// parser needs this before it has a Unit to call methods on.
func splitTrailingExponent(token string) (atomPart string, exp int, ok bool) {
	i := len(token)
	for i > 0 && token[i-1] >= '0' && token[i-1] <= '9' {
		i--
	}
	if i > 0 && i < len(token) && token[i-1] == '-' {
		i--
	}
	if i == len(token) {
		return token, 0, false
	}
	n, err := strconv.Atoi(token[i:])
	if err != nil {
		return token, 0, false
	}
	return token[:i], n, true
}
