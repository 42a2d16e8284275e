// Package unit implements the mutable algebraic Unit value (component
// C) and the operations §4.3 of the UCUM core specifies: multiply,
// divide, invert, power, clone, equals, and the ratio/special-scale
// conversion primitives the engine builds convertUnitTo on top of.
package unit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sambeau/ucum/pkg/ucum/catalog"
	"github.com/sambeau/ucum/pkg/ucum/dimension"
	"github.com/sambeau/ucum/pkg/ucum/special"
)

// Unit is the parser and algebra's working value. A Unit derived from
// an atom begins as a copy of the atom's attributes; subsequent
// algebra mutates only the derived Unit, never the catalog.
type Unit struct {
	Name        string
	CS          string // assembled case-sensitive code
	CI          string
	Magnitude   float64
	Dim         dimension.Vector
	Special     string // name of a special.Pair, or "" for ratio scale
	ConvPfx     float64
	IsBase      bool
	IsMetric    bool
	IsSpecial   bool
	IsArbitrary bool
}

// Dimensionless returns the unit 1: magnitude 1, zero dimension,
// ratio scale.
func Dimensionless() *Unit {
	return &Unit{Name: "", CS: "1", CI: "1", Magnitude: 1, Dim: dimension.Zero(), ConvPfx: 1}
}

// FromAtom copies an atom's attributes into a new, independent Unit.
func FromAtom(a *catalog.Atom) *Unit {
	pfx := a.ConversionPfx
	if pfx == 0 {
		pfx = 1
	}
	return &Unit{
		Name:        a.Name,
		CS:          a.CS,
		CI:          a.CI,
		Magnitude:   a.Magnitude,
		Dim:         a.Dimension.Clone(),
		Special:     a.Special,
		ConvPfx:     pfx,
		IsBase:      a.IsBase,
		IsMetric:    a.IsMetric,
		IsSpecial:   a.IsSpecial,
		IsArbitrary: a.IsArbitrary,
	}
}

// Clone deep-copies every attribute.
func (u *Unit) Clone() *Unit {
	cp := *u
	cp.Dim = u.Dim.Clone()
	return &cp
}

// IsRatio reports whether u is on the ratio (linear) scale.
func (u *Unit) IsRatio() bool { return u.Special == "" }

// Equals is semantic equality: same magnitude, same special-function
// name, same conversion prefix, same dimension. Names and codes, being
// cosmetic, are ignored.
func (u *Unit) Equals(other *Unit) bool {
	if other == nil {
		return false
	}
	return u.Magnitude == other.Magnitude &&
		u.Special == other.Special &&
		u.ConvPfx == other.ConvPfx &&
		u.Dim.Equals(other.Dim)
}

// MultiplyThis scales u in place by scalar. On a non-ratio unit the
// scalar multiplies the inner special-function prefix; otherwise it
// multiplies the magnitude directly.
func (u *Unit) MultiplyThis(scalar float64) {
	if !u.IsRatio() {
		u.ConvPfx *= scalar
	} else {
		u.Magnitude *= scalar
	}
	s := formatScalar(scalar)
	u.CS = s + "." + u.CS
	u.CI = s + "." + u.CI
	if u.Name != "" {
		u.Name = fmt.Sprintf("[%s]*[%s]", s, u.Name)
	} else {
		u.Name = s
	}
}

func formatScalar(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Scale-compatibility errors, returned by the algebra operations below.
var (
	ErrNonRatioMultiplication = fmt.Errorf("non-ratio multiplication")
	ErrNonRatioDivision       = fmt.Errorf("non-ratio division")
	ErrNonRatioPower          = fmt.Errorf("non-ratio power")
	ErrNonRatioInvert         = fmt.Errorf("non-ratio invert")
	ErrNonIntegerExponent     = fmt.Errorf("non-integer exponent")
)

// MultiplyThese returns a, non-mutating, new Unit representing a*b.
func (a *Unit) MultiplyThese(b *Unit) (*Unit, error) {
	aRatio, bRatio := a.IsRatio(), b.IsRatio()

	switch {
	case !aRatio && !bRatio:
		return nil, ErrNonRatioMultiplication
	case !aRatio && bRatio:
		if !b.Dim.IsZero() || !b.IsRatio() {
			return nil, ErrNonRatioMultiplication
		}
		out := a.Clone()
		out.ConvPfx *= b.Magnitude
		out.CS = a.CS + "." + b.CS
		out.CI = a.CI + "." + b.CI
		out.Name = combineNames(a.Name, b.Name)
		return out, nil
	case aRatio && !bRatio:
		return b.MultiplyThese(a)
	default:
		out := &Unit{
			Magnitude: a.Magnitude * b.Magnitude,
			Dim:       a.Dim.Add(b.Dim),
			ConvPfx:   1,
			CS:        a.CS + "." + b.CS,
			CI:        a.CI + "." + b.CI,
			Name:      combineNames(a.Name, b.Name),
		}
		return out, nil
	}
}

func combineNames(a, b string) string {
	switch {
	case a == "" && b == "":
		return ""
	case a == "":
		return b
	case b == "":
		return a
	default:
		return fmt.Sprintf("[%s]*[%s]", a, b)
	}
}

// Divide returns a new Unit representing a/b. Both operands must be
// on the ratio scale.
func (a *Unit) Divide(b *Unit) (*Unit, error) {
	if !a.IsRatio() || !b.IsRatio() {
		return nil, ErrNonRatioDivision
	}
	if b.Magnitude == 0 {
		return nil, fmt.Errorf("division by zero magnitude unit")
	}
	name := a.Name
	if name == "" && b.Name != "" {
		name = invertString(b.Name)
	} else {
		name = combineDivName(a.Name, b.Name)
	}
	return &Unit{
		Magnitude: a.Magnitude / b.Magnitude,
		Dim:       a.Dim.Sub(b.Dim),
		ConvPfx:   1,
		CS:        a.CS + "/" + b.CS,
		CI:        a.CI + "/" + b.CI,
		Name:      name,
	}, nil
}

func combineDivName(a, b string) string {
	if a == "" && b == "" {
		return ""
	}
	return fmt.Sprintf("[%s]/[%s]", a, b)
}

// Invert negates u's dimension and reciprocates its magnitude, in
// place. Fails on a non-ratio unit.
func (u *Unit) Invert() error {
	if !u.IsRatio() {
		return ErrNonRatioInvert
	}
	if u.Magnitude == 0 {
		return fmt.Errorf("cannot invert a zero-magnitude unit")
	}
	u.Magnitude = 1 / u.Magnitude
	u.Dim = u.Dim.Minus()
	u.CS = invertString(u.CS)
	u.CI = invertString(u.CI)
	if u.Name != "" {
		u.Name = "/" + u.Name
	}
	return nil
}

// invertString swaps the first '.' and '/' separator so that "m/s"
// becomes "/m.s", "m.s" becomes "/m.s", and "/m.s" becomes "m.s" — the
// §4.3 Invert string transform.
func invertString(s string) string {
	if strings.HasPrefix(s, "/") {
		return s[1:]
	}
	if idx := strings.IndexByte(s, '/'); idx != -1 {
		s = s[:idx] + "." + s[idx+1:]
	}
	return "/" + s
}

// Power raises u to the integer power p, in place. Fails on a
// non-ratio unit. p is an int, so no fractional exponent can reach
// Power, and it never returns ErrNonIntegerExponent.
func (u *Unit) Power(p int) error {
	if !u.IsRatio() {
		return ErrNonRatioPower
	}
	if p == 0 {
		u.Magnitude = 1
		u.Dim = dimension.Zero()
		u.CS = "1"
		u.CI = "1"
		u.Name = ""
		return nil
	}
	u.Magnitude = intPow(u.Magnitude, p)
	u.Dim = u.Dim.Mul(p)
	u.CS = powerCode(u.CS, p)
	u.CI = powerCode(u.CI, p)
	if u.Name != "" {
		u.Name = fmt.Sprintf("%s^%d", u.Name, p)
	}
	return nil
}

func intPow(base float64, p int) float64 {
	neg := p < 0
	if neg {
		p = -p
	}
	result := 1.0
	for i := 0; i < p; i++ {
		result *= base
	}
	if neg {
		return 1 / result
	}
	return result
}

// powerCode tokenises a code string on '.'/'/' boundaries, raising
// every pure-integer token to the p-th power and multiplying every
// atom token's trailing signed exponent by p (or appending p when the
// token had none).
func powerCode(code string, p int) string {
	var out strings.Builder
	i := 0
	for i < len(code) {
		sep := byte(0)
		if code[i] == '.' || code[i] == '/' {
			sep = code[i]
			i++
		}
		start := i
		for i < len(code) && code[i] != '.' && code[i] != '/' {
			i++
		}
		token := code[start:i]
		if sep != 0 {
			out.WriteByte(sep)
		}
		out.WriteString(powerToken(token, p))
	}
	return out.String()
}

func powerToken(token string, p int) string {
	if token == "" {
		return token
	}
	if n, err := strconv.Atoi(token); err == nil {
		return strconv.Itoa(intPowInt(n, p))
	}
	atomPart, exp, hasExp := splitTrailingExponent(token)
	newExp := p
	if hasExp {
		newExp = exp * p
	}
	if newExp == 1 {
		return atomPart
	}
	return fmt.Sprintf("%s%d", atomPart, newExp)
}

func intPowInt(base, p int) int {
	neg := p < 0
	if neg {
		p = -p
	}
	r := 1
	for i := 0; i < p; i++ {
		r *= base
	}
	if neg && r != 0 {
		return 1 / r // integer division is the best this representation can do
	}
	return r
}

// splitTrailingExponent peels an optional signed integer suffix off
// an atom token, e.g. "m-2" -> ("m", -2, true), "kg" -> ("kg", 0, false).
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

// ConvertFrom returns the value x of fromUnit expressed in u. Both
// units must carry equal dimension vectors, or either may be absent
// (permitting dimensionless arithmetic).
func (u *Unit) ConvertFrom(x float64, fromUnit *Unit) (float64, error) {
	if fromUnit.Dim.Present() && u.Dim.Present() && !fromUnit.Dim.Equals(u.Dim) {
		return 0, fmt.Errorf("incommensurable dimensions: %v vs %v", fromUnit.Dim, u.Dim)
	}

	if fromUnit.Special == u.Special {
		return x * fromUnit.Magnitude / u.Magnitude, nil
	}

	var intermediate float64
	if fromUnit.IsSpecial && fromUnit.Special != "" {
		pair, ok := special.ForName(fromUnit.Special)
		if !ok {
			return 0, fmt.Errorf("unknown special function %q", fromUnit.Special)
		}
		intermediate = pair.From(x*fromUnit.ConvPfx) * fromUnit.Magnitude
	} else {
		intermediate = x * fromUnit.Magnitude
	}

	if u.IsSpecial && u.Special != "" {
		pair, ok := special.ForName(u.Special)
		if !ok {
			return 0, fmt.Errorf("unknown special function %q", u.Special)
		}
		return pair.To(intermediate/u.Magnitude) / u.ConvPfx, nil
	}
	return intermediate / u.Magnitude, nil
}

// ConvertCoherent returns the value x of u represents in u's coherent
// (ratio-scale, magnitude-1) form, without mutating u.
func (u *Unit) ConvertCoherent(x float64) (float64, error) {
	coherent := u.Clone()
	if err := coherent.mutateCoherentInPlace(); err != nil {
		return 0, err
	}
	return coherent.ConvertFrom(x, u)
}

// MutateCoherent rewrites u in place to its coherent form: magnitude
// 1, no special function, conversion prefix 1. Returns the value x
// would have had in that coherent form.
func (u *Unit) MutateCoherent(x float64) (float64, error) {
	result, err := u.ConvertCoherent(x)
	if err != nil {
		return 0, err
	}
	if err := u.mutateCoherentInPlace(); err != nil {
		return 0, err
	}
	return result, nil
}

func (u *Unit) mutateCoherentInPlace() error {
	u.Magnitude = 1
	u.Special = ""
	u.IsSpecial = false
	u.ConvPfx = 1
	u.Name = ""
	return nil
}

// MutateRatio promotes a special unit to ratio scale via
// MutateCoherent; a unit already on the ratio scale is untouched and
// x is returned unchanged.
func (u *Unit) MutateRatio(x float64) (float64, error) {
	if u.IsRatio() {
		return x, nil
	}
	return u.MutateCoherent(x)
}

// String renders the unit's assembled case-sensitive code.
func (u *Unit) String() string {
	return u.CS
}
