// Package special is the process-wide registry of named non-linear
// conversion function pairs (component D): Celsius, Fahrenheit, pH,
// the logarithmic ratio units, and so on. The registry is assembled
// once at package init and never mutated afterwards.
package special

import "math"

// Pair is a forward/inverse pair of pure, stateless conversion
// functions. From converts a value on the special scale to the
// unit's ratio-scale base; To is its inverse.
type Pair struct {
	From func(x float64) float64
	To   func(x float64) float64
}

var registry = map[string]Pair{
	// Cel: ratio base is Kelvin. x degC -> (x + 273.15) K.
	"Cel": {
		From: func(x float64) float64 { return x + 273.15 },
		To:   func(x float64) float64 { return x - 273.15 },
	},
	// degF: ratio base is Kelvin, via Rankine-style affine map.
	// x degF -> (x + 459.67) * 5/9 K.
	"degF": {
		From: func(x float64) float64 { return (x + 459.67) * 5.0 / 9.0 },
		To:   func(x float64) float64 { return x*9.0/5.0 - 459.67 },
	},
	// degRe: Réaumur. Ratio base Kelvin.
	"degRe": {
		From: func(x float64) float64 { return x*5.0/4.0 + 273.15 },
		To:   func(x float64) float64 { return (x - 273.15) * 4.0 / 5.0 },
	},
	// pH: ratio base is mol/l hydrogen ion concentration.
	"pH": {
		From: func(x float64) float64 { return math.Pow(10, -x) },
		To:   func(x float64) float64 { return -math.Log10(x) },
	},
	// ln: natural-log ratio (neper-style).
	"ln": {
		From: math.Exp,
		To:   math.Log,
	},
	// lg: base-10 log ratio (bel-style).
	"lg": {
		From: func(x float64) float64 { return math.Pow(10, x) },
		To:   math.Log10,
	},
	// 2lg: base-10 log of a squared ratio (decibel-style power ratio).
	"2lg": {
		From: func(x float64) float64 { return math.Pow(10, x/2) },
		To:   func(x float64) float64 { return 2 * math.Log10(x) },
	},
	// ld: base-2 log ratio.
	"ld": {
		From: func(x float64) float64 { return math.Pow(2, x) },
		To:   math.Log2,
	},
	// tan: arbitrary angle special function used by a few ophthalmic units.
	"tan": {
		From: math.Tan,
		To:   math.Atan,
	},
	// 100tan: percent-of-tangent, used by prism diopters.
	"100tan": {
		From: func(x float64) float64 { return 100 * math.Tan(x) },
		To:   func(x float64) float64 { return math.Atan(x / 100) },
	},
}

func init() {
	// "ph" is registered alongside "pH" since overlay atoms may spell
	// the special-function name in either case.
	registry["ph"] = registry["pH"]
}

// ForName looks up a special function pair by name. ok is false for
// an unknown name; callers must surface that as UnknownSpecialFunction
// (an internal/data bug, never a user input error per §7).
func ForName(name string) (Pair, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names returns every registered special function name, for
// diagnostics and tests.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	return out
}
