package catalog

import "github.com/sambeau/ucum/pkg/ucum/dimension"

func dim(length, time, mass, angle, temp, charge, lum int) dimension.Vector {
	return dimension.New([dimension.Size]int{length, time, mass, angle, temp, charge, lum})
}

var dimensionless = dimension.Zero()

// builtinAtoms is the compiled-in default catalog: the seven base
// units plus a working set of derived, special, and arbitrary atoms
// sufficient to validate and convert the expressions spec.md's §8
// scenarios exercise, and a reasonable amount beyond them. It is a Go
// literal, not data loaded from an external XML/CSV/JSON source — that
// loading pipeline is explicitly out of scope per spec.md §1.
var builtinAtoms = []Atom{
	// --- the seven base units ---
	{CS: "m", CI: "M", Name: "meter", PrintSymbol: "m", Property: "length",
		MagnitudeExact: "1", Magnitude: 1, Dimension: dim(1, 0, 0, 0, 0, 0, 0), IsBase: true, IsMetric: true},
	{CS: "s", CI: "S", Name: "second", PrintSymbol: "s", Property: "time",
		MagnitudeExact: "1", Magnitude: 1, Dimension: dim(0, 1, 0, 0, 0, 0, 0), IsBase: true, IsMetric: true},
	{CS: "g", CI: "G", Name: "gram", PrintSymbol: "g", Property: "mass",
		MagnitudeExact: "1", Magnitude: 1, Dimension: dim(0, 0, 1, 0, 0, 0, 0), IsBase: true, IsMetric: true},
	{CS: "rad", CI: "RAD", Name: "radian", PrintSymbol: "rad", Property: "plane angle",
		MagnitudeExact: "1", Magnitude: 1, Dimension: dim(0, 0, 0, 1, 0, 0, 0), IsBase: true, IsMetric: true},
	{CS: "K", CI: "K", Name: "kelvin", PrintSymbol: "K", Property: "temperature",
		MagnitudeExact: "1", Magnitude: 1, Dimension: dim(0, 0, 0, 0, 1, 0, 0), IsBase: true, IsMetric: true},
	{CS: "C", CI: "C", Name: "coulomb", PrintSymbol: "C", Property: "electric charge",
		MagnitudeExact: "1", Magnitude: 1, Dimension: dim(0, 0, 0, 0, 0, 1, 0), IsBase: true, IsMetric: true},
	{CS: "cd", CI: "CD", Name: "candela", PrintSymbol: "cd", Property: "luminous intensity",
		MagnitudeExact: "1", Magnitude: 1, Dimension: dim(0, 0, 0, 0, 0, 0, 1), IsBase: true, IsMetric: true},

	// --- dimensionless counting pseudo-unit ---
	// mol carries no dimension of its own, exactly as real UCUM defines
	// it: it is a ratio-scale multiplier by Avogadro's number.
	{CS: "mol", CI: "MOL", Name: "mole", PrintSymbol: "mol", Property: "substance amount",
		MagnitudeExact: "6.02214076e23", Magnitude: 6.02214076e23, Dimension: dimensionless, IsMetric: true,
		Synonyms: []string{"mole"}},

	// --- dimensionless plain numbers ---
	{CS: "10*", CI: "10*", Name: "the number ten for arbitrary powers", PrintSymbol: "10", Property: "number",
		MagnitudeExact: "10", Magnitude: 10, Dimension: dimensionless},
	{CS: "%", CI: "%", Name: "percent", PrintSymbol: "%", Property: "fraction",
		MagnitudeExact: "0.01", Magnitude: 0.01, Dimension: dimensionless},
	{CS: "[ppm]", CI: "[PPM]", Name: "parts per million", PrintSymbol: "ppm", Property: "fraction",
		MagnitudeExact: "1e-6", Magnitude: 1e-6, Dimension: dimensionless},

	// --- derived ratio units ---
	{CS: "L", CI: "L", Name: "liter", PrintSymbol: "l", Property: "volume",
		MagnitudeExact: "0.001", Magnitude: 0.001, Dimension: dim(3, 0, 0, 0, 0, 0, 0), IsMetric: true,
		Synonyms: []string{"liter", "litre"}},
	{CS: "l", CI: "L", Name: "liter", PrintSymbol: "l", Property: "volume",
		MagnitudeExact: "0.001", Magnitude: 0.001, Dimension: dim(3, 0, 0, 0, 0, 0, 0), IsMetric: true},
	{CS: "Hz", CI: "HZ", Name: "hertz", PrintSymbol: "Hz", Property: "frequency",
		MagnitudeExact: "1", Magnitude: 1, Dimension: dim(0, -1, 0, 0, 0, 0, 0), IsMetric: true},
	{CS: "N", CI: "N", Name: "newton", PrintSymbol: "N", Property: "force",
		MagnitudeExact: "1000", Magnitude: 1000, Dimension: dim(1, -2, 1, 0, 0, 0, 0), IsMetric: true},
	{CS: "Pa", CI: "PAL", Name: "pascal", PrintSymbol: "Pa", Property: "pressure",
		MagnitudeExact: "1000", Magnitude: 1000, Dimension: dim(-1, -2, 1, 0, 0, 0, 0), IsMetric: true},
	{CS: "J", CI: "J", Name: "joule", PrintSymbol: "J", Property: "energy",
		MagnitudeExact: "1000", Magnitude: 1000, Dimension: dim(2, -2, 1, 0, 0, 0, 0), IsMetric: true},
	{CS: "W", CI: "W", Name: "watt", PrintSymbol: "W", Property: "power",
		MagnitudeExact: "1000", Magnitude: 1000, Dimension: dim(2, -3, 1, 0, 0, 0, 0), IsMetric: true},
	{CS: "A", CI: "A", Name: "ampere", PrintSymbol: "A", Property: "electric current",
		MagnitudeExact: "1", Magnitude: 1, Dimension: dim(0, -1, 0, 0, 0, 1, 0), IsMetric: true},
	{CS: "V", CI: "V", Name: "volt", PrintSymbol: "V", Property: "electric potential",
		MagnitudeExact: "1000", Magnitude: 1000, Dimension: dim(2, -3, 1, 0, 0, -1, 0), IsMetric: true},
	{CS: "min", CI: "MIN", Name: "minute", PrintSymbol: "min", Property: "time",
		MagnitudeExact: "60", Magnitude: 60, Dimension: dim(0, 1, 0, 0, 0, 0, 0)},
	{CS: "h", CI: "HR", Name: "hour", PrintSymbol: "h", Property: "time",
		MagnitudeExact: "3600", Magnitude: 3600, Dimension: dim(0, 1, 0, 0, 0, 0, 0)},
	{CS: "d", CI: "D", Name: "day", PrintSymbol: "d", Property: "time",
		MagnitudeExact: "86400", Magnitude: 86400, Dimension: dim(0, 1, 0, 0, 0, 0, 0)},
	{CS: "deg", CI: "DEG", Name: "degree", PrintSymbol: "°", Property: "plane angle",
		MagnitudeExact: "0.017453292519943295", Magnitude: 0.017453292519943295, Dimension: dim(0, 0, 0, 1, 0, 0, 0)},
	{CS: "[car_m]", CI: "[CAR_M]", Name: "carat of mass", PrintSymbol: "car", Property: "mass",
		MagnitudeExact: "0.2", Magnitude: 0.2, Dimension: dim(0, 0, 1, 0, 0, 0, 0)},
	{CS: "[in_i]", CI: "[IN_I]", Name: "inch", PrintSymbol: "in", Property: "length",
		MagnitudeExact: "0.0254", Magnitude: 0.0254, Dimension: dim(1, 0, 0, 0, 0, 0, 0)},
	{CS: "[ft_i]", CI: "[FT_I]", Name: "foot", PrintSymbol: "ft", Property: "length",
		MagnitudeExact: "0.3048", Magnitude: 0.3048, Dimension: dim(1, 0, 0, 0, 0, 0, 0)},
	{CS: "[lb_av]", CI: "[LB_AV]", Name: "pound", PrintSymbol: "lb", Property: "mass",
		MagnitudeExact: "453.59237", Magnitude: 453.59237, Dimension: dim(0, 0, 1, 0, 0, 0, 0)},

	// --- special (non-ratio) units ---
	{CS: "Cel", CI: "CEL", Name: "degree Celsius", PrintSymbol: "°C", Property: "temperature",
		MagnitudeExact: "1", Magnitude: 1, Dimension: dim(0, 0, 0, 0, 1, 0, 0),
		IsSpecial: true, Special: "Cel", ConversionPfx: 1},
	{CS: "[degF]", CI: "[DEGF]", Name: "degree Fahrenheit", PrintSymbol: "°F", Property: "temperature",
		MagnitudeExact: "1", Magnitude: 1, Dimension: dim(0, 0, 0, 0, 1, 0, 0),
		IsSpecial: true, Special: "degF", ConversionPfx: 1,
		Guidance: "degrees Fahrenheit"},
	{CS: "[degRe]", CI: "[DEGRE]", Name: "degree Réaumur", PrintSymbol: "°Ré", Property: "temperature",
		MagnitudeExact: "1", Magnitude: 1, Dimension: dim(0, 0, 0, 0, 1, 0, 0),
		IsSpecial: true, Special: "degRe", ConversionPfx: 1},
	{CS: "[pH]", CI: "[PH]", Name: "pH", PrintSymbol: "pH", Property: "acidity",
		MagnitudeExact: "1", Magnitude: 1, Dimension: dim(-3, 0, 0, 0, 0, 0, 0),
		IsSpecial: true, Special: "pH", ConversionPfx: 1},
	{CS: "Np", CI: "NP", Name: "neper", PrintSymbol: "Np", Property: "level",
		MagnitudeExact: "1", Magnitude: 1, Dimension: dimensionless,
		IsSpecial: true, Special: "ln", ConversionPfx: 1},
	{CS: "B", CI: "B", Name: "bel", PrintSymbol: "B", Property: "level",
		MagnitudeExact: "1", Magnitude: 1, Dimension: dimensionless,
		IsSpecial: true, Special: "lg", ConversionPfx: 1},

	// --- arbitrary units ---
	{CS: "[iU]", CI: "[IU]", Name: "international unit", PrintSymbol: "IU", Property: "arbitrary",
		MagnitudeExact: "1", Magnitude: 1, Dimension: dimensionless, IsArbitrary: true},
	{CS: "[arb'U]", CI: "[ARB'U]", Name: "arbitrary unit", PrintSymbol: "arb.U", Property: "arbitrary",
		MagnitudeExact: "1", Magnitude: 1, Dimension: dimensionless, IsArbitrary: true},
}

// builtinPrefixes is the compiled-in default set of metric prefixes.
var builtinPrefixes = []Prefix{
	{CS: "Y", CI: "YA", Name: "yotta", Value: 1e24, Metric: true},
	{CS: "Z", CI: "ZA", Name: "zetta", Value: 1e21, Metric: true},
	{CS: "E", CI: "EX", Name: "exa", Value: 1e18, Metric: true},
	{CS: "P", CI: "PT", Name: "peta", Value: 1e15, Metric: true},
	{CS: "T", CI: "TR", Name: "tera", Value: 1e12, Metric: true},
	{CS: "G", CI: "GA", Name: "giga", Value: 1e9, Metric: true},
	{CS: "M", CI: "MA", Name: "mega", Value: 1e6, Metric: true},
	{CS: "k", CI: "K", Name: "kilo", Value: 1e3, Metric: true},
	{CS: "h", CI: "H", Name: "hecto", Value: 1e2, Metric: true},
	{CS: "da", CI: "DA", Name: "deka", Value: 1e1, Metric: true},
	{CS: "d", CI: "D", Name: "deci", Value: 1e-1, Metric: true},
	{CS: "c", CI: "C", Name: "centi", Value: 1e-2, Metric: true},
	{CS: "m", CI: "M", Name: "milli", Value: 1e-3, Metric: true},
	{CS: "u", CI: "U", Name: "micro", Value: 1e-6, Metric: true},
	{CS: "µ", CI: "U", Name: "micro", Value: 1e-6, Metric: true},
	{CS: "n", CI: "N", Name: "nano", Value: 1e-9, Metric: true},
	{CS: "p", CI: "P", Name: "pico", Value: 1e-12, Metric: true},
	{CS: "f", CI: "F", Name: "femto", Value: 1e-15, Metric: true},
	{CS: "a", CI: "A", Name: "atto", Value: 1e-18, Metric: true},
	{CS: "z", CI: "ZO", Name: "zepto", Value: 1e-21, Metric: true},
	{CS: "y", CI: "YO", Name: "yocto", Value: 1e-24, Metric: true},
}

// Builtin returns the compiled-in default catalog.
func Builtin() *Table {
	return NewTable(builtinAtoms, builtinPrefixes)
}
