package evolve

import (
	"math"
	"strings"
)

// Builtin fitness functions, addressable by name so the cmd tools can bind
// one from a toml config. Library callers pass any FitnessFunc directly.
// Benchmarks that are conventionally minimized are negated: higher is always
// better here.

// FitnessSum scores an individual by the sum of its variable values.
func FitnessSum(ind *Individual) float64 {
	var total float64
	for _, v := range ind.Values {
		total += v
	}
	return total
}

// FitnessSphere is the negated sphere benchmark: -Σ v².
func FitnessSphere(ind *Individual) float64 {
	var total float64
	for _, v := range ind.Values {
		total += v * v
	}
	return -total
}

// FitnessRastrigin is the negated Rastrigin benchmark:
// -(10n + Σ (v² - 10cos(2πv))).
func FitnessRastrigin(ind *Individual) float64 {
	total := 10 * float64(len(ind.Values))
	for _, v := range ind.Values {
		total += v*v - 10*math.Cos(2*math.Pi*v)
	}
	return -total
}

var fitnessRegistry = map[string]FitnessFunc{
	"sum":       FitnessSum,
	"sphere":    FitnessSphere,
	"rastrigin": FitnessRastrigin,
}

// LookupFitness resolves a registered fitness function by name,
// case-insensitive.
func LookupFitness(name string) (FitnessFunc, bool) {
	fn, ok := fitnessRegistry[strings.ToLower(name)]
	return fn, ok
}
