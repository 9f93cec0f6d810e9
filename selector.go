package evolve

import (
	"math"
	"sort"
	"strings"
)

// SelectionMethod is the tagged set of parent-selection strategies. Unknown
// method names parse to SelectionUnknown, which selects nothing — a
// deliberate permissive default rather than an error.
type SelectionMethod byte

const (
	SelectionUnknown SelectionMethod = iota
	SelectionRandom
	SelectionBest
	SelectionRoulette
)

func ParseSelectionMethod(name string) SelectionMethod {
	switch strings.ToLower(name) {
	case "random":
		return SelectionRandom
	case "best":
		return SelectionBest
	case "roulette":
		return SelectionRoulette
	default:
		return SelectionUnknown
	}
}

// RouletteMethod is the tagged set of roulette-wheel variants. Unknown names
// parse to with-replacement, the default.
type RouletteMethod byte

const (
	RouletteWithReplacement RouletteMethod = iota
	RouletteWithoutReplacement
	RouletteRemainderWithReplacement
	RouletteRemainderWithoutReplacement
	RouletteUniversal
)

func ParseRouletteMethod(name string) RouletteMethod {
	switch strings.ToLower(name) {
	case "without_replacement":
		return RouletteWithoutReplacement
	case "remainder_with_replacement":
		return RouletteRemainderWithReplacement
	case "remainder_without_replacement":
		return RouletteRemainderWithoutReplacement
	case "universal":
		return RouletteUniversal
	default:
		return RouletteWithReplacement
	}
}

// SelectOptions tunes the roulette strategy from the Population API.
type SelectOptions struct {
	RouletteMethod string `toml:"roulette_method"`
	ShuffleOrder   bool   `toml:"shuffle_order"`
}

type SelectorConfig struct {
	Method         string `toml:"method"`
	RouletteMethod string `toml:"roulette_method"`
	ShuffleOrder   bool   `toml:"shuffle_order"`
	ParentCount    int    `toml:"parent_count"`
}

type Selector struct {
	Config *SelectorConfig
}

func NewSelector(config *SelectorConfig) *Selector {
	return &Selector{Config: config}
}

// Select returns n parents drawn from the population. Repetition is allowed
// for the probabilistic strategies; best never repeats.
func (s *Selector) Select(p *Population, n int) []*Individual {
	switch ParseSelectionMethod(s.Config.Method) {
	case SelectionBest:
		return selectBest(p, n)
	case SelectionRandom:
		return selectRandom(p, n)
	case SelectionRoulette:
		switch ParseRouletteMethod(s.Config.RouletteMethod) {
		case RouletteWithoutReplacement:
			return selectRouletteWheel(p, n, false)
		case RouletteRemainderWithReplacement:
			return selectRouletteRemainder(p, n, true)
		case RouletteRemainderWithoutReplacement:
			return selectRouletteRemainder(p, n, false)
		case RouletteUniversal:
			return selectRouletteUniversal(p, n, s.Config.ShuffleOrder)
		default:
			return selectRouletteWheel(p, n, true)
		}
	default:
		return nil
	}
}

// selectBest sorts descending by fitness (stable, so ties keep insertion
// order) and returns the first n. Asking for more than the population holds
// returns the whole sorted population, no padding.
func selectBest(p *Population, n int) []*Individual {
	if n <= 0 {
		return nil
	}
	sorted := sortByFitness(p.Individuals)
	if n >= len(sorted) {
		return sorted
	}
	return sorted[:n]
}

// selectRandom draws each of the n results by independent uniform index
// sampling, with replacement.
func selectRandom(p *Population, n int) []*Individual {
	if n <= 0 || len(p.Individuals) == 0 {
		return nil
	}
	picked := make([]*Individual, n)
	for i := range picked {
		picked[i] = p.Individuals[rng.Intn(len(p.Individuals))]
	}
	return picked
}

// selectRouletteWheel spins a wheel whose slot widths are max(0, fitness).
// Each draw picks a uniform position in [0, size) and walks cumulative
// weights to the first slot exceeding it. Without replacement, the chosen
// slot loses 1 weight (floored at 0) and the wheel shrinks by 1, biasing
// later draws away from already-chosen individuals. If the wheel exhausts
// before n draws complete, the remaining draws are uniform over the
// individuals that still have weight, or over everyone once none do.
func selectRouletteWheel(p *Population, n int, withReplacement bool) []*Individual {
	if n <= 0 || len(p.Individuals) == 0 {
		return nil
	}
	weights, size := rouletteWeights(p.Individuals)
	if size <= 0 {
		return nil
	}

	picked := make([]*Individual, 0, n)
	for len(picked) < n {
		if size <= 0 {
			picked = append(picked, p.Individuals[uniformRemaining(weights)])
			continue
		}
		j := spinWheel(weights, rng.Float64()*size)
		picked = append(picked, p.Individuals[j])
		if !withReplacement {
			weights[j] = math.Max(0, weights[j]-1)
			size -= 1
		}
	}
	return picked
}

// selectRouletteRemainder deterministically includes floor(max(0, fitness))
// copies of each individual, then fills remaining slots by spinning a wheel
// over the fractional remainders, with the same decrement rule as the plain
// variants. A zero remainder wheel means only the deterministic copies come
// back — never an error.
func selectRouletteRemainder(p *Population, n int, withReplacement bool) []*Individual {
	if n <= 0 || len(p.Individuals) == 0 {
		return nil
	}

	picked := make([]*Individual, 0, n)
	weights := make([]float64, len(p.Individuals))
	var size float64
	for i, ind := range p.Individuals {
		w := math.Max(0, ind.Fitness)
		whole := int(math.Floor(w))
		for c := 0; c < whole && len(picked) < n; c++ {
			picked = append(picked, ind)
		}
		weights[i] = w - math.Floor(w)
		size += weights[i]
	}

	for len(picked) < n && size > 0 {
		j := spinWheel(weights, rng.Float64()*size)
		picked = append(picked, p.Individuals[j])
		if !withReplacement {
			weights[j] = math.Max(0, weights[j]-1)
			size -= 1
		}
	}
	return picked
}

// selectRouletteUniversal implements stochastic universal sampling: one
// uniform start offset in [0, size/n), then n equally spaced pointers, each
// mapped to the individual whose cumulative-weight interval contains it.
// Selection counts track fitness proportions with a single random draw.
// ShuffleOrder permutes the walk order first to avoid positional bias.
func selectRouletteUniversal(p *Population, n int, shuffleOrder bool) []*Individual {
	if n <= 0 || len(p.Individuals) == 0 {
		return nil
	}

	order := p.Individuals
	if shuffleOrder {
		order = make([]*Individual, len(p.Individuals))
		for i, j := range rng.Perm(len(p.Individuals)) {
			order[i] = p.Individuals[j]
		}
	}

	weights, size := rouletteWeights(order)
	if size <= 0 {
		return nil
	}

	step := size / float64(n)
	pointer := rng.Float64() * step

	picked := make([]*Individual, 0, n)
	j := 0
	cumulative := weights[0]
	for k := 0; k < n; k++ {
		for pointer >= cumulative && j < len(order)-1 {
			j++
			cumulative += weights[j]
		}
		picked = append(picked, order[j])
		pointer += step
	}
	return picked
}

// rouletteWeights clamps negative fitness to zero weight and returns the
// per-individual weights plus their sum, the wheel size.
func rouletteWeights(individuals []*Individual) ([]float64, float64) {
	weights := make([]float64, len(individuals))
	var size float64
	for i, ind := range individuals {
		weights[i] = math.Max(0, ind.Fitness)
		size += weights[i]
	}
	return weights, size
}

// spinWheel walks cumulative weights and returns the first index whose
// cumulative weight exceeds the position. Cumulative state is local to the
// call.
func spinWheel(weights []float64, position float64) int {
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if cumulative > position {
			return i
		}
	}
	// Float accumulation can leave position just beyond the final slot.
	return len(weights) - 1
}

// uniformRemaining picks uniformly among indexes that still carry weight,
// falling back to the whole range when the wheel is fully spent.
func uniformRemaining(weights []float64) int {
	remaining := make([]int, 0, len(weights))
	for i, w := range weights {
		if w > 0 {
			remaining = append(remaining, i)
		}
	}
	if len(remaining) == 0 {
		return rng.Intn(len(weights))
	}
	return remaining[rng.Intn(len(remaining))]
}

// sortByFitness returns a new slice sorted descending by fitness. The sort
// is stable so equal-fitness individuals keep their original order.
func sortByFitness(individuals []*Individual) []*Individual {
	sorted := make([]*Individual, len(individuals))
	copy(sorted, individuals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Fitness > sorted[j].Fitness
	})
	return sorted
}
