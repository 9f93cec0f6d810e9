package evolve

import "strings"

// ReplacementMethod is the tagged set of survivor-selection strategies.
// Unknown method names parse to generational, the explicit default arm.
type ReplacementMethod byte

const (
	ReplacementGenerational ReplacementMethod = iota
	ReplacementComma
	ReplacementPlus
	ReplacementSeparateCompetition
)

func ParseReplacementMethod(name string) ReplacementMethod {
	switch strings.ToLower(name) {
	case "comma_strategy":
		return ReplacementComma
	case "plus_strategy":
		return ReplacementPlus
	case "separate_competition":
		return ReplacementSeparateCompetition
	default:
		return ReplacementGenerational
	}
}

// ReplaceOptions tunes survivor selection. NewGenerationSize of 0 means the
// population size at call time; GenerationGap defaults to 0, which under
// separate_competition keeps all old parents and drops all children.
type ReplaceOptions struct {
	NewGenerationSize int `toml:"new_generation_size"`
	GenerationGap     int `toml:"generation_gap"`
}

type ReplacerConfig struct {
	Method            string `toml:"method"`
	NewGenerationSize int    `toml:"new_generation_size"`
	GenerationGap     int    `toml:"generation_gap"`
}

// Replacer installs the next generation's membership. It is the only
// component that mutates the population's stored collection, and it swaps
// the whole slice at once — never a partial mutation mid-read.
type Replacer struct {
	Config *ReplacerConfig
}

func NewReplacer(config *ReplacerConfig) *Replacer {
	return &Replacer{Config: config}
}

func (r *Replacer) Replace(p *Population, parents, children []*Individual) {
	switch ParseReplacementMethod(r.Config.Method) {
	case ReplacementComma:
		p.Individuals = keepTop(sortByFitness(children), r.newGenerationSize(p))
	case ReplacementPlus:
		pool := make([]*Individual, 0, len(parents)+len(children))
		pool = append(pool, parents...)
		pool = append(pool, children...)
		p.Individuals = keepTop(sortByFitness(pool), r.newGenerationSize(p))
	case ReplacementSeparateCompetition:
		gap := r.Config.GenerationGap
		if gap < 0 {
			gap = 0
		}
		parentSlots := p.Size() - gap
		if parentSlots < 0 {
			parentSlots = 0
		}
		next := keepTop(sortByFitness(parents), parentSlots)
		next = append(next, keepTop(sortByFitness(children), gap)...)
		p.Individuals = next
	default:
		next := make([]*Individual, len(children))
		copy(next, children)
		p.Individuals = next
	}
}

func (r *Replacer) newGenerationSize(p *Population) int {
	if r.Config.NewGenerationSize <= 0 {
		return p.Size()
	}
	return r.Config.NewGenerationSize
}

func keepTop(sorted []*Individual, n int) []*Individual {
	if n > len(sorted) {
		n = len(sorted)
	}
	if n < 0 {
		n = 0
	}
	kept := make([]*Individual, n)
	copy(kept, sorted[:n])
	return kept
}
