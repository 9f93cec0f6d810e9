package evolve

import (
	"strings"

	sm "github.com/xrash/smetrics"
)

// PopulationMetrics holds aggregate fitness metrics for a population.
type PopulationMetrics struct {
	Count        int
	BestFitness  float64
	WorstFitness float64
	MeanFitness  float64
	Diversity    float64
}

// Metrics computes aggregate fitness and diversity over the current
// membership.
func (p *Population) Metrics() *PopulationMetrics {
	m := &PopulationMetrics{Count: p.Size()}
	if m.Count == 0 {
		return m
	}

	var total float64
	best := p.Individuals[0]
	m.BestFitness = best.Fitness
	m.WorstFitness = best.Fitness
	for _, ind := range p.Individuals {
		total += ind.Fitness
		if ind.Fitness > m.BestFitness {
			m.BestFitness = ind.Fitness
			best = ind
		}
		if ind.Fitness < m.WorstFitness {
			m.WorstFitness = ind.Fitness
		}
	}
	m.MeanFitness = total / float64(m.Count)
	m.Diversity = diversity(p.Individuals, best)
	return m
}

// diversity is the mean normalized Wagner-Fischer distance between each
// member's genome string and the best member's. 0 means every member is
// identical to the best; values approach 1 as genomes diverge.
func diversity(individuals []*Individual, best *Individual) float64 {
	if len(individuals) < 2 {
		return 0
	}
	reference := genomeString(best)
	var total float64
	for _, ind := range individuals {
		if ind == best {
			continue
		}
		genome := genomeString(ind)
		longest := len(reference)
		if len(genome) > longest {
			longest = len(genome)
		}
		if longest == 0 {
			continue
		}
		distance := sm.WagnerFischer(reference, genome, 1, 1, 2)
		total += float64(distance) / float64(longest)
	}
	return total / float64(len(individuals)-1)
}

// genomeString is the comparable text form of an individual's values,
// excluding fitness.
func genomeString(ind *Individual) string {
	var sb strings.Builder
	for i, v := range ind.Values {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(formatValue(v))
	}
	return sb.String()
}
