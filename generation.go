package evolve

// GenerationStat is one persisted row of run history: the aggregate metrics
// of a population at the end of a generation.
type GenerationStat struct {
	ID           uint
	PopulationID uint
	Generation   uint
	Count        int
	BestFitness  float64
	MeanFitness  float64
	Diversity    float64
}

func newGenerationStat(p *Population, m *PopulationMetrics) *GenerationStat {
	return &GenerationStat{
		PopulationID: p.ID,
		Generation:   p.Generation,
		Count:        m.Count,
		BestFitness:  m.BestFitness,
		MeanFitness:  m.MeanFitness,
		Diversity:    m.Diversity,
	}
}
