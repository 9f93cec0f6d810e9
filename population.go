package evolve

import "log"

// Population is the current generation's ordered collection of Individuals,
// tied to the IndividualConfig it was created from. Insertion order is
// significant for tie-breaking reproducibility; size changes across
// generations.
type Population struct {
	ID          uint
	Generation  uint
	Individuals []*Individual
	Config      *IndividualConfig `gorm:"-:all"`
}

// InitMethod names a population initialization strategy. Unknown names
// resolve to random, the permissive default.
type InitMethod byte

const (
	InitRandom InitMethod = iota
)

func ParseInitMethod(name string) InitMethod {
	switch name {
	case "random":
		return InitRandom
	default:
		return InitRandom
	}
}

// PopulationConfig is the file-loadable description of a population: its
// initial size, the name of a registered fitness function, and the problem
// config.
type PopulationConfig struct {
	Size             int               `toml:"size"`
	InitMethod       string            `toml:"init_method"`
	Fitness          string            `toml:"fitness"`
	IndividualConfig *IndividualConfig `toml:"individual"`
}

// NewPopulationFromConfig builds and initializes a population from a
// PopulationConfig, binding the fitness function by registry name when the
// config doesn't carry one.
func NewPopulationFromConfig(config *PopulationConfig) (*Population, error) {
	if config == nil || config.IndividualConfig == nil {
		return nil, newConfigurationError("population config requires an individual section")
	}
	if config.IndividualConfig.Fitness == nil {
		fn, ok := LookupFitness(config.Fitness)
		if !ok {
			return nil, newConfigurationError("unknown fitness function %q", config.Fitness)
		}
		config.IndividualConfig.Fitness = fn
	}
	pop, err := NewPopulation(config.IndividualConfig)
	if err != nil {
		return nil, err
	}
	pop.Initialize(config.InitMethod, config.Size)
	return pop, nil
}

// NewPopulation builds an empty Population over a validated config. A nil or
// invalid config is a construction-time error.
func NewPopulation(config *IndividualConfig) (*Population, error) {
	if config == nil {
		return nil, newConfigurationError("population requires an IndividualConfig")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Population{Config: config}, nil
}

// Initialize fills the population with n generated Individuals. n <= 0 is
// legal and yields an empty population. Duplicates are permitted; callers
// wanting deduplication can build on HasIndividual.
func (p *Population) Initialize(method string, n int) {
	if n < 0 {
		n = 0
	}
	individuals := make([]*Individual, 0, n)
	switch ParseInitMethod(method) {
	case InitRandom:
		for i := 0; i < n; i++ {
			individuals = append(individuals, NewIndividualFromRandom(p.Config))
		}
	}
	p.Individuals = individuals
	if DEBUG {
		log.Printf("Initialized population with %d individuals via %q", len(individuals), method)
	}
}

// Add appends an Individual. Pushing a nil Individual is an error.
func (p *Population) Add(ind *Individual) error {
	if ind == nil {
		return newArgumentError("cannot add a nil Individual to a population")
	}
	p.Individuals = append(p.Individuals, ind)
	return nil
}

// HasIndividual reports whether an Individual with identical content is
// already a member.
func (p *Population) HasIndividual(ind *Individual) bool {
	if ind == nil {
		return false
	}
	for _, member := range p.Individuals {
		if member.Equal(ind) {
			return true
		}
	}
	return false
}

func (p *Population) Size() int {
	return len(p.Individuals)
}

// Best returns the highest-fitness member, or nil for an empty population.
// Ties resolve to the earliest member.
func (p *Population) Best() *Individual {
	var best *Individual
	for _, ind := range p.Individuals {
		if best == nil || ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return best
}

// GetParents selects n parents via the named strategy. Unknown methods
// select nothing.
func (p *Population) GetParents(method string, n int, opts *SelectOptions) []*Individual {
	if opts == nil {
		opts = &SelectOptions{}
	}
	s := NewSelector(&SelectorConfig{
		Method:         method,
		RouletteMethod: opts.RouletteMethod,
		ShuffleOrder:   opts.ShuffleOrder,
	})
	return s.Select(p, n)
}

// ApplyGeneticOperators produces one child per parent via the named mutation
// operator. Unknown methods fall back to uniform mutation.
func (p *Population) ApplyGeneticOperators(parents []*Individual, method string, opts *MutateOptions) ([]*Individual, error) {
	v := NewVariator(&VariatorConfig{Method: method, Options: opts})
	return v.Apply(p, parents)
}

// Replacement installs the next generation's membership in place. Unknown
// methods fall back to generational replacement.
func (p *Population) Replacement(parents, children []*Individual, method string, opts *ReplaceOptions) {
	if opts == nil {
		opts = &ReplaceOptions{}
	}
	r := NewReplacer(&ReplacerConfig{
		Method:            method,
		NewGenerationSize: opts.NewGenerationSize,
		GenerationGap:     opts.GenerationGap,
	})
	r.Replace(p, parents, children)
}
