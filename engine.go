package evolve

import (
	"context"
	"fmt"
	"log"
)

// EngineConfig describes one evolution run: how many generations to advance
// and which strategy each phase uses. A nil phase config behaves like an
// empty method string, which resolves through each phase's default arm
// (uniform mutation, generational replacement, no selection).
type EngineConfig struct {
	Generations uint            `toml:"generations"`
	Selector    *SelectorConfig `toml:"select"`
	Variator    *VariatorConfig `toml:"vary"`
	Replacer    *ReplacerConfig `toml:"replace"`
}

// GenerationEngine drives the select → vary → replace cycle over one
// population. It is the thin orchestration shell around the core operators;
// fitness evaluation happens inside Individual construction, synchronously.
type GenerationEngine struct {
	Population *Population
	Config     *EngineConfig

	persist  *Persistence
	selector *Selector
	variator *Variator
	replacer *Replacer
}

// NewGenerationEngine wires an engine over a population. persist may be nil;
// with it set, every generation appends a run-history row and the final
// membership is saved back.
func NewGenerationEngine(pop *Population, config *EngineConfig, persist *Persistence) *GenerationEngine {
	selectorConfig := config.Selector
	if selectorConfig == nil {
		selectorConfig = &SelectorConfig{}
	}
	variatorConfig := config.Variator
	if variatorConfig == nil {
		variatorConfig = &VariatorConfig{}
	}
	replacerConfig := config.Replacer
	if replacerConfig == nil {
		replacerConfig = &ReplacerConfig{}
	}
	return &GenerationEngine{
		Population: pop,
		Config:     config,
		persist:    persist,
		selector:   NewSelector(selectorConfig),
		variator:   NewVariator(variatorConfig),
		replacer:   NewReplacer(replacerConfig),
	}
}

// Run advances the configured number of generations, stopping early on
// context cancellation or when selection produces no parents (a fully
// non-positive-fitness wheel, or an unknown selection method).
func (ge *GenerationEngine) Run(ctx context.Context) error {
	for g := uint(0); g < ge.Config.Generations; g++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		parents := ge.selector.Select(ge.Population, ge.parentCount())
		if len(parents) == 0 {
			return fmt.Errorf("selection produced no parents at generation %d", ge.Population.Generation)
		}

		children, err := ge.variator.Apply(ge.Population, parents)
		if err != nil {
			return err
		}

		ge.replacer.Replace(ge.Population, parents, children)
		ge.Population.Generation++

		if DEBUG {
			m := ge.Population.Metrics()
			log.Printf("Generation %d: count=%d best=%v mean=%v",
				ge.Population.Generation, m.Count, m.BestFitness, m.MeanFitness)
		}

		if ge.persist != nil {
			stat := newGenerationStat(ge.Population, ge.Population.Metrics())
			if err := ge.persist.SaveStat(stat); err != nil {
				return err
			}
		}
	}

	if ge.persist != nil {
		return ge.persist.SavePopulation(ge.Population)
	}
	return nil
}

func (ge *GenerationEngine) parentCount() int {
	if ge.selector.Config.ParentCount > 0 {
		return ge.selector.Config.ParentCount
	}
	return ge.Population.Size()
}
