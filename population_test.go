package evolve

import (
	"errors"
	test "testing"
)

func TestNewPopulationInvalidConfig(t *test.T) {
	var confErr *ConfigurationError

	if _, err := NewPopulation(nil); err == nil || !errors.As(err, &confErr) {
		t.Errorf("Expected ConfigurationError for nil config, got %v", err)
	}

	config := makeSumConfig()
	config.Fitness = nil
	if _, err := NewPopulation(config); err == nil || !errors.As(err, &confErr) {
		t.Errorf("Expected ConfigurationError for invalid config, got %v", err)
	}
}

func TestInitializeCounts(t *test.T) {
	InitRNG(42)
	pop, err := NewPopulation(makeSumConfig())
	if err != nil {
		t.Fatalf("NewPopulation failed: %v", err)
	}

	pop.Initialize("random", 25)
	if pop.Size() != 25 {
		t.Errorf("Initialized size [%v] is not expected value [25]", pop.Size())
	}

	pop.Initialize("random", 0)
	if pop.Size() != 0 {
		t.Errorf("n=0 should yield an empty population, got %d", pop.Size())
	}

	pop.Initialize("random", -3)
	if pop.Size() != 0 {
		t.Errorf("Negative n should yield an empty population, got %d", pop.Size())
	}
}

func TestInitializeUnknownMethodDefaultsToRandom(t *test.T) {
	InitRNG(42)
	pop, err := NewPopulation(makeSumConfig())
	if err != nil {
		t.Fatalf("NewPopulation failed: %v", err)
	}

	pop.Initialize("gradient", 5)
	if pop.Size() != 5 {
		t.Errorf("Unknown init method should default to random, got size %d", pop.Size())
	}
}

func TestInitializeBounds(t *test.T) {
	InitRNG(42)
	config := makeSumConfig()
	pop, _ := NewPopulation(config)
	pop.Initialize("random", 50)

	for _, ind := range pop.Individuals {
		for _, v := range ind.Values {
			if v < config.Interval.Min || v > config.Interval.Max {
				t.Fatalf("Value %v outside interval [%v, %v]", v, config.Interval.Min, config.Interval.Max)
			}
		}
	}
}

func TestInitializeCallsFitnessPerIndividual(t *test.T) {
	InitRNG(42)
	calls := 0
	config := makeSumConfig()
	config.Fitness = func(ind *Individual) float64 {
		calls++
		return FitnessSum(ind)
	}

	pop, _ := NewPopulation(config)
	pop.Initialize("random", 7)

	if calls != 7 {
		t.Errorf("Fitness called %d times for 7 individuals", calls)
	}
}

func TestHasIndividual(t *test.T) {
	config := makeSumConfig()
	pop, _ := NewPopulation(config)

	member := NewIndividualFromValues(config, []float64{1, 2, 3})
	if err := pop.Add(member); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if !pop.HasIndividual(NewIndividualFromValues(config, []float64{1, 2, 3})) {
		t.Errorf("HasIndividual false for identical content")
	}
	if pop.HasIndividual(NewIndividualFromValues(config, []float64{1, 2, 4})) {
		t.Errorf("HasIndividual true for different content")
	}
	if pop.HasIndividual(nil) {
		t.Errorf("HasIndividual true for nil")
	}
}

func TestAddNilIndividual(t *test.T) {
	pop, _ := NewPopulation(makeSumConfig())

	var argErr *ArgumentError
	if err := pop.Add(nil); err == nil || !errors.As(err, &argErr) {
		t.Errorf("Expected ArgumentError for nil Individual, got %v", err)
	}
}

func TestBest(t *test.T) {
	pop := makeFitnessPop(t, 2, 7, 7, 1)

	best := pop.Best()
	if best == nil || best.Fitness != 7 {
		t.Fatalf("Best returned %v, expected fitness 7", best)
	}
	if best != pop.Individuals[1] {
		t.Errorf("Ties should resolve to the earliest member")
	}

	empty, _ := NewPopulation(makeSumConfig())
	if empty.Best() != nil {
		t.Errorf("Best of empty population should be nil")
	}
}

func TestNewPopulationFromConfig(t *test.T) {
	InitRNG(42)
	popConfig := &PopulationConfig{
		Size:    6,
		Fitness: "sum",
		IndividualConfig: &IndividualConfig{
			VariableNames: []string{"a", "b"},
			Interval:      &Interval{Min: 0, Max: 5},
			Encoding:      "INT",
		},
	}

	pop, err := NewPopulationFromConfig(popConfig)
	if err != nil {
		t.Fatalf("NewPopulationFromConfig failed: %v", err)
	}
	if pop.Size() != 6 {
		t.Errorf("Size [%v] is not expected value [6]", pop.Size())
	}

	popConfig.Fitness = "unheard_of"
	popConfig.IndividualConfig.Fitness = nil
	var confErr *ConfigurationError
	if _, err := NewPopulationFromConfig(popConfig); err == nil || !errors.As(err, &confErr) {
		t.Errorf("Expected ConfigurationError for unknown fitness name, got %v", err)
	}
}
