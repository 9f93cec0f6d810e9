package evolve

import (
	test "testing"
)

func TestSelectBestOrderAndTies(t *test.T) {
	pop := makeFitnessPop(t, 1, 5, 3, 5)

	parents := pop.GetParents("best", 2, nil)
	if len(parents) != 2 {
		t.Fatalf("Expected 2 parents, got %d", len(parents))
	}
	if parents[0] != pop.Individuals[1] || parents[1] != pop.Individuals[3] {
		t.Errorf("Best selection broke stable descending order: %v", parents)
	}

	all := pop.GetParents("best", 10, nil)
	if len(all) != 4 {
		t.Errorf("Overlong request should return full sorted population, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Fitness > all[i-1].Fitness {
			t.Errorf("Best selection not in non-increasing fitness order at %d", i)
		}
	}
}

func TestSelectRandom(t *test.T) {
	InitRNG(42)
	pop := makeFitnessPop(t, 1, 2, 3)

	parents := pop.GetParents("random", 7, nil)
	if len(parents) != 7 {
		t.Fatalf("Expected 7 parents, got %d", len(parents))
	}
	for _, parent := range parents {
		if !pop.HasIndividual(parent) {
			t.Errorf("Random selection fabricated an individual: %v", parent)
		}
	}
}

func TestSelectUnknownMethod(t *test.T) {
	pop := makeFitnessPop(t, 1, 2, 3)

	if parents := pop.GetParents("tournament", 3, nil); len(parents) != 0 {
		t.Errorf("Unknown method should select nothing, got %d", len(parents))
	}
}

func TestRouletteZeroWheel(t *test.T) {
	InitRNG(42)
	pop := makeFitnessPop(t, -5, 0, -1)

	for _, method := range []string{"with_replacement", "without_replacement", "universal"} {
		parents := pop.GetParents("roulette", 4, &SelectOptions{RouletteMethod: method})
		if len(parents) != 0 {
			t.Errorf("Zero wheel should select nothing under %q, got %d", method, len(parents))
		}
	}
}

func TestRouletteSinglePositiveWeight(t *test.T) {
	InitRNG(42)
	pop := makeFitnessPop(t, 0, 4, 0)

	parents := pop.GetParents("roulette", 5, nil)
	if len(parents) != 5 {
		t.Fatalf("Expected 5 parents, got %d", len(parents))
	}
	for _, parent := range parents {
		if parent != pop.Individuals[1] {
			t.Errorf("Only positive-weight individual should ever be selected")
		}
	}
}

func TestRouletteStatisticalBias(t *test.T) {
	InitRNG(42)
	pop := makeFitnessPop(t, 9, 1)

	parents := pop.GetParents("roulette", 2000, nil)
	high := 0
	for _, parent := range parents {
		if parent == pop.Individuals[0] {
			high++
		}
	}
	// Expected ~1800 of 2000; anything below half signals broken weighting.
	if high <= 1000 {
		t.Errorf("High-fitness individual selected only %d of 2000 draws", high)
	}
}

func TestRouletteWithoutReplacement(t *test.T) {
	InitRNG(42)
	pop := makeFitnessPop(t, 2, 0)

	parents := pop.GetParents("roulette", 2, &SelectOptions{RouletteMethod: "without_replacement"})
	if len(parents) != 2 {
		t.Fatalf("Expected 2 parents, got %d", len(parents))
	}
	if parents[0] != pop.Individuals[0] || parents[1] != pop.Individuals[0] {
		t.Errorf("Sole weighted individual should win both draws: %v", parents)
	}
}

func TestRouletteWithoutReplacementExhaustedWheel(t *test.T) {
	InitRNG(42)
	pop := makeFitnessPop(t, 1, 0)

	parents := pop.GetParents("roulette", 3, &SelectOptions{RouletteMethod: "without_replacement"})
	if len(parents) != 3 {
		t.Fatalf("Exhausted wheel should still fill all %d draws, got %d", 3, len(parents))
	}
	if parents[0] != pop.Individuals[0] {
		t.Errorf("First draw must take the only weighted individual")
	}
	for _, parent := range parents {
		if !pop.HasIndividual(parent) {
			t.Errorf("Fallback draws fabricated an individual")
		}
	}
}

func TestRemainderDeterministicCopies(t *test.T) {
	InitRNG(42)
	pop := makeFitnessPop(t, 2, 1)

	parents := pop.GetParents("roulette", 3, &SelectOptions{RouletteMethod: "remainder_with_replacement"})
	if len(parents) != 3 {
		t.Fatalf("Expected 3 parents, got %d", len(parents))
	}
	if parents[0] != pop.Individuals[0] || parents[1] != pop.Individuals[0] || parents[2] != pop.Individuals[1] {
		t.Errorf("Integer fitness should yield exactly floor(fitness) copies in order: %v", parents)
	}

	// Remainder wheel is empty; extra slots stay unfilled rather than erroring.
	short := pop.GetParents("roulette", 5, &SelectOptions{RouletteMethod: "remainder_with_replacement"})
	if len(short) != 3 {
		t.Errorf("Zero remainder wheel should return only deterministic copies, got %d", len(short))
	}
}

func TestRemainderFractionalFill(t *test.T) {
	InitRNG(42)
	pop := makeFitnessPop(t, 1.5, 0.5)

	parents := pop.GetParents("roulette", 2, &SelectOptions{RouletteMethod: "remainder_without_replacement"})
	if len(parents) != 2 {
		t.Fatalf("Expected 2 parents, got %d", len(parents))
	}
	if parents[0] != pop.Individuals[0] {
		t.Errorf("Deterministic copy of the 1.5-fitness individual must come first")
	}
	if !pop.HasIndividual(parents[1]) {
		t.Errorf("Fractional fill fabricated an individual")
	}
}

func TestUniversalEqualFitness(t *test.T) {
	InitRNG(42)
	pop := makeFitnessPop(t, 1, 1, 1, 1)

	parents := pop.GetParents("roulette", 4, &SelectOptions{RouletteMethod: "universal"})
	if len(parents) != 4 {
		t.Fatalf("Expected 4 parents, got %d", len(parents))
	}
	for i, parent := range parents {
		if parent != pop.Individuals[i] {
			t.Errorf("Equal-fitness universal sampling should select each individual once, in order")
		}
	}
}

func TestUniversalProportions(t *test.T) {
	InitRNG(42)
	pop := makeFitnessPop(t, 3, 1)

	parents := pop.GetParents("roulette", 4, &SelectOptions{RouletteMethod: "universal"})
	if len(parents) != 4 {
		t.Fatalf("Expected 4 parents, got %d", len(parents))
	}
	high := 0
	for _, parent := range parents {
		if parent == pop.Individuals[0] {
			high++
		}
	}
	// step is exactly 1, so the 3:1 wheel always lands 3 pointers on the
	// first individual regardless of the start offset.
	if high != 3 || parents[3] != pop.Individuals[1] {
		t.Errorf("Universal sampling counts [%d of 4] do not track fitness proportions", high)
	}
}

func TestUniversalShuffleOrder(t *test.T) {
	InitRNG(42)
	pop := makeFitnessPop(t, 1, 1)

	parents := pop.GetParents("roulette", 2, &SelectOptions{RouletteMethod: "universal", ShuffleOrder: true})
	if len(parents) != 2 {
		t.Fatalf("Expected 2 parents, got %d", len(parents))
	}
	if parents[0] == parents[1] {
		t.Errorf("Equal weights with step 1 must select each individual once even when shuffled")
	}
}

func TestSelectFromEmptyPopulation(t *test.T) {
	pop, _ := NewPopulation(makeSumConfig())

	for _, method := range []string{"best", "random", "roulette"} {
		if parents := pop.GetParents(method, 3, nil); len(parents) != 0 {
			t.Errorf("Selection from empty population under %q returned %d", method, len(parents))
		}
	}
}
