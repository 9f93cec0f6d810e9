package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	ev "nickandperla.net/evolve"

	"github.com/BurntSushi/toml"
)

var toolConfigPath *string = flag.String("config", "./config.toml", "The config file for evolve tools to use. Defaults to './config.toml'")
var populationConfigPath *string = flag.String("popconfig", "./pop.toml", "The population config describing the problem. Defaults to './pop.toml'")
var popId *uint = flag.Uint("popid", 1, "The id of the population you'd like to progress")

func main() {
	flag.Parse()

	conffile, err := os.Open(*toolConfigPath)
	if err != nil {
		log.Fatalf("Unable to load evolve config: %v", err)
	}
	var toolConfig ev.ToolConfig
	if _, err = toml.NewDecoder(conffile).Decode(&toolConfig); err != nil {
		log.Fatalf("Failed to unmarshal tool config: %v", err)
	}
	conffile.Close()

	popfile, err := os.Open(*populationConfigPath)
	if err != nil {
		log.Fatalf("Unable to load population config: %v", err)
	}
	var popConfig ev.PopulationConfig
	if _, err = toml.NewDecoder(popfile).Decode(&popConfig); err != nil {
		log.Fatalf("Failed to unmarshal population config: %v", err)
	}
	popfile.Close()

	if popConfig.IndividualConfig == nil {
		log.Fatalf("Population config is missing the individual section")
	}
	if fn, ok := ev.LookupFitness(popConfig.Fitness); ok {
		popConfig.IndividualConfig.Fitness = fn
	} else {
		log.Fatalf("Unknown fitness function %q", popConfig.Fitness)
	}

	ev.InitRNG(toolConfig.Seed)

	persist, err := ev.NewPersistence(toolConfig.Persistence)
	if err != nil {
		log.Fatalf("Failed to create or initialize Persistence: %v", err)
	}
	defer persist.Shutdown()

	pop, err := persist.LoadPopulation(*popId, popConfig.IndividualConfig)
	if err != nil {
		log.Fatalf("Unable to load population from DB: %v", err)
	}

	engineConfig := toolConfig.Engine
	if engineConfig == nil {
		log.Fatalf("Tool config is missing the engine section")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	engine := ev.NewGenerationEngine(pop, engineConfig, persist)
	if err := engine.Run(ctx); err != nil {
		log.Fatalf("Generation run failed: %v", err)
	}

	m := pop.Metrics()
	log.Printf("Population %d at generation %d: count=%d best=%v mean=%v diversity=%v",
		pop.ID, pop.Generation, m.Count, m.BestFitness, m.MeanFitness, m.Diversity)
}
