package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	ev "nickandperla.net/evolve"

	"github.com/BurntSushi/toml"
)

var toolConfigPath *string = flag.String("config", "./config.toml", "The config file for evolve tools to use. Defaults to './config.toml'")
var populationConfigPath *string = flag.String("popconfig", "./pop.toml", "The population config describing the problem. Defaults to './pop.toml'")
var popId *uint = flag.Uint("popid", 1, "The id of the population to report on")

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

	persist, err := ev.NewPersistence(toolConfig.Persistence)
	if err != nil {
		log.Fatalf("Failed to create or initialize Persistence: %v", err)
	}
	defer persist.Shutdown()

	pop, err := persist.LoadPopulation(*popId, popConfig.IndividualConfig)
	if err != nil {
		log.Fatalf("Unable to load population from DB: %v", err)
	}

	best := pop.Best()
	if best == nil {
		log.Fatalf("Population %d is empty", pop.ID)
	}

	fmt.Printf("Population %d, generation %d\n", pop.ID, pop.Generation)
	fmt.Printf("Best individual: %s\n", best)

	stats, err := persist.LoadStats(pop.ID)
	if err != nil {
		log.Fatalf("Unable to load run history: %v", err)
	}
	for _, stat := range stats {
		fmt.Printf("generation %d: count=%d best=%v mean=%v diversity=%v\n",
			stat.Generation, stat.Count, stat.BestFitness, stat.MeanFitness, stat.Diversity)
	}
}
