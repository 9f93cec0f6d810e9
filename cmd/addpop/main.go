package main

import (
	"flag"
	"log"
	"os"

	ev "nickandperla.net/evolve"

	"github.com/BurntSushi/toml"
)

var populationConfigPath *string = flag.String("popconfig", "./pop.toml", "The population config to use when creating the population. Defaults to './pop.toml'")
var toolConfigPath *string = flag.String("config", "./config.toml", "The config file for evolve tools to use. Defaults to './config.toml'")

func main() {
	flag.Parse()

	toolConfig := loadToolConfig(*toolConfigPath)
	popConfig := loadPopConfig(*populationConfigPath)

	ev.InitRNG(toolConfig.Seed)

	pop, err := ev.NewPopulationFromConfig(popConfig)
	if err != nil {
		log.Fatalf("Failed to create population: %v", err)
	}

	persist, err := ev.NewPersistence(toolConfig.Persistence)
	if err != nil {
		log.Fatalf("Failed to create or initialize Persistence: %v", err)
	}
	defer persist.Shutdown()

	id, err := persist.Create(pop)
	if err != nil {
		log.Fatalf("Failed to persist population: %v", err)
	}

	m := pop.Metrics()
	log.Printf("Created population %d: count=%d best=%v mean=%v", id, m.Count, m.BestFitness, m.MeanFitness)
}

func loadToolConfig(path string) *ev.ToolConfig {
	conffile, err := os.Open(path)
	if err != nil {
		log.Fatalf("Unable to load evolve config: %v", err)
	}
	defer conffile.Close()

	var toolConfig ev.ToolConfig
	if _, err = toml.NewDecoder(conffile).Decode(&toolConfig); err != nil {
		log.Fatalf("Failed to unmarshal tool config: %v", err)
	}
	return &toolConfig
}

func loadPopConfig(path string) *ev.PopulationConfig {
	popfile, err := os.Open(path)
	if err != nil {
		log.Fatalf("Unable to load population config: %v", err)
	}
	defer popfile.Close()

	var popConfig ev.PopulationConfig
	if _, err = toml.NewDecoder(popfile).Decode(&popConfig); err != nil {
		log.Fatalf("Failed to unmarshal population config: %v", err)
	}
	return &popConfig
}
