package main

import (
	"fmt"
	"os"

	"github.com/tatianab/inner-demons/internal/config"
	"github.com/tatianab/inner-demons/internal/engine"
	"github.com/tatianab/inner-demons/internal/tui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so only log when a file is configured.
	logger, closeLog, err := cfg.OpenLogger(nil)
	if err != nil {
		fmt.Printf("Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	eng, err := engine.NewEngine(cfg.Rules, engine.WithSeed(cfg.Seed), engine.WithLogger(logger))
	if err != nil {
		fmt.Printf("Error creating engine: %v\n", err)
		os.Exit(1)
	}

	setup := tui.Setup{Demons: cfg.Demons, StartingDeck: cfg.StartingDeck}
	if err := tui.Run(eng, setup); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
