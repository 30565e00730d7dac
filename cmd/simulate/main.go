package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tatianab/inner-demons/internal/config"
	"github.com/tatianab/inner-demons/internal/engine"
	"github.com/tatianab/inner-demons/internal/pilot"
)

func main() {
	maxTurns := flag.Int("turns", 10, "maximum number of turns to play")
	pilotName := flag.String("pilot", "greedy", "who plays: greedy or gemini")
	seed := flag.Int64("seed", 0, "shuffle seed (overrides settings when non-zero)")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	logger, closeLog, err := cfg.OpenLogger(os.Stderr)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	eng, err := engine.NewEngine(cfg.Rules, engine.WithSeed(cfg.Seed), engine.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	var p pilot.Pilot
	switch *pilotName {
	case "greedy":
		p = pilot.Greedy{}
	case "gemini":
		g, err := pilot.NewGemini(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("Failed to create Gemini pilot: %v", err)
		}
		defer g.Close()
		p = g
	default:
		log.Fatalf("Unknown pilot %q", *pilotName)
	}

	st, _, err := eng.NewGame(cfg.Demons, cfg.StartingDeck)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	res, err := pilot.Run(ctx, eng, st, p, *maxTurns, logger)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	out, err := st.Snapshot().YAML()
	if err != nil {
		log.Fatalf("Failed to render state: %v", err)
	}
	fmt.Printf("Turns: %d, Actions: %d, Rejected: %d\n", res.Turns, res.Actions, res.Rejected)
	if res.Lost {
		fmt.Println("Game Ended: Player Lost!")
	} else {
		fmt.Println("Game Ended: Player Survived!")
	}
	fmt.Printf("\n%s", out)
}
