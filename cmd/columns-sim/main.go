// Command columns-sim plays many games with a simple bot and reports score
// statistics.
package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/colorcolumns/config"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	games := flag.Int("games", 200, "The number of games to play.")
	workers := flag.Int("workers", runtime.NumCPU(), "The number of games played concurrently.")
	seed := flag.Uint64("seed", 1, "The seed of the first game; game i uses seed+i.")
	budget := flag.Uint64("ticks", 500_000, "The tick budget of a single game.")
	progress := flag.Bool("progress", true, "Show a progress bar.")
	logMode := flag.String("log", string(config.ModeSilence), "Log mode of the simulated games: dev, prod or silence.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if *games < 1 || *workers < 1 || *budget < 1 {
		log.Fatal("games, workers and ticks must be positive")
	}

	sim := &Simulator{
		Config:   cfg,
		Workers:  min(*workers, *games),
		Budget:   *budget,
		Progress: *progress,
		Logger:   config.NewLogger(config.LogMode(*logMode)),
	}

	log.Printf("Simulating %d games on %d workers...\n", *games, sim.Workers)
	results, bar := sim.Run(*games, *seed)
	used := time.Since(bar.StartTime())
	log.Println("Simulation finished.")

	report := NewReport(results, *games, sim.Workers, *seed, *budget, used)
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
}
