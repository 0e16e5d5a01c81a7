package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"battlesim/experiments"
	"battlesim/game"
	"battlesim/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	scenario := flag.String("scenario", "", "Path to a YAML scenario file")
	trials := flag.Int("trials", 0, "Battles per matchup (overrides the scenario)")
	goroutines := flag.Int("goroutines", 0, "Goroutines running trials in parallel (overrides the scenario)")
	seed := flag.Uint64("seed", 0, "Seed for reproducible trials (0 picks one from the clock)")
	out := flag.String("out", "results", "Directory for CSV reports, empty to skip")
	logLevel := flag.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	units := flag.Bool("units", false, "List the unit catalog and exit")
	flag.Parse()

	logger.Init(*logLevel)

	if *units {
		for _, name := range game.Names() {
			p, _ := game.Lookup(name)
			fmt.Println(game.Describe(p))
		}
		return
	}

	if *scenario == "" {
		fmt.Fprintln(os.Stderr, "missing -scenario")
		flag.Usage()
		os.Exit(2)
	}

	s, err := experiments.LoadScenario(*scenario)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load scenario")
	}

	options := []experiments.Option{
		experiments.WithTrials(*trials),
		experiments.WithGoroutines(*goroutines),
	}
	if *seed != 0 {
		options = append(options, experiments.WithSeed(*seed))
	}

	name := strings.TrimSuffix(filepath.Base(*scenario), filepath.Ext(*scenario))
	records, err := experiments.RunScenario(name, s, *out, options...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to run scenario")
	}

	for _, r := range records {
		fmt.Printf("%-30s %-16s attacker win rate %.4f (%d/%d, %.2f rounds)\n", r.Name, r.Terrain, r.WinRate(), r.AttackerWins, r.Trials, r.MeanRounds())
	}
}
