package experiments

import (
	"fmt"

	"battlesim/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// RunScenario simulates every matchup of the scenario and, when outDir is
// set, writes the results to a timestamped directory under outDir. Options
// override the scenario's own batch settings.
func RunScenario(name string, s *Scenario, outDir string, options ...Option) ([]metrics.MatchupRecord, error) {
	options = append(s.Options(), options...)
	records := []metrics.MatchupRecord{}

	log.Info().Msgf("starting scenario %s with %d matchups...", name, len(s.Matchups))

	for i, m := range s.Matchups {
		attackers, defenders, err := s.Rosters(m)
		if err != nil {
			return nil, err
		}

		log.Info().Msgf("starting matchup %q: %s vs %s in %s...", m.Name, attackers, defenders, m.Terrain)

		_, metric, err := SimulateBattleResults(attackers, defenders, m.Terrain, options...)
		if err != nil {
			return nil, fmt.Errorf("matchup %q: %w", m.Name, err)
		}
		records = append(records, metrics.MatchupRecord{
			ID:          i + 1,
			Name:        m.Name,
			Terrain:     m.Terrain.String(),
			Attackers:   attackers.String(),
			Defenders:   defenders.String(),
			TrialMetric: metric,
		})

		log.Info().Msgf("completed matchup %q with attacker win rate %.4f over %d trials in %s", m.Name, metric.WinRate(), metric.Trials, metric.Duration)
	}

	log.Info().Msgf("completed scenario %s", name)

	if outDir == "" {
		return records, nil
	}

	// Store experiment results
	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteMatchupRecords(records)
	if err != nil {
		return nil, fmt.Errorf("failed to write matchup records: %w", err)
	}
	log.Info().Msgf("stored matchup records in %s", writer.Dir())

	return records, nil
}
