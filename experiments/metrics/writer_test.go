package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriteMatchupRecords(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "writer")
	require.NoError(t, err)

	err = w.WriteMatchupRecords([]MatchupRecord{
		{
			ID:        1,
			Name:      "armor push",
			Terrain:   "desert",
			Attackers: "2xHeavyArmor",
			Defenders: "1xInfantry",
			TrialMetric: TrialMetric{
				Goroutines:   4,
				Trials:       8,
				AttackerWins: 6,
				Rounds:       20,
				Evaluations:  100,
				Duration:     time.Second,
			},
		},
	})
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(w.Dir(), "matchups.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Equal(t, []string{"id", "name", "terrain", "attackers", "defenders", "goroutines", "trials", "attacker_wins", "win_rate", "mean_rounds", "evaluations", "duration"}, rows[0])
	require.Equal(t, []string{"1", "armor push", "desert", "2xHeavyArmor", "1xInfantry", "4", "8", "6", "0.7500", "2.50", "100", "1s"}, rows[1])
}

func TestCollector(t *testing.T) {
	t.Run("aggregating trials", func(t *testing.T) {
		c := NewCollector()
		c.Start(2)
		c.AddTrial(true, 3, 10)
		c.AddTrial(false, 5, 4)

		m := c.Complete()

		require.Equal(t, 2, m.Trials)
		require.Equal(t, 1, m.AttackerWins)
		require.Equal(t, 0.5, m.WinRate())
		require.Equal(t, 4.0, m.MeanRounds())
		require.Equal(t, 14, m.Evaluations)
		require.Equal(t, 2, m.Goroutines)
	})

	t.Run("empty batches", func(t *testing.T) {
		m := TrialMetric{}

		require.Zero(t, m.WinRate())
		require.Zero(t, m.MeanRounds())
	})
}
