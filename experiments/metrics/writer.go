package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// MatchupRecord is one row of the matchup report.
type MatchupRecord struct {
	ID        int
	Name      string
	Terrain   string
	Attackers string
	Defenders string
	TrialMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped directory under root for one experiment.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir is the directory records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatchupRecords(records []MatchupRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "matchups.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create matchup records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	header := []string{"id", "name", "terrain", "attackers", "defenders", "goroutines", "trials", "attacker_wins", "win_rate", "mean_rounds", "evaluations", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write matchup records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Name,
			record.Terrain,
			record.Attackers,
			record.Defenders,
			strconv.Itoa(record.Goroutines),
			strconv.Itoa(record.Trials),
			strconv.Itoa(record.AttackerWins),
			strconv.FormatFloat(record.WinRate(), 'f', 4, 64),
			strconv.FormatFloat(record.MeanRounds(), 'f', 2, 64),
			strconv.Itoa(record.Evaluations),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write matchup record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush matchup records: %w", err)
	}
	return nil
}
