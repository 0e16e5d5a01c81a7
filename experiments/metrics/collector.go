package metrics

import (
	"sync/atomic"
	"time"
)

// TrialMetric summarises a batch of independent battles between two rosters.
type TrialMetric struct {
	Goroutines   int
	Trials       int
	AttackerWins int
	Rounds       int // Summed over all trials
	Evaluations  int // Casualty candidates scored, summed over all trials
	Duration     time.Duration
}

// WinRate is the fraction of trials won by the attacker.
func (m TrialMetric) WinRate() float64 {
	if m.Trials == 0 {
		return 0
	}
	return float64(m.AttackerWins) / float64(m.Trials)
}

// MeanRounds is the average battle length.
func (m TrialMetric) MeanRounds() float64 {
	if m.Trials == 0 {
		return 0
	}
	return float64(m.Rounds) / float64(m.Trials)
}

type Collector interface {
	Start(goroutines int)
	AddTrial(attackerWon bool, rounds int, evaluations int64)
	Complete() TrialMetric
}

type collector struct {
	goroutines   int
	startTime    time.Time
	trials       atomic.Int64
	attackerWins atomic.Int64
	rounds       atomic.Int64
	evaluations  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
}

func (m *collector) AddTrial(attackerWon bool, rounds int, evaluations int64) {
	m.trials.Add(1)
	if attackerWon {
		m.attackerWins.Add(1)
	}
	m.rounds.Add(int64(rounds))
	m.evaluations.Add(evaluations)
}

func (m *collector) Complete() TrialMetric {
	return TrialMetric{
		Goroutines:   m.goroutines,
		Trials:       int(m.trials.Load()),
		AttackerWins: int(m.attackerWins.Load()),
		Rounds:       int(m.rounds.Load()),
		Evaluations:  int(m.evaluations.Load()),
		Duration:     time.Since(m.startTime),
	}
}
