package experiments

import (
	"fmt"
	"sync"
	"time"

	"battlesim/engine"
	"battlesim/experiments/metrics"
	"battlesim/game"
	"battlesim/meta"
	"battlesim/searcher"

	"github.com/rs/zerolog/log"
)

type Option func(r *runner)

// runner holds the settings of one batch of trials.
type runner struct {
	trials     int
	goroutines int
	seed       uint64
	seeded     bool
	maxRounds  int
	collector  metrics.Collector // Counts this batch only
	shared     metrics.Collector // Caller's collector, fed every trial as well
}

func WithTrials(trials int) Option {
	return func(r *runner) {
		if trials > 0 {
			r.trials = trials
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(r *runner) {
		if goroutines > 0 {
			r.goroutines = goroutines
		}
	}
}

// WithSeed makes a batch reproducible: trial i rolls a die seeded with seed+i.
func WithSeed(seed uint64) Option {
	return func(r *runner) {
		r.seed = seed
		r.seeded = true
	}
}

func WithMaxRounds(rounds int) Option {
	return func(r *runner) {
		if rounds > 0 {
			r.maxRounds = rounds
		}
	}
}

// WithCollector reports every trial to collector as well. The collector may be
// shared between batches; returned rates only count the current batch.
func WithCollector(collector metrics.Collector) Option {
	return func(r *runner) {
		if collector != nil {
			r.shared = collector
		}
	}
}

func newRunner(options ...Option) *runner {
	r := &runner{ // Default values
		trials:     meta.TRIALS,
		goroutines: meta.GO_ROUTINES,
		maxRounds:  meta.MAX_ROUNDS,
		collector:  metrics.NewCollector(),
	}
	for _, option := range options {
		option(r)
	}
	if !r.seeded {
		r.seed = uint64(time.Now().UnixNano())
	}
	return r
}

// SimulateBattleResults fights the matchup in independent trials spread over
// a pool of goroutines and returns the fraction the attacker won. Every trial
// works on its own deep copy of both rosters, so the inputs are left untouched.
func SimulateBattleResults(attackers, defenders game.Roster, t game.Terrain, options ...Option) (float64, metrics.TrialMetric, error) {
	if err := attackers.Validate(); err != nil {
		return 0, metrics.TrialMetric{}, fmt.Errorf("invalid attackers: %w", err)
	}
	if err := defenders.Validate(); err != nil {
		return 0, metrics.TrialMetric{}, fmt.Errorf("invalid defenders: %w", err)
	}

	r := newRunner(options...)
	r.collector.Start(r.goroutines)
	if r.shared != nil {
		r.shared.Start(r.goroutines)
	}

	task := make(chan int, r.trials)
	for i := 0; i < r.trials; i++ {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < r.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for trial := range task {
				r.runTrial(attackers, defenders, t, trial)
			}
		}()
	}

	wg.Wait()

	metric := r.collector.Complete()
	log.Debug().Msgf("simulated %d trials of %s vs %s in %s: attacker win rate %.4f", metric.Trials, attackers, defenders, t, metric.WinRate())
	return metric.WinRate(), metric, nil
}

func (r *runner) runTrial(attackers, defenders game.Roster, t game.Terrain, trial int) {
	search := searcher.NewMetricsCollector()
	search.Start()

	b, err := engine.NewBattle(
		attackers.Clone(),
		defenders.Clone(),
		t,
		game.NewD12(r.seed+uint64(trial)),
		engine.WithMaxRounds(r.maxRounds),
		engine.WithMetrics(search),
	)
	if err != nil {
		// Both rosters were validated before any trial started
		panic(fmt.Sprintf("failed to create battle: %v", err))
	}

	won := b.Run() == engine.AttackerVictory
	evaluations := search.Complete().Evaluations
	r.collector.AddTrial(won, b.Rounds(), evaluations)
	if r.shared != nil {
		r.shared.AddTrial(won, b.Rounds(), evaluations)
	}
}

// CompareArmiesInTerrain rates how well first does against second in t. Half
// of the trials put first on the attack and half put second on the attack;
// the two attacker win rates are folded into first's overall win rate.
// Without WithTrials it runs meta.COMPARE_TRIALS battles in total.
func CompareArmiesInTerrain(first, second game.Roster, t game.Terrain, options ...Option) (float64, error) {
	r := newRunner(append([]Option{WithTrials(meta.COMPARE_TRIALS)}, options...)...)
	half := max(r.trials/2, 1)

	base := append([]Option{}, options...)
	firstRate, _, err := SimulateBattleResults(first, second, t, append(base, WithTrials(half), WithSeed(r.seed))...)
	if err != nil {
		return 0, err
	}
	secondRate, _, err := SimulateBattleResults(second, first, t, append(base, WithTrials(half), WithSeed(r.seed+uint64(half)))...)
	if err != nil {
		return 0, err
	}
	return (firstRate + 1 - secondRate) / 2, nil
}
