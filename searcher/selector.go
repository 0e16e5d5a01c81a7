package searcher

import (
	"battlesim/game"
)

type Option func(s *Selector)

// Selector chooses which units die for both sides of a round.
//
// Every candidate is scored with a nested simulation against the full
// opposing roster, so one bucket costs O(C(n,k) * EvaluationTrials) passes.
type Selector struct {
	terrain  game.Terrain
	roller   game.Roller
	evaluate game.Evaluator
	metrics  MetricsCollector
}

func WithEvaluator(evaluate game.Evaluator) Option {
	return func(s *Selector) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics(metrics MetricsCollector) Option {
	return func(s *Selector) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

func NewSelector(t game.Terrain, r game.Roller, options ...Option) *Selector {
	s := &Selector{ // Default values
		terrain:  t,
		roller:   r,
		evaluate: game.Evaluate,
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Losses picks the attacker and defender casualties for category c.
//
// A candidate's score is how badly it performs when it fights the whole
// opposing roster, so the general bucket gives up the weakest units and the
// restricted buckets, where the firing side chooses, take the strongest.
func (s *Selector) Losses(attackTargets, defendTargets []*game.Unit, attackLosses, defendLosses int, c game.Category) (attackerLosses, defenderLosses []*game.Unit) {
	attackerLosses = Select(attackTargets, attackLosses, c, func(candidate []*game.Unit) int {
		s.metrics.AddEvaluation()
		return -s.evaluate(candidate, defendTargets, s.terrain, s.roller)
	})
	defenderLosses = Select(defendTargets, defendLosses, c, func(candidate []*game.Unit) int {
		s.metrics.AddEvaluation()
		return s.evaluate(attackTargets, candidate, s.terrain, s.roller)
	})
	return attackerLosses, defenderLosses
}

// Buckets is the order casualty buckets are filled in each round.
var Buckets = []game.Category{game.GroundAndNaval, game.VehicleOnly, game.General}

// RoundLosses fills every bucket in order, marking each bucket's picks dead
// before the next so no unit is chosen twice. Dead markers are left set.
func (s *Selector) RoundLosses(attackTargets, defendTargets []*game.Unit, toAttackers, toDefenders game.RoundResult) (attackerLosses, defenderLosses []*game.Unit) {
	for _, c := range Buckets {
		a, d := s.Losses(attackTargets, defendTargets, toAttackers.Of(c), toDefenders.Of(c), c)
		MarkDead(a)
		MarkDead(d)
		attackerLosses = append(attackerLosses, a...)
		defenderLosses = append(defenderLosses, d...)
	}
	return attackerLosses, defenderLosses
}
