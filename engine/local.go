package engine

import (
	"fmt"

	"battlesim/game"
	"battlesim/meta"
	"battlesim/searcher"

	"github.com/rs/zerolog/log"
)

type Option func(b *Battle)

// Battle fights two rosters on one terrain. The original rosters are kept for
// reporting; Attackers and Defenders shrink as casualties are removed. Units
// are shared with the caller and mutated, so clone rosters per battle.
type Battle struct {
	OriginalAttackers game.Roster
	OriginalDefenders game.Roster
	Attackers         game.Roster
	Defenders         game.Roster
	Terrain           game.Terrain

	roller    game.Roller
	selector  *searcher.Selector
	metrics   searcher.MetricsCollector
	maxRounds int
	rounds    int
}

func WithMaxRounds(rounds int) Option {
	return func(b *Battle) {
		if rounds > 0 {
			b.maxRounds = rounds
		}
	}
}

func WithMetrics(metrics searcher.MetricsCollector) Option {
	return func(b *Battle) {
		if metrics != nil {
			b.metrics = metrics
		}
	}
}

// NewBattle validates both rosters and prepares a battle.
func NewBattle(attackers, defenders game.Roster, t game.Terrain, r game.Roller, options ...Option) (*Battle, error) {
	if err := attackers.Validate(); err != nil {
		return nil, fmt.Errorf("invalid attackers: %w", err)
	}
	if err := defenders.Validate(); err != nil {
		return nil, fmt.Errorf("invalid defenders: %w", err)
	}
	if r == nil {
		r = game.NewRandomD12()
	}

	b := &Battle{ // Default values
		OriginalAttackers: attackers,
		OriginalDefenders: defenders,
		Attackers:         append(game.Roster(nil), attackers...),
		Defenders:         append(game.Roster(nil), defenders...),
		Terrain:           t,
		roller:            r,
		metrics:           searcher.NewNoMetricsCollector(),
		maxRounds:         meta.MAX_ROUNDS,
	}
	for _, option := range options {
		option(b)
	}
	b.selector = searcher.NewSelector(t, r, searcher.WithMetrics(b.metrics))
	return b, nil
}

// Rounds returns how many rounds have been fought, counting the opening
// first and second strike as one.
func (b *Battle) Rounds() int {
	return b.rounds
}

// Run fights the opening round then general rounds until a side is gone.
func (b *Battle) Run() Verdict {
	airBattle := b.Attackers.All(game.Aircraft) || b.Defenders.All(game.Aircraft)

	b.logSides("battle start")
	b.FirstStrike()
	b.SecondStrike()
	b.rounds++
	b.logSides("after opening round")

	for len(b.Attackers) > 0 && len(b.Defenders) > 0 {
		if b.rounds >= b.maxRounds {
			log.Warn().Msgf("battle stopped after %d rounds with %d attackers and %d defenders left", b.rounds, len(b.Attackers), len(b.Defenders))
			break
		}
		b.Round()
		b.logSides(fmt.Sprintf("after round %d", b.rounds))
	}

	verdict := decide(airBattle, b.Attackers, b.Defenders)
	log.Debug().Msgf("battle over after %d rounds: %s victory", b.rounds, verdict)
	return verdict
}

// FirstStrike lets only first-strike units fire; anyone may die.
func (b *Battle) FirstStrike() {
	attackers := b.Attackers.Filter(func(u *game.Unit) bool { return u.FirstStrike })
	defenders := b.Defenders.Filter(func(u *game.Unit) bool { return u.FirstStrike })
	b.simulateRound(b.Attackers, b.Defenders, attackers, defenders, true)
}

// SecondStrike lets every unit without first strike fire.
func (b *Battle) SecondStrike() {
	attackers := b.Attackers.Filter(func(u *game.Unit) bool { return !u.FirstStrike })
	defenders := b.Defenders.Filter(func(u *game.Unit) bool { return !u.FirstStrike })
	b.simulateRound(b.Attackers, b.Defenders, attackers, defenders, true)
}

// Round fights one general round with every surviving unit.
func (b *Battle) Round() {
	b.simulateRound(b.Attackers, b.Defenders, b.Attackers, b.Defenders, false)
	b.rounds++
}

// simulateRound resolves fire from the firing pools, picks casualties from
// the target pools, and keeps the survivors as the current rosters.
func (b *Battle) simulateRound(attackTargets, defendTargets, attackers, defenders game.Roster, initialRound bool) {
	toDefenders, toAttackers := game.Resolve(attackers, defenders, b.Terrain, b.roller, false, initialRound)
	attackerLosses, defenderLosses := b.selector.RoundLosses(attackTargets, defendTargets, toAttackers, toDefenders)

	b.Attackers = survivors(attackerLosses, attackTargets, attackers)
	b.Defenders = survivors(defenderLosses, defendTargets, defenders)
}

// survivors returns every unit in the pools that was not lost, once each, and
// clears the round's dead markers.
func survivors(losses game.Roster, pools ...game.Roster) game.Roster {
	lost := make(map[*game.Unit]struct{}, len(losses))
	for _, u := range losses {
		lost[u] = struct{}{}
	}
	seen := make(map[*game.Unit]struct{})
	var out game.Roster
	for _, pool := range pools {
		for _, u := range pool {
			u.Dead = false
			if _, ok := lost[u]; ok {
				continue
			}
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			out = append(out, u)
		}
	}
	return out
}

func (b *Battle) logSides(stage string) {
	log.Debug().
		Str("attackers", b.Attackers.String()).
		Str("defenders", b.Defenders.String()).
		Msg(stage)
}

var _ Engine = (*Battle)(nil)
