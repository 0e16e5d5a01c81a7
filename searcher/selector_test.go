package searcher

import (
	"slices"
	"testing"

	"battlesim/game"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// strengthEvaluator scores sideA by how much more attack it brings than sideB.
func strengthEvaluator(sideA, sideB []*game.Unit, _ game.Terrain, _ game.Roller) int {
	return strength(sideA) - strength(sideB)
}

func TestSelectorLosses(t *testing.T) {
	setup := func() (attackers, defenders game.Roster, s *Selector, metrics MetricsCollector) {
		attackers = game.MustRoster(game.InfantryUnit, game.MediumArmor, game.LightArmor)
		defenders = game.MustRoster(game.Militia, game.HeavyArmor, game.Cavalry)
		metrics = NewMetricsCollector()
		s = NewSelector(game.Basic, game.NewD12(1), WithEvaluator(strengthEvaluator), WithMetrics(metrics))
		return attackers, defenders, s, metrics
	}

	t.Run("general losses give up the weakest units", func(t *testing.T) {
		attackers, defenders, s, metrics := setup()

		attackerLosses, defenderLosses := s.Losses(attackers, defenders, 1, 1, game.General)

		require.Equal(t, []*game.Unit{attackers[0]}, attackerLosses, "Attacker loses infantry")
		require.Equal(t, []*game.Unit{defenders[0]}, defenderLosses, "Defender loses militia")
		require.Equal(t, int64(6), metrics.Complete().Evaluations, "Every candidate on both sides is scored")
	})

	t.Run("restricted losses take the strongest eligible units", func(t *testing.T) {
		attackers, defenders, s, _ := setup()

		attackerLosses, defenderLosses := s.Losses(attackers, defenders, 1, 1, game.VehicleOnly)

		require.Equal(t, []*game.Unit{attackers[1]}, attackerLosses, "Attacker loses medium armor")
		require.Equal(t, []*game.Unit{defenders[1]}, defenderLosses, "Defender loses heavy armor")
	})

	t.Run("no hits means no losses", func(t *testing.T) {
		attackers, defenders, s, metrics := setup()

		attackerLosses, defenderLosses := s.Losses(attackers, defenders, 0, 0, game.General)

		require.Empty(t, attackerLosses)
		require.Empty(t, defenderLosses)
		require.Zero(t, metrics.Complete().Evaluations, "Nothing to score")
	})

	t.Run("scoring with the nested evaluator", func(t *testing.T) {
		attackers := game.MustRoster(game.InfantryUnit, game.InfantryUnit, game.Fighter)
		defenders := game.MustRoster(game.InfantryUnit, game.InfantryUnit)
		s := NewSelector(game.Basic, game.NewD12(3))

		attackerLosses, defenderLosses := s.Losses(attackers, defenders, 2, 1, game.General)

		require.Len(t, attackerLosses, 2)
		require.Len(t, defenderLosses, 1)
		for _, u := range append(attackers, defenders...) {
			require.False(t, u.Dead, "Losses does not mark casualties")
			require.False(t, u.Simulation, "Scoring leaves no simulation flag behind")
		}
	})
}

func TestSelectorRoundLosses(t *testing.T) {
	t.Run("filling buckets in order", func(t *testing.T) {
		attackers := game.MustRoster(game.InfantryUnit, game.LightArmor)
		defenders := game.MustRoster(game.MediumArmor, game.Militia, game.Fighter)
		s := NewSelector(game.Basic, game.NewD12(1), WithEvaluator(strengthEvaluator))

		attackerLosses, defenderLosses := s.RoundLosses(attackers, defenders,
			game.RoundResult{General: 1},
			game.RoundResult{VehicleOnly: 1, GroundAndNaval: 1, General: 1},
		)

		require.Equal(t, []*game.Unit{attackers[0]}, attackerLosses, "Weakest attacker is lost")
		require.Equal(t, []*game.Unit{defenders[0], defenders[1]}, defenderLosses,
			"Ground takes the armor, vehicle finds none left, general takes the militia over the fighter")
		for _, u := range defenderLosses {
			require.True(t, u.Dead, "Losses stay marked")
		}
	})

	t.Run("buckets never pick a unit twice", func(t *testing.T) {
		names := game.Names()

		rapid.Check(t, func(t *rapid.T) {
			pool := func(label string) game.Roster {
				n := rapid.IntRange(1, 6).Draw(t, label+" size")
				r := game.Roster{}
				for i := 0; i < n; i++ {
					r = append(r, game.MustNew(rapid.SampledFrom(names).Draw(t, label)))
				}
				return r
			}
			hits := func(label string) game.RoundResult {
				var r game.RoundResult
				r.General = rapid.IntRange(0, 4).Draw(t, label+" general")
				r.VehicleOnly = rapid.IntRange(0, 2).Draw(t, label+" vehicle")
				r.GroundAndNaval = rapid.IntRange(0, 2).Draw(t, label+" ground")
				return r
			}
			attackers, defenders := pool("attacker"), pool("defender")
			toAttackers, toDefenders := hits("attackers"), hits("defenders")
			s := NewSelector(game.Basic, game.NewD12(rapid.Uint64().Draw(t, "seed")),
				WithEvaluator(func(_, _ []*game.Unit, _ game.Terrain, r game.Roller) int { return r.Roll() }))

			attackerLosses, defenderLosses := s.RoundLosses(attackers, defenders, toAttackers, toDefenders)

			check := func(side string, pool game.Roster, losses []*game.Unit, hits game.RoundResult) {
				seen := make(map[*game.Unit]bool)
				for _, u := range losses {
					if seen[u] {
						t.Fatalf("%s lost %s twice", side, u)
					}
					seen[u] = true
				}
				if len(losses) > hits.Total() {
					t.Fatalf("%s lost %d units to %d hits", side, len(losses), hits.Total())
				}
				if len(losses) > len(pool) {
					t.Fatalf("%s lost %d units from a pool of %d", side, len(losses), len(pool))
				}
				for _, u := range losses {
					if !slices.Contains(pool, u) {
						t.Fatalf("%s lost %s from outside its pool", side, u)
					}
					if !u.Dead {
						t.Fatalf("%s loss %s is not marked dead", side, u)
					}
				}
			}
			check("attacker", attackers, attackerLosses, toAttackers)
			check("defender", defenders, defenderLosses, toDefenders)
		})
	})
}
