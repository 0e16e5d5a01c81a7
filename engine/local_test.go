package engine

import (
	"testing"

	"battlesim/game"
	"battlesim/searcher"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// scriptedRoller returns its rolls in order and then repeats the last one.
type scriptedRoller struct {
	rolls []int
	next  int
}

func rolls(values ...int) *scriptedRoller {
	return &scriptedRoller{rolls: values}
}

func (r *scriptedRoller) Roll() int {
	if r.next >= len(r.rolls) {
		return r.rolls[len(r.rolls)-1]
	}
	roll := r.rolls[r.next]
	r.next++
	return roll
}

func TestNewBattle(t *testing.T) {
	t.Run("rejecting an empty side", func(t *testing.T) {
		_, err := NewBattle(game.MustRoster(game.InfantryUnit), game.Roster{}, game.Basic, nil)

		require.ErrorIs(t, err, game.ErrEmptyRoster)
	})

	t.Run("rejecting a broken target select", func(t *testing.T) {
		broken := game.NewUnit(game.Profile{Name: "Broken", Type: game.Vehicle, Attack: 3, TargetSelect: &game.TargetSelect{Roll: 2, Category: game.Category(7)}})

		_, err := NewBattle(game.Roster{broken}, game.MustRoster(game.InfantryUnit), game.Basic, nil)

		require.ErrorIs(t, err, game.ErrInvalidTargetSelect)
	})

	t.Run("keeping the original rosters", func(t *testing.T) {
		attackers := game.MustRoster(game.InfantryUnit, game.LightArmor)
		defenders := game.MustRoster(game.InfantryUnit)

		b, err := NewBattle(attackers, defenders, game.City, game.NewD12(1))

		require.NoError(t, err)
		require.Equal(t, attackers, b.OriginalAttackers)
		require.Equal(t, attackers, b.Attackers)
		b.Attackers = b.Attackers[:1]
		require.Len(t, attackers, 2, "Current rosters do not alias the originals")
	})
}

func TestBattlePhases(t *testing.T) {
	t.Run("first strike lets only first strikers fire", func(t *testing.T) {
		attackers := game.MustRoster(game.ArtilleryUnit, game.InfantryUnit)
		defenders := game.MustRoster(game.InfantryUnit)
		b, err := NewBattle(attackers, defenders, game.Basic, rolls(1))
		require.NoError(t, err)

		b.FirstStrike()

		require.Empty(t, b.Defenders, "Artillery destroys the defender")
		require.Len(t, b.Attackers, 2, "Defending infantry cannot fire back yet")
		require.Len(t, b.OriginalDefenders, 1, "Original rosters are kept for reporting")
		require.False(t, defenders[0].Dead, "Dead markers are cleared after the round")
	})

	t.Run("second strike lets everyone else fire", func(t *testing.T) {
		attackers := game.MustRoster(game.ArtilleryUnit, game.InfantryUnit)
		defenders := game.MustRoster(game.InfantryUnit)
		b, err := NewBattle(attackers, defenders, game.Basic, rolls(12, 1))
		require.NoError(t, err)

		b.SecondStrike()

		require.Len(t, b.Defenders, 1, "Attacking infantry misses and artillery holds fire")
		require.Len(t, b.Attackers, 1, "Defending infantry hits")
	})

	t.Run("a fortification does not raise the second strike", func(t *testing.T) {
		attackers := game.MustRoster(game.Militia)
		defenders := game.MustRoster(game.FortificationUnit, game.InfantryUnit)
		b, err := NewBattle(attackers, defenders, game.Basic, rolls(12, 12, 12, 5))
		require.NoError(t, err)

		b.FirstStrike()
		b.SecondStrike()

		require.Len(t, b.Attackers, 1, "Infantry defends at 4 without the bonus, so a 5 misses")
		require.True(t, defenders[0].AlreadyAttacked, "The fortification fired in the first strike")
	})

	t.Run("first strikers can be lost in the second strike", func(t *testing.T) {
		attackers := game.MustRoster(game.ArtilleryUnit)
		defenders := game.MustRoster(game.InfantryUnit)
		b, err := NewBattle(attackers, defenders, game.Basic, rolls(12, 1))
		require.NoError(t, err)

		b.FirstStrike()
		b.SecondStrike()

		require.Empty(t, b.Attackers, "Artillery is a target of the whole defending side")
	})
}

func TestBattleRun(t *testing.T) {
	t.Run("aircraft win an air battle", func(t *testing.T) {
		b, err := NewBattle(game.MustRoster(game.Fighter), game.MustRoster(game.InfantryUnit), game.Basic, rolls(1, 12))
		require.NoError(t, err)

		got := b.Run()

		require.Equal(t, AttackerVictory, got, "All attackers were aircraft from the start")
		require.Equal(t, 1, b.Rounds(), "Decided in the opening round")
	})

	t.Run("defenders win when the attack is wiped out", func(t *testing.T) {
		b, err := NewBattle(game.MustRoster(game.Militia), game.MustRoster(game.InfantryUnit), game.Basic, rolls(12, 1))
		require.NoError(t, err)

		require.Equal(t, DefenderVictory, b.Run())
		require.Empty(t, b.Attackers)
	})

	t.Run("one-shot units fire once over a whole battle", func(t *testing.T) {
		decoy := game.Profile{Name: "Decoy", Type: game.Infantry}
		attackers := game.Roster{}
		for i := 0; i < 6; i++ {
			attackers = append(attackers, game.NewUnit(decoy))
		}
		metrics := searcher.NewMetricsCollector()
		b, err := NewBattle(attackers, game.MustRoster(game.FortificationUnit), game.Basic, rolls(1), WithMaxRounds(10), WithMetrics(metrics))
		require.NoError(t, err)

		got := b.Run()

		require.Equal(t, DefenderVictory, got)
		require.Equal(t, 10, b.Rounds(), "Decoys can never hit, so the battle runs to the cap")
		require.Len(t, b.Attackers, 4, "Every roll hits, yet the fortification only lands its two opening hits")
		require.Positive(t, metrics.Complete().Evaluations, "Casualty scoring ran simulated passes in between")
		require.True(t, b.Defenders[0].AlreadyAttacked)
	})

	t.Run("stopping at the round cap", func(t *testing.T) {
		metrics := searcher.NewMetricsCollector()
		b, err := NewBattle(
			game.MustRoster(game.FortificationUnit),
			game.MustRoster(game.FortificationUnit),
			game.Basic,
			rolls(12),
			WithMaxRounds(5),
			WithMetrics(metrics),
		)
		require.NoError(t, err)

		got := b.Run()

		require.Equal(t, DefenderVictory, got, "Defenders holding out win")
		require.Equal(t, 5, b.Rounds(), "Battle stops at the cap")
		require.Len(t, b.Attackers, 1)
		require.Len(t, b.Defenders, 1)
		require.Zero(t, metrics.Complete().Evaluations, "Nothing was ever hit")
	})

	t.Run("one side is always eliminated", func(t *testing.T) {
		names := []string{game.InfantryUnit, game.Militia, game.ArtilleryUnit, game.LightArmor, game.TankDestroyer, game.Fighter, game.TacticalBomber, game.FortificationUnit}

		rapid.Check(t, func(t *rapid.T) {
			side := func(label string) game.Roster {
				n := rapid.IntRange(1, 3).Draw(t, label+" size")
				r := game.Roster{}
				for i := 0; i < n; i++ {
					r = append(r, game.MustNew(rapid.SampledFrom(names[:len(names)-1]).Draw(t, label)))
				}
				if rapid.Bool().Draw(t, label+" fortified") {
					r = append(r, game.MustNew(game.FortificationUnit))
				}
				return r
			}
			attackers, defenders := side("attacker"), side("defender")
			terrain := rapid.SampledFrom(game.Terrains).Draw(t, "terrain")
			b, err := NewBattle(attackers, defenders, terrain, game.NewD12(rapid.Uint64().Draw(t, "seed")))
			if err != nil {
				t.Fatalf("failed to create battle: %v", err)
			}

			verdict := b.Run()

			if b.Rounds() >= b.maxRounds {
				t.Skip("battle reached the round cap")
			}
			if len(b.Attackers) > 0 && len(b.Defenders) > 0 {
				t.Fatalf("battle ended with %d attackers and %d defenders", len(b.Attackers), len(b.Defenders))
			}
			if verdict != AttackerVictory && verdict != DefenderVictory {
				t.Fatalf("undecided verdict %v", verdict)
			}
			if len(b.Defenders) > 0 && verdict != DefenderVictory {
				t.Fatalf("defenders held but verdict is %s", verdict)
			}
		})
	})
}
