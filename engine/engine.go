package engine

import "battlesim/game"

// Verdict is the terminal result of a battle.
type Verdict int

const (
	AttackerVictory Verdict = iota + 1
	DefenderVictory
)

func (v Verdict) String() string {
	switch v {
	case AttackerVictory:
		return "attacker"
	case DefenderVictory:
		return "defender"
	default:
		return "undecided"
	}
}

type Engine interface {
	// Run fights the battle until one side is eliminated or the round cap is reached
	Run() Verdict
}

// decide applies the verdict rule to the survivors. Defenders holding out
// always win. Attackers win when any attacker survives, except that aircraft
// alone cannot take ground unless the engagement began as an air battle.
func decide(airBattle bool, attackers, defenders game.Roster) Verdict {
	if len(defenders) > 0 {
		return DefenderVictory
	}
	if len(attackers) > 0 {
		if airBattle {
			return AttackerVictory
		}
		if !attackers.All(game.Aircraft) {
			return AttackerVictory
		}
	}
	return DefenderVictory
}
