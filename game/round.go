package game

import "fmt"

// RoundResult tallies hits from one firing pass by casualty category.
type RoundResult struct {
	General        int
	VehicleOnly    int
	GroundAndNaval int
}

// Total returns the hits across all categories.
func (r RoundResult) Total() int {
	return r.General + r.VehicleOnly + r.GroundAndNaval
}

// Of returns the counter for category c.
func (r RoundResult) Of(c Category) int {
	switch c {
	case VehicleOnly:
		return r.VehicleOnly
	case GroundAndNaval:
		return r.GroundAndNaval
	default:
		return r.General
	}
}

func (r *RoundResult) add(c Category) {
	switch c {
	case General:
		r.General++
	case VehicleOnly:
		r.VehicleOnly++
	case GroundAndNaval:
		r.GroundAndNaval++
	default:
		panic(fmt.Errorf("%w: %v", ErrInvalidTargetSelect, c))
	}
}

// Resolve fires every eligible unit on both sides once per attack instance and
// returns the hits landed on the defenders and on the attackers.
//
// With simulation set, one-shot units fire without using up their eligibility.
// Synergy pairings are cleared on every participating unit before returning.
func Resolve(attackers, defenders []*Unit, t Terrain, r Roller, simulation, initialRound bool) (toDefenders, toAttackers RoundResult) {
	fire(attackers, t, r, true, simulation, initialRound, &toDefenders)
	fire(defenders, t, r, false, simulation, initialRound, &toAttackers)

	for _, u := range attackers {
		u.Simulation = false
		u.ResetSynergy()
	}
	for _, u := range defenders {
		u.Simulation = false
		u.ResetSynergy()
	}
	return toDefenders, toAttackers
}

// fire resolves every attack of side into result. The fortification bonus
// only applies when a fortification is in side itself, so a first-strike
// fortification raises the first strike but not the second strike after it.
func fire(side []*Unit, t Terrain, r Roller, attacking, simulation, initialRound bool, result *RoundResult) {
	fortified := initialRound && Roster(side).Any(Fortification)
	for _, u := range side {
		u.Simulation = simulation
		if !u.CanAttack() {
			continue
		}
		for i := 0; i < u.AttackCount; i++ {
			if c, hit := strike(u, side, t, r, attacking, fortified); hit {
				result.add(c)
			}
		}
	}
}

// strike resolves one attack instance of u and returns the category hit.
func strike(u *Unit, friendlies []*Unit, t Terrain, r Roller, attacking, fortified bool) (Category, bool) {
	var base, value int
	if attacking {
		base = u.Attack
		value = t.ModifiedAttack(u, friendlies)
	} else {
		base = u.Defense
		value = t.ModifiedDefense(u, friendlies)
	}

	if fortified {
		value += FortificationBonus
	}

	if value <= MinCombatValue && base >= MinCombatValue {
		value = MinCombatValue
	}

	if !RollUnder(r, value) {
		return General, false
	}

	if u.TargetSelect == nil {
		return General, true
	}
	switch u.TargetSelect.Category {
	case VehicleOnly, GroundAndNaval:
	default:
		panic(fmt.Errorf("%s: %w: %v", u.Name, ErrInvalidTargetSelect, u.TargetSelect.Category))
	}
	if RollUnder(r, u.TargetSelect.Roll) {
		return u.TargetSelect.Category, true
	}
	return General, true
}
