package game

import (
	"fmt"
	"strings"
)

// Terrain selects how the battlefield adjusts combat values.
type Terrain int

const (
	Basic Terrain = iota
	Desert
	Mountain
	Marsh
	Jungle
	City
	SurroundedCity
)

// Terrains lists every terrain that can be picked for a battle.
var Terrains = []Terrain{Basic, Desert, Mountain, Marsh, Jungle, City, SurroundedCity}

// adjustment maps a unit and its synergy-adjusted value to the terrain value.
type adjustment func(u *Unit, value int) int

type modifier struct {
	name    string
	attack  adjustment
	defense adjustment
}

func unchanged(_ *Unit, value int) int { return value }

var modifiers = map[Terrain]modifier{
	Basic: {name: "basic", attack: unchanged, defense: unchanged},
	Desert: {
		name: "desert",
		attack: func(u *Unit, value int) int {
			if u.Type == Aircraft {
				return value
			}
			return value - 1
		},
		defense: unchanged,
	},
	Mountain: {
		name: "mountain",
		attack: func(u *Unit, value int) int {
			if u.Mountaineer || u.Type == Aircraft {
				return value
			}
			return value - 1
		},
		defense: func(u *Unit, value int) int {
			if u.Mountaineer {
				return value + 1
			}
			return value
		},
	},
	Marsh:  {name: "marsh", attack: bogged, defense: bogged},
	Jungle: {name: "jungle", attack: bogged, defense: bogged},
	City: {
		name:   "city",
		attack: unchanged,
		defense: func(u *Unit, value int) int {
			if u.Type == Infantry {
				return value + 1
			}
			return value
		},
	},
	SurroundedCity: {
		name:    "surrounded-city",
		attack:  unchanged,
		defense: func(_ *Unit, value int) int { return value - 1 },
	},
}

// bogged penalises vehicles in soft ground.
func bogged(u *Unit, value int) int {
	if u.Type == Vehicle {
		return value - 2
	}
	return value
}

func (t Terrain) modifier() modifier {
	m, ok := modifiers[t]
	if !ok {
		panic(fmt.Sprintf("no modifier for terrain %d", int(t)))
	}
	return m
}

// ModifiedAttack returns the unit's attack with synergy and terrain applied.
// It may mark synergy pairings on friendlies.
func (t Terrain) ModifiedAttack(u *Unit, friendlies []*Unit) int {
	return t.modifier().attack(u, u.GetAttack(friendlies))
}

// ModifiedDefense returns the unit's defense with synergy and terrain applied.
// It may mark synergy pairings on friendlies.
func (t Terrain) ModifiedDefense(u *Unit, friendlies []*Unit) int {
	return t.modifier().defense(u, u.GetDefense(friendlies))
}

func (t Terrain) String() string {
	if m, ok := modifiers[t]; ok {
		return m.name
	}
	return fmt.Sprintf("Terrain(%d)", int(t))
}

// ParseTerrain resolves a terrain by name, ignoring case, spaces and dashes.
func ParseTerrain(name string) (Terrain, error) {
	key := normalizeName(name)
	for t, m := range modifiers {
		if normalizeName(m.name) == key {
			return t, nil
		}
	}
	return Basic, fmt.Errorf("%w: %q", ErrUnknownTerrain, name)
}

func normalizeName(name string) string {
	r := strings.NewReplacer("-", "", "_", "", " ", "")
	return strings.ToLower(r.Replace(name))
}

func (t Terrain) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Terrain) UnmarshalText(text []byte) error {
	parsed, err := ParseTerrain(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
