package game

import (
	"fmt"
	"strings"
)

// UnitType is the broad combat category of a unit.
type UnitType int

const (
	Infantry UnitType = iota + 1
	Vehicle
	Aircraft
	Naval
	AntiAir
	Artillery
	Fortification
)

var unitTypeNames = map[UnitType]string{
	Infantry:      "infantry",
	Vehicle:       "vehicle",
	Aircraft:      "aircraft",
	Naval:         "naval",
	AntiAir:       "anti-air",
	Artillery:     "artillery",
	Fortification: "fortification",
}

func (t UnitType) String() string {
	if name, ok := unitTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UnitType(%d)", int(t))
}

// ParseUnitType resolves a unit type by name, ignoring case, spaces and dashes.
func ParseUnitType(name string) (UnitType, error) {
	key := normalizeName(name)
	for t, n := range unitTypeNames {
		if normalizeName(n) == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnitType, name)
}

func (t *UnitType) UnmarshalText(text []byte) error {
	parsed, err := ParseUnitType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Category is a casualty bucket a hit can be routed into.
type Category int

const (
	General        Category = iota // Any unit may be lost
	VehicleOnly                    // Only vehicles may be lost
	GroundAndNaval                 // Vehicles, anti-air, artillery, infantry and naval
)

func (c Category) String() string {
	switch c {
	case General:
		return "general"
	case VehicleOnly:
		return "vehicle"
	case GroundAndNaval:
		return "ground-and-naval"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// ParseCategory resolves a casualty category by name. "vehicle-only" and
// "ground" are accepted as aliases.
func ParseCategory(name string) (Category, error) {
	switch strings.TrimSuffix(normalizeName(name), "only") {
	case "general":
		return General, nil
	case "vehicle":
		return VehicleOnly, nil
	case "groundandnaval", "ground":
		return GroundAndNaval, nil
	default:
		return General, fmt.Errorf("%w: %q", ErrInvalidTargetSelect, name)
	}
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ValidTarget reports whether a unit of type t may be lost to a hit in this category.
func (c Category) ValidTarget(t UnitType) bool {
	switch c {
	case General:
		return true
	case VehicleOnly:
		return t == Vehicle
	case GroundAndNaval:
		return t == Vehicle || t == AntiAir || t == Artillery || t == Infantry || t == Naval
	default:
		return false
	}
}

// TargetSelect lets a confirmed hit be routed into a restricted category when
// a second roll is at or under Roll.
type TargetSelect struct {
	Roll     int
	Category Category
}

// Profile holds the static combat attributes of a unit kind.
type Profile struct {
	Name              string
	Type              UnitType
	Attack            int
	Defense           int
	Cost              int
	Movement          int
	FirstStrike       bool
	AttackCount       int
	InitialAttackOnly bool // Fires on the first round it is able to, then never again
	Researched        bool
	CarpetBombing     bool
	Mountaineer       bool // Ignores mountain attack penalties and gains mountain defense
	TargetSelect      *TargetSelect
}

// Unit is one combatant. Profile is read-only during a battle; the remaining
// fields are transient state owned by the resolver, selector and engine.
type Unit struct {
	Profile

	Dead            bool // Selected as a casualty in the current round
	AlreadyAttacked bool // One-shot eligibility consumed
	Paired          bool // Already used in a synergy pairing this pass
	Simulation      bool // Current pass is hypothetical
}

// NewUnit returns a fresh unit for the given profile.
func NewUnit(p Profile) *Unit {
	if p.AttackCount <= 0 {
		p.AttackCount = 1
	}
	if p.TargetSelect != nil {
		ts := *p.TargetSelect
		p.TargetSelect = &ts
	}
	return &Unit{Profile: p}
}

// Clone copies the unit including its transient state.
func (u *Unit) Clone() *Unit {
	c := *u
	if u.TargetSelect != nil {
		ts := *u.TargetSelect
		c.TargetSelect = &ts
	}
	return &c
}

func (u *Unit) String() string {
	return u.Name
}

// Validate checks that the profile can be resolved.
func (u *Unit) Validate() error {
	if u.TargetSelect == nil {
		return nil
	}
	switch u.TargetSelect.Category {
	case VehicleOnly, GroundAndNaval:
		return nil
	default:
		return fmt.Errorf("%s: %w: %v", u.Name, ErrInvalidTargetSelect, u.TargetSelect.Category)
	}
}

// CanAttack reports whether the unit may fire in the current pass. Units that
// only fire once give up that eligibility unless the pass is a simulation.
func (u *Unit) CanAttack() bool {
	if !u.InitialAttackOnly {
		return true
	}
	if u.AlreadyAttacked {
		return false
	}
	if !u.Simulation {
		u.AlreadyAttacked = true
	}
	return true
}

// GetAttack returns the attack value including friendly synergy.
// It may mark the unit and a partner as paired; call ResetSynergy afterwards.
func (u *Unit) GetAttack(friendlies []*Unit) int {
	return u.Attack + synergyFor(u)(u, friendlies)
}

// GetDefense returns the defense value including friendly synergy.
// It may mark the unit and a partner as paired; call ResetSynergy afterwards.
func (u *Unit) GetDefense(friendlies []*Unit) int {
	return u.Defense + synergyFor(u)(u, friendlies)
}

func (u *Unit) ResetSynergy() {
	u.Paired = false
}

// synergy returns a bonus for u given its side and records any pairing.
type synergy func(u *Unit, friendlies []*Unit) int

var synergies = map[UnitType]synergy{
	Infantry: artilleryPairing,
}

func synergyFor(u *Unit) synergy {
	if s, ok := synergies[u.Type]; ok {
		return s
	}
	return noSynergy
}

func noSynergy(*Unit, []*Unit) int { return 0 }

// artilleryPairing gives +1 when an unpaired friendly artillery is available.
func artilleryPairing(u *Unit, friendlies []*Unit) int {
	for _, friend := range friendlies {
		if friend == u {
			continue
		}
		if friend.Type == Artillery && !friend.Paired {
			u.Paired = true
			friend.Paired = true
			return 1
		}
	}
	return 0
}
