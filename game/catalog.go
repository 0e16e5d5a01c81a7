package game

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog names.
const (
	Militia                    = "Militia"
	InfantryUnit               = "Infantry"
	AirborneInfantry           = "AirborneInfantry"
	EliteAirborneInfantry      = "EliteAirborneInfantry"
	Marines                    = "Marines"
	MountainInfantry           = "MountainInfantry"
	Cavalry                    = "Cavalry"
	MotorizedInfantry          = "MotorizedInfantry"
	MechanizedInfantry         = "MechanizedInfantry"
	AdvancedMechanizedInfantry = "AdvancedMechanizedInfantry"
	TankDestroyer              = "TankDestroyer"
	LightArmor                 = "LightArmor"
	MediumArmor                = "MediumArmor"
	T34                        = "T34"
	HeavyArmor                 = "HeavyArmor"
	ArtilleryUnit              = "Artillery"
	SPA                        = "SPA"
	AdvancedArtillery          = "AdvancedArtillery"
	AdvancedSPA                = "AdvancedSPA"
	Katyusha                   = "Katyusha"
	AAArtillery                = "AAArtillery"
	Fighter                    = "Fighter"
	JetFighter                 = "JetFighter"
	TacticalBomber             = "TacticalBomber"
	MediumBomber               = "MediumBomber"
	StrategicBomber            = "StrategicBomber"
	HeavyStrategicBomber       = "HeavyStrategicBomber"
	Seaplane                   = "Seaplane"
	FortificationUnit          = "Fortification"
)

func vehicleSelect(roll int) *TargetSelect {
	return &TargetSelect{Roll: roll, Category: VehicleOnly}
}

func groundSelect(roll int) *TargetSelect {
	return &TargetSelect{Roll: roll, Category: GroundAndNaval}
}

// Catalog maps unit names to their profiles.
var Catalog = map[string]Profile{
	Militia:                    {Type: Infantry, Attack: 1, Defense: 2, Cost: 2, Movement: 1, Researched: true},
	InfantryUnit:               {Type: Infantry, Attack: 2, Defense: 4, Cost: 3, Movement: 1, Researched: true},
	AirborneInfantry:           {Type: Infantry, Attack: 2, Defense: 2, Cost: 3, Movement: 1, Researched: true},
	EliteAirborneInfantry:      {Type: Infantry, Attack: 3, Defense: 3, Cost: 3, Movement: 1},
	Marines:                    {Type: Infantry, Attack: 2, Defense: 4, Cost: 4, Movement: 1, Researched: true},
	MountainInfantry:           {Type: Infantry, Attack: 2, Defense: 4, Cost: 4, Movement: 1, Researched: true, Mountaineer: true},
	Cavalry:                    {Type: Vehicle, Attack: 3, Defense: 2, Cost: 3, Movement: 2, Researched: true},
	MotorizedInfantry:          {Type: Vehicle, Attack: 2, Defense: 4, Cost: 4, Movement: 2, Researched: true},
	MechanizedInfantry:         {Type: Vehicle, Attack: 3, Defense: 4, Cost: 4, Movement: 2},
	AdvancedMechanizedInfantry: {Type: Vehicle, Attack: 4, Defense: 5, Cost: 4, Movement: 2},
	TankDestroyer:              {Type: Vehicle, Attack: 3, Defense: 4, Cost: 5, Movement: 2, Researched: true, TargetSelect: vehicleSelect(3)},
	LightArmor:                 {Type: Vehicle, Attack: 3, Defense: 1, Cost: 4, Movement: 2, Researched: true},
	MediumArmor:                {Type: Vehicle, Attack: 6, Defense: 5, Cost: 6, Movement: 2},
	T34:                        {Type: Vehicle, Attack: 6, Defense: 5, Cost: 5, Movement: 2, TargetSelect: vehicleSelect(1)},
	HeavyArmor:                 {Type: Vehicle, Attack: 8, Defense: 5, Cost: 7, Movement: 2, TargetSelect: vehicleSelect(1)},
	ArtilleryUnit:              {Type: Artillery, Attack: 3, Defense: 3, Cost: 4, Movement: 1, Researched: true, FirstStrike: true},
	SPA:                        {Type: Vehicle, Attack: 3, Defense: 3, Cost: 5, Movement: 2, Researched: true, FirstStrike: true},
	AdvancedArtillery:          {Type: Vehicle, Attack: 4, Defense: 4, Cost: 4, Movement: 1, FirstStrike: true},
	AdvancedSPA:                {Type: Artillery, Attack: 4, Defense: 4, Cost: 5, Movement: 2, FirstStrike: true},
	Katyusha:                   {Type: Vehicle, Attack: 5, Defense: 4, Cost: 5, Movement: 2, FirstStrike: true},
	AAArtillery:                {Type: AntiAir, Attack: 3, Defense: 3, Cost: 4, Movement: 1, Researched: true},
	Fighter:                    {Type: Aircraft, Attack: 6, Defense: 6, Cost: 10, Movement: 4, Researched: true},
	JetFighter:                 {Type: Aircraft, Attack: 8, Defense: 8, Cost: 12, Movement: 4},
	TacticalBomber:             {Type: Aircraft, Attack: 7, Defense: 5, Cost: 11, Movement: 4, Researched: true, TargetSelect: groundSelect(3)},
	MediumBomber:               {Type: Aircraft, Attack: 7, Defense: 4, Cost: 11, Movement: 5, Researched: true},
	StrategicBomber:            {Type: Aircraft, Attack: 3, Defense: 2, Cost: 12, Movement: 6, CarpetBombing: true},
	HeavyStrategicBomber:       {Type: Aircraft, Attack: 5, Defense: 3, Cost: 13, Movement: 6, CarpetBombing: true},
	Seaplane:                   {Type: Aircraft, Attack: 3, Defense: 3, Cost: 6, Movement: 6, Researched: true},
	FortificationUnit:          {Type: Fortification, Attack: 0, Defense: 5, Cost: 10, Movement: 0, Researched: true, FirstStrike: true, AttackCount: 2, InitialAttackOnly: true},
}

// SovietUnits lists the units available to the Soviet side.
var SovietUnits = []string{
	Militia,
	InfantryUnit,
	AirborneInfantry,
	Marines,
	MountainInfantry,
	Cavalry,
	MotorizedInfantry,
	TankDestroyer,
	LightArmor,
	ArtilleryUnit,
	SPA,
	AAArtillery,
	Fighter,
	TacticalBomber,
	MediumBomber,
	Seaplane,
	FortificationUnit,
}

// Lookup returns the catalog profile for name with its Name filled in.
func Lookup(name string) (Profile, error) {
	p, ok := Catalog[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	p.Name = name
	if p.AttackCount == 0 {
		p.AttackCount = 1
	}
	return p, nil
}

// New returns a fresh unit from the catalog.
func New(name string) (*Unit, error) {
	p, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return NewUnit(p), nil
}

// MustNew is New for names known at compile time.
func MustNew(name string) *Unit {
	u, err := New(name)
	if err != nil {
		panic(err)
	}
	return u
}

// Names returns all catalog names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Catalog))
	for name := range Catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe renders a profile for logs and CLI listings.
func Describe(p Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) A%d/D%d cost=%d move=%d", p.Name, p.Type, p.Attack, p.Defense, p.Cost, p.Movement)
	if p.FirstStrike {
		b.WriteString(" first-strike")
	}
	if p.AttackCount > 1 {
		fmt.Fprintf(&b, " x%d", p.AttackCount)
	}
	if p.InitialAttackOnly {
		b.WriteString(" initial-only")
	}
	if p.TargetSelect != nil {
		fmt.Fprintf(&b, " select=%s@%d", p.TargetSelect.Category, p.TargetSelect.Roll)
	}
	if !p.Researched {
		b.WriteString(" unresearched")
	}
	return b.String()
}
