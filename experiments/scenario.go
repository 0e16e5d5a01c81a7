package experiments

import (
	"errors"
	"fmt"
	"os"

	"battlesim/game"

	"gopkg.in/yaml.v3"
)

// Scenario is a batch of matchups read from a YAML file.
type Scenario struct {
	Trials     int           `yaml:"trials"`
	Goroutines int           `yaml:"goroutines"`
	Seed       *uint64       `yaml:"seed"`
	MaxRounds  int           `yaml:"max_rounds"`
	Units      []UnitSpec    `yaml:"units"`
	Matchups   []MatchupSpec `yaml:"matchups"`
}

// UnitSpec declares a custom unit, or overrides a catalog unit of the same name.
type UnitSpec struct {
	Name              string            `yaml:"name"`
	Type              game.UnitType     `yaml:"type"`
	Attack            int               `yaml:"attack"`
	Defense           int               `yaml:"defense"`
	Cost              int               `yaml:"cost"`
	Movement          int               `yaml:"movement"`
	FirstStrike       bool              `yaml:"first_strike"`
	AttackCount       int               `yaml:"attack_count"`
	InitialAttackOnly bool              `yaml:"initial_attack_only"`
	Mountaineer       bool              `yaml:"mountaineer"`
	TargetSelect      *TargetSelectSpec `yaml:"target_select"`
}

type TargetSelectSpec struct {
	Roll     int           `yaml:"roll"`
	Category game.Category `yaml:"category"`
}

type MatchupSpec struct {
	Name      string       `yaml:"name"`
	Terrain   game.Terrain `yaml:"terrain"`
	Attackers []StackSpec  `yaml:"attackers"`
	Defenders []StackSpec  `yaml:"defenders"`
}

// StackSpec is count copies of one unit.
type StackSpec struct {
	Unit  string `yaml:"unit"`
	Count int    `yaml:"count"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a scenario and checks that every matchup can be built.
func ParseScenario(data []byte) (*Scenario, error) {
	s := &Scenario{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if len(s.Matchups) == 0 {
		return nil, errors.New("scenario has no matchups")
	}
	for _, spec := range s.Units {
		if spec.Name == "" {
			return nil, errors.New("scenario unit has no name")
		}
		if spec.Type == 0 {
			return nil, fmt.Errorf("unit %q: %w: missing type", spec.Name, game.ErrUnknownUnitType)
		}
	}
	for _, m := range s.Matchups {
		if _, _, err := s.Rosters(m); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Profile resolves a unit name against the scenario's custom units first and
// the catalog second.
func (s *Scenario) Profile(name string) (game.Profile, error) {
	for _, spec := range s.Units {
		if spec.Name == name {
			return spec.profile(), nil
		}
	}
	return game.Lookup(name)
}

func (spec UnitSpec) profile() game.Profile {
	p := game.Profile{
		Name:              spec.Name,
		Type:              spec.Type,
		Attack:            spec.Attack,
		Defense:           spec.Defense,
		Cost:              spec.Cost,
		Movement:          spec.Movement,
		FirstStrike:       spec.FirstStrike,
		AttackCount:       spec.AttackCount,
		InitialAttackOnly: spec.InitialAttackOnly,
		Mountaineer:       spec.Mountaineer,
		Researched:        true,
	}
	if spec.TargetSelect != nil {
		p.TargetSelect = &game.TargetSelect{Roll: spec.TargetSelect.Roll, Category: spec.TargetSelect.Category}
	}
	return p
}

// Rosters builds fresh attacker and defender rosters for a matchup.
func (s *Scenario) Rosters(m MatchupSpec) (attackers, defenders game.Roster, err error) {
	attackers, err = s.roster(m.Attackers)
	if err != nil {
		return nil, nil, fmt.Errorf("matchup %q attackers: %w", m.Name, err)
	}
	defenders, err = s.roster(m.Defenders)
	if err != nil {
		return nil, nil, fmt.Errorf("matchup %q defenders: %w", m.Name, err)
	}
	return attackers, defenders, nil
}

func (s *Scenario) roster(stacks []StackSpec) (game.Roster, error) {
	var r game.Roster
	for _, stack := range stacks {
		p, err := s.Profile(stack.Unit)
		if err != nil {
			return nil, err
		}
		for i := 0; i < stack.Count; i++ {
			r = append(r, game.NewUnit(p))
		}
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Options turns the scenario's batch settings into trial options.
func (s *Scenario) Options() []Option {
	options := []Option{
		WithTrials(s.Trials),
		WithGoroutines(s.Goroutines),
		WithMaxRounds(s.MaxRounds),
	}
	if s.Seed != nil {
		options = append(options, WithSeed(*s.Seed))
	}
	return options
}
