package game

import "errors"

const (
	DieSides           = 12
	FortificationBonus = 2 // Added to every unit on a side with a fortification during the opening round
	MinCombatValue     = 1 // Terrain cannot push a capable unit below this
)

var (
	ErrInvalidTargetSelect = errors.New("invalid target select category")
	ErrUnknownUnit         = errors.New("unknown unit")
	ErrUnknownTerrain      = errors.New("unknown terrain")
	ErrUnknownUnitType     = errors.New("unknown unit type")
	ErrEmptyRoster         = errors.New("empty roster")
)
