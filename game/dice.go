package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Roller produces die outcomes in [1, DieSides].
type Roller interface {
	Roll() int
}

// D12 is a seedable twelve-sided die. It is not safe for concurrent use;
// give every battle its own.
type D12 struct {
	rng *rand.Rand
}

// NewD12 returns a die seeded with seed.
func NewD12(seed uint64) *D12 {
	return &D12{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomD12 returns a die seeded from the clock.
func NewRandomD12() *D12 {
	return NewD12(uint64(time.Now().UnixNano()))
}

func (d *D12) Roll() int {
	return d.rng.Intn(DieSides) + 1
}

// RollUnder reports whether a roll hits target or less.
func RollUnder(r Roller, target int) bool {
	return r.Roll() <= target
}
