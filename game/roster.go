package game

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Roster is one side of a battle.
type Roster []*Unit

// NewRoster builds a roster from catalog names.
func NewRoster(names ...string) (Roster, error) {
	r := make(Roster, 0, len(names))
	for _, name := range names {
		u, err := New(name)
		if err != nil {
			return nil, err
		}
		r = append(r, u)
	}
	return r, nil
}

// MustRoster is NewRoster for names known at compile time.
func MustRoster(names ...string) Roster {
	r, err := NewRoster(names...)
	if err != nil {
		panic(err)
	}
	return r
}

// Clone deep copies every unit so the copy shares no state with r.
func (r Roster) Clone() Roster {
	c := make(Roster, len(r))
	for i, u := range r {
		c[i] = u.Clone()
	}
	return c
}

// Validate checks that the roster is non-empty and every unit is resolvable.
func (r Roster) Validate() error {
	if len(r) == 0 {
		return ErrEmptyRoster
	}
	var errs []error
	for _, u := range r {
		if err := u.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// All reports whether every unit is of type t. An empty roster returns true.
func (r Roster) All(t UnitType) bool {
	for _, u := range r {
		if u.Type != t {
			return false
		}
	}
	return true
}

// Any reports whether some unit is of type t.
func (r Roster) Any(t UnitType) bool {
	for _, u := range r {
		if u.Type == t {
			return true
		}
	}
	return false
}

// Filter returns the units for which keep returns true.
func (r Roster) Filter(keep func(*Unit) bool) Roster {
	var out Roster
	for _, u := range r {
		if keep(u) {
			out = append(out, u)
		}
	}
	return out
}

// Cost sums the unit costs.
func (r Roster) Cost() int {
	total := 0
	for _, u := range r {
		total += u.Cost
	}
	return total
}

// Counts tallies units by name.
func (r Roster) Counts() map[string]int {
	counts := make(map[string]int)
	for _, u := range r {
		counts[u.Name]++
	}
	return counts
}

// String renders the roster as "2xInfantry, 1xTankDestroyer".
func (r Roster) String() string {
	if len(r) == 0 {
		return "(none)"
	}
	counts := r.Counts()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%dx%s", counts[name], name)
	}
	return strings.Join(parts, ", ")
}
