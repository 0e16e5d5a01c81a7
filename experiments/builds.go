package experiments

import (
	"fmt"
	"slices"

	"battlesim/game"
)

// LegalBuilds lists every army that can be bought from the available unit
// names with money: the army costs no more than money, and what is left over
// would not buy even the cheapest available unit. Each build is a list of
// unit names in the order the names were given. Duplicated names count once.
//
// The number of builds grows combinatorially with money.
func LegalBuilds(available []string, money int) ([][]string, error) {
	if money <= 0 || len(available) == 0 {
		return nil, nil
	}

	var names []string
	var costs []int
	cheapest := 0
	for _, name := range available {
		if slices.Contains(names, name) {
			continue
		}
		p, err := game.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("failed to look up available unit: %w", err)
		}
		if p.Cost <= 0 {
			return nil, fmt.Errorf("unit %s has no cost", name)
		}
		if cheapest == 0 || p.Cost < cheapest {
			cheapest = p.Cost
		}
		if p.Cost <= money {
			names = append(names, name)
			costs = append(costs, p.Cost)
		}
	}

	var builds [][]string
	var build []string
	var extend func(i, spent int)
	extend = func(i, spent int) {
		if i == len(names) {
			if len(build) > 0 && money < spent+cheapest {
				builds = append(builds, slices.Clone(build))
			}
			return
		}
		mark := len(build)
		for count := 0; spent+count*costs[i] <= money; count++ {
			if count > 0 {
				build = append(build, names[i])
			}
			extend(i+1, spent+count*costs[i])
		}
		build = build[:mark]
	}
	extend(0, 0)

	return builds, nil
}
