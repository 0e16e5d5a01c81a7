package searcher

import (
	"battlesim/game"

	"github.com/rs/zerolog/log"
)

// maxPreallocated bounds the candidate slice reserved up front.
const maxPreallocated = 1 << 16

// Scorer rates a candidate loss set. Higher means the set is cheaper to lose.
type Scorer func(candidate []*game.Unit) int

// Candidates returns every loss set of size required that can be drawn from
// the living units of pool valid for category c. When the pool is no larger
// than required the whole pool is the only candidate; when nothing is
// required or nothing is eligible the empty set is.
func Candidates(pool []*game.Unit, required int, c game.Category) [][]*game.Unit {
	eligible := make([]*game.Unit, 0, len(pool))
	for _, u := range pool {
		if u.Dead || !c.ValidTarget(u.Type) {
			continue
		}
		eligible = append(eligible, u)
	}

	if len(eligible) == 0 || required <= 0 {
		return [][]*game.Unit{{}}
	}
	if len(eligible) <= required {
		return [][]*game.Unit{eligible}
	}

	candidates := make([][]*game.Unit, 0, min(Binomial(len(eligible), required), maxPreallocated))
	for subset := range Combinations(eligible, required) {
		candidates = append(candidates, append([]*game.Unit(nil), subset...))
	}
	return candidates
}

// Select picks the loss set for one casualty bucket.
//
// The general bucket keeps the highest-scoring candidate and the restricted
// buckets keep the lowest-scoring one. The last candidate is the starting
// choice and only a strictly better score replaces it. A single candidate is
// returned without being scored.
func Select(pool []*game.Unit, required int, c game.Category, score Scorer) []*game.Unit {
	candidates := Candidates(pool, required, c)
	last := len(candidates) - 1
	best := candidates[last]
	if last == 0 {
		return best
	}

	log.Trace().Msgf("scoring %d %s loss candidates of size %d", len(candidates), c, required)

	bestScore := score(best)
	for _, candidate := range candidates[:last] {
		s := score(candidate)
		if (c == game.General && s > bestScore) || (c != game.General && s < bestScore) {
			bestScore = s
			best = candidate
		}
	}
	return best
}

// MarkDead flags units as casualties of the current round.
func MarkDead(units []*game.Unit) {
	for _, u := range units {
		u.Dead = true
	}
}
