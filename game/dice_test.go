package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestD12(t *testing.T) {
	t.Run("rolling every face and nothing else", func(t *testing.T) {
		d := NewD12(42)
		seen := make(map[int]int)
		for i := 0; i < 10_000; i++ {
			roll := d.Roll()
			require.GreaterOrEqual(t, roll, 1, "Roll should be at least 1")
			require.LessOrEqual(t, roll, DieSides, "Roll should be at most 12")
			seen[roll]++
		}
		require.Len(t, seen, DieSides, "Every face should come up")
	})

	t.Run("replaying a seed", func(t *testing.T) {
		a, b := NewD12(99), NewD12(99)
		for i := 0; i < 100; i++ {
			require.Equal(t, a.Roll(), b.Roll(), "Seeded dice should agree")
		}
	})

	t.Run("rolling under a target", func(t *testing.T) {
		require.True(t, RollUnder(rolls(5), 5), "Equal to the target hits")
		require.False(t, RollUnder(rolls(6), 5), "Over the target misses")
		require.False(t, RollUnder(rolls(1), 0), "Nothing hits a target of 0")
	})
}
