// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines running independent trials.
const GO_ROUTINES = 16

// TRIALS defines the number of battles behind one win rate.
const TRIALS = 10_000

// MAX_ROUNDS caps the general rounds of a battle whose sides cannot finish each other.
const MAX_ROUNDS = 300

// COMPARE_TRIALS defines the battles behind one army comparison, half with each side attacking.
const COMPARE_TRIALS = 20_000
