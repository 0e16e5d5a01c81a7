package game

// scriptedRoller returns its rolls in order, repeating the last one when the
// script runs out.
type scriptedRoller struct {
	rolls []int
	next  int
}

func rolls(values ...int) *scriptedRoller {
	return &scriptedRoller{rolls: values}
}

func (r *scriptedRoller) Roll() int {
	if r.next >= len(r.rolls) {
		return r.rolls[len(r.rolls)-1]
	}
	roll := r.rolls[r.next]
	r.next++
	return roll
}

// used returns how many scripted rolls have been consumed.
func (r *scriptedRoller) used() int {
	return r.next
}
