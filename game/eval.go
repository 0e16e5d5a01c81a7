package game

// EvaluationTrials is the number of simulated passes behind one Evaluate score.
const EvaluationTrials = 20

// Evaluate scores how effective sideA is against sideB by simulating
// EvaluationTrials firing passes, sideA attacking, and summing the hits landed
// on sideB minus the hits taken by sideA. Higher favours sideA.
//
// Passes run in simulation mode so one-shot eligibility is never consumed.
func Evaluate(sideA, sideB []*Unit, t Terrain, r Roller) int {
	score := 0
	for i := 0; i < EvaluationTrials; i++ {
		toB, toA := Resolve(sideA, sideB, t, r, true, false)
		score += toB.Total() - toA.Total()
	}
	return score
}

// Evaluator scores a force against an opponent.
type Evaluator func(sideA, sideB []*Unit, t Terrain, r Roller) int
