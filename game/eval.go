package game

// Evaluator scores a position from one player's perspective; higher is
// better for that color. Evaluators are pure functions of the board, so
// the same function is reusable unchanged at every search depth.
type Evaluator func(b *Board, perspective Color) float64

// EvaluateStones scores by stone-count difference. Capture tallies are
// folded in so that stones already taken off the board still count.
func EvaluateStones(b *Board, perspective Color) float64 {
	opp := perspective.Opponent()
	var mine, theirs int
	for _, c := range b.grid {
		switch c {
		case perspective:
			mine++
		case opp:
			theirs++
		}
	}
	mine += b.caps[perspective]
	theirs += b.caps[opp]
	return float64(mine - theirs)
}

// EvaluateLiberties scores by group-liberty difference, counting each
// group's liberties once per group rather than once per stone, plus a 3x
// weight on the capture-tally difference.
func EvaluateLiberties(b *Board, perspective Color) float64 {
	opp := perspective.Opponent()
	var mine, theirs int
	counted := make([]bool, len(b.grid))
	for i, c := range b.grid {
		if c == Empty || counted[i] {
			continue
		}
		stones, libs := b.flood(b.grid, i)
		for _, s := range stones {
			counted[s] = true
		}
		if c == perspective {
			mine += libs
		} else {
			theirs += libs
		}
	}
	return float64(mine-theirs) + 3*float64(b.caps[perspective]-b.caps[opp])
}

// EvaluateTerritory scores by surrounded-territory difference.
func EvaluateTerritory(b *Board, perspective Color) float64 {
	r := b.Score(0)
	diff := r.Black.Territory - r.White.Territory
	if perspective == White {
		diff = -diff
	}
	return float64(diff)
}
