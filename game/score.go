package game

// Tally is one player's area score: stones on the board plus enclosed
// territory, with any komi folded into the total.
type Tally struct {
	Stones    int
	Territory int
	Komi      float64
}

// Total is the tally as a single score.
func (t Tally) Total() float64 {
	return float64(t.Stones+t.Territory) + t.Komi
}

// GameResult is the terminal outcome of a game. Winner is Empty on a draw.
type GameResult struct {
	Winner Color
	Black  Tally
	White  Tally
}

// Score computes the area score of the position: each player's stones
// plus every empty region bordered exclusively by that player's stones.
// Regions touching both colors, or touching no stone at all, count for
// neither. komi is an additive constant on White's score; pass 0 for none.
func (b *Board) Score(komi float64) GameResult {
	var black, white Tally
	white.Komi = komi

	for _, c := range b.grid {
		switch c {
		case Black:
			black.Stones++
		case White:
			white.Stones++
		}
	}

	visited := make([]bool, len(b.grid))
	var buf [4]int
	for start, c := range b.grid {
		if c != Empty || visited[start] {
			continue
		}
		// Flood the empty region and record which colors border it.
		region := 0
		var bordersBlack, bordersWhite bool
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			region++
			for _, n := range b.neighbors(i, buf[:0]) {
				switch b.grid[n] {
				case Empty:
					if !visited[n] {
						visited[n] = true
						stack = append(stack, n)
					}
				case Black:
					bordersBlack = true
				case White:
					bordersWhite = true
				}
			}
		}
		switch {
		case bordersBlack && !bordersWhite:
			black.Territory += region
		case bordersWhite && !bordersBlack:
			white.Territory += region
		}
	}

	result := GameResult{Black: black, White: white}
	switch {
	case black.Total() > white.Total():
		result.Winner = Black
	case white.Total() > black.Total():
		result.Winner = White
	}
	return result
}
