package searcher

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"goban/game"
)

// Random is the baseline agent. It picks uniformly among legal stone
// placements and passes only when no placement is legal, so benchmark
// games against it are not cut short by early double passes.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random agent. A zero seed seeds from the clock.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ChooseMove(b *game.Board) (game.Move, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, fmt.Errorf("%w: no legal moves, not even pass", game.ErrInvariant)
	}
	placements := make([]game.Move, 0, len(moves))
	for _, mv := range moves {
		if !mv.Pass {
			placements = append(placements, mv)
		}
	}
	if len(placements) == 0 {
		return game.PassMove(), nil
	}
	return placements[r.rng.Intn(len(placements))], nil
}
