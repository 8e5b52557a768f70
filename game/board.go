package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

var validSizes = map[int]bool{9: true, 13: true, 19: true}

// Board is a snapshot of a game of Go. Boards are immutable through the
// public API: Play returns a new snapshot and never touches its receiver,
// so a caller can keep any number of positions alive at once.
type Board struct {
	size   int
	grid   []Color // row-major, length size*size
	player Color   // next to move
	ko     int     // point forbidden by the simple ko rule, -1 if none
	passes int     // consecutive passes ending the move history
	moves  int     // moves played so far, passes included
	caps   [3]int  // stones captured by each color, indexed by Color
}

// NewBoard returns an empty board with Black to move.
func NewBoard(size int) (*Board, error) {
	if !validSizes[size] {
		return nil, fmt.Errorf("%w: %d (want 9, 13 or 19)", ErrInvalidSize, size)
	}
	return &Board{
		size:   size,
		grid:   make([]Color, size*size),
		player: Black,
		ko:     -1,
	}, nil
}

func (b *Board) Size() int { return b.size }

// At returns the color at (row, col).
func (b *Board) At(row, col int) Color { return b.grid[row*b.size+col] }

// Player returns the color to move.
func (b *Board) Player() Color { return b.player }

// Passes returns the count of consecutive passes ending the move history.
func (b *Board) Passes() int { return b.passes }

// MoveCount returns the number of moves played, passes included.
func (b *Board) MoveCount() int { return b.moves }

// Captures returns the number of opposing stones c has captured.
func (b *Board) Captures(c Color) int { return b.caps[c] }

// KoPoint returns the point forbidden by the ko rule, if any.
func (b *Board) KoPoint() (Point, bool) {
	if b.ko < 0 {
		return Point{}, false
	}
	return b.point(b.ko), true
}

// Copy returns an independent snapshot.
func (b *Board) Copy() *Board {
	grid := make([]Color, len(b.grid))
	copy(grid, b.grid)
	nb := *b
	nb.grid = grid
	return &nb
}

func (b *Board) index(p Point) int { return p.Row*b.size + p.Col }
func (b *Board) point(i int) Point { return Point{Row: i / b.size, Col: i % b.size} }

func (b *Board) onBoard(p Point) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// neighbors appends the orthogonal neighbors of i to buf and returns it.
func (b *Board) neighbors(i int, buf []int) []int {
	row, col := i/b.size, i%b.size
	if row > 0 {
		buf = append(buf, i-b.size)
	}
	if row < b.size-1 {
		buf = append(buf, i+b.size)
	}
	if col > 0 {
		buf = append(buf, i-1)
	}
	if col < b.size-1 {
		buf = append(buf, i+1)
	}
	return buf
}

// Group is a maximal chain of same-colored stones together with its
// liberty count. Groups are recomputed on demand by flood fill and never
// stored on the board.
type Group struct {
	Color     Color
	Stones    []Point
	Liberties int
}

// GroupAt returns the group containing (row, col). The second return is
// false for an empty point.
func (b *Board) GroupAt(row, col int) (Group, bool) {
	i := row*b.size + col
	if b.grid[i] == Empty {
		return Group{}, false
	}
	stones, libs := b.flood(b.grid, i)
	g := Group{Color: b.grid[i], Liberties: libs}
	for _, s := range stones {
		g.Stones = append(g.Stones, b.point(s))
	}
	return g, true
}

// flood collects the same-colored chain containing start and counts its
// distinct liberties. It reads grid rather than b.grid so legality checks
// can run against a scratch copy.
func (b *Board) flood(grid []Color, start int) (stones []int, liberties int) {
	color := grid[start]
	seen := make([]bool, len(grid))
	libSeen := make([]bool, len(grid))
	stack := []int{start}
	seen[start] = true
	var buf [4]int
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stones = append(stones, i)
		for _, n := range b.neighbors(i, buf[:0]) {
			switch {
			case grid[n] == Empty:
				if !libSeen[n] {
					libSeen[n] = true
					liberties++
				}
			case grid[n] == color && !seen[n]:
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return stones, liberties
}

// IsLegal reports whether m may be played in this position. Pass is
// always legal. A placement must land on an empty point, must not be the
// ko point, and must not be suicide.
func (b *Board) IsLegal(m Move) bool {
	if m.Pass {
		return true
	}
	if !b.onBoard(m.Point) {
		return false
	}
	i := b.index(m.Point)
	if b.grid[i] != Empty || i == b.ko {
		return false
	}
	return !b.isSuicide(i)
}

// isSuicide reports whether placing the current player's stone at i would
// leave its own group without liberties while capturing nothing.
func (b *Board) isSuicide(i int) bool {
	scratch := make([]Color, len(b.grid))
	copy(scratch, b.grid)
	scratch[i] = b.player
	if _, libs := b.flood(scratch, i); libs > 0 {
		return false
	}
	opp := b.player.Opponent()
	var buf [4]int
	for _, n := range b.neighbors(i, buf[:0]) {
		if scratch[n] != opp {
			continue
		}
		if _, libs := b.flood(scratch, n); libs == 0 {
			// The placement captures, so it is not suicide.
			return false
		}
	}
	return true
}

// LegalMoves enumerates every legal placement in row-major order,
// followed by pass. Pass is always legal, so the result is never empty.
// Callers wanting randomized order shuffle it themselves.
func (b *Board) LegalMoves() []Move {
	moves := make([]Move, 0, len(b.grid)+1)
	for i, c := range b.grid {
		if c != Empty || i == b.ko {
			continue
		}
		if b.isSuicide(i) {
			continue
		}
		moves = append(moves, Move{Point: b.point(i)})
	}
	return append(moves, PassMove())
}

// Play applies m and returns the resulting position; the receiver is left
// untouched. Play is the only state transition: captures, the ko point,
// the pass counter, and the player to move are all resolved here.
func (b *Board) Play(m Move) (*Board, error) {
	if !b.IsLegal(m) {
		return nil, fmt.Errorf("%w: %v by %v", ErrIllegalMove, m, b.player)
	}
	nb := b.Copy()
	nb.moves++
	if m.Pass {
		nb.passes++
		nb.ko = -1
		nb.player = b.player.Opponent()
		return nb, nil
	}

	i := b.index(m.Point)
	nb.grid[i] = b.player
	opp := b.player.Opponent()
	captured := 0
	koCandidate := -1
	var buf [4]int
	for _, n := range nb.neighbors(i, buf[:0]) {
		if nb.grid[n] != opp {
			continue
		}
		stones, libs := nb.flood(nb.grid, n)
		if libs > 0 {
			continue
		}
		if len(stones) == 1 {
			koCandidate = stones[0]
		}
		for _, s := range stones {
			nb.grid[s] = Empty
		}
		captured += len(stones)
	}
	nb.caps[b.player] += captured

	// Simple ko: a single-stone capture by a lone stone that itself has
	// exactly one liberty forbids the immediate recapture. Any intervening
	// move clears the restriction.
	nb.ko = -1
	if captured == 1 && koCandidate >= 0 {
		if stones, libs := nb.flood(nb.grid, i); len(stones) == 1 && libs == 1 {
			nb.ko = koCandidate
		}
	}

	nb.passes = 0
	nb.player = opp
	return nb, nil
}

// IsGameOver reports whether the game has ended by two consecutive
// passes. Move-count caps and resignation are driver policy, not part of
// the rules.
func (b *Board) IsGameOver() bool { return b.passes >= 2 }

// Hash digests the position: grid, player to move, and ko point. Pass
// counts and capture tallies are excluded, so two boards with the same
// stones and the same restrictions hash alike.
func (b *Board) Hash() uint64 {
	h := fnv.New64a()
	binary.Write(h, binary.LittleEndian, int64(b.player))
	binary.Write(h, binary.LittleEndian, int64(b.ko))
	for _, c := range b.grid {
		binary.Write(h, binary.LittleEndian, int64(c))
	}
	return h.Sum64()
}

// String renders the board with column letters (I skipped) and row
// numbers counted from the bottom, matching common Go diagrams.
func (b *Board) String() string {
	var sb strings.Builder
	writeColumns := func() {
		sb.WriteString("   ")
		for i := 0; i < b.size; i++ {
			sb.WriteByte(columnLabels[i])
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	writeColumns()
	for row := 0; row < b.size; row++ {
		fmt.Fprintf(&sb, "%2d ", b.size-row)
		for col := 0; col < b.size; col++ {
			switch b.At(row, col) {
			case Black:
				sb.WriteString("X ")
			case White:
				sb.WriteString("O ")
			default:
				sb.WriteString(". ")
			}
		}
		fmt.Fprintf(&sb, "%d\n", b.size-row)
	}
	writeColumns()
	return sb.String()
}
