// Package engine provides the tic-tac-toe rules and a perfect-play opponent.
// This package is UI-agnostic and deterministic.
package engine

import (
	"errors"
	"fmt"
)

// Size is the number of cells on the board.
const Size = 9

// Side identifies a player.
type Side uint8

const (
	First  Side = iota + 1 // X, always moves first
	Second                 // O
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == First {
		return Second
	}
	return First
}

// Valid reports whether s is First or Second.
func (s Side) Valid() bool {
	return s == First || s == Second
}

// String returns the mark used to render this side.
func (s Side) String() string {
	switch s {
	case First:
		return "X"
	case Second:
		return "O"
	default:
		return "?"
	}
}

// Cell is the content of one board square. The zero value is Empty.
type Cell uint8

const (
	Empty Cell = iota
	MarkFirst
	MarkSecond
)

// Mark returns the cell holding the given side's mark.
func Mark(s Side) Cell {
	return Cell(s)
}

// Side returns the side owning this cell. ok is false for Empty.
func (c Cell) Side() (s Side, ok bool) {
	if c == Empty {
		return 0, false
	}
	return Side(c), true
}

// String returns "X", "O" or a space.
func (c Cell) String() string {
	if s, ok := c.Side(); ok {
		return s.String()
	}
	return " "
}

// Board is a 3x3 grid stored row-major. Boards are values: every
// operation in this package returns a new board instead of mutating.
type Board [Size]Cell

// Errors returned by engine operations.
var (
	ErrIllegalMove = errors.New("illegal move")
	ErrNoLegalMove = errors.New("no legal move")
)

// lines lists every winning line in evaluation order.
var lines = [8][3]int{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// columns
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diagonals
	{0, 4, 8}, {2, 4, 6},
}

// NewGame returns an empty board.
func NewGame() Board {
	return Board{}
}

// ApplyMove places side's mark at index and returns the resulting board.
// The input board is left untouched; on error it is returned as-is
// alongside an error wrapping ErrIllegalMove.
func ApplyMove(b Board, index int, side Side) (Board, error) {
	if index < 0 || index >= Size {
		return b, fmt.Errorf("%w: index %d out of range", ErrIllegalMove, index)
	}
	if !side.Valid() {
		return b, fmt.Errorf("%w: invalid side %d", ErrIllegalMove, side)
	}
	if Evaluate(b).Terminal() {
		return b, fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	if b[index] != Empty {
		return b, fmt.Errorf("%w: cell %d is occupied", ErrIllegalMove, index)
	}

	next := b
	next[index] = Mark(side)
	return next, nil
}

// Evaluate scans the board and reports its outcome. The first completed
// line in row, column, diagonal order decides the winner.
func Evaluate(b Board) Outcome {
	for _, ln := range lines {
		c := b[ln[0]]
		if c == Empty {
			continue
		}
		if b[ln[1]] == c && b[ln[2]] == c {
			s, _ := c.Side()
			return Won(s)
		}
	}

	for _, c := range b {
		if c == Empty {
			return InProgress()
		}
	}
	return Draw()
}

// EmptyPositions returns the indices of empty cells in ascending order.
func EmptyPositions(b Board) []int {
	out := make([]int, 0, Size)
	for i, c := range b {
		if c == Empty {
			out = append(out, i)
		}
	}
	return out
}

// String renders the board as three rows, e.g. "XO_\n_X_\n__O".
func (b Board) String() string {
	buf := make([]byte, 0, Size+2)
	for i, c := range b {
		if i > 0 && i%3 == 0 {
			buf = append(buf, '\n')
		}
		switch c {
		case MarkFirst:
			buf = append(buf, 'X')
		case MarkSecond:
			buf = append(buf, 'O')
		default:
			buf = append(buf, '_')
		}
	}
	return string(buf)
}

// ParseBoard reads a board from nine characters of X, O and '_' (or '.',
// ' '). Newlines and commas are ignored so the output of Board.String
// round-trips.
func ParseBoard(s string) (Board, error) {
	var b Board
	n := 0
	for _, r := range s {
		var c Cell
		switch r {
		case '\n', ',':
			continue
		case 'X', 'x':
			c = MarkFirst
		case 'O', 'o':
			c = MarkSecond
		case '_', '.', ' ':
			c = Empty
		default:
			return Board{}, fmt.Errorf("parse board: unexpected %q", r)
		}
		if n >= Size {
			return Board{}, fmt.Errorf("parse board: more than %d cells", Size)
		}
		b[n] = c
		n++
	}
	if n != Size {
		return Board{}, fmt.Errorf("parse board: got %d cells, want %d", n, Size)
	}
	return b, nil
}
