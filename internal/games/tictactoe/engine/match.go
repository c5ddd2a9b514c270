package engine

import "fmt"

// Mode selects who plays the Second side.
type Mode uint8

const (
	ModeVsCPU Mode = iota // Second is played by SelectMove
	ModeLocal             // two humans share the keyboard
)

// String returns the label shown in the status line.
func (m Mode) String() string {
	switch m {
	case ModeVsCPU:
		return "vs CPU"
	case ModeLocal:
		return "two players"
	default:
		return "unknown"
	}
}

// Match is a single game instance: a board plus whose turn it is.
// It owns its board exclusively.
type Match struct {
	board  Board
	toMove Side
	mode   Mode
	cpu    Side
	moves  []int
}

// NewMatch returns an empty match with First to move.
func NewMatch(mode Mode) *Match {
	m := &Match{mode: mode, cpu: Second}
	m.Reset()
	return m
}

// Reset returns the match to an empty board with First to move.
// The mode is preserved.
func (m *Match) Reset() {
	m.board = NewGame()
	m.toMove = First
	m.moves = m.moves[:0]
}

// Board returns a copy of the current board.
func (m *Match) Board() Board { return m.board }

// ToMove returns the side whose turn it is.
func (m *Match) ToMove() Side { return m.toMove }

// Mode returns the current mode.
func (m *Match) Mode() Mode { return m.mode }

// CPU returns the side played by the computer in ModeVsCPU.
func (m *Match) CPU() Side { return m.cpu }

// Moves returns the indices played so far, oldest first.
func (m *Match) Moves() []int {
	out := make([]int, len(m.moves))
	copy(out, m.moves)
	return out
}

// Outcome evaluates the current board.
func (m *Match) Outcome() Outcome { return Evaluate(m.board) }

// SetMode switches between vs CPU and local play and restarts the match.
func (m *Match) SetMode(mode Mode) {
	m.mode = mode
	m.Reset()
}

// ToggleMode flips the mode and restarts the match.
func (m *Match) ToggleMode() {
	if m.mode == ModeVsCPU {
		m.SetMode(ModeLocal)
		return
	}
	m.SetMode(ModeVsCPU)
}

// CPUToMove reports whether the computer should play now.
func (m *Match) CPUToMove() bool {
	return m.mode == ModeVsCPU && m.toMove == m.cpu && !m.Outcome().Terminal()
}

// Play applies a move for the side to move and passes the turn.
// In ModeVsCPU the human may only play its own side.
func (m *Match) Play(index int) error {
	if m.mode == ModeVsCPU && m.toMove == m.cpu {
		return fmt.Errorf("%w: waiting for the computer", ErrIllegalMove)
	}
	return m.apply(index)
}

// PlayCPU lets the opponent policy choose and apply a move.
// It returns the chosen index.
func (m *Match) PlayCPU() (int, error) {
	idx, err := SelectMove(m.board, m.toMove)
	if err != nil {
		return -1, err
	}
	if err := m.apply(idx); err != nil {
		return -1, err
	}
	return idx, nil
}

func (m *Match) apply(index int) error {
	next, err := ApplyMove(m.board, index, m.toMove)
	if err != nil {
		return err
	}
	m.board = next
	m.moves = append(m.moves, index)
	m.toMove = m.toMove.Other()
	return nil
}
