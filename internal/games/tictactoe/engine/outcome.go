package engine

// Status is the coarse state of a board.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDraw
)

// Outcome is derived from a board by Evaluate and never stored.
type Outcome struct {
	Status Status
	Winner Side // valid only when Status is StatusWon
}

// InProgress returns the outcome of a board with moves left and no winner.
func InProgress() Outcome { return Outcome{Status: StatusInProgress} }

// Won returns the outcome of a board where s completed a line.
func Won(s Side) Outcome { return Outcome{Status: StatusWon, Winner: s} }

// Draw returns the outcome of a full board without a winner.
func Draw() Outcome { return Outcome{Status: StatusDraw} }

// Terminal reports whether no further moves are accepted.
func (o Outcome) Terminal() bool {
	return o.Status != StatusInProgress
}

// String returns a short human-readable description.
func (o Outcome) String() string {
	switch o.Status {
	case StatusWon:
		return "won by " + o.Winner.String()
	case StatusDraw:
		return "draw"
	default:
		return "in progress"
	}
}
