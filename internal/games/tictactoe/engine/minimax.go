package engine

import "fmt"

// Leaf scores, seen from the side the search plays for.
const (
	ScoreWin  = 10
	ScoreLoss = -10
	ScoreDraw = 0
)

// searchResult pairs a candidate move with its minimax score.
type searchResult struct {
	index int
	score int
}

// SelectMove returns the optimal move for aiSide on b using exhaustive
// minimax without pruning or depth discounting. Among equally scored
// moves the lowest index wins, so the result is fully deterministic.
//
// b is copied; the caller's board is never modified.
func SelectMove(b Board, aiSide Side) (int, error) {
	if err := checkSearchable(b, aiSide); err != nil {
		return -1, err
	}

	s := searcher{board: b, ai: aiSide}
	best := s.minimax(aiSide)
	return best.index, nil
}

// checkSearchable rejects positions the policy cannot move in.
func checkSearchable(b Board, aiSide Side) error {
	if !aiSide.Valid() {
		return fmt.Errorf("%w: invalid side %d", ErrNoLegalMove, aiSide)
	}
	if len(EmptyPositions(b)) == 0 {
		return fmt.Errorf("%w: board is full", ErrNoLegalMove)
	}
	if Evaluate(b).Terminal() {
		return fmt.Errorf("%w: game is over", ErrNoLegalMove)
	}
	return nil
}

// searcher owns the scratch board explored by mutate/undo.
type searcher struct {
	board Board
	ai    Side
	nodes int
}

// minimax scores the current scratch board with toMove to play. The
// returned index is -1 on terminal boards.
func (s *searcher) minimax(toMove Side) searchResult {
	s.nodes++

	switch o := Evaluate(s.board); o.Status {
	case StatusWon:
		if o.Winner == s.ai {
			return searchResult{index: -1, score: ScoreWin}
		}
		return searchResult{index: -1, score: ScoreLoss}
	case StatusDraw:
		return searchResult{index: -1, score: ScoreDraw}
	}

	maximizing := toMove == s.ai
	best := searchResult{index: -1}
	for i := range s.board {
		if s.board[i] != Empty {
			continue
		}

		s.board[i] = Mark(toMove)
		r := s.minimax(toMove.Other())
		s.board[i] = Empty

		if best.index == -1 ||
			(maximizing && r.score > best.score) ||
			(!maximizing && r.score < best.score) {
			best = searchResult{index: i, score: r.score}
		}
	}
	return best
}

// Analysis holds the root scores of every legal move.
type Analysis struct {
	Best   int         // move SelectMove would play
	Scores map[int]int // index -> minimax score for the searching side
	Nodes  int         // positions visited
}

// Analyze scores every legal root move for aiSide in a single search.
// Best is the first highest score in ascending index order, the same move
// SelectMove plays.
func Analyze(b Board, aiSide Side) (Analysis, error) {
	if err := checkSearchable(b, aiSide); err != nil {
		return Analysis{}, err
	}

	a := Analysis{Best: -1, Scores: make(map[int]int)}
	s := searcher{board: b, ai: aiSide}
	for _, i := range EmptyPositions(b) {
		s.board[i] = Mark(aiSide)
		score := s.minimax(aiSide.Other()).score
		s.board[i] = Empty

		a.Scores[i] = score
		if a.Best == -1 || score > a.Scores[a.Best] {
			a.Best = i
		}
	}
	a.Nodes = s.nodes
	return a, nil
}
