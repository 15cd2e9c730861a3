package domain

import "testing"

func TestNewGame(t *testing.T) {
	state := NewGame()

	if state.CurrentPlayer != Red {
		t.Fatalf("red moves first, got %v", state.CurrentPlayer)
	}
	if state.Status != StatusPlaying || state.IsGameOver || state.IsDraw {
		t.Fatalf("fresh game should be playing: %+v", state)
	}
	if state.MoveCount != 0 || state.Winner != Empty || state.WinningLine != nil {
		t.Fatalf("fresh game should be empty: %+v", state)
	}
}

func TestApplyMoveAlternatesAndCounts(t *testing.T) {
	state := NewGame()

	for i, col := range []int{0, 1, 2, 3} {
		next, pos, err := ApplyMove(state, col)
		if err != nil {
			t.Fatalf("move %d: unexpected error: %v", i, err)
		}
		if pos.Col != col || pos.Row != Rows-1 {
			t.Fatalf("move %d: expected bottom of column %d, got %+v", i, col, pos)
		}
		if next.MoveCount != i+1 {
			t.Fatalf("move %d: expected move count %d, got %d", i, i+1, next.MoveCount)
		}
		if next.CurrentPlayer == state.CurrentPlayer {
			t.Fatalf("move %d: turn did not alternate", i)
		}
		state = next
	}

	red, yellow := countDisks(state.Board)
	if red != 2 || yellow != 2 {
		t.Fatalf("expected 2 red and 2 yellow disks, got %d/%d", red, yellow)
	}
}

func TestApplyMoveDoesNotMutateInput(t *testing.T) {
	state := NewGame()

	next, _, err := ApplyMove(state, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if state.Board[Rows-1][3] != Empty || state.MoveCount != 0 || state.CurrentPlayer != Red {
		t.Fatalf("ApplyMove mutated the input state: %+v", state)
	}
	if next.Board[Rows-1][3] != Red {
		t.Fatalf("new state missing the placed disk")
	}
}

func TestApplyMoveInvalidColumn(t *testing.T) {
	state := NewGame()

	for _, col := range []int{-1, Columns, 42} {
		if _, _, err := ApplyMove(state, col); err != ErrInvalidColumn {
			t.Fatalf("column %d: expected ErrInvalidColumn, got %v", col, err)
		}
	}
	if state.MoveCount != 0 {
		t.Fatalf("failed move must not change the state")
	}
}

// scenario: seven alternating drops into column 3, the seventh must be
// rejected because the column holds six disks
func TestApplyMoveColumnFull(t *testing.T) {
	state := NewGame()

	for i := 0; i < Rows; i++ {
		next, _, err := ApplyMove(state, 3)
		if err != nil {
			t.Fatalf("move %d: unexpected error: %v", i, err)
		}
		state = next
	}

	if _, _, err := ApplyMove(state, 3); err != ErrColumnFull {
		t.Fatalf("expected ErrColumnFull, got %v", err)
	}
}

// scenario: red stacks column 0 while yellow answers in column 1; the
// seventh move gives red four vertically in column 0, rows 2..5
func TestApplyMoveVerticalWin(t *testing.T) {
	state := NewGame()

	moves := []int{0, 1, 0, 1, 0, 1, 0}
	for i, col := range moves {
		next, _, err := ApplyMove(state, col)
		if err != nil {
			t.Fatalf("move %d: unexpected error: %v", i, err)
		}
		state = next
	}

	if state.Winner != Red || state.Status != StatusWon || !state.IsGameOver {
		t.Fatalf("expected red to win: %+v", state)
	}
	if state.IsDraw {
		t.Fatalf("a won game is not a draw")
	}
	want := []Position{{2, 0}, {3, 0}, {4, 0}, {5, 0}}
	if len(state.WinningLine) != ToWin {
		t.Fatalf("expected winning line of %d, got %v", ToWin, state.WinningLine)
	}
	for i := range want {
		if state.WinningLine[i] != want[i] {
			t.Fatalf("expected winning line %v, got %v", want, state.WinningLine)
		}
	}
	if state.MoveCount != len(moves) {
		t.Fatalf("expected move count %d, got %d", len(moves), state.MoveCount)
	}
}

func TestApplyMoveAfterGameOver(t *testing.T) {
	state := NewGame()
	for _, col := range []int{0, 1, 0, 1, 0, 1, 0} {
		state = mustApply(t, state, col)
	}
	if !state.IsGameOver {
		t.Fatalf("expected finished game")
	}

	if _, _, err := ApplyMove(state, 4); err != ErrGameAlreadyOver {
		t.Fatalf("expected ErrGameAlreadyOver, got %v", err)
	}
}

// scenario: a full board with no four-in-a-row anywhere becomes a draw
// on the last drop
func TestApplyMoveDraw(t *testing.T) {
	// alternating two-row bands never line up four in any direction
	pattern := [Rows]string{
		"RRYYRRY",
		"YYRRYYR",
		"RRYYRRY",
		"YYRRYYR",
		"RRYYRRY",
		"YYRRYYR",
	}
	board := boardFromRows(t, pattern)

	// rewind the last disk (top of column 6, a yellow) and replay it
	// through ApplyMove
	board[0][6] = Empty
	state := &GameState{
		Board:         board,
		CurrentPlayer: Yellow,
		Status:        StatusPlaying,
		MoveCount:     Rows*Columns - 1,
	}

	next, _, err := ApplyMove(state, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !next.IsDraw || next.Status != StatusDraw || !next.IsGameOver {
		t.Fatalf("expected a draw: %+v", next)
	}
	if next.Winner != Empty || next.WinningLine != nil {
		t.Fatalf("a drawn game has no winner: %+v", next)
	}
	if next.MoveCount != Rows*Columns {
		t.Fatalf("expected move count %d, got %d", Rows*Columns, next.MoveCount)
	}
}

// invariants from the state model: disk counts track the move count
// and red never trails yellow
func TestReachableStateInvariants(t *testing.T) {
	state := NewGame()
	moves := []int{3, 3, 2, 4, 2, 2, 5, 1, 0, 6, 4, 4}

	for i, col := range moves {
		next, _, err := ApplyMove(state, col)
		if err != nil {
			t.Fatalf("move %d: unexpected error: %v", i, err)
		}
		state = next

		red, yellow := countDisks(state.Board)
		if red+yellow != state.MoveCount {
			t.Fatalf("move %d: move count %d disagrees with %d disks", i, state.MoveCount, red+yellow)
		}
		diff := red - yellow
		if diff < 0 || diff > 1 {
			t.Fatalf("move %d: disk balance broken: red=%d yellow=%d", i, red, yellow)
		}
		if state.IsGameOver != (state.Winner != Empty || state.IsDraw) {
			t.Fatalf("move %d: game-over flag inconsistent: %+v", i, state)
		}
		if state.Winner != Empty && state.IsDraw {
			t.Fatalf("move %d: winner and draw set together", i)
		}
	}
}

func mustApply(t *testing.T, state *GameState, col int) *GameState {
	t.Helper()
	next, _, err := ApplyMove(state, col)
	if err != nil {
		t.Fatalf("unexpected error applying column %d: %v", col, err)
	}
	return next
}

func countDisks(board [][]Cell) (red, yellow int) {
	for r := range board {
		for c := range board[r] {
			switch board[r][c] {
			case Red:
				red++
			case Yellow:
				yellow++
			}
		}
	}
	return red, yellow
}
