package domain

// GameState is a value snapshot of one game. ApplyMove never mutates
// the state it is given; it returns a fresh snapshot, so independent
// games (and recursive searches) can share states freely.
type GameState struct {
	Board         [][]Cell
	CurrentPlayer Cell
	Winner        Cell
	IsDraw        bool
	IsGameOver    bool
	MoveCount     int
	Status        GameStatus
	WinningLine   []Position
}

func NewGame() *GameState {
	return &GameState{
		Board:         NewBoard(),
		CurrentPlayer: Red,
		Winner:        Empty,
		Status:        StatusPlaying,
		MoveCount:     0,
	}
}

func (g *GameState) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}

// ApplyMove drops the current player's disk into the column and returns
// the new state together with the position the disk landed in. The
// input state is left untouched, also when an error is returned.
func ApplyMove(state *GameState, column int) (*GameState, Position, error) {
	if state.IsGameOver {
		return nil, Position{}, ErrGameAlreadyOver
	}

	if column < 0 || column >= Columns {
		return nil, Position{}, ErrInvalidColumn
	}

	if state.Board[0][column] != Empty {
		return nil, Position{}, ErrColumnFull
	}

	board := CopyBoard(state.Board)
	row, err := DropDisk(board, column, state.CurrentPlayer)
	if err != nil {
		return nil, Position{}, err
	}

	placed := Position{Row: row, Col: column}
	line, won := CheckWin(board, placed)
	draw := !won && IsBoardFull(board)

	next := &GameState{
		Board:         board,
		CurrentPlayer: Opponent(state.CurrentPlayer),
		Winner:        Empty,
		IsDraw:        draw,
		IsGameOver:    won || draw,
		MoveCount:     state.MoveCount + 1,
		Status:        StatusPlaying,
	}

	if won {
		next.Winner = state.CurrentPlayer
		next.Status = StatusWon
		next.WinningLine = line
	} else if draw {
		next.Status = StatusDraw
	}

	return next, placed, nil
}
