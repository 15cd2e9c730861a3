package domain

// to represent the cells of the board and the players in the game
// Red always moves first
type Cell int

const (
	Empty  Cell = 0
	Red    Cell = 1
	Yellow Cell = 2
)

// for board representation
const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// a single cell coordinate, row 0 is the top of the board
type Position struct {
	Row int
	Col int
}

// to represent the game status
type GameStatus string

const (
	StatusWaiting GameStatus = "waiting"
	StatusPlaying GameStatus = "playing"
	StatusWon     GameStatus = "won"
	StatusDraw    GameStatus = "draw"
)

// bot difficulty tiers
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var BotNames = map[Difficulty]string{
	DifficultyEasy:   "Alice",
	DifficultyMedium: "Bob",
	DifficultyHard:   "Charles",
}

func GetBotName(difficulty Difficulty) string {
	if name, ok := BotNames[difficulty]; ok {
		return name
	}
	return "BOT"
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn   Error = "column index out of range"
	ErrColumnFull      Error = "column is full"
	ErrGameAlreadyOver Error = "game is already over"
	ErrNoValidMoves    Error = "no valid moves available"
)

// Opponent returns the other player's color.
func Opponent(p Cell) Cell {
	if p == Red {
		return Yellow
	}
	return Red
}
