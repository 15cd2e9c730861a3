package bot

import (
	"github.com/iamasit07/connect4/engine/internal/domain"
)

// Decision is the move the bot settled on, with a rough confidence and
// a short human-readable reason for it.
type Decision struct {
	Column     int
	Confidence float64
	Rationale  string
}

// Engine holds the search settings for the minimax tiers. One Engine
// is safe to share across games: it keeps no per-game state.
type Engine struct {
	MediumDepth int
	HardDepth   int
}

func NewEngine() *Engine {
	return &Engine{
		MediumDepth: 3,
		HardDepth:   5,
	}
}

// ChooseMove selects the best move for the current player based on difficulty.
func (e *Engine) ChooseMove(state *domain.GameState, difficulty domain.Difficulty) (Decision, error) {
	if len(domain.GetValidMoves(state.Board)) == 0 {
		return Decision{Column: -1}, domain.ErrNoValidMoves
	}

	switch difficulty {
	case domain.DifficultyEasy:
		return chooseEasyMove(state.Board, state.CurrentPlayer), nil
	case domain.DifficultyHard:
		return e.chooseMinimaxMove(state.Board, state.CurrentPlayer, e.HardDepth), nil
	default:
		return e.chooseMinimaxMove(state.Board, state.CurrentPlayer, e.MediumDepth), nil
	}
}

// classifyRationale explains a minimax decision after the fact: the
// checks run from strongest claim to weakest.
func classifyRationale(board [][]domain.Cell, column int, score int, botPlayer domain.Cell) string {
	opponent := domain.Opponent(botPlayer)

	if testBoard, row, err := domain.SimulateMove(board, column, botPlayer); err == nil {
		if _, won := domain.CheckWin(testBoard, domain.Position{Row: row, Col: column}); won {
			return "immediate win"
		}
		if oppBoard, oppRow, err := domain.SimulateMove(board, column, opponent); err == nil {
			if _, won := domain.CheckWin(oppBoard, domain.Position{Row: oppRow, Col: column}); won {
				return "immediate block"
			}
		}
		if countOpenThreats(testBoard, botPlayer) >= 2 {
			return "creates multiple winning threats"
		}
	}

	switch {
	case score > 50:
		return "strong position"
	case score > 0:
		return "positive position"
	default:
		return "developing move"
	}
}
