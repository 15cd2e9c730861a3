package bot

import (
	"github.com/iamasit07/connect4/engine/internal/domain"
)

// center-outward column preference used when no win or block is on the board
var preferredColumns = [...]int{3, 2, 4, 1, 5, 0, 6}

// chooseEasyMove runs a fixed cascade: take a win, block a win, prefer
// the center, else take the first playable column.
func chooseEasyMove(board [][]domain.Cell, botPlayer domain.Cell) Decision {
	validColumns := domain.GetValidMoves(board)
	opponent := domain.Opponent(botPlayer)

	for _, col := range validColumns {
		testBoard, row, _ := domain.SimulateMove(board, col, botPlayer)
		if _, won := domain.CheckWin(testBoard, domain.Position{Row: row, Col: col}); won {
			return Decision{Column: col, Confidence: 1.0, Rationale: "immediate win"}
		}
	}

	// if the opponent could win there next turn, take the slot now
	for _, col := range validColumns {
		testBoard, row, _ := domain.SimulateMove(board, col, opponent)
		if _, won := domain.CheckWin(testBoard, domain.Position{Row: row, Col: col}); won {
			return Decision{Column: col, Confidence: 0.9, Rationale: "immediate block"}
		}
	}

	for _, col := range preferredColumns {
		if domain.IsValidMove(board, col) {
			return Decision{Column: col, Confidence: 0.5, Rationale: "center preference"}
		}
	}

	return Decision{Column: validColumns[0], Confidence: 0.3, Rationale: "first available column"}
}
