package bot

import (
	"math"

	"github.com/iamasit07/connect4/engine/internal/domain"
)

const (
	// terminal scores stay within ±(MINIMAX_WIN + depth), far inside
	// the int32 bounds used for alpha/beta
	MINIMAX_WIN = 1000
)

// chooseMinimaxMove runs alpha-beta minimax to the given depth and
// returns the column with the best root value. Ties keep the first
// maximal column in ascending order.
func (e *Engine) chooseMinimaxMove(board [][]domain.Cell, botPlayer domain.Cell, depth int) Decision {
	validColumns := domain.GetValidMoves(board)
	opponent := domain.Opponent(botPlayer)

	bestCol := validColumns[0]
	bestScore := math.MinInt32
	alpha := math.MinInt32
	beta := math.MaxInt32

	for _, col := range validColumns {
		testBoard, row, _ := domain.SimulateMove(board, col, botPlayer)

		var score int
		if _, won := domain.CheckWin(testBoard, domain.Position{Row: row, Col: col}); won {
			// prefer quicker wins: more remaining depth means the win
			// was found sooner
			score = MINIMAX_WIN + depth
		} else {
			score = minimax(testBoard, depth-1, alpha, beta, false, botPlayer, opponent)
		}

		if score > bestScore {
			bestScore = score
			bestCol = col
		}
		if score > alpha {
			alpha = score
		}
	}

	return Decision{
		Column:     bestCol,
		Confidence: float64(bestScore) / 100,
		Rationale:  classifyRationale(board, bestCol, bestScore, botPlayer),
	}
}

// minimax implements the minimax algorithm with alpha-beta pruning
func minimax(board [][]domain.Cell, depth int, alpha, beta int, isMaximizing bool, botPlayer, opponent domain.Cell) int {
	validColumns := domain.GetValidMoves(board)

	// depth exhausted, or the board is full without a winner
	if depth == 0 || len(validColumns) == 0 {
		return evaluateBoard(board, botPlayer, opponent)
	}

	if isMaximizing {
		maxEval := math.MinInt32
		for _, col := range validColumns {
			testBoard, row, _ := domain.SimulateMove(board, col, botPlayer)

			var eval int
			if _, won := domain.CheckWin(testBoard, domain.Position{Row: row, Col: col}); won {
				eval = MINIMAX_WIN + depth
			} else {
				eval = minimax(testBoard, depth-1, alpha, beta, false, botPlayer, opponent)
			}

			if eval > maxEval {
				maxEval = eval
			}
			if eval > alpha {
				alpha = eval
			}
			if beta <= alpha {
				break // beta cutoff
			}
		}
		return maxEval
	}

	minEval := math.MaxInt32
	for _, col := range validColumns {
		testBoard, row, _ := domain.SimulateMove(board, col, opponent)

		var eval int
		if _, won := domain.CheckWin(testBoard, domain.Position{Row: row, Col: col}); won {
			// prefer delaying losses
			eval = -(MINIMAX_WIN + depth)
		} else {
			eval = minimax(testBoard, depth-1, alpha, beta, true, botPlayer, opponent)
		}

		if eval < minEval {
			minEval = eval
		}
		if eval < beta {
			beta = eval
		}
		if beta <= alpha {
			break // alpha cutoff
		}
	}
	return minEval
}
