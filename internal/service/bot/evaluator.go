package bot

import (
	"github.com/iamasit07/connect4/engine/internal/domain"
)

const (
	// per-window scores (from strongest to weakest)
	SCORE_THREE_IN_ROW = 50 // 3 pieces + 1 empty in a window
	SCORE_TWO_IN_ROW   = 10 // 2 pieces + 2 empty
	SCORE_ONE_IN_ROW   = 1  // 1 piece + 3 empty
	SCORE_CENTER       = 3  // per piece in the center column
)

// evaluateBoard scores a non-terminal board from botPlayer's point of
// view: every length-4 window in all four directions plus a flat bonus
// for occupying the center column.
func evaluateBoard(board [][]domain.Cell, botPlayer, opponent domain.Cell) int {
	score := 0

	forEachWindow(board, func(window [domain.ToWin]domain.Cell) {
		score += scoreWindow(window, botPlayer, opponent)
	})

	centerCol := domain.Columns / 2
	for row := 0; row < domain.Rows; row++ {
		switch board[row][centerCol] {
		case botPlayer:
			score += SCORE_CENTER
		case opponent:
			score -= SCORE_CENTER
		}
	}

	return score
}

// scoreWindow rates one window of 4 cells. Windows holding both colors
// are dead and score zero.
func scoreWindow(window [domain.ToWin]domain.Cell, botPlayer, opponent domain.Cell) int {
	botCount, oppCount := 0, 0
	for _, cell := range window {
		switch cell {
		case botPlayer:
			botCount++
		case opponent:
			oppCount++
		}
	}

	if botCount > 0 && oppCount > 0 {
		return 0
	}

	switch botCount {
	case 3:
		return SCORE_THREE_IN_ROW
	case 2:
		return SCORE_TWO_IN_ROW
	case 1:
		return SCORE_ONE_IN_ROW
	}

	switch oppCount {
	case 3:
		return -SCORE_THREE_IN_ROW
	case 2:
		return -SCORE_TWO_IN_ROW
	case 1:
		return -SCORE_ONE_IN_ROW
	}

	return 0
}

// countOpenThreats counts windows where player has 3 pieces and the
// fourth cell is still empty. Two or more of them is a double threat
// the opponent cannot block in one move.
func countOpenThreats(board [][]domain.Cell, player domain.Cell) int {
	threats := 0
	forEachWindow(board, func(window [domain.ToWin]domain.Cell) {
		playerCount, emptyCount := 0, 0
		for _, cell := range window {
			switch cell {
			case player:
				playerCount++
			case domain.Empty:
				emptyCount++
			}
		}
		if playerCount == 3 && emptyCount == 1 {
			threats++
		}
	})
	return threats
}

// forEachWindow visits every length-4 window: horizontal, vertical,
// diagonal \ and diagonal /.
func forEachWindow(board [][]domain.Cell, visit func([domain.ToWin]domain.Cell)) {
	var window [domain.ToWin]domain.Cell

	// horizontal
	for row := 0; row < domain.Rows; row++ {
		for col := 0; col <= domain.Columns-domain.ToWin; col++ {
			for i := 0; i < domain.ToWin; i++ {
				window[i] = board[row][col+i]
			}
			visit(window)
		}
	}

	// vertical
	for col := 0; col < domain.Columns; col++ {
		for row := 0; row <= domain.Rows-domain.ToWin; row++ {
			for i := 0; i < domain.ToWin; i++ {
				window[i] = board[row+i][col]
			}
			visit(window)
		}
	}

	// diagonal \
	for row := 0; row <= domain.Rows-domain.ToWin; row++ {
		for col := 0; col <= domain.Columns-domain.ToWin; col++ {
			for i := 0; i < domain.ToWin; i++ {
				window[i] = board[row+i][col+i]
			}
			visit(window)
		}
	}

	// diagonal /
	for row := 0; row <= domain.Rows-domain.ToWin; row++ {
		for col := 0; col <= domain.Columns-domain.ToWin; col++ {
			for i := 0; i < domain.ToWin; i++ {
				window[i] = board[row+domain.ToWin-1-i][col+i]
			}
			visit(window)
		}
	}
}
