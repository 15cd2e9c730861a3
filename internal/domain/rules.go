package domain

// the four line directions, checked in this order
var winDirections = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// CheckWin only checks lines passing through the last move, which is
// enough because any new four-in-a-row must include the placed disk.
// It returns the winning line (exactly ToWin positions) for the first
// direction that connects, scanning horizontal, vertical, diagonal \
// and diagonal / in that order.
func CheckWin(board [][]Cell, last Position) ([]Position, bool) {
	player := board[last.Row][last.Col]
	if player == Empty {
		return nil, false
	}

	for _, dir := range winDirections {
		dRow, dCol := dir[0], dir[1]

		forward := collectRun(board, last, dRow, dCol, player)
		backward := collectRun(board, last, -dRow, -dCol, player)

		count := 1 + len(forward) + len(backward)
		if count < ToWin {
			continue
		}

		// assemble the full run ordered along the direction, then
		// report a connected window of ToWin cells
		line := make([]Position, 0, count)
		for i := len(backward) - 1; i >= 0; i-- {
			line = append(line, backward[i])
		}
		line = append(line, last)
		line = append(line, forward...)
		return line[:ToWin], true
	}

	return nil, false
}

// collectRun walks from pos in the given direction and collects the
// consecutive cells holding player's color, nearest first.
func collectRun(board [][]Cell, pos Position, dRow, dCol int, player Cell) []Position {
	run := []Position{}
	r, c := pos.Row+dRow, pos.Col+dCol
	for r >= 0 && r < Rows && c >= 0 && c < Columns && board[r][c] == player {
		run = append(run, Position{Row: r, Col: c})
		r += dRow
		c += dCol
	}
	return run
}
