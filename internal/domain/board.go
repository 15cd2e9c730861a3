package domain

func NewBoard() [][]Cell {
	board := make([][]Cell, Rows)
	for i := range board {
		board[i] = make([]Cell, Columns)
	}
	return board
}

func IsValidMove(board [][]Cell, column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// here board[0] represents the top row (0 -> top and 5 -> bottom)
	if board[0][column] != Empty {
		return false
	}

	return true
}

// DropDisk places a disk in the lowest empty row of the column and
// returns the row it landed in.
func DropDisk(board [][]Cell, column int, player Cell) (int, error) {
	// scan from the bottom up until we find an empty slot
	for row := Rows - 1; row >= 0; row-- {
		if board[row][column] == Empty {
			board[row][column] = player
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

func IsBoardFull(board [][]Cell) bool {
	for c := 0; c < Columns; c++ {
		if board[0][c] == Empty {
			return false
		}
	}

	return true
}

// this creates a deep copy of the board
func CopyBoard(board [][]Cell) [][]Cell {
	newBoard := make([][]Cell, len(board))
	for i := range board {
		newBoard[i] = make([]Cell, len(board[i]))
		copy(newBoard[i], board[i])
	}
	return newBoard
}

// GetValidMoves returns the playable columns in ascending order.
func GetValidMoves(board [][]Cell) []int {
	validMoves := []int{}
	for col := 0; col < Columns; col++ {
		if IsValidMove(board, col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// SimulateMove drops a disk on a copy of the board, leaving the
// original untouched.
func SimulateMove(board [][]Cell, column int, player Cell) ([][]Cell, int, error) {
	newBoard := CopyBoard(board)
	row, err := DropDisk(newBoard, column, player)
	if err != nil {
		return nil, -1, err
	}
	return newBoard, row, nil
}

// this counts the number of disks in a specific direction
func CountDiskInDirection(board [][]Cell, row, column int, deltaRow, deltaCol int, player Cell) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < Rows && c >= 0 && c < Columns && board[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
