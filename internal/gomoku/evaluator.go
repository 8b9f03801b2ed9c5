package gomoku

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

// WinLength is the run of identical tokens that wins the game.
const WinLength = 5

// Result is the terminal status of a board.
type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultDraw
)

// Four scan directions: right, down, down-right, down-left. Together with
// every cell as a run start they cover all rows, columns and diagonals.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// Evaluate is a pure function of the full board. It reports a win with the
// winning token, a draw when every cell is occupied, or neither. A filling
// move that also completes a run is a win, not a draw.
func Evaluate(board *entity.Board) (Result, string) {
	if token := findWinner(board); token != entity.EmptyCell {
		return ResultWin, token
	}

	if isFull(board) {
		return ResultDraw, entity.EmptyCell
	}

	return ResultNone, entity.EmptyCell
}

func findWinner(board *entity.Board) string {
	for x := 0; x < entity.BoardSize; x++ {
		for y := 0; y < entity.BoardSize; y++ {
			token := board[x][y]
			if token == entity.EmptyCell {
				continue
			}

			for _, dir := range directions {
				if hasRun(board, x, y, dir[0], dir[1], token) {
					return token
				}
			}
		}
	}

	return entity.EmptyCell
}

func hasRun(board *entity.Board, x, y, dx, dy int, token string) bool {
	endX := x + (WinLength-1)*dx
	endY := y + (WinLength-1)*dy
	if endX < 0 || endX >= entity.BoardSize || endY < 0 || endY >= entity.BoardSize {
		return false
	}

	for i := 1; i < WinLength; i++ {
		if board[x+i*dx][y+i*dy] != token {
			return false
		}
	}

	return true
}

func isFull(board *entity.Board) bool {
	for x := 0; x < entity.BoardSize; x++ {
		for y := 0; y < entity.BoardSize; y++ {
			if board[x][y] == entity.EmptyCell {
				return false
			}
		}
	}

	return true
}
