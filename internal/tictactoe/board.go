package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// GridSize is the number of cells on the board.
const GridSize = 9

// Mark is the content of a cell and, for X and O, the identity of a seat.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// Board is the 3x3 grid laid out row-major.
type Board [GridSize]Mark

// WinCombos lists the winning lines: rows, then columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (m Mark) String() string {
	switch m {
	case X:
		return "x"
	case O:
		return "o"
	default:
		return "-"
	}
}

// Opponent - returns the other seat's mark. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Render - renders the board as 9 characters in index order.
func Render(board Board) string {
	var sb strings.Builder
	sb.Grow(GridSize)

	for _, cell := range board {
		sb.WriteString(cell.String())
	}

	return sb.String()
}

// ParseBoard - parses the Render form back into cells.
func ParseBoard(s string) ([]Mark, error) {
	if len(s) != GridSize {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, GridSize, len(s))
	}

	cells := make([]Mark, 0, GridSize)
	for i, ch := range s {
		switch ch {
		case '-':
			cells = append(cells, Empty)
		case 'x':
			cells = append(cells, X)
		case 'o':
			cells = append(cells, O)
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d", apperror.ErrInvalidBoard, ch, i)
		}
	}

	return cells, nil
}

// FormatGrid - lays the board out as three rows for terminal output.
// style decorates each cell; nil prints the plain mark.
func FormatGrid(board Board, style func(Mark) string) string {
	if style == nil {
		style = Mark.String
	}

	rows := make([]string, 0, 3)
	for row := 0; row < 3; row++ {
		cells := board[row*3 : row*3+3]
		rows = append(rows, fmt.Sprintf(" %s | %s | %s ", style(cells[0]), style(cells[1]), style(cells[2])))
	}

	return strings.Join(rows, "\n---+---+---\n")
}

func winningRow(board *Board) ([3]int, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != Empty && a == b && b == c {
			return combo, true
		}
	}

	return [3]int{}, false
}
