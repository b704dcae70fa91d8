package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

func TestRender(t *testing.T) {
	// Given: a board with x at 1 and 8, o at 2
	var board Board
	board[1], board[2], board[8] = X, O, X

	// When: rendering it
	rendered := Render(board)

	// Then: each cell is one character in index order
	assert.Equal(t, "-xo-----x", rendered)
}

func TestParseBoard(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		cells, err := ParseBoard("-xo-----x")
		require.NoError(t, err)

		var board Board
		copy(board[:], cells)

		assert.Equal(t, "-xo-----x", Render(board))
	})

	t.Run("Wrong length", func(t *testing.T) {
		_, err := ParseBoard("-xo")

		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Unknown character", func(t *testing.T) {
		_, err := ParseBoard("-xo--X--x")

		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
		assert.Contains(t, err.Error(), "at 5")
	})
}

func TestMark(t *testing.T) {
	assert.Equal(t, "x", X.String())
	assert.Equal(t, "o", O.String())
	assert.Equal(t, "-", Empty.String())

	assert.Equal(t, O, X.Opponent())
	assert.Equal(t, X, O.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}

func TestFormatGrid(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		var board Board
		board[0], board[4] = X, O

		expected := " x | - | - \n---+---+---\n - | o | - \n---+---+---\n - | - | - "

		assert.Equal(t, expected, FormatGrid(board, nil))
	})

	t.Run("Styled", func(t *testing.T) {
		var board Board
		board[8] = O

		formatted := FormatGrid(board, func(m Mark) string { return "[" + m.String() + "]" })

		assert.Contains(t, formatted, " [-] | [-] | [o] ")
	})
}
