package bot

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	valueWin  = 1
	valueDraw = 0
	valueLoss = -1
)

// Result is a searched move and its outcome for the maximizing mark.
// Space is meaningless for terminal positions.
type Result struct {
	Space int
	Value int
}

// Minimax plays perfectly by exploring the whole game tree.
type Minimax struct{}

func NewMinimax() *Minimax {
	return &Minimax{}
}

func (that *Minimax) IsComputer() bool {
	return true
}

func (that *Minimax) NextMove(game *tictactoe.Game, mark tictactoe.Mark) (int, error) {
	if game.IsOver() {
		return 0, apperror.ErrGameFinished
	}

	result, err := Search(game, mark, mark)
	if err != nil {
		return 0, err
	}

	return result.Space, nil
}

// Search - scores every continuation from game with current to move.
// Among equally valued moves the lowest open space is kept.
func Search(game *tictactoe.Game, current, maximizing tictactoe.Mark) (Result, error) {
	if game.IsOver() {
		switch {
		case game.IsWinner(maximizing):
			return Result{Value: valueWin}, nil
		case game.HasWinner():
			return Result{Value: valueLoss}, nil
		default:
			return Result{Value: valueDraw}, nil
		}
	}

	next := game.NextPlayer(current)
	board := game.Grid()

	children := make([]Result, 0, tictactoe.GridSize)
	for _, space := range game.OpenSpaces() {
		nextGame, err := tictactoe.NewGame(game.PlayerX(), game.PlayerO(),
			tictactoe.WithBoard(board[:]),
			tictactoe.WithAutoplay(false),
		)
		if err != nil {
			return Result{}, fmt.Errorf("failed to create hypothetical game: %w", err)
		}

		if err = nextGame.Move(current, space); err != nil {
			return Result{}, fmt.Errorf("failed to try space %d: %w", space, err)
		}

		child, err := Search(nextGame, next, maximizing)
		if err != nil {
			return Result{}, err
		}

		children = append(children, Result{Space: space, Value: child.Value})
	}

	best := children[0]
	for _, child := range children {
		if current == maximizing {
			if child.Value > best.Value {
				best = child
			}
		} else if child.Value < best.Value {
			best = child
		}
	}

	return best, nil
}
