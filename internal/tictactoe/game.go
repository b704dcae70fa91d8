package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Game owns a board and the two seats playing on it.
type Game struct {
	board    Board
	playerX  Player
	playerO  Player
	autoplay bool
}

type Option func(*options)

type options struct {
	board    []Mark
	autoplay bool
}

// WithBoard - starts the game from a copy of the given cells.
func WithBoard(cells []Mark) Option {
	return func(o *options) {
		o.board = cells
	}
}

// WithAutoplay - toggles automatic moves for decision makers, enabled by default.
func WithAutoplay(autoplay bool) Option {
	return func(o *options) {
		o.autoplay = autoplay
	}
}

// NewGame - creates a game. When player X decides its own moves and autoplay
// is on, its first move (and any cascade that follows) is made right away.
func NewGame(playerX, playerO Player, opts ...Option) (*Game, error) {
	o := options{autoplay: true}
	for _, opt := range opts {
		opt(&o)
	}

	game := &Game{
		playerX:  playerX,
		playerO:  playerO,
		autoplay: o.autoplay,
	}

	if o.board != nil {
		if len(o.board) != GridSize {
			return nil, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, GridSize, len(o.board))
		}
		copy(game.board[:], o.board)
	}

	if game.autoplay && game.IsInProgress() {
		if err := game.play(X); err != nil {
			return nil, fmt.Errorf("failed to autoplay opening moves: %w", err)
		}
	}

	return game, nil
}

func (that *Game) PlayerX() Player { return that.playerX }

func (that *Game) PlayerO() Player { return that.playerO }

// Player - returns the player seated at the given mark.
func (that *Game) Player(mark Mark) Player {
	switch mark {
	case X:
		return that.playerX
	case O:
		return that.playerO
	default:
		return nil
	}
}

func (that *Game) IsAutoplay() bool { return that.autoplay }

// Grid - returns a copy of the board.
func (that *Game) Grid() Board {
	return that.board
}

// OpenSpaces - returns the empty cell indices in ascending order.
func (that *Game) OpenSpaces() []int {
	spaces := make([]int, 0, GridSize)
	for i, cell := range that.board {
		if cell == Empty {
			spaces = append(spaces, i)
		}
	}

	return spaces
}

func (that *Game) IsGridFull() bool {
	for _, cell := range that.board {
		if cell == Empty {
			return false
		}
	}

	return true
}

// WinningRow - returns the first completed line in WinCombos order.
func (that *Game) WinningRow() ([3]int, bool) {
	return winningRow(&that.board)
}

func (that *Game) HasWinner() bool {
	_, ok := that.WinningRow()
	return ok
}

// Winner - returns the mark owning the winning row, or Empty.
func (that *Game) Winner() Mark {
	row, ok := that.WinningRow()
	if !ok {
		return Empty
	}

	return that.board[row[0]]
}

func (that *Game) IsWinner(mark Mark) bool {
	return mark != Empty && that.Winner() == mark
}

func (that *Game) IsPlayerXWinner() bool { return that.IsWinner(X) }

func (that *Game) IsPlayerOWinner() bool { return that.IsWinner(O) }

func (that *Game) IsOver() bool {
	return that.IsGridFull() || that.HasWinner()
}

func (that *Game) IsInProgress() bool {
	return !that.IsOver()
}

// Turn - returns the seat to move, assuming X opened the game.
func (that *Game) Turn() Mark {
	var xCount, oCount int
	for _, cell := range that.board {
		switch cell {
		case X:
			xCount++
		case O:
			oCount++
		}
	}

	if xCount > oCount {
		return O
	}
	return X
}

// NextPlayer - toggles between the two seats.
func (that *Game) NextPlayer(current Mark) Mark {
	if current == X {
		return O
	}
	return X
}

// Move - places current's mark at position. With autoplay on, decision makers
// answer immediately until the game ends or a passive player is to move.
func (that *Game) Move(current Mark, position int) error {
	if err := that.place(current, position); err != nil {
		return err
	}

	if !that.autoplay {
		return nil
	}

	return that.play(that.NextPlayer(current))
}

func (that *Game) MoveX(position int) error {
	return that.Move(X, position)
}

func (that *Game) MoveO(position int) error {
	return that.Move(O, position)
}

func (that *Game) String() string {
	return Render(that.board)
}

func (that *Game) place(mark Mark, position int) error {
	if mark != X && mark != O {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	if position < 0 || position >= GridSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, position)
	}

	if that.board[position] != Empty {
		return fmt.Errorf("%w: grid position '%d' is not empty", apperror.ErrCellOccupied, position)
	}

	that.board[position] = mark

	return nil
}

// play - lets decision makers move in turn, starting with mark.
func (that *Game) play(mark Mark) error {
	for that.IsInProgress() {
		decider, ok := that.Player(mark).(DecisionMaker)
		if !ok || !decider.IsComputer() {
			return nil
		}

		position, err := decider.NextMove(that, mark)
		if err != nil {
			return fmt.Errorf("player %s failed to choose a move: %w", mark, err)
		}

		if err = that.place(mark, position); err != nil {
			return fmt.Errorf("player %s made an invalid move: %w", mark, err)
		}

		mark = that.NextPlayer(mark)
	}

	return nil
}
