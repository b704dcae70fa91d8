package bot

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	KindHuman   = "human"
	KindRandom  = "random"
	KindMinimax = "minimax"
)

// NewPlayer - builds the player configured for a seat.
func NewPlayer(kind string, src RandSource) (tictactoe.Player, error) {
	switch kind {
	case KindHuman:
		return tictactoe.NewHuman(), nil
	case KindRandom:
		return NewRandom(src), nil
	case KindMinimax:
		return NewMinimax(), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayerKind, kind)
	}
}
