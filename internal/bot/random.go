package bot

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"golang.org/x/exp/rand"
)

// RandSource draws integers in [0, n).
type RandSource interface {
	Intn(n int) int
}

// NewRandSource - returns the default source, seeded for reproducible games.
func NewRandSource(seed uint64) RandSource {
	return rand.New(rand.NewSource(seed))
}

// Random picks uniformly among the open spaces.
type Random struct {
	src RandSource
}

func NewRandom(src RandSource) *Random {
	return &Random{src: src}
}

func (that *Random) IsComputer() bool {
	return true
}

func (that *Random) NextMove(game *tictactoe.Game, _ tictactoe.Mark) (int, error) {
	openSpaces := game.OpenSpaces()
	if len(openSpaces) == 0 {
		return 0, apperror.ErrNoOpenSpaces
	}

	return openSpaces[that.src.Intn(len(openSpaces))], nil
}
