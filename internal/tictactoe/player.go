package tictactoe

// Player is a seat holder. Passive players get their moves from outside.
type Player interface {
	IsComputer() bool
}

// DecisionMaker is a player that picks its own move for the given seat.
type DecisionMaker interface {
	Player
	NextMove(game *Game, mark Mark) (int, error)
}

// Human waits for moves supplied by the caller.
type Human struct{}

func NewHuman() *Human {
	return &Human{}
}

func (that *Human) IsComputer() bool {
	return false
}
