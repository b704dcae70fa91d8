package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrInvalidMark       = errors.New("invalid player mark")
	ErrInvalidBoard      = errors.New("invalid board")
	ErrNoOpenSpaces      = errors.New("no open spaces")
	ErrUnknownPlayerKind = errors.New("unknown player kind")
	ErrInputExhausted    = errors.New("no more input for human player")
)
