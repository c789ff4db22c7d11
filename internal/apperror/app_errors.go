package apperror

import "errors"

var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrOutOfBounds    = errors.New("cell is out of bounds")
	ErrMalformedInput = errors.New("malformed move input")
	ErrEmptyRotation  = errors.New("no players in rotation")
	ErrInputClosed    = errors.New("move input closed")
)
