package game

import "errors"

var (
	ErrInvalidPosition = errors.New("position is not on the board")
	ErrInvalidSize     = errors.New("board size must be at least 1")
	ErrOccupied        = errors.New("cell is already occupied")
)
