package searcher

import "errors"

var (
	ErrNilBoard     = errors.New("board is nil")
	ErrInvalidColor = errors.New("color to move must be blue or red")
	ErrGameOver     = errors.New("game is already over")
)
