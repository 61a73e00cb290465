// meta/meta.go
package meta

import "math"

// IterationBudget is the default number of MCTS iterations per move.
const IterationBudget = 1000

// GridSize is the default side length of the board.
const GridSize = 10

// ExplorationConstant is the UCT exploration constant C.
const ExplorationConstant = math.Sqrt2

// MaxTurns bounds the local game loop. A Hex game can never exceed the
// number of cells, this is a safety net for malformed strategies.
const MaxTurns = 10000
