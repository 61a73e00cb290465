package searcher

import (
	"math"

	"hex/game"
	"hex/meta"
)

// NodeID addresses a node inside its tree arena.
type NodeID int

const noNode NodeID = -1

type node struct {
	move     game.Position
	hasMove  bool // false for the root
	board    *game.Board
	toMove   game.CellState
	parent   NodeID
	children []NodeID

	visits     int
	wins       float64
	losses     float64
	raveVisits float64
	raveWins   float64
}

func newNode(board *game.Board, toMove game.CellState) node {
	return node{board: board, toMove: toMove, parent: noNode}
}

// uct scores the node for selection under a parent with the given visit count.
func (n *node) uct(parentVisits int) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	visits := float64(n.visits)
	return n.wins/visits + meta.ExplorationConstant*math.Sqrt(math.Log(float64(parentVisits))/visits)
}

// ratio is wins over losses, 0 when nothing was recorded and +Inf when only wins were.
func (n *node) ratio() float64 {
	return quotient(n.wins, n.losses)
}

func (n *node) amaf() float64 {
	return quotient(n.raveWins, n.raveVisits)
}

func (n *node) mctsValue() float64 {
	return n.ratio()
}

// combinedValue blends the AMAF estimate into the tree value. With k tied to the
// RAVE visit count, beta is a constant 0.75.
func (n *node) combinedValue() float64 {
	amaf, value := n.amaf(), n.mctsValue()
	if math.IsInf(amaf, 1) || math.IsInf(value, 1) {
		return math.Inf(1)
	}
	if n.raveVisits == 0 {
		return value
	}
	k := 3 * n.raveVisits
	beta := k / (n.raveVisits + k)
	return beta*amaf + (1-beta)*value
}

func quotient(num, den float64) float64 {
	if den == 0 {
		if num == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return num / den
}

func (n *node) addWins(v float64)   { n.wins += v }
func (n *node) addLosses(v float64) { n.losses += v }
func (n *node) incrementVisits()    { n.visits++ }
func (n *node) addRaveVisit()       { n.raveVisits++ }

func (n *node) setRaveWins(v float64) { n.raveWins = v }

// Rollout outcomes from the searching color's point of view.
const (
	Win  = 1.0
	Loss = -1.0
)
