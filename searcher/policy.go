package searcher

import (
	"math"

	"hex/meta"
)

// policy holds what differs between plain MCTS and RAVE: how a child is
// selected, how root children are ranked at the end, and whether rollouts feed
// AMAF statistics.
type policy interface {
	name() string
	selectChild(t *tree, id NodeID) NodeID
	rank(n *node) float64
	usesAmaf() bool
}

type uctPolicy struct{}

func (uctPolicy) name() string { return "mcts" }

func (uctPolicy) selectChild(t *tree, id NodeID) NodeID {
	return argmax(t.node(id).children, t.uct)
}

func (uctPolicy) rank(n *node) float64 { return n.ratio() }

func (uctPolicy) usesAmaf() bool { return false }

type ravePolicy struct{}

func (ravePolicy) name() string { return "rave" }

// selectChild adds an exploration bonus on top of the blended value. Unlike
// uct the child visits are shifted by one so unvisited children stay finite.
func (ravePolicy) selectChild(t *tree, id NodeID) NodeID {
	lnN := math.Log(float64(t.node(id).visits))
	return argmax(t.node(id).children, func(c NodeID) float64 {
		n := t.node(c)
		return n.combinedValue() + meta.ExplorationConstant*math.Sqrt(lnN/float64(n.visits+1))
	})
}

func (ravePolicy) rank(n *node) float64 { return n.combinedValue() }

func (ravePolicy) usesAmaf() bool { return true }

// argmax returns the first child with the highest score.
func argmax(children []NodeID, score func(NodeID) float64) NodeID {
	if len(children) == 0 {
		panic("node has no children")
	}
	best := children[0]
	bestScore := score(best)
	for _, c := range children[1:] {
		if s := score(c); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best
}
