package searcher

import (
	"hex/game"
)

// tree owns every node of a search. Links between nodes are ids into the
// arena, so the parent link never keeps a subtree alive on its own.
type tree struct {
	nodes []node
	root  NodeID
}

func newTree(board *game.Board, toMove game.CellState) *tree {
	t := &tree{}
	t.root = t.add(newNode(board, toMove))
	return t
}

func (t *tree) add(n node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

func (t *tree) node(id NodeID) *node {
	return &t.nodes[id]
}

func (t *tree) size() int {
	return len(t.nodes)
}

// expand creates the child reached by playing move for the node's color to move.
func (t *tree) expand(id NodeID, move game.Position) NodeID {
	parent := t.node(id)
	board := parent.board.Copy()
	if err := board.Place(move, parent.toMove); err != nil {
		panic(err)
	}
	child := newNode(board, parent.toMove.Opposite())
	child.move = move
	child.hasMove = true
	child.parent = id

	childID := t.add(child)
	// parent may have moved when the arena grew
	parent = t.node(id)
	parent.children = append(parent.children, childID)
	return childID
}

// unexplored lists the legal moves of a node that have no child yet, in board order.
func (t *tree) unexplored(id NodeID) []game.Position {
	n := t.node(id)
	seen := make(map[game.Position]bool, len(n.children))
	for _, c := range n.children {
		seen[t.node(c).move] = true
	}
	var moves []game.Position
	for _, m := range n.board.AvailableMoves() {
		if !seen[m] {
			moves = append(moves, m)
		}
	}
	return moves
}

func (t *tree) isFullyExpanded(id NodeID) bool {
	n := t.node(id)
	return len(n.children) == len(n.board.AvailableMoves())
}

func (t *tree) isLeaf(id NodeID) bool {
	n := t.node(id)
	return len(n.children) == 0 ||
		len(n.board.AvailableMoves()) == 0 ||
		n.board.HasWon(game.Blue) || n.board.HasWon(game.Red)
}

func (t *tree) isTerminal(id NodeID) bool {
	b := t.node(id).board
	return b.IsTerminal() || b.HasWon(game.Blue) || b.HasWon(game.Red)
}

// uct scores a non-root node against its parent's visit count.
func (t *tree) uct(id NodeID) float64 {
	n := t.node(id)
	if n.parent == noNode {
		panic("cannot compute UCT of the root")
	}
	return n.uct(t.node(n.parent).visits)
}

// find walks the tree in pre-order (children first, then their subtrees, in
// child order) looking for the node holding board with color to move.
func (t *tree) find(board *game.Board, color game.CellState) (NodeID, bool) {
	root := t.node(t.root)
	if root.toMove == color && root.board.Equal(board) {
		return t.root, true
	}
	stack := []NodeID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children := t.node(id).children
		for _, c := range children {
			n := t.node(c)
			if n.toMove == color && n.board.Equal(board) {
				return c, true
			}
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return noNode, false
}

// reroot makes id the root and drops every node outside its subtree by copying
// the subtree into a fresh arena.
func (t *tree) reroot(id NodeID) {
	nodes := make([]node, 0, t.subtreeSize(id))
	remap := make(map[NodeID]NodeID)

	queue := []NodeID{id}
	for len(queue) > 0 {
		old := queue[0]
		queue = queue[1:]
		remap[old] = NodeID(len(nodes))
		nodes = append(nodes, *t.node(old))
		queue = append(queue, t.node(old).children...)
	}

	for i := range nodes {
		n := &nodes[i]
		if i == 0 {
			n.parent = noNode
		} else {
			n.parent = remap[n.parent]
		}
		children := make([]NodeID, len(n.children))
		for j, c := range n.children {
			children[j] = remap[c]
		}
		n.children = children
	}

	t.nodes = nodes
	t.root = 0
}

func (t *tree) subtreeSize(id NodeID) int {
	count := 0
	stack := []NodeID{id}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		stack = append(stack, t.node(top).children...)
	}
	return count
}

// path lists the nodes from id up to the root.
func (t *tree) path(id NodeID) []NodeID {
	var ids []NodeID
	for id != noNode {
		ids = append(ids, id)
		id = t.node(id).parent
	}
	return ids
}
