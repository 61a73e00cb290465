package searcher

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hex/game"
	"hex/meta"
)

// Searcher picks a move for the color to move on a board.
type Searcher interface {
	FindBestMove(board *game.Board, color game.CellState) (game.Position, error)
	Metrics() SearchMetric
	Name() string
}

type Option func(m *MCTS)

// MCTS is a single-threaded Monte Carlo tree search. The tree is kept between
// calls and reused when the next board is found in it. An MCTS is not safe for
// concurrent use.
type MCTS struct {
	iterations  int
	rng         *rand.Rand
	policy      policy
	tree        *tree
	metrics     Collector
	last        SearchMetric
	diagnostics bool
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		m.iterations = iterations
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

// WithDiagnostics logs candidate moves and the chosen move of every search.
func WithDiagnostics() Option {
	return func(m *MCTS) {
		m.diagnostics = true
	}
}

// NewMCTS returns a plain UCT search.
func NewMCTS(options ...Option) *MCTS {
	return newSearch(uctPolicy{}, options)
}

// NewRAVE returns a search that also keeps all-moves-as-first statistics and
// blends them into selection and the final choice.
func NewRAVE(options ...Option) *MCTS {
	return newSearch(ravePolicy{}, options)
}

func newSearch(p policy, options []Option) *MCTS {
	m := &MCTS{ // Default values
		iterations: meta.IterationBudget,
		policy:     p,
		metrics:    NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.iterations < 1 {
		panic("Must specify a positive iteration budget")
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

func (m *MCTS) Name() string {
	return m.policy.name()
}

// Metrics returns the metric of the last search. It is empty unless the
// search was built WithMetrics.
func (m *MCTS) Metrics() SearchMetric {
	return m.last
}

// FindBestMove runs the iteration budget from board with color to move and
// returns the chosen cell. The board is never modified.
func (m *MCTS) FindBestMove(board *game.Board, color game.CellState) (game.Position, error) {
	if board == nil {
		return game.Position{}, ErrNilBoard
	}
	if color != game.Blue && color != game.Red {
		return game.Position{}, fmt.Errorf("%w: got %s", ErrInvalidColor, color)
	}
	if board.IsTerminal() {
		return game.Position{}, ErrGameOver
	}

	m.metrics.Start()
	m.resolveRoot(board, color)

	for i := 0; i < m.iterations; i++ {
		m.iterate(color)
		m.metrics.AddIteration()
	}
	// The first iteration on a fresh root only simulates it, so a budget of
	// one would leave nothing to choose from.
	if len(m.tree.node(m.tree.root).children) == 0 && !m.tree.isTerminal(m.tree.root) {
		m.iterate(color)
	}

	best := m.bestChild()
	move := m.tree.node(best).move
	m.tree.reroot(best)
	m.last = m.metrics.Complete(m.tree.size())

	if m.diagnostics {
		log.Info().
			Str("searcher", m.Name()).
			Str("color", color.String()).
			Stringer("move", move).
			Dur("elapsed", m.last.Duration).
			Msgf("%s chose %s", m.Name(), move)
	}
	return move, nil
}

func (m *MCTS) resolveRoot(board *game.Board, color game.CellState) {
	if m.tree != nil {
		if id, ok := m.tree.find(board, color); ok {
			m.tree.reroot(id)
			m.metrics.SetTreeReused(true)
			return
		}
	}
	m.tree = newTree(board.Copy(), color)
	m.metrics.SetTreeReused(false)
}

func (m *MCTS) iterate(color game.CellState) {
	id := m.selectNode()
	id = m.expandNode(id)
	result, played := m.simulate(id, color)
	if m.policy.usesAmaf() && played != nil {
		m.propagateAmaf(played, result)
	}
	m.backpropagate(id, result)
}

// selectNode descends while the current node is fully expanded and not terminal.
func (m *MCTS) selectNode() NodeID {
	id := m.tree.root
	for !m.tree.isTerminal(id) && m.tree.isFullyExpanded(id) {
		id = m.policy.selectChild(m.tree, id)
	}
	return id
}

// expandNode grows one random unexplored child under a node that was already
// simulated once, and returns the node to simulate from.
func (m *MCTS) expandNode(id NodeID) NodeID {
	n := m.tree.node(id)
	if n.visits == 0 || m.tree.isTerminal(id) || m.tree.isFullyExpanded(id) {
		return id
	}
	moves := m.tree.unexplored(id)
	if len(moves) == 0 {
		return id
	}
	return m.tree.expand(id, moves[m.rng.Intn(len(moves))])
}

// simulate plays random moves from the node until the game ends and scores the
// outcome for color. It also returns the cells color played during the
// rollout, or nil when the node was already terminal.
func (m *MCTS) simulate(id NodeID, color game.CellState) (float64, map[game.Position]bool) {
	n := m.tree.node(id)
	if m.tree.isTerminal(id) {
		return score(n.board, color), nil
	}

	board := n.board.Copy()
	current := n.toMove
	played := make(map[game.Position]bool)
	for !board.IsTerminal() {
		moves := board.AvailableMoves()
		move := moves[m.rng.Intn(len(moves))]
		if err := board.Place(move, current); err != nil {
			panic(err)
		}
		if current == color {
			played[move] = true
		}
		current = current.Opposite()
	}
	m.metrics.AddRollout()
	return score(board, color), played
}

func score(board *game.Board, color game.CellState) float64 {
	if board.HasWon(color) {
		return Win
	}
	return Loss
}

func (m *MCTS) backpropagate(id NodeID, result float64) {
	for _, p := range m.tree.path(id) {
		n := m.tree.node(p)
		if result > 0 {
			n.addWins(result)
		} else {
			n.addLosses(-result)
		}
		n.incrementVisits()
	}
}

// propagateAmaf credits every node of the tree, on or off the selected path,
// whose move was played by the searching color during the rollout.
func (m *MCTS) propagateAmaf(played map[game.Position]bool, result float64) {
	stack := []NodeID{m.tree.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := m.tree.node(id)
		if n.hasMove && played[n.move] {
			if result > 0 {
				n.setRaveWins(n.raveWins + result)
			}
			n.addRaveVisit()
		}
		stack = append(stack, n.children...)
	}
}

func (m *MCTS) bestChild() NodeID {
	root := m.tree.node(m.tree.root)
	if m.diagnostics {
		for _, c := range root.children {
			child := m.tree.node(c)
			log.Debug().
				Stringer("move", child.move).
				Int("visits", child.visits).
				Float64("wins", child.wins).
				Float64("losses", child.losses).
				Float64("value", m.policy.rank(child)).
				Msg("candidate")
		}
	}
	return argmax(root.children, func(c NodeID) float64 {
		return m.policy.rank(m.tree.node(c))
	})
}
