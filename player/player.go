package player

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	"hex/display"
	"hex/game"
	"hex/meta"
	"hex/searcher"
)

// Strategy kinds accepted by New.
const (
	KindRandom = "random"
	KindMCTS   = "mcts"
	KindRAVE   = "rave"
	KindHuman  = "human"
)

func Kinds() []string {
	return []string{KindRandom, KindMCTS, KindRAVE, KindHuman}
}

// Player represents one side of a game.
type Player struct {
	Name     string
	Color    game.CellState
	Kind     string
	Budget   int
	Strategy Strategy

	lastMove *game.Position
}

type Option func(c *config)

type config struct {
	input         io.Reader
	display       display.Handler
	rng           *rand.Rand
	searchOptions []searcher.Option
}

// WithInput sets where a human player reads moves from. Defaults to stdin.
func WithInput(r io.Reader) Option {
	return func(c *config) {
		c.input = r
	}
}

func WithDisplay(h display.Handler) Option {
	return func(c *config) {
		if h != nil {
			c.display = h
		}
	}
}

// WithRand shares a random source with random and search players.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

func WithSearchOptions(options ...searcher.Option) Option {
	return func(c *config) {
		c.searchOptions = append(c.searchOptions, options...)
	}
}

// New builds a player of the given kind. The budget only applies to search
// players; a non-positive budget falls back to meta.IterationBudget.
func New(name string, color game.CellState, kind string, budget int, options ...Option) (*Player, error) {
	c := &config{
		input:   os.Stdin,
		display: display.Quiet{},
	}
	for _, option := range options {
		option(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	kind = strings.ToLower(strings.TrimSpace(kind))
	if budget < 1 {
		budget = meta.IterationBudget
	}
	searchOptions := append([]searcher.Option{
		searcher.WithIterations(budget),
		searcher.WithRand(c.rng),
	}, c.searchOptions...)

	var strategy Strategy
	switch kind {
	case KindRandom:
		strategy = NewRandom(c.rng)
	case KindMCTS:
		strategy = NewSearch(searcher.NewMCTS(searchOptions...))
	case KindRAVE:
		strategy = NewSearch(searcher.NewRAVE(searchOptions...))
	case KindHuman:
		strategy = NewHuman(c.input, c.display)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, kind)
	}

	return &Player{
		Name:     name,
		Color:    color,
		Kind:     kind,
		Budget:   budget,
		Strategy: strategy,
	}, nil
}

// Play asks the strategy for a move and places it on board.
func (p *Player) Play(board *game.Board) (game.Position, error) {
	move, err := p.Strategy.Choose(board, p.Color)
	if err != nil {
		return game.Position{}, fmt.Errorf("%s could not choose a move: %w", p.Name, err)
	}
	if err := board.Place(move, p.Color); err != nil {
		return game.Position{}, fmt.Errorf("%s chose an illegal move: %w", p.Name, err)
	}
	p.lastMove = &move
	return move, nil
}

// LastMove returns the last cell this player played, if any.
func (p *Player) LastMove() (game.Position, bool) {
	if p.lastMove == nil {
		return game.Position{}, false
	}
	return *p.lastMove, true
}

// Metrics returns the search metric of the last move for search players.
func (p *Player) Metrics() (searcher.SearchMetric, bool) {
	s, ok := p.Strategy.(*Search)
	if !ok {
		return searcher.SearchMetric{}, false
	}
	return s.Metrics(), true
}

func (p *Player) String() string {
	return fmt.Sprintf("%s [color=%s, strategy=%s]", p.Name, p.Color, p.Kind)
}
