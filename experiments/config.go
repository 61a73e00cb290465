package experiments

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"hex/game"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

// Config describes a sweep. Every combination of the lists is played Games times.
type Config struct {
	GridSizes       []int    `yaml:"grid_sizes" json:"grid_sizes" validate:"required,min=1,dive,min=1,max=19"`
	BudgetsBlue     []int    `yaml:"budgets_blue" json:"budgets_blue" validate:"required,min=1,dive,min=1"`
	BudgetsRed      []int    `yaml:"budgets_red" json:"budgets_red" validate:"required,min=1,dive,min=1"`
	StartingPlayers []string `yaml:"starting_players" json:"starting_players" validate:"required,min=1,dive,oneof=blue red BLUE RED"`
	Strategies      []string `yaml:"strategies" json:"strategies" validate:"required,min=1,dive,oneof=random mcts rave"`
	Games           int      `yaml:"games" json:"games" validate:"min=1"`
	Seed            uint64   `yaml:"seed" json:"seed"`
	Concurrency     int      `yaml:"concurrency" json:"concurrency" validate:"min=0"`
}

var validate = validator.New()

// LoadConfig reads and validates a YAML sweep file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) starters() []game.CellState {
	starters := make([]game.CellState, 0, len(c.StartingPlayers))
	for _, name := range c.StartingPlayers {
		color, err := game.ParseCellState(name)
		if err != nil {
			panic(err) // validated
		}
		starters = append(starters, color)
	}
	return starters
}
