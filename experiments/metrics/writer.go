package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type Writer struct {
	RunID   string
	baseDir string
}

// NewWriter creates a run directory under root named by the current timestamp
// and a short run id.
func NewWriter(root string) (*Writer, error) {
	runID := uuid.NewString()
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp+"_"+runID[:8])
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		RunID:   runID,
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	setup.RunID = w.RunID
	data, err := json.MarshalIndent(setup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode setup: %w", err)
	}
	err = os.WriteFile(filepath.Join(w.baseDir, "setup.json"), data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write setup file: %w", err)
	}
	return nil
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	header := []string{
		"grid_size", "budget_blue", "budget_red", "strategy_blue", "strategy_red",
		"games", "start_player", "wins_blue", "wins_red", "pct_blue", "pct_red",
	}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			strconv.Itoa(s.GridSize),
			strconv.Itoa(s.BudgetBlue),
			strconv.Itoa(s.BudgetRed),
			s.StrategyBlue,
			s.StrategyRed,
			strconv.Itoa(s.Games),
			s.Starter.String(),
			strconv.Itoa(s.WinsBlue),
			strconv.Itoa(s.WinsRed),
			strconv.FormatFloat(s.PctBlue(), 'f', 2, 64),
			strconv.FormatFloat(s.PctRed(), 'f', 2, 64),
		})
	}
	return w.writeCSV("results.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "matchup", "winner", "moves", "start_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Matchup),
			record.Winner.String(),
			strconv.Itoa(record.Moves),
			record.Start.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.writeCSV("games.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "x", "y", "duration", "iterations", "rollouts", "tree_size", "is_tree_reused"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			strconv.Itoa(record.Move.X),
			strconv.Itoa(record.Move.Y),
			record.Duration.String(),
			strconv.Itoa(record.Iterations),
			strconv.Itoa(record.Rollouts),
			strconv.Itoa(record.TreeSize),
			strconv.FormatBool(record.TreeReused),
		})
	}
	return w.writeCSV("moves.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
