package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig identifies an agent configuration within an experiment.
type AgentConfig struct {
	ID    int
	Kind  string
	Depth int
}

// GameRecord ties a finished game's metric to the agents that played it
// and the SGF file it was saved to.
type GameRecord struct {
	ID    int
	Black int // AgentConfig.ID
	White int // AgentConfig.ID
	SGF   string
	GameMetric
}

// MoveRecord ties a move metric to its game.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Writer stores experiment records as CSV files in a timestamped
// directory.
type Writer struct {
	baseDir string
}

// NewWriter creates <outputDir>/<name>/<timestamp>/ and returns a writer
// rooted there.
func NewWriter(outputDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(outputDir, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory records are written to.
func (w *Writer) Dir() string { return w.baseDir }

func (w *Writer) writeCSV(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", file, err)
		}
	}
	return nil
}

// WriteAgentConfigs stores the agent configurations of an experiment.
func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

// WriteGameRecords stores one row per finished game.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{
		"id", "black", "white", "size", "winner",
		"black_score", "white_score", "moves",
		"start_time", "end_time", "duration", "sgf",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Black),
			strconv.Itoa(record.White),
			strconv.Itoa(record.Size),
			record.Winner,
			strconv.FormatFloat(record.BlackScore, 'f', 1, 64),
			strconv.FormatFloat(record.WhiteScore, 'f', 1, 64),
			strconv.Itoa(record.Moves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			record.SGF,
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

// WriteMoveRecords stores one row per move across all games.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{
		"game", "step", "player", "depth", "evaluator",
		"nodes", "leaves", "prunes", "duration", "alloc_bytes",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			strconv.Itoa(record.Depth),
			record.Evaluator,
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Prunes),
			record.Duration.String(),
			strconv.FormatUint(record.AllocBytes, 10),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}
