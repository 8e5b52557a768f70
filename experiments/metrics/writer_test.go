package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "test")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	t.Run("agent configs", func(t *testing.T) {
		configs := []AgentConfig{
			{ID: 1, Kind: "stones", Depth: 2},
			{ID: 2, Kind: "random", Depth: 0},
		}
		require.NoError(t, w.WriteAgentConfigs(configs))

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"id", "kind", "depth"}, rows[0])
		require.Equal(t, []string{"1", "stones", "2"}, rows[1])
		require.Equal(t, []string{"2", "random", "0"}, rows[2])
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		records := []GameRecord{{
			ID:    1,
			Black: 1,
			White: 2,
			SGF:   "abc.sgf",
			GameMetric: GameMetric{
				Size:       9,
				Winner:     "black",
				BlackScore: 44,
				WhiteScore: 37,
				Moves:      90,
				StartTime:  start,
				EndTime:    start.Add(2 * time.Second),
				Duration:   2 * time.Second,
			},
		}}
		require.NoError(t, w.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "1", rows[1][0])
		require.Equal(t, "black", rows[1][4])
		require.Equal(t, "44.0", rows[1][5])
		require.Equal(t, "abc.sgf", rows[1][11])
	})

	t.Run("move records", func(t *testing.T) {
		records := []MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:   1,
				Player: "black",
				SearchMetric: SearchMetric{
					Depth:     2,
					Evaluator: "stones",
					Nodes:     120,
					Leaves:    100,
					Prunes:    7,
					Duration:  3 * time.Millisecond,
				},
			},
		}}
		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{
			"game", "step", "player", "depth", "evaluator",
			"nodes", "leaves", "prunes", "duration", "alloc_bytes",
		}, rows[0])
		require.Equal(t, "120", rows[1][5])
		require.Equal(t, "3ms", rows[1][8])
	})
}
