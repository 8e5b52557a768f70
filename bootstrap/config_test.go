package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupDefaults(t *testing.T) {
	cfg, err := Setup("")
	require.NoError(t, err)

	require.Equal(t, []int{9, 13, 19}, cfg.BoardSizes)
	require.Equal(t, 10, cfg.Games)
	require.Equal(t, 2, cfg.Depth)
	require.Equal(t, 0.0, cfg.Komi)
	require.Equal(t, "results", cfg.OutputDir)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestSetupFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
board_sizes: [9]
games: 3
depth: 1
komi: 5.5
max_moves: 100
log_level: debug
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Setup(path)
	require.NoError(t, err)
	require.Equal(t, []int{9}, cfg.BoardSizes)
	require.Equal(t, 3, cfg.Games)
	require.Equal(t, 1, cfg.Depth)
	require.Equal(t, 5.5, cfg.Komi)
	require.Equal(t, 100, cfg.MaxMoves)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "results", cfg.OutputDir, "unset keys keep their defaults")
}

func TestSetupMissingFile(t *testing.T) {
	_, err := Setup(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
