package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakura/internal/engine"
	"sakura/internal/report"
)

func TestFormat(t *testing.T) {
	got := report.Format([]engine.ScoreEntry{
		{PlayerID: 1, Total: 29},
		{PlayerID: 2, Total: 17},
	})
	want := "Player 1: 29 points\nPlayer 2: 17 points\n\nCongratulations! Player 1 wins the game!\n"
	assert.Equal(t, want, got)
}

func TestFormatDraw(t *testing.T) {
	got := report.Format([]engine.ScoreEntry{
		{PlayerID: 1, Total: 12},
		{PlayerID: 2, Total: 12},
	})
	assert.Contains(t, got, "Congratulations! Player 1 and Player 2 win the game!\n")
}

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")
	require.NoError(t, os.WriteFile(path, []byte("ESP\n2\n"), 0o644))

	require.NoError(t, report.Append(path, "Player 1: 3 points\n"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ESP\n2\n\nPlayer 1: 3 points\n", string(data))
}

func TestAppendMissingFile(t *testing.T) {
	err := report.Append(filepath.Join(t.TempDir(), "gone.txt"), "x")
	assert.Error(t, err)
}
