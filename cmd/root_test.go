package cmd

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/amazeing/config"
	"github.com/they4kman/amazeing/maze"
)

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.txt")
	outputPath := filepath.Join(dir, "maze.txt")
	require.NoError(t, ioutil.WriteFile(configPath, []byte(
		"WIDTH=9\nHEIGHT=4\nENTRY=0,0\nEXIT=8,3\nOUTPUT_FILE=ignored.txt\nPERFECT=True\nICON=none\n",
	), 0644))

	rootCmd.SetArgs([]string{
		"--config", configPath,
		"--width", "7",
		"--exit", "6,3",
		"--seed", "31",
		"--solver", "candidate",
		"--output", outputPath,
	})
	require.NoError(t, rootCmd.Execute())

	data, err := ioutil.ReadFile(outputPath)
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 9)
	for _, row := range lines[:4] {
		assert.Regexp(t, "^[0-9A-F]{7}$", row)
	}
	assert.Equal(t, "0,0", lines[5])
	assert.Equal(t, "6,3", lines[6])
	assert.Regexp(t, "^[NESW]+$", lines[7])

	// Same parameters, same maze
	cfg := config.New()
	cfg.Width, cfg.Height = 7, 4
	cfg.Exit = maze.Coord{X: 6, Y: 3}
	cfg.Seed = 31
	cfg.IconFile = config.NoIcon
	grid, err := generate(cfg, log)
	require.NoError(t, err)
	assert.Equal(t, grid.String(), string(data))
}

func TestGenerateReportsConstructionErrors(t *testing.T) {
	cfg := config.New()
	cfg.Entry = cfg.Exit
	_, err := generate(cfg, log)

	var constructionErr *maze.ConstructionError
	assert.ErrorAs(t, err, &constructionErr)
}

func TestSolverValue(t *testing.T) {
	val := solverValue(config.DefaultSolver)
	assert.NoError(t, val.Set("candidate"))
	assert.Equal(t, "candidate", val.String())
	assert.Error(t, val.Set("astar"))
	assert.Equal(t, "bfs|candidate", solverNames())
}

func TestCoordValue(t *testing.T) {
	var val coordValue
	assert.NoError(t, val.Set("4,2"))
	assert.Equal(t, "4,2", val.String())
	assert.Error(t, val.Set("4;2"))
}
