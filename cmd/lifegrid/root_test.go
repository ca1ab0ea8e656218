package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/internal/config"
	"lifegrid/internal/topology"
)

func newSessionCmd(t *testing.T, flags ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	bindSessionFlags(cmd)
	require.NoError(t, cmd.ParseFlags(flags))
	return cmd
}

func TestSessionConfigDefaults(t *testing.T) {
	cfg, err := sessionConfig(newSessionCmd(t), nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestSessionConfigArgsAndFlags(t *testing.T) {
	cmd := newSessionCmd(t, "-c", "4", "--boundary", "finite", "--delay", "20", "--stamp", "glider@1,2")
	cfg, err := sessionConfig(cmd, []string{"30", "40"})
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Rows)
	assert.Equal(t, 40, cfg.Cols)
	assert.Equal(t, 4, cfg.CellSize)
	assert.Equal(t, topology.Finite, cfg.Boundary)
	assert.Equal(t, 20, cfg.DelayMS)
	assert.Equal(t, []config.Stamp{{Pattern: "glider", Row: 1, Col: 2}}, cfg.Stamps)
}

func TestSessionConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 12\ncols: 14\ndelay_ms: 50\n"), 0o644))

	cmd := newSessionCmd(t, "--config", path, "--delay", "5")
	cfg, err := sessionConfig(cmd, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Rows)
	assert.Equal(t, 14, cfg.Cols)
	assert.Equal(t, 5, cfg.DelayMS)
}

func TestSessionConfigRejectsBadInput(t *testing.T) {
	_, err := sessionConfig(newSessionCmd(t), []string{"ten"})
	assert.Error(t, err)

	_, err = sessionConfig(newSessionCmd(t, "--boundary", "klein"), nil)
	assert.Error(t, err)

	_, err = sessionConfig(newSessionCmd(t, "--delay", "0"), nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestParseStamp(t *testing.T) {
	st, err := parseStamp("firework@ 3, 7")
	require.NoError(t, err)
	assert.Equal(t, config.Stamp{Pattern: "firework", Row: 3, Col: 7}, st)

	for _, bad := range []string{"glider", "glider@1", "glider@x,1", "glider@1,y"} {
		_, err := parseStamp(bad)
		assert.Error(t, err, bad)
	}
}

func TestPatternsCommand(t *testing.T) {
	var out bytes.Buffer
	patternsCmd.SetOut(&out)
	require.NoError(t, patternsCmd.RunE(patternsCmd, nil))

	text := out.String()
	for _, name := range []string{"glider", "glider-gun", "firework"} {
		assert.True(t, strings.Contains(text, name+" (tool"), name)
	}
	assert.Contains(t, text, "glider (tool glider, 5 cells, 3x3)\n..#\n#.#\n.##\n")
}

func TestRunCommandPrintsFinalBoard(t *testing.T) {
	configPath = ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"run", "5", "5", "--stamp", "glider@0,0", "-n", "4", "--delay", "1",
		"--save", filepath.Join(t.TempDir(), "save.txt")})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "life generation 4 population 5\n")
	assert.Equal(t, 5, strings.Count(out.String(), "#"))
}
