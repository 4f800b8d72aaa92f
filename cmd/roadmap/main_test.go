package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/TudorHulban/roadmap"
	"github.com/TudorHulban/roadmap/internal/backlog"
	"github.com/TudorHulban/roadmap/internal/logging"
)

type testCLI struct {
	backlogPath string
	logDir      string
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()

	color.NoColor = true

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()

	return &testCLI{
		backlogPath: filepath.Join(dir, "backlog.yaml"),
		logDir:      filepath.Join(dir, "logs"),
	}
}

func (cli *testCLI) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(
		append(
			[]string{
				"--backlog", cli.backlogPath,
				"--log-dir", cli.logDir,
				"--log-level", "debug",
			},
			args...,
		),
	)

	errExec := cmd.Execute()

	return out.String(), errExec
}

func TestBacklogCommands(t *testing.T) {
	cli := newTestCLI(t)

	t.Run(
		"1. empty backlog listing",
		func(t *testing.T) {
			output, errRun := cli.run(t, "backlog", "list")
			require.NoError(t, errRun)
			require.Contains(t, output, "backlog is empty")
		},
	)

	t.Run(
		"2. add items",
		func(t *testing.T) {
			_, errRun := cli.run(t, "backlog", "add", "B", "--priority", "2", "--size", "2", "--max-tracks", "2")
			require.NoError(t, errRun)

			output, errRun := cli.run(t, "backlog", "add", "A", "--priority", "1", "--size", "3", "--description", "first")
			require.NoError(t, errRun)
			require.Contains(t, output, "saved")

			items, errLoad := backlog.Parse(mustRead(t, cli.backlogPath), backlog.FormatYAML)
			require.NoError(t, errLoad)
			require.Len(t, items, 2)
		},
	)

	t.Run(
		"3. listing in priority order",
		func(t *testing.T) {
			output, errRun := cli.run(t, "backlog", "list")
			require.NoError(t, errRun)
			require.Equal(t,
				"A priority 1, size 3, max tracks 1\n"+
					"  first\n"+
					"B priority 2, size 2, max tracks 2\n",
				output,
			)
		},
	)

	t.Run(
		"4. invalid item rejected",
		func(t *testing.T) {
			_, errRun := cli.run(t, "backlog", "add", "C", "--max-tracks", "0")
			require.Error(t, errRun)
		},
	)

	t.Run(
		"5. remove",
		func(t *testing.T) {
			_, errRun := cli.run(t, "backlog", "remove", "B")
			require.NoError(t, errRun)

			_, errRun = cli.run(t, "backlog", "remove", "B")
			require.ErrorIs(t, errRun, backlog.ErrItemNotFound)
		},
	)
}

func TestGenerate(t *testing.T) {
	cli := newTestCLI(t)

	require.NoError(t,
		os.WriteFile(
			cli.backlogPath,
			[]byte(`- name: A
  priority: 1
  size: 3
  maxTracks: 1
- name: B
  priority: 2
  size: 2
  maxTracks: 2
`),
			0600,
		),
	)

	t.Run(
		"1. json to stdout",
		func(t *testing.T) {
			output, errRun := cli.run(t, "generate", "--team-size", "2", "--start", "2024-01-01", "--format", "json")
			require.NoError(t, errRun)

			var decoded struct {
				Weeks []struct {
					Slots roadmap.Week `json:"slots"`
				} `json:"weeks"`
			}
			require.NoError(t, json.Unmarshal([]byte(output), &decoded))
			require.Len(t, decoded.Weeks, 3)
			require.Equal(t,
				roadmap.Week{roadmap.Assigned("A"), roadmap.Unassigned},
				decoded.Weeks[2].Slots,
			)
		},
	)

	t.Run(
		"2. table with summary",
		func(t *testing.T) {
			output, errRun := cli.run(t, "generate", "--team-size", "2", "--start", "2024-01-01")
			require.NoError(t, errRun)
			require.Contains(t, output, "Engineer / Week")
			require.Contains(t, output, "A weeks 1-3, 3 engineer-weeks done by 2024-01-22")
		},
	)

	t.Run(
		"3. html to file",
		func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "roadmap.html")

			output, errRun := cli.run(t, "generate", "--team-size", "2", "--format", "html", "--output", path)
			require.NoError(t, errRun)
			require.Contains(t, output, "wrote")
			require.Contains(t, string(mustRead(t, path)), "<table")
		},
	)

	t.Run(
		"4. team size from environment",
		func(t *testing.T) {
			t.Setenv("ROADMAP_TEAM_SIZE", "5")

			output, errRun := cli.run(t, "generate", "--format", "yaml")
			require.NoError(t, errRun)
			require.Contains(t, output, "teamSize: 5")
		},
	)

	t.Run(
		"5. missing team size",
		func(t *testing.T) {
			_, errRun := cli.run(t, "generate")
			require.ErrorIs(t, errRun, roadmap.ErrInvalidTeamSize)
		},
	)

	t.Run(
		"6. weeks logged at debug level",
		func(t *testing.T) {
			content := string(mustRead(t, filepath.Join(cli.logDir, logging.LogFileName)))

			require.Contains(t, content, `"msg":"generating roadmap"`)
			require.Contains(t, content, `"msg":"week allocated"`)
			require.Contains(t, content, `"msg":"scheduling failed"`)
		},
	)
}

func mustRead(t *testing.T, path string) []byte {
	t.Helper()

	content, errRead := os.ReadFile(path)
	require.NoError(t, errRead)

	return content
}
