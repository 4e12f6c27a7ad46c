package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_Session(t *testing.T) {
	out, _, err := execute(t, "Tanya P Elena\nTanya P Viktor\nTanya C Gabi\nPRINT\nEXIT\n", "--config", "")
	require.NoError(t, err)

	assert.Contains(t, out, "Family Tree Application")
	assert.Contains(t, out, "Family Tree:\nElena\nViktor\n    Tanya\n        Gabi\n")
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "familytree.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = \"v1\"\n[display]\nindent = 2\n"), 0o644))

	out, _, err := execute(t, "A C B\nPRINT\n", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Family Tree:\nA\n  B\n")
}

func TestRoot_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "familytree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: v1\ndisplay:\n  indent: 99\n"), 0o644))

	_, _, err := execute(t, "", "--config", path)
	assert.ErrorContains(t, err, "display.indent")
}

func TestRoot_MetricsListenerStopsWithSession(t *testing.T) {
	out, _, err := execute(t, "A P B\nEXIT\n", "--config", "", "--metrics-addr", "127.0.0.1:0")
	require.NoError(t, err)
	assert.Contains(t, out, "B is A's parent.")
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "A P B\n", "--config", "", "--verbose")
	require.NoError(t, err)
	assert.NotContains(t, out, "command applied")
	assert.Contains(t, errOut, "command applied")
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "", "extra")
	assert.Error(t, err)
}
