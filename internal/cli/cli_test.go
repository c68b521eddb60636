package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wideTable = "| Name | Age |\n| --- | --- |\n| Alice | 30 |\n| Bob | 25 |"

// isolate runs the test in an empty directory with a clean environment so
// no project config or MDREFLOW_* variable can leak in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("MDREFLOW_WIDTH", "")
	t.Setenv("MDREFLOW_MARGIN", "")
	t.Setenv("MDREFLOW_RULE_CHAR", "")
	t.Setenv("COLUMNS", "")
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCommand(BuildInfo{Version: "test"})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestFormatStdinStacks(t *testing.T) {
	isolate(t)

	out, err := execute(t, wideTable, "format", "--width", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "**Name**: Alice")
	assert.Contains(t, out, "**Age**: 25")
	assert.NotContains(t, out, "| Name | Age |")
}

func TestFormatStdinPassThroughNoWidth(t *testing.T) {
	isolate(t)

	// No terminal, no COLUMNS, no --width: everything passes through.
	out, err := execute(t, wideTable, "format")
	require.NoError(t, err)

	assert.Equal(t, wideTable, out)
}

func TestFormatFileToStdout(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(wideTable), 0644))

	out, err := execute(t, "", "format", "--width", "5", path)
	require.NoError(t, err)

	assert.Contains(t, out, "**Name**: Alice")

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, wideTable, string(data), "file untouched without --write")
}

func TestFormatWriteInPlace(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(wideTable), 0644))

	out, err := execute(t, "", "format", "--width", "5", "--write", path)
	require.NoError(t, err)

	assert.Contains(t, out, "reflowed")
	assert.Contains(t, out, "1 of 1 files changed")

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "**Name**: Alice")
}

func TestFormatWriteUnchangedFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("plain text\n"), 0644))

	out, err := execute(t, "", "format", "--width", "5", "--write", path)
	require.NoError(t, err)

	assert.Contains(t, out, "0 of 1 files changed")
}

func TestFormatMissingFile(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "format", "--width", "5", "missing.md")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
}

func TestFormatUsesProjectConfig(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".mdreflow.yml"), []byte("width: 5\n"), 0644))

	out, err := execute(t, wideTable, "format")
	require.NoError(t, err)

	assert.Contains(t, out, "**Name**: Alice")
}

func TestFormatFlagOverridesConfig(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".mdreflow.yml"), []byte("width: 5\n"), 0644))

	out, err := execute(t, wideTable, "format", "--width", "200")
	require.NoError(t, err)

	assert.Equal(t, wideTable, out)
}

func TestFormatInvalidConfig(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".mdreflow.yml"), []byte("margin: -1\n"), 0644))

	_, err := execute(t, wideTable, "format")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestInitCreatesConfig(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, "", "init")
	require.NoError(t, err)

	data, readErr := os.ReadFile(filepath.Join(dir, ".mdreflow.yml"))
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "rule_char")
}

func TestInitRefusesOverwrite(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "init")
	require.NoError(t, err)

	_, err = execute(t, "", "init")
	require.Error(t, err)

	_, err = execute(t, "", "init", "--force")
	assert.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "version")
	assert.NoError(t, err)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "config", err: errors.Join(ErrConfig, errors.New("bad")), want: ExitConfigError},
		{name: "io", err: errors.Join(ErrIO, errors.New("bad")), want: ExitIOError},
		{name: "other", err: errors.New("bad"), want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
