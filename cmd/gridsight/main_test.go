package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gogpu/gridsight"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh command tree and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// executeVerbose runs a fresh command tree with --verbose and returns its
// stdout and stderr. The package logger is reset when the test ends.
func executeVerbose(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { gridsight.SetLogger(nil) })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--verbose"}, args...))

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func decodeJSON(t *testing.T, s string) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m), "output: %s", s)
	return m
}

func TestRootRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "line", "0", "0", "1", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRootRejectsUnknownColorMode(t *testing.T) {
	_, err := execute(t, "--color", "sometimes", "line", "0", "0", "1", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color mode")
}

func TestRootSubcommands(t *testing.T) {
	cmd := newRootCmd()

	names := make(map[string]bool)
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"line", "circle", "sight", "scenario", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, colorEnabled("always", &buf))
	assert.False(t, colorEnabled("never", &buf))
	assert.False(t, colorEnabled("auto", &buf), "a buffer is not a terminal")
}

func TestStylesWithoutColor(t *testing.T) {
	s := newStyles(false)
	assert.Equal(t, "CLEAR", s.clear.Sprint("CLEAR"))
}

func TestStylesWithColor(t *testing.T) {
	s := newStyles(true)
	assert.Contains(t, s.blocked.Sprint("BLOCKED"), "\x1b[")
}

func TestParseCell(t *testing.T) {
	c, err := parseCell("3,-4")
	require.NoError(t, err)
	assert.Equal(t, 3, c.X)
	assert.Equal(t, -4, c.Y)

	c, err = parseCell(" 1 , 2 ")
	require.NoError(t, err)
	assert.Equal(t, 1, c.X)
	assert.Equal(t, 2, c.Y)

	for _, bad := range []string{"", "3", "a,1", "1,b", "1;2"} {
		_, err := parseCell(bad)
		assert.Error(t, err, "parseCell(%q)", bad)
	}
}

func TestRunVersion(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runVersion(cmd, nil))

	output := buf.String()
	assert.Contains(t, output, "gridsight v")
	assert.Contains(t, output, "Commit:")
	assert.Contains(t, output, "Go version:")
	assert.Contains(t, output, "OS/Arch:")
}
