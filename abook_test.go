package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, input string, args ...string) string {
	t.Helper()
	t.Cleanup(func() {
		configPath, debugFlag, logFile, plainFlag = "", false, "", false
	})

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestRootCmd_PlainSession(t *testing.T) {
	out := executeRoot(t, "add\nB\n2\nadd\nA\n1\nsort\nquit\n", "--plain")
	assert.Contains(t, out, "A 1\nB 2\n")
	assert.Contains(t, out, "gimme a name? ")
}

func TestRootCmd_ConfigPrompts(t *testing.T) {
	path := writeConfig(t, "prompts:\n  command: \"cmd> \"\n")
	out := executeRoot(t, "list\n", "--plain", "--config", path)
	assert.Equal(t, "cmd> \ncmd> ", out)
}

func TestRootCmd_Version(t *testing.T) {
	out := executeRoot(t, "", "version")
	assert.Equal(t, "abook dev\n", out)
}

func TestReportError(t *testing.T) {
	boom := errors.New("boom")

	var buf bytes.Buffer
	reportError(&buf, boom)
	assert.Equal(t, "abook: boom\n", buf.String())

	buf.Reset()
	reportError(&buf, shownError{boom})
	assert.Empty(t, buf.String())
	assert.ErrorIs(t, shownError{boom}, boom)
}
