package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/mmd-go"
)

// execute 在隔离的工作目录中运行命令
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfgFile, logLevel = "", ""
	parseFormat, parseStats = "text", false
	htmlOpen, htmlWatch = false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "doc.mmd")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseCommand_JSON(t *testing.T) {
	path := writeSource(t, "# Intro\n  hello\n")

	out, err := execute(t, "parse", "--format", "json", path)
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	assert.Equal(t, "document", tree["kind"])
}

func TestParseCommand_Stats(t *testing.T) {
	path := writeSource(t, "one two\n")

	out, err := execute(t, "parse", "--stats", path)
	require.NoError(t, err)
	assert.Contains(t, out, "words=2")
}

func TestParseCommand_BadFormat(t *testing.T) {
	path := writeSource(t, "x\n")
	_, err := execute(t, "parse", "--format", "xml", path)
	assert.Error(t, err)
}

func TestHTMLCommand(t *testing.T) {
	path := writeSource(t, "hello\n")

	out, err := execute(t, "html", "--highlight", path)
	require.NoError(t, err)
	assert.Contains(t, out, "doc.html")
	assert.FileExists(t, filepath.Join(filepath.Dir(path), "doc.html"))
}

func TestHTMLCommand_ParseError(t *testing.T) {
	path := writeSource(t, "  bad\n")

	_, err := execute(t, "html", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mmd.ErrRootIndentation))

	var buf bytes.Buffer
	printError(&buf, err)
	assert.Contains(t, buf.String(), "parse error:")
	assert.Contains(t, buf.String(), "doc.mmd:1")
}

func TestConfigFlag_Missing(t *testing.T) {
	path := writeSource(t, "x\n")
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "parse", path)
	assert.Error(t, err)
}

func TestOpenPage_EmptyCommand(t *testing.T) {
	assert.Error(t, openPage("  ", "x.html"))
}

// chdir switches the working directory for the test and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
