package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWords(t *testing.T, n int) string {
	t.Helper()
	var sb strings.Builder
	for i := range n {
		fmt.Fprintf(&sb, "w%04d\n", i)
	}
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := New()
	app.SetOutput(&out, &errOut)
	err := app.Execute(context.Background(), args...)
	return out.String(), errOut.String(), err
}

func TestSearchCmd(t *testing.T) {
	path := writeWords(t, 500)
	out, logs, err := execute(t, "search", "--words", path, "--tree-size", "100", "--queries", "300", "--seed", "3", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "Searching for 300 random words in structures of 100 words")
	for _, name := range []string{"list, file order", "tree, random order", "tree, file order rebalanced", "google btree", "llrb", "haxmap"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "height=99 balanced=false")
	assert.Contains(t, logs, `"message":"word list loaded"`)
}

func TestSearchCmd_MissingWords(t *testing.T) {
	_, _, err := execute(t, "search")
	require.ErrorContains(t, err, `required flag(s) "words" not set`)

	_, _, err = execute(t, "search", "--words", filepath.Join(t.TempDir(), "none.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSearchCmd_EnvAndConfig(t *testing.T) {
	path := writeWords(t, 200)
	cfg := filepath.Join(t.TempDir(), "bstdemo.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("tree-size: 50\nqueries: 120\nseed: 9\n"), 0o600))
	t.Setenv("BST_LOG_FORMAT", "json")

	out, logs, err := execute(t, "search", "--config", cfg, "--words", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Searching for 120 random words in structures of 50 words")
	assert.Contains(t, logs, `"seed":9`)

	out, _, err = execute(t, "search", "--config", cfg, "--words", path, "--tree-size", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "structures of 20 words", "flag doesn't override config file")
}

func TestSearchCmd_BadLogFormat(t *testing.T) {
	path := writeWords(t, 10)
	_, _, err := execute(t, "search", "--words", path, "--log-format", "xml")
	require.ErrorContains(t, err, `unknown log format "xml"`)
}

func TestShowCmd(t *testing.T) {
	path := writeWords(t, 40)
	out, _, err := execute(t, "show", "--words", path, "--limit", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "As added: size=7 height=6 balanced=false")
	assert.Contains(t, out, "Rebalanced: size=7 height=2 balanced=true")
	assert.Contains(t, out, "| | | | | | w0006\n")
	assert.Contains(t, out, "w0003\n")

	_, _, err = execute(t, "show", "--words", path, "--limit", "0")
	require.ErrorContains(t, err, "limit must be positive")
}
