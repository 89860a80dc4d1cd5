package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/gridmap"
	"github.com/katalvlaran/pathgrid/pathsearch"
)

const scenarioDoc = `
rows:
  - "0 3 0 0 0"
  - "0 3 3 3 3"
  - "0 3 0 0 0"
  - "0 3 0 3 0"
  - "0 0 0 3 0"
queries:
  - {name: corner, from: [0, 0], to: [4, 4]}
  - {name: pocket, from: [0, 0], to: [3, 0]}
`

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// TestPrintQueries draws each document query in plain text.
func TestPrintQueries(t *testing.T) {
	v, err := open(writeDoc(t, scenarioDoc), "", quietLogger())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, v.printQueries(&out))
	want := "corner (0,0) → (4,4) (direct): 9 cells\n" +
		"S#...\n" +
		"*####\n" +
		"*#.*.\n" +
		"*#*#*\n" +
		".*.#G\n" +
		"pocket (0,0) → (3,0) (direct): no path\n" +
		".#...\n" +
		".####\n" +
		".#...\n" +
		".#.#.\n" +
		"...#.\n"
	assert.Equal(t, want, out.String())
}

// TestOpen_AlgorithmOverride renders expensive ground for the chunked variant.
func TestOpen_AlgorithmOverride(t *testing.T) {
	v, err := open(writeDoc(t, scenarioDoc), "chunked", quietLogger())
	require.NoError(t, err)
	assert.Equal(t, pathsearch.AlgorithmChunked, v.alg)
	assert.Len(t, v.path, 13, "first query is selected on open")

	s, err := v.searcher()
	require.NoError(t, err)
	assert.Equal(t, "S~...\n*~~~~\n*~***\n*~*~*\n***~G\n", plainText(frame(s.Map(), v.alg, v.path)))

	_, err = open(writeDoc(t, scenarioDoc), "bfs", quietLogger())
	require.ErrorIs(t, err, pathsearch.ErrUnknownAlgorithm)
}

// TestPress moves the cursor, sets endpoints and toggles the algorithm.
func TestPress(t *testing.T) {
	v, err := open(writeDoc(t, scenarioDoc), "", quietLogger())
	require.NoError(t, err)

	key := func(k tcell.Key, r rune) bool {
		return v.press(k, r)
	}
	assert.True(t, key(tcell.KeyLeft, 0), "cursor stays inside the map")
	assert.Equal(t, gridmap.Cell{X: 0, Y: 0}, v.cur)
	assert.True(t, key(tcell.KeyDown, 0))
	assert.True(t, key(tcell.KeyDown, 0))
	assert.True(t, key(tcell.KeyRune, 'g'))
	assert.Equal(t, gridmap.Cell{X: 0, Y: 2}, v.goal)
	assert.Len(t, v.path, 3)

	assert.True(t, key(tcell.KeyTab, 0))
	assert.Equal(t, 1, v.query)
	assert.Nil(t, v.path)

	assert.True(t, key(tcell.KeyRune, 'a'))
	assert.Equal(t, pathsearch.AlgorithmChunked, v.alg)
	assert.NotNil(t, v.path, "the pocket is reachable across expensive ground")

	assert.False(t, key(tcell.KeyRune, 'q'))
	assert.False(t, key(tcell.KeyEscape, 0))
}
