package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/pathgrid/costmodel"
	"github.com/katalvlaran/pathgrid/gridmap"
	"github.com/katalvlaran/pathgrid/pathsearch"
)

// glyph is one drawn cell.
type glyph struct {
	r     rune
	style tcell.Style
}

var (
	styleOpen      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleExpensive = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBlocked   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePath      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleEnds      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// terrainGlyph draws a code the way alg interprets it.
func terrainGlyph(alg pathsearch.Algorithm, code uint8) glyph {
	if alg == pathsearch.AlgorithmDirect {
		if (costmodel.Direct{}).Passable(code) {
			return glyph{'.', styleOpen}
		}

		return glyph{'#', styleBlocked}
	}
	switch costmodel.Normalize(code) {
	case costmodel.Open:
		return glyph{'.', styleOpen}
	case costmodel.Expensive:
		return glyph{'~', styleExpensive}
	}

	return glyph{'#', styleBlocked}
}

// frame renders terrain with path overlaid: '*' for intermediate cells,
// 'S' and 'G' for the endpoints.
func frame(m *gridmap.GridMap, alg pathsearch.Algorithm, path []gridmap.Cell) [][]glyph {
	out := make([][]glyph, m.Height())
	for y := range out {
		out[y] = make([]glyph, m.Width())
		for x := range out[y] {
			out[y][x] = terrainGlyph(alg, m.Code(m.IndexOf(gridmap.Cell{X: x, Y: y})))
		}
	}
	for i, c := range path {
		switch i {
		case 0:
			out[c.Y][c.X] = glyph{'S', styleEnds}
		case len(path) - 1:
			out[c.Y][c.X] = glyph{'G', styleEnds}
		default:
			out[c.Y][c.X] = glyph{'*', stylePath}
		}
	}

	return out
}

// plainText flattens a frame to lines of runes.
func plainText(f [][]glyph) string {
	var b strings.Builder
	for _, row := range f {
		for _, g := range row {
			b.WriteRune(g.r)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
