package sparkline

import (
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/ecfan/internal/util"
)

const (
	blank     = ' '
	fullBlock = '█'

	// levelsPerRow is the number of partial glyph levels available per character row
	levelsPerRow = 8
)

// glyphs maps the residual level [0..8] to its block glyph
var glyphs = [levelsPerRow + 1]rune{blank, '▁', '▂', '▃', '▄', '▅', '▆', '▇', fullBlock}

// Height returns the number of rows of a chart with the given resolution
func Height(resolution int) int {
	return util.CeilDiv(resolution, levelsPerRow)
}

// Render draws history as a block character bar chart with one column per sample,
// oldest sample to the left. Samples are rescaled from [min, max] into [0, resolution].
// Every row is terminated by a line break; an empty history renders as an empty string.
func Render(history []int, min int, max int, resolution int) string {
	if len(history) <= 0 {
		return ""
	}

	height := Height(resolution)
	columns := make([][]rune, len(history))
	for i, value := range history {
		columns[i] = column(scale(value, min, max, resolution), height)
	}

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for _, c := range columns {
			sb.WriteRune(c[row])
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// scale rescales value from [min, max] into [0, resolution]
func scale(value int, min int, max int, resolution int) int {
	if max <= min {
		return 0
	}
	normalized := util.FloorDiv((value-min)*resolution, max-min)
	return util.Coerce(normalized, 0, resolution)
}

// column returns the glyphs of a single chart column, top row first.
// Full blocks are stacked from the bottom, the residual glyph sits on top of them.
func column(value int, height int) []rune {
	fullBlocks := value / levelsPerRow
	residual := value % levelsPerRow

	result := make([]rune, height)
	for row := 0; row < height; row++ {
		level := height - 1 - row
		switch {
		case level < fullBlocks:
			result[row] = fullBlock
		case level == fullBlocks:
			result[row] = glyphs[residual]
		default:
			result[row] = blank
		}
	}
	return result
}

// RenderLine draws history as an ascii line graph bounded to [min, max]
func RenderLine(history []int, min int, max int, height int, caption string) string {
	if len(history) <= 0 {
		return ""
	}

	values := make([]float64, len(history))
	for i, value := range history {
		values[i] = float64(value)
	}

	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.LowerBound(float64(min)),
		asciigraph.UpperBound(float64(max)),
		asciigraph.Caption(caption),
	)
}
