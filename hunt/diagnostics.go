package hunt

import (
	"fmt"
	"strings"

	"github.com/antflydb/tablehunt/block"
	"github.com/antflydb/tablehunt/geom"
)

// RenderASCII draws a candidate's cell matrix as a grid of characters:
// '#' for a cell with content, '+' for an empty one, with '|' and '-'
// marking confirmed rule lines between cells. This is an optional,
// non-normative diagnostic (spec §6) — it is never consulted by the
// engine itself.
func RenderASCII(m *block.Matrix) string {
	var sb strings.Builder
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			c := m.At(row, col)
			switch {
			case c.Full:
				sb.WriteByte('#')
			default:
				sb.WriteByte('+')
			}
			if col < m.Cols-1 {
				if m.At(row, col).VLine {
					sb.WriteByte('|')
				} else {
					sb.WriteByte(' ')
				}
			}
		}
		sb.WriteByte('\n')
		if row < m.Rows-1 {
			for col := 0; col < m.Cols; col++ {
				if m.At(row, col).HLine {
					sb.WriteString("--")
				} else {
					sb.WriteString("  ")
				}
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RenderPostScript emits a minimal PostScript fragment drawing every
// divider in xDividers/yDividers as a straight line over bounds: a
// Certain divider in dark green, an uncertain one in bright green. A
// caller can paste the fragment into a page-sized PostScript document to
// visualize where the engine believes the grid lines fall. This is the
// second optional diagnostic named in spec §6.
func RenderPostScript(xDividers, yDividers block.DividerList, bounds geom.Rect) string {
	var sb strings.Builder
	for _, d := range xDividers {
		writeDividerLine(&sb, d, d.Position, bounds.Y0, d.Position, bounds.Y1)
	}
	for _, d := range yDividers {
		writeDividerLine(&sb, d, bounds.X0, d.Position, bounds.X1, d.Position)
	}
	return sb.String()
}

func writeDividerLine(sb *strings.Builder, d block.Divider, x0, y0, x1, y1 float64) {
	if d.Certain {
		sb.WriteString("0 0.4 0 setrgbcolor\n")
	} else {
		sb.WriteString("0.4 1 0.4 setrgbcolor\n")
	}
	fmt.Fprintf(sb, "%g %g moveto %g %g lineto stroke\n", x0, y0, x1, y1)
}
