package hunt

import (
	"github.com/antflydb/tablehunt/block"
	"github.com/antflydb/tablehunt/geom"
)

// markContent is the content walker (component 4.5): for every leaf
// block in the region, it finds which cell of the candidate grid the
// leaf's center falls into and marks that cell Full, then marks every
// divider the leaf's own rectangle spans across as crossed — VCrossed
// (on the leaf's center row) for a vertical divider running through the
// leaf's interior, HCrossed (on its center column) for a horizontal one.
// Crossing is judged on the leaf's whole bounding rectangle, not on its
// individual runs of characters; a leaf that merely touches a divider at
// its boundary does not count as crossing it.
func markContent(leaves []*block.Block, xDividers, yDividers block.DividerList, m *block.Matrix) {
	for _, leaf := range leaves {
		col := cellIndex(xDividers, leaf.Rect.CenterX())
		row := cellIndex(yDividers, leaf.Rect.CenterY())
		if col < 0 || row < 0 {
			continue
		}
		m.At(row, col).Full = true

		for vi := 1; vi < len(xDividers)-1; vi++ {
			if spans(leaf.Rect.X0, leaf.Rect.X1, xDividers[vi].Position) {
				r := cellIndex(yDividers, leaf.Rect.CenterY())
				if r >= 0 {
					markVCrossed(m, r, vi)
				}
			}
		}
		for hi := 1; hi < len(yDividers)-1; hi++ {
			if spans(leaf.Rect.Y0, leaf.Rect.Y1, yDividers[hi].Position) {
				c := cellIndex(xDividers, leaf.Rect.CenterX())
				if c >= 0 {
					markHCrossed(m, c, hi)
				}
			}
		}
	}
}

// markRuleLines marks HLine/VLine on cells adjoining a confirmed drawn
// rule, distinct from the content-derived HCrossed/VCrossed marks. rules
// has already been through ruleEdges/decomposeRectangle by the time it
// gets here, so a rectangle's four border edges show up as ordinary
// hairlines, same as any other rule.
func markRuleLines(rules []geom.Rect, xDividers, yDividers block.DividerList, m *block.Matrix) {
	for _, r := range rules {
		vertical, ok := classifyRule(r)
		if !ok {
			continue
		}
		if vertical {
			vi := xDividers.Find(r.CenterX(), 1.0)
			if vi <= 0 || vi >= len(xDividers)-1 {
				continue
			}
			rowLo := cellIndex(yDividers, r.Y0)
			rowHi := cellIndex(yDividers, r.Y1)
			if rowLo < 0 {
				rowLo = 0
			}
			if rowHi < 0 {
				rowHi = m.Rows - 1
			}
			for row := rowLo; row <= rowHi && row < m.Rows; row++ {
				markVLine(m, row, vi)
			}
		} else {
			hi := yDividers.Find(r.CenterY(), 1.0)
			if hi <= 0 || hi >= len(yDividers)-1 {
				continue
			}
			colLo := cellIndex(xDividers, r.X0)
			colHi := cellIndex(xDividers, r.X1)
			if colLo < 0 {
				colLo = 0
			}
			if colHi < 0 {
				colHi = m.Cols - 1
			}
			for col := colLo; col <= colHi && col < m.Cols; col++ {
				markHLine(m, col, hi)
			}
		}
	}
}

func markVCrossed(m *block.Matrix, row, dividerIdx int) {
	m.At(row, dividerIdx-1).VCrossed = true
	m.At(row, dividerIdx).VCrossed = true
}

func markHCrossed(m *block.Matrix, col, dividerIdx int) {
	m.At(dividerIdx-1, col).HCrossed = true
	m.At(dividerIdx, col).HCrossed = true
}

func markVLine(m *block.Matrix, row, dividerIdx int) {
	if dividerIdx-1 >= 0 {
		m.At(row, dividerIdx-1).VLine = true
	}
	if dividerIdx < m.Cols {
		m.At(row, dividerIdx).VLine = true
	}
}

func markHLine(m *block.Matrix, col, dividerIdx int) {
	if dividerIdx-1 >= 0 {
		m.At(dividerIdx-1, col).HLine = true
	}
	if dividerIdx < m.Rows {
		m.At(dividerIdx, col).HLine = true
	}
}

// cellIndex returns the index i such that dividers[i] <= pos <
// dividers[i+1], or -1 if pos falls outside the divider range.
func cellIndex(dividers block.DividerList, pos float64) int {
	for i := 0; i < len(dividers)-1; i++ {
		if pos >= dividers[i].Position && pos < dividers[i+1].Position {
			return i
		}
	}
	if len(dividers) >= 2 && pos == dividers[len(dividers)-1].Position {
		return len(dividers) - 2
	}
	return -1
}

// spans reports whether the interval [a0,a1] strictly straddles pos —
// pos lies strictly inside the interval, not merely touching an edge.
func spans(a0, a1, pos float64) bool {
	return a0 < pos && pos < a1
}
