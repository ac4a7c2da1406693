package hunt

import "github.com/antflydb/tablehunt/block"

// reduceColumns is the column half of the reducer (component 4.6): it
// drops any interior vertical divider every row agrees is mergeable,
// merging the two columns on either side of it. A divider that was
// reinforced by a drawn rule is never dropped regardless of what the
// per-row predicate says (a ruled table may legitimately have a rule
// with a spanning cell's text drawn across it). It returns the
// surviving dividers and a matrix rebuilt to match.
func reduceColumns(xDividers block.DividerList, m *block.Matrix) (block.DividerList, *block.Matrix) {
	keep := make([]bool, len(xDividers))
	for i := range keep {
		keep[i] = true
	}
	for vi := 1; vi < len(xDividers)-1; vi++ {
		if xDividers[vi].Certain {
			continue
		}
		if columnDividerRemovable(m, vi) {
			keep[vi] = false
		}
	}
	return applyColumnKeep(xDividers, m, keep)
}

// columnDividerRemovable reports whether every row agrees the column
// pair straddling divider vi can merge. A row rules it out outright if
// the right-hand cell carries a drawn vertical line (a real divider, not
// an accident of the grid builder), or if the two cells disagree on
// whether their row has a horizontal line above it. A row with an empty
// cell on either side never objects — there's nothing there to
// contradict the merge. Otherwise both cells are full, and the row only
// agrees to merge if content actually crosses the divider there.
func columnDividerRemovable(m *block.Matrix, vi int) bool {
	for row := 0; row < m.Rows; row++ {
		a := m.At(row, vi-1)
		b := m.At(row, vi)
		if b.VLine {
			return false
		}
		if !a.Full || !b.Full {
			continue
		}
		if a.HLine != b.HLine {
			return false
		}
		if !b.VCrossed {
			return false
		}
	}
	return true
}

func applyColumnKeep(xDividers block.DividerList, m *block.Matrix, keep []bool) (block.DividerList, *block.Matrix) {
	var newDividers block.DividerList
	// colMap[i] = destination column for source column i, after merges.
	colMap := make([]int, m.Cols)
	destCol := 0
	for i, d := range xDividers {
		if keep[i] || i == 0 {
			newDividers = append(newDividers, d)
			if i < m.Cols {
				colMap[i] = destCol
			}
			if i > 0 {
				destCol++
			}
		} else if i < m.Cols {
			colMap[i] = destCol - 1
			if colMap[i] < 0 {
				colMap[i] = 0
			}
		}
	}
	newCols := len(newDividers) - 1
	if newCols < 1 {
		newCols = 1
	}
	out := block.NewMatrix(m.Rows, newCols)
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			dst := colMap[col]
			if dst >= newCols {
				dst = newCols - 1
			}
			mergeCellInto(out.At(row, dst), m.At(row, col))
		}
	}
	return newDividers, out
}

// reduceRows mirrors reduceColumns for the horizontal axis.
func reduceRows(yDividers block.DividerList, m *block.Matrix) (block.DividerList, *block.Matrix) {
	keep := make([]bool, len(yDividers))
	for i := range keep {
		keep[i] = true
	}
	for hi := 1; hi < len(yDividers)-1; hi++ {
		if yDividers[hi].Certain {
			continue
		}
		if rowDividerRemovable(m, hi) {
			keep[hi] = false
		}
	}
	return applyRowKeep(yDividers, m, keep)
}

// rowDividerRemovable mirrors columnDividerRemovable for the horizontal
// axis: a column objects if the lower cell has a drawn horizontal line,
// or if the two cells disagree on vertical-linedness; an empty cell on
// either side never objects; otherwise both cells are full and the
// column only agrees to merge if content crosses the divider there.
func rowDividerRemovable(m *block.Matrix, hi int) bool {
	for col := 0; col < m.Cols; col++ {
		a := m.At(hi-1, col)
		b := m.At(hi, col)
		if b.HLine {
			return false
		}
		if !a.Full || !b.Full {
			continue
		}
		if a.VLine != b.VLine {
			return false
		}
		if !b.HCrossed {
			return false
		}
	}
	return true
}

func applyRowKeep(yDividers block.DividerList, m *block.Matrix, keep []bool) (block.DividerList, *block.Matrix) {
	var newDividers block.DividerList
	rowMap := make([]int, m.Rows)
	destRow := 0
	for i, d := range yDividers {
		if keep[i] || i == 0 {
			newDividers = append(newDividers, d)
			if i < m.Rows {
				rowMap[i] = destRow
			}
			if i > 0 {
				destRow++
			}
		} else if i < m.Rows {
			rowMap[i] = destRow - 1
			if rowMap[i] < 0 {
				rowMap[i] = 0
			}
		}
	}
	newRows := len(newDividers) - 1
	if newRows < 1 {
		newRows = 1
	}
	out := block.NewMatrix(newRows, m.Cols)
	for row := 0; row < m.Rows; row++ {
		dst := rowMap[row]
		if dst >= newRows {
			dst = newRows - 1
		}
		for col := 0; col < m.Cols; col++ {
			mergeCellInto(out.At(dst, col), m.At(row, col))
		}
	}
	return newDividers, out
}

func mergeCellInto(dst, src *block.CellInfo) {
	dst.HLine = dst.HLine || src.HLine
	dst.VLine = dst.VLine || src.VLine
	dst.HCrossed = dst.HCrossed || src.HCrossed
	dst.VCrossed = dst.VCrossed || src.VCrossed
	dst.Full = dst.Full || src.Full
}
