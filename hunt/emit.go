package hunt

import (
	"github.com/antflydb/tablehunt/block"
	"github.com/antflydb/tablehunt/geom"
)

// cellSpan is one detected cell in the reduced grid: a rectangular run
// of matrix cells, [row0,row1) x [col0,col1), that should be emitted as
// a single TD, possibly spanning more than one underlying row and/or
// column.
type cellSpan struct {
	row0, row1 int
	col0, col1 int
}

// detectSpans is the span detector (component 4.7): it walks the
// reduced matrix in row-major, left-to-right order, skipping any cell a
// previous span already claimed — the sent grid below mirrors
// stext-table.c's sent_tab — and grows each unclaimed cell first across
// columns (growColumnSpan) and then down rows (growRowSpan) as far as
// the divider and crossing evidence allows, marking every cell the
// resulting span covers as sent before moving on.
func detectSpans(xDividers, yDividers block.DividerList, m *block.Matrix) []cellSpan {
	sent := make([]bool, m.Rows*m.Cols)
	idx := func(row, col int) int { return row*m.Cols + col }

	var spans []cellSpan
	for row := 0; row < m.Rows; row++ {
		rowHasCell := false
		for col := 0; col < m.Cols; col++ {
			if !sent[idx(row, col)] {
				rowHasCell = true
				break
			}
		}
		if !rowHasCell {
			continue // every cell in this row was already claimed by a span from above
		}

		for col := 0; col < m.Cols; col++ {
			if sent[idx(row, col)] {
				continue
			}
			colEnd := growColumnSpan(xDividers, m, row, col)
			rowEnd := growRowSpan(xDividers, yDividers, m, row, col, colEnd)
			for r := row; r < rowEnd; r++ {
				for c := col; c < colEnd; c++ {
					sent[idx(r, c)] = true
				}
			}
			spans = append(spans, cellSpan{row0: row, row1: rowEnd, col0: col, col1: colEnd})
		}
	}
	return spans
}

// growColumnSpan extends a cell rightward across column boundaries that
// carry no drawn vertical rule, whose divider no drawn rule has
// confirmed (Certain is false), and whose content actually crosses them.
func growColumnSpan(xDividers block.DividerList, m *block.Matrix, row, col int) int {
	colEnd := col + 1
	for colEnd < m.Cols {
		xi := colEnd
		c := m.At(row, colEnd-1)
		if c.VLine || !c.VCrossed {
			break
		}
		if xi >= len(xDividers)-1 {
			break
		}
		if xDividers[xi].Certain {
			break
		}
		colEnd++
	}
	return colEnd
}

// growRowSpan extends a cell downward across row boundaries the same
// way growColumnSpan extends it across columns, additionally requiring
// every column within [col,colEnd) to support the extension and at
// least one of them to actually be crossed by content — otherwise two
// merely-adjacent, uncrossed rows would be spanned together for no
// reason.
func growRowSpan(xDividers, yDividers block.DividerList, m *block.Matrix, row, col, colEnd int) int {
	rowEnd := row + 1
	for rowEnd < m.Rows {
		yi := rowEnd
		if yi >= len(yDividers)-1 || yDividers[yi].Certain {
			break
		}
		first := m.At(rowEnd, col)
		if first.HLine {
			break
		}
		crossed := first.HCrossed
		ok := true
		for c := col + 1; c < colEnd; c++ {
			cell := m.At(rowEnd, c-1)
			xi := c
			if cell.HLine || cell.VLine || !cell.VCrossed {
				ok = false
				break
			}
			if xi >= len(xDividers)-1 || xDividers[xi].Certain {
				ok = false
				break
			}
			if cell.HCrossed {
				crossed = true
			}
		}
		if !ok || !crossed {
			break
		}
		rowEnd++
	}
	return rowEnd
}

// emitTable builds the structural block tree for one confirmed table
// candidate: a TagTable container holding one TagRow per matrix row
// that still has at least one unclaimed cell, each holding one TagCell
// per detected span, with the original leaf blocks that fall inside a
// cell's rectangle reparented under it. This is the emitter (component
// 4.7), handed off to tree surgery (component 4.8) by the caller.
func emitTable(xDividers, yDividers block.DividerList, m *block.Matrix, leaves []*block.Block) *block.Block {
	table := block.NewStructuralBlock(block.TagTable)

	spans := detectSpans(xDividers, yDividers, m)
	byRow := make(map[int][]cellSpan)
	for _, sp := range spans {
		byRow[sp.row0] = append(byRow[sp.row0], sp)
	}

	var rowBlocks []*block.Block
	for row := 0; row < m.Rows; row++ {
		rowSpans, ok := byRow[row]
		if !ok {
			continue
		}
		rowBlock := block.NewStructuralBlock(block.TagRow)
		var cellBlocks []*block.Block
		for _, sp := range rowSpans {
			cellRect := geom.Rect{
				X0: xDividers[sp.col0].Position,
				X1: xDividers[sp.col1].Position,
				Y0: yDividers[sp.row0].Position,
				Y1: yDividers[sp.row1].Position,
			}
			cell := block.NewStructuralBlock(block.TagCell)
			cell.Rect = cellRect
			cellBlocks = append(cellBlocks, cell)
		}
		rowBlock.ReplaceChildren(cellBlocks)
		rowBlocks = append(rowBlocks, rowBlock)
	}
	table.ReplaceChildren(rowBlocks)

	// transplantLeaves uses each cell's Rect (set above, from divider
	// geometry) purely as the intersection target for content surgery;
	// ReplaceChildren's own RecalcBBox then reshapes every cell, row, and
	// table Rect to the union of what actually landed inside it, keeping
	// Rect == union-of-children intact (see block.VerifyInvariants).
	transplantLeaves(table, leaves)
	return table
}

// transplantLeaves reparents leaf content into table's cells, cell by
// cell in document order, using the rectangle-intersection surgery
// move_contained_content performs in the original: a leaf whose bbox
// doesn't overlap a cell at all is left for the next cell to try; a
// leaf whose bbox equals the intersection moves there whole; and a
// partially-overlapping text leaf is split line by line — and, for a
// line that itself only partially overlaps, character by character —
// leaving whatever's left over for the next cell to claim. A
// partially-overlapping non-text leaf (e.g. a vector) is left in place
// untouched, since there's nothing smaller to split it into.
func transplantLeaves(table *block.Block, leaves []*block.Block) {
	remaining := leaves
	for row := table.FirstChild; row != nil; row = row.Next {
		for cell := row.FirstChild; cell != nil; cell = cell.Next {
			remaining = transplantInto(cell, remaining)
		}
	}
}

func transplantInto(cell *block.Block, leaves []*block.Block) []*block.Block {
	var stays, claimed []*block.Block
	for _, leaf := range leaves {
		bbox := leaf.Rect.Intersect(cell.Rect)
		switch {
		case bbox.Empty():
			stays = append(stays, leaf)
		case bbox == leaf.Rect:
			claimed = append(claimed, leaf)
		case leaf.Kind == block.KindText:
			moved, kept := splitTextLeaf(leaf, cell.Rect)
			if moved != nil {
				claimed = append(claimed, moved)
			}
			if kept != nil {
				stays = append(stays, kept)
			}
		default:
			stays = append(stays, leaf)
		}
	}
	cell.ReplaceChildren(claimed)
	return stays
}

// splitTextLeaf splits a text leaf's lines against r: a line entirely
// inside r moves whole, a line entirely outside stays put, and a line
// that only partially overlaps is split character by character. It
// returns the (possibly nil) new block holding what belongs inside r
// and the (possibly nil) original leaf, mutated in place to hold
// whatever's left outside it.
func splitTextLeaf(leaf *block.Block, r geom.Rect) (moved, kept *block.Block) {
	var movedLines, keptLines []block.Line
	for _, line := range leaf.Lines {
		lrect := line.Rect.Intersect(r)
		switch {
		case lrect.Empty():
			keptLines = append(keptLines, line)
		case lrect == line.Rect:
			movedLines = append(movedLines, line)
		default:
			mv, kp := splitLineChars(line, r)
			if mv != nil {
				movedLines = append(movedLines, *mv)
			}
			if kp != nil {
				keptLines = append(keptLines, *kp)
			}
		}
	}
	if len(movedLines) > 0 {
		moved = block.NewTextBlock(movedLines)
	}
	if len(keptLines) > 0 {
		leaf.Lines = keptLines
		leaf.RecalcBBox()
		kept = leaf
	}
	return moved, kept
}

// splitLineChars splits one line's characters by whether each
// character's center point falls inside r, mirroring
// move_contained_content's per-character fallback for a line that
// straddles a cell boundary.
func splitLineChars(line block.Line, r geom.Rect) (moved, kept *block.Line) {
	var movedChars, keptChars []block.Char
	for _, ch := range line.Chars {
		cx := (ch.Rect.X0 + ch.Rect.X1) / 2
		cy := (ch.Rect.Y0 + ch.Rect.Y1) / 2
		if cx < r.X0 || cx > r.X1 || cy < r.Y0 || cy > r.Y1 {
			keptChars = append(keptChars, ch)
		} else {
			movedChars = append(movedChars, ch)
		}
	}
	if len(movedChars) > 0 {
		l := lineFromChars(movedChars)
		moved = &l
	}
	if len(keptChars) > 0 {
		l := lineFromChars(keptChars)
		kept = &l
	}
	return moved, kept
}

func lineFromChars(chars []block.Char) block.Line {
	r := geom.EmptyRect
	for _, c := range chars {
		r = r.Union(c.Rect)
	}
	return block.Line{Chars: chars, Rect: r}
}
