package hunt

import "github.com/antflydb/tablehunt/block"

// buildDividers is the grid builder (component 4.3): it walks a
// sanitized, sorted event list with a winding counter, and turns every
// interval where the winding number returns to zero — a gap no run
// covers — into a candidate divider at the gap's midpoint. The region's
// own start and end become the outermost dividers, so the returned list
// always has at least two entries and describes len(list)-1 candidate
// cells along this axis.
func buildDividers(events []event, regionStart, regionEnd float64) block.DividerList {
	dl := block.DividerList{{Position: regionStart}}

	wind := 0
	for i, e := range events {
		if e.side == sideLeft {
			wind++
		} else {
			wind--
		}
		invariant(wind >= 0, "winding number went negative mid-walk")

		if wind == 0 && i+1 < len(events) {
			gapStart := e.pos
			gapEnd := events[i+1].pos
			if gapEnd > gapStart {
				mid := (gapStart + gapEnd) / 2
				dl = append(dl, block.Divider{Position: mid})
			}
		}
	}
	invariant(wind == 0, "winding number nonzero after full walk")

	dl = append(dl, block.Divider{Position: regionEnd})
	return dedupeDividers(dl)
}

// dedupeDividers removes a divider that landed at (or before) its
// predecessor's position, which can happen when a gap sits exactly at
// the region boundary.
func dedupeDividers(dl block.DividerList) block.DividerList {
	out := dl[:0:0]
	for _, d := range dl {
		if len(out) > 0 && d.Position <= out[len(out)-1].Position {
			continue
		}
		out = append(out, d)
	}
	return out
}

// minCellsForCandidate is the fewest cells (i.e.
// len(dividers)-1 >= this) a region needs on both axes to be worth
// carrying further down the pipeline. A single row or single column is
// just a paragraph, not a table.
const minCellsForCandidate = 2

// gridCandidate reports whether the dividers built for both axes
// describe at least a 2x2 grid.
func gridCandidate(xDividers, yDividers block.DividerList) bool {
	return len(xDividers)-1 >= minCellsForCandidate && len(yDividers)-1 >= minCellsForCandidate
}
