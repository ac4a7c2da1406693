package hunt

import (
	"sort"

	"github.com/antflydb/tablehunt/block"
	"github.com/antflydb/tablehunt/geom"
)

// ruleTolerance is how close a drawn rule's own thickness can be to zero
// before it's still treated as a hairline rather than a fill.
const ruleTolerance = 0.75

// classifyRule reports whether r is a horizontal or vertical hairline,
// based on its aspect ratio, and false if it's neither (e.g. a filled
// box, not a line).
func classifyRule(r geom.Rect) (vertical bool, ok bool) {
	w, h := r.Width(), r.Height()
	switch {
	case w <= ruleTolerance && h > w:
		return true, true
	case h <= ruleTolerance && w > h:
		return false, true
	default:
		return false, false
	}
}

// decomposeRectangle splits a filled or stroked rectangle — a common way
// to draw a table's outer box in one shape rather than four separate
// rules — into its four border edges: two synthetic horizontal
// hairlines (top and bottom) and two vertical ones (left and right).
// Each behaves exactly like a drawn rule once handed back through
// classifyRule.
func decomposeRectangle(r geom.Rect) []geom.Rect {
	return []geom.Rect{
		{X0: r.X0, X1: r.X1, Y0: r.Y0, Y1: r.Y0},
		{X0: r.X0, X1: r.X1, Y0: r.Y1, Y1: r.Y1},
		{X0: r.X0, X1: r.X0, Y0: r.Y0, Y1: r.Y1},
		{X0: r.X1, X1: r.X1, Y0: r.Y0, Y1: r.Y1},
	}
}

// ruleEdges returns the hairline rectangles a drawn vector shape
// contributes to the grid: itself, if it's already a hairline, or its
// four decomposed border edges if it's a genuine two-dimensional
// rectangle. A degenerate shape too thin to be a rectangle but not thin
// enough to be a hairline either contributes nothing.
func ruleEdges(r geom.Rect) []geom.Rect {
	if _, ok := classifyRule(r); ok {
		return []geom.Rect{r}
	}
	if r.Width() > ruleTolerance && r.Height() > ruleTolerance {
		return decomposeRectangle(r)
	}
	return nil
}

// ruleSeg is one hairline vector block reduced to its run-axis extent
// and its fixed cross-axis coordinate, for dash-merging.
type ruleSeg struct {
	vertical bool
	along0   float64 // position along the run axis (X for horizontal, Y for vertical)
	along1   float64
	cross    float64 // fixed coordinate on the perpendicular axis
}

// mergeCollinearRules merges sibling vector blocks that form a dashed or
// dotted rule — short collinear segments on the same line, close enough
// together along their run axis — into single synthetic rules spanning
// the whole dashed run. This supplements the distilled spec with the
// dash-merging behavior from the original implementation (see
// DESIGN.md): scenario 4 (dotted rules) in the test suite depends on it.
func mergeCollinearRules(vectors []*block.Block, gapTol float64) []geom.Rect {
	var segs []ruleSeg
	for _, v := range vectors {
		for _, edge := range ruleEdges(v.Rect) {
			vertical, ok := classifyRule(edge)
			if !ok {
				continue
			}
			if vertical {
				segs = append(segs, ruleSeg{vertical: true, along0: edge.Y0, along1: edge.Y1, cross: edge.CenterX()})
			} else {
				segs = append(segs, ruleSeg{vertical: false, along0: edge.X0, along1: edge.X1, cross: edge.CenterY()})
			}
		}
	}

	var out []geom.Rect
	for _, axis := range [2]bool{false, true} {
		var group []ruleSeg
		for _, s := range segs {
			if s.vertical == axis {
				group = append(group, s)
			}
		}
		out = append(out, mergeSegGroup(group, gapTol)...)
	}
	return out
}

func mergeSegGroup(segs []ruleSeg, gapTol float64) []geom.Rect {
	if len(segs) == 0 {
		return nil
	}
	// Group by approximately equal cross coordinate (same rule line),
	// then merge runs of segments close together along the run axis.
	sort.Slice(segs, func(i, j int) bool { return segs[i].cross < segs[j].cross })

	const crossTol = 1.0

	var out []geom.Rect
	i := 0
	for i < len(segs) {
		j := i + 1
		for j < len(segs) && segs[j].cross-segs[i].cross <= crossTol {
			j++
		}
		lineGroup := append([]ruleSeg{}, segs[i:j]...)
		sort.Slice(lineGroup, func(a, b int) bool { return lineGroup[a].along0 < lineGroup[b].along0 })

		k := 0
		for k < len(lineGroup) {
			l := k + 1
			a0, a1 := lineGroup[k].along0, lineGroup[k].along1
			cross := lineGroup[k].cross
			for l < len(lineGroup) && lineGroup[l].along0-a1 <= gapTol {
				if lineGroup[l].along1 > a1 {
					a1 = lineGroup[l].along1
				}
				l++
			}
			if lineGroup[k].vertical {
				out = append(out, geom.Rect{X0: cross, X1: cross, Y0: a0, Y1: a1})
			} else {
				out = append(out, geom.Rect{X0: a0, X1: a1, Y0: cross, Y1: cross})
			}
			k = l
		}
		i = j
	}
	return out
}

// reinforceFromRules is the rule walker (component 4.4): for every drawn
// rule in the region, it locates the divider nearest the rule's center on
// the rule's own axis and reinforces that divider's position, marking it
// Certain. It does not also reinforce whatever divider the rule's
// transverse extent happens to fall into — see SPEC_FULL.md's
// resolved-ambiguities list for why only the rule's own axis counts.
func reinforceFromRules(rules []geom.Rect, xDividers, yDividers block.DividerList, tol float64) {
	for _, r := range rules {
		vertical, ok := classifyRule(r)
		if !ok {
			continue
		}
		if vertical {
			x := r.CenterX()
			if i := xDividers.Find(x, tol); i >= 0 {
				xDividers.Reinforce(i, x)
			}
		} else {
			y := r.CenterY()
			if i := yDividers.Find(y, tol); i >= 0 {
				yDividers.Reinforce(i, y)
			}
		}
	}
}
