package hunt

import (
	"sort"

	"github.com/antflydb/tablehunt/block"
	"github.com/antflydb/tablehunt/geom"
)

// side names which edge of a content run an event marks.
type side int

const (
	sideLeft side = iota
	sideRight
)

// event is one extent boundary collected from a line of text: the left
// or right edge of a run of non-space characters, at a given transverse
// position (X for an event collected along a horizontal scan of a line,
// used to build vertical dividers).
type event struct {
	pos  float64    // position along the axis being divided
	side side       // left or right edge of the run
	y0   float64    // transverse extent start (the line's top; its left edge for a row event)
	y1   float64    // transverse extent end (the line's bottom; its right edge for a row event)
}

// sortEvents orders events by position, breaking ties by closing a run
// (sideRight) before opening the next one (sideLeft). Two runs that
// touch exactly — e.g. one row's bottom edge equal to the next row's top
// edge — must sort as [..., right, left, ...], never [..., left,
// right, ...], so the winding walk sees the wind count return to zero
// and immediately reopen instead of momentarily doubling up.
func sortEvents(events []event) {
	sort.Slice(events, func(i, j int) bool {
		if events[i].pos != events[j].pos {
			return events[i].pos < events[j].pos
		}
		return events[i].side == sideRight && events[j].side == sideLeft
	})
}

// collectColumnEvents walks every text line directly under region and
// emits a left/right event pair for every maximal run of non-space
// characters on that line. This is the extent collector (component
// 4.1) specialized to the vertical-divider axis: events are positioned
// by X, carrying the line's Y-span as their transverse extent.
func collectColumnEvents(lines []block.Line) []event {
	var events []event
	for _, ln := range lines {
		runs := textRuns(ln.Chars)
		for _, r := range runs {
			events = append(events, event{pos: r.x0, side: sideLeft, y0: ln.Rect.Y0, y1: ln.Rect.Y1})
			events = append(events, event{pos: r.x1, side: sideRight, y0: ln.Rect.Y0, y1: ln.Rect.Y1})
		}
	}
	sortEvents(events)
	return events
}

// collectRowEvents is the transpose of collectColumnEvents: one event
// pair per line, positioned by the line's own Y-span, used to build
// horizontal dividers between rows. A line with any non-space content at
// all counts as a single run spanning its own top to bottom.
func collectRowEvents(lines []block.Line) []event {
	var events []event
	for _, ln := range lines {
		if !lineHasContent(ln) {
			continue
		}
		events = append(events, event{pos: ln.Rect.Y0, side: sideLeft, y0: ln.Rect.X0, y1: ln.Rect.X1})
		events = append(events, event{pos: ln.Rect.Y1, side: sideRight, y0: ln.Rect.X0, y1: ln.Rect.X1})
	}
	sortEvents(events)
	return events
}

func lineHasContent(ln block.Line) bool {
	for _, c := range ln.Chars {
		if !c.IsSpace() {
			return true
		}
	}
	return false
}

type run struct {
	x0, x1 float64
}

// textRuns splits a line's characters into maximal runs of non-space
// content, treating any run of two or more consecutive space characters
// as a gap that ends a run. A single interior or trailing space does not
// end a run — see SPEC_FULL.md's resolved-ambiguities list for why.
func textRuns(chars []block.Char) []run {
	var runs []run
	var cur *run
	spaceStreak := 0
	for _, c := range chars {
		if c.IsSpace() {
			spaceStreak++
			if spaceStreak >= 2 && cur != nil {
				runs = append(runs, *cur)
				cur = nil
			}
			continue
		}
		spaceStreak = 0
		if cur == nil {
			cur = &run{x0: c.Rect.X0, x1: c.Rect.X1}
		} else {
			cur.x1 = c.Rect.X1
		}
	}
	if cur != nil {
		runs = append(runs, *cur)
	}
	return runs
}

// sanitizeEvents folds events that are closer together than tol into a
// single representative event, and discards any left event that never
// finds a matching right event (or vice versa) after folding — this is
// the sanitizer (component 4.2). The input must already be sorted by
// pos; the output is sorted by pos, starts with a left event, ends with a
// right event, and its running wind count never goes negative and ends
// at zero, satisfying the winding-closure invariant the grid builder
// depends on. Overlapping runs can leave two same-sided events next to
// each other.
func sanitizeEvents(events []event, tol float64) []event {
	if len(events) == 0 {
		return nil
	}
	deduped := dedupeSameSide(events, tol)
	closed := closeTinyGaps(deduped, tol)
	return balanceSides(closed)
}

// dedupeSameSide merges consecutive events of the *same* side that fall
// within tol of each other into one, widening the merged event's
// transverse span to cover all the events it absorbed. This removes
// spurious closely-spaced extents (e.g. the same column edge observed
// on several adjacent lines landing at very slightly different X). It
// deliberately never merges a left event with a right event — two
// touching runs (e.g. two rows flush against each other, the first
// one's bottom edge equal to the second one's top edge) must stay as a
// right immediately followed by a left, or the winding walk in the grid
// builder loses its alternation.
func dedupeSameSide(events []event, tol float64) []event {
	var out []event
	i := 0
	for i < len(events) {
		j := i + 1
		e := events[i]
		for j < len(events) && events[j].side == e.side && events[j].pos-events[j-1].pos <= tol {
			if events[j].y0 < e.y0 {
				e.y0 = events[j].y0
			}
			if events[j].y1 > e.y1 {
				e.y1 = events[j].y1
			}
			j++
		}
		out = append(out, e)
		i = j
	}
	return out
}

// closeTinyGaps removes a right event immediately followed by a left
// event within tol of each other: the gap between the two runs they
// bound is below the engine's resolution, so the runs are treated as one
// continuous span and the wind count should never have dropped to zero
// between them at all.
func closeTinyGaps(events []event, tol float64) []event {
	var out []event
	i := 0
	for i < len(events) {
		if i+1 < len(events) && events[i].side == sideRight && events[i+1].side == sideLeft &&
			events[i+1].pos-events[i].pos <= tol {
			i += 2
			continue
		}
		out = append(out, events[i])
		i++
	}
	return out
}

// balanceSides drops leading right-events and trailing left-events that
// have no matching partner, so the walk in the grid builder always
// starts on a left edge and ends on a right edge with net winding zero.
func balanceSides(events []event) []event {
	lo := 0
	for lo < len(events) && events[lo].side == sideRight {
		lo++
	}
	hi := len(events)
	for hi > lo && events[hi-1].side == sideLeft {
		hi--
	}
	out := events[lo:hi]
	return dropUnmatched(out)
}

// dropUnmatched removes interior events whose running wind count would
// go negative (an extra right before its left) or that would leave the
// final wind nonzero (a left no later right closes), by discarding the
// offending event. The collectors produce one left and one right per
// run, but dedupeSameSide can fold more events on one side than on the
// other (e.g. two lines whose runs start at different X but end within
// tol of each other), so this also trims ordinary input; it keeps the
// grid builder's winding walk balanced instead of panicking.
func dropUnmatched(events []event) []event {
	out := make([]event, 0, len(events))
	wind := 0
	for _, e := range events {
		if e.side == sideLeft {
			wind++
			out = append(out, e)
		} else {
			if wind == 0 {
				continue
			}
			wind--
			out = append(out, e)
		}
	}
	// Walk back from the end, dropping each left that no later right
	// closes, until the wind count is back to zero.
	for open, i := 0, len(out)-1; wind > 0 && i >= 0; i-- {
		if out[i].side == sideRight {
			open++
		} else if open > 0 {
			open--
		} else {
			out = append(out[:i], out[i+1:]...)
			wind--
		}
	}
	return out
}

// boundsOfEvents returns the smallest Rect covering every event's
// position and transverse span, useful for diagnostics.
func boundsOfEvents(events []event, vertical bool) geom.Rect {
	r := geom.EmptyRect
	for _, e := range events {
		var er geom.Rect
		if vertical {
			er = geom.Rect{X0: e.pos, X1: e.pos, Y0: e.y0, Y1: e.y1}
		} else {
			er = geom.Rect{X0: e.y0, X1: e.y1, Y0: e.pos, Y1: e.pos}
		}
		r = r.Union(er)
	}
	return r
}
