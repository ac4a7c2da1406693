// Package hunt implements the table-hunting engine: given a page region
// already segmented into text and vector blocks, it finds sub-regions
// that look like tables and restructures them in place into Table/TR/TD
// blocks, recursing into whatever remains so nested tables are found
// inside-out.
package hunt

import (
	"github.com/antflydb/tablehunt/block"
	"go.uber.org/zap"
)

// Config tunes the hunting engine. The zero Config is usable: every
// field defaults to a value tuned for typical 10-12pt body text at 72
// DPI page coordinates.
type Config struct {
	// EventTolerance is how close two extent events must be (in page
	// units) before the sanitizer folds them into one (component 4.2).
	EventTolerance float64

	// RuleTolerance is how close a drawn rule's own position (the X of a
	// vertical rule, the Y of a horizontal one) must land to a divider
	// before the rule walker reinforces it (component 4.4).
	RuleTolerance float64

	// DashGapTolerance is the largest gap, along a dashed rule's run
	// axis, that still counts as the same rule when merging collinear
	// vector segments.
	DashGapTolerance float64

	// MaxDepth bounds how many levels of nested tables Hunt will
	// recurse into. Zero means unlimited.
	MaxDepth int

	// Pool is the allocation seam for new structural blocks (spec §6).
	// If nil, Hunt creates an unlimited Pool for the duration of the
	// call. The emitter creates its Table/TR/TD blocks with
	// block.NewStructuralBlock, not through Pool, so a Pool's node cap
	// does not limit what Hunt emits.
	Pool *block.Pool

	// Logger receives optional debug traces at stage boundaries. If
	// nil, Hunt logs nothing.
	Logger *zap.Logger
}

func (c Config) withDefaults() Config {
	if c.EventTolerance <= 0 {
		c.EventTolerance = 2.0
	}
	if c.RuleTolerance <= 0 {
		c.RuleTolerance = 3.0
	}
	if c.DashGapTolerance <= 0 {
		c.DashGapTolerance = 6.0
	}
	if c.Pool == nil {
		c.Pool = block.NewPool(0)
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// Hunt searches root's subtree for table structure and restructures any
// region it finds in place. It is synchronous and must not be called
// concurrently on overlapping subtrees (spec §5).
func Hunt(root *block.Block, cfg Config) error {
	cfg = cfg.withDefaults()
	huntLevel(root, cfg, 0)
	return nil
}

// huntLevel treats region's direct children as one table candidate (see
// huntCandidate), emits it if the candidate survives reduction, and
// then recurses into every remaining container child (including the
// cells of a table it just emitted, matching the original's inside-out
// recursive scan — spec §4.9).
func huntLevel(region *block.Block, cfg Config, depth int) {
	if cfg.MaxDepth > 0 && depth >= cfg.MaxDepth {
		return
	}

	children := region.Children()
	if len(children) >= 2 {
		if firstIdx, lastIdx, table, ok := huntCandidate(region, children, cfg); ok {
			spliceTable(region, children, firstIdx, lastIdx, table)
			cfg.Logger.Debug("emitted table",
				zap.Int("rows", table.NumChildren()),
			)
			children = region.Children()
		}
	}

	for _, c := range children {
		if !c.IsLeaf() {
			huntLevel(c, cfg, depth+1)
		}
	}
}

// huntCandidate treats region's entire child list as one table
// candidate: it collects extents from the text lines and vector rules
// among them, builds a grid, reinforces it from drawn rules, marks
// content occupancy, reduces away unsupported dividers, and — if what's
// left is still at least a 2x2 grid — emits it. It returns the child
// index range consumed (always the whole list; sub-range candidate
// search is not implemented, see DESIGN.md) and the emitted table, or
// ok=false if no candidate survived.
func huntCandidate(region *block.Block, children []*block.Block, cfg Config) (firstIdx, lastIdx int, table *block.Block, ok bool) {
	var lines []block.Line
	var leaves []*block.Block
	var vectors []*block.Block

	for _, c := range children {
		switch c.Kind {
		case block.KindText:
			lines = append(lines, c.Lines...)
			leaves = append(leaves, c)
		case block.KindVector:
			vectors = append(vectors, c)
			leaves = append(leaves, c)
		}
	}
	if len(lines) == 0 {
		return 0, 0, nil, false
	}

	bounds := region.Rect
	colEvents := sanitizeEvents(collectColumnEvents(lines), cfg.EventTolerance)
	rowEvents := sanitizeEvents(collectRowEvents(lines), cfg.EventTolerance)
	xDividers := buildDividers(colEvents, bounds.X0, bounds.X1)
	yDividers := buildDividers(rowEvents, bounds.Y0, bounds.Y1)

	if !gridCandidate(xDividers, yDividers) {
		return 0, 0, nil, false
	}

	rules := mergeCollinearRules(vectors, cfg.DashGapTolerance)
	reinforceFromRules(rules, xDividers, yDividers, cfg.RuleTolerance)

	m := block.NewMatrix(len(yDividers)-1, len(xDividers)-1)
	markContent(leaves, xDividers, yDividers, m)
	markRuleLines(rules, xDividers, yDividers, m)

	xDividers, m = reduceColumns(xDividers, m)
	yDividers, m = reduceRows(yDividers, m)

	if !gridCandidate(xDividers, yDividers) {
		return 0, 0, nil, false
	}

	tbl := emitTable(xDividers, yDividers, m, leaves)
	return 0, len(children), tbl, true
}
