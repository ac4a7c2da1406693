package hunt

import (
	"strings"
	"testing"

	"github.com/antflydb/tablehunt/block"
	"github.com/antflydb/tablehunt/geom"
)

// buildCellBlock builds a single-line, single-run KindText leaf for one
// table cell's text, with no internal whitespace handling needed: each
// cell is its own leaf, so the gap between one cell and the next is
// just the distance between their rectangles, exactly like two
// already-segmented words on a page.
func buildCellBlock(x0, y0, y1 float64, text string) *block.Block {
	const charW = 6.0
	var chars []block.Char
	x := x0
	for _, r := range text {
		chars = append(chars, block.Char{Rune: r, Rect: geom.Rect{X0: x, Y0: y0, X1: x + charW, Y1: y1}})
		x += charW
	}
	r := geom.EmptyRect
	for _, c := range chars {
		r = r.Union(c.Rect)
	}
	return block.NewTextBlock([]block.Line{{Chars: chars, Rect: r}})
}

// buildGridRegion constructs a structural block whose children are one
// KindText leaf per cell, positioned at colX[i] on row i of rowSpans.
// Row spans must leave a real gap between one row's bottom and the next
// row's top, and colX entries must leave a real gap after each cell's
// text — the winding walk only places a divider where an actual
// whitespace gap exists, the same way ordinary word and line spacing
// separates already-segmented text on a page.
func buildGridRegion(colX []float64, rowSpans [][2]float64, rows [][]string) *block.Block {
	region := block.NewStructuralBlock(block.TagNone)
	var children []*block.Block
	for i, cells := range rows {
		for j, text := range cells {
			children = append(children, buildCellBlock(colX[j], rowSpans[i][0], rowSpans[i][1], text))
		}
	}
	region.ReplaceChildren(children)
	// Give the region an explicit bounding box spanning the whole grid,
	// including the final column's right edge and final row's bottom,
	// since RecalcBBox only unions actual content, not trailing
	// whitespace past the last character.
	region.Rect = geom.Rect{
		X0: colX[0], Y0: rowSpans[0][0],
		X1: colX[len(colX)-1] + 60, Y1: rowSpans[len(rowSpans)-1][1],
	}
	return region
}

// buildSpanningHeaderBlock builds a single text leaf with two runs on
// one line: left starting at x0, right starting at x1, with a run of
// space characters filling the gap between them. Used to build a title
// block that reads as one leaf spanning several grid columns (its own
// Rect covers the whole span) while still contributing the same
// left/right column events an ordinary pair of cells would, so the
// column gap between x0 and x1 is still recognized as a divider.
func buildSpanningHeaderBlock(x0, x1, y0, y1 float64, left, right string) *block.Block {
	const charW = 6.0
	var chars []block.Char
	x := x0
	for _, r := range left {
		chars = append(chars, block.Char{Rune: r, Rect: geom.Rect{X0: x, Y0: y0, X1: x + charW, Y1: y1}})
		x += charW
	}
	for x < x1 {
		chars = append(chars, block.Char{Rune: ' ', Rect: geom.Rect{X0: x, Y0: y0, X1: x + charW, Y1: y1}})
		x += charW
	}
	x = x1
	for _, r := range right {
		chars = append(chars, block.Char{Rune: r, Rect: geom.Rect{X0: x, Y0: y0, X1: x + charW, Y1: y1}})
		x += charW
	}
	r := geom.EmptyRect
	for _, c := range chars {
		r = r.Union(c.Rect)
	}
	return block.NewTextBlock([]block.Line{{Chars: chars, Rect: r}})
}

func countLeafRunes(b *block.Block) int {
	n := 0
	if b.Kind == block.KindText {
		for _, ln := range b.Lines {
			for _, c := range ln.Chars {
				if !c.IsSpace() {
					n++
				}
			}
		}
	}
	for c := b.FirstChild; c != nil; c = c.Next {
		n += countLeafRunes(c)
	}
	return n
}

func findTable(b *block.Block) *block.Block {
	if b.Tag == block.TagTable {
		return b
	}
	for c := b.FirstChild; c != nil; c = c.Next {
		if t := findTable(c); t != nil {
			return t
		}
	}
	return nil
}

func TestHuntPureGrid2x2(t *testing.T) {
	colX := []float64{0, 100, 200}
	rowSpans := [][2]float64{{0, 16}, {20, 36}}
	rows := [][]string{
		{"aa", "bb"},
		{"cc", "dd"},
	}
	region := buildGridRegion(colX, rowSpans, rows)
	before := countLeafRunes(region)

	if err := Hunt(region, Config{}); err != nil {
		t.Fatalf("Hunt: %v", err)
	}

	tbl := findTable(region)
	if tbl == nil {
		t.Fatal("expected a table to be emitted for a pure 2x2 grid")
	}
	if got := tbl.NumChildren(); got != 2 {
		t.Fatalf("table has %d rows, want 2", got)
	}
	for row := tbl.FirstChild; row != nil; row = row.Next {
		if got := row.NumChildren(); got != 2 {
			t.Fatalf("row has %d cells, want 2", got)
		}
	}
	if err := block.VerifyInvariants(region); err != nil {
		t.Fatalf("VerifyInvariants: %v", err)
	}
	if after := countLeafRunes(region); after != before {
		t.Fatalf("character count changed: before=%d after=%d", before, after)
	}
}

func TestHuntRuledGrid(t *testing.T) {
	colX := []float64{0, 100, 200}
	rowSpans := [][2]float64{{0, 16}, {20, 36}, {40, 56}}
	rows := [][]string{
		{"h1", "h2"},
		{"aa", "bb"},
		{"cc", "dd"},
	}
	region := buildGridRegion(colX, rowSpans, rows)

	vline := block.NewVectorBlock(geom.Rect{X0: 56, X1: 56, Y0: 0, Y1: 56})
	hline := block.NewVectorBlock(geom.Rect{X0: 0, X1: 260, Y0: 18, Y1: 18})
	children := region.Children()
	children = append(children, vline, hline)
	region.ReplaceChildren(children)

	if err := Hunt(region, Config{}); err != nil {
		t.Fatalf("Hunt: %v", err)
	}
	tbl := findTable(region)
	if tbl == nil {
		t.Fatal("expected a table to be emitted for a ruled grid")
	}
	if err := block.VerifyInvariants(region); err != nil {
		t.Fatalf("VerifyInvariants: %v", err)
	}
}

// TestHuntSpannedHeader covers spec scenario 2: a wide header leaf laid
// over an otherwise ordinary 2x2 grid. The header's own run structure
// still leaves the interior column gap recognizable (same gap the two
// data rows leave), but its bbox crosses that divider, so the span
// detector should grow it into one cell covering both columns on row 0
// while leaving rows 1-2 as ordinary two-cell rows.
func TestHuntSpannedHeader(t *testing.T) {
	colX := []float64{0, 100, 200}
	dataRowSpans := [][2]float64{{20, 36}, {40, 56}}
	dataRows := [][]string{
		{"aa", "bb"},
		{"cc", "dd"},
	}
	region := buildGridRegion(colX, dataRowSpans, dataRows)

	title := buildSpanningHeaderBlock(colX[0], colX[1], 0, 16, "hd", "head")
	children := append([]*block.Block{title}, region.Children()...)
	region.ReplaceChildren(children)
	region.Rect.Y0 = 0

	before := countLeafRunes(region)

	if err := Hunt(region, Config{}); err != nil {
		t.Fatalf("Hunt: %v", err)
	}

	tbl := findTable(region)
	if tbl == nil {
		t.Fatal("expected a table to be emitted for a grid with a spanned header")
	}
	if got := tbl.NumChildren(); got != 3 {
		t.Fatalf("table has %d rows, want 3 (header + 2 data rows)", got)
	}

	var rows []*block.Block
	for r := tbl.FirstChild; r != nil; r = r.Next {
		rows = append(rows, r)
	}
	if got := rows[0].NumChildren(); got != 1 {
		t.Fatalf("header row has %d cells, want 1 (spanning both columns)", got)
	}
	for i, r := range rows[1:] {
		if got := r.NumChildren(); got != 2 {
			t.Fatalf("data row %d has %d cells, want 2", i, got)
		}
	}
	if got := countLeafRunes(rows[0]); got != len("hdhead") {
		t.Fatalf("header cell holds %d runes of content, want %d (the whole title)", got, len("hdhead"))
	}

	if err := block.VerifyInvariants(region); err != nil {
		t.Fatalf("VerifyInvariants: %v", err)
	}
	if after := countLeafRunes(region); after != before {
		t.Fatalf("character count changed: before=%d after=%d", before, after)
	}
}

func TestHuntDottedRuleMerges(t *testing.T) {
	var dashes []*block.Block
	x := 0.0
	for x < 200 {
		dashes = append(dashes, block.NewVectorBlock(geom.Rect{X0: x, X1: x + 4, Y0: 20, Y1: 20}))
		x += 8
	}
	merged := mergeCollinearRules(dashes, 6.0)
	if len(merged) != 1 {
		t.Fatalf("mergeCollinearRules produced %d rules, want 1 merged dashed rule", len(merged))
	}
	if merged[0].X0 > 1 || merged[0].X1 < 195 {
		t.Fatalf("merged rule %+v does not span the full dashed run", merged[0])
	}
}

func TestHuntMultiSpaceGapIsDivider(t *testing.T) {
	const charW = 6.0
	var chars []block.Char
	x := 0.0
	for _, r := range "one" {
		chars = append(chars, block.Char{Rune: r, Rect: geom.Rect{X0: x, Y0: 0, X1: x + charW, Y1: 20}})
		x += charW
	}
	for i := 0; i < 4; i++ {
		chars = append(chars, block.Char{Rune: ' ', Rect: geom.Rect{X0: x, Y0: 0, X1: x + charW, Y1: 20}})
		x += charW
	}
	for _, r := range "two" {
		chars = append(chars, block.Char{Rune: r, Rect: geom.Rect{X0: x, Y0: 0, X1: x + charW, Y1: 20}})
		x += charW
	}
	runs := textRuns(chars)
	if len(runs) != 2 {
		t.Fatalf("textRuns found %d runs, want 2 (gap of >=2 spaces should split)", len(runs))
	}
}

func TestHuntSingleTrailingSpaceIsContent(t *testing.T) {
	chars := []block.Char{
		{Rune: 'a', Rect: geom.Rect{X0: 0, Y0: 0, X1: 6, Y1: 10}},
		{Rune: ' ', Rect: geom.Rect{X0: 6, Y0: 0, X1: 12, Y1: 10}},
	}
	runs := textRuns(chars)
	if len(runs) != 1 {
		t.Fatalf("a single trailing space should not split a run; got %d runs", len(runs))
	}
}

func TestHuntNonTableRegionUntouched(t *testing.T) {
	region := block.NewStructuralBlock(block.TagNone)
	ln := block.NewTextBlock([]block.Line{{
		Chars: []block.Char{{Rune: 'h', Rect: geom.Rect{X0: 0, Y0: 0, X1: 6, Y1: 10}}},
		Rect:  geom.Rect{X0: 0, Y0: 0, X1: 6, Y1: 10},
	}})
	region.AppendChild(ln)
	region.Rect = geom.Rect{X0: 0, Y0: 0, X1: 300, Y1: 10}

	if err := Hunt(region, Config{}); err != nil {
		t.Fatalf("Hunt: %v", err)
	}
	if tbl := findTable(region); tbl != nil {
		t.Fatal("a single paragraph region should never be emitted as a table")
	}
}

func TestHuntIdempotent(t *testing.T) {
	colX := []float64{0, 100, 200}
	rowSpans := [][2]float64{{0, 16}, {20, 36}}
	rows := [][]string{
		{"aa", "bb"},
		{"cc", "dd"},
	}
	region := buildGridRegion(colX, rowSpans, rows)
	if err := Hunt(region, Config{}); err != nil {
		t.Fatalf("first Hunt: %v", err)
	}
	first := RenderTreeSummary(region)
	if err := Hunt(region, Config{}); err != nil {
		t.Fatalf("second Hunt: %v", err)
	}
	second := RenderTreeSummary(region)
	if first != second {
		t.Fatalf("Hunt is not idempotent:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

// RenderTreeSummary is a small test-only helper that renders a block
// subtree's Kind/Tag shape, used to check Hunt left an already-hunted
// tree unchanged on a second pass.
func RenderTreeSummary(b *block.Block) string {
	var sb strings.Builder
	renderTreeSummary(b, &sb, 0)
	return sb.String()
}

func renderTreeSummary(b *block.Block, sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat(" ", depth))
	sb.WriteString(b.Kind.String())
	sb.WriteString("/")
	sb.WriteString(b.Tag.String())
	sb.WriteString("\n")
	for c := b.FirstChild; c != nil; c = c.Next {
		renderTreeSummary(c, sb, depth+1)
	}
}
