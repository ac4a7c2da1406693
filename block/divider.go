package block

// Divider is one candidate gridline — vertical or horizontal, depending
// on which DividerList it sits in. Position is the coordinate along the
// perpendicular axis (X for a vertical divider, Y for a horizontal one).
// Certain dividers were reinforced by a drawn rule; Uncertain ones were
// only ever inferred from whitespace gaps.
type Divider struct {
	Position float64

	// Certain is true once a drawn vector block has confirmed this
	// divider; it starts false for dividers inferred purely from the
	// winding-number walk over text extents.
	Certain bool

	// Uncertainty is the largest distance any drawn rule that reinforced
	// this divider fell from Position at the time it was observed: 0 for
	// a divider no rule has touched. It is informational; the reducer and
	// the span detector decide on Certain instead.
	Uncertainty float64

	// HitCount is how many times the position finder has reinforced
	// this divider; used to weight the running-mean update in Reinforce.
	HitCount int
}

// DividerList is an ordered-by-Position run of dividers bounding the rows
// (or columns) of a candidate grid. len(list)-1 is the number of cells
// along that axis.
type DividerList []Divider

// Reinforce folds a new observed position into divider i using a
// running mean weighted by HitCount, and raises Uncertainty to how far
// the observation fell from the divider's prior position when that is
// larger than its current value.
func (dl DividerList) Reinforce(i int, observed float64) {
	d := &dl[i]
	delta := observed - d.Position
	if delta < 0 {
		delta = -delta
	}
	if delta > d.Uncertainty {
		d.Uncertainty = delta
	}
	d.HitCount++
	d.Position += (observed - d.Position) / float64(d.HitCount+1)
	d.Certain = true
}

// Find returns the index of the divider whose Position is within tol of
// target, or -1 if none qualifies. Dividers are assumed sorted by
// Position.
func (dl DividerList) Find(target, tol float64) int {
	best := -1
	bestDist := tol
	for i, d := range dl {
		dist := target - d.Position
		if dist < 0 {
			dist = -dist
		}
		if dist <= bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

// Matrix is the cell occupancy matrix built by the content walker: one
// entry per (row, col) pair of a candidate grid, recording whether the
// cell's edges carry a drawn rule or are crossed by content.
type Matrix struct {
	Rows, Cols int
	Cells      []CellInfo
}

// CellInfo records, for one grid cell, whether its boundaries were
// confirmed by drawn rules (the HLine/VLine pair) and whether content
// spans across them (HCrossed/VCrossed), plus whether the cell holds
// any content at all (Full).
type CellInfo struct {
	HLine, VLine       bool
	HCrossed, VCrossed bool
	Full               bool
}

// NewMatrix allocates a rows x cols occupancy matrix, all cells zeroed.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, Cells: make([]CellInfo, rows*cols)}
}

// At returns a pointer to the cell at (row, col) so callers can mutate it
// in place.
func (m *Matrix) At(row, col int) *CellInfo {
	return &m.Cells[row*m.Cols+col]
}
