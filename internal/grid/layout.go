package grid

// MinCellFloor is the hard lower bound for cell dimensions. It keeps the
// renderer from producing zero or negative interiors on extreme surfaces.
const MinCellFloor = 3

// Geometry describes a computed grid: logical dimensions, cell size in
// character cells, and the total row count needed to hold every item.
type Geometry struct {
	Columns   int
	Rows      int
	CellW     int
	CellH     int
	TotalRows int
}

// Compute derives grid geometry for n items on a surfaceW x surfaceH surface.
// The balancing loop increments rows before columns on each step, producing
// the smallest near-square grid with rows*columns >= n. minCellW shrinks the
// column count when cells would fall below it; minCellH shrinks only the
// on-screen cell height (rows stays the logical row count for pagination).
// n == 0 yields the zero Geometry and callers must treat Columns == 0 as
// nothing to render.
func Compute(n, surfaceW, surfaceH, minCellW, minCellH int) Geometry {
	if n <= 0 {
		return Geometry{}
	}

	rows, columns := 1, 1
	for rows*columns < n {
		rows++
		if rows*columns < n {
			columns++
		}
	}

	g := Geometry{Columns: columns, Rows: rows}
	g.CellW = surfaceW / columns
	g.CellH = surfaceH / rows

	if minCellW > 0 && g.CellW < minCellW && surfaceW >= minCellW {
		g.Columns = surfaceW / minCellW
		if g.Columns == 0 {
			g.Columns = 1
		}
		g.CellW = surfaceW / g.Columns
	}
	if minCellH > 0 && g.CellH < minCellH && surfaceH >= minCellH {
		visible := surfaceH / minCellH
		if visible == 0 {
			visible = 1
		}
		g.CellH = surfaceH / visible
	}

	if g.CellW < MinCellFloor {
		g.CellW = MinCellFloor
	}
	if g.CellH < MinCellFloor {
		g.CellH = MinCellFloor
	}

	g.TotalRows = (n + g.Columns - 1) / g.Columns
	return g
}

// VisibleRows reports how many grid rows fit on a surface of the given
// height. Always at least 1 for non-degenerate geometry.
func (g Geometry) VisibleRows(surfaceH int) int {
	if g.CellH <= 0 {
		return 0
	}
	visible := surfaceH / g.CellH
	if visible < 1 {
		visible = 1
	}
	return visible
}
