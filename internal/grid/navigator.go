package grid

// WrapPolicy controls whether the previous/next bindings wrap around the
// catalog. Grid-relative movement never wraps regardless of policy.
type WrapPolicy int

const (
	WrapNone WrapPolicy = iota
	WrapLinear
)

// Config captures the navigation options a navigator instance is created with.
type Config struct {
	Scope    Scope
	Anchor   string
	MinCellW int
	MinCellH int
	Wrap     WrapPolicy
	Paging   bool
}

// Navigator owns the cursor position and scroll offset of one grid instance.
// All transitions are conditioned on the current geometry and item count;
// an out-of-range index is repaired, never propagated.
type Navigator struct {
	Col    int
	Row    int
	Offset int
}

// Index resolves the authoritative flat index for the current cursor.
func (nav *Navigator) Index(g Geometry) int {
	if g.Columns <= 0 {
		return 0
	}
	return nav.Row*g.Columns + nav.Col
}

func (nav *Navigator) setIndex(idx int, g Geometry) {
	if g.Columns <= 0 {
		nav.Col, nav.Row = 0, 0
		return
	}
	nav.Col = idx % g.Columns
	nav.Row = idx / g.Columns
}

// Reset returns the navigator to the zero state.
func (nav *Navigator) Reset() {
	nav.Col, nav.Row, nav.Offset = 0, 0, 0
}

// MoveLeft moves the cursor one column left. Reports whether it moved.
func (nav *Navigator) MoveLeft() bool {
	if nav.Col == 0 {
		return false
	}
	nav.Col--
	return true
}

// MoveRight moves the cursor one column right unless it would leave the grid
// or land past the last item.
func (nav *Navigator) MoveRight(g Geometry, n int) bool {
	if nav.Col+1 >= g.Columns {
		return false
	}
	if nav.Row*g.Columns+nav.Col+1 >= n {
		return false
	}
	nav.Col++
	return true
}

// MoveUp moves the cursor one row up.
func (nav *Navigator) MoveUp() bool {
	if nav.Row == 0 {
		return false
	}
	nav.Row--
	return true
}

// MoveDown moves the cursor one row down unless it would leave the grid or
// land past the last item.
func (nav *Navigator) MoveDown(g Geometry, n int) bool {
	if nav.Row+1 >= g.TotalRows {
		return false
	}
	if (nav.Row+1)*g.Columns+nav.Col >= n {
		return false
	}
	nav.Row++
	return true
}

// PageUp jumps the cursor up by one viewport of rows, clamped at the top.
func (nav *Navigator) PageUp(visibleRows int) bool {
	if nav.Row == 0 {
		return false
	}
	if nav.Row >= visibleRows {
		nav.Row -= visibleRows
	} else {
		nav.Row = 0
	}
	return true
}

// PageDown jumps the cursor down by one viewport of rows, clamped to the last
// row. When the landing cell falls past the last item the cursor snaps to the
// last valid item instead.
func (nav *Navigator) PageDown(g Geometry, n, visibleRows int) bool {
	if n == 0 || g.Columns == 0 {
		return false
	}
	old := *nav
	nav.Row += visibleRows
	if nav.Row >= g.TotalRows {
		nav.Row = g.TotalRows - 1
	}
	if idx := nav.Index(g); idx >= n {
		nav.setIndex(n-1, g)
	}
	return nav.Col != old.Col || nav.Row != old.Row
}

// Prev selects the previous item by flat index, wrapping to the last item.
// Only meaningful under WrapLinear; callers gate on the policy.
func (nav *Navigator) Prev(g Geometry, n int) bool {
	if n == 0 {
		return false
	}
	idx := nav.Index(g)
	if idx > 0 {
		idx--
	} else {
		idx = n - 1
	}
	nav.setIndex(idx, g)
	return true
}

// Next selects the next item by flat index, wrapping to the first item.
func (nav *Navigator) Next(g Geometry, n int) bool {
	if n == 0 {
		return false
	}
	nav.setIndex((nav.Index(g)+1)%n, g)
	return true
}

// Select places the cursor on the given flat index if it refers to a live
// item. Used for digit direct-index selection.
func (nav *Navigator) Select(idx int, g Geometry, n int) bool {
	if idx < 0 || idx >= n {
		return false
	}
	nav.setIndex(idx, g)
	return true
}

// PointerIndex maps a surface coordinate to a flat index. The second return
// is false when the coordinate falls outside the catalog; such clicks are
// ignored. The y coordinate is viewport-relative, so the scroll offset is
// added back in.
func (nav *Navigator) PointerIndex(x, y int, g Geometry, n int) (int, bool) {
	if g.Columns <= 0 || g.CellW <= 0 || g.CellH <= 0 || x < 0 || y < 0 {
		return 0, false
	}
	col := x / g.CellW
	row := y/g.CellH + nav.Offset
	if col >= g.Columns {
		return 0, false
	}
	idx := row*g.Columns + col
	if idx >= n {
		return 0, false
	}
	return idx, true
}

// Reconcile repairs the cursor after a catalog rebuild. An empty catalog
// resets to the zero state; a cursor past the new length snaps to the last
// item with column and row recomputed from the new geometry.
func (nav *Navigator) Reconcile(g Geometry, n int) {
	if n == 0 || g.Columns == 0 {
		nav.Reset()
		return
	}
	if idx := nav.Index(g); idx >= n {
		nav.setIndex(n-1, g)
	}
	if nav.Offset > nav.Row {
		nav.Offset = nav.Row
	}
	if nav.Offset < 0 {
		nav.Offset = 0
	}
}

// ClampOffset shifts the scroll offset so the cursor row stays inside the
// viewport: Offset <= Row < Offset+visibleRows. Called before every render.
func (nav *Navigator) ClampOffset(visibleRows int) {
	if visibleRows < 1 {
		visibleRows = 1
	}
	if nav.Row < nav.Offset {
		nav.Offset = nav.Row
	} else if nav.Row >= nav.Offset+visibleRows {
		nav.Offset = nav.Row - visibleRows + 1
	}
	if nav.Offset < 0 {
		nav.Offset = 0
	}
}
