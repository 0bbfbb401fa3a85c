package events

import "github.com/atomicstack/tmux-grid-switch/internal/logging"

type GridTracer struct{}

type CatalogTracer struct{}

type ActionTracer struct{}

type FilterTracer struct{}

var (
	Grid    = GridTracer{}
	Catalog = CatalogTracer{}
	Action  = ActionTracer{}
	Filter  = FilterTracer{}
)

func (GridTracer) Cursor(col, row, index int) {
	logging.Trace("grid.cursor", map[string]interface{}{"col": col, "row": row, "index": index})
}

func (GridTracer) Layout(items, columns, rows, cellW, cellH int) {
	logging.Trace("grid.layout", map[string]interface{}{
		"items":   items,
		"columns": columns,
		"rows":    rows,
		"cell_w":  cellW,
		"cell_h":  cellH,
	})
}

func (GridTracer) Scroll(offset, visible int) {
	logging.Trace("grid.scroll", map[string]interface{}{"offset": offset, "visible": visible})
}

func (GridTracer) Pointer(x, y, index int, hit bool) {
	logging.Trace("grid.pointer", map[string]interface{}{"x": x, "y": y, "index": index, "hit": hit})
}

func (CatalogTracer) Rebuilt(scope string, items int) {
	logging.Trace("catalog.rebuilt", map[string]interface{}{"scope": scope, "items": items})
}

func (CatalogTracer) Reconciled(index int) {
	logging.Trace("catalog.reconciled", map[string]interface{}{"index": index})
}

func (ActionTracer) Commit(target string) {
	logging.Trace("action.commit", map[string]interface{}{"target": target})
}

func (ActionTracer) Dead(target string) {
	logging.Trace("action.dead", map[string]interface{}{"target": target})
}

func (ActionTracer) Cancel(reason string) {
	logging.Trace("action.cancel", map[string]interface{}{"reason": reason})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (FilterTracer) Append(query string, matches int) {
	logging.Trace("filter.append", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}
