package grid

// Scope selects which targets populate the catalog.
type Scope int

const (
	// ScopeSessions enumerates every live session as a selectable target.
	ScopeSessions Scope = iota
	// ScopeWindows enumerates the windows of a single anchor session.
	ScopeWindows
)

// SessionTarget is the window-index sentinel marking an item that refers to
// a whole session rather than one of its windows.
const SessionTarget = -1

// Item is an immutable reference to a selectable target: a session name plus
// an optional window index. Items carry identifying keys only; liveness is
// re-checked against the registry at render and commit time.
type Item struct {
	Session string
	Window  int
}

// IsSession reports whether the item refers to a session-level target.
func (it Item) IsSession() bool {
	return it.Window == SessionTarget
}

// TargetInfo describes one live session as seen by the registry.
type TargetInfo struct {
	ID   string
	Name string
}

// ChildInfo describes one window of a session as seen by the registry.
type ChildInfo struct {
	Index int
	Name  string
}

// Registry is the read-only view of the tmux server a catalog is built from.
// Implementations must return snapshot data; the grid core never holds live
// references across calls.
type Registry interface {
	LiveTargets() []TargetInfo
	Children(targetID string) []ChildInfo
}

// Catalog is an ordered snapshot of selectable items. It is rebuilt wholesale
// on every refresh and never mutated in place.
type Catalog struct {
	items []Item
}

// Refresh snapshots the registry into a new catalog. In ScopeWindows mode the
// anchor names the session whose windows are enumerated; a missing anchor or
// an empty registry yields an empty catalog, never an error.
func Refresh(reg Registry, scope Scope, anchor string) Catalog {
	if reg == nil {
		return Catalog{}
	}
	if scope == ScopeWindows {
		return refreshWindows(reg, anchor)
	}
	return refreshSessions(reg)
}

func refreshSessions(reg Registry) Catalog {
	targets := reg.LiveTargets()
	if len(targets) == 0 {
		return Catalog{}
	}
	seen := make(map[string]struct{}, len(targets))
	items := make([]Item, 0, len(targets))
	for _, t := range targets {
		if t.ID == "" {
			continue
		}
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		items = append(items, Item{Session: t.ID, Window: SessionTarget})
	}
	return Catalog{items: items}
}

func refreshWindows(reg Registry, anchor string) Catalog {
	if anchor == "" {
		return Catalog{}
	}
	found := false
	for _, t := range reg.LiveTargets() {
		if t.ID == anchor {
			found = true
			break
		}
	}
	if !found {
		return Catalog{}
	}
	children := reg.Children(anchor)
	if len(children) == 0 {
		return Catalog{}
	}
	seen := make(map[int]struct{}, len(children))
	items := make([]Item, 0, len(children))
	for _, c := range children {
		if _, ok := seen[c.Index]; ok {
			continue
		}
		seen[c.Index] = struct{}{}
		items = append(items, Item{Session: anchor, Window: c.Index})
	}
	return Catalog{items: items}
}

// Len returns the number of items in the catalog.
func (c Catalog) Len() int {
	return len(c.items)
}

// At returns the item at flat index i.
func (c Catalog) At(i int) (Item, bool) {
	if i < 0 || i >= len(c.items) {
		return Item{}, false
	}
	return c.items[i], true
}

// Items returns a copy of the ordered item sequence.
func (c Catalog) Items() []Item {
	dup := make([]Item, len(c.items))
	copy(dup, c.items)
	return dup
}

// catalogOf builds a catalog directly from items; used by filtering and tests.
func catalogOf(items []Item) Catalog {
	return Catalog{items: items}
}
