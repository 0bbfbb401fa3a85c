package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/tmux-grid-switch/internal/backend"
	"github.com/atomicstack/tmux-grid-switch/internal/data/dispatcher"
	"github.com/atomicstack/tmux-grid-switch/internal/grid"
	"github.com/atomicstack/tmux-grid-switch/internal/logging/events"
	"github.com/atomicstack/tmux-grid-switch/internal/state"
	"github.com/atomicstack/tmux-grid-switch/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

const (
	headerRows = 1
	footerRows = 1
)

// Options describes user-provided switcher configuration.
type Options struct {
	SocketPath string
	Width      int
	Height     int
	Scope      string
	Anchor     string
	MinCellW   int
	MinCellH   int
	Wrap       bool
	Paging     bool
	Refresh    time.Duration
}

// Model implements the Bubble Tea model for the grid switcher.
type Model struct {
	socketPath string
	scope      grid.Scope
	anchor     string
	minCellW   int
	minCellH   int
	wrap       grid.WrapPolicy
	paging     bool
	refresh    time.Duration

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	catalog  grid.Catalog
	visible  grid.Catalog
	geometry grid.Geometry
	nav      grid.Navigator

	filterActive bool
	filterQuery  string

	previews       map[string]*previewData
	previewSeq     int
	previewPending int
	refreshArmed   bool

	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string

	sessions   state.SessionStore
	windows    state.WindowStore
	registry   *state.Registry
	dispatcher *dispatcher.Dispatcher

	keys   KeyMap
	errMsg string

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state from options and the backend watcher.
func NewModel(opts Options, watcher *backend.Watcher) *Model {
	sessions := state.NewSessionStore()
	windows := state.NewWindowStore()
	scope := grid.ScopeSessions
	if opts.Scope == "windows" {
		scope = grid.ScopeWindows
	}
	wrap := grid.WrapNone
	if opts.Wrap {
		wrap = grid.WrapLinear
	}
	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = time.Second
	}
	m := &Model{
		socketPath:   opts.SocketPath,
		scope:        scope,
		anchor:       opts.Anchor,
		minCellW:     opts.MinCellW,
		minCellH:     opts.MinCellH,
		wrap:         wrap,
		paging:       opts.Paging,
		refresh:      refresh,
		backend:      watcher,
		backendState: map[backend.Kind]error{},
		previews:     make(map[string]*previewData),
		sessions:     sessions,
		windows:      windows,
		registry:     state.NewRegistry(sessions, windows),
		dispatcher:   dispatcher.New(sessions, windows),
		keys:         NewKeyMap(opts.Paging),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	cmds = append(cmds, m.armRefresh())
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(previewLoadedMsg{}):  m.handlePreviewLoadedMsg,
		reflect.TypeOf(refreshTickMsg{}):    m.handleRefreshTickMsg,
		reflect.TypeOf(actionResultMsg{}):   m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	// A resize changes geometry only; the catalog is left alone.
	m.recomputeGeometry()
	return m.ensurePreviews()
}

func (m *Model) surfaceW() int {
	return m.width
}

func (m *Model) surfaceH() int {
	h := m.height - headerRows - footerRows
	if h < 0 {
		h = 0
	}
	return h
}

func (m *Model) visibleRows() int {
	return m.geometry.VisibleRows(m.surfaceH())
}

// rebuildCatalog snapshots the stores into a fresh catalog and repairs the
// cursor against the new item count.
func (m *Model) rebuildCatalog() {
	anchor := m.anchor
	if m.scope == grid.ScopeWindows && anchor == "" {
		anchor = m.windows.CurrentSession()
	}
	m.catalog = grid.Refresh(m.registry, m.scope, anchor)
	m.applyFilter()
	m.recomputeGeometry()
	events.Catalog.Rebuilt(scopeName(m.scope), m.visible.Len())
	events.Catalog.Reconciled(m.nav.Index(m.geometry))
}

func (m *Model) applyFilter() {
	if m.filterQuery == "" {
		m.visible = m.catalog
		return
	}
	m.visible = grid.FilterByLabel(m.catalog, m.filterQuery, m.registry.Label)
}

func (m *Model) recomputeGeometry() {
	m.geometry = grid.Compute(m.visible.Len(), m.surfaceW(), m.surfaceH(), m.minCellW, m.minCellH)
	m.nav.Reconcile(m.geometry, m.visible.Len())
	m.nav.ClampOffset(m.visibleRows())
	events.Grid.Layout(m.visible.Len(), m.geometry.Columns, m.geometry.TotalRows, m.geometry.CellW, m.geometry.CellH)
}

func (m *Model) selectedItem() (grid.Item, bool) {
	return m.visible.At(m.nav.Index(m.geometry))
}

func scopeName(s grid.Scope) string {
	if s == grid.ScopeWindows {
		return "windows"
	}
	return "sessions"
}
