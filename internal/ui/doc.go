// Package ui contains the Bubble Tea program that powers the tmux grid
// switcher. The Model type focuses on message orchestration, while dedicated
// helpers own navigation, rendering, previews, and backend sync.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so every
//     tea.Msg is handled by a focused function (key presses by navigation,
//     mouse events by pointer mapping, backend events by catalog rebuilds).
//   - The cursor, scroll offset, and layout arithmetic live in internal/grid;
//     the model feeds them geometry and item counts and never duplicates the
//     clamping rules.
//
// State ownership:
//   - Session and window stores are provided by internal/state and kept in
//     sync by the dispatcher, so catalog rebuilds always see current tmux
//     data. The catalog itself is an immutable snapshot; after every rebuild
//     the navigator is reconciled against the new item count.
//   - Pane captures are cached per target in previewData and refreshed on a
//     timer that is re-armed only after the previous refresh has finished,
//     so a slow tmux server can never stack capture commands.
//
// Backend interactions:
//   - A backend.Watcher streams tmux snapshots; Update waits for those events
//     and hands them to applyBackendEvent, which updates the stores, rebuilds
//     the catalog, and reconciles the cursor.
//   - Committing a selection resolves the item against the stores first; a
//     target that vanished since the last rebuild turns the commit into a
//     no-op instead of an error from tmux.
package ui
