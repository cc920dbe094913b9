// Package ui provides the terminal user interface for the HyteServe browser.
//
// # Architecture Overview
//
// The UI is built on Bubble Tea's model-update-view loop. A single root Model
// holds every piece of interface state; messages carry catalog loads,
// snapshot refreshes, clipboard results, and ticks back into Update. The
// interface is read-only toward the catalogs: browsing never mutates data.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: Root model, message plumbing, snapshot handling, and Run
//   - keys.go: Keyboard dispatch for every view and the search field
//   - router.go: Card routing, history stack, and permalink restore
//   - list.go: Card list rendering (flat rows and grouped article cards)
//   - detail.go: Expanded card view with markdown body rendering
//   - header.go: Hero line, per-category counters, social panel, footer
//   - theme.go: Color themes and Lipgloss style construction
//   - activity.go: Activity log view backed by logtail
//   - share.go: Clipboard and activity log commands
//   - help.go: Help overlay
//
// # Views
//
// Three views are available:
//
//   - List: Paged cards for the active catalog, with search and tag filters.
//     Blog and wiki catalogs render as article cards grouped by section.
//   - Detail: One expanded card with its markdown body, download link or
//     category, gallery, and share permalink.
//   - Activity: The tail of the application's own activity log.
//
// # Routing and History
//
// Every browsing position is a route: a catalog name plus an optional card
// slug. Opening a card, closing it, and switching catalogs push routes onto
// a history stack; "[" and "]" walk that stack the way browser back and
// forward buttons would. A card permalink carries the slug in its
// "?card=<slug>" query; starting with -card restores that position, and "c"
// copies the permalink for the highlighted card to the clipboard.
//
// # Data Flow
//
//  1. Run() starts the Bubble Tea program with the shared state.Store
//  2. A one second tick fetches a fresh store snapshot
//  3. applySnapshot recomputes the filtered index list and tag counts
//  4. Catalog switches and reloads run as commands against source.Client
//  5. Results land back in the store, visible on the next snapshot
//
// Filtering combines the search text (title or author substring) with the
// active tag selection; any matching tag qualifies a card. Changing either
// resets pagination to the first page.
//
// # Key Bindings
//
//   - 1/2/3/4: Switch catalog (mods, maps, blog, wiki)
//   - /: Search; enter applies, esc clears
//   - t: Tag filter panel; space toggles, x clears
//   - j/k, h/l, g/G: Cursor, page, and edge navigation
//   - enter: Open card; esc walks back out
//   - [ and ]: History back and forward
//   - c: Copy share link
//   - r: Reload current catalog
//   - a: Activity log
//   - T: Cycle theme
//   - ?: Help overlay
//   - e or Ctrl+C: Exit
package ui
