// Package app provides the orchestration layer for the HyteServe browser.
//
// # Overview
//
// This package wires together configuration, preferences, the catalog
// client, shared state, and the UI to create the complete HyteServe TUI
// experience. It is the composition root where all dependencies are
// initialized and connected.
//
// # Architecture
//
// Run follows a simple initialization sequence:
//
//  1. Load configuration from ~/.config/hyteserve/config.toml
//  2. Load user preferences (theme, last browsed catalog)
//  3. Open the file-backed activity logger
//  4. Create the catalog client for the configured data root
//  5. Fetch the starting catalog so the first frame has content
//  6. Launch the auxiliary feed refresher goroutine
//  7. Start the data-directory watcher when the root is local
//  8. Run the TUI and block until the user exits or the context cancels
//
// # Background Work
//
// Two goroutines run behind the UI:
//
//   - The auxiliary refresher (auxrefresh.go) periodically recomputes the
//     keyword aggregate, per-category counters, and social panel counts.
//     The aggregate tolerates individual source failures, so a broken feed
//     degrades one section rather than the whole refresh.
//   - The watcher (watcher.go) listens for writes to the local data
//     directory and reloads the visible catalog when its backing file
//     changes. Remote roots have no watcher; the refresh key covers them.
//
// Both publish through the shared state.Store; the UI reads snapshots at
// its own cadence and never blocks on a fetch.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Malformed configuration file
//   - Catalog client initialization failure (unusable data root)
//
// Recoverable errors (logged, work continues):
//   - Initial or periodic catalog fetch failures
//   - Auxiliary feed or social count failures
//   - Watcher setup or event errors
//
// The activity logger itself degrades to a no-op when its file cannot be
// opened; logging problems never take the browser down.
//
// # Usage Example
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	opts := app.Options{
//		Source: "mods",
//		Card:   "my-cool-mod",
//	}
//	if err := app.Run(ctx, opts); err != nil {
//		log.Fatalf("hyteserve failed: %v", err)
//	}
package app
