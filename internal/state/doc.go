// Package state provides thread-safe snapshot storage shared between the UI
// and the background loaders.
//
// # Overview
//
// The Store is the single owner of loaded data: the current source's full
// collection (with its freshness baseline), the cross-catalog rollups, and
// the social panel. Writers replace whole sections atomically; the UI reads
// immutable snapshots at its own cadence. This is the explicit state object
// that replaces the original site's ambient globals.
//
// # Snapshot Semantics
//
// Snapshot() returns a defensive copy: the item slice, keyword slice, count
// map, and social slice are cloned, and the error is wrapped into a fresh
// value. Callers can hold or mutate a snapshot freely without racing later
// updates.
//
// # Update Semantics
//
// SetCatalog with a nil error replaces the collection, recomputes the
// freshness baseline, clears the error, and resets the failure counter.
// SetCatalog with a non-nil error records the error and bumps the failure
// counter but leaves the previous collection untouched; from the user's
// perspective a failed load is a no-op beyond the header's error note.
//
// SetAggregate and SetSocial replace only their sections; the auxiliary
// feeds update independently of the primary catalog.
//
// # Concurrency
//
// All methods are safe for concurrent use. The UI's event loop, the
// fsnotify watcher, and the aux refresher goroutine all write through the
// same mutex. Whichever catalog write lands last wins; rapid source
// switches are not sequenced (a documented gap inherited from the original).
package state
