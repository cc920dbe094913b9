// Package logtail reads the tail of the HyteServe activity log for display
// in the TUI.
//
// # Overview
//
// HyteServe writes structured JSON log lines while it fetches catalogs,
// refreshes auxiliary feeds, and reacts to data-directory changes. The
// activity view shows the most recent of those lines. This package provides
// the two pieces that view needs:
//
//  1. Read: extract the last N lines from the log file
//  2. Format/FormatLines: condense JSON entries into readable text
//
// # Reading
//
// Read uses a ring buffer of size maxLines, so memory stays proportional to
// the requested window rather than the file size. The file is scanned once
// and lines come back in chronological order. A missing file returns
// nil, nil; the activity view treats that as "nothing logged yet".
//
// # Formatting
//
// The logger emits one JSON object per line with "ts", "level", "msg" and
// arbitrary extra fields. Format turns
//
//	{"level":"info","ts":1717000000.5,"msg":"catalog loaded","source":"mods","items":12}
//
// into
//
//	09:46:40 INFO catalog loaded items=12 source=mods
//
// Extra fields are sorted by key so output is stable. Lines that fail to
// parse as JSON pass through unchanged, which keeps the view usable if the
// log ever contains foreign text.
//
// # Design Rationale
//
// No streaming or file watching happens here; the activity view re-reads on
// demand. No filtering either. Pure functions, no global state.
package logtail
