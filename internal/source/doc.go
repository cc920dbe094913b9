// Package source loads HyteServe's JSON documents: the four fixed catalogs,
// the social panel feed, and the cross-catalog rollups.
//
// # Overview
//
// A data root is either a local directory or an http(s) base URL; the same
// Client serves both, so a checkout of the site's data files and the
// published site are interchangeable. Documents are plain JSON arrays
// decoded into catalog.Item (catalogs) or Link (social feed). Unknown JSON
// fields are ignored.
//
// # Sources
//
// The catalog set is fixed:
//
//   - mods -> modlist.json (item mode)
//   - maps -> maplist.json (item mode)
//   - blog -> bloglist.json (article mode, default group "Recent Updates")
//   - wiki -> wikihytale.json (article mode, default group "General")
//
// Each Source carries its hero title and rendering mode so the UI never
// switches on file names.
//
// # Error Handling
//
// A failed catalog fetch or decode is terminal for that load attempt: the
// error is returned and the caller keeps its previous state. There is no
// retry and no caching here.
//
// The auxiliary fetches are different: FetchAggregate joins all catalogs
// all-settled style, tolerating per-source failures and folding whatever
// arrived, and FetchSocialCounts degrades each social entry independently
// to a placeholder count. One failing endpoint never removes an entry or
// blocks a sibling.
//
// # Known gap
//
// Responses racing a rapid source switch are not guarded against: a stale
// catalog response can land after a newer one. This mirrors the original
// site's behavior and is intentionally left unfixed.
package source
