// Package catalog holds the domain logic for HyteServe catalog collections:
// the item schema, freshness evaluation, search/tag filtering, pagination,
// slug derivation, and download-link rewriting.
//
// # Overview
//
// A catalog is an ordered JSON array of items (mods, maps, blog posts, wiki
// articles). This package operates on in-memory collections only; fetching
// lives in the source package and presentation in the ui package. Everything
// here is pure: no goroutines, no I/O, no shared state.
//
// # Identity
//
// Item identity within a collection is positional. Filtering therefore comes
// in two flavors: Filter.Apply, which returns the matching items, and
// Filter.ApplyIndexes, which returns their indexes into the unfiltered
// collection so callers can get back to the original record. A filtered view
// is always a subsequence of the full collection, in the same relative
// order, and is always a fresh slice.
//
// # Freshness
//
// The "NEW" flag is relative, not absolute: NewestDate finds the single most
// recent parseable date in a collection, and IsNew flags exactly the items
// whose date equals it. If every item shares one date, all are new; if no
// item carries a date, none are. The baseline is recomputed on every source
// load.
//
// # Pagination
//
// Pages are 1-indexed and fixed-size. PageCount is ceil(n/size) with zero
// pages for an empty collection; Page clamps to the collection bounds and
// returns an empty slice for out-of-range pages.
//
// # Slugs
//
// Slugify lowercases, collapses runs of non-alphanumerics to single hyphens,
// and trims the ends: "My Cool Mod!" becomes "my-cool-mod". PermalinkSlug
// prefers an item's explicit slug field over its title. ResolveSlug walks a
// collection recomputing slugs the same way and returns the first match,
// which is how a shared detail link is turned back into an item.
//
// # Download links
//
// DirectDownloadURL special-cases Google Drive share links, extracting the
// file identifier from either the path or the query form and rewriting to
// the uc?export=download endpoint. All other URLs pass through untouched.
package catalog
