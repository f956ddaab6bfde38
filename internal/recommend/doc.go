// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

// Package recommend turns the click log into a ranked list of catalog items.
//
// # Algorithm Selection
//
// The engine picks one of two algorithms per request:
//
//   - Cold start (empty click log): Popularity ranks every item by
//     click_count descending.
//   - Otherwise: CategoryAffinity finds the most clicked category and
//     recommends unclicked items from it first, then backfills with
//     unclicked items from every other category.
//
// # Ordering Rules
//
// All orderings are stable sorts over catalog order, so equal click counts
// keep the order in which items were seeded. The top category is the one
// with the most click records; among equally clicked categories the one
// whose first click came earliest wins. Items that appear in the click log
// are never recommended again while the log is non-empty.
//
// Click records carry the category the item had when it was clicked, and
// the tally uses that copy rather than the live catalog.
//
// # Thread Safety
//
// Engine holds no mutable state of its own. Each Recommend call runs the
// chosen algorithm inside store.View and therefore sees a consistent
// prefix of the click history.
package recommend
