// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

/*
Package search implements keyword search and hot-word ranking over the
catalog held by internal/store.

# Matching

Matcher scores an item by lower-cased substring containment over three
fields with fixed weights: title 5, content 3, category 2. Items scoring 0
are excluded. There is no tokenization, stemming or fuzzy matching.

# Ranking

Ranker scans the whole catalog for every query, sorts the matches by score
descending with a stable sort (equal scores keep catalog order) and slices
the requested 1-based page. Every accepted request appends the raw query to
the search log, including queries with no matches.

Because item text is immutable, the ranked match list of a query can be
memoized in an LRU keyed by the lower-cased query. Click counts in the
returned items are always read from the live store.

# Hot Words

HotWordAggregator counts search log keywords by exact, case-sensitive
equality. Ties are ordered by first occurrence: counts are accumulated in
first-seen order and then stable-sorted by count.
*/
package search
