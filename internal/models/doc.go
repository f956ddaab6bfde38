// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

/*
Package models defines the data structures shared by Searchrec components.

Key Components:

  - Item: a catalog entry with its live click counter
  - ScoredItem: an Item annotated with its search relevance score
  - SearchPage: one page of ranked search results plus the unpaginated total
  - SearchRecord / ClickRecord: entries of the two append-only interaction logs
  - HotWord: a keyword and the number of times it was searched
  - Health / StoreStats: liveness and state summaries

JSON field names follow the public HTTP API (snake_case). Timestamps are
time.Time values and encode as RFC 3339.

Models carry no behavior beyond trivial helpers; ownership and mutation
rules live in internal/store.
*/
package models
