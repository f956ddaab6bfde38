// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

/*
Package services provides suture.Service wrappers for Searchrec components
whose lifecycle does not already match suture's Serve(ctx) error.

HTTPServerService turns *http.Server's blocking ListenAndServe into a
context-aware Serve: cancellation triggers Shutdown with a bounded drain
timeout, and http.ErrServerClosed is treated as a clean stop.

The event consumer (events.Consumer) implements suture.Service itself and
is added to the tree without a wrapper.
*/
package services
