// Package tasks implements the collection synchronizer of the catalog view.
//
// # Operations
//
// [CollectionSyncer] defines two operations:
//
//  1. [CollectionSyncer.Sync] : Fetch the collection for a [models.QueryState]
//     - Empty filters are omitted from the request
//     - The response replaces the displayed collection wholesale; order is the server's
//     - On failure the caller's collection is handed back untouched
//
//  2. [CollectionSyncer.Submit] : Create a song from a [models.SongDraft]
//     - Applies the submit transform (rating check, moods split)
//     - On success resets the draft and runs Sync with the current query
//     - On failure keeps the draft so no input is lost
//
// # Bulk Import
//
// [Synchronizer.BulkImport] adds many songs at once (CSV rows from the formatter package). Each row is filled into a
// fresh form so it is validated exactly like typed input, then created by a small worker pool behind a rate limiter.
// Progress is reported as [ProgressUpdate] values on an optional channel without ever blocking the workers.
//
// # Call States
//
// Each call moves Idle → Requesting → Idle with either an updated collection or a reported error.
// No loading state is exposed.
//
// # Error Reporting
//
// Every failure (network, non-2xx, malformed body) is written to the logger and returned.
// It is not turned into view state.
//
// # Overlapping Calls
//
// Calls are neither deduplicated nor cancelled. [SequenceGuard] is an opt-in guard that discards responses
// older than the newest one applied.
package tasks
