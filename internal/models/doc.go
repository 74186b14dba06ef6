// Package models defines the data records shared by the Soundfolio client, its catalog client, and the development catalog.
//
// The package contains three state records, each owned by exactly one holder:
//
//  1. [SongDraft] : In-progress form state for a song that has not been submitted
//  2. [QueryState] : Current artist/mood filters and [SortOrder]
//  3. [Collection] : The last successfully fetched sequence of [SongRecord]
//
// [SongPayload] is the wire form of a submitted draft. Drafts become payloads only through [SongDraft.Payload],
// which applies the rating check and the moods split, so a partial draft is never sent.
package models
