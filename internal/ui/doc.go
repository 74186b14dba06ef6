// Package ui implements the interactive catalog view using bubbletea's Elm architecture.
//
// One screen holds three areas:
//  1. The add-song form (title, artist, rating, review, moods) and its Add button
//  2. The browse controls: artist and mood filters, the sort selector and the Search button
//  3. The collection, rendered as a list of song cards
//
// The (view) [Model] owns the form, the query and the displayed collection. Every keystroke updates
// exactly one of them. Network work runs as a [tea.Cmd] through the [tasks.CollectionSyncer] and comes back as a
// [Msg]; the collection is only ever replaced inside Update, and only by a successful response.
//
// Filter typing never fetches. A sort change, Search, or a successful Add does.
package ui
