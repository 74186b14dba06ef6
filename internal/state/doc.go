// Package state holds the two user-editable state records of the catalog view.
//
//   - [Form] owns the [models.SongDraft]. It has no network effect.
//   - [Query] owns the [models.QueryState] and reports which changes need a fetch.
//
// # Refetch policy
//
// [RefetchOn] is the dependency list of query fields whose change triggers an immediate fetch.
// It names only [models.QuerySort]: typing into the artist or mood filter never fetches on its own,
// so a request is not fired per keystroke. Filter changes reach the server through an explicit Search.
package state
