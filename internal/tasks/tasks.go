package tasks

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/soundfolio/internal/models"
	"github.com/desertthunder/soundfolio/internal/services"
	"github.com/desertthunder/soundfolio/internal/shared"
)

// SubmitResult is the state handed back by [Synchronizer.Submit].
type SubmitResult struct {
	Draft      models.SongDraft  // Draft to hold after the call
	Collection models.Collection // Collection to display after the call
	Created    bool              // The create call succeeded
	Synced     bool              // The follow-up fetch succeeded and Collection is fresh
}

// CollectionSyncer defines the remote operations of the catalog view.
type CollectionSyncer interface {
	// Sync fetches the collection for q. On failure it returns current unchanged.
	Sync(ctx context.Context, q models.QueryState, current models.Collection) (models.Collection, error)

	// Submit creates a song from draft and refreshes the collection under q.
	Submit(ctx context.Context, draft models.SongDraft, q models.QueryState, current models.Collection) (SubmitResult, error)
}

// Synchronizer implements [CollectionSyncer].
//
// It reads and returns state explicitly and holds none of its own. Failures are reported to the logger
// and returned; they are never retried.
type Synchronizer struct {
	catalog services.Catalog
	logger  *log.Logger
}

var _ CollectionSyncer = (*Synchronizer)(nil)

// NewSynchronizer creates a new Synchronizer. A nil logger writes to stderr.
func NewSynchronizer(catalog services.Catalog, logger *log.Logger) *Synchronizer {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Synchronizer{
		catalog: catalog,
		logger:  shared.WithLogger(logger, "component", "sync"),
	}
}

// Sync fetches the collection for q and returns it as the new displayed collection.
//
// The response order is kept as-is. On failure current is returned untouched.
func (s *Synchronizer) Sync(ctx context.Context, q models.QueryState, current models.Collection) (models.Collection, error) {
	s.logger.Debug("fetching songs", "query", q.Params().Encode())

	songs, err := s.catalog.ListSongs(ctx, q)
	if err != nil {
		s.logger.Error("error fetching songs", "query", q.Params().Encode(), "error", err)
		return current, err
	}

	s.logger.Debug("fetched songs", "count", len(songs))
	return songs, nil
}

// Submit sends draft as a new song, then refreshes the collection under q so the new song appears under the active filters.
//
// On a failed create the draft and collection come back unchanged. After a successful create the draft is reset
// even when the follow-up fetch fails; that fetch error is returned with Created set.
func (s *Synchronizer) Submit(ctx context.Context, draft models.SongDraft, q models.QueryState, current models.Collection) (SubmitResult, error) {
	result := SubmitResult{Draft: draft, Collection: current}

	payload, err := draft.Payload()
	if err != nil {
		s.logger.Error("error adding song", "title", draft.Title, "error", err)
		return result, err
	}

	if err := s.catalog.CreateSong(ctx, payload); err != nil {
		s.logger.Error("error adding song", "title", draft.Title, "error", err)
		return result, err
	}

	s.logger.Info("song added", "title", payload.Title, "artist", payload.Artist)
	result.Created = true
	result.Draft = models.DefaultDraft()

	songs, err := s.Sync(ctx, q, current)
	if err != nil {
		return result, err
	}

	result.Collection = songs
	result.Synced = true
	return result, nil
}
