package services

import (
	"context"

	"github.com/desertthunder/soundfolio/internal/models"
)

// Catalog is the remote song collection, treated as a black box.
type Catalog interface {
	// ListSongs returns the full collection matching the query, in server order.
	ListSongs(ctx context.Context, q models.QueryState) (models.Collection, error)

	// CreateSong stores a new song built from a submitted draft.
	CreateSong(ctx context.Context, payload models.SongPayload) error
}

var _ Catalog = (*CatalogService)(nil)
