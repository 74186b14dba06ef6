package state

import (
	"fmt"
	"slices"

	"github.com/desertthunder/soundfolio/internal/models"
	"github.com/desertthunder/soundfolio/internal/shared"
)

// RefetchOn lists the query fields whose change triggers an immediate fetch.
var RefetchOn = []models.QueryField{models.QuerySort}

// Triggers reports whether a change to field requires a fetch under [RefetchOn].
func Triggers(field models.QueryField) bool {
	return slices.Contains(RefetchOn, field)
}

// Query holds the current [models.QueryState].
type Query struct {
	current models.QueryState
}

// NewQuery returns a Query with no filters and [models.SortNone].
func NewQuery() *Query {
	return &Query{}
}

// State returns the current query state.
func (q *Query) State() models.QueryState {
	return q.current
}

// Set updates one field and reports whether the caller must fetch now.
//
// Only an actual change to a field listed in [RefetchOn] asks for a fetch.
func (q *Query) Set(field models.QueryField, value string) (bool, error) {
	next := q.current
	switch field {
	case models.QueryArtist:
		next.Artist = value
	case models.QueryMood:
		next.Mood = value
	case models.QuerySort:
		order, err := models.ParseSortOrder(value)
		if err != nil {
			return false, err
		}
		next.Sort = order
	default:
		return false, fmt.Errorf("%w: unknown query field %d", shared.ErrInvalidInput, field)
	}

	changed := next != q.current
	q.current = next
	return changed && Triggers(field), nil
}
