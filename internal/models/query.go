package models

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/desertthunder/soundfolio/internal/shared"
)

// SortOrder is the server-side ordering requested for the collection.
type SortOrder string

const (
	SortNone   SortOrder = ""
	SortNewest SortOrder = "newest"
	SortTop    SortOrder = "top"
)

// SortOrders lists every order in selector order.
var SortOrders = []SortOrder{SortNone, SortNewest, SortTop}

// ParseSortOrder accepts "", "none", "newest" or "top" (case-insensitive).
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "newest":
		return SortNewest, nil
	case "top":
		return SortTop, nil
	default:
		return SortNone, fmt.Errorf("%w: %q", shared.ErrInvalidSort, s)
	}
}

// Label is the selector text for the order.
func (s SortOrder) Label() string {
	switch s {
	case SortNewest:
		return "Newest"
	case SortTop:
		return "Top Rated"
	default:
		return "None"
	}
}

// Next returns the order after s in [SortOrders], wrapping around. A negative step moves backwards.
func (s SortOrder) Next(step int) SortOrder {
	idx := 0
	for i, o := range SortOrders {
		if o == s {
			idx = i
			break
		}
	}
	n := len(SortOrders)
	return SortOrders[((idx+step)%n+n)%n]
}

// QueryField names one field of a [QueryState].
type QueryField int

const (
	QueryArtist QueryField = iota
	QueryMood
	QuerySort
)

func (f QueryField) String() string {
	switch f {
	case QueryArtist:
		return "artist"
	case QueryMood:
		return "mood"
	case QuerySort:
		return "sort"
	default:
		return ""
	}
}

// QueryState is the filter and sort selection that drives the next fetch.
type QueryState struct {
	Artist string
	Mood   string
	Sort   SortOrder
}

// Params builds the outgoing query parameters.
//
// Empty filters and [SortNone] are omitted entirely rather than sent as empty strings.
func (q QueryState) Params() url.Values {
	params := url.Values{}
	if q.Artist != "" {
		params.Set("artist", q.Artist)
	}
	if q.Mood != "" {
		params.Set("mood", q.Mood)
	}
	if q.Sort != SortNone {
		params.Set("sort", string(q.Sort))
	}
	return params
}
