package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/desertthunder/soundfolio/internal/shared"
)

const (
	DefaultRating = 3.0
	MinRating     = 1.0
	MaxRating     = 5.0
	RatingStep    = 0.5
)

// DraftField names one field of a [SongDraft].
type DraftField int

const (
	DraftTitle DraftField = iota
	DraftArtist
	DraftRating
	DraftReview
	DraftMoods
)

func (f DraftField) String() string {
	switch f {
	case DraftTitle:
		return "title"
	case DraftArtist:
		return "artist"
	case DraftRating:
		return "rating"
	case DraftReview:
		return "review"
	case DraftMoods:
		return "moods"
	default:
		return ""
	}
}

// SongDraft is the unsaved song entry. Moods stay a comma-separated string until submission.
//
// Every With* method returns a new complete draft; the receiver is never modified.
type SongDraft struct {
	Title  string
	Artist string
	Rating float64
	Review string
	Moods  string
}

// DefaultDraft returns the empty draft shown after startup and after a successful submission.
func DefaultDraft() SongDraft {
	return SongDraft{Rating: DefaultRating}
}

func (d SongDraft) WithTitle(title string) SongDraft {
	d.Title = title
	return d
}

func (d SongDraft) WithArtist(artist string) SongDraft {
	d.Artist = artist
	return d
}

func (d SongDraft) WithRating(rating float64) SongDraft {
	d.Rating = rating
	return d
}

func (d SongDraft) WithReview(review string) SongDraft {
	d.Review = review
	return d
}

func (d SongDraft) WithMoods(moods string) SongDraft {
	d.Moods = moods
	return d
}

// Payload transforms the draft into the create-call body.
//
// The rating must be finite, within [MinRating, MaxRating], and a multiple of [RatingStep].
func (d SongDraft) Payload() (SongPayload, error) {
	if !ValidRating(d.Rating) {
		return SongPayload{}, fmt.Errorf("%w: %v is not between %v and %v in steps of %v",
			shared.ErrInvalidRating, d.Rating, MinRating, MaxRating, RatingStep)
	}

	return SongPayload{
		Title:  d.Title,
		Artist: d.Artist,
		Rating: d.Rating,
		Review: d.Review,
		Moods:  SplitMoods(d.Moods),
	}, nil
}

// ValidRating reports whether r is a rating the form accepts.
func ValidRating(r float64) bool {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return false
	}
	if r < MinRating || r > MaxRating {
		return false
	}
	return math.Mod(r, RatingStep) == 0
}

// SplitMoods splits a comma-separated mood list, trimming each piece and dropping empty ones.
//
// Order and case are preserved. The result is never nil, so an empty input encodes as [].
func SplitMoods(s string) []string {
	moods := []string{}
	for _, piece := range strings.Split(s, ",") {
		if mood := strings.TrimSpace(piece); mood != "" {
			moods = append(moods, mood)
		}
	}
	return moods
}
