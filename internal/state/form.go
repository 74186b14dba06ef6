package state

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/desertthunder/soundfolio/internal/models"
	"github.com/desertthunder/soundfolio/internal/shared"
)

// Form holds the current [models.SongDraft].
//
// A rejected rating input is remembered until the next accepted one, so [Form.Payload] refuses to build a
// submission from a rating the user no longer sees.
type Form struct {
	draft     models.SongDraft
	ratingErr error
}

// NewForm returns a Form holding [models.DefaultDraft].
func NewForm() *Form {
	return &Form{draft: models.DefaultDraft()}
}

// Draft returns the current draft.
func (f *Form) Draft() models.SongDraft {
	return f.draft
}

// Set replaces exactly one field of the draft with the raw input for that field.
//
// Rating input must parse to a finite number; otherwise [shared.ErrInvalidRating] is returned, the draft is unchanged,
// and [Form.Payload] fails until a valid rating is set.
func (f *Form) Set(field models.DraftField, input string) error {
	switch field {
	case models.DraftTitle:
		f.draft = f.draft.WithTitle(input)
	case models.DraftArtist:
		f.draft = f.draft.WithArtist(input)
	case models.DraftReview:
		f.draft = f.draft.WithReview(input)
	case models.DraftMoods:
		f.draft = f.draft.WithMoods(input)
	case models.DraftRating:
		rating, err := ParseRating(input)
		if err != nil {
			f.ratingErr = err
			return err
		}
		f.ratingErr = nil
		f.draft = f.draft.WithRating(rating)
	default:
		return fmt.Errorf("%w: unknown draft field %d", shared.ErrInvalidInput, field)
	}
	return nil
}

// Payload applies the submit transform to the current draft without changing it.
func (f *Form) Payload() (models.SongPayload, error) {
	if f.ratingErr != nil {
		return models.SongPayload{}, f.ratingErr
	}
	return f.draft.Payload()
}

// Reset restores the default draft. Callers invoke it only after a successful create.
func (f *Form) Reset() {
	f.draft = models.DefaultDraft()
	f.ratingErr = nil
}

// ParseRating parses raw rating input into a finite number.
func ParseRating(input string) (float64, error) {
	rating, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(rating) || math.IsInf(rating, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", shared.ErrInvalidRating, input)
	}
	return rating, nil
}
