package models

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/desertthunder/soundfolio/internal/shared"
)

func TestSongID(t *testing.T) {
	tc := []struct {
		name    string
		input   string
		want    SongID
		wantErr bool
	}{
		{name: "number", input: `1`, want: "1"},
		{name: "string", input: `"a1b2"`, want: "a1b2"},
		{name: "null", input: `null`, want: ""},
		{name: "object", input: `{}`, wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			var id SongID
			err := json.Unmarshal([]byte(tt.input), &id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && id != tt.want {
				t.Errorf("Unmarshal() = %q, want %q", id, tt.want)
			}
		})
	}
}

func TestSongRecord(t *testing.T) {
	body := `[{"id":1,"title":"A","artist":"X","rating":4,"moods":["calm"],"review":""}]`

	var got Collection
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("failed to decode collection: %v", err)
	}

	want := Collection{{ID: "1", Title: "A", Artist: "X", Rating: 4, Moods: []string{"calm"}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decoded collection = %+v, want %+v", got, want)
	}
}

func TestSongDraft(t *testing.T) {
	t.Run("DefaultDraft", func(t *testing.T) {
		want := SongDraft{Title: "", Artist: "", Rating: 3, Review: "", Moods: ""}
		if got := DefaultDraft(); got != want {
			t.Errorf("DefaultDraft() = %+v, want %+v", got, want)
		}
	})

	t.Run("With Leaves Receiver Untouched", func(t *testing.T) {
		base := DefaultDraft()
		next := base.WithTitle("Song").WithMoods("calm")

		if base != DefaultDraft() {
			t.Errorf("expected receiver unchanged, got %+v", base)
		}
		if next.Title != "Song" || next.Moods != "calm" || next.Rating != 3 {
			t.Errorf("unexpected draft %+v", next)
		}
	})

	t.Run("Payload Splits Moods", func(t *testing.T) {
		draft := DefaultDraft().
			WithTitle("Song").
			WithArtist("Band").
			WithRating(4.5).
			WithReview("great").
			WithMoods("happy, Energetic ,chill")

		payload, err := draft.Payload()
		if err != nil {
			t.Fatalf("Payload() error = %v", err)
		}

		want := SongPayload{
			Title:  "Song",
			Artist: "Band",
			Rating: 4.5,
			Review: "great",
			Moods:  []string{"happy", "Energetic", "chill"},
		}
		if !reflect.DeepEqual(payload, want) {
			t.Errorf("Payload() = %+v, want %+v", payload, want)
		}
	})

	t.Run("Payload Encodes Empty Moods As Array", func(t *testing.T) {
		payload, err := DefaultDraft().Payload()
		if err != nil {
			t.Fatalf("Payload() error = %v", err)
		}

		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		want := `{"title":"","artist":"","rating":3,"review":"","moods":[]}`
		if string(data) != want {
			t.Errorf("encoded payload = %s, want %s", data, want)
		}
	})

	t.Run("Payload Rejects Invalid Ratings", func(t *testing.T) {
		for _, r := range []float64{math.NaN(), math.Inf(1), 0, 0.5, 5.5, 3.3} {
			_, err := DefaultDraft().WithRating(r).Payload()
			if !errors.Is(err, shared.ErrInvalidRating) {
				t.Errorf("rating %v: expected ErrInvalidRating, got %v", r, err)
			}
		}
	})
}

func TestSplitMoods(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "trims and preserves order and case", input: "happy, Energetic ,chill", want: []string{"happy", "Energetic", "chill"}},
		{name: "empty input yields empty list", input: "", want: []string{}},
		{name: "whitespace only", input: "  ", want: []string{}},
		{name: "drops empty pieces", input: "a,, b ,", want: []string{"a", "b"}},
		{name: "single mood", input: "calm", want: []string{"calm"}},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitMoods(tt.input)
			if got == nil {
				t.Fatal("SplitMoods() returned nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitMoods(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestQueryState(t *testing.T) {
	t.Run("Params Omits Empty Filters", func(t *testing.T) {
		params := QueryState{Artist: "", Mood: "jazz"}.Params()

		if got := params.Get("mood"); got != "jazz" {
			t.Errorf("expected mood=jazz, got %q", got)
		}
		if params.Has("artist") {
			t.Error("expected no artist key")
		}
		if params.Has("sort") {
			t.Error("expected no sort key for SortNone")
		}
	})

	t.Run("Params Includes All Set Fields", func(t *testing.T) {
		params := QueryState{Artist: "X", Mood: "calm", Sort: SortTop}.Params()
		if got := params.Encode(); got != "artist=X&mood=calm&sort=top" {
			t.Errorf("Encode() = %s", got)
		}
	})

	t.Run("Params Empty State", func(t *testing.T) {
		if got := (QueryState{}).Params(); len(got) != 0 {
			t.Errorf("expected no params, got %v", got)
		}
	})
}

func TestSortOrder(t *testing.T) {
	t.Run("ParseSortOrder", func(t *testing.T) {
		tc := []struct {
			input   string
			want    SortOrder
			wantErr bool
		}{
			{input: "", want: SortNone},
			{input: "none", want: SortNone},
			{input: "Newest", want: SortNewest},
			{input: "top", want: SortTop},
			{input: "oldest", wantErr: true},
		}

		for _, tt := range tc {
			got, err := ParseSortOrder(tt.input)
			if tt.wantErr {
				if !errors.Is(err, shared.ErrInvalidSort) {
					t.Errorf("ParseSortOrder(%q) expected ErrInvalidSort, got %v", tt.input, err)
				}
				continue
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseSortOrder(%q) = %q, %v, want %q", tt.input, got, err, tt.want)
			}
		}
	})

	t.Run("Next Wraps Both Ways", func(t *testing.T) {
		if got := SortNone.Next(1); got != SortNewest {
			t.Errorf("SortNone.Next(1) = %q", got)
		}
		if got := SortTop.Next(1); got != SortNone {
			t.Errorf("SortTop.Next(1) = %q", got)
		}
		if got := SortNone.Next(-1); got != SortTop {
			t.Errorf("SortNone.Next(-1) = %q", got)
		}
	})

	t.Run("Label", func(t *testing.T) {
		if SortTop.Label() != "Top Rated" || SortNone.Label() != "None" {
			t.Errorf("unexpected labels %q %q", SortTop.Label(), SortNone.Label())
		}
	})
}
