package ui

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/soundfolio/internal/models"
	"github.com/desertthunder/soundfolio/internal/shared"
	"github.com/desertthunder/soundfolio/internal/tasks"
	tu "github.com/desertthunder/soundfolio/internal/testing"
)

func newTestModel(t *testing.T, catalog *tu.MockCatalog, opts Options) (*Model, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := shared.NewLogger(&buf)
	opts.Logger = logger
	return NewModel(context.Background(), tasks.NewSynchronizer(catalog, logger), opts), &buf
}

// run executes cmd and every command produced while handling its messages.
func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()

	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatal("commands did not settle")
		}

		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}

		switch msg := c().(type) {
		case nil, tea.QuitMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			_, next := m.Update(msg)
			queue = append(queue, next)
		}
	}
}

func press(t *testing.T, m *Model, keys ...tea.KeyMsg) {
	t.Helper()
	for _, k := range keys {
		_, cmd := m.Update(k)
		run(t, m, cmd)
	}
}

func typeText(t *testing.T, m *Model, s string) {
	t.Helper()
	for _, r := range s {
		press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func focusOn(t *testing.T, m *Model, f Focus) {
	t.Helper()
	for m.focus != f {
		press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
)

func TestModel_Init(t *testing.T) {
	t.Run("Fetches Once With Default Query", func(t *testing.T) {
		catalog := &tu.MockCatalog{Songs: models.Collection{{ID: "1", Title: "A", Artist: "X", Rating: 4}}}
		m, _ := newTestModel(t, catalog, Options{})

		run(t, m, m.Init())

		queries := catalog.Queries()
		if len(queries) != 1 || queries[0] != (models.QueryState{}) {
			t.Errorf("expected one fetch with the default query, got %+v", queries)
		}
		if len(m.Songs()) != 1 {
			t.Errorf("expected 1 song, got %d", len(m.Songs()))
		}
	})
}

func TestModel_Filters(t *testing.T) {
	t.Run("Typing In Filters Never Fetches", func(t *testing.T) {
		catalog := &tu.MockCatalog{}
		m, _ := newTestModel(t, catalog, Options{})

		focusOn(t, m, FocusArtistFilter)
		typeText(t, m, "Nina")
		focusOn(t, m, FocusMoodFilter)
		typeText(t, m, "jazz")

		if n := len(catalog.Queries()); n != 0 {
			t.Errorf("expected zero fetches, got %d", n)
		}
		want := models.QueryState{Artist: "Nina", Mood: "jazz"}
		if m.Query() != want {
			t.Errorf("expected query %+v, got %+v", want, m.Query())
		}
	})

	t.Run("Search Fetches Once With Current Filters", func(t *testing.T) {
		catalog := &tu.MockCatalog{}
		m, _ := newTestModel(t, catalog, Options{})

		focusOn(t, m, FocusMoodFilter)
		typeText(t, m, "jazz")
		focusOn(t, m, FocusSearch)
		press(t, m, keyEnter)

		queries := catalog.Queries()
		if len(queries) != 1 {
			t.Fatalf("expected one fetch, got %d", len(queries))
		}

		params := queries[0].Params()
		if params.Get("mood") != "jazz" || params.Has("artist") || params.Has("sort") {
			t.Errorf("unexpected params: %v", params.Encode())
		}
	})
}

func TestModel_Sort(t *testing.T) {
	t.Run("None To Top Fetches Once", func(t *testing.T) {
		catalog := &tu.MockCatalog{}
		m, _ := newTestModel(t, catalog, Options{})

		focusOn(t, m, FocusSort)
		press(t, m, keyLeft)

		queries := catalog.Queries()
		if len(queries) != 1 {
			t.Fatalf("expected one fetch, got %d", len(queries))
		}
		if got := queries[0].Params().Get("sort"); got != "top" {
			t.Errorf("expected sort=top, got %q", got)
		}
	})

	t.Run("Each Change Fetches", func(t *testing.T) {
		catalog := &tu.MockCatalog{}
		m, _ := newTestModel(t, catalog, Options{})

		focusOn(t, m, FocusSort)
		press(t, m, keyRight, keyRight, keyRight)

		if n := len(catalog.Queries()); n != 3 {
			t.Errorf("expected 3 fetches, got %d", n)
		}
		if m.Query().Sort != models.SortNone {
			t.Errorf("expected sort to wrap to none, got %q", m.Query().Sort)
		}
	})
}

func TestModel_View(t *testing.T) {
	t.Run("Renders Fetched Songs", func(t *testing.T) {
		catalog := &tu.MockCatalog{Songs: models.Collection{
			{ID: "1", Title: "A", Artist: "X", Rating: 4, Moods: []string{"calm"}, Review: ""},
		}}
		m, _ := newTestModel(t, catalog, Options{})

		focusOn(t, m, FocusSort)
		press(t, m, keyRight)

		queries := catalog.Queries()
		if len(queries) != 1 || queries[0].Sort != models.SortNewest {
			t.Fatalf("expected one newest fetch, got %+v", queries)
		}

		view := m.View()
		for _, want := range []string{"A by X", "4 / 5", "calm"} {
			if !strings.Contains(view, want) {
				t.Errorf("expected view to contain %q", want)
			}
		}
	})

	t.Run("Failed Fetch Is Logged Not Rendered", func(t *testing.T) {
		catalog := &tu.MockCatalog{Songs: models.Collection{{ID: "1", Title: "A", Artist: "X", Rating: 4}}}
		m, logs := newTestModel(t, catalog, Options{})
		run(t, m, m.Init())
		before := m.Songs()

		catalog.ListErr = fmt.Errorf("%w: connection refused", shared.ErrNetworkFailure)
		focusOn(t, m, FocusSearch)
		press(t, m, keyEnter)

		if !reflect.DeepEqual(m.Songs(), before) {
			t.Errorf("expected collection unchanged, got %+v", m.Songs())
		}
		if !strings.Contains(logs.String(), "connection refused") {
			t.Errorf("expected failure in log, got %q", logs.String())
		}
		if strings.Contains(m.View(), "connection refused") {
			t.Error("expected failure to be absent from the view")
		}
	})
}

func TestModel_Form(t *testing.T) {
	fill := func(t *testing.T, m *Model) {
		t.Helper()
		typeText(t, m, "A")
		press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		typeText(t, m, "X")
		press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyBackspace})
		typeText(t, m, "4")
		focusOn(t, m, FocusMoods)
		typeText(t, m, "happy, Energetic ,chill")
	}

	t.Run("Typing Updates One Field At A Time", func(t *testing.T) {
		m, _ := newTestModel(t, &tu.MockCatalog{}, Options{})
		fill(t, m)

		want := models.SongDraft{Title: "A", Artist: "X", Rating: 4, Moods: "happy, Energetic ,chill"}
		if m.Draft() != want {
			t.Errorf("expected draft %+v, got %+v", want, m.Draft())
		}
	})

	t.Run("Non Numeric Rating Is Not Sent", func(t *testing.T) {
		catalog := &tu.MockCatalog{}
		m, logs := newTestModel(t, catalog, Options{})
		typeText(t, m, "A")
		press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		typeText(t, m, "X")
		press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyBackspace})
		typeText(t, m, "five")

		if m.Draft().Rating != models.DefaultRating {
			t.Errorf("expected rating %v, got %v", models.DefaultRating, m.Draft().Rating)
		}

		press(t, m, keyEnter)

		if n := len(catalog.Payloads()); n != 0 {
			t.Errorf("expected no create while the rating field shows %q, got %d", m.inputs[FocusRating].Value(), n)
		}
		if !strings.Contains(logs.String(), "not adding song") {
			t.Errorf("expected rejected submit in log, got %q", logs.String())
		}

		press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace},
			tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
		typeText(t, m, "5")
		press(t, m, keyEnter)

		payloads := catalog.Payloads()
		if len(payloads) != 1 || payloads[0].Rating != 5 {
			t.Errorf("expected one create with rating 5, got %+v", payloads)
		}
	})

	t.Run("Successful Add Resets Form And Refetches", func(t *testing.T) {
		catalog := &tu.MockCatalog{Songs: models.Collection{{ID: "1", Title: "A", Artist: "X", Rating: 4}}}
		m, _ := newTestModel(t, catalog, Options{})
		fill(t, m)

		focusOn(t, m, FocusAdd)
		press(t, m, keyEnter)

		payloads := catalog.Payloads()
		if len(payloads) != 1 {
			t.Fatalf("expected one create, got %d", len(payloads))
		}
		if !reflect.DeepEqual(payloads[0].Moods, []string{"happy", "Energetic", "chill"}) {
			t.Errorf("unexpected moods: %q", payloads[0].Moods)
		}
		if m.Draft() != models.DefaultDraft() {
			t.Errorf("expected default draft, got %+v", m.Draft())
		}
		if v := m.inputs[FocusTitle].Value(); v != "" {
			t.Errorf("expected title input cleared, got %q", v)
		}
		if v := m.inputs[FocusRating].Value(); v != "3" {
			t.Errorf("expected rating input reset to 3, got %q", v)
		}
		if len(catalog.Queries()) != 1 || len(m.Songs()) != 1 {
			t.Errorf("expected one refetch applied, got %d queries and %d songs", len(catalog.Queries()), len(m.Songs()))
		}
	})

	t.Run("Failed Add Keeps Draft", func(t *testing.T) {
		catalog := &tu.MockCatalog{CreateErr: fmt.Errorf("%w: status 500", shared.ErrServerFailure)}
		m, logs := newTestModel(t, catalog, Options{})
		fill(t, m)
		before := m.Draft()

		press(t, m, keyEnter)

		if m.Draft() != before {
			t.Errorf("expected draft kept, got %+v", m.Draft())
		}
		if len(catalog.Queries()) != 0 {
			t.Error("expected no refetch after a failed create")
		}
		if !strings.Contains(logs.String(), "error adding song") {
			t.Errorf("expected failure in log, got %q", logs.String())
		}
	})
}

func TestModel_StaleResponses(t *testing.T) {
	older := models.Collection{{ID: "1", Title: "Old"}}
	newer := models.Collection{{ID: "2", Title: "New"}}

	t.Run("Later Arrival Wins By Default", func(t *testing.T) {
		m, _ := newTestModel(t, &tu.MockCatalog{}, Options{})

		m.Update(songsFetchedMsg(0, newer, nil))
		m.Update(songsFetchedMsg(0, older, nil))

		if !reflect.DeepEqual(m.Songs(), older) {
			t.Errorf("expected the last arrival to be displayed, got %+v", m.Songs())
		}
	})

	t.Run("Guard Discards Older Responses", func(t *testing.T) {
		m, _ := newTestModel(t, &tu.MockCatalog{}, Options{DiscardStale: true})

		first, second := m.nextSeq(), m.nextSeq()
		m.Update(songsFetchedMsg(second, newer, nil))
		m.Update(songsFetchedMsg(first, older, nil))

		if !reflect.DeepEqual(m.Songs(), newer) {
			t.Errorf("expected the newer response to stay, got %+v", m.Songs())
		}
	})

	t.Run("Failed Response Does Not Advance Guard", func(t *testing.T) {
		m, _ := newTestModel(t, &tu.MockCatalog{}, Options{DiscardStale: true})

		first, second := m.nextSeq(), m.nextSeq()
		m.Update(songsFetchedMsg(second, nil, shared.ErrNetworkFailure))
		m.Update(songsFetchedMsg(first, older, nil))

		if !reflect.DeepEqual(m.Songs(), older) {
			t.Errorf("expected the successful response to apply, got %+v", m.Songs())
		}
	})
}

func TestSongItem(t *testing.T) {
	item := songItem{song: models.SongRecord{Title: "A", Artist: "X", Rating: 3.5, Moods: []string{"calm", "late"}, Review: "great"}}

	if item.Title() != "A by X" {
		t.Errorf("unexpected title %q", item.Title())
	}
	if want := "⭐ 3.5 / 5 • Moods: calm, late • great"; item.Description() != want {
		t.Errorf("expected %q, got %q", want, item.Description())
	}

	bare := songItem{song: models.SongRecord{Title: "B", Artist: "Y", Rating: 5}}
	if bare.Description() != "⭐ 5 / 5" {
		t.Errorf("unexpected description %q", bare.Description())
	}
}
