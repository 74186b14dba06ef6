package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/soundfolio/internal/formatter"
	"github.com/desertthunder/soundfolio/internal/models"
	"github.com/desertthunder/soundfolio/internal/shared"
	"github.com/desertthunder/soundfolio/internal/state"
	"github.com/desertthunder/soundfolio/internal/tasks"
)

// Focus identifies the control that receives key input.
type Focus int

const (
	FocusTitle Focus = iota
	FocusArtist
	FocusRating
	FocusReview
	FocusMoods
	FocusAdd
	FocusArtistFilter
	FocusMoodFilter
	FocusSort
	FocusSearch
	FocusSongs
	focusCount
)

var draftFields = map[Focus]models.DraftField{
	FocusTitle:  models.DraftTitle,
	FocusArtist: models.DraftArtist,
	FocusRating: models.DraftRating,
	FocusReview: models.DraftReview,
	FocusMoods:  models.DraftMoods,
}

var queryFields = map[Focus]models.QueryField{
	FocusArtistFilter: models.QueryArtist,
	FocusMoodFilter:   models.QueryMood,
}

const (
	defaultWidth      = 80
	defaultListHeight = 14
	inputWidth        = 48
)

// Options configures a [Model].
type Options struct {
	DiscardStale bool        // Drop responses older than the newest applied one
	Logger       *log.Logger // Observability sink; nil writes to stderr
}

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	sync   tasks.CollectionSyncer
	logger *log.Logger
	guard  *tasks.SequenceGuard

	form  *state.Form
	query *state.Query
	songs models.Collection

	focus    Focus
	inputs   map[Focus]textinput.Model
	review   textarea.Model
	songList list.Model

	width  int
	height int
	help   help.Model
	keys   keyMap
}

// songItem wraps [models.SongRecord] to implement [list.Item].
type songItem struct {
	song models.SongRecord
}

var _ list.Item = songItem{}

func (i songItem) FilterValue() string { return i.song.Title }
func (i songItem) Title() string       { return formatter.SongHeading(i.song) }
func (i songItem) Description() string {
	desc := "⭐ " + formatter.RatingLabel(i.song.Rating)
	if len(i.song.Moods) > 0 {
		desc = fmt.Sprintf("%s • Moods: %s", desc, formatter.MoodsLabel(i.song.Moods))
	}
	if i.song.Review != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.song.Review)
	}
	return desc
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, sync tasks.CollectionSyncer, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	m := &Model{
		ctx:    ctx,
		sync:   sync,
		logger: shared.WithLogger(logger, "component", "ui"),
		form:   state.NewForm(),
		query:  state.NewQuery(),
		inputs: map[Focus]textinput.Model{
			FocusTitle:        newInput("Song title"),
			FocusArtist:       newInput("Artist"),
			FocusRating:       newInput("1-5"),
			FocusMoods:        newInput("happy, chill"),
			FocusArtistFilter: newInput("Filter by artist"),
			FocusMoodFilter:   newInput("Filter by mood"),
		},
		review: newReview(),
		width:  defaultWidth,
		help:   help.New(),
		keys:   newKeyMap(),
	}
	if opts.DiscardStale {
		m.guard = tasks.NewSequenceGuard()
	}

	m.songList = list.New(nil, list.NewDefaultDelegate(), defaultWidth, defaultListHeight)
	m.songList.Title = "My Music"
	m.songList.SetShowHelp(false)
	m.songList.SetFilteringEnabled(false)
	m.songList.SetStatusBarItemName("song", "songs")
	m.songList.DisableQuitKeybindings()

	m.resetInputs()
	m.setFocus(FocusTitle)
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.Width = inputWidth
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func newReview() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "What stood out?"
	ta.ShowLineNumbers = false
	ta.SetWidth(inputWidth)
	ta.SetHeight(3)
	ta.Cursor.SetMode(cursor.CursorStatic)
	return ta
}

// Init performs the initial fetch with the default query.
func (m *Model) Init() tea.Cmd {
	return m.fetch()
}

// Draft returns the form's current draft.
func (m *Model) Draft() models.SongDraft { return m.form.Draft() }

// Query returns the current filter and sort selection.
func (m *Model) Query() models.QueryState { return m.query.State() }

// Songs returns the displayed collection.
func (m *Model) Songs() models.Collection { return m.songs }

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.songList.SetSize(msg.Width-4, max(msg.Height/2, 6))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case Msg:
		return m.handleMsg(msg)
	}

	return m.updateFocused(msg)
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.next):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.prev):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.submit):
		return m, m.submit()
	case key.Matches(msg, m.keys.search):
		return m, m.fetch()
	}

	switch m.focus {
	case FocusTitle, FocusArtist, FocusRating, FocusMoods, FocusAdd:
		if key.Matches(msg, m.keys.enter) {
			return m, m.submit()
		}
	case FocusArtistFilter, FocusMoodFilter, FocusSearch:
		if key.Matches(msg, m.keys.enter) {
			return m, m.fetch()
		}
	case FocusSort:
		switch {
		case key.Matches(msg, m.keys.sortNext):
			return m, m.cycleSort(1)
		case key.Matches(msg, m.keys.sortPrev):
			return m, m.cycleSort(-1)
		case key.Matches(msg, m.keys.enter):
			return m, m.fetch()
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused control and stores its value in the form or query.
func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case FocusReview:
		m.review, cmd = m.review.Update(msg)
		m.setDraftField(models.DraftReview, m.review.Value())
		return m, cmd
	case FocusSongs:
		m.songList, cmd = m.songList.Update(msg)
		return m, cmd
	}

	in, ok := m.inputs[m.focus]
	if !ok {
		return m, nil
	}

	before := in.Value()
	in, cmd = in.Update(msg)
	m.inputs[m.focus] = in
	if in.Value() == before {
		return m, cmd
	}

	if field, ok := draftFields[m.focus]; ok {
		m.setDraftField(field, in.Value())
		return m, cmd
	}

	if field, ok := queryFields[m.focus]; ok {
		return m, tea.Batch(cmd, m.setQueryField(field, in.Value()))
	}
	return m, cmd
}

func (m *Model) setDraftField(field models.DraftField, value string) {
	if err := m.form.Set(field, value); err != nil {
		m.logger.Debug("keeping previous draft value", "field", field, "input", value, "error", err)
	}
}

// setQueryField stores a query value and returns a fetch when the change requires one.
func (m *Model) setQueryField(field models.QueryField, value string) tea.Cmd {
	refetch, err := m.query.Set(field, value)
	if err != nil {
		m.logger.Error("invalid query value", "field", field, "value", value, "error", err)
		return nil
	}
	if refetch {
		return m.fetch()
	}
	return nil
}

func (m *Model) cycleSort(step int) tea.Cmd {
	next := m.query.State().Sort.Next(step)
	return m.setQueryField(models.QuerySort, string(next))
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgSongsFetched:
		data := msg.data.(songsFetched)
		if data.err != nil {
			return m, nil
		}
		return m, m.apply(data.seq, data.songs)

	case MsgSongSubmitted:
		data := msg.data.(songSubmitted)
		if data.result.Created {
			m.form.Reset()
			m.resetInputs()
		}
		if data.result.Synced {
			return m, m.apply(data.seq, data.result.Collection)
		}
	}
	return m, nil
}

// apply replaces the displayed collection wholesale.
func (m *Model) apply(seq uint64, songs models.Collection) tea.Cmd {
	if m.guard != nil && !m.guard.Accept(seq) {
		m.logger.Debug("discarding stale songs", "seq", seq)
		return nil
	}

	m.songs = songs
	items := make([]list.Item, len(songs))
	for i, song := range songs {
		items[i] = songItem{song: song}
	}
	return m.songList.SetItems(items)
}

func (m *Model) nextSeq() uint64 {
	if m.guard == nil {
		return 0
	}
	return m.guard.Next()
}

func (m *Model) fetch() tea.Cmd {
	seq := m.nextSeq()
	q := m.query.State()
	current := m.songs
	ctx, sync := m.ctx, m.sync

	return func() tea.Msg {
		songs, err := sync.Sync(ctx, q, current)
		return songsFetchedMsg(seq, songs, err)
	}
}

func (m *Model) submit() tea.Cmd {
	if _, err := m.form.Payload(); err != nil {
		m.logger.Warn("not adding song", "rating", m.inputs[FocusRating].Value(), "error", err)
		return nil
	}

	seq := m.nextSeq()
	draft := m.form.Draft()
	q := m.query.State()
	current := m.songs
	ctx, sync := m.ctx, m.sync

	return func() tea.Msg {
		result, err := sync.Submit(ctx, draft, q, current)
		return songSubmittedMsg(seq, result, err)
	}
}

// resetInputs writes the form's draft back into the form controls.
func (m *Model) resetInputs() {
	draft := m.form.Draft()
	values := map[Focus]string{
		FocusTitle:  draft.Title,
		FocusArtist: draft.Artist,
		FocusRating: strconv.FormatFloat(draft.Rating, 'f', -1, 64),
		FocusMoods:  draft.Moods,
	}
	for f, v := range values {
		in := m.inputs[f]
		in.SetValue(v)
		m.inputs[f] = in
	}
	m.review.SetValue(draft.Review)
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	for k, in := range m.inputs {
		in.Blur()
		m.inputs[k] = in
	}
	m.review.Blur()
	m.focus = f

	switch {
	case f == FocusReview:
		return m.review.Focus()
	default:
		if in, ok := m.inputs[f]; ok {
			cmd := in.Focus()
			m.inputs[f] = in
			return cmd
		}
	}
	return nil
}

// View renders the form, the browse controls and the collection. Failures are never rendered.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Soundfolio"))
	b.WriteString("\n")

	b.WriteString(styles.section.Render("Add a song"))
	b.WriteString("\n")
	b.WriteString(m.renderInput("Title", FocusTitle))
	b.WriteString(m.renderInput("Artist", FocusArtist))
	b.WriteString(m.renderInput("Rating", FocusRating))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderLabel("Review", FocusReview), m.review.View()))
	b.WriteString("\n")
	b.WriteString(m.renderInput("Moods", FocusMoods))
	b.WriteString(m.renderButton("Add Song", FocusAdd))
	b.WriteString("\n\n")

	b.WriteString(styles.section.Render("Browse"))
	b.WriteString("\n")
	b.WriteString(m.renderInput("Artist", FocusArtistFilter))
	b.WriteString(m.renderInput("Mood", FocusMoodFilter))
	b.WriteString(m.renderSort())
	b.WriteString(m.renderButton("Search", FocusSearch))
	b.WriteString("\n\n")

	b.WriteString(m.songList.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))

	return b.String()
}

func (m *Model) renderLabel(label string, f Focus) string {
	if m.focus == f {
		return styles.focused.Render(label)
	}
	return styles.label.Render(label)
}

func (m *Model) renderInput(label string, f Focus) string {
	in := m.inputs[f]
	return fmt.Sprintf("%s %s\n", m.renderLabel(label, f), in.View())
}

func (m *Model) renderButton(label string, f Focus) string {
	if m.focus == f {
		return styles.active.Render(label)
	}
	return styles.button.Render(label)
}

func (m *Model) renderSort() string {
	order := m.query.State().Sort
	value := order.Label()
	if m.focus == FocusSort {
		value = fmt.Sprintf("‹ %s ›", value)
	}
	return fmt.Sprintf("%s %s\n", m.renderLabel("Sort", FocusSort), value)
}
