package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/soundfolio/internal/models"
	"github.com/desertthunder/soundfolio/internal/tasks"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgSongsFetched MsgKind = iota
	MsgSongSubmitted
)

// songsFetched is the payload of [MsgSongsFetched]. seq is zero unless stale responses are discarded.
type songsFetched struct {
	seq   uint64
	songs models.Collection
	err   error
}

// songSubmitted is the payload of [MsgSongSubmitted].
type songSubmitted struct {
	seq    uint64
	result tasks.SubmitResult
	err    error
}

// songsFetchedMsg is the constructor for [MsgSongsFetched]
func songsFetchedMsg(seq uint64, songs models.Collection, err error) Msg {
	return Msg{kind: MsgSongsFetched, data: songsFetched{seq: seq, songs: songs, err: err}}
}

// songSubmittedMsg is the constructor for [MsgSongSubmitted]
func songSubmittedMsg(seq uint64, result tasks.SubmitResult, err error) Msg {
	return Msg{kind: MsgSongSubmitted, data: songSubmitted{seq: seq, result: result, err: err}}
}
