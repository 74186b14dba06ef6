package tasks

import (
	"fmt"
)

// ProgressUpdate represents a progress event during a bulk operation.
//
// Used to send real-time updates to the CLI for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	ParseRows Phase = iota
	CreateSongs
)

func (p Phase) String() string {
	switch p {
	case ParseRows:
		return "parse_rows"
	case CreateSongs:
		return "create_songs"
	default:
		return ""
	}
}

// sendProgress sends a progress update through the channel without blocking.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

func parsingRowsUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ParseRows,
		Step:    0,
		Total:   total,
		Message: fmt.Sprintf("Preparing %d songs...", total),
	}
}

func songCreatedUpdate(step, total int, res SongImportResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CreateSongs,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s - %s", step, total, res.Artist, res.Title),
	}
}

func songFailedUpdate(step, total int, res SongImportResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CreateSongs,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ line %d: %v", step, total, res.Line, res.Error),
	}
}
