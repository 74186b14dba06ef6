package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FFA500", "#626262", "#FAFAFA")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title   lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	focused lipgloss.Style
	button  lipgloss.Style
	active  lipgloss.Style
	rating  lipgloss.Style
	help    lipgloss.Style
}

// NewPalette builds the stylesheet from an accent, success, warning, muted and text color.
func NewPalette(accent, ok, warn, muted, text string) *Palette {
	return &Palette{
		title:   NewBold(accent).MarginBottom(1),
		section: NewBold(ok),
		label:   NewStyle(muted).Width(8),
		focused: NewBold(accent).Width(8),
		button:  NewStyle(muted).Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(muted)),
		active: NewBold(text).
			Background(lipgloss.Color(accent)).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(accent)),
		rating: NewStyle(warn),
		help:   NewEm(muted),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
