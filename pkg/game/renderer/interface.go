package renderer

import (
	"dungeonescape/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleRoom
	StyleRoomText
	StyleItem
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
	StyleHealth
	StyleHealthLow
	StyleVictory
)

// Renderer defines the interface for game rendering backends.
// The game is line oriented: each call appends lines to the output.
type Renderer interface {
	// Init initializes the renderer (colors, widths, etc.)
	Init()

	// ShowIntro prints the title banner and opening lines
	ShowIntro()

	// RenderRoom prints the current room: name, description, exits and items
	RenderRoom(g *state.Game)

	// RenderStatus prints the health and inventory status line
	RenderStatus(g *state.Game)

	// Prompt prints the input prompt without a trailing newline
	Prompt()

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}

// ShowMessages displays each pending message of the game and clears the log
func ShowMessages(r Renderer, g *state.Game) {
	for _, msg := range g.DrainMessages() {
		r.ShowMessage(msg)
	}
}
