// Package renderer builds the text of the game's screens and defines the
// interface rendering backends implement. Lines built here may contain markup
// (ROOM{..}, ITEM{..}, ACTION{..}, GT{..}) that backends expand and style.
package renderer

import (
	"fmt"
	"strings"

	"dungeonescape/pkg/game/locale"
	"dungeonescape/pkg/game/state"
)

// LowHealth is the threshold at or below which health is shown as critical
const LowHealth = 30

// RoomLines returns the lines describing the player's current room
func RoomLines(g *state.Game) []string {
	room := g.CurrentRoom()

	lines := []string{
		"",
		locale.Get("IN_ROOM", room.Name),
		room.Description,
		"",
	}

	if room.HasExits() {
		lines = append(lines, locale.Get("EXITS", strings.Join(room.ExitNames(), ", ")))
	} else {
		lines = append(lines, locale.Get("NO_EXITS"))
	}

	items := locale.Get("NONE")
	if room.Items.Len() > 0 {
		items = ItemJoin(room.Items.Names())
	}
	lines = append(lines, locale.Get("ITEMS_HERE", items))

	return lines
}

// StatusLine returns the health and inventory line
func StatusLine(g *state.Game) string {
	inv := locale.Get("EMPTY")
	if g.Player.Inventory.Len() > 0 {
		inv = ItemJoin(g.Player.Inventory.Names())
	}
	return locale.Get("STATUS", g.Player.Health, inv)
}

// ItemJoin joins item names with commas, marking each as an item
func ItemJoin(names []string) string {
	marked := make([]string, len(names))
	for i, n := range names {
		marked[i] = fmt.Sprintf("ITEM{%s}", n)
	}
	return strings.Join(marked, ", ")
}

// IntroLines returns the opening lines shown under the title banner
func IntroLines() []string {
	return []string{
		"",
		locale.Get("INTRO_WAKE"),
		locale.Get("INTRO_GOAL"),
		locale.Get("INTRO_HELP"),
		"",
	}
}
