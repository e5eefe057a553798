package gameplay

import (
	"strings"

	"dungeonescape/pkg/game/events"
	"dungeonescape/pkg/game/locale"
	"dungeonescape/pkg/game/state"
)

// Move tries to leave the current room through the exit named direction.
// Returns true if the player moved.
func Move(g *state.Game, direction string) bool {
	if direction == "" {
		logMessage(g, "GO_WHERE")
		return false
	}

	room := g.CurrentRoom()
	target, ok := room.Exit(direction)
	if !ok {
		exits := locale.Get("NONE")
		if room.HasExits() {
			exits = strings.Join(room.ExitNames(), ", ")
		}
		logMessage(g, "MOVE_BLOCKED", direction, exits)
		return false
	}

	logMessage(g, "MOVE_OK", direction)
	g.Player.MoveTo(target)
	g.Moves++

	return true
}

// ApplyEvent reports a random event and applies its health change.
// Returns the change actually applied after clamping.
func ApplyEvent(g *state.Game, ev events.Event) int {
	g.AddMessage("")
	logMessage(g, "EVENT_BANNER", locale.Get(ev.MessageKey))
	return g.Player.ApplyHealthDelta(ev.Delta)
}
