// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"dungeonescape/pkg/engine/input"
	"dungeonescape/pkg/game/items"
	"dungeonescape/pkg/game/locale"
	"dungeonescape/pkg/game/state"
)

// ProcessCommand applies a parsed command to the game.
// Returns true when the command was a successful move, which is the only case
// that calls for a random event check.
func ProcessCommand(g *state.Game, cmd input.Command, effects *items.Table) bool {
	switch cmd.Action {
	case input.ActionNone:
		return false

	case input.ActionMove:
		return Move(g, cmd.Argument)

	case input.ActionTake:
		Take(g, cmd.Argument)

	case input.ActionUse:
		Use(g, effects, cmd.Argument)

	case input.ActionInventory:
		ShowInventory(g)

	case input.ActionLook:
		// The room is rendered at the top of every turn anyway

	case input.ActionHelp:
		ShowHelp(g)

	case input.ActionQuit:
		logMessage(g, "GOODBYE")
		g.Quit()

	default:
		logMessage(g, "UNKNOWN_COMMAND", cmd.Raw)
	}

	return false
}

// logMessage adds a catalog message to the game's message log
func logMessage(g *state.Game, key string, vars ...any) {
	g.AddMessage(locale.Get(key, vars...))
}
