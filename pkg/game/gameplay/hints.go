package gameplay

import (
	"strings"

	"dungeonescape/pkg/engine/input"
	"dungeonescape/pkg/game/locale"
	"dungeonescape/pkg/game/state"
)

// ShowHelp lists the commands, one entry per action followed by its other spellings
func ShowHelp(g *state.Game) {
	g.AddMessage("")
	logMessage(g, "HELP_HEADER")

	for _, action := range input.Actions() {
		logMessage(g, helpKey(action))

		if aliases := input.Synonyms(action); len(aliases) > 1 {
			logMessage(g, "HELP_ALIASES", strings.Join(aliases[1:], ", "))
		}
	}
}

func helpKey(a input.Action) string {
	return "HELP_" + strings.ToUpper(a.String())
}

// helpComplete reports whether every action has a help entry in the catalog
func helpComplete() bool {
	for _, action := range input.Actions() {
		if !locale.Has(helpKey(action)) {
			return false
		}
	}
	return true
}
