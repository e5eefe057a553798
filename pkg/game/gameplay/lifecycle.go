package gameplay

import (
	"fmt"
	"log/slog"

	"dungeonescape/pkg/game/gamedata"
	"dungeonescape/pkg/game/state"
)

// BuildGame creates a new game on a fresh copy of the reference world
func BuildGame() (*state.Game, error) {
	m, err := gamedata.LoadWorld()
	if err != nil {
		return nil, fmt.Errorf("failed to load world: %w", err)
	}

	// One-way passages are allowed, but usually a data mistake
	for _, ow := range m.OneWayExits() {
		slog.Warn("Exit has no way back",
			"room", ow.From,
			"direction", ow.Exit.Direction,
			"target", ow.Exit.Target)
	}

	if !helpComplete() {
		slog.Warn("Message catalog is missing help entries")
	}

	g := state.NewGame(m)
	slog.Debug("Game built", "rooms", m.Len(), "start", m.Start(), "win", m.Win())

	return g, nil
}
