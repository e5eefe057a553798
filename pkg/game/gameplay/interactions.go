package gameplay

import (
	"dungeonescape/pkg/game/items"
	"dungeonescape/pkg/game/state"
)

// Take moves an item from the current room into the inventory
func Take(g *state.Game, name string) {
	if name == "" {
		logMessage(g, "TAKE_WHAT")
		return
	}

	if !g.CurrentRoom().RemoveItem(name) {
		logMessage(g, "TAKE_MISSING", name)
		return
	}

	g.Player.AddItem(name)
	logMessage(g, "TAKE_OK", name)
}

// Use applies the effect of an inventory item
func Use(g *state.Game, effects *items.Table, name string) {
	if name == "" {
		logMessage(g, "USE_WHAT")
		return
	}

	if !g.Player.HasItem(name) {
		logMessage(g, "USE_MISSING", name)
		return
	}

	effect := effects.Lookup(name)
	if effect.Consumed() {
		g.Player.RemoveItem(name)
	}

	switch effect.Kind {
	case items.KindConsumableHeal:
		// The message names the full amount even when health is capped
		g.Player.ApplyHealthDelta(effect.Amount)
		logMessage(g, effect.MessageKey, items.DisplayName(name), effect.Amount)

	case items.KindCosmetic:
		logMessage(g, effect.MessageKey)

	case items.KindInformational:
		for _, key := range effect.LineKeys {
			logMessage(g, key)
		}

	default:
		logMessage(g, effect.MessageKey, name)
	}
}

// ShowInventory lists the carried items in the order they were picked up
func ShowInventory(g *state.Game) {
	if g.Player.Inventory.Len() == 0 {
		logMessage(g, "INVENTORY_EMPTY")
		return
	}

	logMessage(g, "INVENTORY_HEADER")
	for i, name := range g.Player.Inventory.Names() {
		logMessage(g, "INVENTORY_LINE", i+1, name)
	}
}
