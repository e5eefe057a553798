// Package items maps item names to what using them does. Adding an item is a
// matter of registering an Effect; the use handler never changes.
package items

import "strings"

// Well-known items of the reference world
const (
	HealthPotion = "health_potion"
	Torch        = "torch"
	Map          = "map"
)

// HealAmount is how much health a health potion restores
const HealAmount = 30

// Kind is the category of an item's use effect
type Kind int

const (
	KindGeneric       Kind = iota // No known use
	KindConsumableHeal            // Consumed on use, restores health
	KindCosmetic                  // Not consumed, purely descriptive
	KindInformational             // Not consumed, shows fixed text
)

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindConsumableHeal:
		return "consumable_heal"
	case KindCosmetic:
		return "cosmetic"
	case KindInformational:
		return "informational"
	default:
		return "generic"
	}
}

// Effect describes what using an item does.
// MessageKey and LineKeys are message catalog keys.
type Effect struct {
	Kind       Kind
	Amount     int
	MessageKey string
	LineKeys   []string
}

// Consumed returns true if using the item removes it from the inventory
func (e Effect) Consumed() bool {
	return e.Kind == KindConsumableHeal
}

// Table looks up item effects by name
type Table struct {
	effects map[string]Effect
}

// NewTable creates an empty table; every item is generic until registered
func NewTable() *Table {
	return &Table{effects: make(map[string]Effect)}
}

// DefaultTable returns the effects of the reference world's items
func DefaultTable() *Table {
	t := NewTable()
	t.Register(HealthPotion, Effect{
		Kind:       KindConsumableHeal,
		Amount:     HealAmount,
		MessageKey: "USE_HEAL",
	})
	t.Register(Torch, Effect{
		Kind:       KindCosmetic,
		MessageKey: "USE_TORCH",
	})
	t.Register(Map, Effect{
		Kind:     KindInformational,
		LineKeys: []string{"MAP_HEADER", "MAP_ROUTE_MAIN", "MAP_ROUTE_ARMORY", "MAP_ROUTE_LIBRARY"},
	})
	return t
}

// Register sets the effect for name, replacing any previous one
func (t *Table) Register(name string, e Effect) {
	t.effects[name] = e
}

// Lookup returns the effect for name. Unregistered items get a generic effect.
func (t *Table) Lookup(name string) Effect {
	if e, ok := t.effects[name]; ok {
		return e
	}
	return Effect{Kind: KindGeneric, MessageKey: "USE_UNKNOWN"}
}

// DisplayName returns the name of an item as players read it
func DisplayName(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
