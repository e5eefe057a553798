// Package events rolls the random hazards and rewards that may follow a move.
package events

import (
	"math/rand"
	"time"
)

// Chance is the probability that a move triggers an event
const Chance = 0.3

// Category groups events by flavour
type Category string

const (
	CategoryMonster  Category = "monster"
	CategoryTrap     Category = "trap"
	CategoryTreasure Category = "treasure"
	CategoryPotion   Category = "potion"
	CategoryNothing  Category = "nothing"
)

// Event is one entry of the event table. MessageKey is a message catalog key.
type Event struct {
	Category   Category
	MessageKey string
	Delta      int
}

// Source is the randomness an event generator draws from.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// DefaultTable returns the six fixed events, all equally likely
func DefaultTable() []Event {
	return []Event{
		{CategoryMonster, "EVENT_SPIDER", -15},
		{CategoryMonster, "EVENT_GOBLIN", -20},
		{CategoryTrap, "EVENT_DART_TRAP", -10},
		{CategoryTreasure, "EVENT_GOLD", 10},
		{CategoryPotion, "EVENT_VIAL", 15},
		{CategoryNothing, "EVENT_RUMBLE", 0},
	}
}

// Generator decides whether an event happens and which one
type Generator struct {
	rng    Source
	chance float64
	table  []Event
}

// NewGenerator creates a generator over the default table
func NewGenerator(rng Source) *Generator {
	return &Generator{
		rng:    rng,
		chance: Chance,
		table:  DefaultTable(),
	}
}

// NewSeededGenerator creates a generator backed by math/rand.
// A seed of 0 means a time-based seed.
func NewSeededGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

// Table returns a copy of the generator's events
func (g *Generator) Table() []Event {
	out := make([]Event, len(g.table))
	copy(out, g.table)
	return out
}

// Roll draws once to decide whether an event fires and, if it does, picks
// one uniformly from the table. A draw above the chance threshold means no event.
func (g *Generator) Roll() (Event, bool) {
	if len(g.table) == 0 {
		return Event{}, false
	}

	if g.rng.Float64() > g.chance {
		return Event{}, false
	}

	return g.table[g.rng.Intn(len(g.table))], true
}
