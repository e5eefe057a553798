package state

import "dungeonescape/pkg/engine/world"

// MaxHealth is the starting health and the ceiling health can never exceed
const MaxHealth = 100

// Player is the single adventurer of a game
type Player struct {
	CurrentRoom string
	Inventory   world.ItemList
	Health      int
}

// NewPlayer creates a player standing in startRoom at full health
func NewPlayer(startRoom string) *Player {
	return &Player{
		CurrentRoom: startRoom,
		Inventory:   world.NewItemList(),
		Health:      MaxHealth,
	}
}

// MoveTo puts the player in roomID. The caller validates the move.
func (p *Player) MoveTo(roomID string) {
	p.CurrentRoom = roomID
}

// AddItem appends an item to the inventory
func (p *Player) AddItem(name string) {
	p.Inventory.Add(name)
}

// RemoveItem removes one instance of name from the inventory.
// Returns false if the player was not carrying it.
func (p *Player) RemoveItem(name string) bool {
	return p.Inventory.Remove(name)
}

// HasItem checks if the player is carrying name
func (p *Player) HasItem(name string) bool {
	return p.Inventory.Contains(name)
}

// ApplyHealthDelta adds delta to health and clamps the result to [0, MaxHealth].
// Returns the change that was actually applied.
func (p *Player) ApplyHealthDelta(delta int) int {
	before := p.Health
	p.Health = clamp(p.Health+delta, 0, MaxHealth)
	return p.Health - before
}

// IsDead returns true once health has reached zero
func (p *Player) IsDead() bool {
	return p.Health <= 0
}

// HasWon returns true if the player stands in the win room
func (p *Player) HasWon(winRoomID string) bool {
	return p.CurrentRoom == winRoomID
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
