// Package world provides the room graph primitives: rooms, exits, item lists and
// the immutable world map built from them.
package world

// Exit is a named, one-way edge from a room to a destination room
type Exit struct {
	Direction string
	Target    string
}

// Room is a node in the world graph.
// Only Items changes after the map has been built.
type Room struct {
	ID          string
	Name        string
	Description string

	// Exits in declaration order, which is also display order
	Exits []Exit

	Items ItemList
}

// NewRoom creates a room with no exits and no items
func NewRoom(id, name, description string) *Room {
	return &Room{
		ID:          id,
		Name:        name,
		Description: description,
		Items:       NewItemList(),
	}
}

// AddExit adds an exit in the given direction, replacing any existing exit
// under the same direction.
func (r *Room) AddExit(direction, target string) {
	for i := range r.Exits {
		if r.Exits[i].Direction == direction {
			r.Exits[i].Target = target
			return
		}
	}
	r.Exits = append(r.Exits, Exit{Direction: direction, Target: target})
}

// Exit returns the destination room id for direction
func (r *Room) Exit(direction string) (string, bool) {
	for _, e := range r.Exits {
		if e.Direction == direction {
			return e.Target, true
		}
	}
	return "", false
}

// ExitNames returns the exit directions in display order
func (r *Room) ExitNames() []string {
	names := make([]string, 0, len(r.Exits))
	for _, e := range r.Exits {
		names = append(names, e.Direction)
	}
	return names
}

// HasExits returns true if the room has at least one exit
func (r *Room) HasExits() bool {
	return len(r.Exits) > 0
}

// HasItem returns true if name is lying in the room
func (r *Room) HasItem(name string) bool {
	return r.Items.Contains(name)
}

// AddItem places an item in the room
func (r *Room) AddItem(name string) {
	r.Items.Add(name)
}

// RemoveItem takes the first occurrence of name out of the room
func (r *Room) RemoveItem(name string) bool {
	return r.Items.Remove(name)
}
