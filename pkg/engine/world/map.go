package world

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrUnknownRoom is returned when a room id does not name a room in the map
	ErrUnknownRoom = errors.New("unknown room")

	// ErrInvalidMap is returned when the room graph fails validation
	ErrInvalidMap = errors.New("invalid world map")
)

// Map is the world graph: rooms keyed by id plus the designated start and win rooms.
// The set of rooms and their exits never change after NewMap returns.
type Map struct {
	rooms map[string]*Room
	order []string
	start string
	win   string
}

// OneWayExit describes an exit whose destination has no exit leading back
type OneWayExit struct {
	From string
	Exit Exit
}

// NewMap builds and validates a map from rooms. The start and win ids must name
// rooms in the list and every exit must lead to a room in the list.
func NewMap(rooms []*Room, start, win string) (*Map, error) {
	m := &Map{
		rooms: make(map[string]*Room, len(rooms)),
		order: make([]string, 0, len(rooms)),
		start: start,
		win:   win,
	}

	for _, r := range rooms {
		if r == nil || r.ID == "" {
			return nil, fmt.Errorf("%w: room without id", ErrInvalidMap)
		}
		if _, exists := m.rooms[r.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate room %q", ErrInvalidMap, r.ID)
		}
		m.rooms[r.ID] = r
		m.order = append(m.order, r.ID)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate checks that the start and win rooms exist and that every exit
// destination names an existing room.
func (m *Map) Validate() error {
	var errs []error

	if _, ok := m.rooms[m.start]; !ok {
		errs = append(errs, fmt.Errorf("%w: start room %q does not exist", ErrInvalidMap, m.start))
	}
	if _, ok := m.rooms[m.win]; !ok {
		errs = append(errs, fmt.Errorf("%w: win room %q does not exist", ErrInvalidMap, m.win))
	}

	for _, id := range m.order {
		for _, e := range m.rooms[id].Exits {
			if _, ok := m.rooms[e.Target]; !ok {
				errs = append(errs, fmt.Errorf("%w: exit %q of room %q leads to unknown room %q",
					ErrInvalidMap, e.Direction, id, e.Target))
			}
		}
	}

	return errors.Join(errs...)
}

// GetRoom returns the room with the given id
func (m *Map) GetRoom(id string) (*Room, error) {
	r, ok := m.rooms[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoom, id)
	}
	return r, nil
}

// HasRoom returns true if id names a room in the map
func (m *Map) HasRoom(id string) bool {
	_, ok := m.rooms[id]
	return ok
}

// Start returns the id of the starting room
func (m *Map) Start() string {
	return m.start
}

// Win returns the id of the room that ends the game in victory
func (m *Map) Win() string {
	return m.win
}

// Rooms returns the rooms in declaration order
func (m *Map) Rooms() []*Room {
	out := make([]*Room, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.rooms[id])
	}
	return out
}

// Len returns the number of rooms
func (m *Map) Len() int {
	return len(m.order)
}

// Reachable returns the ids of all rooms reachable from the given room by
// following exits, including the room itself.
func (m *Map) Reachable(from string) mapset.Set[string] {
	visited := mapset.New[string]()
	queue := []string{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		room, ok := m.rooms[current]
		if !ok || visited.Has(current) {
			continue
		}

		visited.Put(current)

		for _, e := range room.Exits {
			if !visited.Has(e.Target) {
				queue = append(queue, e.Target)
			}
		}
	}

	return visited
}

// CanReach returns true if room to is reachable from room from
func (m *Map) CanReach(from, to string) bool {
	reachable := m.Reachable(from)
	return reachable.Has(to)
}

// OneWayExits lists exits whose destination has no exit back to the source room.
// Exits into the win room are never reported: the game ends there.
func (m *Map) OneWayExits() []OneWayExit {
	var out []OneWayExit
	for _, id := range m.order {
		for _, e := range m.rooms[id].Exits {
			target, ok := m.rooms[e.Target]
			if !ok || e.Target == m.win {
				continue
			}
			if !leadsBack(target, id, e.Direction) {
				out = append(out, OneWayExit{From: id, Exit: e})
			}
		}
	}
	return out
}

// leadsBack returns true if r has an exit back to id. For cardinal
// directions the way back must be the opposite direction.
func leadsBack(r *Room, id, dir string) bool {
	if back, ok := Opposite(dir); ok {
		target, found := r.Exit(back)
		return found && target == id
	}
	for _, e := range r.Exits {
		if e.Target == id {
			return true
		}
	}
	return false
}
