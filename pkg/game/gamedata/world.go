package gamedata

import (
	"fmt"

	"dungeonescape/pkg/engine/world"
)

// WorldFile is the name of the embedded reference world
const WorldFile = "world.json"

// ExitDef is one exit of a room definition
type ExitDef struct {
	Direction string `json:"direction" validate:"required"`
	To        string `json:"to" validate:"required"`
}

// RoomDef defines a room loaded from JSON.
type RoomDef struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Exits       []ExitDef `json:"exits" validate:"dive"`
	Items       []string  `json:"items" validate:"dive,required"`
}

// WorldDef represents the structure of world.json.
type WorldDef struct {
	Start string    `json:"start" validate:"required"`
	Win   string    `json:"win" validate:"required"`
	Rooms []RoomDef `json:"rooms" validate:"required,min=1,dive"`
}

// Build turns the definition into a fresh world map. Each call returns
// independent rooms, so item pickups in one game never leak into another.
func (d WorldDef) Build() (*world.Map, error) {
	rooms := make([]*world.Room, 0, len(d.Rooms))
	for _, rd := range d.Rooms {
		r := world.NewRoom(rd.ID, rd.Name, rd.Description)
		for _, e := range rd.Exits {
			r.AddExit(e.Direction, e.To)
		}
		for _, item := range rd.Items {
			r.AddItem(item)
		}
		rooms = append(rooms, r)
	}

	m, err := world.NewMap(rooms, d.Start, d.Win)
	if err != nil {
		return nil, err
	}

	if !m.CanReach(m.Start(), m.Win()) {
		return nil, fmt.Errorf("%w: win room %q is not reachable from %q", world.ErrInvalidMap, m.Win(), m.Start())
	}

	return m, nil
}

// LoadWorldDef loads the embedded reference world definition.
func LoadWorldDef() (WorldDef, error) {
	return Load[WorldDef](WorldFile)
}

// LoadWorld loads and builds the embedded reference world.
func LoadWorld() (*world.Map, error) {
	def, err := LoadWorldDef()
	if err != nil {
		return nil, err
	}
	return def.Build()
}
