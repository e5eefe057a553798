package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTwoRoomMap builds hall <-> cellar with a key in the cellar
func makeTwoRoomMap(t *testing.T) *Map {
	t.Helper()
	hall := NewRoom("hall", "Hall", "An empty hall.")
	hall.AddExit(South, "cellar")
	cellar := NewRoom("cellar", "Cellar", "Damp and cold.")
	cellar.AddExit(North, "hall")
	cellar.AddItem("key")

	m, err := NewMap([]*Room{hall, cellar}, "hall", "cellar")
	require.NoError(t, err)
	return m
}

func TestNewMap_Valid(t *testing.T) {
	m := makeTwoRoomMap(t)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, "hall", m.Start())
	assert.Equal(t, "cellar", m.Win())

	rooms := m.Rooms()
	require.Len(t, rooms, 2)
	assert.Equal(t, "hall", rooms[0].ID)
	assert.Equal(t, "cellar", rooms[1].ID)
}

func TestNewMap_DanglingExit(t *testing.T) {
	hall := NewRoom("hall", "Hall", "")
	hall.AddExit(North, "nowhere")

	_, err := NewMap([]*Room{hall}, "hall", "hall")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMap))
	assert.Contains(t, err.Error(), "nowhere")
}

func TestNewMap_MissingStartAndWin(t *testing.T) {
	hall := NewRoom("hall", "Hall", "")

	_, err := NewMap([]*Room{hall}, "lobby", "roof")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lobby")
	assert.Contains(t, err.Error(), "roof")
}

func TestNewMap_DuplicateRoom(t *testing.T) {
	_, err := NewMap([]*Room{NewRoom("a", "A", ""), NewRoom("a", "A again", "")}, "a", "a")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMap)
}

func TestNewMap_RoomWithoutID(t *testing.T) {
	_, err := NewMap([]*Room{NewRoom("", "Nameless", "")}, "", "")
	assert.ErrorIs(t, err, ErrInvalidMap)
}

func TestGetRoom(t *testing.T) {
	m := makeTwoRoomMap(t)

	r, err := m.GetRoom("cellar")
	require.NoError(t, err)
	assert.Equal(t, "Cellar", r.Name)

	_, err = m.GetRoom("attic")
	assert.ErrorIs(t, err, ErrUnknownRoom)
	assert.False(t, m.HasRoom("attic"))
	assert.True(t, m.HasRoom("hall"))
}

func TestReachable(t *testing.T) {
	a := NewRoom("a", "A", "")
	b := NewRoom("b", "B", "")
	c := NewRoom("c", "C", "")
	island := NewRoom("island", "Island", "")
	a.AddExit(East, "b")
	b.AddExit("down", "c") // one-way, non-cardinal
	c.AddExit(North, "a")

	m, err := NewMap([]*Room{a, b, c, island}, "a", "c")
	require.NoError(t, err)

	reachable := m.Reachable("a")
	assert.Equal(t, 3, reachable.Size())
	assert.True(t, reachable.Has("c"))
	assert.False(t, reachable.Has("island"))

	assert.True(t, m.CanReach("a", "c"))
	assert.False(t, m.CanReach("island", "a"))
	assert.True(t, m.CanReach("island", "island"))
}

func TestOneWayExits(t *testing.T) {
	a := NewRoom("a", "A", "")
	b := NewRoom("b", "B", "")
	out := NewRoom("out", "Out", "")
	a.AddExit(North, "b")
	b.AddExit(East, "a") // leads back, but not through the opposite direction
	b.AddExit(North, "out")

	m, err := NewMap([]*Room{a, b, out}, "a", "out")
	require.NoError(t, err)

	oneWay := m.OneWayExits()
	require.Len(t, oneWay, 2)
	assert.Equal(t, "a", oneWay[0].From)
	assert.Equal(t, North, oneWay[0].Exit.Direction)
	assert.Equal(t, "b", oneWay[1].From)
	assert.Equal(t, East, oneWay[1].Exit.Direction)

	sym := makeTwoRoomMap(t)
	assert.Empty(t, sym.OneWayExits())
}

// The win room ends the game, so the way into it never needs a way back
func TestOneWayExitsIgnoresWinRoom(t *testing.T) {
	hall := NewRoom("hall", "Hall", "")
	gate := NewRoom("gate", "Gate", "")
	hall.AddExit(North, "gate")

	m, err := NewMap([]*Room{hall, gate}, "hall", "gate")
	require.NoError(t, err)
	assert.Empty(t, m.OneWayExits())

	// a dead end that is not the win room is still reported
	pit := NewRoom("pit", "Pit", "")
	hall.AddExit(West, "pit")
	m, err = NewMap([]*Room{hall, gate, pit}, "hall", "gate")
	require.NoError(t, err)
	oneWay := m.OneWayExits()
	require.Len(t, oneWay, 1)
	assert.Equal(t, "pit", oneWay[0].Exit.Target)
}

func TestRoomExits(t *testing.T) {
	r := NewRoom("r", "R", "")
	assert.False(t, r.HasExits())

	r.AddExit(North, "x")
	r.AddExit(East, "y")
	r.AddExit(North, "z") // replaces, keeps position

	assert.Equal(t, []string{North, East}, r.ExitNames())

	target, ok := r.Exit(North)
	assert.True(t, ok)
	assert.Equal(t, "z", target)

	_, ok = r.Exit(West)
	assert.False(t, ok)
}

func TestItemList(t *testing.T) {
	l := NewItemList("torch", "map", "torch")

	assert.Equal(t, 3, l.Len())
	assert.True(t, l.Contains("map"))
	assert.Equal(t, 0, l.Index("torch"))

	assert.True(t, l.Remove("torch"))
	assert.Equal(t, []string{"map", "torch"}, l.Names())
	assert.False(t, l.Remove("sword"))

	l.Add("sword")
	assert.Equal(t, "map, torch, sword", l.Join(", "))
}

func TestOpposite(t *testing.T) {
	tests := []struct {
		dir  string
		want string
		ok   bool
	}{
		{North, South, true},
		{South, North, true},
		{East, West, true},
		{West, East, true},
		{"up", "", false},
	}

	for _, tt := range tests {
		got, ok := Opposite(tt.dir)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Opposite(%q) = (%q, %v), want (%q, %v)", tt.dir, got, ok, tt.want, tt.ok)
		}
	}
}
