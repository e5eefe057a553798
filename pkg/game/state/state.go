// Package state holds the mutable state of one game: the world map, the player,
// the pending message log and how the session ended.
package state

import (
	"dungeonescape/pkg/engine/world"
)

// Outcome is how a game session ended
type Outcome int

const (
	OutcomeNone Outcome = iota // Still playing
	OutcomeWin
	OutcomeLose
	OutcomeQuit
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "playing"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Game represents the state of one game of Dungeon Escape
type Game struct {
	World  *world.Map
	Player *Player

	// Messages produced since the renderer last drained them
	Messages []string

	Running bool
	Outcome Outcome

	Turns int
	Moves int
}

// NewGame creates a new game on m with the player in the start room
func NewGame(m *world.Map) *Game {
	return &Game{
		World:    m,
		Player:   NewPlayer(m.Start()),
		Messages: make([]string, 0),
		Running:  true,
		Outcome:  OutcomeNone,
	}
}

// CurrentRoom returns the room the player is standing in
func (g *Game) CurrentRoom() *world.Room {
	room, err := g.World.GetRoom(g.Player.CurrentRoom)
	if err != nil {
		// Moves are validated against existing exits, so this means a broken map
		panic(err)
	}
	return room
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)
}

// DrainMessages returns the pending messages and clears the log
func (g *Game) DrainMessages() []string {
	msgs := g.Messages
	g.Messages = make([]string, 0)
	return msgs
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Quit stops the session; the loop ends at the top of its next iteration
func (g *Game) Quit() {
	g.Running = false
}

// CheckTerminal evaluates the win and lose conditions, recording the outcome.
// Winning is checked first, so reaching the exit counts even on the turn health runs out.
func (g *Game) CheckTerminal() Outcome {
	switch {
	case !g.Running:
		g.Outcome = OutcomeQuit
	case g.Player.HasWon(g.World.Win()):
		g.Outcome = OutcomeWin
	case g.Player.IsDead():
		g.Outcome = OutcomeLose
	}
	return g.Outcome
}
