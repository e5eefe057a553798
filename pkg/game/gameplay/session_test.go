package gameplay

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"dungeonescape/pkg/game/events"
	"dungeonescape/pkg/game/renderer/tui"
	"dungeonescape/pkg/game/state"
)

const prompt = "What do you do? > "

// fixedSource always draws the same values
type fixedSource struct {
	float float64
	index int
	rolls int
}

func (s *fixedSource) Float64() float64 {
	s.rolls++
	return s.float
}

func (s *fixedSource) Intn(n int) int {
	return s.index % n
}

// quiet never lets an event fire
func quiet() *fixedSource { return &fixedSource{float: 0.99} }

// always fires the event at index on every roll
func always(index int) *fixedSource { return &fixedSource{float: 0.0, index: index} }

func newTestSession(t *testing.T, g *state.Game, script string, src events.Source, opts ...Option) (*Session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	r := tui.New(&out, true)
	r.Init()

	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	s := NewSession(g, r, strings.NewReader(script), events.NewGenerator(src), opts...)
	return s, &out
}

func TestSessionReferenceScenario(t *testing.T) {
	g := makeGame(t)
	s, out := newTestSession(t, g, "take torch\ngo north\ngo west\ntake map\nuse map\nquit\n", quiet())

	outcome := s.Run(context.Background())

	assert.Equal(t, state.OutcomeQuit, outcome)
	assert.Equal(t, "library", g.Player.CurrentRoom)
	assert.Equal(t, []string{"torch", "map"}, g.Player.Inventory.Names())
	assert.Equal(t, state.MaxHealth, g.Player.Health)
	assert.Equal(t, 6, g.Turns)
	assert.Equal(t, 2, g.Moves)

	text := out.String()
	assert.Contains(t, text, "DUNGEON ESCAPE")
	assert.Contains(t, text, "You are in the Entrance Hall.")
	assert.Contains(t, text, "You picked up the torch.")
	assert.Contains(t, text, "Health: 100 | Inventory: torch\n")
	assert.Contains(t, text, "You are in the Dark Corridor.")
	assert.Contains(t, text, "You are in the Ancient Library.")
	assert.Contains(t, text, "Items here: map, health_potion\n")
	assert.Contains(t, text, "Health: 100 | Inventory: torch, map\n")
	assert.Contains(t, text, "  Entrance -> Corridor -> Treasure Room -> Exit\n")
	assert.True(t, strings.HasSuffix(text, "Thanks for playing! Goodbye.\n"))
}

// After the first move the event may change health by any table delta
func TestSessionScenarioWithEvents(t *testing.T) {
	want := []int{85, 80, 90, 100, 100, 100}

	for i, health := range want {
		g := makeGame(t)
		s, _ := newTestSession(t, g, "take torch\ngo north\nquit\n", always(i))
		s.Run(context.Background())

		assert.Equal(t, "corridor", g.Player.CurrentRoom)
		assert.Equal(t, health, g.Player.Health, "event %d", i)
	}
}

func TestSessionFailedMoveNeverRollsEvent(t *testing.T) {
	g := makeGame(t)
	src := always(0)
	s, out := newTestSession(t, g, "go west\ngo up\nwalk south\nq\n", src)

	s.Run(context.Background())

	assert.Equal(t, 0, src.rolls)
	assert.Equal(t, "entrance", g.Player.CurrentRoom)
	assert.Equal(t, state.MaxHealth, g.Player.Health)
	assert.NotContains(t, out.String(), "spider")
	assert.Contains(t, out.String(), "You can't go west. Available exits: north, east")
}

func TestSessionEventMessageFollowsMove(t *testing.T) {
	g := makeGame(t)
	s, out := newTestSession(t, g, "go north\nquit\n", always(0))

	s.Run(context.Background())

	assert.Contains(t, out.String(), "You head north...\n\n*** A giant spider attacks! You lose 15 health. ***\n")
	assert.Contains(t, out.String(), "Health: 85 | Inventory: empty")
}

func TestSessionQuitStopsBeforeNextPrompt(t *testing.T) {
	for _, word := range []string{"quit", "exit", "q"} {
		t.Run(word, func(t *testing.T) {
			g := makeGame(t)
			s, out := newTestSession(t, g, word+"\ngo north\n", quiet())

			outcome := s.Run(context.Background())

			assert.Equal(t, state.OutcomeQuit, outcome)
			assert.Equal(t, 1, strings.Count(out.String(), prompt))
			assert.Equal(t, "entrance", g.Player.CurrentRoom, "commands after quit are not read")
			assert.Contains(t, out.String(), "Thanks for playing! Goodbye.")
		})
	}
}

func TestSessionWin(t *testing.T) {
	g := makeGame(t)
	g.Player.MoveTo("treasure_room")
	g.Player.Health = 5
	s, out := newTestSession(t, g, "go north\nlook\n", quiet())

	outcome := s.Run(context.Background())

	assert.Equal(t, state.OutcomeWin, outcome)
	text := out.String()
	assert.Contains(t, text, "You are in the Freedom!.")
	assert.Contains(t, text, "There are no exits.")
	assert.True(t, strings.HasSuffix(text, "*** CONGRATULATIONS! You escaped the dungeon! ***\n"))
	assert.Equal(t, 1, strings.Count(text, prompt))
}

// An event that drops health to zero is only reported at the top of the next iteration
func TestSessionLose(t *testing.T) {
	g := makeGame(t)
	g.Player.Health = 20
	s, out := newTestSession(t, g, "go north\ngo south\n", always(1))

	outcome := s.Run(context.Background())

	assert.Equal(t, state.OutcomeLose, outcome)
	assert.Equal(t, 0, g.Player.Health)
	assert.Equal(t, "corridor", g.Player.CurrentRoom)
	text := out.String()
	assert.True(t, strings.HasSuffix(text, "*** GAME OVER! You have perished in the dungeon. ***\n"))
	assert.Equal(t, 1, strings.Count(text, prompt))
}

func TestSessionEndOfInputQuits(t *testing.T) {
	g := makeGame(t)
	s, out := newTestSession(t, g, "take torch", quiet())

	outcome := s.Run(context.Background())

	assert.Equal(t, state.OutcomeQuit, outcome)
	assert.True(t, g.Player.HasItem("torch"), "last line without newline is still played")
	assert.True(t, strings.HasSuffix(out.String(), prompt+"\nThanks for playing! Goodbye.\n"))
}

func TestSessionCancelledContext(t *testing.T) {
	g := makeGame(t)
	s, out := newTestSession(t, g, "go north\n", always(0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome := s.Run(ctx)

	assert.Equal(t, state.OutcomeQuit, outcome)
	assert.Equal(t, "entrance", g.Player.CurrentRoom)
	assert.NotContains(t, out.String(), prompt)
	assert.Contains(t, out.String(), "Thanks for playing! Goodbye.")
}

func TestSessionUnknownAndBlankInput(t *testing.T) {
	g := makeGame(t)
	s, out := newTestSession(t, g, "\n   \nxyzzy\nquit\n", quiet())

	s.Run(context.Background())

	assert.Equal(t, 4, strings.Count(out.String(), prompt))
	assert.Contains(t, out.String(), "I don't understand 'xyzzy'. Type 'help'.")
	assert.Equal(t, 4, g.Turns)
}

func TestSessionTracesTurns(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	g := makeGame(t)
	s, _ := newTestSession(t, g, "go north\ntake torch\nquit\n", always(5), WithTracer(tp.Tracer("test")))
	s.Run(context.Background())

	var turns, sessions int
	for _, span := range recorder.Ended() {
		switch span.Name() {
		case "turn":
			turns++
		case "session":
			sessions++
		}
	}
	assert.Equal(t, 3, turns)
	assert.Equal(t, 1, sessions)

	first := recorder.Ended()[0]
	require.Equal(t, "turn", first.Name())
	require.Len(t, first.Events(), 1)
	assert.Equal(t, "random_event", first.Events()[0].Name)
}

func TestSessionIDs(t *testing.T) {
	a, _ := newTestSession(t, makeGame(t), "", quiet())
	b, _ := newTestSession(t, makeGame(t), "", quiet())

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotNil(t, a.Game())
}
