package gameplay

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"dungeonescape/pkg/engine/input"
	"dungeonescape/pkg/game/events"
	"dungeonescape/pkg/game/items"
	"dungeonescape/pkg/game/locale"
	"dungeonescape/pkg/game/logger"
	"dungeonescape/pkg/game/renderer"
	"dungeonescape/pkg/game/state"
	"dungeonescape/pkg/game/telemetry"
)

// Session runs the game loop for one game: render, read, dispatch, roll events,
// until the player wins, dies or quits.
type Session struct {
	ID string

	game     *state.Game
	renderer renderer.Renderer
	input    *input.Reader
	events   *events.Generator
	effects  *items.Table
	log      *slog.Logger
	tracer   trace.Tracer
}

// Option configures a Session
type Option func(*Session)

// WithItems sets the item effect table
func WithItems(t *items.Table) Option {
	return func(s *Session) { s.effects = t }
}

// WithLogger sets the logger; the session id is attached to it
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithTracer sets the tracer used for per-turn spans
func WithTracer(t trace.Tracer) Option {
	return func(s *Session) { s.tracer = t }
}

// NewSession creates a session for g reading commands from in
func NewSession(g *state.Game, r renderer.Renderer, in io.Reader, gen *events.Generator, opts ...Option) *Session {
	s := &Session{
		ID:       logger.GenerateSessionID(),
		game:     g,
		renderer: r,
		input:    input.NewReader(in),
		events:   gen,
		effects:  items.DefaultTable(),
		log:      slog.Default(),
		tracer:   telemetry.NoopTracer(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Game returns the game the session is playing
func (s *Session) Game() *state.Game {
	return s.game
}

// Run plays until a terminal condition and returns how the game ended.
// End of input and a cancelled context both end the game as a quit.
func (s *Session) Run(ctx context.Context) state.Outcome {
	ctx = logger.WithSessionID(ctx, s.ID)
	log := logger.FromContext(ctx, s.log)

	ctx, span := s.tracer.Start(ctx, "session")
	defer span.End()

	log.Info("Session started", "room", s.game.Player.CurrentRoom)

	s.renderer.ShowIntro()

	for {
		if ctx.Err() != nil && s.game.Running {
			log.Debug("Context done, quitting", "error", ctx.Err())
			s.quit()
		}

		switch s.game.CheckTerminal() {
		case state.OutcomeWin:
			s.renderer.RenderRoom(s.game)
			s.renderer.ShowMessage("")
			s.renderer.ShowMessage(s.renderer.StyleText(locale.Get("VICTORY"), renderer.StyleVictory))
		case state.OutcomeLose:
			s.renderer.ShowMessage("")
			s.renderer.ShowMessage(s.renderer.StyleText(locale.Get("DEFEAT"), renderer.StyleDenied))
		case state.OutcomeNone:
			s.turn(ctx, log)
			continue
		}

		outcome := s.game.Outcome
		span.SetAttributes(
			attribute.String("game.outcome", outcome.String()),
			attribute.Int("game.turns", s.game.Turns),
			attribute.Int("game.moves", s.game.Moves),
		)
		log.Info("Session ended",
			"outcome", outcome.String(),
			"turns", s.game.Turns,
			"moves", s.game.Moves,
			"health", s.game.Player.Health)

		return outcome
	}
}

// turn plays a single iteration: render, prompt, read and apply one command
func (s *Session) turn(ctx context.Context, log *slog.Logger) {
	_, span := s.tracer.Start(ctx, "turn")
	defer span.End()

	g := s.game

	s.renderer.RenderRoom(g)
	s.renderer.RenderStatus(g)
	s.renderer.Prompt()

	line, err := s.input.ReadLine()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			log.Warn("Failed to read input", "error", err)
		}
		// Finish the prompt line before saying goodbye
		g.AddMessage("")
		s.quit()
		return
	}

	cmd := input.Parse(line)
	g.Turns++

	room := g.Player.CurrentRoom
	moved := ProcessCommand(g, cmd, s.effects)

	span.SetAttributes(
		attribute.String("command.action", cmd.Action.String()),
		attribute.String("command.argument", cmd.Argument),
		attribute.String("room.before", room),
		attribute.String("room.after", g.Player.CurrentRoom),
	)

	if moved {
		if ev, ok := s.events.Roll(); ok {
			applied := ApplyEvent(g, ev)
			span.AddEvent("random_event", trace.WithAttributes(
				attribute.String("event.category", string(ev.Category)),
				attribute.Int("event.delta", applied),
			))
			log.Debug("Random event", "category", ev.Category, "delta", ev.Delta, "applied", applied)
		}
	}

	span.SetAttributes(attribute.Int("player.health", g.Player.Health))
	log.Debug("Turn",
		"turn", g.Turns,
		"action", cmd.Action.String(),
		"argument", cmd.Argument,
		"room", g.Player.CurrentRoom,
		"health", g.Player.Health)

	renderer.ShowMessages(s.renderer, g)
}

// quit ends the game with the farewell message
func (s *Session) quit() {
	logMessage(s.game, "GOODBYE")
	s.game.Quit()
	renderer.ShowMessages(s.renderer, s.game)
}
