// Package game provides the main game loop and input handling.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/firstrl/internal/entity"
	"github.com/samdwyer/firstrl/internal/gamedata"
	"github.com/samdwyer/firstrl/internal/logger"
	"github.com/samdwyer/firstrl/internal/telemetry"
	"github.com/samdwyer/firstrl/internal/ui"
	"github.com/samdwyer/firstrl/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	seed     int64
	rng      *rand.Rand
	screen   *ui.Screen
	renderer *ui.Renderer
	defs     *gamedata.ObjectRegistry
	dungeon  *world.Dungeon
	player   *entity.Object
	npc      *entity.Object
	objects  []*entity.Object // Draw order: later objects are drawn on top
	running  bool
	closed   bool
	log      *logrus.Entry
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g, err := NewWithScreen(cfg, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game that draws on the given screen.
func NewWithScreen(cfg Config, screen *ui.Screen) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	defs, err := gamedata.LoadObjectRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load objects: %w", err)
	}
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, fmt.Errorf("failed to load palette: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		cfg:      cfg,
		seed:     seed,
		rng:      rand.New(rand.NewSource(seed)),
		screen:   screen,
		renderer: ui.NewRenderer(screen, cfg.ScreenWidth, cfg.ScreenHeight, palette),
		defs:     defs,
		running:  true,
		log:      logger.Log.WithField("component", "game"),
	}, nil
}

// Seed returns the seed the dungeon is generated from.
func (g *Game) Seed() int64 {
	return g.seed
}

// Run executes the main game loop until the player quits, the event source
// closes, or ctx is cancelled. The screen is closed on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	if err := g.setup(ctx); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	events := g.pumpEvents(done)

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.FPS))
	defer ticker.Stop()

	for g.running {
		g.renderer.Render(g.dungeon, g.objects)

		// Erase objects at their old location before they move
		g.renderer.ClearObjects(g.objects)

		select {
		case <-ctx.Done():
			g.log.WithError(ctx.Err()).Info("Game loop cancelled.")
			return ctx.Err()
		case <-ticker.C:
		}

		// At most one input event per frame
		select {
		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ctx, ev)
		default:
		}
	}

	g.log.Info("Game loop finished.")
	return nil
}

// setup generates the dungeon and places the player and NPC.
func (g *Game) setup(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	playerDef := g.defs.GetByID(gamedata.PlayerID)
	npcDef := g.defs.GetByID(gamedata.NPCID)

	g.player = entity.NewObjectFromDef(playerDef, g.cfg.ScreenWidth/2, g.cfg.ScreenHeight/2)
	g.npc = entity.NewObjectFromDef(npcDef, g.cfg.ScreenWidth/2-5, g.cfg.ScreenHeight/2)
	g.objects = []*entity.Object{g.npc, g.player}

	g.dungeon = world.NewDungeon(g.cfg.MapWidth, g.cfg.MapHeight, g.rng)
	if err := g.dungeon.Generate(ctx, g.cfg.GenOptions()); err != nil {
		return fmt.Errorf("failed to generate dungeon: %w", err)
	}

	if x, y, ok := g.dungeon.StartPosition(); ok {
		g.player.SetPosition(x, y)
	} else {
		span.SetAttributes(attribute.String("warning", "no rooms generated, keeping screen-center start"))
		g.log.Warn("No rooms generated, player starts at screen center.")
	}

	span.SetAttributes(
		attribute.Int64("game.seed", g.seed),
		attribute.Int("dungeon.rooms", len(g.dungeon.Rooms)),
		attribute.Int("player.start_x", g.player.X),
		attribute.Int("player.start_y", g.player.Y),
	)
	g.log.WithFields(logrus.Fields{
		"title":   g.cfg.Title,
		"seed":    g.seed,
		"rooms":   len(g.dungeon.Rooms),
		"start_x": g.player.X,
		"start_y": g.player.Y,
	}).Info("Game initialized.")

	return nil
}

// pumpEvents forwards screen events to a channel until the screen closes or
// done is closed.
func (g *Game) pumpEvents(done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	action := ActionFor(ev)

	switch action.Kind {
	case ActionMove:
		g.tryMove(ctx, action.DX, action.DY)
	case ActionToggleFullscreen:
		g.screen.ToggleFullscreen()
		g.log.WithField("fullscreen", g.screen.IsFullscreen()).Info("Fullscreen toggled.")
	case ActionQuit:
		g.running = false
	}
}

// tryMove attempts to move the player by the given delta.
func (g *Game) tryMove(ctx context.Context, dx, dy int) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.move")
	defer span.End()

	fromX, fromY := g.player.Position()
	moved := g.player.Move(dx, dy, g.dungeon)

	span.SetAttributes(
		attribute.Int("from_x", fromX),
		attribute.Int("from_y", fromY),
		attribute.Int("to_x", g.player.X),
		attribute.Int("to_y", g.player.Y),
		attribute.Bool("blocked", !moved),
	)
	if !moved {
		g.log.WithFields(logrus.Fields{"x": fromX + dx, "y": fromY + dy}).Debug("Move blocked.")
	}
}

// Close cleans up game resources. It is safe to call more than once.
func (g *Game) Close() {
	if g.screen != nil && !g.closed {
		g.closed = true
		g.screen.Close()
	}
}
