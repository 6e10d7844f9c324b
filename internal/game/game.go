// Package game hosts shop sessions: it builds the world, feeds it input
// from a tcell screen and ticks it at a fixed rate.
package game

import (
	"context"
	"time"

	"vecerka/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Game drives one Session on one screen.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	session  *Session
	tick     time.Duration
}

// New binds session to an already-initialized screen. tick is the fixed
// simulation step; zero uses the configured sim.tick_interval.
func New(screen tcell.Screen, session *Session, tick time.Duration) *Game {
	if tick <= 0 {
		tick = session.cfg.Sim.TickInterval
	}
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		session:  session,
		tick:     tick,
	}
}

// Session returns the hosted session.
func (g *Game) Session() *Session { return g.session }

// Run ticks the session until the player leaves, the screen goes away or
// ctx is cancelled. Screen events are read on a helper goroutine and
// applied on the tick goroutine. Run finalizes the screen and closes the
// session before returning.
func (g *Game) Run(ctx context.Context) error {
	defer g.session.Close()
	defer g.screen.Fini()

	events := make(chan tcell.Event, 32)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		defer close(events)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()
	last := time.Now()
	g.session.Draw(g.renderer)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			g.handleEvent(ev)
		case now := <-ticker.C:
			g.session.Tick(now.Sub(last))
			last = now
			if g.session.Done() {
				return nil
			}
			g.session.Draw(g.renderer)
		}
	}
}

func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
		g.session.Draw(g.renderer)
	case *tcell.EventKey:
		g.session.Press(keyToAction(ev))
	}
}
