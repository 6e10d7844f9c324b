package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vecerka/assets"
	"vecerka/internal/component"
	"vecerka/internal/config"
	"vecerka/internal/ecs"
	"vecerka/internal/factory"
	"vecerka/internal/gamemap"
	"vecerka/internal/interact"
	"vecerka/internal/inventory"
	"vecerka/internal/item"
	"vecerka/internal/logpanel"
	"vecerka/internal/render"
	"vecerka/internal/spatial"
	"vecerka/internal/system"
	"vecerka/internal/telemetry"

	"github.com/google/uuid"
)

// maxMessages caps the HUD message history.
const maxMessages = 50

// Options configures a Session. Zero fields fall back to the built-in
// config, the embedded catalog and the default shop layout.
type Options struct {
	Config  *config.Config
	Catalog *item.Catalog
	Layout  []string
	Metrics *telemetry.Metrics
	Logger  *slog.Logger
	Name    string // shown in the run log; SSH username or local user
}

// Session is one shopper's world: map, entities, inventory and UI state.
// A session is owned by a single goroutine.
type Session struct {
	ID string

	cfg     *config.Config
	catalog *item.Catalog
	metrics *telemetry.Metrics
	logger  *slog.Logger
	panel   *logpanel.Panel

	world    *ecs.World
	grid     *spatial.Grid
	gmap     *gamemap.GameMap
	playerID ecs.EntityID

	store      *inventory.Store
	cells      []*inventory.Cell
	projection *inventory.Projection
	unsubMeter func()
	scanner    *interact.Scanner

	input     Input
	overlays  Overlays
	messages  []string
	invCursor int
	invStatus string
	done      bool

	stats RunLog
}

// shopper is the player as seen by interactables.
type shopper struct{ store *inventory.Store }

func (s shopper) Inventory() *inventory.Store { return s.store }

// NewSession builds the shop from opts and places the player at the
// layout's start.
func NewSession(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	catalog := opts.Catalog
	if catalog == nil {
		var err error
		if catalog, err = LoadCatalog(""); err != nil {
			return nil, fmt.Errorf("embedded catalog: %w", err)
		}
	}
	rows := opts.Layout
	if rows == nil {
		rows = assets.ShopLayout
	}
	base := opts.Logger
	if base == nil {
		base = slog.Default()
	}

	id := uuid.NewString()
	panel := logpanel.New(cfg.Log.PanelMax)
	logger := slog.New(telemetry.Fanout{
		base.Handler().WithAttrs([]slog.Attr{slog.String("session", id)}),
		panel.Handler(slog.LevelInfo),
	})

	s := &Session{
		ID:      id,
		cfg:     cfg,
		catalog: catalog,
		metrics: opts.Metrics,
		logger:  logger,
		panel:   panel,
		world:   ecs.NewWorld(),
		grid:    spatial.NewGrid(spatial.DefaultCellSize),
		stats:   RunLog{Session: id, Player: opts.Name, Started: time.Now()},
	}
	s.world.OnDespawn(s.grid.Remove)

	layout, err := s.load(rows)
	if err != nil {
		return nil, err
	}

	s.store = inventory.New(cfg.Inventory.Capacity, logger)
	s.playerID = factory.NewPlayer(s.world, layout.StartX, layout.StartY, s.store)
	cells, slots := inventory.NewCells(cfg.Inventory.Slots)
	s.cells = cells
	s.projection = inventory.NewProjection(s.store, slots)
	s.unsubMeter = s.store.Subscribe(func() {
		s.metrics.RecordInventory(context.Background(), s.ID, s.store.Len())
	})
	s.scanner = interact.NewScanner(
		shopper{s.store},
		&worldRegion{world: s.world, grid: s.grid},
		interact.ScannerConfig{
			Radius:        cfg.Interact.Radius,
			MaxCandidates: cfg.Interact.MaxCandidates,
			Mask:          spatial.LayerInteractable,
		},
		s.metrics,
		logger,
	)

	s.metrics.SessionStarted(context.Background())
	logger.Info("session started", "player", opts.Name)
	s.addMessage("Arrows or hjkl to move, e to interact, i for the bag, r for the tablet.")
	return s, nil
}

// load parses the layout and spawns every prop and good it places.
func (s *Session) load(rows []string) (*gamemap.Layout, error) {
	layout, err := gamemap.Parse(rows, func(r rune) bool {
		_, prop := assets.Props[r]
		_, good := assets.ItemLegend[r]
		return prop || good
	})
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	s.gmap = layout.Map

	for _, p := range layout.Placements {
		if def, ok := assets.Props[p.Rune]; ok {
			factory.NewProp(s.world, s.grid, def, p.X, p.Y, s.logger)
			continue
		}
		it, err := s.catalog.Lookup(assets.ItemLegend[p.Rune])
		if err != nil {
			return nil, fmt.Errorf("layout (%d,%d): %w", p.X, p.Y, err)
		}
		factory.NewPickup(s.world, s.grid, it, p.X, p.Y, s.logger)
	}
	return layout, nil
}

// worldRegion answers scanner queries from the spatial grid, resolving
// entity IDs to their interaction handlers. The ID buffer is reused so a
// scan does not allocate.
type worldRegion struct {
	world *ecs.World
	grid  *spatial.Grid
	ids   []ecs.EntityID
}

func (r *worldRegion) Candidates(center spatial.Vec2, radius float64, mask spatial.Layer, out []interact.Interactable) int {
	if cap(r.ids) < len(out) {
		r.ids = make([]ecs.EntityID, len(out))
	}
	ids := r.ids[:len(out)]
	n := r.grid.QueryRegion(center, radius, mask, ids)
	k := 0
	for _, id := range ids[:n] {
		c, ok := r.world.Get(id, component.CInteractable).(component.Interactable)
		if !ok || c.Handler == nil {
			continue
		}
		out[k] = c.Handler
		k++
	}
	return k
}

// ─── tick ───────────────────────────────────────────────────────────────────

// Press queues an action for the next Tick.
func (s *Session) Press(a Action) { s.input.Press(a) }

// Tick advances the session by one step: overlay keys, then movement, then
// the interaction scan, then the interact trigger. Presses are consumed at
// the end whether or not they were used.
func (s *Session) Tick(dt time.Duration) {
	defer s.input.EndTick()

	s.handleOverlayKeys()
	if s.done || s.overlays.TimeScale() == 0 {
		return
	}
	s.stats.Ticks++
	s.stats.Elapsed += dt
	s.metrics.RecordTick(context.Background())

	if s.overlays.InventoryOpen() {
		s.handleInventoryKeys()
	}
	if !s.overlays.ControlsEnabled() {
		return
	}
	s.handleMovement()
	s.scanner.Scan(system.InteractionPoint(s.world, s.playerID, s.cfg.Interact.Reach))
	s.handleInteract()
}

func (s *Session) handleOverlayKeys() {
	in := &s.input
	if in.Pressed(ActionAbort) {
		s.done = true
		return
	}
	if in.Pressed(ActionPause) {
		s.overlays.TogglePause()
	}
	if s.overlays.Paused() && in.Pressed(ActionQuit) {
		s.done = true
		return
	}
	if in.Pressed(ActionInventory) && s.overlays.ToggleInventory() {
		s.invCursor = 0
		s.invStatus = ""
	}
	if in.Pressed(ActionTablet) {
		s.overlays.ToggleTablet()
	}
	if in.Pressed(ActionLogPanel) {
		s.panel.Toggle()
	}
	if in.Pressed(ActionLogFilter) && s.panel.Visible() {
		s.panel.CycleFilter()
	}
}

func (s *Session) handleMovement() {
	dx, dy := actionToDelta(s.input.Move())
	if dx == 0 && dy == 0 {
		return
	}
	if res, _ := system.TryMove(s.world, s.gmap, s.playerID, dx, dy); res == system.MoveOK {
		s.stats.Steps++
	}
}

func (s *Session) handleInteract() {
	pressed := s.input.Pressed(ActionInteract)
	target := s.scanner.InteractableObject()
	ok := s.scanner.TryInteract(pressed)
	if !pressed || target == nil {
		return
	}
	d := target.Descriptor()
	switch t := target.(type) {
	case *interact.Pickup:
		if ok {
			s.stats.Pickups++
			s.addMessage(fmt.Sprintf("Picked up %s.", t.Item()))
		} else {
			s.stats.Failed++
			s.addMessage(fmt.Sprintf("No room for %s.", t.Item()))
		}
	case *interact.Toggle:
		s.stats.Toggles++
		s.addMessage(fmt.Sprintf("%s: %s.", d.Prompt, t.State()))
	default:
		if !ok {
			s.stats.Failed++
		}
	}
}

func (s *Session) handleInventoryKeys() {
	items := s.store.Items()
	switch {
	case s.input.Pressed(ActionMoveN):
		s.invCursor--
	case s.input.Pressed(ActionMoveS):
		s.invCursor++
	}
	s.invCursor = max(min(s.invCursor, len(items)-1), 0)
	if len(items) == 0 {
		return
	}
	it := items[s.invCursor]
	switch {
	case s.input.Pressed(ActionUse):
		it.Use(s.logger)
		s.invStatus = fmt.Sprintf("You use the %s.", it)
	case s.input.Pressed(ActionDrop):
		s.drop(it)
		s.invStatus = fmt.Sprintf("Dropped %s.", it)
		s.invCursor = max(min(s.invCursor, s.store.Len()-1), 0)
	}
}

// drop moves it from the bag back onto the player's tile.
func (s *Session) drop(it *item.Item) {
	s.store.Remove(it)
	pos := s.world.Get(s.playerID, component.CPosition).(component.Position)
	factory.NewPickup(s.world, s.grid, it, pos.X, pos.Y, s.logger)
	s.stats.Drops++
	s.logger.Info("dropped item", "item", it.Name, "x", pos.X, "y", pos.Y)
}

func (s *Session) addMessage(msg string) {
	s.messages = append(s.messages, msg)
	if len(s.messages) > maxMessages {
		s.messages = s.messages[len(s.messages)-maxMessages:]
	}
}

// ─── draw ───────────────────────────────────────────────────────────────────

// Draw composes the current frame on r and shows it.
func (s *Session) Draw(r *render.Renderer) {
	switch {
	case s.overlays.InventoryOpen():
		r.DrawInventory(s.store.Items(), s.store.Capacity(), s.invCursor, s.invStatus)
	case s.overlays.TabletOpen():
		r.DrawTablet(s.catalog.Items())
	default:
		pos := s.world.Get(s.playerID, component.CPosition).(component.Position)
		r.CenterOn(pos.X, pos.Y)
		r.DrawFrame(s.world, s.gmap)
		hud := render.HUD{
			Cells:    s.cells,
			Hidden:   s.projection.Hidden(),
			Held:     s.store.Len(),
			Capacity: s.store.Capacity(),
			Messages: s.messages,
		}
		if s.overlays.ControlsEnabled() {
			hud.Prompt = s.scanner.Prompt()
		}
		r.DrawHUD(hud)
	}
	if s.overlays.Paused() {
		r.DrawPause()
	}
	if s.panel.Visible() {
		r.DrawLogPanel(s.panel.Entries(), s.panel.Filter())
	}
	r.Show()
}

// ─── lifecycle ──────────────────────────────────────────────────────────────

// Done reports whether the player asked to leave.
func (s *Session) Done() bool { return s.done }

// Close detaches observers, records the run summary and reports the end of
// the session to metrics. Run log failures are logged, never returned.
func (s *Session) Close() {
	s.projection.Close()
	s.unsubMeter()
	for _, it := range s.store.Items() {
		s.stats.Held = append(s.stats.Held, it.Name)
	}
	if s.cfg.RunLog.Enabled {
		if err := saveRunLog(s.stats); err != nil {
			s.logger.Warn("run log: save failed", "error", err)
		}
	}
	s.metrics.SessionEnded(context.Background())
	s.logger.Info("session ended", "ticks", s.stats.Ticks, "pickups", s.stats.Pickups)
}

// Inventory returns the player's store.
func (s *Session) Inventory() *inventory.Store { return s.store }

// Cells returns the HUD slots fed by the inventory projection.
func (s *Session) Cells() []*inventory.Cell { return s.cells }

// Scanner returns the player's interaction scanner.
func (s *Session) Scanner() *interact.Scanner { return s.scanner }

// Overlays returns the overlay state.
func (s *Session) Overlays() *Overlays { return &s.overlays }

// Panel returns the session's log panel.
func (s *Session) Panel() *logpanel.Panel { return s.panel }

// Stats returns the run summary collected so far.
func (s *Session) Stats() RunLog { return s.stats }
