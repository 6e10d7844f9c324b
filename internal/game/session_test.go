package game

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"vecerka/internal/component"
	"vecerka/internal/config"
	"vecerka/internal/interact"
)

var testLayout = []string{
	"######",
	"#@rp.#",
	"#....#",
	"##D###",
}

func newTestSession(t *testing.T, mutate func(*config.Config)) *Session {
	t.Helper()
	cfg := config.Default()
	cfg.RunLog.Enabled = false
	if mutate != nil {
		mutate(cfg)
	}
	s, err := NewSession(Options{
		Config: cfg,
		Layout: testLayout,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Name:   "tester",
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

// step presses the given actions and runs one tick.
func step(s *Session, actions ...Action) {
	for _, a := range actions {
		s.Press(a)
	}
	s.Tick(0)
}

func playerAt(s *Session) component.Position {
	return s.world.Get(s.playerID, component.CPosition).(component.Position)
}

// ─── Construction ───────────────────────────────────────────────────────────

func TestNewSessionPlacesPlayerAndGoods(t *testing.T) {
	s := newTestSession(t, nil)
	if p := playerAt(s); p.X != 1 || p.Y != 1 {
		t.Fatalf("player at (%d,%d); want (1,1)", p.X, p.Y)
	}
	if n := len(s.world.Query(component.CInteractable)); n != 3 {
		t.Errorf("interactables = %d; want 3 (two goods and the door)", n)
	}
	if s.grid.Len() != 3 {
		t.Errorf("grid entries = %d; want 3", s.grid.Len())
	}
	if s.ID == "" {
		t.Error("session must have an ID")
	}
}

func TestNewSessionRejectsBadLayout(t *testing.T) {
	_, err := NewSession(Options{Layout: []string{"#@?#"}, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	if err == nil || !strings.Contains(err.Error(), "parse layout") {
		t.Fatalf("err = %v; want parse layout error", err)
	}
}

func TestNewSessionDefaultShop(t *testing.T) {
	cfg := config.Default()
	cfg.RunLog.Enabled = false
	s, err := NewSession(Options{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	if err != nil {
		t.Fatalf("default shop must load: %v", err)
	}
	defer s.Close()
	if len(s.world.Query(component.CInteractable)) == 0 {
		t.Error("default shop has no interactables")
	}
}

// ─── Pickup ─────────────────────────────────────────────────────────────────

func TestWalkUpAndPickUp(t *testing.T) {
	s := newTestSession(t, nil)

	step(s, ActionMoveE) // bump into the rohlik and face it
	if p := playerAt(s); p.X != 1 {
		t.Fatalf("goods must block; player moved to (%d,%d)", p.X, p.Y)
	}
	if got := s.Scanner().Prompt(); got != "Pick up Rohlik" {
		t.Fatalf("prompt = %q; want %q", got, "Pick up Rohlik")
	}

	step(s, ActionInteract)
	items := s.Inventory().Items()
	if len(items) != 1 || items[0].Name != "Rohlik" {
		t.Fatalf("inventory = %v; want [Rohlik]", items)
	}
	if c := s.Cells()[0]; c.Empty() || c.Item().Name != "Rohlik" {
		t.Error("HUD slot 0 must show the rohlik")
	}
	if s.Stats().Pickups != 1 {
		t.Errorf("pickups = %d; want 1", s.Stats().Pickups)
	}

	step(s)
	if got := s.Scanner().Prompt(); got != "" {
		t.Errorf("prompt after pickup = %q; want empty", got)
	}
}

func TestInteractRequiresPress(t *testing.T) {
	s := newTestSession(t, nil)
	step(s, ActionMoveE)
	step(s)
	step(s)
	if s.Inventory().Len() != 0 {
		t.Fatal("nothing may be picked up without pressing interact")
	}
}

func TestPickupFailsWhenFull(t *testing.T) {
	s := newTestSession(t, func(c *config.Config) { c.Inventory.Capacity = 1 })

	step(s, ActionMoveE, ActionInteract) // rohlik
	step(s, ActionMoveE)                 // step into the freed tile
	step(s, ActionMoveE)                 // face the pivo
	if got := s.Scanner().Prompt(); got != "Pick up Pivo" {
		t.Fatalf("prompt = %q", got)
	}
	step(s, ActionInteract)

	if s.Inventory().Len() != 1 {
		t.Fatalf("inventory len = %d; want 1", s.Inventory().Len())
	}
	if s.Stats().Failed != 1 {
		t.Errorf("failed = %d; want 1", s.Stats().Failed)
	}
	if got := s.Scanner().Prompt(); got != "Pick up Pivo" {
		t.Errorf("pivo must stay in the world; prompt = %q", got)
	}
	found := false
	for _, e := range s.Panel().Entries() {
		if strings.Contains(e.Message, "couldn't add item to inventory") {
			found = true
		}
	}
	if !found {
		t.Error("failed pickup must reach the log panel")
	}
}

// ─── Toggle ─────────────────────────────────────────────────────────────────

func TestDoorOpensAndLetsPlayerThrough(t *testing.T) {
	s := newTestSession(t, nil)
	step(s, ActionMoveS) // (1,2)
	step(s, ActionMoveE) // (2,2)
	step(s, ActionMoveS) // bump the closed door
	if p := playerAt(s); p.X != 2 || p.Y != 2 {
		t.Fatalf("closed door must block; player at (%d,%d)", p.X, p.Y)
	}
	if got := s.Scanner().Prompt(); !strings.Contains(got, "door") {
		t.Fatalf("prompt = %q; want the door prompt", got)
	}

	door := s.Scanner().InteractableObject().(*interact.Toggle)
	step(s, ActionInteract)
	if door.State() != interact.Open {
		t.Fatalf("door state = %v; want open", door.State())
	}
	step(s, ActionMoveS)
	if p := playerAt(s); p.Y != 3 {
		t.Errorf("open door must let the player through; at (%d,%d)", p.X, p.Y)
	}
	if s.Stats().Toggles != 1 {
		t.Errorf("toggles = %d; want 1", s.Stats().Toggles)
	}
}

// ─── Overlays ───────────────────────────────────────────────────────────────

func TestPauseFreezesAndQuits(t *testing.T) {
	s := newTestSession(t, nil)
	step(s, ActionPause)
	step(s, ActionMoveS)
	if p := playerAt(s); p.Y != 1 {
		t.Fatal("player must not move while paused")
	}
	if s.Stats().Ticks != 0 {
		t.Errorf("paused ticks counted: %d", s.Stats().Ticks)
	}
	step(s, ActionQuit)
	if !s.Done() {
		t.Error("q on the pause menu must end the session")
	}
}

func TestQuitIgnoredWhenNotPaused(t *testing.T) {
	s := newTestSession(t, nil)
	step(s, ActionQuit)
	if s.Done() {
		t.Error("q outside the pause menu must be ignored")
	}
	step(s, ActionAbort)
	if !s.Done() {
		t.Error("abort must end the session")
	}
}

func TestInventoryOverlayBlocksMovementAndDrops(t *testing.T) {
	s := newTestSession(t, nil)
	step(s, ActionMoveE, ActionInteract)
	step(s, ActionInventory)
	if !s.Overlays().InventoryOpen() {
		t.Fatal("inventory overlay must be open")
	}
	step(s, ActionMoveS)
	if p := playerAt(s); p.Y != 1 {
		t.Fatal("player must not move with the inventory open")
	}

	step(s, ActionDrop)
	if s.Inventory().Len() != 0 {
		t.Fatalf("drop must remove the item; len = %d", s.Inventory().Len())
	}
	if !s.Cells()[0].Empty() {
		t.Error("HUD slot 0 must clear after the drop")
	}
	dropped := false
	for _, id := range s.world.Query(component.CInteractable, component.CPosition) {
		p := s.world.Get(id, component.CPosition).(component.Position)
		if p.X == 1 && p.Y == 1 {
			dropped = true
		}
	}
	if !dropped {
		t.Error("dropped item must reappear on the player's tile")
	}
	if s.Stats().Drops != 1 {
		t.Errorf("drops = %d; want 1", s.Stats().Drops)
	}
}

func TestLogPanelToggleAndFilter(t *testing.T) {
	s := newTestSession(t, nil)
	step(s, ActionLogFilter)
	if s.Panel().Filter().String() != "All" {
		t.Error("filter must not cycle while the panel is hidden")
	}
	step(s, ActionLogPanel)
	if !s.Panel().Visible() {
		t.Fatal("F1 must show the log panel")
	}
	step(s, ActionLogFilter)
	if s.Panel().Filter().String() != "Info" {
		t.Errorf("filter = %v; want Info", s.Panel().Filter())
	}
}
