package game

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vecerka/internal/config"

	"github.com/gdamore/tcell/v2"
)

func TestRunEndsOnPauseQuit(t *testing.T) {
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(80, 24)

	cfg := config.Default()
	cfg.RunLog.Enabled = false
	s, err := NewSession(Options{Config: cfg, Layout: testLayout, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	g := New(ss, s, 5*time.Millisecond)

	ss.InjectKey(tcell.KeyRune, 'l', tcell.ModNone)
	ss.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	ss.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := g.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !s.Done() {
		t.Error("session must be done after pause + quit")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	cfg := config.Default()
	cfg.RunLog.Enabled = false
	s, err := NewSession(Options{Config: cfg, Layout: testLayout, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := New(ss, s, 0).Run(ctx); err != context.Canceled {
		t.Errorf("Run = %v; want context.Canceled", err)
	}
}
