package logpanel

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestPanelKeepsNewestEntries(t *testing.T) {
	p := New(3)
	for i := range 5 {
		p.Info(fmt.Sprintf("msg %d", i))
	}
	got := p.Entries()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, e := range got {
		if want := fmt.Sprintf("msg %d", i+2); e.Message != want {
			t.Errorf("entry %d = %q, want %q", i, e.Message, want)
		}
	}
}

func TestPanelFilter(t *testing.T) {
	p := New(10)
	p.Info("stocked shelf")
	p.Warning("milk expires soon")
	p.Error("fridge broke")

	cases := []struct {
		filter Level
		want   int
	}{
		{All, 3}, {Info, 1}, {Warning, 1}, {Error, 1},
	}
	for _, tc := range cases {
		p.SetFilter(tc.filter)
		if got := len(p.Entries()); got != tc.want {
			t.Errorf("filter %v: %d entries, want %d", tc.filter, got, tc.want)
		}
	}
	if p.Len() != 3 {
		t.Errorf("filter must not drop entries, Len() = %d", p.Len())
	}
}

func TestPanelCycleFilterWraps(t *testing.T) {
	p := New(1)
	seen := []Level{p.CycleFilter(), p.CycleFilter(), p.CycleFilter(), p.CycleFilter()}
	want := []Level{Info, Warning, Error, All}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle = %v, want %v", seen, want)
		}
	}
}

func TestPanelClearAndToggle(t *testing.T) {
	p := New(5)
	p.Info("a")
	p.Clear()
	if p.Len() != 0 {
		t.Fatal("Clear should empty the panel")
	}
	if p.Visible() {
		t.Fatal("panel starts hidden")
	}
	if !p.Toggle() || !p.Visible() {
		t.Fatal("Toggle should show the panel")
	}
	if p.Toggle() {
		t.Fatal("second Toggle should hide the panel")
	}
}

func TestEntryFormat(t *testing.T) {
	p := New(2)
	p.now = func() time.Time { return time.Date(2026, 1, 2, 13, 4, 5, 0, time.UTC) }
	p.Warning("door jammed")
	if got := p.Entries()[0].Format(); got != "[13:04:05] door jammed" {
		t.Fatalf("Format() = %q", got)
	}
}

func TestHandlerFeedsPanel(t *testing.T) {
	p := New(10)
	logger := slog.New(p.Handler(slog.LevelInfo)).With("session", "s1")
	logger.Debug("ignored")
	logger.Info("item added", "item", "Pivo")
	logger.WithGroup("door").Warn("stuck", "id", 4)
	logger.Error("boom")

	got := p.Entries()
	if len(got) != 3 {
		t.Fatalf("entries = %d, want 3", len(got))
	}
	if got[0].Level != Info || got[0].Message != "item added session=s1 item=Pivo" {
		t.Errorf("entry 0 = %+v", got[0])
	}
	if got[1].Level != Warning || !strings.Contains(got[1].Message, "door.id=4") {
		t.Errorf("entry 1 = %+v", got[1])
	}
	if got[2].Level != Error {
		t.Errorf("entry 2 level = %v, want Error", got[2].Level)
	}
}
