package spatial

import (
	"testing"

	"vecerka/internal/ecs"
)

func TestQueryRegionRadius(t *testing.T) {
	g := NewGrid(2)
	g.Upsert(1, Vec2{0, 0}, LayerInteractable)
	g.Upsert(2, Vec2{0.5, 0}, LayerInteractable) // exactly on the radius
	g.Upsert(3, Vec2{0.6, 0}, LayerInteractable)

	out := make([]ecs.EntityID, 8)
	n := g.QueryRegion(Vec2{0, 0}, 0.5, LayerAll, out)
	got := map[ecs.EntityID]bool{}
	for _, id := range out[:n] {
		got[id] = true
	}
	if n != 2 || !got[1] || !got[2] {
		t.Fatalf("expected ids 1 and 2, got %v", out[:n])
	}
}

func TestQueryRegionMask(t *testing.T) {
	g := NewGrid(0)
	g.Upsert(1, Vec2{1, 1}, LayerPlayer)
	g.Upsert(2, Vec2{1, 1}, LayerInteractable)

	out := make([]ecs.EntityID, 4)
	n := g.QueryRegion(Vec2{1, 1}, 1, LayerInteractable, out)
	if n != 1 || out[0] != 2 {
		t.Fatalf("expected only id 2, got %v", out[:n])
	}
}

func TestQueryRegionBoundedByOutput(t *testing.T) {
	g := NewGrid(1)
	for i := 1; i <= 10; i++ {
		g.Upsert(ecs.EntityID(i), Vec2{5, 5}, LayerInteractable)
	}
	out := make([]ecs.EntityID, 3)
	if n := g.QueryRegion(Vec2{5, 5}, 1, LayerAll, out); n != 3 {
		t.Fatalf("expected 3 results, got %d", n)
	}
	if n := g.QueryRegion(Vec2{5, 5}, 1, LayerAll, nil); n != 0 {
		t.Fatalf("nil output should yield 0, got %d", n)
	}
}

func TestQueryRegionSpansCells(t *testing.T) {
	g := NewGrid(1)
	g.Upsert(1, Vec2{-0.2, 0}, LayerInteractable)
	g.Upsert(2, Vec2{0.2, 0}, LayerInteractable)
	out := make([]ecs.EntityID, 4)
	if n := g.QueryRegion(Vec2{0, 0}, 0.3, LayerAll, out); n != 2 {
		t.Fatalf("expected both neighbours across the cell edge, got %v", out[:n])
	}
}

func TestUpsertMovesAndRemoveDrops(t *testing.T) {
	g := NewGrid(1)
	g.Upsert(1, Vec2{0, 0}, LayerInteractable)
	g.Upsert(1, Vec2{9, 9}, LayerInteractable)
	out := make([]ecs.EntityID, 2)
	if n := g.QueryRegion(Vec2{0, 0}, 0.5, LayerAll, out); n != 0 {
		t.Fatalf("stale position still indexed: %v", out[:n])
	}
	if n := g.QueryRegion(Vec2{9, 9}, 0.5, LayerAll, out); n != 1 {
		t.Fatal("moved entry not found at new position")
	}
	g.Remove(1)
	g.Remove(1)
	if g.Len() != 0 {
		t.Fatalf("Len() = %d after Remove", g.Len())
	}
	if n := g.QueryRegion(Vec2{9, 9}, 0.5, LayerAll, out); n != 0 {
		t.Fatal("removed entry still returned")
	}
}

func TestQueryRegionDoesNotAllocate(t *testing.T) {
	g := NewGrid(2)
	for i := 1; i <= 20; i++ {
		g.Upsert(ecs.EntityID(i), Vec2{float64(i % 5), float64(i / 5)}, LayerInteractable)
	}
	out := make([]ecs.EntityID, 3)
	allocs := testing.AllocsPerRun(100, func() {
		g.QueryRegion(Vec2{2, 2}, 1.5, LayerInteractable, out)
	})
	if allocs != 0 {
		t.Fatalf("QueryRegion allocated %.1f times per run", allocs)
	}
}
