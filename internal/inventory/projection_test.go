package inventory

import (
	"testing"

	"vecerka/internal/item"
)

func checkProjection(t *testing.T, cells []*Cell, items []*item.Item) {
	t.Helper()
	for i, c := range cells {
		if i < len(items) {
			if c.Item() != items[i] {
				t.Errorf("slot %d = %v, want %v", i, c.Item(), items[i])
			}
		} else if !c.Empty() {
			t.Errorf("slot %d = %v, want empty", i, c.Item())
		}
	}
}

func TestProjectionMirrorsStore(t *testing.T) {
	s := New(10, quietLogger())
	cells, slots := NewCells(4)
	p := NewProjection(s, slots)
	defer p.Close()

	items := newItems("a", "b", "c")
	for _, it := range items {
		s.Add(it)
		checkProjection(t, cells, s.Items())
	}
	s.Remove(items[0])
	checkProjection(t, cells, s.Items())
	if cells[0].Item() != items[1] || cells[1].Item() != items[2] || !cells[2].Empty() {
		t.Fatal("remaining items should shift down one slot")
	}
}

func TestProjectionTruncatesSurplus(t *testing.T) {
	s := New(6, quietLogger())
	cells, slots := NewCells(2)
	p := NewProjection(s, slots)
	defer p.Close()

	items := newItems("a", "b", "c", "d")
	for _, it := range items {
		s.Add(it)
	}
	checkProjection(t, cells, items)
	if p.Hidden() != 2 {
		t.Errorf("Hidden() = %d, want 2", p.Hidden())
	}
}

func TestProjectionRefreshesOnNoopRemove(t *testing.T) {
	s := New(3, quietLogger())
	cells, slots := NewCells(3)
	p := NewProjection(s, slots)
	defer p.Close()

	held := &item.Item{Name: "a"}
	s.Add(held)
	before := cells[0].Renders()
	s.Remove(&item.Item{Name: "ghost"})
	if cells[0].Renders() != before+1 {
		t.Fatalf("renders = %d, want %d", cells[0].Renders(), before+1)
	}
	if cells[0].Item() != held || !cells[1].Empty() {
		t.Fatal("no-op remove must leave slot contents unchanged")
	}
}

func TestProjectionRendersOnAttach(t *testing.T) {
	s := New(3, quietLogger())
	a := &item.Item{Name: "a"}
	s.Add(a)
	cells, slots := NewCells(2)
	NewProjection(s, slots)
	if cells[0].Item() != a || !cells[1].Empty() {
		t.Fatal("projection should render current contents on attach")
	}
}

func TestProjectionCloseStopsFollowing(t *testing.T) {
	s := New(3, quietLogger())
	cells, slots := NewCells(2)
	p := NewProjection(s, slots)
	p.Close()
	s.Add(&item.Item{Name: "a"})
	if !cells[0].Empty() {
		t.Fatal("closed projection should not re-render")
	}
}
