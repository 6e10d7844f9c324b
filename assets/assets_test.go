package assets_test

import (
	"testing"

	"vecerka/assets"
	"vecerka/internal/gamemap"
	"vecerka/internal/item"
)

func TestItemLegendResolvesInCatalog(t *testing.T) {
	c, err := item.ParseCatalog(assets.ItemsYAML)
	if err != nil {
		t.Fatalf("embedded catalog: %v", err)
	}
	for r, name := range assets.ItemLegend {
		if _, err := c.Lookup(name); err != nil {
			t.Errorf("legend %q: %v", r, err)
		}
	}
}

func TestLegendRunesDoNotClash(t *testing.T) {
	for r := range assets.Props {
		if _, dup := assets.ItemLegend[r]; dup {
			t.Errorf("rune %q is both a prop and an item", r)
		}
		if r == '#' || r == '.' || r == '@' {
			t.Errorf("prop rune %q clashes with layout structure", r)
		}
	}
}

func TestShopLayoutParses(t *testing.T) {
	l, err := gamemap.Parse(assets.ShopLayout, func(r rune) bool {
		_, prop := assets.Props[r]
		_, good := assets.ItemLegend[r]
		return prop || good
	})
	if err != nil {
		t.Fatalf("shop layout: %v", err)
	}
	if len(l.Placements) != len(assets.ItemLegend)+4 {
		t.Errorf("placements = %d; want every good plus door, two fridges and the stall", len(l.Placements))
	}
}
