package item

import (
	"strings"
	"testing"

	"vecerka/assets"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := ParseCatalog(assets.ItemsYAML)
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("expected items in default catalog")
	}
	for _, name := range assets.ItemLegend {
		if _, err := c.Lookup(name); err != nil {
			t.Errorf("legend item %q missing from catalog: %v", name, err)
		}
	}
}

func TestLookupSharesPointer(t *testing.T) {
	c, err := ParseCatalog([]byte("items:\n  - name: Pivo\n    icon: P\n"))
	if err != nil {
		t.Fatal(err)
	}
	a, _ := c.Lookup("pivo")
	b, _ := c.Lookup("  PIVO ")
	if a == nil || a != b {
		t.Fatalf("expected the same *Item for both lookups, got %p and %p", a, b)
	}
}

func TestLoadCatalogRejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"empty name", "items:\n  - name: \"\"\n", "empty name"},
		{"duplicate name", "items:\n  - name: Milk\n  - name: milk\n", "duplicate"},
		{"unknown field", "items:\n  - name: Milk\n    price: 3\n", "decode catalog"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLookupSuggestsNearMatch(t *testing.T) {
	c, err := ParseCatalog([]byte("items:\n  - name: Newspaper\n  - name: Milk\n"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Lookup("Newspapr")
	if err == nil || !strings.Contains(err.Error(), `did you mean "Newspaper"`) {
		t.Fatalf("expected suggestion, got %v", err)
	}
	_, err = c.Lookup("Tractor")
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("expected plain miss, got %v", err)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	c, _ := ParseCatalog([]byte("items:\n  - name: A1\n  - name: B2\n"))
	items := c.Items()
	items[0] = nil
	if c.Items()[0] == nil {
		t.Fatal("mutating Items() result changed the catalog")
	}
}
