// Package item holds the shop's goods and the catalog they are loaded from.
package item

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

// Item is one catalog entry. Items are shared by pointer: every pickup of the
// same entry refers to the same *Item.
type Item struct {
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	Stackable   bool   `yaml:"stackable"`
	Description string `yaml:"description"`
}

// Use logs the use of the item. Goods have no further effect.
func (i *Item) Use(logger *slog.Logger) {
	logger.Info("using item", "item", i.Name)
}

func (i *Item) String() string {
	if i == nil {
		return "<nil>"
	}
	return i.Name
}

// Catalog is the ordered, read-only set of items known to the game.
type Catalog struct {
	items  []*Item
	byName map[string]*Item
}

type catalogFile struct {
	Items []Item `yaml:"items"`
}

// LoadCatalog parses a YAML catalog. Names must be non-empty and unique
// (case-insensitive).
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c := &Catalog{byName: make(map[string]*Item, len(f.Items))}
	for i := range f.Items {
		it := f.Items[i]
		key := normalize(it.Name)
		if key == "" {
			return nil, fmt.Errorf("catalog entry %d: empty name", i)
		}
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate name %q", i, it.Name)
		}
		p := &it
		c.items = append(c.items, p)
		c.byName[key] = p
	}
	return c, nil
}

// ParseCatalog is LoadCatalog over an in-memory document.
func ParseCatalog(data []byte) (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(data))
}

// Items returns the catalog entries in file order.
func (c *Catalog) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.items) }

// Lookup finds an item by name, ignoring case and surrounding space.
// A miss names the closest entry when one is near enough to be a typo.
func (c *Catalog) Lookup(name string) (*Item, error) {
	key := normalize(name)
	if it, ok := c.byName[key]; ok {
		return it, nil
	}
	if s := c.suggest(key); s != "" {
		return nil, fmt.Errorf("unknown item %q (did you mean %q?)", name, s)
	}
	return nil, fmt.Errorf("unknown item %q", name)
}

func (c *Catalog) suggest(key string) string {
	best, bestDist := "", -1
	for _, it := range c.items {
		cand := normalize(it.Name)
		dist := levenshtein.ComputeDistance(key, cand)
		if dist > suggestLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = it.Name, dist
		}
	}
	return best
}

// suggestLimit scales the accepted edit distance with the name length so
// short names do not match everything.
func suggestLimit(length int) int {
	switch {
	case length <= 3:
		return 0
	case length <= 6:
		return 1
	default:
		return 2
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
