package game

import (
	"fmt"
	"os"

	"vecerka/assets"
	"vecerka/internal/item"
)

// LoadCatalog reads the goods catalog from path, or the embedded one when
// path is empty.
func LoadCatalog(path string) (*item.Catalog, error) {
	if path == "" {
		return item.ParseCatalog(assets.ItemsYAML)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	c, err := item.LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}
