package assets

import _ "embed"

// ItemsYAML is the default item catalog, parsed by item.LoadCatalog.
//
//go:embed items.yaml
var ItemsYAML []byte
