package catalog

import (
	_ "embed"
	"fmt"
)

//go:embed source.json
var embeddedSource []byte

// Embedded returns the catalog compiled into the binary. It is the
// fallback when no catalog file is configured.
func Embedded() (Catalog, error) {
	cat, err := Load(embeddedSource)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return cat, nil
}
