package resolve

import (
	"context"
	"fmt"
	"math/big"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/sector-atlas/geo"
)

// TableProvider serves resolutions from a local TOML table of
// waat -> (lat, lon) entries. Stands in for the live contract query in
// offline use and in tests.
type TableProvider struct {
	entries map[string]tableEntry
}

type tableEntry struct {
	Lat string `toml:"lat"`
	Lon string `toml:"lon"`
}

type tableDoc struct {
	Entries map[string]tableEntry `toml:"coordinates"`
}

// LoadTable reads a resolution table file
func LoadTable(path string) (*TableProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resolution table: %w", err)
	}

	var doc tableDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse resolution table %s: %w", path, err)
	}
	return &TableProvider{entries: doc.Entries}, nil
}

// Resolve looks up the waat; a missing entry is a per-sector failure
func (t *TableProvider) Resolve(_ context.Context, waat string) (*big.Int, *big.Int, error) {
	e, ok := t.entries[waat]
	if !ok {
		return nil, nil, fmt.Errorf("no resolution for waat %s", waat)
	}
	return geo.ParseBig(e.Lat), geo.ParseBig(e.Lon), nil
}
