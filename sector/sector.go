package sector

// Sector is an addressable entity placed in the coordinate space.
// Owned by the host application; read-only to the map core except for
// persisting newly resolved hecke pairs.
type Sector struct {
	Address  string `toml:"address"`
	Name     string `toml:"name"`
	Symbol   string `toml:"symbol"`
	IsSystem bool   `toml:"is_system"`

	// Waat is the canonical coordinate key, a decimal big integer
	Waat string `toml:"waat"`

	// Hecke is the optional geodesic encoding; nil until resolved
	Hecke *HeckePair `toml:"hecke,omitempty"`
}

// HeckePair carries the decimal big-integer geodesic components
type HeckePair struct {
	Lat string `toml:"lat"`
	Lon string `toml:"lon"`
}

// Resolved reports whether the sector carries a geodesic encoding
func (s *Sector) Resolved() bool {
	return s.Hecke != nil
}

// Store supplies the sector dataset and persists resolution results.
// Save is an idempotent upsert keyed by Address.
type Store interface {
	GetAll() ([]Sector, error)
	Save(Sector) error
}
