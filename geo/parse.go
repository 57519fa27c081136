package geo

import "math/big"

// ParseBig parses a decimal big-integer string. Malformed values
// resolve to zero at this boundary rather than propagating; the sector
// still renders, at a degenerate but valid position.
func ParseBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return big.NewInt(0)
	}
	return v
}

// ParseHecke builds a Hecke pair from decimal strings. Nil is returned
// only when both components are absent; malformed components default
// to zero like ParseBig.
func ParseHecke(lat, lon string) *Hecke {
	if lat == "" && lon == "" {
		return nil
	}
	return &Hecke{Lat: ParseBig(lat), Lon: ParseBig(lon)}
}
