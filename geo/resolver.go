package geo

import (
	"math"
	"math/big"
)

// System selects the active coordinate encoding
type System uint8

const (
	// SystemLinear derives both axes from waat alone; always resolvable
	SystemLinear System = iota

	// SystemGeodesic uses the meridian table plus the optional hecke
	// pair; sectors without hecke stay pending
	SystemGeodesic
)

func (s System) String() string {
	if s == SystemGeodesic {
		return "geodesic"
	}
	return "linear"
}

// Hecke is the richer coordinate encoding, resolved externally.
// Both components are arbitrary precision; fixed-width types silently
// truncate at realistic magnitudes.
type Hecke struct {
	Lat *big.Int
	Lon *big.Int
}

// Position is a resolved ground location in degrees.
// Meridian is diagnostic: the band index the waat landed in.
type Position struct {
	Lat      float64
	Lon      float64
	Meridian int
	Pending  bool
}

var (
	bigLatRange = big.NewInt(180)
	bigLonRange = big.NewInt(360)
)

// Resolve converts a sector's raw coordinates under the given system.
// Geodesic resolution of a sector with no hecke pair reports Pending;
// the caller substitutes a placeholder position.
func Resolve(waat *big.Int, hecke *Hecke, sys System) Position {
	if sys == SystemLinear {
		return Linear(waat)
	}
	return Geodesic(waat, hecke)
}

// Linear maps waat onto a 180x360 degree grid with floor division:
// lat = (waat mod 180) - 90, lon = ((waat / 180) mod 360) - 180.
func Linear(waat *big.Int) Position {
	lat := new(big.Int).Mod(waat, bigLatRange)
	lon := new(big.Int).Div(waat, bigLatRange)
	lon.Mod(lon, bigLonRange)

	return Position{
		Lat:      float64(lat.Int64()) - 90,
		Lon:      float64(lon.Int64()) - 180,
		Meridian: Meridian(waat),
	}
}

// Geodesic resolves the meridian band of waat and places the sector
// within it using the hecke pair.
//
// The final band doubles as a mirrored hemisphere: a waat at band 89
// with positive hecke latitude is re-resolved on threshold[89]-waat and
// the resulting latitude negated. The branch conditions are a faithful
// behavioral target for a wraparound the table does not cover natively;
// do not "fix" them near the boundary.
func Geodesic(waat *big.Int, hecke *Hecke) Position {
	if hecke == nil || hecke.Lat == nil || hecke.Lon == nil {
		return Position{Pending: true, Meridian: Meridian(waat)}
	}

	idx := Meridian(waat)
	flip := false
	eff := waat

	if idx == MeridianBands-1 && hecke.Lat.Sign() > 0 {
		flip = true
		eff = new(big.Int).Sub(thresholds[MeridianBands-1], waat)
		idx = Meridian(eff)
	}

	start, end := bandBounds(idx)

	var frac float64
	if flip {
		// 2*(eff-start)/(end-start) - 1
		num := new(big.Int).Sub(eff, start)
		den := new(big.Int).Sub(end, start)
		frac = 2*ratio(num, den) - 1
	} else {
		half := new(big.Int).Sub(end, start)
		half.Quo(half, big.NewInt(2))
		frac = ratio(hecke.Lon, half)
	}
	frac = clamp(frac, -1, 1)

	lon := float64(idx)*4 + frac*2
	for lon > 180 {
		lon -= 360
	}
	for lon <= -180 {
		lon += 360
	}

	lat := ratio(hecke.Lat, ScaleLat) * 90
	if flip {
		lat = -lat
	}
	lat = clamp(lat, -90, 90)

	return Position{Lat: lat, Lon: lon, Meridian: idx}
}

// ratio returns num/den as float64, with non-finite or undefined
// results normalized to 0.
func ratio(num, den *big.Int) float64 {
	if den.Sign() == 0 {
		return 0
	}
	f, _ := new(big.Rat).SetFrac(num, den).Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
