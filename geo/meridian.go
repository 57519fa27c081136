package geo

import "math/big"

// MeridianBands is the number of fixed waat ranges partitioning the
// coordinate space. Band index maps to longitude in 4-degree steps.
const MeridianBands = 90

// thresholds is the ascending meridian table. Band widths grow
// geometrically by 6/5 from a 10^66 base, spanning the full waat space
// up to ~1.1e73. The table is fixed at init and never mutated.
var thresholds [MeridianBands]*big.Int

// ScaleLat is the full-scale magnitude of a hecke latitude: 1.2e72.
// Latitude degrees are hecke.lat / ScaleLat * 90.
var ScaleLat = new(big.Int).Mul(big.NewInt(12), pow10(71))

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func init() {
	six := big.NewInt(6)
	five := big.NewInt(5)

	t := pow10(66)
	for i := 0; i < MeridianBands; i++ {
		thresholds[i] = new(big.Int).Set(t)
		t.Mul(t, six)
		t.Quo(t, five)
	}
}

// Meridian returns the index of the first threshold >= waat. Values
// beyond the last threshold collapse into the final (polar) band.
func Meridian(waat *big.Int) int {
	lo, hi := 0, MeridianBands-1
	if waat.Cmp(thresholds[hi]) > 0 {
		return hi
	}
	for lo < hi {
		mid := (lo + hi) / 2
		if thresholds[mid].Cmp(waat) >= 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// bandBounds returns the waat range covered by a meridian band.
// The first band starts at zero.
func bandBounds(idx int) (start, end *big.Int) {
	if idx > 0 {
		start = thresholds[idx-1]
	} else {
		start = big.NewInt(0)
	}
	return start, thresholds[idx]
}

// LastThreshold exposes the top of the meridian table (the flip-case
// mirror point) without allowing mutation.
func LastThreshold() *big.Int {
	return new(big.Int).Set(thresholds[MeridianBands-1])
}
