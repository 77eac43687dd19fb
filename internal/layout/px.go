package layout

import (
	"math"
	"strconv"
)

// Px is an integral device-pixel length.
//
// Infinity is a sentinel meaning "unbounded". Adding Infinity yields
// Infinity, and Infinity compares greater than every finite value.
type Px int

// Infinity represents an unbounded pixel length.
const Infinity Px = math.MaxInt32

// IsFinite reports whether p is not Infinity.
func (p Px) IsFinite() bool {
	return p < Infinity
}

// Add returns p + other, keeping Infinity.
func (p Px) Add(other Px) Px {
	if !p.IsFinite() || !other.IsFinite() {
		return Infinity
	}
	return saturate(int64(p) + int64(other))
}

// Sub returns p - other. Infinity minus anything stays Infinity; a finite
// value minus Infinity saturates at -Infinity.
func (p Px) Sub(other Px) Px {
	if !p.IsFinite() {
		return Infinity
	}
	if !other.IsFinite() {
		return -Infinity
	}
	return saturate(int64(p) - int64(other))
}

// Scale multiplies p by f and rounds to the nearest pixel.
func (p Px) Scale(f float64) Px {
	if !p.IsFinite() {
		return Infinity
	}
	return roundPx(float64(p) * f)
}

// Div divides p by n and rounds to the nearest pixel.
func (p Px) Div(n float64) Px {
	if n == 0 {
		return Infinity
	}
	return p.Scale(1 / n)
}

// Clamp restricts p to [lo, hi]. If lo > hi, lo wins.
func (p Px) Clamp(lo, hi Px) Px {
	if p > hi {
		p = hi
	}
	if p < lo {
		p = lo
	}
	return p
}

// CoerceAtLeast returns p, or lo if p is smaller.
func (p Px) CoerceAtLeast(lo Px) Px {
	if p < lo {
		return lo
	}
	return p
}

// CoerceAtMost returns p, or hi if p is larger.
func (p Px) CoerceAtMost(hi Px) Px {
	if p > hi {
		return hi
	}
	return p
}

func (p Px) String() string {
	if !p.IsFinite() {
		return "inf"
	}
	return strconv.Itoa(int(p)) + "px"
}

// MinPx returns the smaller of a and b. Any value is smaller than Infinity.
func MinPx(a, b Px) Px {
	if a < b {
		return a
	}
	return b
}

// MaxPx returns the larger of a and b.
func MaxPx(a, b Px) Px {
	if a > b {
		return a
	}
	return b
}

func saturate(v int64) Px {
	if v >= int64(Infinity) {
		return Infinity
	}
	if v <= -int64(Infinity) {
		return -Infinity
	}
	return Px(v)
}

// roundPx rounds v to the nearest pixel, saturating at Infinity.
func roundPx(v float64) Px {
	v = math.Round(v)
	if math.IsNaN(v) || v >= float64(Infinity) {
		return Infinity
	}
	if v <= -float64(Infinity) {
		return -Infinity
	}
	return Px(v)
}
