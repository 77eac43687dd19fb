package layout

import (
	"fmt"
	"math"
	"strconv"
)

// Unit specifies how a Length is interpreted.
type Unit uint8

const (
	UnitDp Unit = iota // Density-independent pixels, scaled by Density
	UnitPx             // Device pixels
)

func (u Unit) String() string {
	switch u {
	case UnitDp:
		return "dp"
	case UnitPx:
		return "px"
	default:
		return "unit(" + strconv.Itoa(int(u)) + ")"
	}
}

// Length is a scalar tagged with its unit. Arithmetic and comparison
// between lengths of different units is an error.
type Length struct {
	Amount float64
	Unit   Unit
}

// Dp returns a density-independent length.
func Dp(v float64) Length {
	return Length{Amount: v, Unit: UnitDp}
}

// PxLength returns a device-pixel length.
func PxLength(v float64) Length {
	return Length{Amount: v, Unit: UnitPx}
}

// InfiniteDp is an unbounded density-independent length.
var InfiniteDp = Dp(math.Inf(1))

// Density is the conversion context from Dp to Px. It is supplied to each
// layout pass rather than read from global state.
type Density struct {
	Density   float64 // pixels per dp
	FontScale float64 // multiplier applied to font-relative lengths
}

// DefaultDensity maps one dp to one pixel.
var DefaultDensity = Density{Density: 1, FontScale: 1}

// Validate reports whether the density can convert lengths.
func (d Density) Validate() error {
	if d.Density <= 0 || math.IsInf(d.Density, 0) || math.IsNaN(d.Density) {
		return fmt.Errorf("density %v must be positive and finite", d.Density)
	}
	if d.FontScale <= 0 || math.IsInf(d.FontScale, 0) || math.IsNaN(d.FontScale) {
		return fmt.Errorf("font scale %v must be positive and finite", d.FontScale)
	}
	return nil
}

// ToDp converts a pixel length back to dp.
func (d Density) ToDp(p Px) Length {
	if !p.IsFinite() {
		return InfiniteDp
	}
	return Dp(float64(p) / d.Density)
}

// Resolve converts l to device pixels, rounding to the nearest pixel.
// Infinite lengths resolve to Infinity.
func (l Length) Resolve(d Density) Px {
	if !l.IsFinite() {
		if l.Amount < 0 {
			return -Infinity
		}
		return Infinity
	}
	v := l.Amount
	if l.Unit == UnitDp {
		v *= d.Density
	}
	v = math.Round(v)
	if v >= float64(Infinity) {
		return Infinity
	}
	if v <= -float64(Infinity) {
		return -Infinity
	}
	return Px(v)
}

// IsFinite reports whether the amount is a finite number.
func (l Length) IsFinite() bool {
	return !math.IsInf(l.Amount, 0) && !math.IsNaN(l.Amount)
}

// IsZero reports whether the amount is zero.
func (l Length) IsZero() bool {
	return l.Amount == 0
}

// Add returns l + other. Both must share a unit.
func (l Length) Add(other Length) (Length, error) {
	if l.Unit != other.Unit {
		return Length{}, mismatch(l, other)
	}
	return Length{Amount: l.Amount + other.Amount, Unit: l.Unit}, nil
}

// Sub returns l - other. Both must share a unit.
func (l Length) Sub(other Length) (Length, error) {
	if l.Unit != other.Unit {
		return Length{}, mismatch(l, other)
	}
	return Length{Amount: l.Amount - other.Amount, Unit: l.Unit}, nil
}

// Scale multiplies the amount by f.
func (l Length) Scale(f float64) Length {
	return Length{Amount: l.Amount * f, Unit: l.Unit}
}

// Compare returns -1, 0 or 1 as l is less than, equal to or greater than
// other. Both must share a unit.
func (l Length) Compare(other Length) (int, error) {
	if l.Unit != other.Unit {
		return 0, mismatch(l, other)
	}
	switch {
	case l.Amount < other.Amount:
		return -1, nil
	case l.Amount > other.Amount:
		return 1, nil
	default:
		return 0, nil
	}
}

// MinLength returns the smaller of a and b.
func MinLength(a, b Length) (Length, error) {
	c, err := a.Compare(b)
	if err != nil {
		return Length{}, err
	}
	if c <= 0 {
		return a, nil
	}
	return b, nil
}

// MaxLength returns the larger of a and b.
func MaxLength(a, b Length) (Length, error) {
	c, err := a.Compare(b)
	if err != nil {
		return Length{}, err
	}
	if c >= 0 {
		return a, nil
	}
	return b, nil
}

func (l Length) String() string {
	if math.IsInf(l.Amount, 1) {
		return "inf" + l.Unit.String()
	}
	return strconv.FormatFloat(l.Amount, 'g', -1, 64) + l.Unit.String()
}

func mismatch(a, b Length) error {
	return fmt.Errorf("%w: %s and %s", ErrUnitMismatch, a, b)
}
