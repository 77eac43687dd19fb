package layout

import "fmt"

// Constraints bound the size a node may take. Each axis satisfies
// 0 <= min <= max; a max of Infinity means the axis is unbounded.
type Constraints struct {
	MinWidth, MaxWidth   Px
	MinHeight, MaxHeight Px
}

// NewConstraints builds validated constraints.
func NewConstraints(minWidth, maxWidth, minHeight, maxHeight Px) (Constraints, error) {
	c := Constraints{MinWidth: minWidth, MaxWidth: maxWidth, MinHeight: minHeight, MaxHeight: maxHeight}
	if err := c.Validate(); err != nil {
		return Constraints{}, err
	}
	return c, nil
}

// Tight returns constraints that admit exactly one size.
func Tight(width, height Px) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width, MinHeight: height, MaxHeight: height}
}

// TightWidth fixes the width and leaves the height unbounded.
func TightWidth(width Px) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width, MaxHeight: Infinity}
}

// TightHeight fixes the height and leaves the width unbounded.
func TightHeight(height Px) Constraints {
	return Constraints{MaxWidth: Infinity, MinHeight: height, MaxHeight: height}
}

// Loose returns constraints from zero up to the given size.
func Loose(width, height Px) Constraints {
	return Constraints{MaxWidth: width, MaxHeight: height}
}

// Unbounded returns constraints that admit any size.
func Unbounded() Constraints {
	return Constraints{MaxWidth: Infinity, MaxHeight: Infinity}
}

// Validate reports whether both axes satisfy 0 <= min <= max and the
// minima are finite.
func (c Constraints) Validate() error {
	if c.MinWidth < 0 || c.MinHeight < 0 {
		return fmt.Errorf("%w: negative minimum in %s", ErrInvalidConstraints, c)
	}
	if !c.MinWidth.IsFinite() || !c.MinHeight.IsFinite() {
		return fmt.Errorf("%w: infinite minimum in %s", ErrInvalidConstraints, c)
	}
	if c.MinWidth > c.MaxWidth || c.MinHeight > c.MaxHeight {
		return fmt.Errorf("%w: minimum exceeds maximum in %s", ErrInvalidConstraints, c)
	}
	return nil
}

// Loosen drops both minima to zero.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// LoosenWidth drops the width minimum to zero.
func (c Constraints) LoosenWidth() Constraints {
	c.MinWidth = 0
	return c
}

// LoosenHeight drops the height minimum to zero.
func (c Constraints) LoosenHeight() Constraints {
	c.MinHeight = 0
	return c
}

// Intersect returns the constraints satisfied by both c and other: the
// larger of the minima and the smaller of the maxima.
func (c Constraints) Intersect(other Constraints) (Constraints, error) {
	return NewConstraints(
		MaxPx(c.MinWidth, other.MinWidth),
		MinPx(c.MaxWidth, other.MaxWidth),
		MaxPx(c.MinHeight, other.MinHeight),
		MinPx(c.MaxHeight, other.MaxHeight),
	)
}

// Offset shifts all four bounds by dx horizontally and dy vertically,
// clamping at zero. Infinite maxima stay infinite.
func (c Constraints) Offset(dx, dy Px) Constraints {
	return Constraints{
		MinWidth:  c.MinWidth.Add(dx).CoerceAtLeast(0),
		MaxWidth:  c.MaxWidth.Add(dx).CoerceAtLeast(0),
		MinHeight: c.MinHeight.Add(dy).CoerceAtLeast(0),
		MaxHeight: c.MaxHeight.Add(dy).CoerceAtLeast(0),
	}
}

// SatisfiedBy reports whether size lies within the constraints.
func (c Constraints) SatisfiedBy(size Size) bool {
	return size.Width >= c.MinWidth && size.Width <= c.MaxWidth &&
		size.Height >= c.MinHeight && size.Height <= c.MaxHeight
}

// Constrain clamps size into the constraints. A satisfying size is
// returned unchanged.
func (c Constraints) Constrain(size Size) Size {
	return Size{
		Width:  size.Width.Clamp(c.MinWidth, c.MaxWidth),
		Height: size.Height.Clamp(c.MinHeight, c.MaxHeight),
	}
}

// HasBoundedWidth reports whether the width maximum is finite.
func (c Constraints) HasBoundedWidth() bool { return c.MaxWidth.IsFinite() }

// HasBoundedHeight reports whether the height maximum is finite.
func (c Constraints) HasBoundedHeight() bool { return c.MaxHeight.IsFinite() }

// HasFixedWidth reports whether exactly one width is allowed.
func (c Constraints) HasFixedWidth() bool { return c.MinWidth == c.MaxWidth }

// HasFixedHeight reports whether exactly one height is allowed.
func (c Constraints) HasFixedHeight() bool { return c.MinHeight == c.MaxHeight }

// IsTight reports whether both axes are fixed.
func (c Constraints) IsTight() bool { return c.HasFixedWidth() && c.HasFixedHeight() }

// Smallest returns the smallest size allowed.
func (c Constraints) Smallest() Size {
	return Size{Width: c.MinWidth, Height: c.MinHeight}
}

func (c Constraints) String() string {
	return fmt.Sprintf("w[%s..%s] h[%s..%s]", c.MinWidth, c.MaxWidth, c.MinHeight, c.MaxHeight)
}
