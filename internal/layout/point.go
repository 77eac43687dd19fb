package layout

import "fmt"

// Position is an (X, Y) offset in pixels.
type Position struct {
	X, Y Px
}

// Add returns a new Position offset by other.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Position with other subtracted.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// In returns true if the position is inside the given rectangle.
func (p Position) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", int(p.X), int(p.Y))
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height Px
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Sub returns the per-axis difference s - other.
func (s Size) Sub(other Size) Size {
	return Size{Width: s.Width.Sub(other.Width), Height: s.Height.Sub(other.Height)}
}

func (s Size) String() string {
	return fmt.Sprintf("%s x %s", s.Width, s.Height)
}
