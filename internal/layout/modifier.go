package layout

import (
	"fmt"
	"math"
)

// Modifier wraps a node to rewrite what flows through it. In a chain
// [m0, m1, ...] m0 is outermost: it receives the parent's constraints and
// reports the size the parent sees.
type Modifier interface {
	// ModifyConstraints returns the constraints for the wrapped content.
	ModifyConstraints(d Density, c Constraints) Constraints

	// ModifySize returns this layer's size given the incoming constraints
	// and the wrapped content's size.
	ModifySize(d Density, c Constraints, childSize Size) Size

	// ModifyPosition returns the wrapped content's offset within this
	// layer.
	ModifyPosition(d Density, childSize, containerSize Size) Position

	// ModifyAlignmentLine rewrites a line the content publishes. value is
	// already offset into this layer's coordinates. Returning false drops
	// the line.
	ModifyAlignmentLine(line *AlignmentLine, value Px) (Px, bool)

	// ModifyParentData rewrites the data the node's parent reads.
	ModifyParentData(data any) any

	MinIntrinsicWidthOf(d Density, m IntrinsicMeasurable, height Px) Px
	MaxIntrinsicWidthOf(d Density, m IntrinsicMeasurable, height Px) Px
	MinIntrinsicHeightOf(d Density, m IntrinsicMeasurable, width Px) Px
	MaxIntrinsicHeightOf(d Density, m IntrinsicMeasurable, width Px) Px
}

// BaseModifier passes everything through unchanged. Embed it to override
// only the hooks a modifier needs.
type BaseModifier struct{}

func (BaseModifier) ModifyConstraints(_ Density, c Constraints) Constraints { return c }

func (BaseModifier) ModifySize(_ Density, _ Constraints, childSize Size) Size { return childSize }

func (BaseModifier) ModifyPosition(Density, Size, Size) Position { return Position{} }

func (BaseModifier) ModifyAlignmentLine(_ *AlignmentLine, value Px) (Px, bool) { return value, true }

func (BaseModifier) ModifyParentData(data any) any { return data }

func (BaseModifier) MinIntrinsicWidthOf(_ Density, m IntrinsicMeasurable, height Px) Px {
	return m.MinIntrinsicWidth(height)
}

func (BaseModifier) MaxIntrinsicWidthOf(_ Density, m IntrinsicMeasurable, height Px) Px {
	return m.MaxIntrinsicWidth(height)
}

func (BaseModifier) MinIntrinsicHeightOf(_ Density, m IntrinsicMeasurable, width Px) Px {
	return m.MinIntrinsicHeight(width)
}

func (BaseModifier) MaxIntrinsicHeightOf(_ Density, m IntrinsicMeasurable, width Px) Px {
	return m.MaxIntrinsicHeight(width)
}

// Padding insets the content by the given lengths.
func Padding(insets Insets) Modifier {
	return paddingModifier{insets: insets}
}

type paddingModifier struct {
	BaseModifier
	insets Insets
}

func (m paddingModifier) ModifyConstraints(d Density, c Constraints) Constraints {
	return c.Offset(-m.insets.Horizontal(d), -m.insets.Vertical(d))
}

func (m paddingModifier) ModifySize(d Density, c Constraints, childSize Size) Size {
	return c.Constrain(Size{
		Width:  childSize.Width.Add(m.insets.Horizontal(d)),
		Height: childSize.Height.Add(m.insets.Vertical(d)),
	})
}

func (m paddingModifier) ModifyPosition(d Density, _, _ Size) Position {
	top, _, _, left := m.insets.Resolve(d)
	return Position{X: left, Y: top}
}

func (m paddingModifier) MinIntrinsicWidthOf(d Density, c IntrinsicMeasurable, height Px) Px {
	return c.MinIntrinsicWidth(height.Sub(m.insets.Vertical(d)).CoerceAtLeast(0)).Add(m.insets.Horizontal(d))
}

func (m paddingModifier) MaxIntrinsicWidthOf(d Density, c IntrinsicMeasurable, height Px) Px {
	return c.MaxIntrinsicWidth(height.Sub(m.insets.Vertical(d)).CoerceAtLeast(0)).Add(m.insets.Horizontal(d))
}

func (m paddingModifier) MinIntrinsicHeightOf(d Density, c IntrinsicMeasurable, width Px) Px {
	return c.MinIntrinsicHeight(width.Sub(m.insets.Horizontal(d)).CoerceAtLeast(0)).Add(m.insets.Vertical(d))
}

func (m paddingModifier) MaxIntrinsicHeightOf(d Density, c IntrinsicMeasurable, width Px) Px {
	return c.MaxIntrinsicHeight(width.Sub(m.insets.Horizontal(d)).CoerceAtLeast(0)).Add(m.insets.Vertical(d))
}

// AspectRatio sizes the content to width/height == ratio. It requests the
// first feasible non-empty size among: the maximum width, the maximum
// height, the minimum width and the minimum height. When none fits it
// passes the constraints through unchanged.
func AspectRatio(ratio float64) (Modifier, error) {
	if ratio <= 0 || math.IsInf(ratio, 0) || math.IsNaN(ratio) {
		return nil, fmt.Errorf("%w: aspect ratio %v must be positive and finite", ErrInvalidModifier, ratio)
	}
	return aspectRatioModifier{ratio: ratio}, nil
}

type aspectRatioModifier struct {
	BaseModifier
	ratio float64
}

func (m aspectRatioModifier) ModifyConstraints(_ Density, c Constraints) Constraints {
	if size, ok := m.findSize(c); ok {
		return Tight(size.Width, size.Height)
	}
	return c
}

func (m aspectRatioModifier) ModifySize(_ Density, c Constraints, childSize Size) Size {
	return c.Constrain(childSize)
}

func (m aspectRatioModifier) findSize(c Constraints) (Size, bool) {
	candidates := []Size{
		{Width: c.MaxWidth, Height: c.MaxWidth.Div(m.ratio)},
		{Width: c.MaxHeight.Scale(m.ratio), Height: c.MaxHeight},
		{Width: c.MinWidth, Height: c.MinWidth.Div(m.ratio)},
		{Width: c.MinHeight.Scale(m.ratio), Height: c.MinHeight},
	}
	for _, s := range candidates {
		if s.Width.IsFinite() && s.Height.IsFinite() && !s.IsEmpty() && c.SatisfiedBy(s) {
			return s, true
		}
	}
	return Size{}, false
}

func (m aspectRatioModifier) MinIntrinsicWidthOf(_ Density, c IntrinsicMeasurable, height Px) Px {
	if height.IsFinite() {
		return height.Scale(m.ratio)
	}
	return c.MinIntrinsicWidth(height)
}

func (m aspectRatioModifier) MaxIntrinsicWidthOf(_ Density, c IntrinsicMeasurable, height Px) Px {
	if height.IsFinite() {
		return height.Scale(m.ratio)
	}
	return c.MaxIntrinsicWidth(height)
}

func (m aspectRatioModifier) MinIntrinsicHeightOf(_ Density, c IntrinsicMeasurable, width Px) Px {
	if width.IsFinite() {
		return width.Div(m.ratio)
	}
	return c.MinIntrinsicHeight(width)
}

func (m aspectRatioModifier) MaxIntrinsicHeightOf(_ Density, c IntrinsicMeasurable, width Px) Px {
	if width.IsFinite() {
		return width.Div(m.ratio)
	}
	return c.MaxIntrinsicHeight(width)
}

// SizeOverride requests a fixed size, coerced into the incoming
// constraints. An infinite length leaves that axis unconstrained.
func SizeOverride(width, height Length) Modifier {
	return sizeModifier{width: &width, height: &height}
}

// Width requests a fixed width, coerced into the incoming constraints.
func Width(width Length) Modifier {
	return sizeModifier{width: &width}
}

// Height requests a fixed height, coerced into the incoming constraints.
func Height(height Length) Modifier {
	return sizeModifier{height: &height}
}

type sizeModifier struct {
	BaseModifier
	width, height *Length
}

func (m sizeModifier) ModifyConstraints(d Density, c Constraints) Constraints {
	if m.width != nil && m.width.IsFinite() {
		w := m.width.Resolve(d).Clamp(c.MinWidth, c.MaxWidth)
		c.MinWidth, c.MaxWidth = w, w
	}
	if m.height != nil && m.height.IsFinite() {
		h := m.height.Resolve(d).Clamp(c.MinHeight, c.MaxHeight)
		c.MinHeight, c.MaxHeight = h, h
	}
	return c
}

func (m sizeModifier) ModifySize(_ Density, c Constraints, childSize Size) Size {
	return c.Constrain(childSize)
}

func (m sizeModifier) MinIntrinsicWidthOf(d Density, c IntrinsicMeasurable, height Px) Px {
	if m.width != nil && m.width.IsFinite() {
		return m.width.Resolve(d).CoerceAtLeast(0)
	}
	return c.MinIntrinsicWidth(height)
}

func (m sizeModifier) MaxIntrinsicWidthOf(d Density, c IntrinsicMeasurable, height Px) Px {
	if m.width != nil && m.width.IsFinite() {
		return m.width.Resolve(d).CoerceAtLeast(0)
	}
	return c.MaxIntrinsicWidth(height)
}

func (m sizeModifier) MinIntrinsicHeightOf(d Density, c IntrinsicMeasurable, width Px) Px {
	if m.height != nil && m.height.IsFinite() {
		return m.height.Resolve(d).CoerceAtLeast(0)
	}
	return c.MinIntrinsicHeight(width)
}

func (m sizeModifier) MaxIntrinsicHeightOf(d Density, c IntrinsicMeasurable, width Px) Px {
	if m.height != nil && m.height.IsFinite() {
		return m.height.Resolve(d).CoerceAtLeast(0)
	}
	return c.MaxIntrinsicHeight(width)
}
