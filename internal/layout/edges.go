package layout

// Insets represents lengths for four sides of a box.
type Insets struct {
	Top, Right, Bottom, Left Length
}

// EdgeAll creates Insets with the same value on all sides.
func EdgeAll(v Length) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeSymmetric creates Insets with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h Length) Insets {
	return Insets{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Insets following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l Length) Insets {
	return Insets{Top: t, Right: r, Bottom: b, Left: l}
}

// Resolve converts the insets to pixels. Negative values are clamped to zero.
func (e Insets) Resolve(d Density) (top, right, bottom, left Px) {
	return e.Top.Resolve(d).CoerceAtLeast(0),
		e.Right.Resolve(d).CoerceAtLeast(0),
		e.Bottom.Resolve(d).CoerceAtLeast(0),
		e.Left.Resolve(d).CoerceAtLeast(0)
}

// Horizontal returns the sum of Left and Right in pixels.
func (e Insets) Horizontal(d Density) Px {
	_, r, _, l := e.Resolve(d)
	return l.Add(r)
}

// Vertical returns the sum of Top and Bottom in pixels.
func (e Insets) Vertical(d Density) Px {
	t, _, b, _ := e.Resolve(d)
	return t.Add(b)
}

// IsZero returns true if all edge values are zero.
func (e Insets) IsZero() bool {
	return e.Top.IsZero() && e.Right.IsZero() && e.Bottom.IsZero() && e.Left.IsZero()
}
