package layout

// Stack returns a strategy that draws children on top of each other.
//
// Aligned children are measured first under loosened constraints and the
// stack takes the size of the largest (at least the incoming minimum).
// Positioned children are then measured against the stack's size using
// their insets and placed relative to its edges. alignment applies to
// children without StackData.
func Stack(alignment Alignment) Strategy {
	return NewStrategy("Stack", func(s *MeasureScope, children []Measurable, c Constraints) LayoutResult {
		loose := c.Loosen()
		width, height := c.MinWidth, c.MinHeight
		placeables := make([]Placeable, len(children))
		data := make([]*StackData, len(children))

		// 1. Aligned children size the stack
		for i, child := range children {
			data[i] = ChildDataOf(child).Stack
			if data[i].IsPositioned() {
				continue
			}
			placeables[i] = child.Measure(loose)
			width = MaxPx(width, placeables[i].Width())
			height = MaxPx(height, placeables[i].Height())
		}
		if !width.IsFinite() {
			width = c.MinWidth
		}
		if !height.IsFinite() {
			height = c.MinHeight
		}

		// 2. Positioned children fit between their insets
		offsets := make([]Position, len(children))
		for i, child := range children {
			d := data[i]
			if !d.IsPositioned() {
				continue
			}
			left, top, right, bottom := resolveInset(s, d.Left), resolveInset(s, d.Top), resolveInset(s, d.Right), resolveInset(s, d.Bottom)
			cc := Constraints{MaxWidth: width, MaxHeight: height}
			if d.Left != nil && d.Right != nil {
				w := (width - left - right).CoerceAtLeast(0)
				cc.MinWidth, cc.MaxWidth = w, w
			}
			if d.Top != nil && d.Bottom != nil {
				h := (height - top - bottom).CoerceAtLeast(0)
				cc.MinHeight, cc.MaxHeight = h, h
			}
			placeables[i] = child.Measure(cc)
			fallback := d.Alignment.Align(Size{Width: width, Height: height}.Sub(placeables[i].Size()))
			offsets[i] = Position{
				X: insetOffset(d.Left, d.Right, left, right, width, placeables[i].Width(), fallback.X),
				Y: insetOffset(d.Top, d.Bottom, top, bottom, height, placeables[i].Height(), fallback.Y),
			}
		}

		return s.Layout(width, height, nil, func(ps *PlacementScope) {
			for i, p := range placeables {
				if data[i].IsPositioned() {
					ps.PlaceAt(p, offsets[i])
					continue
				}
				a := alignment
				if data[i] != nil {
					a = data[i].Alignment
				}
				ps.PlaceAt(p, a.Align(Size{Width: width, Height: height}.Sub(p.Size())))
			}
		})
	})
}

func resolveInset(s *MeasureScope, l *Length) Px {
	if l == nil {
		return 0
	}
	return s.Resolve(*l)
}

func insetOffset(start, end *Length, startPx, endPx, container, size, fallback Px) Px {
	switch {
	case start != nil:
		return startPx
	case end != nil:
		return container - endPx - size
	default:
		return fallback
	}
}
