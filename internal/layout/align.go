package layout

// Box returns a strategy that fills bounded constraints and positions its
// first child inside with alignment. On an unbounded axis it wraps the
// child instead.
func Box(alignment Alignment) Strategy {
	st := Strategy{Name: "Box"}
	st.Measure = func(s *MeasureScope, children []Measurable, c Constraints) LayoutResult {
		if len(children) == 0 {
			width, height := c.MinWidth, c.MinHeight
			if c.HasBoundedWidth() {
				width = c.MaxWidth
			}
			if c.HasBoundedHeight() {
				height = c.MaxHeight
			}
			return s.Layout(width, height, nil, nil)
		}
		p := children[0].Measure(c.Loosen())
		width := MaxPx(p.Width(), c.MinWidth)
		if c.HasBoundedWidth() {
			width = c.MaxWidth
		}
		height := MaxPx(p.Height(), c.MinHeight)
		if c.HasBoundedHeight() {
			height = c.MaxHeight
		}
		return s.Layout(width, height, nil, func(ps *PlacementScope) {
			ps.PlaceAt(p, alignment.Align(Size{Width: width, Height: height}.Sub(p.Size())))
		})
	}
	passThroughIntrinsics(&st)
	return st
}

// Wrap returns a strategy that measures its first child under loosened
// constraints and takes the child's size, raised to the incoming minimum.
// The child sits at the top-left corner.
func Wrap() Strategy {
	st := Strategy{Name: "Wrap"}
	st.Measure = func(s *MeasureScope, children []Measurable, c Constraints) LayoutResult {
		if len(children) == 0 {
			return s.Layout(c.MinWidth, c.MinHeight, nil, nil)
		}
		p := children[0].Measure(c.Loosen())
		size := c.Constrain(p.Size())
		return s.Layout(size.Width, size.Height, nil, func(ps *PlacementScope) {
			ps.Place(p, 0, 0)
		})
	}
	passThroughIntrinsics(&st)
	return st
}

// passThroughIntrinsics answers every intrinsic query with the first
// child's answer, or zero without children.
func passThroughIntrinsics(s *Strategy) {
	for _, k := range []intrinsicKind{minWidth, maxWidth, minHeight, maxHeight} {
		fn := func(_ *IntrinsicScope, children []IntrinsicMeasurable, cross Px) Px {
			if len(children) == 0 {
				return 0
			}
			return queryIntrinsic(children[0], k, cross)
		}
		switch k {
		case minWidth:
			s.MinIntrinsicWidth = fn
		case maxWidth:
			s.MaxIntrinsicWidth = fn
		case minHeight:
			s.MinIntrinsicHeight = fn
		default:
			s.MaxIntrinsicHeight = fn
		}
	}
}

// IntrinsicSize selects which intrinsic query an intrinsic sizing strategy
// uses.
type IntrinsicSize uint8

const (
	IntrinsicMin IntrinsicSize = iota
	IntrinsicMax
)

// IntrinsicWidth returns a strategy that forces its first child to the
// child's min or max intrinsic width, coerced into the constraints.
func IntrinsicWidth(size IntrinsicSize) Strategy {
	return intrinsicSizing(size, true)
}

// IntrinsicHeight returns a strategy that forces its first child to the
// child's min or max intrinsic height, coerced into the constraints.
func IntrinsicHeight(size IntrinsicSize) Strategy {
	return intrinsicSizing(size, false)
}

func intrinsicSizing(size IntrinsicSize, width bool) Strategy {
	query := minHeight
	switch {
	case width && size == IntrinsicMin:
		query = minWidth
	case width:
		query = maxWidth
	case size == IntrinsicMax:
		query = maxHeight
	}

	st := Strategy{Name: "IntrinsicHeight"}
	if width {
		st.Name = "IntrinsicWidth"
	}
	st.Measure = func(s *MeasureScope, children []Measurable, c Constraints) LayoutResult {
		if len(children) == 0 {
			return s.Layout(c.MinWidth, c.MinHeight, nil, nil)
		}
		child := children[0]
		cc := c
		if width {
			w := queryIntrinsic(child, query, c.MaxHeight)
			if w.IsFinite() {
				w = w.Clamp(c.MinWidth, c.MaxWidth)
				cc.MinWidth, cc.MaxWidth = w, w
			}
		} else {
			h := queryIntrinsic(child, query, c.MaxWidth)
			if h.IsFinite() {
				h = h.Clamp(c.MinHeight, c.MaxHeight)
				cc.MinHeight, cc.MaxHeight = h, h
			}
		}
		p := child.Measure(cc)
		return s.Layout(p.Width(), p.Height(), nil, func(ps *PlacementScope) {
			ps.Place(p, 0, 0)
		})
	}

	passThroughIntrinsics(&st)
	forced := func(_ *IntrinsicScope, children []IntrinsicMeasurable, cross Px) Px {
		if len(children) == 0 {
			return 0
		}
		return queryIntrinsic(children[0], query, cross)
	}
	if width {
		st.MinIntrinsicWidth, st.MaxIntrinsicWidth = forced, forced
	} else {
		st.MinIntrinsicHeight, st.MaxIntrinsicHeight = forced, forced
	}
	return st
}

// AlignmentLineOffset returns a strategy that pads its first child so that
// line sits before from the start of the axis it measures and after
// remains between the line and the end. The padding never pushes the node
// past the incoming maximum. A child that does not publish line is placed
// at the origin without padding.
func AlignmentLineOffset(line *AlignmentLine, before, after Length) Strategy {
	return NewStrategy("AlignmentLineOffset", func(s *MeasureScope, children []Measurable, c Constraints) LayoutResult {
		if len(children) == 0 {
			return s.Layout(c.MinWidth, c.MinHeight, nil, nil)
		}
		horizontal := line.IsHorizontal()
		cc := c.LoosenWidth()
		if horizontal {
			cc = c.LoosenHeight()
		}
		p := children[0].Measure(cc)

		v, ok := p.Get(line)
		if !ok {
			size := c.Constrain(p.Size())
			return s.Layout(size.Width, size.Height, nil, func(ps *PlacementScope) {
				ps.Place(p, 0, 0)
			})
		}

		axisSize, axisMax := p.Width(), c.MaxWidth
		if horizontal {
			axisSize, axisMax = p.Height(), c.MaxHeight
		}
		room := axisMax.Sub(axisSize).CoerceAtLeast(0)
		padBefore := s.Resolve(before).Sub(v).Clamp(0, room)
		padAfter := s.Resolve(after).Sub(axisSize - v).Clamp(0, room.Sub(padBefore).CoerceAtLeast(0))
		total := axisSize + padBefore + padAfter

		width, height := MaxPx(p.Width(), c.MinWidth), MaxPx(total, c.MinHeight)
		pos := Position{Y: padBefore}
		if !horizontal {
			width, height = MaxPx(total, c.MinWidth), MaxPx(p.Height(), c.MinHeight)
			pos = Position{X: padBefore}
		}
		return s.Layout(width, height, nil, func(ps *PlacementScope) {
			ps.PlaceAt(p, pos)
		})
	})
}

// Leaf returns a strategy for content with a fixed preferred size, coerced
// into the constraints. lines are published as given.
func Leaf(width, height Length, lines map[*AlignmentLine]Length) Strategy {
	fixedWidth := func(s *IntrinsicScope, _ []IntrinsicMeasurable, _ Px) Px {
		return s.Resolve(width).CoerceAtLeast(0)
	}
	fixedHeight := func(s *IntrinsicScope, _ []IntrinsicMeasurable, _ Px) Px {
		return s.Resolve(height).CoerceAtLeast(0)
	}
	return Strategy{
		Name: "Leaf",
		Measure: func(s *MeasureScope, _ []Measurable, c Constraints) LayoutResult {
			size := c.Constrain(Size{Width: s.Resolve(width), Height: s.Resolve(height)})
			var published AlignmentLines
			if len(lines) > 0 {
				published = make(AlignmentLines, len(lines))
				for line, l := range lines {
					published[line] = s.Resolve(l)
				}
			}
			return s.Layout(size.Width, size.Height, published, nil)
		},
		MinIntrinsicWidth:  fixedWidth,
		MaxIntrinsicWidth:  fixedWidth,
		MinIntrinsicHeight: fixedHeight,
		MaxIntrinsicHeight: fixedHeight,
	}
}
