package layout

// PlaceFunc positions a node's children. It runs during the placement
// pass, after every size in the tree is known.
type PlaceFunc func(s *PlacementScope)

// LayoutResult is the outcome of a measure function: the node's size, the
// alignment lines it publishes itself and the placement block that will
// position its children. Results are only created by MeasureScope.Layout.
type LayoutResult struct {
	size  Size
	lines AlignmentLines
	place PlaceFunc
	scope *MeasureScope
}

// Size returns the measured size.
func (r LayoutResult) Size() Size { return r.size }

// MeasureScope is handed to a measure function. It carries the pass's
// density and produces the function's result.
type MeasureScope struct {
	Density Density

	node      *Node
	pass      *pass
	intrinsic bool
	calls     int
}

// Resolve converts l to pixels using the pass density.
func (s *MeasureScope) Resolve(l Length) Px {
	return l.Resolve(s.Density)
}

// Layout records the node's size, the alignment lines it publishes and its
// placement block. It must be called exactly once per measure function
// invocation. Negative sizes are clamped to zero.
func (s *MeasureScope) Layout(width, height Px, lines AlignmentLines, place PlaceFunc) LayoutResult {
	s.calls++
	if s.calls > 1 {
		violation("Layout", s.node, ErrLayoutCalledTwice)
	}
	if !s.intrinsic && (!width.IsFinite() || !height.IsFinite()) {
		violation("Layout", s.node, ErrInfiniteSize)
	}
	return LayoutResult{
		size:  Size{Width: width.CoerceAtLeast(0), Height: height.CoerceAtLeast(0)},
		lines: lines.clone(),
		place: place,
		scope: s,
	}
}

// IsIntrinsic reports whether the measure function is running to answer an
// intrinsic query. Children measured in this mode are stand-ins.
func (s *MeasureScope) IsIntrinsic() bool {
	return s.intrinsic
}

// IntrinsicScope is handed to intrinsic functions.
type IntrinsicScope struct {
	Density Density
}

// Resolve converts l to pixels using the pass density.
func (s *IntrinsicScope) Resolve(l Length) Px {
	return l.Resolve(s.Density)
}

// PlacementScope is handed to a placement block. Children are positioned
// relative to the node's content origin.
type PlacementScope struct {
	node   *Node
	pass   *pass
	placed []placement
	closed bool
}

type placement struct {
	node *Node
	z    int
}

// Place positions p at (x, y).
func (s *PlacementScope) Place(p Placeable, x, y Px) {
	s.place(p, Position{X: x, Y: y}, nil)
}

// PlaceAt positions p at pos.
func (s *PlacementScope) PlaceAt(p Placeable, pos Position) {
	s.place(p, pos, nil)
}

// PlaceWithZ positions p at (x, y) and overrides the child's z-index for
// paint ordering within this node.
func (s *PlacementScope) PlaceWithZ(p Placeable, x, y Px, z int) {
	s.place(p, Position{X: x, Y: y}, &z)
}

func (s *PlacementScope) place(p Placeable, pos Position, z *int) {
	if s.closed {
		violation("Place", s.node, ErrPlacementOutOfPass)
	}
	switch pl := p.(type) {
	case proxyPlaceable:
		// Stand-ins from intrinsic measurement have nothing to position.
		return
	case nodePlaceable:
		child := pl.node
		if child.parent != s.node {
			violation("Place", s.node, ErrForeignPlaceable)
		}
		if pl.superseded() {
			violation("Place", child, ErrStalePlaceable)
		}
		for _, prev := range s.placed {
			if prev.node == child {
				violation("Place", child, ErrPlacedTwice)
			}
		}
		zi := child.zIndex
		if z != nil {
			zi = *z
		}
		s.placed = append(s.placed, placement{node: child, z: zi})
		child.place(s.pass, pos)
	default:
		violation("Place", s.node, ErrForeignPlaceable)
	}
}
