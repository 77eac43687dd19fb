package layout

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// pass holds the state of one measure-and-place walk. It travels with
// every measurable handed to a strategy, so nothing about a pass lives in
// package state.
type pass struct {
	id        string
	iteration uint64
	density   Density
	maxDepth  int
	strict    bool
	depth     int
	log       *zap.Logger
	stats     *PassStats
}

func (p *pass) enter(n *Node, op string) {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		violation(op, n, fmt.Errorf("%w (%d)", ErrMaxDepth, p.maxDepth))
	}
}

func (p *pass) leave() {
	p.depth--
}

// measure runs a real measurement of n under c, reusing the cached result
// when n is clean and c is unchanged.
func (p *pass) measure(n *Node, c Constraints) Placeable {
	if err := c.Validate(); err != nil {
		violation("Measure", n, err)
	}
	p.enter(n, "Measure")
	defer p.leave()

	if n.iteration == p.iteration {
		p.stats.Remeasured++
		p.log.Debug("node measured more than once",
			zap.Stringer("node", n),
			zap.Stringer("constraints", c))
	}
	n.iteration = p.iteration

	// A clean node was measured after every change below it
	if !n.dirty && n.measured && n.constraints == c {
		p.stats.CacheHits++
		return n.placeable(p)
	}

	n.constraints = c
	n.size = n.measureLayer(p, 0, c)
	n.contentOffset = Position{}
	for _, l := range n.layers {
		n.contentOffset = n.contentOffset.Add(l.offset)
	}
	n.measured = true
	n.dirty = false
	n.needsPlace = true
	n.generation++
	return n.placeable(p)
}

// measureLayer measures modifier layer i and everything inside it.
// Constraints flow outermost-in; sizes come back innermost-out.
func (n *Node) measureLayer(p *pass, i int, c Constraints) Size {
	if i == len(n.modifiers) {
		return n.measureContent(p, c)
	}
	m := n.modifiers[i]
	inner := m.ModifyConstraints(p.density, c)
	if err := inner.Validate(); err != nil {
		violation("ModifyConstraints", n, err)
	}
	child := n.measureLayer(p, i+1, inner)
	size := m.ModifySize(p.density, c, child)
	size = Size{Width: size.Width.CoerceAtLeast(0), Height: size.Height.CoerceAtLeast(0)}
	n.layers[i] = layerState{size: size, offset: m.ModifyPosition(p.density, child, size)}
	return size
}

func (n *Node) measureContent(p *pass, c Constraints) Size {
	if n.strategy.Measure == nil {
		violation("Measure", n, ErrNoStrategy)
	}
	children := make([]Measurable, len(n.children))
	for i, child := range n.children {
		children[i] = childMeasurable{layerIntrinsics{node: child, pass: p}}
	}

	p.log.Debug("measure",
		zap.Stringer("node", n),
		zap.Stringer("constraints", c))
	p.stats.Measured++

	scope := &MeasureScope{Density: p.density, node: n, pass: p}
	result := n.strategy.Measure(scope, children, c)
	checkResult("Measure", n, scope, result)

	n.result = result
	n.contentSize = result.size
	return result.size
}

func checkResult(op string, n *Node, scope *MeasureScope, r LayoutResult) {
	if scope.calls == 0 || r.scope != scope {
		violation(op, n, ErrLayoutNotCalled)
	}
}

// intrinsic answers an intrinsic query for modifier layer i of n.
func (p *pass) intrinsic(n *Node, layer int, k intrinsicKind, cross Px) Px {
	if cross < 0 {
		if p.strict {
			violation(k.String(), n, fmt.Errorf("%w: %s", ErrIntrinsicArgument, cross))
		}
		p.log.Warn("negative intrinsic argument clamped to zero",
			zap.Stringer("node", n),
			zap.Stringer("query", k),
			zap.Int("argument", int(cross)))
		cross = 0
	}
	p.enter(n, k.String())
	defer p.leave()

	if layer == 0 {
		p.stats.IntrinsicQueries++
	}
	if layer < len(n.modifiers) {
		below := layerIntrinsics{node: n, pass: p, layer: layer + 1}
		m := n.modifiers[layer]
		switch k {
		case minWidth:
			return m.MinIntrinsicWidthOf(p.density, below, cross)
		case maxWidth:
			return m.MaxIntrinsicWidthOf(p.density, below, cross)
		case minHeight:
			return m.MinIntrinsicHeightOf(p.density, below, cross)
		default:
			return m.MaxIntrinsicHeightOf(p.density, below, cross)
		}
	}

	if n.strategy.Measure == nil {
		violation(k.String(), n, ErrNoStrategy)
	}
	children := make([]IntrinsicMeasurable, len(n.children))
	for i, child := range n.children {
		children[i] = layerIntrinsics{node: child, pass: p}
	}
	if fn := n.strategy.intrinsicFunc(k); fn != nil {
		return fn(&IntrinsicScope{Density: p.density}, children, cross).CoerceAtLeast(0)
	}
	return p.measuredIntrinsic(n, k, cross, children)
}

// place records pos and places the node's children if its measurement
// changed since they were last placed.
func (n *Node) place(p *pass, pos Position) {
	n.position = pos
	n.placed = true
	if p != nil {
		p.stats.Placed++
	}
	if n.needsPlace {
		n.placeChildren(p)
	}
}

// placeChildren runs the placement block captured by the last measurement
// and recomputes the node's alignment lines. p is nil when lines are read
// after the pass finished.
func (n *Node) placeChildren(p *pass) {
	for _, child := range n.children {
		child.placed = false
	}

	// 1. Run the placement block
	scope := &PlacementScope{node: n, pass: p}
	if n.result.place != nil {
		n.result.place(scope)
	}
	scope.closed = true
	n.needsPlace = false

	// 2. Merge child lines in placement order, then apply published lines
	var lines AlignmentLines
	for _, pl := range scope.placed {
		child := pl.node
		for line, v := range child.outerLines(p) {
			if line.horizontal {
				v += child.position.Y
			} else {
				v += child.position.X
			}
			if lines == nil {
				lines = AlignmentLines{}
			}
			if prev, ok := lines[line]; ok {
				v = n.mergeLine(line, prev, v)
			}
			lines[line] = v
		}
	}
	for line, v := range n.result.lines {
		if lines == nil {
			lines = AlignmentLines{}
		}
		lines[line] = v
	}
	n.lines = lines

	// 3. Paint order is placement order, stably reordered by z-index
	sort.SliceStable(scope.placed, func(i, j int) bool {
		return scope.placed[i].z < scope.placed[j].z
	})
	n.paintOrder = n.paintOrder[:0]
	for _, pl := range scope.placed {
		n.paintOrder = append(n.paintOrder, pl.node)
	}
}

func (n *Node) mergeLine(line *AlignmentLine, a, b Px) Px {
	if n.strategy.MergeLines != nil {
		return n.strategy.MergeLines(line, a, b)
	}
	return line.Merge(a, b)
}

// outerLines returns the node's alignment lines in its outer coordinate
// space, after every modifier layer has offset or rewritten them.
func (n *Node) outerLines(p *pass) AlignmentLines {
	if n.needsPlace {
		n.placeChildren(p)
	}
	lines := n.lines
	for i := len(n.modifiers) - 1; i >= 0 && len(lines) > 0; i-- {
		off := n.layers[i].offset
		out := make(AlignmentLines, len(lines))
		for line, v := range lines {
			if line.horizontal {
				v += off.Y
			} else {
				v += off.X
			}
			if v, ok := n.modifiers[i].ModifyAlignmentLine(line, v); ok {
				out[line] = v
			}
		}
		lines = out
	}
	return lines
}

// parentDataAt folds the parent data through modifier layers i and below,
// innermost first, so outer modifiers win.
func (n *Node) parentDataAt(i int) any {
	data := n.parentData
	for j := len(n.modifiers) - 1; j >= i; j-- {
		data = n.modifiers[j].ModifyParentData(data)
	}
	return data
}

// layerIntrinsics exposes one modifier layer of a node (layer 0 is the
// whole node) to intrinsic queries.
type layerIntrinsics struct {
	node  *Node
	pass  *pass
	layer int
}

func (m layerIntrinsics) ParentData() any { return m.node.parentDataAt(m.layer) }

func (m layerIntrinsics) MinIntrinsicWidth(height Px) Px {
	return m.pass.intrinsic(m.node, m.layer, minWidth, height)
}

func (m layerIntrinsics) MaxIntrinsicWidth(height Px) Px {
	return m.pass.intrinsic(m.node, m.layer, maxWidth, height)
}

func (m layerIntrinsics) MinIntrinsicHeight(width Px) Px {
	return m.pass.intrinsic(m.node, m.layer, minHeight, width)
}

func (m layerIntrinsics) MaxIntrinsicHeight(width Px) Px {
	return m.pass.intrinsic(m.node, m.layer, maxHeight, width)
}

// childMeasurable is the handle a strategy gets for each child.
type childMeasurable struct {
	layerIntrinsics
}

func (m childMeasurable) Measure(c Constraints) Placeable {
	return m.pass.measure(m.node, c)
}

// nodePlaceable is one measurement of a child. Its size is fixed when it
// is created; measuring the child again supersedes it.
type nodePlaceable struct {
	node       *Node
	pass       *pass
	size       Size
	generation uint64
}

func (n *Node) placeable(p *pass) nodePlaceable {
	return nodePlaceable{node: n, pass: p, size: n.size, generation: n.generation}
}

// superseded reports whether the child was measured again after p.
func (p nodePlaceable) superseded() bool {
	return p.generation != p.node.generation
}

func (p nodePlaceable) Width() Px  { return p.size.Width }
func (p nodePlaceable) Height() Px { return p.size.Height }
func (p nodePlaceable) Size() Size { return p.size }

// Get reports no lines once the placeable is superseded.
func (p nodePlaceable) Get(line *AlignmentLine) (Px, bool) {
	if p.superseded() {
		return 0, false
	}
	v, ok := p.node.outerLines(p.pass)[line]
	return v, ok
}
