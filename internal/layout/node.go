package layout

import "fmt"

// DrawFunc paints a node. bounds is the node's rectangle in root
// coordinates.
type DrawFunc func(n *Node, bounds Rect)

// Node represents an element in the layout tree.
type Node struct {
	// Configuration (user-set)
	name       string
	strategy   Strategy
	modifiers  []Modifier
	parentData any
	zIndex     int
	draw       DrawFunc
	children   []*Node

	// Computed (set by layout engine)
	size          Size         // outer size, after every modifier
	contentSize   Size         // size reported by the strategy
	contentOffset Position     // strategy content origin relative to the outer box
	layers        []layerState // one per modifier, outermost first
	result        LayoutResult
	constraints   Constraints // constraints of the last real measurement
	position      Position    // outer box relative to the parent's content origin
	lines         AlignmentLines
	paintOrder    []*Node

	// Internal state
	dirty      bool   // Needs remeasurement
	measured   bool   // result holds a real measurement
	needsPlace bool   // children must be placed again
	placed     bool   // placed by the parent in the last placement
	iteration  uint64 // last pass that measured this node
	generation uint64 // bumped by every real measurement
	parent     *Node  // Back-pointer for dirty propagation
}

type layerState struct {
	size   Size
	offset Position // wrapped layer's origin inside this layer
}

// NewNode creates a new node with the given strategy.
func NewNode(strategy Strategy) *Node {
	return &Node{
		strategy: strategy,
		dirty:    true, // New nodes need layout
	}
}

// SetName sets the name used in logs and errors.
func (n *Node) SetName(name string) {
	n.name = name
}

// Name returns the node's name.
func (n *Node) Name() string {
	return n.name
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.name != "" {
		return n.name
	}
	if n.strategy.Name != "" {
		return n.strategy.Name
	}
	return "node"
}

// Strategy returns the node's layout strategy.
func (n *Node) Strategy() Strategy {
	return n.strategy
}

// SetStrategy replaces the layout strategy and marks the node dirty.
func (n *Node) SetStrategy(s Strategy) {
	n.strategy = s
	n.MarkDirty()
}

// Modifiers returns the modifier chain, outermost first.
func (n *Node) Modifiers() []Modifier {
	return n.modifiers
}

// SetModifiers replaces the modifier chain and marks the node dirty. The
// first modifier is outermost: it sees the constraints the parent passed.
func (n *Node) SetModifiers(mods ...Modifier) {
	n.modifiers = append([]Modifier(nil), mods...)
	n.layers = make([]layerState, len(n.modifiers))
	n.MarkDirty()
}

// SetParentData sets the data the node's parent reads through
// IntrinsicMeasurable.ParentData. Modifiers may rewrite it.
func (n *Node) SetParentData(data any) {
	n.parentData = data
	n.MarkDirty()
}

// ZIndex returns the node's paint order key among its siblings.
func (n *Node) ZIndex() int {
	return n.zIndex
}

// SetZIndex changes the node's paint order among its siblings. Higher
// values paint later; equal values keep placement order.
func (n *Node) SetZIndex(z int) {
	n.zIndex = z
	if n.parent != nil {
		n.parent.MarkDirty()
	}
	n.MarkDirty()
}

// SetDraw sets the callback Owner.Paint invokes for this node.
func (n *Node) SetDraw(fn DrawFunc) {
	n.draw = fn
	n.MarkDirty()
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in order. The slice must not be
// modified.
func (n *Node) Children() []*Node {
	return n.children
}

// AddChild appends children and marks this node dirty.
func (n *Node) AddChild(children ...*Node) error {
	for _, child := range children {
		if err := n.InsertChild(len(n.children), child); err != nil {
			return err
		}
	}
	return nil
}

// InsertChild inserts child before index and marks this node dirty.
func (n *Node) InsertChild(index int, child *Node) error {
	if index < 0 || index > len(n.children) {
		return fmt.Errorf("%w: insert at %d with %d children", ErrIndexOutOfRange, index, len(n.children))
	}
	if child.parent != nil {
		return fmt.Errorf("%w: %s is a child of %s", ErrAlreadyAttached, child, child.parent)
	}
	for q := n; q != nil; q = q.parent {
		if q == child {
			return fmt.Errorf("%w: %s", ErrCycle, child)
		}
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
	n.MarkDirty()
	return nil
}

// RemoveChildren detaches count children starting at index and marks this
// node dirty.
func (n *Node) RemoveChildren(index, count int) error {
	if index < 0 || count < 0 || index+count > len(n.children) {
		return fmt.Errorf("%w: remove %d at %d with %d children", ErrIndexOutOfRange, count, index, len(n.children))
	}
	for _, child := range n.children[index : index+count] {
		child.parent = nil
		child.placed = false
	}
	n.children = append(n.children[:index], n.children[index+count:]...)
	n.MarkDirty()
	return nil
}

// RemoveChild removes a child by pointer and marks dirty.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			return n.RemoveChildren(i, 1) == nil
		}
	}
	return false
}

// MoveChildren moves count children starting at from so that they sit
// before the child currently at index to. Indexes refer to the order before
// the move.
func (n *Node) MoveChildren(from, to, count int) error {
	size := len(n.children)
	if from < 0 || count < 0 || from+count > size || to < 0 || to > size {
		return fmt.Errorf("%w: move %d from %d to %d with %d children", ErrIndexOutOfRange, count, from, to, size)
	}
	if to > from && to < from+count {
		return fmt.Errorf("%w: move target %d inside moved range", ErrIndexOutOfRange, to)
	}
	if count == 0 || to == from || to == from+count {
		return nil
	}
	moved := append([]*Node(nil), n.children[from:from+count]...)
	rest := append(append([]*Node(nil), n.children[:from]...), n.children[from+count:]...)
	dest := to
	if to > from {
		dest = to - count
	}
	n.children = append(append(append(n.children[:0], rest[:dest]...), moved...), rest[dest:]...)
	n.MarkDirty()
	return nil
}

// MarkDirty marks this node and all ancestors up to the root as needing
// remeasurement. A dirty ancestor does not end the walk: a child that was
// only queried for intrinsics stays dirty under a clean parent.
func (n *Node) MarkDirty() {
	for node := n; node != nil; node = node.parent {
		node.dirty = true
	}
}

// IsDirty returns whether this node needs remeasurement.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// invalidate marks the whole subtree dirty and drops cached results.
func (n *Node) invalidate() {
	n.dirty = true
	n.measured = false
	n.needsPlace = true
	for _, child := range n.children {
		child.invalidate()
	}
}

// Size returns the size from the last layout pass, including modifiers.
func (n *Node) Size() Size {
	return n.size
}

// Position returns the node's offset within its parent's content area.
func (n *Node) Position() Position {
	return n.position
}

// IsPlaced reports whether the node was placed in the last pass.
func (n *Node) IsPlaced() bool {
	return n.placed
}

// PositionInRoot returns the node's offset from the root's origin.
func (n *Node) PositionInRoot() Position {
	pos := n.position
	for q := n.parent; q != nil; q = q.parent {
		pos = pos.Add(q.contentOffset).Add(q.position)
	}
	return pos
}

// BoundsInRoot returns the node's rectangle in root coordinates.
func (n *Node) BoundsInRoot() Rect {
	return RectOf(n.PositionInRoot(), n.size)
}

// Layout returns the computed rectangles from the last pass.
func (n *Node) Layout() Layout {
	outer := n.BoundsInRoot()
	return Layout{
		Rect:        outer,
		ContentRect: RectOf(outer.Origin().Add(n.contentOffset), n.contentSize),
	}
}

// Get returns the position of line in the node's own coordinate space.
func (n *Node) Get(line *AlignmentLine) (Px, bool) {
	v, ok := n.outerLines(nil)[line]
	return v, ok
}
