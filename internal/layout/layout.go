package layout

// Layout holds the computed rectangles of a node after a pass.
type Layout struct {
	// Rect is the outer box, after every modifier, in root coordinates.
	// Use for hit testing and bounds.
	Rect Rect

	// ContentRect is the box the node's strategy measured, in root
	// coordinates. Children are positioned relative to its origin.
	ContentRect Rect
}
