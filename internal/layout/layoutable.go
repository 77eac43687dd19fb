package layout

// IntrinsicMeasurable is the read-only view of a child a strategy gets when
// it needs to know how big the child could be. Intrinsic queries never
// commit a measurement and never place anything.
type IntrinsicMeasurable interface {
	// ParentData returns the data the child's modifiers attached for its
	// parent (for example a flex weight), or nil.
	ParentData() any

	// MinIntrinsicWidth is the smallest width at which the child can
	// paint correctly given the height.
	MinIntrinsicWidth(height Px) Px

	// MaxIntrinsicWidth is the smallest width beyond which growing does
	// not reduce the child's height.
	MaxIntrinsicWidth(height Px) Px

	// MinIntrinsicHeight is the smallest height at which the child can
	// paint correctly given the width.
	MinIntrinsicHeight(width Px) Px

	// MaxIntrinsicHeight is the smallest height beyond which growing does
	// not reduce the child's width.
	MaxIntrinsicHeight(width Px) Px
}

// Measurable is a child that can be measured for real.
type Measurable interface {
	IntrinsicMeasurable

	// Measure resolves the child's size within c. The returned Placeable
	// must be placed by the parent's placement block.
	Measure(c Constraints) Placeable
}

// Placeable is the result of measuring a child: a size plus the alignment
// lines it publishes. It is positioned with PlacementScope.Place.
type Placeable interface {
	Width() Px
	Height() Px
	Size() Size

	// Get returns the position of line in the child's coordinate space,
	// or false if the child does not publish it.
	Get(line *AlignmentLine) (Px, bool)
}
