package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Horizontal Direction = iota // Children laid out left-to-right
	Vertical                    // Children laid out top-to-bottom
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
	AlignLine                 // Line up FlexStyle.AlignLine across children
)

// FlexFit specifies how a flexible child uses its share of the main axis.
type FlexFit uint8

const (
	FlexTight FlexFit = iota // Child must fill its share
	FlexLoose                // Child may be smaller than its share
)

// MainAxisSize specifies how much main axis space a flex container takes.
type MainAxisSize uint8

const (
	MainAxisMin MainAxisSize = iota // Wrap the children
	MainAxisMax                     // Fill the maximum when it is bounded
)

// FlexStyle contains the properties of a row or column.
type FlexStyle struct {
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	AlignLine      *AlignmentLine // used when AlignItems is AlignLine
	MainAxisSize   MainAxisSize
	Gap            Length // Space between children (main axis only)
}

// DefaultFlexStyle returns a FlexStyle with sensible defaults.
func DefaultFlexStyle() FlexStyle {
	return FlexStyle{
		Direction:  Horizontal,
		AlignItems: AlignStart,
		Gap:        Dp(0),
	}
}
