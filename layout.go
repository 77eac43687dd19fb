// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package boxlayout

import (
	"go.uber.org/zap"

	"github.com/grindlemire/boxlayout/internal/layout"
)

// Px is a device pixel count. Infinity marks an unbounded maximum.
type Px = layout.Px

// Infinity is the unbounded pixel value.
const Infinity = layout.Infinity

// Length is an amount in density-independent or device pixels.
type Length = layout.Length

// Unit specifies how a Length is interpreted.
type Unit = layout.Unit

const (
	UnitDp = layout.UnitDp
	UnitPx = layout.UnitPx
)

// Density converts density-independent lengths to pixels.
type Density = layout.Density

// DefaultDensity maps one Dp to one pixel.
var DefaultDensity = layout.DefaultDensity

// Dp creates a density-independent Length.
func Dp(v float64) Length {
	return layout.Dp(v)
}

// PxLength creates a Length in device pixels.
func PxLength(v float64) Length {
	return layout.PxLength(v)
}

// Size represents a width/height pair.
type Size = layout.Size

// Position represents an x/y offset.
type Position = layout.Position

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Insets represents lengths on four sides (top, right, bottom, left).
type Insets = layout.Insets

// Constraints bounds the size a node may take.
type Constraints = layout.Constraints

// Tight returns constraints that allow exactly width x height.
func Tight(width, height Px) Constraints {
	return layout.Tight(width, height)
}

// Loose returns constraints from zero up to width x height.
func Loose(width, height Px) Constraints {
	return layout.Loose(width, height)
}

// Unbounded returns constraints with no maximum on either axis.
func Unbounded() Constraints {
	return layout.Unbounded()
}

// NewConstraints validates and returns the given constraints.
func NewConstraints(minWidth, maxWidth, minHeight, maxHeight Px) (Constraints, error) {
	return layout.NewConstraints(minWidth, maxWidth, minHeight, maxHeight)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height Px) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Insets with the same value on all sides.
func EdgeAll(v Length) Insets {
	return layout.EdgeAll(v)
}

// EdgeSymmetric creates Insets with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h Length) Insets {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Insets following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l Length) Insets {
	return layout.EdgeTRBL(t, r, b, l)
}

// Node is an element of the layout tree.
type Node = layout.Node

// NewNode creates a node laid out by strategy.
func NewNode(strategy Strategy) *Node {
	return layout.NewNode(strategy)
}

// Strategy is a node's measure function plus its intrinsic queries.
type Strategy = layout.Strategy

// MeasureFunc measures a node's children and reports its size.
type MeasureFunc = layout.MeasureFunc

// NewStrategy creates a Strategy whose intrinsics are derived from measure.
func NewStrategy(name string, measure MeasureFunc) Strategy {
	return layout.NewStrategy(name, measure)
}

// Measurement protocol handed to strategies.
type (
	IntrinsicMeasurable = layout.IntrinsicMeasurable
	Measurable          = layout.Measurable
	Placeable           = layout.Placeable
	MeasureScope        = layout.MeasureScope
	IntrinsicScope      = layout.IntrinsicScope
	PlacementScope      = layout.PlacementScope
	LayoutResult        = layout.LayoutResult
)

// Owner runs layout passes over a tree.
type Owner = layout.Owner

// Option configures an Owner.
type Option = layout.Option

// PassStats counts the work done by the last pass.
type PassStats = layout.PassStats

// NewOwner creates an Owner for root.
func NewOwner(root *Node, opts ...Option) (*Owner, error) {
	return layout.NewOwner(root, opts...)
}

// ContractError reports a misuse of the measurement protocol.
type ContractError = layout.ContractError

// AlignmentLine is a named reference line published by nodes.
type AlignmentLine = layout.AlignmentLine

var (
	FirstBaseline = layout.FirstBaseline
	LastBaseline  = layout.LastBaseline
)

// Alignment positions content inside a larger space.
type Alignment = layout.Alignment

var (
	TopLeft      = layout.TopLeft
	TopCenter    = layout.TopCenter
	TopRight     = layout.TopRight
	CenterLeft   = layout.CenterLeft
	Center       = layout.Center
	CenterRight  = layout.CenterRight
	BottomLeft   = layout.BottomLeft
	BottomCenter = layout.BottomCenter
	BottomRight  = layout.BottomRight
)

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
	AlignLine    = layout.AlignLine
)

// FlexStyle holds the properties of a row or column.
type FlexStyle = layout.FlexStyle

// DefaultFlexStyle returns a FlexStyle with default values.
func DefaultFlexStyle() FlexStyle {
	return layout.DefaultFlexStyle()
}

// Row returns a horizontal flex strategy.
func Row(style FlexStyle) Strategy {
	return layout.Row(style)
}

// Column returns a vertical flex strategy.
func Column(style FlexStyle) Strategy {
	return layout.Column(style)
}

// Stack returns a strategy that draws children on top of each other.
func Stack(alignment Alignment) Strategy {
	return layout.Stack(alignment)
}

// Box returns a strategy that fills bounded constraints and aligns its child.
func Box(alignment Alignment) Strategy {
	return layout.Box(alignment)
}

// Wrap returns a strategy that takes its child's size.
func Wrap() Strategy {
	return layout.Wrap()
}

// Modifier wraps a node to rewrite what flows through it.
type Modifier = layout.Modifier

// BaseModifier passes everything through unchanged.
type BaseModifier = layout.BaseModifier

// Padding insets the content by the given lengths.
func Padding(insets Insets) Modifier {
	return layout.Padding(insets)
}

// AspectRatio sizes the content to width/height == ratio.
func AspectRatio(ratio float64) (Modifier, error) {
	return layout.AspectRatio(ratio)
}

// SizeOverride requests a fixed size.
func SizeOverride(width, height Length) Modifier {
	return layout.SizeOverride(width, height)
}

// Expanded makes a flex child fill a weighted share of the free space.
func Expanded(weight float64) Modifier {
	return layout.Expanded(weight)
}

// Flexible makes a flex child share free space in proportion to weight.
func Flexible(weight float64, fit FlexFit) Modifier {
	return layout.Flexible(weight, fit)
}

// Width requests a fixed width.
func Width(width Length) Modifier {
	return layout.Width(width)
}

// Height requests a fixed height.
func Height(height Length) Modifier {
	return layout.Height(height)
}

// AlignBy aligns a flex child on line.
func AlignBy(line *AlignmentLine) Modifier {
	return layout.AlignBy(line)
}

// AlignSelf overrides the cross axis alignment for one flex child.
func AlignSelf(a Align) Modifier {
	return layout.AlignSelf(a)
}

// StackAligned positions a stack child with alignment.
func StackAligned(alignment Alignment) Modifier {
	return layout.StackAligned(alignment)
}

// StackPositioned positions a stack child by insets from the stack's edges.
func StackPositioned(left, top, right, bottom *Length, fallback Alignment) Modifier {
	return layout.StackPositioned(left, top, right, bottom, fallback)
}

// Inset returns a pointer to l, for StackPositioned.
func Inset(l Length) *Length {
	return layout.Inset(l)
}

// FlexFit specifies how a flexible child uses its share.
type FlexFit = layout.FlexFit

const (
	FlexTight = layout.FlexTight
	FlexLoose = layout.FlexLoose
)

// MainAxisSize specifies how much main axis space a flex container takes.
type MainAxisSize = layout.MainAxisSize

const (
	MainAxisMin = layout.MainAxisMin
	MainAxisMax = layout.MainAxisMax
)

// IntrinsicSize selects the min or max intrinsic query.
type IntrinsicSize = layout.IntrinsicSize

const (
	IntrinsicMin = layout.IntrinsicMin
	IntrinsicMax = layout.IntrinsicMax
)

// IntrinsicWidth forces its child to the child's intrinsic width.
func IntrinsicWidth(size IntrinsicSize) Strategy {
	return layout.IntrinsicWidth(size)
}

// IntrinsicHeight forces its child to the child's intrinsic height.
func IntrinsicHeight(size IntrinsicSize) Strategy {
	return layout.IntrinsicHeight(size)
}

// AlignmentLineOffset pads its child so line sits at before.
func AlignmentLineOffset(line *AlignmentLine, before, after Length) Strategy {
	return layout.AlignmentLineOffset(line, before, after)
}

// Leaf returns a strategy for fixed-size content publishing lines.
func Leaf(width, height Length, lines map[*AlignmentLine]Length) Strategy {
	return layout.Leaf(width, height, lines)
}

// MergeFunc combines two values of a line published by several children.
type MergeFunc = layout.MergeFunc

// NewHorizontalLine creates a line carrying a y offset.
func NewHorizontalLine(name string, merge MergeFunc) *AlignmentLine {
	return layout.NewHorizontalLine(name, merge)
}

// NewVerticalLine creates a line carrying an x offset.
func NewVerticalLine(name string, merge MergeFunc) *AlignmentLine {
	return layout.NewVerticalLine(name, merge)
}

// WithDensity sets the density used to resolve lengths.
func WithDensity(d Density) Option {
	return layout.WithDensity(d)
}

// WithLogger sets the logger that traces passes.
func WithLogger(log *zap.Logger) Option {
	return layout.WithLogger(log)
}

// WithMaxDepth bounds the recursion depth of a pass.
func WithMaxDepth(depth int) Option {
	return layout.WithMaxDepth(depth)
}

// WithStrict turns intrinsic argument misuse into errors.
func WithStrict(strict bool) Option {
	return layout.WithStrict(strict)
}

var (
	ErrInvalidConstraints = layout.ErrInvalidConstraints
	ErrUnitMismatch       = layout.ErrUnitMismatch
	ErrIndexOutOfRange    = layout.ErrIndexOutOfRange
	ErrAlreadyAttached    = layout.ErrAlreadyAttached
	ErrCycle              = layout.ErrCycle
	ErrInvalidModifier    = layout.ErrInvalidModifier
	ErrLayoutNotCalled    = layout.ErrLayoutNotCalled
	ErrLayoutCalledTwice  = layout.ErrLayoutCalledTwice
	ErrMaxDepth           = layout.ErrMaxDepth
	ErrIntrinsicArgument  = layout.ErrIntrinsicArgument
	ErrPlacedTwice        = layout.ErrPlacedTwice
	ErrStalePlaceable     = layout.ErrStalePlaceable
)
