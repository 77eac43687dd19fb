package layout

import "math"

// MergeFunc combines two positions of the same alignment line reported by
// different children.
type MergeFunc func(a, b Px) Px

// MergeLast keeps the value from the child placed last.
func MergeLast(_, b Px) Px { return b }

// MergeFirst keeps the value from the child placed first.
func MergeFirst(a, _ Px) Px { return a }

// MergeMin keeps the smaller value.
func MergeMin(a, b Px) Px { return MinPx(a, b) }

// MergeMax keeps the larger value.
func MergeMax(a, b Px) Px { return MaxPx(a, b) }

// AlignmentLine is a named offset a node publishes so that ancestors can
// align on it. Lines are compared by identity.
//
// A horizontal line is a y offset from the node's top edge; a vertical
// line is an x offset from its left edge.
type AlignmentLine struct {
	name       string
	horizontal bool
	merge      MergeFunc
}

// NewHorizontalLine creates a line measured along the y axis. A nil merge
// uses MergeLast.
func NewHorizontalLine(name string, merge MergeFunc) *AlignmentLine {
	if merge == nil {
		merge = MergeLast
	}
	return &AlignmentLine{name: name, horizontal: true, merge: merge}
}

// NewVerticalLine creates a line measured along the x axis. A nil merge
// uses MergeLast.
func NewVerticalLine(name string, merge MergeFunc) *AlignmentLine {
	if merge == nil {
		merge = MergeLast
	}
	return &AlignmentLine{name: name, merge: merge}
}

var (
	// FirstBaseline is the baseline of the first line of text. Parents
	// report the topmost child baseline.
	FirstBaseline = NewHorizontalLine("FirstBaseline", MergeMin)

	// LastBaseline is the baseline of the last line of text. Parents
	// report the bottommost child baseline.
	LastBaseline = NewHorizontalLine("LastBaseline", MergeMax)
)

// Name returns the line's name.
func (l *AlignmentLine) Name() string { return l.name }

// IsHorizontal reports whether the line carries a y offset.
func (l *AlignmentLine) IsHorizontal() bool { return l.horizontal }

// Merge combines two values of the line.
func (l *AlignmentLine) Merge(a, b Px) Px { return l.merge(a, b) }

func (l *AlignmentLine) String() string { return l.name }

// AlignmentLines maps lines to their offsets in a node's own coordinate
// space. A missing entry means the line is absent, which is distinct from
// an offset of zero.
type AlignmentLines map[*AlignmentLine]Px

func (l AlignmentLines) clone() AlignmentLines {
	if len(l) == 0 {
		return nil
	}
	out := make(AlignmentLines, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// Alignment positions a box inside a larger space. Each bias runs from -1
// (start) through 0 (center) to 1 (end).
type Alignment struct {
	Horizontal float64
	Vertical   float64
}

var (
	TopLeft      = Alignment{Horizontal: -1, Vertical: -1}
	TopCenter    = Alignment{Horizontal: 0, Vertical: -1}
	TopRight     = Alignment{Horizontal: 1, Vertical: -1}
	CenterLeft   = Alignment{Horizontal: -1, Vertical: 0}
	Center       = Alignment{Horizontal: 0, Vertical: 0}
	CenterRight  = Alignment{Horizontal: 1, Vertical: 0}
	BottomLeft   = Alignment{Horizontal: -1, Vertical: 1}
	BottomCenter = Alignment{Horizontal: 0, Vertical: 1}
	BottomRight  = Alignment{Horizontal: 1, Vertical: 1}
)

// Align returns the offset of a box that leaves space free pixels around
// it on each axis.
func (a Alignment) Align(space Size) Position {
	return Position{X: alignBias(space.Width, a.Horizontal), Y: alignBias(space.Height, a.Vertical)}
}

func alignBias(space Px, bias float64) Px {
	if !space.IsFinite() {
		return 0
	}
	return Px(math.Round(float64(space) / 2 * (1 + bias)))
}
