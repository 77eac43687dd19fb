package layout

// MeasureFunc measures children under c and returns the node's layout by
// calling s.Layout exactly once.
type MeasureFunc func(s *MeasureScope, children []Measurable, c Constraints) LayoutResult

// IntrinsicFunc answers one intrinsic query. cross is the size on the
// other axis: a height for width queries and a width for height queries.
type IntrinsicFunc func(s *IntrinsicScope, children []IntrinsicMeasurable, cross Px) Px

// LineMergeFunc overrides how a strategy merges a line reported by more
// than one child.
type LineMergeFunc func(line *AlignmentLine, a, b Px) Px

// Strategy is a node's layout behavior. Nil intrinsic functions are derived
// by running Measure against stand-in children that report their intrinsic
// sizes instead of measuring.
type Strategy struct {
	Name    string
	Measure MeasureFunc

	MinIntrinsicWidth  IntrinsicFunc
	MaxIntrinsicWidth  IntrinsicFunc
	MinIntrinsicHeight IntrinsicFunc
	MaxIntrinsicHeight IntrinsicFunc

	MergeLines LineMergeFunc
}

// NewStrategy returns a strategy whose intrinsics are derived from measure.
func NewStrategy(name string, measure MeasureFunc) Strategy {
	return Strategy{Name: name, Measure: measure}
}

// IsZero reports whether the strategy has no measure function.
func (s Strategy) IsZero() bool {
	return s.Measure == nil
}

type intrinsicKind uint8

const (
	minWidth intrinsicKind = iota
	maxWidth
	minHeight
	maxHeight
)

func (k intrinsicKind) isWidth() bool {
	return k == minWidth || k == maxWidth
}

func (k intrinsicKind) String() string {
	switch k {
	case minWidth:
		return "MinIntrinsicWidth"
	case maxWidth:
		return "MaxIntrinsicWidth"
	case minHeight:
		return "MinIntrinsicHeight"
	default:
		return "MaxIntrinsicHeight"
	}
}

func (s Strategy) intrinsicFunc(k intrinsicKind) IntrinsicFunc {
	switch k {
	case minWidth:
		return s.MinIntrinsicWidth
	case maxWidth:
		return s.MaxIntrinsicWidth
	case minHeight:
		return s.MinIntrinsicHeight
	default:
		return s.MaxIntrinsicHeight
	}
}

func queryIntrinsic(m IntrinsicMeasurable, k intrinsicKind, cross Px) Px {
	switch k {
	case minWidth:
		return m.MinIntrinsicWidth(cross)
	case maxWidth:
		return m.MaxIntrinsicWidth(cross)
	case minHeight:
		return m.MinIntrinsicHeight(cross)
	default:
		return m.MaxIntrinsicHeight(cross)
	}
}
