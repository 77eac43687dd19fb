package layout

// ChildData is the parent data the built-in strategies read. Parent data
// modifiers copy the incoming value and set their field, so in a chain the
// outermost modifier wins.
type ChildData struct {
	Flex      *FlexData
	Stack     *StackData
	AlignBy   *AlignmentLine
	AlignSelf *Align
}

// FlexData marks a flex child as flexible.
type FlexData struct {
	Weight float64
	Fit    FlexFit
}

// StackData places a stack child. A child with any inset set is
// positioned; otherwise it is aligned within the stack.
type StackData struct {
	Alignment Alignment
	Left      *Length
	Top       *Length
	Right     *Length
	Bottom    *Length
}

// IsPositioned reports whether any inset is set.
func (d *StackData) IsPositioned() bool {
	return d != nil && (d.Left != nil || d.Top != nil || d.Right != nil || d.Bottom != nil)
}

// ChildDataOf returns the ChildData m's modifiers attached, or the zero
// value.
func ChildDataOf(m IntrinsicMeasurable) ChildData {
	d, _ := m.ParentData().(ChildData)
	return d
}

type parentDataModifier struct {
	BaseModifier
	apply func(*ChildData)
}

func (m parentDataModifier) ModifyParentData(data any) any {
	cd, _ := data.(ChildData)
	m.apply(&cd)
	return cd
}

// Flexible makes a flex child share the space left by its inflexible
// siblings in proportion to weight.
func Flexible(weight float64, fit FlexFit) Modifier {
	return parentDataModifier{apply: func(cd *ChildData) {
		cd.Flex = &FlexData{Weight: weight, Fit: fit}
	}}
}

// Expanded is Flexible with FlexTight: the child fills its share.
func Expanded(weight float64) Modifier {
	return Flexible(weight, FlexTight)
}

// AlignBy aligns a flex child on line instead of the parent's cross axis
// alignment.
func AlignBy(line *AlignmentLine) Modifier {
	return parentDataModifier{apply: func(cd *ChildData) {
		cd.AlignBy = line
	}}
}

// AlignSelf overrides the parent's cross axis alignment for one flex child.
func AlignSelf(a Align) Modifier {
	return parentDataModifier{apply: func(cd *ChildData) {
		cd.AlignSelf = &a
	}}
}

// StackAligned positions a stack child with alignment.
func StackAligned(alignment Alignment) Modifier {
	return parentDataModifier{apply: func(cd *ChildData) {
		cd.Stack = &StackData{Alignment: alignment}
	}}
}

// StackPositioned positions a stack child by insets from the stack's
// edges. fallback aligns an axis with neither inset set.
func StackPositioned(left, top, right, bottom *Length, fallback Alignment) Modifier {
	return parentDataModifier{apply: func(cd *ChildData) {
		cd.Stack = &StackData{Alignment: fallback, Left: left, Top: top, Right: right, Bottom: bottom}
	}}
}

// Inset returns a pointer to l, for StackPositioned.
func Inset(l Length) *Length {
	return &l
}
