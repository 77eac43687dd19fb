package layout

import (
	"math"

	"go.uber.org/zap"
)

// Flex returns a strategy that lays children out along one axis.
//
// Inflexible children are measured first, each against the main axis space
// left by its predecessors. Flexible children (see Flexible) then share
// what remains in proportion to their weights. A flexible child in an
// unbounded main axis is measured as if it were inflexible.
func Flex(style FlexStyle) Strategy {
	f := flexLayout{style: style, axis: axis(style.Direction == Horizontal)}
	s := Strategy{Measure: f.measure}
	if f.axis {
		s.Name = "Row"
		s.MinIntrinsicWidth = f.mainIntrinsic(minWidth)
		s.MaxIntrinsicWidth = f.mainIntrinsic(maxWidth)
		s.MinIntrinsicHeight = f.crossIntrinsic(minHeight)
		s.MaxIntrinsicHeight = f.crossIntrinsic(maxHeight)
	} else {
		s.Name = "Column"
		s.MinIntrinsicHeight = f.mainIntrinsic(minHeight)
		s.MaxIntrinsicHeight = f.mainIntrinsic(maxHeight)
		s.MinIntrinsicWidth = f.crossIntrinsic(minWidth)
		s.MaxIntrinsicWidth = f.crossIntrinsic(maxWidth)
	}
	return s
}

// Row lays children out left-to-right.
func Row(style FlexStyle) Strategy {
	style.Direction = Horizontal
	return Flex(style)
}

// Column lays children out top-to-bottom.
func Column(style FlexStyle) Strategy {
	style.Direction = Vertical
	return Flex(style)
}

type flexLayout struct {
	style FlexStyle
	axis  axis
}

// flexItem holds per-child state during measurement.
type flexItem struct {
	m         Measurable
	data      ChildData
	align     Align
	line      *AlignmentLine
	placeable Placeable
}

func (f flexLayout) item(m Measurable) flexItem {
	it := flexItem{m: m, data: ChildDataOf(m), align: f.style.AlignItems, line: f.style.AlignLine}
	if it.data.AlignSelf != nil {
		it.align = *it.data.AlignSelf
	}
	if it.data.AlignBy != nil {
		it.align = AlignLine
		it.line = it.data.AlignBy
	}
	// Only lines that run across the main axis can align children
	if it.align == AlignLine && (it.line == nil || it.line.horizontal != bool(f.axis)) {
		it.align = AlignStart
		it.line = nil
	}
	return it
}

func (f flexLayout) measure(s *MeasureScope, children []Measurable, c Constraints) LayoutResult {
	ax := f.axis
	mainMax := ax.mainMax(c)
	crossMax := ax.crossMax(c)
	gap := s.Resolve(f.style.Gap).CoerceAtLeast(0)

	items := make([]flexItem, len(children))
	for i, child := range children {
		items[i] = f.item(child)
	}

	childConstraints := func(it *flexItem, mainMin, mainMax Px) Constraints {
		crossMin := Px(0)
		if it.align == AlignStretch && crossMax.IsFinite() {
			crossMin = crossMax
		}
		return ax.constraints(mainMin, mainMax, crossMin, crossMax)
	}

	// 1. Measure inflexible children in order
	used := totalGap(gap, len(items))
	var weighted, zeroWeight []int
	var weights []float64
	for i := range items {
		it := &items[i]
		if fd := it.data.Flex; fd != nil {
			if mainMax.IsFinite() {
				if fd.Weight > 0 {
					weighted = append(weighted, i)
					weights = append(weights, fd.Weight)
				} else {
					zeroWeight = append(zeroWeight, i)
				}
				continue
			}
			if s.pass != nil && !s.intrinsic {
				s.pass.log.Debug("flex weight ignored in unbounded main axis",
					zap.Stringer("node", s.node),
					zap.Int("child", i))
			}
		}
		it.placeable = it.m.Measure(childConstraints(it, 0, mainMax.Sub(used).CoerceAtLeast(0)))
		used = used.Add(ax.main(it.placeable.Size()))
	}

	// 2. Zero-weight flexible children take what they need from the rest
	remaining := mainMax.Sub(used).CoerceAtLeast(0)
	for _, i := range zeroWeight {
		it := &items[i]
		it.placeable = it.m.Measure(childConstraints(it, 0, remaining))
		main := ax.main(it.placeable.Size())
		used = used.Add(main)
		remaining = remaining.Sub(main).CoerceAtLeast(0)
	}

	// 3. Weighted children share the remainder
	shares := DistributeWeights(remaining, weights)
	for k, i := range weighted {
		it := &items[i]
		mainMin := Px(0)
		if it.data.Flex.Fit == FlexTight {
			mainMin = shares[k]
		}
		it.placeable = it.m.Measure(childConstraints(it, mainMin, shares[k]))
		used = used.Add(ax.main(it.placeable.Size()))
	}

	// 4. Resolve the container size
	mainSize := used
	if f.style.MainAxisSize == MainAxisMax && mainMax.IsFinite() {
		mainSize = mainMax
	}
	mainSize = mainSize.Clamp(ax.mainMin(c), mainMax)

	crossSize := Px(0)
	var beforeLine, afterLine Px
	for i := range items {
		it := &items[i]
		cross := ax.cross(it.placeable.Size())
		crossSize = MaxPx(crossSize, cross)
		if it.align == AlignLine {
			if v, ok := it.placeable.Get(it.line); ok {
				beforeLine = MaxPx(beforeLine, v)
				afterLine = MaxPx(afterLine, cross-v)
			}
		}
	}
	crossSize = MaxPx(crossSize, beforeLine.Add(afterLine))
	if f.style.AlignItems == AlignStretch && crossMax.IsFinite() {
		crossSize = crossMax
	}
	crossSize = crossSize.Clamp(ax.crossMin(c), crossMax)

	free := mainSize.Sub(used)
	offset := calculateJustifyOffset(f.style.JustifyContent, free, len(items))
	spacing := calculateJustifySpacing(f.style.JustifyContent, free, len(items))
	size := ax.size(mainSize, crossSize)

	// 5. Place children along the main axis
	return s.Layout(size.Width, size.Height, nil, func(ps *PlacementScope) {
		pos := offset
		for i := range items {
			it := &items[i]
			childSize := it.placeable.Size()
			cross := calculateAlignOffset(it.align, crossSize, ax.cross(childSize))
			if it.align == AlignLine {
				cross = 0
				if v, ok := it.placeable.Get(it.line); ok {
					cross = beforeLine - v
				}
			}
			ps.PlaceAt(it.placeable, ax.position(pos, cross))
			pos += ax.main(childSize) + gap + spacing
		}
	})
}

// mainIntrinsic sums inflexible children and sizes flexible children so
// that none is smaller than its own intrinsic size.
func (f flexLayout) mainIntrinsic(k intrinsicKind) IntrinsicFunc {
	return func(s *IntrinsicScope, children []IntrinsicMeasurable, cross Px) Px {
		fixed := totalGap(s.Resolve(f.style.Gap).CoerceAtLeast(0), len(children))
		var totalWeight, perWeight float64
		for _, child := range children {
			size := queryIntrinsic(child, k, cross)
			fd := ChildDataOf(child).Flex
			if fd == nil || fd.Weight <= 0 {
				fixed = fixed.Add(size)
				continue
			}
			totalWeight += fd.Weight
			if !size.IsFinite() {
				perWeight = math.Inf(1)
				continue
			}
			perWeight = math.Max(perWeight, float64(size)/fd.Weight)
		}
		return fixed.Add(roundPx(perWeight * totalWeight))
	}
}

// crossIntrinsic sizes inflexible children at their max intrinsic main
// size and flexible children at their share of what is left.
func (f flexLayout) crossIntrinsic(k intrinsicKind) IntrinsicFunc {
	mainKind := maxHeight
	if f.axis {
		mainKind = maxWidth
	}
	return func(s *IntrinsicScope, children []IntrinsicMeasurable, mainAvailable Px) Px {
		fixed := totalGap(s.Resolve(f.style.Gap).CoerceAtLeast(0), len(children))
		var totalWeight float64
		crossSize := Px(0)
		for _, child := range children {
			if fd := ChildDataOf(child).Flex; fd != nil && fd.Weight > 0 {
				totalWeight += fd.Weight
				continue
			}
			main := queryIntrinsic(child, mainKind, Infinity)
			fixed = fixed.Add(main)
			crossSize = MaxPx(crossSize, queryIntrinsic(child, k, main))
		}
		if totalWeight == 0 {
			return crossSize
		}
		for _, child := range children {
			fd := ChildDataOf(child).Flex
			if fd == nil || fd.Weight <= 0 {
				continue
			}
			share := Infinity
			if mainAvailable.IsFinite() && fixed.IsFinite() {
				rest := mainAvailable.Sub(fixed).CoerceAtLeast(0)
				share = roundPx(math.Floor(float64(rest) * fd.Weight / totalWeight))
			}
			crossSize = MaxPx(crossSize, queryIntrinsic(child, k, share))
		}
		return crossSize
	}
}

// DistributeWeights splits remaining among weights. Each positive weight
// gets floor(remaining*w/sum); the pixels lost to rounding go to the last
// positive weight so the shares add up to remaining.
func DistributeWeights(remaining Px, weights []float64) []Px {
	shares := make([]Px, len(weights))
	if remaining <= 0 || !remaining.IsFinite() {
		return shares
	}
	var sum float64
	last := -1
	for i, w := range weights {
		if w > 0 {
			sum += w
			last = i
		}
	}
	if last < 0 {
		return shares
	}
	var assigned Px
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		shares[i] = Px(math.Floor(float64(remaining) * w / sum))
		assigned += shares[i]
	}
	shares[last] += remaining - assigned
	return shares
}

func totalGap(gap Px, count int) Px {
	if count < 2 {
		return 0
	}
	return gap.Scale(float64(count - 1))
}

// calculateJustifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func calculateJustifyOffset(justify Justify, freeSpace Px, itemCount int) Px {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	n := Px(itemCount)
	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / (n * 2)
	case JustifySpaceEvenly:
		return freeSpace / (n + 1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// calculateJustifySpacing returns the extra spacing between children
// based on the justify mode and available free space.
func calculateJustifySpacing(justify Justify, freeSpace Px, itemCount int) Px {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	n := Px(itemCount)
	switch justify {
	case JustifySpaceBetween:
		return freeSpace / (n - 1)
	case JustifySpaceAround:
		return freeSpace / n
	case JustifySpaceEvenly:
		return freeSpace / (n + 1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}

// calculateAlignOffset returns the offset for positioning a child on the cross axis.
func calculateAlignOffset(align Align, crossSize, itemSize Px) Px {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignStart, AlignStretch, AlignLine
		return 0
	}
}

// axis is true when the main axis is horizontal.
type axis bool

func (a axis) main(s Size) Px {
	if a {
		return s.Width
	}
	return s.Height
}

func (a axis) cross(s Size) Px {
	if a {
		return s.Height
	}
	return s.Width
}

func (a axis) size(main, cross Px) Size {
	if a {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func (a axis) position(main, cross Px) Position {
	if a {
		return Position{X: main, Y: cross}
	}
	return Position{X: cross, Y: main}
}

func (a axis) constraints(mainMin, mainMax, crossMin, crossMax Px) Constraints {
	if a {
		return Constraints{MinWidth: mainMin, MaxWidth: mainMax, MinHeight: crossMin, MaxHeight: crossMax}
	}
	return Constraints{MinWidth: crossMin, MaxWidth: crossMax, MinHeight: mainMin, MaxHeight: mainMax}
}

func (a axis) mainMin(c Constraints) Px {
	if a {
		return c.MinWidth
	}
	return c.MinHeight
}

func (a axis) mainMax(c Constraints) Px {
	if a {
		return c.MaxWidth
	}
	return c.MaxHeight
}

func (a axis) crossMin(c Constraints) Px {
	if a {
		return c.MinHeight
	}
	return c.MinWidth
}

func (a axis) crossMax(c Constraints) Px {
	if a {
		return c.MaxHeight
	}
	return c.MaxWidth
}
