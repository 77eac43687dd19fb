package layout

// measuredIntrinsic derives an intrinsic size by running the node's
// measure function against stand-in children. Each stand-in answers
// Measure with its own intrinsic size on the queried axis and the incoming
// maximum on the other, so no real measurement happens.
func (p *pass) measuredIntrinsic(n *Node, k intrinsicKind, cross Px, children []IntrinsicMeasurable) Px {
	proxies := make([]Measurable, len(children))
	for i, child := range children {
		proxies[i] = intrinsicProxy{IntrinsicMeasurable: child, kind: k}
	}

	var c Constraints
	if k.isWidth() {
		c = Constraints{MaxWidth: Infinity, MaxHeight: cross}
	} else {
		c = Constraints{MaxWidth: cross, MaxHeight: Infinity}
	}

	scope := &MeasureScope{Density: p.density, node: n, pass: p, intrinsic: true}
	result := n.strategy.Measure(scope, proxies, c)
	checkResult(k.String(), n, scope, result)

	if k.isWidth() {
		return result.size.Width
	}
	return result.size.Height
}

type intrinsicProxy struct {
	IntrinsicMeasurable
	kind intrinsicKind
}

func (m intrinsicProxy) Measure(c Constraints) Placeable {
	if m.kind.isWidth() {
		return proxyPlaceable{size: Size{
			Width:  queryIntrinsic(m.IntrinsicMeasurable, m.kind, c.MaxHeight),
			Height: c.MaxHeight,
		}}
	}
	return proxyPlaceable{size: Size{
		Width:  c.MaxWidth,
		Height: queryIntrinsic(m.IntrinsicMeasurable, m.kind, c.MaxWidth),
	}}
}

// proxyPlaceable is what a stand-in child returns from Measure. It
// publishes no alignment lines and placing it is a no-op.
type proxyPlaceable struct {
	size Size
}

func (p proxyPlaceable) Width() Px                      { return p.size.Width }
func (p proxyPlaceable) Height() Px                     { return p.size.Height }
func (p proxyPlaceable) Size() Size                     { return p.size }
func (p proxyPlaceable) Get(*AlignmentLine) (Px, bool) { return 0, false }
