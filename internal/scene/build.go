package scene

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/multierr"

	"github.com/grindlemire/boxlayout/internal/layout"
)

var (
	ErrUnknownType     = errors.New("unknown node type")
	ErrUnknownValue    = errors.New("unknown value")
	ErrInvalidModifier = errors.New("invalid modifier")
	ErrChildren        = errors.New("invalid number of children")
)

var alignments = map[string]layout.Alignment{
	"top_left":      layout.TopLeft,
	"top_center":    layout.TopCenter,
	"top_right":     layout.TopRight,
	"center_left":   layout.CenterLeft,
	"center":        layout.Center,
	"center_right":  layout.CenterRight,
	"bottom_left":   layout.BottomLeft,
	"bottom_center": layout.BottomCenter,
	"bottom_right":  layout.BottomRight,
}

var justifies = map[string]layout.Justify{
	"start":         layout.JustifyStart,
	"end":           layout.JustifyEnd,
	"center":        layout.JustifyCenter,
	"space_between": layout.JustifySpaceBetween,
	"space_around":  layout.JustifySpaceAround,
	"space_evenly":  layout.JustifySpaceEvenly,
}

var aligns = map[string]layout.Align{
	"start":    layout.AlignStart,
	"end":      layout.AlignEnd,
	"center":   layout.AlignCenter,
	"stretch":  layout.AlignStretch,
	"baseline": layout.AlignLine,
}

var mainAxisSizes = map[string]layout.MainAxisSize{
	"min": layout.MainAxisMin,
	"max": layout.MainAxisMax,
}

var fits = map[string]layout.FlexFit{
	"tight": layout.FlexTight,
	"loose": layout.FlexLoose,
}

var intrinsicSizes = map[string]layout.IntrinsicSize{
	"min": layout.IntrinsicMin,
	"max": layout.IntrinsicMax,
}

// Tree is a built scene.
type Tree struct {
	Root *layout.Node

	// Lines maps every line name the scene used to its line.
	Lines map[string]*layout.AlignmentLine
}

// Build creates the node tree s describes. Every problem in the scene is
// reported, not just the first.
func Build(s *Scene) (*Tree, error) {
	b := &builder{lines: map[string]*layout.AlignmentLine{
		"first_baseline": layout.FirstBaseline,
		"last_baseline":  layout.LastBaseline,
	}}
	root := b.node(&s.Root, "root")
	if b.errs != nil {
		return nil, b.errs
	}
	return &Tree{Root: root, Lines: b.lines}, nil
}

type builder struct {
	lines map[string]*layout.AlignmentLine
	errs  error
}

func (b *builder) fail(path string, err error) {
	b.errs = multierr.Append(b.errs, fmt.Errorf("%s: %w", path, err))
}

// lookup returns m[key], or def when key is empty.
func lookup[T any](b *builder, path, field string, m map[string]T, key string, def T) T {
	if key == "" {
		return def
	}
	v, ok := m[key]
	if !ok {
		b.fail(path, fmt.Errorf("%w %q for %s", ErrUnknownValue, key, field))
		return def
	}
	return v
}

// line returns the line called name. Names other than the baselines
// create horizontal lines shared by the whole scene.
func (b *builder) line(name string) *layout.AlignmentLine {
	if l, ok := b.lines[name]; ok {
		return l
	}
	l := layout.NewHorizontalLine(name, nil)
	b.lines[name] = l
	return l
}

func (b *builder) node(d *Node, path string) *layout.Node {
	n := layout.NewNode(b.strategy(d, path))
	n.SetName(d.Name)
	n.SetZIndex(d.ZIndex)

	mods := make([]layout.Modifier, 0, len(d.Modifiers))
	for i := range d.Modifiers {
		if m := b.modifier(&d.Modifiers[i], path+".modifiers["+strconv.Itoa(i)+"]"); m != nil {
			mods = append(mods, m)
		}
	}
	n.SetModifiers(mods...)

	for i := range d.Children {
		c := &d.Children[i]
		childPath := path + ".children[" + strconv.Itoa(i) + "]"
		if c.Name != "" {
			childPath = path + "/" + c.Name
		}
		if err := n.AddChild(b.node(c, childPath)); err != nil {
			b.fail(childPath, err)
		}
	}
	return n
}

func (b *builder) children(d *Node, path string, most int) {
	if len(d.Children) > most {
		b.fail(path, fmt.Errorf("%w: %s takes at most %d, got %d", ErrChildren, d.Type, most, len(d.Children)))
	}
}

func (b *builder) strategy(d *Node, path string) layout.Strategy {
	switch d.Type {
	case "row", "column":
		style := b.flexStyle(d.Style, path)
		if d.Type == "row" {
			return layout.Row(style)
		}
		return layout.Column(style)

	case "stack":
		return layout.Stack(lookup(b, path, "alignment", alignments, d.Alignment, layout.TopLeft))

	case "box":
		b.children(d, path, 1)
		return layout.Box(lookup(b, path, "alignment", alignments, d.Alignment, layout.Center))

	case "wrap":
		b.children(d, path, 1)
		return layout.Wrap()

	case "leaf":
		b.children(d, path, 0)
		var lines map[*layout.AlignmentLine]layout.Length
		if len(d.Lines) > 0 {
			lines = make(map[*layout.AlignmentLine]layout.Length, len(d.Lines))
			for name, v := range d.Lines {
				lines[b.line(name)] = v.Length
			}
		}
		return layout.Leaf(lengthOr(d.Width, layout.Dp(0)), lengthOr(d.Height, layout.Dp(0)), lines)

	case "label":
		b.children(d, path, 0)
		style := DefaultLabelStyle()
		style.CharWidth = lengthOr(d.CharWidth, style.CharWidth)
		style.LineHeight = lengthOr(d.LineHeight, style.LineHeight)
		style.Baseline = lengthOr(d.Baseline, style.Baseline)
		return Label(d.Text, style)

	case "intrinsic_width", "intrinsic_height":
		b.children(d, path, 1)
		size := lookup(b, path, "intrinsic", intrinsicSizes, d.Intrinsic, layout.IntrinsicMax)
		if d.Type == "intrinsic_width" {
			return layout.IntrinsicWidth(size)
		}
		return layout.IntrinsicHeight(size)

	case "line_offset":
		b.children(d, path, 1)
		if d.Line == "" {
			b.fail(path, errors.New("line_offset requires line"))
			return layout.Wrap()
		}
		return layout.AlignmentLineOffset(b.line(d.Line), lengthOr(d.Before, layout.Dp(0)), lengthOr(d.After, layout.Dp(0)))

	case "":
		b.fail(path, errors.New("missing node type"))
	default:
		b.fail(path, fmt.Errorf("%w %q", ErrUnknownType, d.Type))
	}
	return layout.Wrap()
}

func (b *builder) flexStyle(s *FlexStyle, path string) layout.FlexStyle {
	style := layout.DefaultFlexStyle()
	if s == nil {
		return style
	}
	style.JustifyContent = lookup(b, path, "justify", justifies, s.Justify, layout.JustifyStart)
	style.AlignItems = lookup(b, path, "align", aligns, s.Align, layout.AlignStart)
	style.MainAxisSize = lookup(b, path, "main_axis_size", mainAxisSizes, s.MainAxisSize, layout.MainAxisMin)
	style.Gap = lengthOr(s.Gap, style.Gap)
	if style.AlignItems == layout.AlignLine {
		name := s.Line
		if name == "" {
			name = "first_baseline"
		}
		style.AlignLine = b.line(name)
	}
	return style
}

func (b *builder) modifier(m *Modifier, path string) layout.Modifier {
	set := 0
	for _, ok := range []bool{
		m.Padding != nil, m.AspectRatio != nil, m.Size != nil, m.Width != nil, m.Height != nil,
		m.Flexible != nil, m.Expanded != nil, m.AlignBy != "", m.AlignSelf != "", m.Stack != "", m.Positioned != nil,
	} {
		if ok {
			set++
		}
	}
	if set != 1 {
		b.fail(path, fmt.Errorf("%w: exactly one field must be set, got %d", ErrInvalidModifier, set))
		return nil
	}

	switch {
	case m.Padding != nil:
		p := m.Padding
		switch len(p) {
		case 1:
			return layout.Padding(layout.EdgeAll(p[0].Length))
		case 2:
			return layout.Padding(layout.EdgeSymmetric(p[0].Length, p[1].Length))
		case 4:
			return layout.Padding(layout.EdgeTRBL(p[0].Length, p[1].Length, p[2].Length, p[3].Length))
		}
		b.fail(path, fmt.Errorf("%w: padding takes 1, 2 or 4 lengths, got %d", ErrInvalidModifier, len(p)))
		return nil

	case m.AspectRatio != nil:
		mod, err := layout.AspectRatio(*m.AspectRatio)
		if err != nil {
			b.fail(path, err)
			return nil
		}
		return mod

	case m.Size != nil:
		return layout.SizeOverride(m.Size.Width.Length, m.Size.Height.Length)
	case m.Width != nil:
		return layout.Width(m.Width.Length)
	case m.Height != nil:
		return layout.Height(m.Height.Length)

	case m.Flexible != nil:
		if m.Flexible.Weight < 0 {
			b.fail(path, fmt.Errorf("%w: negative weight %v", ErrInvalidModifier, m.Flexible.Weight))
			return nil
		}
		return layout.Flexible(m.Flexible.Weight, lookup(b, path, "fit", fits, m.Flexible.Fit, layout.FlexLoose))

	case m.Expanded != nil:
		if *m.Expanded < 0 {
			b.fail(path, fmt.Errorf("%w: negative weight %v", ErrInvalidModifier, *m.Expanded))
			return nil
		}
		return layout.Expanded(*m.Expanded)

	case m.AlignBy != "":
		return layout.AlignBy(b.line(m.AlignBy))
	case m.AlignSelf != "":
		return layout.AlignSelf(lookup(b, path, "align_self", aligns, m.AlignSelf, layout.AlignStart))
	case m.Stack != "":
		return layout.StackAligned(lookup(b, path, "stack", alignments, m.Stack, layout.TopLeft))

	default:
		p := m.Positioned
		return layout.StackPositioned(p.Left.ptr(), p.Top.ptr(), p.Right.ptr(), p.Bottom.ptr(),
			lookup(b, path, "fallback", alignments, p.Fallback, layout.TopLeft))
	}
}

func lengthOr(l *Length, def layout.Length) layout.Length {
	if l == nil {
		return def
	}
	return l.Length
}

func (l *Length) ptr() *layout.Length {
	if l == nil {
		return nil
	}
	v := l.Length
	return &v
}
