package scene

import (
	"strings"

	"github.com/grindlemire/boxlayout/internal/layout"
)

// LabelStyle describes a monospace font. Lengths are scaled by the
// density's font scale.
type LabelStyle struct {
	CharWidth  layout.Length
	LineHeight layout.Length
	Baseline   layout.Length // from the top of a line
}

// DefaultLabelStyle returns an 8x16 font with its baseline at 12.
func DefaultLabelStyle() LabelStyle {
	return LabelStyle{
		CharWidth:  layout.Dp(8),
		LineHeight: layout.Dp(16),
		Baseline:   layout.Dp(12),
	}
}

type fontMetrics struct {
	char, line, baseline layout.Px
}

func (st LabelStyle) metrics(d layout.Density) fontMetrics {
	scaled := func(l layout.Length) layout.Px {
		return l.Scale(d.FontScale).Resolve(d).CoerceAtLeast(0)
	}
	m := fontMetrics{char: scaled(st.CharWidth), line: scaled(st.LineHeight), baseline: scaled(st.Baseline)}
	if m.char < 1 {
		m.char = 1
	}
	return m
}

// wrapWords breaks words into lines of at most maxChars characters and
// returns each line's length. A word longer than maxChars gets a line of
// its own.
func wrapWords(words []string, maxChars int) []int {
	var lines []int
	for _, w := range words {
		n := len([]rune(w))
		if len(lines) > 0 && lines[len(lines)-1]+1+n <= maxChars {
			lines[len(lines)-1] += 1 + n
			continue
		}
		lines = append(lines, n)
	}
	return lines
}

func maxChars(width layout.Px, m fontMetrics) int {
	if !width.IsFinite() {
		return int(layout.Infinity)
	}
	return int(width / m.char)
}

// Label returns a strategy for word-wrapped text. It publishes
// FirstBaseline and LastBaseline.
func Label(text string, style LabelStyle) layout.Strategy {
	words := strings.Fields(text)

	longest, total := 0, 0
	for i, w := range words {
		n := len([]rune(w))
		longest = max(longest, n)
		if i > 0 {
			total++
		}
		total += n
	}

	height := func(s *layout.IntrinsicScope, _ []layout.IntrinsicMeasurable, width layout.Px) layout.Px {
		m := style.metrics(s.Density)
		return layout.Px(len(wrapWords(words, maxChars(width, m)))) * m.line
	}

	return layout.Strategy{
		Name: "Label",
		Measure: func(s *layout.MeasureScope, _ []layout.Measurable, c layout.Constraints) layout.LayoutResult {
			m := style.metrics(s.Density)
			lines := wrapWords(words, maxChars(c.MaxWidth, m))
			widest := 0
			for _, n := range lines {
				widest = max(widest, n)
			}
			size := c.Constrain(layout.Size{
				Width:  layout.Px(widest) * m.char,
				Height: layout.Px(len(lines)) * m.line,
			})
			var published layout.AlignmentLines
			if len(lines) > 0 {
				published = layout.AlignmentLines{
					layout.FirstBaseline: m.baseline,
					layout.LastBaseline:  layout.Px(len(lines)-1)*m.line + m.baseline,
				}
			}
			return s.Layout(size.Width, size.Height, published, nil)
		},
		MinIntrinsicWidth: func(s *layout.IntrinsicScope, _ []layout.IntrinsicMeasurable, _ layout.Px) layout.Px {
			return layout.Px(longest) * style.metrics(s.Density).char
		},
		MaxIntrinsicWidth: func(s *layout.IntrinsicScope, _ []layout.IntrinsicMeasurable, _ layout.Px) layout.Px {
			return layout.Px(total) * style.metrics(s.Density).char
		},
		MinIntrinsicHeight: height,
		MaxIntrinsicHeight: height,
	}
}
