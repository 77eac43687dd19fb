package scene

import (
	"fmt"
	"io"
	"sort"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/grindlemire/boxlayout/internal/layout"
)

// Entry is the resolved layout of one placed node.
type Entry struct {
	Name   string         `yaml:"name"`
	Depth  int            `yaml:"depth"`
	X      int            `yaml:"x"`
	Y      int            `yaml:"y"`
	Width  int            `yaml:"width"`
	Height int            `yaml:"height"`
	Lines  map[string]int `yaml:"lines,omitempty"`
}

// Report lists every placed node of the tree in paint order with its
// bounds in root coordinates and the scene's lines it exposes.
func (t *Tree) Report(o *layout.Owner) []Entry {
	names := make([]string, 0, len(t.Lines))
	for name := range t.Lines {
		names = append(names, name)
	}
	sort.Strings(names)

	var entries []Entry
	o.Walk(func(n *layout.Node, depth int) {
		r := n.BoundsInRoot()
		e := Entry{
			Name:   n.String(),
			Depth:  depth,
			X:      int(r.X),
			Y:      int(r.Y),
			Width:  int(r.Width),
			Height: int(r.Height),
		}
		for _, name := range names {
			if v, ok := n.Get(t.Lines[name]); ok {
				if e.Lines == nil {
					e.Lines = map[string]int{}
				}
				e.Lines[name] = int(v)
			}
		}
		entries = append(entries, e)
	})
	return entries
}

// WriteText writes entries as an indented outline.
func WriteText(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		line := fmt.Sprintf("%s%s %dx%d at (%d, %d)", strings.Repeat("  ", e.Depth), e.Name, e.Width, e.Height, e.X, e.Y)
		if len(e.Lines) > 0 {
			names := make([]string, 0, len(e.Lines))
			for name := range e.Lines {
				names = append(names, name)
			}
			sort.Strings(names)
			parts := make([]string, len(names))
			for i, name := range names {
				parts[i] = fmt.Sprintf("%s=%d", name, e.Lines[name])
			}
			line += " [" + strings.Join(parts, " ") + "]"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteYAML writes entries as a YAML sequence.
func WriteYAML(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
