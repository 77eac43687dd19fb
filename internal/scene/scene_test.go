package scene

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/grindlemire/boxlayout/internal/layout"
)

const formScene = `root:
  name: form
  type: column
  children:
    - name: row
      type: row
      style: {align: baseline}
      children:
        - name: caption
          type: label
          text: Name
        - name: field
          type: leaf
          width: 40
          height: 30
          lines: {first_baseline: 20}
    - name: footer
      type: leaf
      width: 10
      height: 5
      modifiers:
        - padding: [2]
`

func buildAndLayout(t *testing.T, src string, c layout.Constraints) (*Tree, *layout.Owner) {
	t.Helper()
	s, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	tree, err := Build(s)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	o, err := layout.NewOwner(tree.Root)
	if err != nil {
		t.Fatalf("NewOwner() error = %v", err)
	}
	if err := o.Layout(c); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	return tree, o
}

func TestBuild_Report(t *testing.T) {
	tree, o := buildAndLayout(t, formScene, layout.Loose(200, 200))

	baselines := map[string]int{"first_baseline": 20, "last_baseline": 20}
	want := []Entry{
		{Name: "form", Depth: 0, X: 0, Y: 0, Width: 72, Height: 39, Lines: baselines},
		{Name: "row", Depth: 1, X: 0, Y: 0, Width: 72, Height: 30, Lines: baselines},
		{Name: "caption", Depth: 2, X: 0, Y: 8, Width: 32, Height: 16, Lines: map[string]int{"first_baseline": 12, "last_baseline": 12}},
		{Name: "field", Depth: 2, X: 32, Y: 0, Width: 40, Height: 30, Lines: map[string]int{"first_baseline": 20}},
		{Name: "footer", Depth: 1, X: 0, Y: 30, Width: 14, Height: 9},
	}

	got := tree.Report(o)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Report() =\n%+v\nwant\n%+v", got, want)
	}
}

func TestBuild_CustomLineIsShared(t *testing.T) {
	src := `root:
  type: row
  style: {align: baseline, line: title}
  children:
    - {name: a, type: leaf, width: 10, height: 10, lines: {title: 7}}
    - {name: b, type: leaf, width: 10, height: 10, lines: {title: 3}}
`
	tree, _ := buildAndLayout(t, src, layout.Loose(100, 100))

	a, b := tree.Root.Children()[0], tree.Root.Children()[1]
	if got := a.Position(); got != (layout.Position{X: 0, Y: 0}) {
		t.Errorf("a.Position() = %s, want (0, 0)", got)
	}
	if got := b.Position(); got != (layout.Position{X: 10, Y: 4}) {
		t.Errorf("b.Position() = %s, want (10, 4)", got)
	}
	if got := tree.Root.Size(); got != (layout.Size{Width: 20, Height: 14}) {
		t.Errorf("root.Size() = %s, want 20px x 14px", got)
	}
}

func TestBuild_ReportsEveryError(t *testing.T) {
	src := `root:
  type: column
  children:
    - type: blob
    - type: leaf
      modifiers:
        - {width: 4, height: 4}
        - aspect_ratio: 0
    - type: leaf
      children:
        - type: leaf
    - type: stack
      alignment: middle
`
	s, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	_, err = Build(s)
	if err == nil {
		t.Fatal("Build() error = nil, want errors")
	}
	if got := len(multierr.Errors(err)); got != 5 {
		t.Errorf("Build() returned %d errors, want 5: %v", got, err)
	}
	for _, target := range []error{ErrUnknownType, ErrInvalidModifier, layout.ErrInvalidModifier, ErrChildren, ErrUnknownValue} {
		if !errors.Is(err, target) {
			t.Errorf("errors.Is(err, %v) = false", target)
		}
	}
	if !strings.Contains(err.Error(), "root.children[3]") {
		t.Errorf("error %q does not name the failing node", err)
	}
}

func TestBuild_Modifiers(t *testing.T) {
	type tc struct {
		modifier string
		c        layout.Constraints
		want     layout.Size
	}

	tests := map[string]tc{
		"padding symmetric": {modifier: "padding: [1, 2]", c: layout.Loose(100, 100), want: layout.Size{Width: 14, Height: 12}},
		"padding trbl":      {modifier: "padding: [1, 2, 3, 4]", c: layout.Loose(100, 100), want: layout.Size{Width: 16, Height: 14}},
		"size":              {modifier: "size: {width: 30, height: 20}", c: layout.Loose(100, 100), want: layout.Size{Width: 30, Height: 20}},
		"width in px":       {modifier: "width: 25px", c: layout.Loose(100, 100), want: layout.Size{Width: 25, Height: 10}},
		"aspect ratio":      {modifier: "aspect_ratio: 2", c: layout.Loose(100, 100), want: layout.Size{Width: 100, Height: 50}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			src := "root:\n  type: leaf\n  width: 10\n  height: 10\n  modifiers:\n    - " + tt.modifier + "\n"
			tree, _ := buildAndLayout(t, src, tt.c)

			if got := tree.Root.Size(); got != tt.want {
				t.Errorf("Size() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLoad_UnknownField(t *testing.T) {
	src := `root:
  type: leaf
  colour: red
`
	if _, err := Load(strings.NewReader(src)); err == nil {
		t.Error("Load() error = nil, want error for unknown field")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(formScene), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if s.Root.Name != "form" || len(s.Root.Children) != 2 {
		t.Errorf("LoadFile() root = %q with %d children, want form with 2", s.Root.Name, len(s.Root.Children))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile(missing) error = nil, want error")
	}
}

func TestParseLength(t *testing.T) {
	type tc struct {
		in      string
		want    layout.Length
		wantErr bool
	}

	tests := map[string]tc{
		"bare number": {in: "12", want: layout.Dp(12)},
		"dp suffix":   {in: "2.5dp", want: layout.Dp(2.5)},
		"px suffix":   {in: "3px", want: layout.PxLength(3)},
		"infinite":    {in: "inf", want: layout.Dp(math.Inf(1))},
		"garbage":     {in: "abc", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseLength(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLength(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got.Length != tt.want {
				t.Errorf("ParseLength(%q) = %s, want %s", tt.in, got.Length, tt.want)
			}
		})
	}
}

func TestWriteText(t *testing.T) {
	entries := []Entry{
		{Name: "root", Width: 20, Height: 10},
		{Name: "child", Depth: 1, X: 2, Y: 3, Width: 5, Height: 4, Lines: map[string]int{"last_baseline": 4, "first_baseline": 1}},
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, entries); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	want := "root 20x10 at (0, 0)\n  child 5x4 at (2, 3) [first_baseline=1 last_baseline=4]\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteText() = %q, want %q", got, want)
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, []Entry{{Name: "root", Width: 20, Height: 10}}); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}

	want := "- name: root\n  depth: 0\n  x: 0\n  y: 0\n  width: 20\n  height: 10\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteYAML() = %q, want %q", got, want)
	}
}
