package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/grindlemire/boxlayout/internal/config"
	"github.com/grindlemire/boxlayout/internal/layout"
)

func TestRootConstraints(t *testing.T) {
	type tc struct {
		width, height int
		out           config.OutputConfig
		termErr       bool
		want          layout.Constraints
		wantErr       bool
	}

	tests := map[string]tc{
		"flags win":          {width: 30, height: 20, out: config.OutputConfig{Width: 1, Height: 1}, want: layout.Loose(30, 20)},
		"configuration":      {out: config.OutputConfig{Width: 50, Height: 40}, want: layout.Loose(50, 40)},
		"terminal":           {want: layout.Loose(120, 40)},
		"mixed":              {width: 10, want: layout.Loose(10, 40)},
		"no terminal":        {termErr: true, want: layout.Loose(fallbackWidth, fallbackHeight)},
		"negative flag size": {width: -1, height: 5, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			termSize := func() (int, int, error) {
				if tt.termErr {
					return 0, 0, errors.New("not a terminal")
				}
				return 120, 40, nil
			}

			got, err := rootConstraints(tt.width, tt.height, tt.out, termSize)
			if (err != nil) != tt.wantErr {
				t.Fatalf("rootConstraints() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("rootConstraints() = %s, want %s", got, tt.want)
			}
		})
	}
}

func writeScene(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}
	return path
}

func TestMeasureFiles(t *testing.T) {
	dir := t.TempDir()
	column := writeScene(t, dir, "column.yaml", `root:
  name: top
  type: column
  children:
    - {name: a, type: leaf, width: 10, height: 5}
`)
	boxed := writeScene(t, dir, "box.yaml", `root:
  name: frame
  type: box
  children:
    - {name: b, type: leaf, width: 10, height: 10}
`)
	opts := measureOptions{constraints: layout.Loose(40, 30), format: "text"}

	got, err := measureFiles(context.Background(), zap.NewNop(), []string{column, boxed}, opts)
	if err != nil {
		t.Fatalf("measureFiles() error = %v", err)
	}

	want := []string{
		"top 10x5 at (0, 0)\n  a 10x5 at (0, 0)\n",
		"frame 40x30 at (0, 0)\n  b 10x10 at (15, 10)\n",
	}
	if len(got) != len(want) {
		t.Fatalf("measureFiles() returned %d outputs, want %d", len(got), len(want))
	}
	for i := range want {
		if string(got[i]) != want[i] {
			t.Errorf("output[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMeasureFiles_DensityAndYAML(t *testing.T) {
	path := writeScene(t, t.TempDir(), "leaf.yaml", `root:
  name: leaf
  type: leaf
  width: 10
  height: 5
`)
	opts := measureOptions{
		constraints: layout.Loose(100, 100),
		format:      "yaml",
		owner:       config.LayoutConfig{Density: 2, FontScale: 1, MaxDepth: 16}.Options(),
	}

	got, err := measureFiles(context.Background(), zap.NewNop(), []string{path}, opts)
	if err != nil {
		t.Fatalf("measureFiles() error = %v", err)
	}

	want := "- name: leaf\n  depth: 0\n  x: 0\n  y: 0\n  width: 20\n  height: 10\n"
	if string(got[0]) != want {
		t.Errorf("output = %q, want %q", got[0], want)
	}
}

func TestMeasureFiles_ReportsFailingFile(t *testing.T) {
	dir := t.TempDir()
	good := writeScene(t, dir, "good.yaml", "root: {type: leaf}\n")
	bad := writeScene(t, dir, "bad.yaml", "root: {type: blob}\n")
	opts := measureOptions{constraints: layout.Loose(10, 10), format: "text"}

	_, err := measureFiles(context.Background(), zap.NewNop(), []string{good, bad}, opts)
	if err == nil {
		t.Fatal("measureFiles() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("error %q does not name bad.yaml", err)
	}
}

func TestDumpConfigDefault(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "config.yaml")

	err := newApp().Run(contextWithEnv(context.Background()), []string{"boxlayout", "dumpconfig", "--default", dest})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.Equal(got, config.ConfigYAML) {
		t.Errorf("dumped configuration differs from the embedded default")
	}
}

func TestMeasureTrace(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "leaf.yaml", "root: {name: leaf, type: leaf, width: 4, height: 2}\n")
	trace := filepath.Join(dir, "trace.log")

	args := []string{"boxlayout", "--trace", trace, "measure", "--width", "20", "--height", "10", path}
	if err := newApp().Run(contextWithEnv(context.Background()), args); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(trace)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "layout pass started") {
		t.Errorf("trace log = %q, want the pass start", data)
	}
}
