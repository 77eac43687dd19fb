package scene

import (
	"bytes"
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v3"
)

type (
	// Scene is a scene file.
	Scene struct {
		Root Node `yaml:"root"`
	}

	// Node describes one layout node.
	Node struct {
		Name      string     `yaml:"name,omitempty"`
		Type      string     `yaml:"type"`
		ZIndex    int        `yaml:"z_index,omitempty"`
		Modifiers []Modifier `yaml:"modifiers,omitempty"`
		Children  []Node     `yaml:"children,omitempty"`

		// row, column
		Style *FlexStyle `yaml:"style,omitempty"`

		// stack, box
		Alignment string `yaml:"alignment,omitempty"`

		// leaf
		Width  *Length           `yaml:"width,omitempty"`
		Height *Length           `yaml:"height,omitempty"`
		Lines  map[string]Length `yaml:"lines,omitempty"`

		// label
		Text       string  `yaml:"text,omitempty"`
		CharWidth  *Length `yaml:"char_width,omitempty"`
		LineHeight *Length `yaml:"line_height,omitempty"`
		Baseline   *Length `yaml:"baseline,omitempty"`

		// intrinsic_width, intrinsic_height
		Intrinsic string `yaml:"intrinsic,omitempty"`

		// line_offset
		Line   string  `yaml:"line,omitempty"`
		Before *Length `yaml:"before,omitempty"`
		After  *Length `yaml:"after,omitempty"`
	}

	// FlexStyle configures a row or column.
	FlexStyle struct {
		Justify      string  `yaml:"justify,omitempty"`
		Align        string  `yaml:"align,omitempty"`
		Line         string  `yaml:"line,omitempty"`
		MainAxisSize string  `yaml:"main_axis_size,omitempty"`
		Gap          *Length `yaml:"gap,omitempty"`
	}

	// Modifier describes one modifier. Exactly one field must be set.
	Modifier struct {
		Padding     []Length       `yaml:"padding,omitempty"`
		AspectRatio *float64       `yaml:"aspect_ratio,omitempty"`
		Size        *SizeModifier  `yaml:"size,omitempty"`
		Width       *Length        `yaml:"width,omitempty"`
		Height      *Length        `yaml:"height,omitempty"`
		Flexible    *FlexModifier  `yaml:"flexible,omitempty"`
		Expanded    *float64       `yaml:"expanded,omitempty"`
		AlignBy     string         `yaml:"align_by,omitempty"`
		AlignSelf   string         `yaml:"align_self,omitempty"`
		Stack       string         `yaml:"stack,omitempty"`
		Positioned  *PositionedMod `yaml:"positioned,omitempty"`
	}

	SizeModifier struct {
		Width  Length `yaml:"width"`
		Height Length `yaml:"height"`
	}

	FlexModifier struct {
		Weight float64 `yaml:"weight"`
		Fit    string  `yaml:"fit,omitempty"`
	}

	PositionedMod struct {
		Left     *Length `yaml:"left,omitempty"`
		Top      *Length `yaml:"top,omitempty"`
		Right    *Length `yaml:"right,omitempty"`
		Bottom   *Length `yaml:"bottom,omitempty"`
		Fallback string  `yaml:"fallback,omitempty"`
	}
)

// Load decodes a scene. Unknown fields are errors.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	return &s, nil
}

// LoadFile decodes the scene file at path.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	s, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
