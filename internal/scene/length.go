package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/grindlemire/boxlayout/internal/layout"
)

// Length is a layout.Length that decodes from a YAML number or string.
type Length struct {
	layout.Length
}

// ParseLength parses "12", "12dp", "3px" or "inf".
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	unit := layout.UnitDp
	switch {
	case strings.HasSuffix(s, "px"):
		unit = layout.UnitPx
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "dp"):
		s = strings.TrimSuffix(s, "dp")
	}
	if s == "inf" {
		return Length{layout.Length{Amount: math.Inf(1), Unit: unit}}, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		return Length{}, fmt.Errorf("invalid length %q", s)
	}
	return Length{layout.Length{Amount: v, Unit: unit}}, nil
}

func (l *Length) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: length must be a scalar", value.Line)
	}
	parsed, err := ParseLength(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*l = parsed
	return nil
}

func (l Length) MarshalYAML() (any, error) {
	return l.Length.String(), nil
}
