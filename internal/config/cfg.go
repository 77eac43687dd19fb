package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"github.com/grindlemire/boxlayout/internal/layout"
)

//go:embed config.yaml
var ConfigYAML []byte

type (
	LayoutConfig struct {
		Density   float64 `yaml:"density" validate:"gt=0"`
		FontScale float64 `yaml:"font_scale" validate:"gt=0"`
		MaxDepth  int     `yaml:"max_depth" validate:"min=1"`
		Strict    bool    `yaml:"strict"`
	}

	OutputConfig struct {
		Width  int    `yaml:"width" validate:"gte=0"`
		Height int    `yaml:"height" validate:"gte=0"`
		Format string `yaml:"format" validate:"required,oneof=text yaml"`
	}

	Config struct {
		Version int           `yaml:"version" validate:"eq=1"`
		Layout  LayoutConfig  `yaml:"layout"`
		Output  OutputConfig  `yaml:"output"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

// DensityValue returns the configured layout density.
func (c LayoutConfig) DensityValue() layout.Density {
	return layout.Density{Density: c.Density, FontScale: c.FontScale}
}

// Options converts the layout section into options for layout.NewOwner.
func (c LayoutConfig) Options() []layout.Option {
	return []layout.Option{
		layout.WithDensity(c.DensityValue()),
		layout.WithMaxDepth(c.MaxDepth),
		layout.WithStrict(c.Strict),
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of the embedded defaults and performs
// validation.
func LoadConfiguration(path string) (*Config, error) {
	haveFile := len(path) > 0

	cfg, err := unmarshalConfig(ConfigYAML, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
