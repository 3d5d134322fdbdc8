package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlabel/gridio"
	"github.com/katalvlaran/lvlabel/label"
)

// Config collects the tool-level knobs. Flags override file values,
// file values override defaults.
type Config struct {
	// Background and Foreground are the single runes encoding text grids.
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	// Threshold is the luminance cutoff for the image subcommand.
	Threshold uint8 `yaml:"threshold"`
	// Connectivity is "4", "8" or "both".
	Connectivity string `yaml:"connectivity"`
}

func defaultConfig() Config {
	return Config{
		Background:   "0",
		Foreground:   "1",
		Threshold:    128,
		Connectivity: "both",
	}
}

// loadConfig returns defaults overlaid with the YAML file at path, if any.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// singleRune extracts the lone rune of a config field.
func singleRune(field, value string) (rune, error) {
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError || size != len(value) {
		return 0, fmt.Errorf("config %s must be a single rune, got %q", field, value)
	}

	return r, nil
}

// decodeOptions builds the text codec options from the configured runes.
func (c Config) decodeOptions() (gridio.DecodeOptions, error) {
	bg, err := singleRune("background", c.Background)
	if err != nil {
		return gridio.DecodeOptions{}, err
	}
	fg, err := singleRune("foreground", c.Foreground)
	if err != nil {
		return gridio.DecodeOptions{}, err
	}

	return gridio.DecodeOptions{Background: bg, Foreground: fg}, nil
}

// connectivities resolves the Connectivity field to the labelings to run.
func (c Config) connectivities() ([]label.Connectivity, error) {
	switch c.Connectivity {
	case "4":
		return []label.Connectivity{label.Conn4}, nil
	case "8":
		return []label.Connectivity{label.Conn8}, nil
	case "both":
		return []label.Connectivity{label.Conn4, label.Conn8}, nil
	default:
		return nil, fmt.Errorf("config connectivity must be \"4\", \"8\" or \"both\", got %q", c.Connectivity)
	}
}
