package config

// SPDX-FileCopyrightText: The rscodec Authors

// YAML-based configuration for the rsencode/rsdecode/rsbench/rsgen
// drivers, following the search-list-of-candidate-paths pattern used by
// the reference program's deviceid_init for tocalls.yaml: try each
// location in order, the first that opens wins, and a missing file is
// not an error — the caller falls back to defaults.

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Codec mirrors rs.Params as a serialisable document; command-line
// flags override whatever a loaded file sets.
type Codec struct {
	Prime uint32 `yaml:"prime"`
	K     int    `yaml:"k"`
	E     int    `yaml:"e"`
}

// Config is the top-level document shape for rscodec.yaml.
type Config struct {
	Codec         Codec `yaml:"codec"`
	ParityTrusted bool  `yaml:"parity_trusted"`
	Workers       int   `yaml:"workers"`
}

// Default returns the configuration that matches rs.DefaultParams, used
// when no file is found or supplied.
func Default() Config {
	return Config{
		Codec:         Codec{Prime: 257, K: 10, E: 3},
		ParityTrusted: true,
		Workers:       0,
	}
}

// SearchLocations is the ordered list of paths Load tries when the
// caller does not name one explicitly.
var SearchLocations = []string{
	"rscodec.yaml",
	"rscodec.yml",
	"config/rscodec.yaml",
	"/etc/rscodec/rscodec.yaml",
}

// Load reads path if non-empty, otherwise the first readable entry in
// SearchLocations, and merges it onto Default(). A missing file at any
// of the default search locations is not an error — the caller gets
// defaults back. An explicitly named path that cannot be opened or
// parsed is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: opening %s: %w", path, err)
		}
		defer f.Close()
		return mergeFrom(cfg, f, path)
	}

	for _, candidate := range SearchLocations {
		f, err := os.Open(candidate)
		if err != nil {
			continue
		}
		merged, err := mergeFrom(cfg, f, candidate)
		f.Close()
		return merged, err
	}

	return cfg, nil
}

func mergeFrom(base Config, r io.Reader, name string) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", name, err)
	}

	overlay := base
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", name, err)
	}
	return overlay, nil
}
