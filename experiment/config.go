// Package experiment — JSON config loading.
package experiment

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// LoadConfig reads a JSON experiment configuration from path. Fields
// absent from the file keep their DefaultConfig values, so a file may
// override only what it cares about, e.g.
//
//	{"n": 10, "trials": 2000, "seed": 7}
//
// The decoded configuration is validated by Run, not here.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("experiment: read config: %w", err)
	}

	var fields map[string]any
	if err = json.Unmarshal(raw, &fields); err != nil {
		return Config{}, fmt.Errorf("experiment: parse config: %w", err)
	}

	cfg := DefaultConfig()
	if err = mapstructure.Decode(fields, &cfg); err != nil {
		return Config{}, fmt.Errorf("experiment: decode config: %w", err)
	}

	return cfg, nil
}
