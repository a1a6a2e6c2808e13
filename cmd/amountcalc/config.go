package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hgati/amount"
)

const defaultConfigFile = "amountcalc.toml"

// config is the layout of the configuration file:
//
//	[division]
//	extend = 6
//	max_scale = 1000
type config struct {
	Division divisionConfig `toml:"division"`
}

type divisionConfig struct {
	Extend   int `toml:"extend"`
	MaxScale int `toml:"max_scale"`
}

// loadConfig reads the division policy from the TOML file at path.
// Keys absent from the file keep their values from prec.
func loadConfig(path string, prec amount.Precision) (amount.Precision, error) {
	var cfg config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return prec, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return prec, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("division", "extend") {
		if cfg.Division.Extend < 0 {
			return prec, fmt.Errorf("%s: [division].extend must be non-negative, got %d", path, cfg.Division.Extend)
		}
		prec.Extend = cfg.Division.Extend
	}
	if meta.IsDefined("division", "max_scale") {
		if cfg.Division.MaxScale < 0 {
			return prec, fmt.Errorf("%s: [division].max_scale must be non-negative, got %d", path, cfg.Division.MaxScale)
		}
		prec.MaxScale = cfg.Division.MaxScale
	}
	if err := prec.Validate(); err != nil {
		return prec, fmt.Errorf("%s: %w", path, err)
	}
	return prec, nil
}
