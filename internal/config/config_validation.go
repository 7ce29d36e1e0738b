// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.Title) == "" {
		return ErrInvalidAppConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	if !cfg.Numeric.NumberKind().IsValid() {
		return fmt.Errorf("%w: unknown number kind %q", ErrInvalidNumericConfigs, cfg.Numeric.Kind)
	}
	if cfg.Numeric.Radix < minRadix || cfg.Numeric.Radix > maxRadix {
		return fmt.Errorf("%w: radix %d is out of range [%d, %d]", ErrInvalidNumericConfigs, cfg.Numeric.Radix, minRadix, maxRadix)
	}

	if cfg.UI.FieldWidth < minFieldWidth {
		return fmt.Errorf("%w: field width should be at least %d", ErrInvalidUIConfigs, minFieldWidth)
	}

	return nil
}

const (
	minRadix      = 2
	maxRadix      = 36
	minFieldWidth = 10
)
