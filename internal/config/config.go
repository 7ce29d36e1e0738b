// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/go-field-validator/models"
)

// StructuredConfig is the top-level configuration container for the formdemo
// application. It aggregates all sub-configurations and is populated by
// merging built-in defaults with values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings shown in the UI.
	App App `envPrefix:"APP_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Numeric configures the numeric validator used by configurable fields.
	Numeric Numeric `envPrefix:"NUMERIC_"`

	// UI holds layout settings of the terminal form.
	UI UI `envPrefix:"UI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Title is the heading of the form.
	// Env: APP_TITLE
	Title string `env:"TITLE"`
}

// Log holds logger configuration.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the path log entries are appended to. The terminal belongs
	// to the form, so logs never go to stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Numeric configures the numeric validator.
type Numeric struct {
	// Kind is the target number kind name ("int8" ... "float64").
	// Env: NUMERIC_KIND
	Kind string `env:"KIND"`

	// Radix is the base used to parse integer kinds (2..36).
	// Env: NUMERIC_RADIX
	Radix int `env:"RADIX"`
}

// NumberKind returns the parsed Kind, or models.NumberKindUnknown.
func (n Numeric) NumberKind() models.NumberKind {
	kind, err := models.ParseNumberKind(n.Kind)
	if err != nil {
		return models.NumberKindUnknown
	}
	return kind
}

// UI holds terminal form layout settings.
type UI struct {
	// FieldWidth is the width of single-line inputs in cells.
	// Env: UI_FIELD_WIDTH
	FieldWidth int `env:"FIELD_WIDTH"`
}

// Default values applied before any other source.
const (
	DefaultTitle      = "Контактная форма"
	DefaultLogLevel   = "info"
	DefaultLogFile    = "formdemo.log"
	DefaultNumberKind = "float64"
	DefaultRadix      = 10
	DefaultFieldWidth = 40
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{Title: DefaultTitle},
		Log:     Log{Level: DefaultLogLevel, File: DefaultLogFile},
		Numeric: Numeric{Kind: DefaultNumberKind, Radix: DefaultRadix},
		UI:      UI{FieldWidth: DefaultFieldWidth},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args (usually os.Args[1:])
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
