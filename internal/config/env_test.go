// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TITLE": "Регистрация",

		"LOG_LEVEL": "debug",
		"LOG_FILE":  "/tmp/formdemo.log",

		"NUMERIC_KIND":  "int32",
		"NUMERIC_RADIX": "16",

		"UI_FIELD_WIDTH": "60",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "Регистрация", cfg.App.Title)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/formdemo.log", cfg.Log.File)
	assert.Equal(t, "int32", cfg.Numeric.Kind)
	assert.Equal(t, 16, cfg.Numeric.Radix)
	assert.Equal(t, 60, cfg.UI.FieldWidth)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"NUMERIC_KIND": "int8",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "int8", cfg.Numeric.Kind)
	assert.Zero(t, cfg.Numeric.Radix)
	assert.Empty(t, cfg.App.Title)
	assert.Empty(t, cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidNumber(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "radix not a number", key: "NUMERIC_RADIX", val: "sixteen"},
		{name: "field width not a number", key: "UI_FIELD_WIDTH", val: "wide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{tt.key: tt.val})

			err := parseEnv(&StructuredConfig{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error getting env configs")
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_TITLE",

		"LOG_LEVEL",
		"LOG_FILE",

		"NUMERIC_KIND",
		"NUMERIC_RADIX",

		"UI_FIELD_WIDTH",
	}
	for _, k := range keys {
		// t.Setenv restores the previous value on cleanup.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
