package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Title string `json:"title"`
	} `json:"app,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`

	Numeric struct {
		Kind  string `json:"kind"`
		Radix int    `json:"radix"`
	} `json:"numeric,omitempty"`

	UI struct {
		FieldWidth int `json:"field_width"`
	} `json:"ui,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Title: jsonCfg.App.Title,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
		Numeric: Numeric{
			Kind:  jsonCfg.Numeric.Kind,
			Radix: jsonCfg.Numeric.Radix,
		},
		UI: UI{
			FieldWidth: jsonCfg.UI.FieldWidth,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
