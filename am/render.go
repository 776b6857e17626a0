package am

import (
	"bytes"
	"encoding/json"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/rnokpp/errors"
)

// Render formats for 'am show'
const (
	RenderTOML = "toml"
	RenderJSON = "json"
	RenderYAML = "yaml"
)

// RenderFormats lists the formats accepted by Render.
var RenderFormats = []string{RenderTOML, RenderJSON, RenderYAML}

// Render encodes the effective settings as TOML, JSON or YAML.
func Render(settings map[string]interface{}, format string) ([]byte, error) {
	switch format {
	case RenderTOML, "":
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		if err := enc.Encode(settings); err != nil {
			return nil, errors.Wrap(err, "failed to encode TOML")
		}
		return buf.Bytes(), nil
	case RenderJSON:
		data, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode JSON")
		}
		return append(data, '\n'), nil
	case RenderYAML:
		data, err := yaml.Marshal(settings)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode YAML")
		}
		return data, nil
	default:
		return nil, errors.WithHintf(
			errors.NewInvalidRequestError("unknown format %q", format),
			"use one of: toml, json, yaml")
	}
}

// Settings returns the effective configuration as a nested map.
func Settings() (map[string]interface{}, error) {
	v, err := GetViper()
	if err != nil {
		return nil, err
	}
	return v.AllSettings(), nil
}
