package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/util"
)

// LoadConfig reads a YAML config file, checks it against the embedded JSON schema, then decodes and validates it.
func LoadConfig(path string) (C, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return LoadConfigBytes(content)
}

func LoadConfigBytes(content []byte) (C, error) {
	schema, err := CompileSchema(SchemaIdConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config schema")
	}

	configJsonBytes, err := util.YamlBytesToJSON(content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert YAML to JSON for config schema validation")
	}

	var configAsParsedJson interface{}
	if err := json.Unmarshal(configJsonBytes, &configAsParsedJson); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config JSON for config schema validation")
	}

	if err := schema.Validate(configAsParsedJson); err != nil {
		return nil, errors.Wrap(err, "config schema validation failed")
	}

	root, err := UnmarshallYamlRoot(content)
	if err != nil {
		return nil, err
	}

	c := &config{root: root}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return c, nil
}
