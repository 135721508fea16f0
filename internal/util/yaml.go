package util

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// YamlBytesToJSON converts a YAML document into the equivalent JSON document so it can be checked against a
// JSON schema.
func YamlBytesToJSON(yamlData []byte) ([]byte, error) {
	var v interface{}
	if err := yaml.Unmarshal(yamlData, &v); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal YAML")
	}

	j, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal to JSON")
	}

	return j, nil
}
