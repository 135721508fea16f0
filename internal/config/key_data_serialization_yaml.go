package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func (kd *KeyData) MarshalYAML() (interface{}, error) {
	if kd.InnerVal == nil {
		return nil, nil
	}

	return kd.InnerVal, nil
}

// UnmarshalYAML picks the concrete key data type from the fields present in the mapping.
func (kd *KeyData) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("key data expected a mapping node, got %s", KindToString(value.Kind))
	}

	var keyData KeyDataType

fieldLoop:
	for i := 0; i < len(value.Content); i += 2 {
		keyNode := value.Content[i]

		switch keyNode.Value {
		case "value":
			keyData = &KeyDataValue{}
			break fieldLoop
		case "env_var":
			keyData = &KeyDataEnvVar{}
			break fieldLoop
		case "path":
			keyData = &KeyDataFile{}
			break fieldLoop
		case "random", "num_bytes":
			keyData = &KeyDataRandomBytes{}
			break fieldLoop
		}
	}

	if keyData == nil {
		return fmt.Errorf("invalid structure for key data type; does not match value, env_var, path, random")
	}

	if err := value.Decode(keyData); err != nil {
		return err
	}

	kd.InnerVal = keyData

	return nil
}
