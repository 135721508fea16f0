package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func (r *Redis) MarshalYAML() (interface{}, error) {
	if r.InnerVal == nil {
		return nil, nil
	}
	return r.InnerVal, nil
}

// UnmarshalYAML decodes into the concrete redis type named by the provider field.
func (r *Redis) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("redis expected a mapping node, got %s", KindToString(value.Kind))
	}

	var impl RedisImpl

fieldLoop:
	for i := 0; i < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valueNode := value.Content[i+1]

		if keyNode.Value == "provider" {
			switch RedisProvider(valueNode.Value) {
			case RedisProviderMiniredis:
				impl = &RedisMiniredis{Provider: RedisProviderMiniredis}
				break fieldLoop
			case RedisProviderRedis:
				impl = &RedisReal{Provider: RedisProviderRedis}
				break fieldLoop
			default:
				return fmt.Errorf("unknown redis provider %v", valueNode.Value)
			}
		}
	}

	if impl == nil {
		return fmt.Errorf("invalid structure for redis; missing provider field")
	}

	if err := value.Decode(impl); err != nil {
		return err
	}

	r.InnerVal = impl
	return nil
}
