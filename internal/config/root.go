package config

import (
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

type Root struct {
	Api          ServiceApi     `json:"api" yaml:"api"`
	Database     *Database      `json:"database" yaml:"database"`
	Logging      *LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
	Redis        *Redis         `json:"redis,omitempty" yaml:"redis,omitempty"`
	GlobalAESKey *KeyData       `json:"global_aes_key,omitempty" yaml:"global_aes_key,omitempty"`
}

func (r *Root) GetRootLogger() *slog.Logger {
	if r == nil || r.Logging == nil {
		return (&LoggingConfigNone{Type: LoggingConfigTypeNone}).GetRootLogger()
	}

	return r.Logging.GetRootLogger()
}

func (r *Root) Validate() error {
	vc := &ValidationContext{Path: "$"}
	result := &multierror.Error{}

	if r.Database == nil {
		result = multierror.Append(result, vc.NewError("database block is required"))
	} else if err := r.Database.Validate(vc.PushField("database")); err != nil {
		result = multierror.Append(result, err)
	}

	if err := r.Redis.Validate(vc.PushField("redis")); err != nil {
		result = multierror.Append(result, err)
	}

	if err := r.Api.Validate(vc.PushField("api")); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

func UnmarshallYamlRootString(data string) (*Root, error) {
	return UnmarshallYamlRoot([]byte(data))
}

func UnmarshallYamlRoot(data []byte) (*Root, error) {
	var root Root
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	return &root, nil
}
