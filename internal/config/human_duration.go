package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// HumanDuration is a time.Duration that serializes as a string like "90s" or "2m".
type HumanDuration struct {
	time.Duration
}

func (d HumanDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *HumanDuration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid duration format: %s", string(data))
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("failed to parse duration: %w", err)
	}
	d.Duration = parsed
	return nil
}

func (d HumanDuration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *HumanDuration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("failed to parse duration: %w", err)
	}
	d.Duration = parsed
	return nil
}

// HumanDurationFor returns a HumanDuration for the given string. Panics if the string is invalid.
func HumanDurationFor(h string) *HumanDuration {
	d, err := time.ParseDuration(h)
	if err != nil {
		panic(err)
	}
	return &HumanDuration{Duration: d}
}
