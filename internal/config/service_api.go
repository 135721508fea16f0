package config

import (
	"fmt"
	"time"
)

const (
	DefaultApiPort          = 8080
	DefaultListPageSize     = 100
	MaxListPageSize         = 1000
	defaultShutdownDuration = 10 * time.Second
)

type Cors struct {
	AllowedOrigins   []string       `json:"allowed_origins,omitempty" yaml:"allowed_origins,omitempty"`
	AllowedMethods   []string       `json:"allowed_methods,omitempty" yaml:"allowed_methods,omitempty"`
	AllowedHeaders   []string       `json:"allowed_headers,omitempty" yaml:"allowed_headers,omitempty"`
	AllowCredentials bool           `json:"allow_credentials,omitempty" yaml:"allow_credentials,omitempty"`
	MaxAge           *HumanDuration `json:"max_age,omitempty" yaml:"max_age,omitempty"`
}

// ServiceApi configures the HTTP listing API.
type ServiceApi struct {
	Port             int            `json:"port,omitempty" yaml:"port,omitempty"`
	Cors             *Cors          `json:"cors,omitempty" yaml:"cors,omitempty"`
	DefaultPageSize  int            `json:"default_page_size,omitempty" yaml:"default_page_size,omitempty"`
	ShutdownDuration *HumanDuration `json:"shutdown_duration,omitempty" yaml:"shutdown_duration,omitempty"`
}

func (s *ServiceApi) GetPort() int {
	if s == nil || s.Port == 0 {
		return DefaultApiPort
	}

	return s.Port
}

func (s *ServiceApi) GetAddr() string {
	return fmt.Sprintf(":%d", s.GetPort())
}

func (s *ServiceApi) GetDefaultPageSize() int {
	if s == nil || s.DefaultPageSize <= 0 {
		return DefaultListPageSize
	}

	return min(s.DefaultPageSize, MaxListPageSize)
}

func (s *ServiceApi) GetShutdownDuration() time.Duration {
	if s == nil || s.ShutdownDuration == nil {
		return defaultShutdownDuration
	}

	return s.ShutdownDuration.Duration
}

func (s *ServiceApi) Validate(vc *ValidationContext) error {
	if s == nil {
		return nil
	}

	if s.Port < 0 || s.Port > 65535 {
		return vc.NewErrorfForField("port", "port must be between 1 and 65535, got %d", s.Port)
	}

	if s.DefaultPageSize > MaxListPageSize {
		return vc.NewErrorfForField("default_page_size", "default page size may not exceed %d", MaxListPageSize)
	}

	return nil
}
