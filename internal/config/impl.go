package config

import (
	"log/slog"
	"os"
)

const DebugModeEnvVar = "SYNCSTORE_DEBUG_MODE"

type config struct {
	root *Root
}

func (c *config) Validate() error {
	return c.root.Validate()
}

func (c *config) GetRoot() *Root {
	if c == nil {
		return nil
	}

	return c.root
}

func (c *config) IsDebugMode() bool {
	return os.Getenv(DebugModeEnvVar) == "true"
}

func (c *config) GetRootLogger() *slog.Logger {
	return c.root.GetRootLogger()
}

func (c *config) GetGlobalKey() KeyDataType {
	if c == nil || c.root == nil || c.root.GlobalAESKey == nil {
		return nil
	}

	return c.root.GlobalAESKey
}

func FromRoot(root *Root) C {
	return &config{root: root}
}
