package apredis

import (
	"encoding/json"
	"os"
)

// lockInfo is appended to a lock value so that a held lock can be traced back to the process holding it.
type lockInfo struct {
	Hostname    string `json:"hostname,omitempty"`
	ProcessID   int    `json:"pid,omitempty"`
	Environment string `json:"environment,omitempty"`
	Pod         string `json:"pod,omitempty"`
}

func generateDetailedLockValue() string {
	hostname, _ := os.Hostname()

	value, err := json.Marshal(lockInfo{
		Hostname:    hostname,
		ProcessID:   os.Getpid(),
		Environment: os.Getenv("ENV"),
		Pod:         os.Getenv("POD_NAME"),
	})
	if err != nil {
		return ""
	}

	return string(value)
}
