package util

import (
	"os"
	"strconv"
	"strings"
)

// GetEnvDefault returns the value of the environment variable with the given key, or the fallback value if the variable is not set or empty.
func GetEnvDefault(key, fallback string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	return val
}

// GetEnvIntDefault returns the integer value of the environment variable, or the fallback if it is unset or not
// a valid integer.
func GetEnvIntDefault(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}

	return i
}
