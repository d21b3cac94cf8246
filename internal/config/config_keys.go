// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the CLI interface where config is
// accessed by string keys (e.g., "scan.top").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/false". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"confirm.delete",
		"scan.top",
		"log.enabled",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "confirm.delete":
		return strconv.FormatBool(c.ConfirmDelete()), nil
	case "scan.top":
		return strconv.Itoa(c.ScanTop()), nil
	case "log.enabled":
		return strconv.FormatBool(c.LogEnabled()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "confirm.delete":
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%w: confirm.delete must be true or false", ErrInvalidValue)
		}
		c.Confirm.Delete = &b
	case "scan.top":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinScanTop || n > MaxScanTop {
			return fmt.Errorf("%w: scan.top must be between %d and %d", ErrInvalidValue, MinScanTop, MaxScanTop)
		}
		c.Scan.Top = &n
	case "log.enabled":
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%w: log.enabled must be true or false", ErrInvalidValue)
		}
		c.Log.Enabled = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"confirm.delete": strconv.FormatBool(c.ConfirmDelete()),
		"scan.top":       strconv.Itoa(c.ScanTop()),
		"log.enabled":    strconv.FormatBool(c.LogEnabled()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "confirm.delete":
		return c.Confirm.Delete != nil
	case "scan.top":
		return c.Scan.Top != nil
	case "log.enabled":
		return c.Log.Enabled != nil
	default:
		return false
	}
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %s", value)
	}
}
