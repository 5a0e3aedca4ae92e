// config_keys.go provides key-value access to configuration settings for
// the CLI and MCP surfaces, where config is addressed by dotted string keys
// such as "batch.workers".
//
// Optional fields are pointers so "not set" (nil) differs from an explicit
// zero or false; defaults apply only to unset values.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/worthit/internal/duration"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"output.unit",
		"batch.workers",
		"limits.max_phrase",
		"serve.addr",
		"log.audit", "log.file", "log.max_size_mb", "log.max_backups",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "output.unit":
		return c.Unit().String(), nil
	case "batch.workers":
		return strconv.Itoa(c.Workers()), nil
	case "limits.max_phrase":
		return strconv.Itoa(c.MaxPhrase()), nil
	case "serve.addr":
		return c.Addr(), nil
	case "log.audit":
		return strconv.FormatBool(c.Audit()), nil
	case "log.file":
		return c.LogFile(), nil
	case "log.max_size_mb":
		return strconv.Itoa(c.MaxSizeMB()), nil
	case "log.max_backups":
		return strconv.Itoa(c.MaxBackups()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "output.unit":
		u, err := duration.ParseUnit(value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		c.Output.Unit = u.String()
	case "batch.workers":
		return setInt(&c.Batch.Workers, key, value, MinWorkers, MaxWorkers)
	case "limits.max_phrase":
		return setInt(&c.Limits.MaxPhrase, key, value, MinMaxPhrase, MaxMaxPhrase)
	case "serve.addr":
		if !strings.Contains(value, ":") {
			return fmt.Errorf("%w: serve.addr must be host:port", ErrInvalidValue)
		}
		c.Serve.Addr = value
	case "log.audit":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: log.audit must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Log.Audit = &b
	case "log.file":
		c.Log.File = value
	case "log.max_size_mb":
		return setInt(&c.Log.MaxSizeMB, key, value, MinMaxSizeMB, MaxMaxSizeMB)
	case "log.max_backups":
		return setInt(&c.Log.MaxBackups, key, value, 0, MaxMaxBackups)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func setInt(dst **int, key, value string, lo, hi int) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < lo || n > hi {
		return fmt.Errorf("%w: %s must be an integer between %d and %d", ErrInvalidValue, key, lo, hi)
	}
	*dst = &n
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	all := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		all[k], _ = c.Get(k)
	}
	return all
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "output.unit":
		return c.Output.Unit != ""
	case "batch.workers":
		return c.Batch.Workers != nil
	case "limits.max_phrase":
		return c.Limits.MaxPhrase != nil
	case "serve.addr":
		return c.Serve.Addr != ""
	case "log.audit":
		return c.Log.Audit != nil
	case "log.file":
		return c.Log.File != ""
	case "log.max_size_mb":
		return c.Log.MaxSizeMB != nil
	case "log.max_backups":
		return c.Log.MaxBackups != nil
	default:
		return false
	}
}
