package config

import (
	"errors"
	"fmt"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the loaded configuration and returns every problem found
func ValidateConfig(cfg *Config) error {
	var errs []error

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 0 || port > 65535 {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}

	switch cfg.StoreDriver {
	case StoreDriverMemory:
	case StoreDriverSQLite:
		if cfg.SQLiteDSN == "" {
			errs = append(errs, ValidationError{Field: "SQLITE_DSN", Message: "required when STORE_DRIVER is sqlite"})
		}
	default:
		errs = append(errs, ValidationError{Field: "STORE_DRIVER", Message: fmt.Sprintf("unknown driver %q", cfg.StoreDriver)})
	}

	if cfg.RateLimitEnabled {
		if cfg.RateLimitRequests <= 0 {
			errs = append(errs, ValidationError{Field: "RATE_LIMIT_REQUESTS", Message: "must be positive"})
		}
		if cfg.RateLimitWindow <= 0 {
			errs = append(errs, ValidationError{Field: "RATE_LIMIT_WINDOW", Message: "must be positive"})
		}
	}

	if cfg.RedisDB < 0 {
		errs = append(errs, ValidationError{Field: "REDIS_DB", Message: "must not be negative"})
	}

	return errors.Join(errs...)
}
