package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var supportedDrivers = map[string]bool{
	"postgres": true,
	"sqlite":   true,
}

// ValidateConfig checks the shape of the configuration. Credentials are not
// required here: a missing gateway key or database URL is reported by the
// request that needs it.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)}.Error())
	}
	if !supportedDrivers[cfg.DBDriver] {
		errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)}.Error())
	}
	if cfg.Gateway.URL == "" {
		errs = append(errs, ValidationError{Field: "AI_GATEWAY_URL", Message: "must not be empty"}.Error())
	}
	if cfg.Gateway.Model == "" {
		errs = append(errs, ValidationError{Field: "AI_MODEL", Message: "must not be empty"}.Error())
	}
	if cfg.Gateway.Timeout < 0 {
		errs = append(errs, ValidationError{Field: "AI_GATEWAY_TIMEOUT", Message: "must not be negative"}.Error())
	}
	if cfg.GenerationRateLimit < 0 {
		errs = append(errs, ValidationError{Field: "GENERATION_RATE_LIMIT", Message: "must not be negative"}.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "\n"))
	}
	return nil
}
