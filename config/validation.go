package config

import (
	"fmt"
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

// requiredFields maps each environment to the config fields that must be
// set. Development and test fall back to local defaults for everything
// except credentials; production and CI require the full set.
var requiredFields = map[Environment][]string{
	Development: {"DB_USER"},
	Test:        {"DB_USER"},
	CI:          {"DB_USER", "DB_PASSWORD", "DB_NAME"},
	Production:  {"DB_USER", "DB_PASSWORD", "DB_NAME", "SERVER_PORT"},
}

// ValidateConfig checks if the configuration meets the requirements for
// the current environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()

	values := map[string]string{
		"DB_USER":     cfg.DBUser,
		"DB_PASSWORD": cfg.DBPassword,
		"DB_NAME":     cfg.DBName,
		"SERVER_PORT": cfg.ServerPort,
	}

	var errors []string
	for _, field := range requiredFields[env] {
		if values[field] == "" {
			errors = append(errors, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("required in %s environment", env),
			}.Error())
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}
