package loader

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ApplyEnv overrides fields of target from environment variables named
// prefix followed by the field's env tag. Unset variables leave fields
// untouched.
func ApplyEnv(target any, prefix string) error {
	return ApplyEnvFrom(target, prefix, nil)
}

// ApplyEnvFrom is ApplyEnv reading from environ instead of the process
// environment. A nil environ means the process environment.
func ApplyEnvFrom(target any, prefix string, environ map[string]string) error {
	opts := env.Options{Prefix: prefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
