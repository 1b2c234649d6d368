package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hay-kot/criterio"
)

var (
	validBackends     = []string{BackendJSON, BackendSQLite}
	validLoadPolicies = []string{"fail", "empty"}
	validLogLevels    = []string{"debug", "info", "warn", "error"}
)

// Validate reports every invalid field as criterio field errors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("store.backend", c.Store.Backend, oneOf(validBackends)),
		criterio.Run("store.path", c.Store.Path, notBlank),
		criterio.Run("store.on_load_error", c.Store.OnLoadError, oneOf(validLoadPolicies)),
		criterio.Run("log.level", c.Log.Level, oneOf(validLogLevels)),
		criterio.Run("server.port", c.Server.Port, portInRange),
	)
}

func oneOf(allowed []string) func(string) error {
	return func(v string) error {
		if slices.Contains(allowed, v) {
			return nil
		}
		return fmt.Errorf("%q is not one of %s", v, strings.Join(allowed, ", "))
	}
}

func notBlank(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("must not be empty")
	}
	return nil
}

func portInRange(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", port)
	}
	return nil
}
