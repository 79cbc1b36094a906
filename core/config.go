package core

import (
	"github.com/creastat/infra/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes metric names when Config.Namespace is empty
const DefaultNamespace = "whenthen"

// Config configures a root registry and the barriers created through it
type Config struct {
	// Logger receives lifecycle traces at debug and trace level.
	// Nil falls back to an error-level logger, which keeps them quiet.
	Logger telemetry.Logger

	// Registerer receives the barrier counters. Nil disables metrics.
	Registerer prometheus.Registerer

	// Namespace prefixes metric names
	Namespace string
}

// DefaultConfig returns a config with logging and metrics disabled
func DefaultConfig() *Config {
	return &Config{
		Namespace: DefaultNamespace,
	}
}
