package config

import (
	"os"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	MetricsAddr    string
	Environment    string
	RequestTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("USER_REGISTRY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	metricsAddr := os.Getenv("USER_REGISTRY_METRICS_ADDR")
	if metricsAddr == "" {
		metricsAddr = ":9090"
	}

	environment := os.Getenv("USER_REGISTRY_ENV")
	if environment == "" {
		environment = "development"
	}

	requestTimeout := 30 * time.Second
	if raw := os.Getenv("USER_REGISTRY_REQUEST_TIMEOUT"); raw != "" {
		if duration, err := time.ParseDuration(raw); err == nil {
			requestTimeout = duration
		}
	}

	return Server{
		Addr:           addr,
		MetricsAddr:    metricsAddr,
		Environment:    environment,
		RequestTimeout: requestTimeout,
	}
}
