package config

import (
	"os"

	"metapool/domain/meta"
	"metapool/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Analysis AnalysisConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// AnalysisConfig holds defaults applied to incoming analysis requests when
// the caller omits them
type AnalysisConfig struct {
	DefaultMeasure meta.MeasureType
	DefaultModel   meta.ModelType
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Analysis: AnalysisConfig{
			DefaultMeasure: meta.MeasureType(getEnvOrDefault("DEFAULT_MEASURE", string(meta.MeasureOR))),
			DefaultModel:   meta.ModelType(getEnvOrDefault("DEFAULT_MODEL", string(meta.ModelFixed))),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	// The engine degrades unknown measures gracefully, but a misspelled
	// default in the environment is a deployment mistake worth rejecting.
	switch config.Analysis.DefaultMeasure {
	case meta.MeasureOR, meta.MeasureRR, meta.MeasureHR, meta.MeasureMD:
	default:
		return errors.ConfigInvalid("DEFAULT_MEASURE must be one of OR, RR, HR, MD")
	}
	switch config.Analysis.DefaultModel {
	case meta.ModelFixed, meta.ModelRandom:
	default:
		return errors.ConfigInvalid("DEFAULT_MODEL must be fixed or random")
	}
	return nil
}

// getEnvOrDefault returns the environment value for key or the fallback
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
