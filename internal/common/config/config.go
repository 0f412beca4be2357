// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Data    DataConfig    `mapstructure:"data"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// DataConfig locates the file-backed profile snapshot and the
// compatibility table documents.
type DataConfig struct {
	ProfilesPath string `mapstructure:"profiles_path"`
	TablesDir    string `mapstructure:"tables_dir"`
}

// EngineConfig holds tunables for the matching engine itself.
type EngineConfig struct {
	// SnapshotTTL bounds how long a loaded profile snapshot is reused
	// before the store re-reads its backing file.
	SnapshotTTL time.Duration `mapstructure:"snapshot_ttl"`
}

// MetricsConfig controls the optional Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
