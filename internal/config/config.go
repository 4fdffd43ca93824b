// Package config loads runtime settings from environment variables
// with built-in defaults. The manager password is injected here rather
// than hardcoded at the comparison site; it remains a placeholder
// credential, not a security mechanism.
package config

import (
	"github.com/spf13/viper"
)

// Config is the full runtime configuration.
type Config struct {
	// DataDir overrides the default ~/.shiftclock data directory.
	DataDir string `mapstructure:"SHIFTCLOCK_DATA_DIR"`
	// ManagerPassword is the shared manager secret.
	ManagerPassword string `mapstructure:"SHIFTCLOCK_MANAGER_PASSWORD"`
	// GeminiAPIKey enables the AI assistant when set.
	GeminiAPIKey string `mapstructure:"SHIFTCLOCK_GEMINI_API_KEY"`
	// GeminiModel is the generation model for assistant queries.
	GeminiModel string `mapstructure:"SHIFTCLOCK_GEMINI_MODEL"`
	// ClockOffsetHours shifts UTC to the deployment's wall clock.
	ClockOffsetHours int `mapstructure:"SHIFTCLOCK_CLOCK_OFFSET_HOURS"`
	// AnomalyThresholdHours marks closed shifts longer than this.
	AnomalyThresholdHours float64 `mapstructure:"SHIFTCLOCK_ANOMALY_THRESHOLD_HOURS"`
}

// Load reads configuration from the environment, falling back to the
// defaults for anything unset.
func Load() (config Config, err error) {
	viper.SetDefault("SHIFTCLOCK_DATA_DIR", "")
	viper.SetDefault("SHIFTCLOCK_MANAGER_PASSWORD", "1234")
	viper.SetDefault("SHIFTCLOCK_GEMINI_API_KEY", "")
	viper.SetDefault("SHIFTCLOCK_GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("SHIFTCLOCK_CLOCK_OFFSET_HOURS", 2)
	viper.SetDefault("SHIFTCLOCK_ANOMALY_THRESHOLD_HOURS", 12.0)

	viper.AutomaticEnv()

	err = viper.Unmarshal(&config)
	return
}
