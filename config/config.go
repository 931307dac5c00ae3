package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SCHEDSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
const EnvPrefix = "SCHEDSIM"

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	LogFormat             string
	Algorithm             string
	RoundRobinTimeQuantum int
	PlaybackStepInterval  time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("scheduler.algorithm", "FCFS")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("playback.step_interval", time.Second)
}

// Default returns the configuration used when no file is present.
func Default() *SchedulerConfig {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

// Load reads configuration from path. With an empty path it looks for
// config.yaml in the working directory and falls back to defaults when there
// is none. Environment variables override file values.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := fromViper(v)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func fromViper(v *viper.Viper) *SchedulerConfig {
	return &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
		Algorithm:             v.GetString("scheduler.algorithm"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		PlaybackStepInterval:  v.GetDuration("playback.step_interval"),
	}
}

func (c *SchedulerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if c.RoundRobinTimeQuantum < 1 {
		return fmt.Errorf("config: scheduler.round_robin.time_quantum must be at least 1, got %d", c.RoundRobinTimeQuantum)
	}
	if c.PlaybackStepInterval <= 0 {
		return fmt.Errorf("config: playback.step_interval must be positive, got %s", c.PlaybackStepInterval)
	}
	return nil
}

// Addr is the listen address for the HTTP API.
func (c *SchedulerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
