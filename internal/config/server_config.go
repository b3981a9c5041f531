package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"time"
)

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
}

func (config ServerConfig) validate() error {
	var errs []error

	if config.Port <= 0 || config.Port > 65535 {
		errs = append(errs, fmt.Errorf("port must be between 1 and 65535"))
	}
	if config.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("missing variable: request_timeout"))
	}
	if config.RequestsPerSecond < 0 || config.Burst < 0 {
		errs = append(errs, fmt.Errorf("rate limit values must be non-negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("server.port", "PORT")
}

type CacheConfig struct {
	SlugTTL         time.Duration `mapstructure:"slug_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

type MonitorConfig struct {
	Schedule string `mapstructure:"schedule"`
}
