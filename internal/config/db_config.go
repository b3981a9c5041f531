package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type DBConfig struct {
	Driver           string `mapstructure:"driver"`
	ConnectionString string `mapstructure:"connection_string"`
	MaxOpenConns     int    `mapstructure:"max_open_conns"`
}

func (config DBConfig) validate() error {
	var errs []error

	if config.ConnectionString == "" {
		errs = append(errs, fmt.Errorf("missing variable: db connection string"))
	}
	if config.Driver != DriverSQLite && config.Driver != DriverPostgres {
		errs = append(errs, fmt.Errorf("unsupported db driver: %q", config.Driver))
	}
	if config.MaxOpenConns < 0 {
		errs = append(errs, fmt.Errorf("max_open_conns must be non-negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func (config DBConfig) bindEnvironmentVariables() error {
	if err := viper.BindEnv("db.driver", "DB_DRIVER"); err != nil {
		return err
	}
	return viper.BindEnv("db.connection_string", "DB_CONNECTION_STRING")
}
