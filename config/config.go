// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config loads the router server configuration. The split weights,
// vault and subscription period are compiled in and cannot be set here.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/inconshreveable/log15"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "FEEROUTER"

	HTTPHostKey    = "http-host"
	HTTPPortKey    = "http-port"
	ReadTimeoutKey = "read-timeout"
	LogLevelKey    = "log-level"
	LogFormatKey   = "log-format"
	GenesisFileKey = "genesis-file"
)

var (
	ErrInvalidPort      = errors.New("invalid http port")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

type Config struct {
	HTTPHost    string        `mapstructure:"http-host" json:"httpHost"`
	HTTPPort    uint16        `mapstructure:"http-port" json:"httpPort"`
	ReadTimeout time.Duration `mapstructure:"read-timeout" json:"readTimeout"`

	LogLevel  string `mapstructure:"log-level" json:"logLevel"`
	LogFormat string `mapstructure:"log-format" json:"logFormat"`

	// GenesisFile lists the initial token allocations as JSON.
	GenesisFile string `mapstructure:"genesis-file" json:"genesisFile"`
}

func (c *Config) SetDefaults() {
	c.HTTPHost = "127.0.0.1"
	c.HTTPPort = 9650
	c.ReadTimeout = 10 * time.Second

	c.LogLevel = "info"
	c.LogFormat = "logfmt"
}

// Load reads the configuration from [v], falling back to defaults for any
// key that is not set in the config file, environment or flags.
func Load(v *viper.Viper) (*Config, error) {
	c := new(Config)
	c.SetDefaults()

	v.SetDefault(HTTPHostKey, c.HTTPHost)
	v.SetDefault(HTTPPortKey, c.HTTPPort)
	v.SetDefault(ReadTimeoutKey, c.ReadTimeout)
	v.SetDefault(LogLevelKey, c.LogLevel)
	v.SetDefault(LogFormatKey, c.LogFormat)
	v.SetDefault(GenesisFileKey, c.GenesisFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}
	if err := c.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Verify() error {
	if c.HTTPPort == 0 {
		return ErrInvalidPort
	}
	if _, err := log.LvlFromString(c.LogLevel); err != nil {
		return err
	}
	if _, err := c.format(); err != nil {
		return err
	}
	return nil
}

// Addr is the listen address of the RPC server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}

func (c *Config) format() (log.Format, error) {
	switch c.LogFormat {
	case "logfmt":
		return log.LogfmtFormat(), nil
	case "json":
		return log.JsonFormat(), nil
	case "terminal":
		return log.TerminalFormat(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
}

// LogHandler builds the root log handler described by the config.
func (c *Config) LogHandler() (log.Handler, error) {
	lvl, err := log.LvlFromString(c.LogLevel)
	if err != nil {
		return nil, err
	}
	f, err := c.format()
	if err != nil {
		return nil, err
	}
	return log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, f)), nil
}
