// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/conf"
	"gopkg.in/yaml.v2"
)

const (
	DefaultAPIBaseURL       = "https://hpc.dev-ai4jobs.com/hpcnck"
	DefaultHttpPort         = 8989
	DefaultTickInterval     = time.Second
	DefaultMaxDataPoints    = 60
	DefaultSpikeProbability = 0.1
	DefaultStatJitter       = time.Second
	DefaultSessionKey       = "auth-storage"
	DefaultRefreshSchedule  = "@every 30s"
)

type Config struct {
	HttpPort   int              `json:"httpPort" yaml:"httpPort"`
	Log        *conf.LogConfig  `json:"log" yaml:"log"`
	API        APIConfig        `json:"api" yaml:"api"`
	Feed       FeedConfig       `json:"feed" yaml:"feed"`
	Session    SessionConfig    `json:"session" yaml:"session"`
	Jobs       JobsConfig       `json:"jobs" yaml:"jobs"`
	Middleware MiddlewareConfig `json:"middleware" yaml:"middleware"`
}

// APIConfig points at the external compute REST API.
type APIConfig struct {
	BaseURL    string        `json:"baseURL" yaml:"baseURL"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
	RetryCount int           `json:"retryCount" yaml:"retryCount"`
	Debug      bool          `json:"debug" yaml:"debug"`
}

func (c APIConfig) GetBaseURL() string {
	if c.BaseURL == "" {
		return DefaultAPIBaseURL
	}
	return c.BaseURL
}

func (c APIConfig) GetTimeout() time.Duration {
	if c.Timeout <= 0 {
		return 30 * time.Second
	}
	return c.Timeout
}

type FeedConfig struct {
	TickInterval     time.Duration `json:"tickInterval" yaml:"tickInterval"`
	MaxDataPoints    int           `json:"maxDataPoints" yaml:"maxDataPoints"`
	SpikeProbability *float64      `json:"spikeProbability" yaml:"spikeProbability"`
	StatJitter       time.Duration `json:"statJitter" yaml:"statJitter"`
}

func (c FeedConfig) GetTickInterval() time.Duration {
	if c.TickInterval <= 0 {
		return DefaultTickInterval
	}
	return c.TickInterval
}

func (c FeedConfig) GetMaxDataPoints() int {
	if c.MaxDataPoints <= 0 {
		return DefaultMaxDataPoints
	}
	return c.MaxDataPoints
}

func (c FeedConfig) GetSpikeProbability() float64 {
	if c.SpikeProbability == nil {
		return DefaultSpikeProbability
	}
	p := *c.SpikeProbability
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (c FeedConfig) GetStatJitter() time.Duration {
	if c.StatJitter < 0 {
		return 0
	}
	if c.StatJitter == 0 {
		return DefaultStatJitter
	}
	return c.StatJitter
}

type SessionConfig struct {
	// StoragePath is the directory holding the persisted session; empty keeps it in memory.
	StoragePath string        `json:"storagePath" yaml:"storagePath"`
	Key         string        `json:"key" yaml:"key"`
	TTL         time.Duration `json:"ttl" yaml:"ttl"`
}

func (c SessionConfig) GetKey() string {
	if c.Key == "" {
		return DefaultSessionKey
	}
	return c.Key
}

type JobsConfig struct {
	Enabled         *bool  `json:"enabled" yaml:"enabled"`
	RefreshSchedule string `json:"refreshSchedule" yaml:"refreshSchedule"`
}

func (c JobsConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

func (c JobsConfig) GetRefreshSchedule() string {
	if c.RefreshSchedule == "" {
		return DefaultRefreshSchedule
	}
	return c.RefreshSchedule
}

type MiddlewareConfig struct {
	EnableLogging *bool `json:"enableLogging" yaml:"enableLogging"`
	EnableAuth    *bool `json:"enableAuth" yaml:"enableAuth"`
	EnableMetrics *bool `json:"enableMetrics" yaml:"enableMetrics"`
}

func (m MiddlewareConfig) IsLoggingEnabled() bool {
	return m.EnableLogging == nil || *m.EnableLogging
}

// IsAuthEnabled defaults to false: the session is a mock and most deployments run open.
func (m MiddlewareConfig) IsAuthEnabled() bool {
	return m.EnableAuth != nil && *m.EnableAuth
}

func (m MiddlewareConfig) IsMetricsEnabled() bool {
	return m.EnableMetrics == nil || *m.EnableMetrics
}

func (c *Config) GetHttpPort() int {
	if c.HttpPort <= 0 {
		return DefaultHttpPort
	}
	return c.HttpPort
}

func (c *Config) GetLogConfig() *conf.LogConfig {
	if c.Log == nil {
		return conf.DefaultConfig()
	}
	merged := conf.DefaultConfig()
	if c.Log.Level != "" {
		merged.Level = c.Log.Level
	}
	if c.Log.Formatter != "" {
		merged.Formatter = c.Log.Formatter
	}
	merged.ReportCaller = c.Log.ReportCaller
	merged.File = c.Log.File
	return merged
}

func Default() *Config {
	return &Config{HttpPort: DefaultHttpPort}
}

func configPath() string {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	return configPath
}

// LoadConfig reads the yaml file named by $CONFIG_PATH (default config.yaml).
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(configPath())
}

func LoadConfigFrom(path string) (*Config, error) {
	configFile, err := os.Open(path)
	if err != nil {
		return nil, errors.NewError().
			WithCode(errors.CodeInitializeError).
			WithMessage("failed to open config file").
			WithError(err)
	}
	defer configFile.Close()
	cfg := Default()
	decoder := yaml.NewDecoder(configFile)
	if err := decoder.Decode(cfg); err != nil {
		return nil, errors.NewError().
			WithCode(errors.CodeInitializeError).
			WithMessage("failed to parse config file").
			WithError(err)
	}
	if cfg.Log != nil {
		if err := cfg.GetLogConfig().Validate(); err != nil {
			return nil, errors.WrapError(err, "invalid log config", errors.CodeInitializeError)
		}
	}
	return cfg, nil
}

// LoadConfigOrDefault falls back to defaults only when the file does not exist.
func LoadConfigOrDefault(path string) (*Config, error) {
	if path == "" {
		path = configPath()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadConfigFrom(path)
}

func (c *Config) String() string {
	return fmt.Sprintf("httpPort=%d api=%s tick=%s points=%d", c.GetHttpPort(), c.API.GetBaseURL(),
		c.Feed.GetTickInterval(), c.Feed.GetMaxDataPoints())
}
