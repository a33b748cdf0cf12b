package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		RateLimitRPS    float64       `yaml:"rate_limit_rps"` // per client IP; 0 disables
		RateLimitBurst  float64       `yaml:"rate_limit_burst"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Yahoo struct {
		ChartURL   string        `yaml:"chart_url"`
		SummaryURL string        `yaml:"summary_url"`
		SearchURL  string        `yaml:"search_url"`
		Timeout    time.Duration `yaml:"timeout"`
	} `yaml:"yahoo"`
	Symbols struct {
		SourceURL string        `yaml:"source_url"`
		Timeout   time.Duration `yaml:"timeout"`
	} `yaml:"symbols"`
	Analysis struct {
		BandPolicy       string `yaml:"band_policy"`       // close_relative or pivot_relative
		ScreenerStrategy string `yaml:"screener_strategy"` // sector or scorecard
	} `yaml:"analysis"`
	Cache struct {
		Backend        string        `yaml:"backend"` // memory or redis
		HistoryTTL     time.Duration `yaml:"history_ttl"`
		FundamentalTTL time.Duration `yaml:"fundamental_ttl"`
		Redis          struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("SYMBOL_SOURCE_URL"); v != "" {
		c.Symbols.SourceURL = v
	}
	if v := os.Getenv("BAND_POLICY"); v != "" {
		c.Analysis.BandPolicy = v
	}
	if v := os.Getenv("SCREENER_STRATEGY"); v != "" {
		c.Analysis.ScreenerStrategy = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Backend = "redis"
		c.Cache.Redis.Addr = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Server.RateLimitRPS > 0 && c.Server.RateLimitBurst == 0 {
		c.Server.RateLimitBurst = c.Server.RateLimitRPS * 2
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
	if c.Yahoo.ChartURL == "" {
		c.Yahoo.ChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	}
	if c.Yahoo.SummaryURL == "" {
		c.Yahoo.SummaryURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary"
	}
	if c.Yahoo.SearchURL == "" {
		c.Yahoo.SearchURL = "https://query1.finance.yahoo.com/v1/finance/search"
	}
	if c.Yahoo.Timeout == 0 {
		c.Yahoo.Timeout = 30 * time.Second
	}
	if c.Symbols.Timeout == 0 {
		c.Symbols.Timeout = 30 * time.Second
	}
	if c.Analysis.BandPolicy == "" {
		c.Analysis.BandPolicy = "close_relative"
	}
	if c.Analysis.ScreenerStrategy == "" {
		c.Analysis.ScreenerStrategy = "sector"
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
	if c.Cache.HistoryTTL == 0 {
		c.Cache.HistoryTTL = 5 * time.Minute
	}
	if c.Cache.FundamentalTTL == 0 {
		c.Cache.FundamentalTTL = time.Hour
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	switch c.Analysis.BandPolicy {
	case "close_relative", "pivot_relative":
	default:
		return fmt.Errorf("analysis.band_policy must be 'close_relative' or 'pivot_relative', got '%s'", c.Analysis.BandPolicy)
	}
	switch c.Analysis.ScreenerStrategy {
	case "sector", "scorecard":
	default:
		return fmt.Errorf("analysis.screener_strategy must be 'sector' or 'scorecard', got '%s'", c.Analysis.ScreenerStrategy)
	}
	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("cache.backend must be 'memory' or 'redis', got '%s'", c.Cache.Backend)
	}
	if c.Cache.Backend == "redis" && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required for redis backend")
	}
	return nil
}
