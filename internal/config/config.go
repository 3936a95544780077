package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env     string `envconfig:"APP_ENV" default:"development"`
	Port    int    `envconfig:"APP_PORT" default:"8080"`
	DB      DBConfig
	Sim     SimConfig
	Fixture FixtureConfig
	Session SessionConfig
}

// local database configuration
type DBConfig struct {
	Path string `envconfig:"DB_PATH" default:"talentflow.sqlite"`
}

// simulated network configuration
type SimConfig struct {
	Latency     time.Duration `envconfig:"SIM_LATENCY" default:"300ms"`
	FailureRate float64       `envconfig:"SIM_FAILURE_RATE" default:"0.1"`
	Seed        int64         `envconfig:"SIM_SEED" default:"0"`
}

// candidate fixture configuration
type FixtureConfig struct {
	Candidates int   `envconfig:"FIXTURE_CANDIDATES" default:"1500"`
	Seed       int64 `envconfig:"FIXTURE_SEED" default:"20240601"`
}

// session configuration: who is acting, and the page sizes the stores use
type SessionConfig struct {
	CurrentUser       string `envconfig:"CURRENT_USER" default:"John Doe"`
	JobsPerPage       int    `envconfig:"JOBS_PER_PAGE" default:"10"`
	CandidatePageSize int    `envconfig:"CANDIDATE_PAGE_SIZE" default:"50"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.DB.Path == "" {
		return fmt.Errorf("DB_PATH must not be empty")
	}
	if c.Sim.Latency < 0 {
		return fmt.Errorf("SIM_LATENCY must be non-negative")
	}
	if c.Sim.FailureRate < 0 || c.Sim.FailureRate > 1 {
		return fmt.Errorf("SIM_FAILURE_RATE must be between 0 and 1 (got %f)", c.Sim.FailureRate)
	}
	if c.Fixture.Candidates < 0 {
		return fmt.Errorf("FIXTURE_CANDIDATES must be non-negative")
	}
	if c.Session.JobsPerPage < 1 {
		return fmt.Errorf("JOBS_PER_PAGE must be at least 1")
	}
	if c.Session.CandidatePageSize < 1 {
		return fmt.Errorf("CANDIDATE_PAGE_SIZE must be at least 1")
	}
	if c.Session.CurrentUser == "" {
		return fmt.Errorf("CURRENT_USER must not be empty")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, DB.Path=%s, Sim.Latency=%s, "+
		"Sim.FailureRate=%.2f, Fixture.Candidates=%d, Session.JobsPerPage=%d, "+
		"Session.CandidatePageSize=%d}",
		c.Env, c.Port, c.DB.Path, c.Sim.Latency,
		c.Sim.FailureRate, c.Fixture.Candidates, c.Session.JobsPerPage,
		c.Session.CandidatePageSize)
}
