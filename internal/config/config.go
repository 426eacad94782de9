// Package config loads the configuration of the backend.
//
// Values are read from an optional YAML file first, then environment
// variables override them. Everything that is not set keeps its default.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pockets-budget/backend/internal/payoff"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read when POCKETS_CONFIG is not set.
const DefaultPath = "pockets.yaml"

// Config holds all configuration of the backend.
type Config struct {
	APIURL           string `yaml:"apiUrl"`           // Public URL of the API, used for links
	Port             int    `yaml:"port"`             // Port to listen on
	GinMode          string `yaml:"ginMode"`          // gin mode, "release" unless set
	LogFormat        string `yaml:"logFormat"`        // "human" for console output, JSON otherwise
	CORSAllowOrigins string `yaml:"corsAllowOrigins"` // Space separated list of allowed origins
	EnablePprof      bool   `yaml:"enablePprof"`

	Database struct {
		Path     string `yaml:"path"` // sqlite database file
		Host     string `yaml:"host"` // Uses postgres instead of sqlite when set
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`

	Cache struct {
		RedisAddr string        `yaml:"redisAddr"` // Uses redis instead of the in-memory cache when set
		TTL       time.Duration `yaml:"ttl"`
	} `yaml:"cache"`

	Rules payoff.Rules `yaml:"rules"`
}

var (
	ErrAPIURLNotSet   = errors.New("the API URL must be set. Set the environment variable API_URL or apiUrl in the configuration file")
	ErrAPIURLNotValid = errors.New("the API URL is not a valid URL")
	ErrRulesNotValid  = errors.New("the debt-to-income thresholds must be ascending")
)

// Default returns the configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{
		Port:    8080,
		GinMode: "release",
		Rules:   payoff.DefaultRules(),
	}

	cfg.Database.Path = "data/pockets.db"
	cfg.Cache.TTL = 10 * time.Minute

	return cfg
}

// Load reads the configuration from the YAML file at path, then applies
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	err = cfg.applyEnv()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	targets := map[string]*string{
		"API_URL":            &c.APIURL,
		"GIN_MODE":           &c.GinMode,
		"LOG_FORMAT":         &c.LogFormat,
		"CORS_ALLOW_ORIGINS": &c.CORSAllowOrigins,
		"DB_PATH":            &c.Database.Path,
		"DB_HOST":            &c.Database.Host,
		"DB_USER":            &c.Database.User,
		"DB_PASSWORD":        &c.Database.Password,
		"DB_NAME":            &c.Database.Name,
		"REDIS_ADDR":         &c.Cache.RedisAddr,
	}

	for env, target := range targets {
		if v, ok := os.LookupEnv(env); ok {
			*target = v
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT must be a number: %w", err)
		}
		c.Port = port
	}

	if v := os.Getenv("ENABLE_PPROF"); v != "" {
		c.EnablePprof = v == "true"
	}

	if v := os.Getenv("CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CACHE_TTL must be a duration like 5m: %w", err)
		}
		c.Cache.TTL = ttl
	}

	return nil
}

// Validate checks that the configuration can be used to start the backend.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return ErrAPIURLNotSet
	}

	if _, err := c.URL(); err != nil {
		return err
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.Port)
	}

	r := c.Rules
	if r.DebtToIncomeSafe > r.DebtToIncomeModerate || r.DebtToIncomeModerate > r.DebtToIncomeLimit {
		return fmt.Errorf("%w, got %g, %g, %g", ErrRulesNotValid, r.DebtToIncomeSafe, r.DebtToIncomeModerate, r.DebtToIncomeLimit)
	}

	return nil
}

// URL returns the parsed API URL.
func (c *Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrAPIURLNotValid, c.APIURL)
	}

	return u, nil
}

// AllowOrigins returns the allowed CORS origins.
func (c *Config) AllowOrigins() []string {
	return strings.Fields(c.CORSAllowOrigins)
}

// UsePostgres reports if a postgres database is configured.
func (c *Config) UsePostgres() bool {
	return c.Database.Host != ""
}

// PostgresDSN returns the connection string for the postgres database.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s", c.Database.Host, c.Database.User, c.Database.Password, c.Database.Name)
}
