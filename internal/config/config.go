package config

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/CWELOWNIA12344/proxy-checker/internal/support"
)

type ServerConfig struct {
	Host string
	Port int
}

type CheckerConfig struct {
	JudgeURL     string
	Timeout      int // milliseconds
	MaxTimeout   int // milliseconds, cap for per-request overrides
	Concurrency  int
	MaxBatchSize int
}

type GeoConfig struct {
	DatabasePath string
}

type Config struct {
	Server   ServerConfig
	Checker  CheckerConfig
	Geo      GeoConfig
	LogLevel string
}

var (
	cfg  Config
	once sync.Once
)

// Load reads the optional .env file and snapshots the environment into the
// process configuration. Later calls return the first snapshot.
func Load() Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Debug("No .env file loaded", "error", err)
		}
		cfg = fromEnv()
	})

	return cfg
}

func fromEnv() Config {
	c := Config{
		Server: ServerConfig{
			Host: support.GetEnv("SERVER_HOST", "0.0.0.0"),
			Port: support.GetEnvInt("SERVER_PORT", 8080),
		},
		Checker: CheckerConfig{
			JudgeURL:     support.GetEnv("CHECKER_JUDGE_URL", "https://httpbin.org/ip"),
			Timeout:      support.GetEnvInt("CHECKER_TIMEOUT", 5000),
			MaxTimeout:   support.GetEnvInt("CHECKER_MAX_TIMEOUT", 30000),
			Concurrency:  support.GetEnvInt("CHECKER_CONCURRENCY", 20),
			MaxBatchSize: support.GetEnvInt("CHECKER_MAX_BATCH_SIZE", 100),
		},
		Geo: GeoConfig{
			DatabasePath: support.GetEnv("GEOIP_DB_PATH", ""),
		},
		LogLevel: support.GetEnv("LOG_LEVEL", "info"),
	}

	c.sanitize()
	return c
}

func (c *Config) sanitize() {
	if c.Checker.Timeout <= 0 {
		c.Checker.Timeout = 5000
	}
	if c.Checker.MaxTimeout < c.Checker.Timeout {
		c.Checker.MaxTimeout = c.Checker.Timeout
	}
	if c.Checker.Concurrency <= 0 {
		c.Checker.Concurrency = 20
	}
	if c.Checker.MaxBatchSize <= 0 {
		c.Checker.MaxBatchSize = 100
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		c.Server.Port = 8080
	}
}

func (c Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
