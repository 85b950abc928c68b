package server

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/topi314/event-graph/internal/xtime"
	"github.com/topi314/event-graph/server/database"
	"github.com/topi314/event-graph/server/graph"
	"github.com/topi314/event-graph/server/store"
)

func LoadConfig(cfgPath string) (Config, error) {
	file, err := os.Open(cfgPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	cfg := DefaultConfig()
	if _, err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config file: %w", err)
	}

	return cfg, nil
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:     slog.LevelInfo,
			Format:    LogFormatText,
			AddSource: false,
		},
		Server: ServerConfig{
			Addr:              ":4000",
			ReadHeaderTimeout: xtime.Duration(10 * time.Second),
		},
		Store: store.Config{
			Source: store.SourceFile,
			Path:   "data.json",
		},
		Database: database.Config{
			Host:     "localhost",
			Port:     5432,
			Username: "postgres",
			Password: "password",
			Database: "event-graph",
			SSLMode:  "disable",
		},
		GraphQL: graph.Config{
			MaxDepth:       10,
			MaxParallelism: 10,
			Playground:     true,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
			Every:   xtime.Duration(10 * time.Millisecond),
			Burst:   50,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

type Config struct {
	Dev       bool            `toml:"dev"`
	Log       LogConfig       `toml:"log"`
	Server    ServerConfig    `toml:"server"`
	Store     store.Config    `toml:"store"`
	Database  database.Config `toml:"database"`
	GraphQL   graph.Config    `toml:"graphql"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Metrics   MetricsConfig   `toml:"metrics"`
}

func (c Config) String() string {
	return fmt.Sprintf("Dev: %t\nLog: %s\nServer: %s\nStore: %s\nDatabase: %s\nGraphQL: %s\nCORS: %s\nRateLimit: %s\nMetrics: %s",
		c.Dev,
		c.Log,
		c.Server,
		c.Store,
		c.Database,
		c.GraphQL,
		c.CORS,
		c.RateLimit,
		c.Metrics,
	)
}

type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    LogFormat  `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

func (c LogConfig) String() string {
	return fmt.Sprintf("\n Level: %s\n Format: %s\n AddSource: %t",
		c.Level,
		c.Format,
		c.AddSource,
	)
}

type ServerConfig struct {
	Addr              string         `toml:"addr"`
	ReadHeaderTimeout xtime.Duration `toml:"read_header_timeout"`
}

func (c ServerConfig) String() string {
	return fmt.Sprintf("\n Address: %s\n ReadHeaderTimeout: %s",
		c.Addr,
		c.ReadHeaderTimeout,
	)
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

func (c CORSConfig) String() string {
	return fmt.Sprintf("\n AllowedOrigins: %s",
		c.AllowedOrigins,
	)
}

type RateLimitConfig struct {
	Enabled bool           `toml:"enabled"`
	Every   xtime.Duration `toml:"every"`
	Burst   int            `toml:"burst"`
}

func (c RateLimitConfig) String() string {
	return fmt.Sprintf("\n Enabled: %t\n Every: %s\n Burst: %d",
		c.Enabled,
		c.Every,
		c.Burst,
	)
}

type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

func (c MetricsConfig) String() string {
	return fmt.Sprintf("\n Enabled: %t",
		c.Enabled,
	)
}
