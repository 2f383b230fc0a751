package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type AppConfig struct {
	API       *APIConfig       `mapstructure:"api"`
	Gin       *GinConfig       `mapstructure:"gin"`
	Database  *DatabaseConfig  `mapstructure:"database"`
	Redis     *RedisConfig     `mapstructure:"redis"`
	Scheduler *SchedulerConfig `mapstructure:"scheduler"`
	Seed      *SeedConfig      `mapstructure:"seed"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	LogLevel           string   `mapstructure:"log_level"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig selects the storage engine. Driver is "sqlite" (Path is the
// database file) or "postgres" (Host..SSLMode).
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Path     string `mapstructure:"path"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig enables domain event publishing when Addr is set.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

type SchedulerConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// OverdueAt is the daily HH:MM at which unpaid, ended reservations become OVERDUE.
	OverdueAt string `mapstructure:"overdue_at"`
	Location  string `mapstructure:"location"`
}

type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// RandomSeed makes the demo grid reproducible; 0 seeds from the clock.
	RandomSeed int64 `mapstructure:"random_seed"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "3000")
	v.SetDefault("api.base_url", "localhost:3000")
	v.SetDefault("api.log_level", "info")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:5173"})
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "market.db")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.channel", "market:events")
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.overdue_at", "00:05")
	v.SetDefault("scheduler.location", "Europe/Warsaw")
	v.SetDefault("seed.enabled", true)
}

// Load reads the YAML file at path, layered over defaults and overridden by
// environment variables (api.port -> API_PORT).
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	return decode(v)
}

// Watch calls onChange with the freshly decoded config every time the file at
// path is written.
func Watch(path string, onChange func(*AppConfig)) error {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		conf, err := decode(v)
		if err != nil {
			return
		}
		onChange(conf)
	})
	v.WatchConfig()

	return nil
}

func decode(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	return conf, nil
}
