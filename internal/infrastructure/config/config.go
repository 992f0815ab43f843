package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/config"
)

// Config is the full application configuration tree.
type Config struct {
	Server    config.ServerConfig    `mapstructure:"server"`
	Database  config.DatabaseConfig  `mapstructure:"database"`
	Logger    config.LoggerConfig    `mapstructure:"logger"`
	Auth      config.AuthConfig      `mapstructure:"auth"`
	Redis     config.RedisConfig     `mapstructure:"redis"`
	RateLimit config.RateLimitConfig `mapstructure:"rate_limit"`
	CheckIn   config.CheckInConfig   `mapstructure:"checkin"`
}

var (
	cfg  *Config
	once sync.Once
)

// Load reads configuration from the given file path (or the default search
// paths when empty) with MUSQL_ environment overrides.
func Load(configPath string) (*Config, error) {
	var err error
	once.Do(func() {
		cfg, err = load(configPath)
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Get returns the loaded configuration. Load must have been called first.
func Get() *Config {
	if cfg == nil {
		panic("config not loaded")
	}
	return cfg
}

func load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MUSQL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// No config file is acceptable when env vars carry the settings.
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "musql")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 300)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("auth.jwt.expiration_hours", 24)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.limit", 60)
	v.SetDefault("rate_limit.window_seconds", 60)

	v.SetDefault("checkin.timezone", "UTC")
}

func validate(c *Config) error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	var missing []string
	for _, fe := range verrs {
		missing = append(missing, fe.Namespace())
	}
	return fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
}
