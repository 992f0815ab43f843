package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username" validate:"required"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret" validate:"required"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

// CredentialConfig configures the check-in credential signer.
// The credential lifetime is fixed by protocol; only the signing secret is configurable.
type CredentialConfig struct {
	SigningSecret string `mapstructure:"signing_secret" validate:"required"`
}

type AuthConfig struct {
	JWT        JWTConfig        `mapstructure:"jwt"`
	Credential CredentialConfig `mapstructure:"credential"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	Limit         int  `mapstructure:"limit"`
	WindowSeconds int  `mapstructure:"window_seconds"`
}

// CheckInConfig holds check-in subsystem settings. Timezone is the business
// timezone used to evaluate terminal opening hours and history date filters.
type CheckInConfig struct {
	Timezone string `mapstructure:"timezone"`
}
