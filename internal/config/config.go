// Package config loads service settings from configs/config.yml, an optional
// .env file, and environment variables (highest precedence).
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingSigningKey = errors.New("auth.signing_key (JWT_SECRET_KEY) is required")

type Config struct {
	Port       string
	Server     ServerConfig
	Log        LogConfig
	DB         DBConfig
	Auth       AuthConfig
	Translator TranslatorConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	TrustedProxies    []string
}

type LogConfig struct {
	Level  string
	Format string
}

type DBConfig struct {
	Path string
}

type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type TranslatorConfig struct {
	BaseURL string
	Host    string
	APIKey  string
	Timeout time.Duration
}

type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
}

type CORSConfig struct {
	AllowOrigins []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.path", "faqdesk.db")
	v.SetDefault("auth.token_ttl", 15*time.Minute)
	v.SetDefault("translator.base_url", "https://google-translator9.p.rapidapi.com")
	v.SetDefault("translator.host", "google-translator9.p.rapidapi.com")
	v.SetDefault("translator.timeout", 10*time.Second)
	v.SetDefault("ratelimit.requests_per_minute", 30)
	v.SetDefault("ratelimit.burst", 10)
	v.SetDefault("cors.allow_origins", []string{"*"})
}

// Load reads config.yml from dir (missing file is fine) and applies env overrides.
func Load(dir string) (*Config, error) {
	// .env is optional, real environment variables win over it
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("auth.signing_key", "JWT_SECRET_KEY")
	_ = v.BindEnv("translator.api_key", "RAPIDAPI_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Port: v.GetString("port"),
		Server: ServerConfig{
			ReadHeaderTimeout: v.GetDuration("server.read_header_timeout"),
			WriteTimeout:      v.GetDuration("server.write_timeout"),
			IdleTimeout:       v.GetDuration("server.idle_timeout"),
			ShutdownTimeout:   v.GetDuration("server.shutdown_timeout"),
			TrustedProxies:    v.GetStringSlice("server.trusted_proxies"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		DB: DBConfig{Path: v.GetString("db.path")},
		Auth: AuthConfig{
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
		Translator: TranslatorConfig{
			BaseURL: strings.TrimRight(v.GetString("translator.base_url"), "/"),
			Host:    v.GetString("translator.host"),
			APIKey:  v.GetString("translator.api_key"),
			Timeout: v.GetDuration("translator.timeout"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: v.GetInt("ratelimit.requests_per_minute"),
			Burst:             v.GetInt("ratelimit.burst"),
		},
		CORS: CORSConfig{AllowOrigins: v.GetStringSlice("cors.allow_origins")},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.SigningKey) == "" {
		return ErrMissingSigningKey
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	if c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("ratelimit.requests_per_minute and ratelimit.burst must be positive")
	}
	return nil
}
