package config

import (
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full process configuration, loaded from the environment.
type Config struct {
	Server    Server
	Database  DatabaseConfig
	Identity  IdentityConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Lock      LockConfig
	RateLimit RateLimitConfig
	LogLevel  string `env:"ROSTER_LOG_LEVEL" envDefault:"info"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `env:"ROSTER_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"ROSTER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"ROSTER_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"ROSTER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout  time.Duration `env:"ROSTER_REQUEST_TIMEOUT" envDefault:"5s"`
	// TrustedProxies lists the addresses or CIDR ranges allowed to set
	// X-Forwarded-For and X-Real-IP. Empty means forwarding headers are ignored.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// ProxyPrefixes parses TrustedProxies. A bare address is treated as a single-host range.
func (s Server) ProxyPrefixes() ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(s.TrustedProxies))
	for _, raw := range s.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.Contains(raw, "/") {
			prefix, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
			}
			out = append(out, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}

// DatabaseConfig points at the relational store. An empty URL selects the
// in-memory stores, which is only suitable for local development.
type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL"`
	MaxOpenConns    int           `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns    int           `env:"DATABASE_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DATABASE_CONN_MAX_LIFETIME" envDefault:"30m"`
	AutoMigrate     bool          `env:"DATABASE_AUTO_MIGRATE" envDefault:"false"`
}

// IdentityConfig holds the shared secret and expected claims of the identity provider.
type IdentityConfig struct {
	SigningKey string        `env:"JWT_SIGNING_KEY" envDefault:"dev-secret-key-change-in-production"`
	Issuer     string        `env:"JWT_ISSUER" envDefault:"roster-identity"`
	Audience   string        `env:"JWT_AUDIENCE" envDefault:"roster"`
	DevTTL     time.Duration `env:"JWT_DEV_TOKEN_TTL" envDefault:"1h"`
}

// RedisConfig configures the acceptance lock backend. Empty URL means in-process locking.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// KafkaConfig configures publishing of service record entries. No brokers disables it.
type KafkaConfig struct {
	Brokers        []string      `env:"KAFKA_BROKERS" envSeparator:","`
	Topic          string        `env:"KAFKA_SERVICE_RECORD_TOPIC" envDefault:"roster.service-records"`
	PublishTimeout time.Duration `env:"KAFKA_PUBLISH_TIMEOUT" envDefault:"2s"`
}

// LockConfig bounds how long one replica may hold an acceptance.
type LockConfig struct {
	AcceptTTL time.Duration `env:"ACCEPT_LOCK_TTL" envDefault:"30s"`
}

// RateLimitConfig bounds anonymous application submissions per client IP.
// A zero limit disables it.
type RateLimitConfig struct {
	SubmitLimit  int           `env:"SUBMIT_RATE_LIMIT" envDefault:"5"`
	SubmitWindow time.Duration `env:"SUBMIT_RATE_WINDOW" envDefault:"1h"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// FromEnv builds the process config so main stays lean.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if cfg.Identity.SigningKey == "" {
		return nil, fmt.Errorf("JWT_SIGNING_KEY must not be empty")
	}
	if cfg.Lock.AcceptTTL <= 0 {
		return nil, fmt.Errorf("ACCEPT_LOCK_TTL must be positive, got %s", cfg.Lock.AcceptTTL)
	}
	if _, err := cfg.Server.ProxyPrefixes(); err != nil {
		return nil, err
	}
	if cfg.RateLimit.SubmitLimit < 0 {
		return nil, fmt.Errorf("SUBMIT_RATE_LIMIT must not be negative, got %d", cfg.RateLimit.SubmitLimit)
	}
	return &cfg, nil
}
