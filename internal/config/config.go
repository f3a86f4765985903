package config

import (
	"fmt"
	"log"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vytor/eligesaludable/internal/logger"
)

type Config struct {
	Addr            string
	DBPath          string
	DBMaxOpenConns  int
	DBBusyTimeoutMS int
	AllowedOrigins  []string
	TrustedProxies  []string
	LogLevel        string
	RateLimitRPS    float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:            addr(),
		DBPath:          envOr("DB_PATH", "file:elige.db"),
		DBMaxOpenConns:  envIntOr("DB_MAX_OPEN_CONNS", 1),
		DBBusyTimeoutMS: envIntOr("DB_BUSY_TIMEOUT_MS", 5000),
		AllowedOrigins:  envListOr("ALLOWED_ORIGIN", []string{"*"}),
		TrustedProxies:  envListOr("TRUSTED_PROXIES", nil),
		LogLevel:        envOr("LOG_LEVEL", "INFO"),
		RateLimitRPS:    envFloatOr("RATE_LIMIT_RPS", 20),
		RateLimitBurst:  envIntOr("RATE_LIMIT_BURST", 40),
		ShutdownTimeout: time.Duration(envIntOr("SHUTDOWN_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.DBMaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1, got %d", c.DBMaxOpenConns)
	}
	if c.DBBusyTimeoutMS < 0 {
		return fmt.Errorf("DB_BUSY_TIMEOUT_MS cannot be negative, got %d", c.DBBusyTimeoutMS)
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_ORIGIN cannot be empty")
	}
	if _, err := c.TrustedProxyPrefixes(); err != nil {
		return err
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled, got %d", c.RateLimitBurst)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be positive")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR, got %q", c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() logger.Level {
	return logger.ParseLevel(c.LogLevel)
}

// TrustedProxyPrefixes parses TRUSTED_PROXIES. Entries are CIDRs or bare
// addresses; only requests from these peers may set the client IP through
// forwarding headers.
func (c Config) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(c.TrustedProxies))
	for _, entry := range c.TrustedProxies {
		if p, err := netip.ParsePrefix(entry); err == nil {
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("TRUSTED_PROXIES entry %q is not an IP or CIDR", entry)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// addr prefers ADDR and falls back to the bare PORT convention of PaaS hosts.
func addr() string {
	if v := os.Getenv("ADDR"); v != "" {
		return v
	}
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":3000"
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %v", key, v, def)
	}
	return def
}

func envListOr(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
