// Package config loads engine settings from the environment. A .env file
// is honored when present; explicit environment variables win. All keys
// are prefixed with RESTCALL_, e.g. RESTCALL_TIMEOUT=30s or
// RESTCALL_LOGGING_LEVEL=debug.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/restverse/restcall/logger"
	"github.com/restverse/restcall/rest"
	"github.com/restverse/restcall/transport"
)

const envPrefix = "RESTCALL"

// Settings is the environment-facing configuration of the engine.
type Settings struct {
	Timeout         time.Duration `mapstructure:"timeout"`
	WithCredentials bool          `mapstructure:"with_credentials"`
	ProxyURL        string        `mapstructure:"proxy_url"`
	ProxyUsername   string        `mapstructure:"proxy_username"`
	ProxyPassword   string        `mapstructure:"proxy_password"`
	Logging         logger.Config `mapstructure:"logging"`
}

// LoaderConfig controls where Load looks for a .env file.
type LoaderConfig struct {
	// EnvFile is an explicit .env path. Empty means "./.env" when present.
	EnvFile string
}

// Load reads Settings from the environment.
func Load(opts LoaderConfig) (Settings, error) {
	loadEnvFile(opts.EnvFile)

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Registering defaults also registers the keys with AutomaticEnv.
	v.SetDefault("timeout", "30s")
	v.SetDefault("with_credentials", false)
	v.SetDefault("proxy_url", "")
	v.SetDefault("proxy_username", "")
	v.SetDefault("proxy_password", "")
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.output", "")
	v.SetDefault("logging.no_color", false)

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: unmarshal settings: %w", err)
	}

	s.Logging.ApplyDefaults()
	if err := s.Logging.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

// ClientConfig converts the settings into a rest.Config ready for
// rest.New. Pluggable collaborators (interceptor, reporter, factory) are
// left for the host to fill in.
func (s Settings) ClientConfig() rest.Config {
	cfg := rest.Config{
		Timeout:         s.Timeout,
		WithCredentials: s.WithCredentials,
		Logger:          logger.New(&s.Logging),
	}
	if s.ProxyURL != "" {
		cfg.Proxy = &transport.Proxy{
			URL:      s.ProxyURL,
			Username: s.ProxyUsername,
			Password: s.ProxyPassword,
		}
	}
	return cfg
}

func loadEnvFile(path string) {
	if path != "" {
		_ = godotenv.Load(path)
		return
	}
	// Best-effort default; a missing ./.env is not an error.
	_ = godotenv.Load()
}
