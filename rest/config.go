package rest

import (
	"fmt"
	"time"

	"github.com/restverse/restcall/decode"
	"github.com/restverse/restcall/logger"
	"github.com/restverse/restcall/transport"
)

// minTimeout is the smallest per-attempt timeout accepted. Shorter values
// are a caller configuration error.
const minTimeout = time.Second

// Config is the client-wide configuration. It replaces process-global
// defaults: build it once at startup and hand it to New. Individual calls
// override any of it through CallOptions; the config itself is read-only
// after New.
type Config struct {
	// Timeout is the default per-attempt timeout. Zero means none.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers merged beneath each request's own.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Interceptor is the default interceptor. Nil is identity.
	Interceptor Interceptor `yaml:"-" mapstructure:"-"`

	// Reporter is the default telemetry reporter. Nil disables reporting.
	Reporter Reporter `yaml:"-" mapstructure:"-"`

	// Proxy is the default outbound proxy. Nil means direct.
	Proxy *transport.Proxy `yaml:"-" mapstructure:"-"`

	// WithCredentials enables credentialed transports (cookie jar) by
	// default.
	WithCredentials bool `yaml:"with_credentials" mapstructure:"with_credentials"`

	// Factory creates per-attempt transports. Defaults to transport.HTTP.
	Factory transport.Factory `yaml:"-" mapstructure:"-"`

	// Decoder decodes response bodies. Defaults to a synchronous decoder.
	Decoder *decode.Decoder `yaml:"-" mapstructure:"-"`

	// Logger receives engine diagnostics.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Factory == nil {
		c.Factory = transport.HTTP{}
	}
	if c.Logger == nil {
		c.Logger = logger.NewDefault()
	}
	if c.Decoder == nil {
		c.Decoder = decode.New(decode.WithLogger(c.Logger))
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout != 0 && c.Timeout < minTimeout {
		return fmt.Errorf("%w: timeout must be at least %s", ErrConfiguration, minTimeout)
	}
	return nil
}
