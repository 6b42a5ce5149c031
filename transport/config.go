package transport

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/arloliu/linecode/internal/options"
)

const (
	// DefaultPort is the TCP port both hosts agree on when none is configured.
	DefaultPort = 65432

	DefaultDialTimeout    = 5 * time.Second
	DefaultPollInterval   = time.Second
	DefaultMaxPayloadSize = 16 << 20
)

// Config holds transport settings shared by Send and Receiver.
type Config struct {
	logger         zerolog.Logger
	dialTimeout    time.Duration
	pollInterval   time.Duration
	maxPayloadSize int
}

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		logger:         zerolog.Nop(),
		dialTimeout:    DefaultDialTimeout,
		pollInterval:   DefaultPollInterval,
		maxPayloadSize: DefaultMaxPayloadSize,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Option configures Send and Listen.
type Option = options.Option[*Config]

// WithLogger sets the logger for connection events. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return options.NoError(func(c *Config) {
		c.logger = logger
	})
}

// WithDialTimeout bounds how long Send waits for the connection.
func WithDialTimeout(d time.Duration) Option {
	return options.New(func(c *Config) error {
		if d <= 0 {
			return fmt.Errorf("dial timeout must be positive, got %s", d)
		}
		c.dialTimeout = d

		return nil
	})
}

// WithPollInterval sets the accept deadline between context checks in Receive.
func WithPollInterval(d time.Duration) Option {
	return options.New(func(c *Config) error {
		if d <= 0 {
			return fmt.Errorf("poll interval must be positive, got %s", d)
		}
		c.pollInterval = d

		return nil
	})
}

// WithMaxPayloadSize caps the number of bytes Receive reads from one connection.
func WithMaxPayloadSize(n int) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("max payload size must be positive, got %d", n)
		}
		c.maxPayloadSize = n

		return nil
	})
}
