package options

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type listenerConfig struct {
	port     int
	poll     time.Duration
	verbose  bool
	lastCall string
}

type listenerOption = Option[*listenerConfig]

func withPort(port int) listenerOption {
	return New(func(c *listenerConfig) error {
		if port < 1 || port > 65535 {
			return errors.New("port out of range")
		}
		c.port = port
		c.lastCall = "port"

		return nil
	})
}

func withPoll(d time.Duration) listenerOption {
	return NoError(func(c *listenerConfig) {
		c.poll = d
		c.lastCall = "poll"
	})
}

func withVerbose() listenerOption {
	return NoError(func(c *listenerConfig) {
		c.verbose = true
		c.lastCall = "verbose"
	})
}

func TestOption_New(t *testing.T) {
	cfg := &listenerConfig{}

	require.NoError(t, withPort(65432).apply(cfg))
	require.Equal(t, 65432, cfg.port)

	err := withPort(0).apply(cfg)
	require.ErrorContains(t, err, "port out of range")
	require.Equal(t, 65432, cfg.port)
}

func TestOption_NoError(t *testing.T) {
	cfg := &listenerConfig{}

	require.NoError(t, withPoll(time.Second).apply(cfg))
	require.Equal(t, time.Second, cfg.poll)
	require.Equal(t, "poll", cfg.lastCall)
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &listenerConfig{}

		err := Apply(cfg, withPort(1024), withPoll(time.Second), withVerbose())
		require.NoError(t, err)
		require.Equal(t, listenerConfig{port: 1024, poll: time.Second, verbose: true, lastCall: "verbose"}, *cfg)
	})

	t.Run("later options win", func(t *testing.T) {
		cfg := &listenerConfig{}

		require.NoError(t, Apply(cfg, withPort(1024), withPort(2048)))
		require.Equal(t, 2048, cfg.port)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &listenerConfig{}

		err := Apply(cfg, withPoll(time.Second), withPort(70000), withVerbose())
		require.Error(t, err)
		require.Equal(t, time.Second, cfg.poll)
		require.False(t, cfg.verbose)
		require.Equal(t, "poll", cfg.lastCall)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &listenerConfig{}

		require.NoError(t, Apply(cfg))
		require.Equal(t, listenerConfig{}, *cfg)
	})
}

func TestOption_NonStructTarget(t *testing.T) {
	var n int
	require.NoError(t, Apply(&n, Option[*int](NoError(func(p *int) { *p = 42 }))))
	require.Equal(t, 42, n)
}
