// Package config loads the settings of the linecode command line tool.
//
// Settings come from built-in defaults, then an optional YAML file, then
// environment variables. Command line flags are applied by the caller last.
package config

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	yaml "gopkg.in/yaml.v3"

	"github.com/arloliu/linecode/cipher"
	"github.com/arloliu/linecode/endian"
	"github.com/arloliu/linecode/format"
	"github.com/arloliu/linecode/frame"
	"github.com/arloliu/linecode/internal/logger"
	"github.com/arloliu/linecode/transport"
)

// Environment variables that override file settings.
const (
	EnvLogLevel = "LINECODE_LOG_LEVEL"
	EnvAddress  = "LINECODE_ADDRESS"
	EnvPort     = "LINECODE_PORT"
	EnvCipher   = "LINECODE_CIPHER"
	EnvKey      = "LINECODE_KEY"
)

const DefaultAddress = "127.0.0.1"

type Cipher struct {
	Kind  string `yaml:"kind"`
	Key   string `yaml:"key"`
	Shift int    `yaml:"shift"`
}

type Log struct {
	Level string `yaml:"level"`
}

type Config struct {
	// Address is the peer host for send and the bind host for receive.
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`

	ByteOrder      string `yaml:"byte_order"`
	SampleEncoding string `yaml:"sample_encoding"`
	Compression    string `yaml:"compression"`
	// Raw sends headerless little-endian float32 samples instead of a frame.
	Raw bool `yaml:"raw"`

	Cipher Cipher `yaml:"cipher"`
	Log    Log    `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Address:        DefaultAddress,
		Port:           transport.DefaultPort,
		ByteOrder:      "little",
		SampleEncoding: "raw",
		Compression:    "none",
		Cipher:         Cipher{Kind: cipher.KindIdentity.String()},
		Log:            Log{Level: "info"},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Read is Load without validation, for callers that apply further overrides.
//
// An empty path skips the file. Keys unknown to Config are rejected.
func Read(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("open config file: %w", err)
		}
		defer file.Close()

		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("decode config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvAddress); ok && v != "" {
		c.Address = v
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		c.Port = port
	}
	if v, ok := lookup(EnvCipher); ok && v != "" {
		c.Cipher.Kind = v
	}
	if v, ok := lookup(EnvKey); ok && v != "" {
		c.Cipher.Key = v
	}

	return nil
}

// Validate checks that every field parses.
func (c Config) Validate() error {
	var errList []error

	if strings.TrimSpace(c.Address) == "" {
		errList = append(errList, errors.New("address must not be empty"))
	}
	if c.Port < 1 || c.Port > 65535 {
		errList = append(errList, fmt.Errorf("port %d out of range", c.Port))
	}
	if _, err := endian.ParseByteOrder(c.ByteOrder); err != nil {
		errList = append(errList, err)
	}
	if _, err := format.ParseEncodingType(c.SampleEncoding); err != nil {
		errList = append(errList, err)
	}
	if _, err := format.ParseCompressionType(c.Compression); err != nil {
		errList = append(errList, err)
	}
	if _, err := c.Transform(); err != nil {
		errList = append(errList, err)
	}
	if _, err := c.LogLevel(); err != nil {
		errList = append(errList, err)
	}

	if len(errList) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errList...))
	}

	return nil
}

// Addr returns "address:port".
func (c Config) Addr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

// FrameOptions converts the payload settings into frame encoder options.
func (c Config) FrameOptions() ([]frame.EncoderOption, error) {
	engine, err := endian.ParseByteOrder(c.ByteOrder)
	if err != nil {
		return nil, err
	}
	enc, err := format.ParseEncodingType(c.SampleEncoding)
	if err != nil {
		return nil, err
	}
	comp, err := format.ParseCompressionType(c.Compression)
	if err != nil {
		return nil, err
	}

	return []frame.EncoderOption{
		frame.WithByteOrder(engine),
		frame.WithSampleEncoding(enc),
		frame.WithCompression(comp),
	}, nil
}

// Transform builds the configured message transform.
func (c Config) Transform() (cipher.Transform, error) {
	return cipher.New(c.Cipher.Kind, c.Cipher.Key, c.Cipher.Shift)
}

func (c Config) LogLevel() (zerolog.Level, error) {
	return logger.ParseLevel(c.Log.Level)
}
