package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arloliu/linecode/config"
	"github.com/arloliu/linecode/internal/logger"
)

// App holds the state shared by all commands of one invocation.
type App struct {
	OutWriter io.Writer
	ErrWriter io.Writer
	InReader  io.Reader

	CfgFile  string
	LogLevel string
	Cfg      config.Config
	Log      zerolog.Logger

	overrides overrides
}

// overrides are persistent flags that win over file and environment settings.
type overrides struct {
	address        string
	port           int
	byteOrder      string
	sampleEncoding string
	compression    string
	raw            bool
	cipherKind     string
	cipherKey      string
	cipherShift    int
}

func newApp() *App {
	return &App{
		OutWriter: colorable.NewColorableStdout(),
		ErrWriter: os.Stderr,
		InReader:  os.Stdin,
		Log:       zerolog.Nop(),
	}
}

// init loads configuration and builds the logger. Called by PersistentPreRunE.
func (a *App) init(cmd *cobra.Command) error {
	if cmd.OutOrStdout() != os.Stdout {
		a.OutWriter = cmd.OutOrStdout()
	}
	if cmd.ErrOrStderr() != os.Stderr {
		a.ErrWriter = cmd.ErrOrStderr()
	}
	if cmd.InOrStdin() != os.Stdin {
		a.InReader = cmd.InOrStdin()
	}

	cfg, err := config.Read(a.CfgFile)
	if err != nil {
		return err
	}
	a.applyOverrides(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.Cfg = cfg

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if a.ErrWriter == os.Stderr {
		a.Log = logger.New(level)
	} else {
		a.Log = logger.NewWithWriter(a.ErrWriter, level)
	}

	a.Log.Debug().
		Str("config", a.CfgFile).
		Str("addr", cfg.Addr()).
		Str("cipher", cfg.Cipher.Kind).
		Msg("configuration loaded")

	return nil
}

func (a *App) applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	o := a.overrides

	if flags.Changed("log-level") {
		cfg.Log.Level = a.LogLevel
	}
	if flags.Changed("address") {
		cfg.Address = o.address
	}
	if flags.Changed("port") {
		cfg.Port = o.port
	}
	if flags.Changed("byte-order") {
		cfg.ByteOrder = o.byteOrder
	}
	if flags.Changed("encoding") {
		cfg.SampleEncoding = o.sampleEncoding
	}
	if flags.Changed("compression") {
		cfg.Compression = o.compression
	}
	if flags.Changed("raw") {
		cfg.Raw = o.raw
	}
	if flags.Changed("cipher") {
		cfg.Cipher.Kind = o.cipherKind
	}
	if flags.Changed("key") {
		cfg.Cipher.Key = o.cipherKey
	}
	if flags.Changed("shift") {
		cfg.Cipher.Shift = o.cipherShift
	}
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.OutWriter, format, args...)
}
