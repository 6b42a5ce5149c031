package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "linecode",
		Short: "Encode, transmit and decode messages as a bipolar line signal",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.CfgFile, "config", "", "YAML config file")
	flags.StringVar(&a.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.overrides.address, "address", "", "peer address for send, bind address for receive")
	flags.IntVarP(&a.overrides.port, "port", "p", 0, "TCP port")
	flags.StringVar(&a.overrides.byteOrder, "byte-order", "", "frame byte order (little, big, native)")
	flags.StringVar(&a.overrides.sampleEncoding, "encoding", "", "frame sample encoding (raw, packed)")
	flags.StringVar(&a.overrides.compression, "compression", "", "frame compression (none, zstd, s2, lz4)")
	flags.BoolVar(&a.overrides.raw, "raw", false, "write headerless little-endian float32 samples instead of a frame")
	flags.StringVar(&a.overrides.cipherKind, "cipher", "", "message transform (identity, caesar, secretbox)")
	flags.StringVar(&a.overrides.cipherKey, "key", "", "secretbox key, 64 hex characters or a passphrase")
	flags.IntVar(&a.overrides.cipherShift, "shift", 0, "caesar byte shift")

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newSendCmd(a),
		newReceiveCmd(a),
	)

	return root
}
