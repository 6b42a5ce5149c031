package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/linecode/bipolar"
)

func newEncodeCmd(a *App) *cobra.Command {
	var (
		bits    string
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "encode [MESSAGE...]",
		Short: "Encode a message or bit sequence and print the signal",
		Long: `Encode a message or bit sequence and print the signal.

The message is transformed with the configured cipher, mapped to 8 bits per
byte and line encoded. With --bits the bit sequence is encoded directly.
With --out the wire payload is written to a file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var sig bipolar.Signal
			switch {
			case bits != "":
				if len(args) > 0 {
					return errors.New("--bits and MESSAGE are mutually exclusive")
				}
				var err error
				sig, err = bipolar.EncodeStrict(strings.Join(strings.Fields(bits), ""))
				if err != nil {
					return err
				}
				a.printf("Signal:      %s\n", formatSignal(sig))
				a.printf("Stats:       %s\n", formatStats(bipolar.Stats(sig)))
			case len(args) > 0:
				var err error
				sig, err = a.encodeMessage([]byte(strings.Join(args, " ")))
				if err != nil {
					return err
				}
			default:
				return errors.New("a MESSAGE or --bits is required")
			}

			if outFile == "" {
				return nil
			}

			data, err := a.marshal(sig)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outFile, data, 0o644); err != nil {
				return fmt.Errorf("write payload: %w", err)
			}
			a.Log.Info().Str("file", outFile).Int("bytes", len(data)).Bool("raw", a.Cfg.Raw).Msg("payload written")

			return nil
		},
	}

	cmd.Flags().StringVar(&bits, "bits", "", "bit sequence to encode instead of a message")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the wire payload to this file")

	return cmd
}
