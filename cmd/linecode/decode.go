package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/linecode/bipolar"
	"github.com/arloliu/linecode/bitstring"
)

func newDecodeCmd(a *App) *cobra.Command {
	var (
		inFile string
		levels string
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a wire payload from a file or stdin",
		Long: `Decode a wire payload from a file or stdin.

Both framed payloads and headerless little-endian float32 buffers are
accepted. With --levels a signal written as '+', '-' and '0' characters is
decoded to bits instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if levels != "" {
				sig, err := parseLevels(levels)
				if err != nil {
					return err
				}
				a.printf("Binary:      %s\n", bitstring.Group(bipolar.Decode(sig), bitstring.BitsPerByte))

				return nil
			}

			var (
				data []byte
				err  error
			)
			if inFile == "" || inFile == "-" {
				data, err = io.ReadAll(a.InReader)
			} else {
				data, err = os.ReadFile(inFile)
			}
			if err != nil {
				return fmt.Errorf("read payload: %w", err)
			}
			if len(data) == 0 {
				return errors.New("empty payload")
			}

			return a.decodePayload(data)
		},
	}

	cmd.Flags().StringVarP(&inFile, "in", "i", "", "payload file, stdin if empty or -")
	cmd.Flags().StringVar(&levels, "levels", "", "signal as '+', '-' and '0' characters")

	return cmd
}

// parseLevels is the inverse of formatSignal; whitespace is ignored.
func parseLevels(s string) (bipolar.Signal, error) {
	sig := make(bipolar.Signal, 0, len(s))
	for i, r := range s {
		switch r {
		case '+':
			sig = append(sig, bipolar.LevelPositive)
		case '-':
			sig = append(sig, bipolar.LevelNegative)
		case '0':
			sig = append(sig, bipolar.LevelZero)
		case ' ', '\t', '\n', '\r':
		default:
			return nil, fmt.Errorf("invalid level %q at offset %d", r, i)
		}
	}

	return sig, nil
}
