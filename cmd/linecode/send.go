package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/linecode/transport"
)

func newSendCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "send MESSAGE...",
		Short: "Encode a message and send it to a receiver",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := strings.Join(args, " ")
			if msg == "" {
				return errors.New("message must not be empty")
			}

			sig, err := a.encodeMessage([]byte(msg))
			if err != nil {
				return err
			}

			data, err := a.marshal(sig)
			if err != nil {
				return err
			}

			addr := a.Cfg.Addr()
			if err := transport.Send(cmd.Context(), addr, data, transport.WithLogger(a.Log)); err != nil {
				return err
			}

			a.Log.Info().Str("addr", addr).Int("bytes", len(data)).Bool("raw", a.Cfg.Raw).Msg("message sent")

			return nil
		},
	}
}
