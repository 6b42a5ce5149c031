package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/arloliu/linecode/transport"
)

func newReceiveCmd(a *App) *cobra.Command {
	var (
		timeout    time.Duration
		maxPayload int
	)

	cmd := &cobra.Command{
		Use:   "receive",
		Short: "Wait for one message, decode it and print every stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel func()
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			r, err := transport.Listen(a.Cfg.Addr(),
				transport.WithLogger(a.Log),
				transport.WithMaxPayloadSize(maxPayload),
			)
			if err != nil {
				return err
			}
			defer r.Close()

			data, err := r.Receive(ctx)
			if err != nil {
				return err
			}

			return a.decodePayload(data)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "give up after this long, 0 waits forever")
	cmd.Flags().IntVar(&maxPayload, "max-payload", transport.DefaultMaxPayloadSize, "largest payload accepted in bytes")

	return cmd
}
