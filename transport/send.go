package transport

import (
	"context"
	"fmt"
	"net"

	"github.com/arloliu/linecode/errs"
)

// Send opens a TCP connection to addr, writes payload and closes the connection.
//
// The receiver treats the end of the stream as the end of the payload, so a
// single connection carries exactly one payload.
//
// Parameters:
//   - ctx: Cancels the dial and the write
//   - addr: "host:port" of the receiver
//   - payload: Bytes to transfer, must not be empty
//   - opts: Transport options
//
// Returns:
//   - error: errs.ErrEmptyPayload, option errors, or network errors
func Send(ctx context.Context, addr string, payload []byte, opts ...Option) error {
	cfg, err := newConfig(opts...)
	if err != nil {
		return err
	}

	if len(payload) == 0 {
		return errs.ErrEmptyPayload
	}

	dialer := net.Dialer{Timeout: cfg.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetWriteDeadline(aLongTimeAgo)
	})
	defer stop()

	n, err := conn.Write(payload)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fmt.Errorf("write to %s after %d bytes: %w", addr, n, err)
	}

	if tcp, ok := conn.(*net.TCPConn); ok {
		if err := tcp.CloseWrite(); err != nil {
			return fmt.Errorf("close write to %s: %w", addr, err)
		}
	}

	cfg.logger.Debug().
		Str("remote", conn.RemoteAddr().String()).
		Int("bytes", n).
		Msg("payload sent")

	return nil
}
