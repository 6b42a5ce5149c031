package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/arloliu/linecode/errs"
)

// aLongTimeAgo is a deadline in the past that unblocks pending I/O immediately.
var aLongTimeAgo = time.Unix(1, 0)

// Receiver accepts single-payload connections on a TCP listener.
//
// A Receiver is not safe for concurrent Receive calls.
type Receiver struct {
	ln  *net.TCPListener
	cfg *Config
}

// Listen binds a TCP listener on addr.
//
// Parameters:
//   - addr: "host:port" to bind; port 0 picks a free port (see Addr)
//   - opts: Transport options
//
// Returns:
//   - *Receiver: Bound receiver, which must be closed by the caller
//   - error: Option errors or bind errors
func Listen(addr string, opts ...Option) (*Receiver, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", addr, err)
	}

	ln, err := net.ListenTCP("tcp", tcpAddr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}

	cfg.logger.Info().Str("addr", ln.Addr().String()).Msg("listening")

	return &Receiver{ln: ln, cfg: cfg}, nil
}

// Addr returns the bound address.
func (r *Receiver) Addr() net.Addr {
	return r.ln.Addr()
}

// Close stops listening.
func (r *Receiver) Close() error {
	return r.ln.Close()
}

// Receive waits for the next connection that carries data and returns its
// payload.
//
// Accept uses a deadline of the configured poll interval so cancellation of
// ctx is observed between attempts. Connections that close without sending
// any byte are logged and skipped.
//
// Returns:
//   - []byte: Everything the sender wrote before closing
//   - error: ctx.Err(), errs.ErrPayloadTooLarge, or network errors
func (r *Receiver) Receive(ctx context.Context) ([]byte, error) {
	log := r.cfg.logger

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := r.ln.SetDeadline(time.Now().Add(r.cfg.pollInterval)); err != nil {
			return nil, fmt.Errorf("set accept deadline: %w", err)
		}

		conn, err := r.ln.AcceptTCP()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				log.Debug().Msg("waiting for connection")
				continue
			}

			return nil, fmt.Errorf("accept: %w", err)
		}

		remote := conn.RemoteAddr().String()
		log.Info().Str("remote", remote).Msg("connected")

		data, err := r.read(ctx, conn)
		_ = conn.Close()
		if err != nil {
			return nil, err
		}

		if len(data) == 0 {
			log.Warn().Str("remote", remote).Msg("connection closed without data")
			continue
		}

		log.Info().Str("remote", remote).Int("bytes", len(data)).Msg("payload received")

		return data, nil
	}
}

func (r *Receiver) read(ctx context.Context, conn *net.TCPConn) ([]byte, error) {
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetReadDeadline(aLongTimeAgo)
	})
	defer stop()

	limit := int64(r.cfg.maxPayloadSize)
	data, err := io.ReadAll(io.LimitReader(conn, limit+1))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		return nil, fmt.Errorf("read from %s: %w", conn.RemoteAddr(), err)
	}

	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", errs.ErrPayloadTooLarge, limit)
	}

	return data, nil
}
