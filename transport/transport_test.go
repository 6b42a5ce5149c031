package transport

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/linecode/errs"
)

func newTestReceiver(t *testing.T, opts ...Option) *Receiver {
	t.Helper()

	opts = append([]Option{
		WithLogger(zerolog.New(zerolog.NewTestWriter(t))),
		WithPollInterval(20 * time.Millisecond),
	}, opts...)

	r, err := Listen("127.0.0.1:0", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	return r
}

func TestSendReceive(t *testing.T) {
	r := newTestReceiver(t)
	payload := bytes.Repeat([]byte{0x00, 0x00, 0x80, 0x3f}, 10000)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- Send(ctx, r.Addr().String(), payload)
	}()

	got, err := r.Receive(ctx)
	require.NoError(t, err)
	require.Equal(t, payload, got)
	require.NoError(t, <-errCh)
}

func TestReceive_SkipsEmptyConnection(t *testing.T) {
	r := newTestReceiver(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		conn, err := net.Dial("tcp", r.Addr().String())
		if err == nil {
			_ = conn.Close()
		}
		_ = Send(ctx, r.Addr().String(), []byte("second"))
	}()

	got, err := r.Receive(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte("second"), got)
}

func TestReceive_ContextCancel(t *testing.T) {
	r := newTestReceiver(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := r.Receive(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), 2*time.Second)
}

func TestReceive_PayloadTooLarge(t *testing.T) {
	r := newTestReceiver(t, WithMaxPayloadSize(8))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		_ = Send(ctx, r.Addr().String(), make([]byte, 9))
	}()

	_, err := r.Receive(ctx)
	require.ErrorIs(t, err, errs.ErrPayloadTooLarge)
}

func TestReceive_ExactLimit(t *testing.T) {
	r := newTestReceiver(t, WithMaxPayloadSize(8))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		_ = Send(ctx, r.Addr().String(), []byte("12345678"))
	}()

	got, err := r.Receive(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte("12345678"), got)
}

func TestReceive_Closed(t *testing.T) {
	r := newTestReceiver(t)
	require.NoError(t, r.Close())

	_, err := r.Receive(context.Background())
	require.Error(t, err)
}

func TestSend_Errors(t *testing.T) {
	ctx := context.Background()

	err := Send(ctx, "127.0.0.1:1", nil)
	require.ErrorIs(t, err, errs.ErrEmptyPayload)

	r := newTestReceiver(t)
	addr := r.Addr().String()
	require.NoError(t, r.Close())

	err = Send(ctx, addr, []byte("x"), WithDialTimeout(time.Second))
	require.Error(t, err)
}

func TestOptions_Validation(t *testing.T) {
	_, err := Listen("127.0.0.1:0", WithPollInterval(0))
	require.Error(t, err)

	_, err = Listen("127.0.0.1:0", WithMaxPayloadSize(-1))
	require.Error(t, err)

	err = Send(context.Background(), "127.0.0.1:1", []byte("x"), WithDialTimeout(0))
	require.Error(t, err)
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := newConfig()
	require.NoError(t, err)
	require.Equal(t, DefaultDialTimeout, cfg.dialTimeout)
	require.Equal(t, DefaultPollInterval, cfg.pollInterval)
	require.Equal(t, DefaultMaxPayloadSize, cfg.maxPayloadSize)
}
