package main

import (
	"fmt"
	"strings"

	"github.com/arloliu/linecode"
	"github.com/arloliu/linecode/bipolar"
	"github.com/arloliu/linecode/bitstring"
	"github.com/arloliu/linecode/frame"
)

// levelGroup is the number of samples per group when printing a signal.
const levelGroup = bitstring.BitsPerByte

// formatSignal renders samples as '+', '-' and '0', grouped like octets.
// Anything that is not a line level, NaN included, renders as '?'.
func formatSignal(sig bipolar.Signal) string {
	var sb strings.Builder
	sb.Grow(len(sig) + len(sig)/levelGroup)

	for i, v := range sig {
		if i > 0 && i%levelGroup == 0 {
			sb.WriteByte(' ')
		}
		switch v {
		case bipolar.LevelPositive:
			sb.WriteByte('+')
		case bipolar.LevelNegative:
			sb.WriteByte('-')
		case bipolar.LevelZero:
			sb.WriteByte('0')
		default:
			sb.WriteByte('?')
		}
	}

	return sb.String()
}

func formatStats(s bipolar.SignalStats) string {
	return fmt.Sprintf("samples=%d marks=%d (+%d/-%d) zeros=%d longest_zero_run=%d dc=%g b00v=%d 000v=%d",
		s.Samples, s.Marks(), s.Positive, s.Negative, s.Zeros, s.LongestZeroRun, s.DCBalance, s.B00V, s.V000)
}

// marshal serializes sig according to the configured wire format.
func (a *App) marshal(sig bipolar.Signal) ([]byte, error) {
	if a.Cfg.Raw {
		return linecode.MarshalRaw(sig), nil
	}

	opts, err := a.Cfg.FrameOptions()
	if err != nil {
		return nil, err
	}

	return linecode.Marshal(sig, opts...)
}

// encodeMessage line codes msg with the configured transform, printing every stage.
// The intermediate stages are recovered from the signal, so what is printed is
// what goes on the wire.
func (a *App) encodeMessage(msg []byte) (bipolar.Signal, error) {
	tr, err := a.Cfg.Transform()
	if err != nil {
		return nil, err
	}

	sig, err := linecode.EncodeMessage(msg, tr)
	if err != nil {
		return nil, err
	}
	bits := bipolar.Decode(sig)

	a.printf("Message:     %s\n", msg)
	if ciphertext, err := bitstring.ToBytes(bits); err == nil {
		a.printf("Transformed: %q\n", ciphertext)
	}
	a.printf("Binary:      %s\n", bitstring.Group(bits, bitstring.BitsPerByte))
	a.printf("Signal:      %s\n", formatSignal(sig))
	a.printf("Stats:       %s\n", formatStats(bipolar.Stats(sig)))

	return sig, nil
}

// decodePayload parses wire bytes and reverses the message pipeline, printing every stage.
func (a *App) decodePayload(data []byte) error {
	kind := "raw"
	if frame.IsFramed(data) {
		kind = "frame"
	}
	a.Log.Debug().Str("format", kind).Int("bytes", len(data)).Msg("decoding payload")

	sig, err := linecode.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("unmarshal %s payload: %w", kind, err)
	}

	if err := bipolar.Verify(sig); err != nil {
		a.Log.Warn().Err(err).Msg("signal does not match encoder output")
	}

	bits := bipolar.Decode(sig)
	a.printf("Received:    %d bytes (%s)\n", len(data), kind)
	a.printf("Signal:      %s\n", formatSignal(sig))
	a.printf("Stats:       %s\n", formatStats(bipolar.Stats(sig)))
	a.printf("Binary:      %s\n", bitstring.Group(bits, bitstring.BitsPerByte))
	if ciphertext, err := bitstring.ToBytes(bits); err == nil {
		a.printf("Transformed: %q\n", ciphertext)
	}

	tr, err := a.Cfg.Transform()
	if err != nil {
		return err
	}
	msg, err := linecode.DecodeMessage(sig, tr)
	if err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	a.printf("Message:     %s\n", msg)

	return nil
}
