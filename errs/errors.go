// Package errs defines the sentinel errors shared by linecode packages.
//
// Callers match them with errors.Is; packages wrap them with additional
// context using fmt.Errorf("...: %w", err).
package errs

import "errors"

// Bit sequence and signal errors.
var (
	// ErrInvalidBit is returned by strict helpers when a bit sequence contains
	// a character other than '0' or '1'.
	ErrInvalidBit = errors.New("invalid bit: expected '0' or '1'")
	// ErrInvalidLevel is returned when a sample is not exactly -1, 0 or +1.
	ErrInvalidLevel = errors.New("invalid signal level: expected -1, 0 or +1")
	// ErrNotEncoderOutput is returned when a signal does not survive a decode/encode round trip.
	ErrNotEncoderOutput = errors.New("signal is not a valid line encoder output")
	// ErrInvalidBitLength is returned when a bit sequence cannot be split into whole characters.
	ErrInvalidBitLength = errors.New("bit sequence length is not a multiple of the character width")
)

// Sample payload errors.
var (
	ErrInvalidPayloadSize = errors.New("invalid sample payload size")
	ErrInvalidEncoding    = errors.New("invalid sample encoding type")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrDecompressLimit    = errors.New("decompressed payload exceeds size limit")
)

// Frame errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid frame header size")
	ErrInvalidMagicNumber  = errors.New("invalid frame magic number")
	ErrInvalidReserved     = errors.New("invalid frame header: reserved bits must be zero")
	ErrPayloadTruncated    = errors.New("frame payload is truncated")
	ErrChecksumMismatch    = errors.New("frame payload checksum mismatch")
	ErrSampleCountMismatch = errors.New("frame sample count does not match payload")
)

// Cipher and transport errors.
var (
	ErrInvalidCipher      = errors.New("invalid cipher kind")
	ErrInvalidKey         = errors.New("invalid cipher key")
	ErrCiphertextTooShort = errors.New("encrypted message is too short")
	ErrDecryptFailed      = errors.New("error verifying encrypted data")
	ErrPayloadTooLarge    = errors.New("received payload exceeds size limit")
	ErrEmptyPayload       = errors.New("payload is empty")
)
