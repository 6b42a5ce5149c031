// Package endian provides byte order utilities for the signal wire format.
//
// The EndianEngine interface combines binary.ByteOrder and binary.AppendByteOrder
// so sample encoders can both patch fixed offsets and append to growing buffers.
// The reference wire format carries float32 samples in the sender's native byte
// order, which is little-endian on every platform the original hosts ran on;
// frames record their byte order explicitly in the header.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// engines are immutable and stateless.
package endian

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the host byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 stores 0x00 first on little-endian hosts.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNativeEngine returns the engine matching the host byte order.
func GetNativeEngine() EndianEngine {
	if IsNativeLittleEndian() {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// ParseByteOrder maps a configuration value to an engine.
//
// Accepted values are "little", "big" and "native" (case-insensitive).
// An empty string selects little-endian.
func ParseByteOrder(s string) (EndianEngine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	case "native":
		return GetNativeEngine(), nil
	default:
		return nil, fmt.Errorf("unknown byte order: %q", s)
	}
}

// AppendFloat32 appends the IEEE-754 bits of v to buf using the engine's byte order.
func AppendFloat32(engine EndianEngine, buf []byte, v float32) []byte {
	return engine.AppendUint32(buf, math.Float32bits(v))
}

// PutFloat32 writes the IEEE-754 bits of v into b[0:4].
func PutFloat32(engine EndianEngine, b []byte, v float32) {
	engine.PutUint32(b, math.Float32bits(v))
}

// Float32 reads a float32 from b[0:4] without any rounding.
func Float32(engine EndianEngine, b []byte) float32 {
	return math.Float32frombits(engine.Uint32(b))
}
