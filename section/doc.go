// Package section defines the binary header of a signal frame.
//
// A frame is a 24-byte FrameHeader followed by the (optionally compressed)
// sample payload. The header records the payload byte order, sample encoding,
// compression, sample count, payload size and an xxHash64 checksum of the
// uncompressed payload, which makes frames self-describing on the wire.
package section
