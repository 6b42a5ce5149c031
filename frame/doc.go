// Package frame wraps an encoded line signal in a self-describing container.
//
// A frame is a section.FrameHeader followed by the sample payload. The header
// records the payload byte order, the sample encoding (raw float32 or packed
// 2-bit levels), the compression algorithm, the sample count and an xxHash64
// checksum of the uncompressed payload.
//
// # Encoding
//
//	enc, err := frame.NewEncoder(
//	    frame.WithSampleEncoding(format.TypePacked),
//	    frame.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//	    return err
//	}
//	data, err := enc.Encode(bipolar.Encode("1000010000"))
//
// # Decoding
//
//	f, err := frame.Decode(data)
//	if err != nil {
//	    return err
//	}
//	bits := bipolar.Decode(f.Signal())
//
// Receivers that must also accept the headerless float32 buffers of older
// senders can call IsFramed first and fall back to a raw decode.
package frame
