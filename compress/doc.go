// Package compress provides compression codecs for frame payloads.
//
// Compression is applied to the encoded sample payload of a frame. Raw float32
// payloads of line signals are highly repetitive (only three distinct 4-byte
// patterns), so general-purpose compressors shrink them considerably; packed
// payloads benefit less.
//
// Every algorithm implements Codec, the union of Compressor and Decompressor,
// and is looked up by its format.CompressionType with GetCodec.
//
// # Supported Algorithms
//
//   - format.CompressionNone: NoOpCompressor, returns data unchanged.
//   - format.CompressionZstd: ZstdCompressor, best ratio. Pure Go
//     (klauspost/compress) by default; built with the "gozstd" tag and cgo
//     enabled it uses valyala/gozstd instead. Both produce standard frames.
//   - format.CompressionS2: S2Compressor (klauspost/compress/s2), fast.
//   - format.CompressionLZ4: LZ4Compressor (pierrec/lz4 block format with a
//     length prefix), fast decompression.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// # Thread Safety
//
// All built-in codecs are safe for concurrent use; stateful encoders and
// decoders are taken from sync.Pool per call.
package compress
