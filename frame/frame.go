package frame

import (
	"github.com/arloliu/linecode/bipolar"
	"github.com/arloliu/linecode/endian"
	"github.com/arloliu/linecode/format"
	"github.com/arloliu/linecode/section"
)

// Frame is a decoded signal together with the header it was carried in.
type Frame struct {
	header section.FrameHeader
	signal bipolar.Signal
}

// Header returns the parsed frame header.
func (f Frame) Header() section.FrameHeader {
	return f.header
}

// Signal returns the decoded samples.
func (f Frame) Signal() bipolar.Signal {
	return f.signal
}

// Len returns the number of samples.
func (f Frame) Len() int {
	return len(f.signal)
}

func (f Frame) SampleEncoding() format.EncodingType {
	return f.header.Flag.SampleEncoding()
}

func (f Frame) Compression() format.CompressionType {
	return f.header.Flag.Compression()
}

func (f Frame) Engine() endian.EndianEngine {
	return f.header.Flag.GetEndianEngine()
}
