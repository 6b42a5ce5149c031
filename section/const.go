package section

const (
	// Bit masks for FrameFlag.Options
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0), 0=little, 1=big
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicFrameV1Opt is the version 1 magic number for signal frames.
	MagicFrameV1Opt = 0xB410
)

// offsets and sizes in the frame header
const (
	HeaderSize = 24 // fixed header size in bytes

	optionsOffset     = 0
	encodingOffset    = 2
	compressionOffset = 3
	sampleCountOffset = 4
	payloadSizeOffset = 8
	checksumOffset    = 12
	reservedOffset    = 20
)

// MaxSampleCount is the largest sample count a frame can describe.
const MaxSampleCount = 1<<32 - 1
