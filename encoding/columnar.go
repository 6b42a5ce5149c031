package encoding

import "iter"

// ColumnarEncoder appends values of type T to an internal pooled buffer.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next call to Write, WriteSlice, or Finish.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the size in bytes of the encoded values.
	Size() int

	// Finish returns buffer resources to the pool.
	//
	// After calling Finish(), the encoder is no longer usable. Copy the result of
	// Bytes() before calling it:
	//
	//	encoder := NewSampleRawEncoder(engine)
	//	defer encoder.Finish()
	//
	//	encoder.WriteSlice(signal)
	//	payload := bytes.Clone(encoder.Bytes())
	Finish()

	// Write encodes a single value.
	Write(data T)

	// WriteSlice encodes a slice of values.
	WriteSlice(values []T)
}

type ColumnarDecoder[T comparable] interface {
	// All returns an iterator over the values encoded in data.
	//
	// The count parameter specifies the expected number of values. If the data
	// is malformed or too short, the iterator may yield fewer values.
	All(data []byte, count int) iter.Seq[T]

	// At retrieves the value at the zero-based index.
	//
	// The second return value is false if the index is out of bounds or the
	// value cannot be decoded.
	At(data []byte, index int, count int) (T, bool)

	// Decode returns all count values, or an error if data does not hold
	// exactly count valid values.
	Decode(data []byte, count int) ([]T, error)
}
