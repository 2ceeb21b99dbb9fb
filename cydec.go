// Package cydec compresses homogeneous numeric time-series arrays into
// compact, self-describing binary blobs and decompresses them back.
//
// It exploits the observation that time-series values evolve slowly:
// consecutive samples share many leading bits, deltas are small, and runs
// of identical values are common. The pipeline folds signed values to
// unsigned via zigzag, takes a wrapping first difference, zigzags the
// deltas again, packs the result little-endian, and hands the bytes to a
// general-purpose backing compressor.
//
// # Basic usage
//
// Integers, unsigned integers, and raw byte arrays go through IntegerCodec:
//
//	ic, err := cydec.NewIntegerCodec()
//	blob, err := ic.EncodeI64([]int64{100, 101, 102, 103, 104})
//	samples, err := ic.DecodeI64(blob)
//
// Floating-point arrays go through FloatCodec, which quantizes to a
// fixed-point integer at a configurable scale before running the same
// transform chain:
//
//	fc, err := cydec.NewFloatCodec()
//	blob, err := fc.EncodeF64([]float64{1.0, 2.0, 3.0}, 0) // 0 = DefaultF64Scale
//	samples, err := fc.DecodeF64(blob, 0)                  // 0 = use the blob's own scale
//
// Both codecs expose EncodeMany*/DecodeMany* batch operations, which
// preserve input order and are byte-identical to looping over the
// single-item operation:
//
//	blobs, err := ic.EncodeManyI64(arraysOfInt64)
//	back, err := ic.DecodeManyI64(blobs)
//
// # Error handling
//
// Every error an encode or decode call returns wraps one of the sentinel kinds in
// package errs (ErrBadMagic, ErrBadVersion, ErrBadCodecID, ErrWrongType,
// ErrTruncatedBlob, ErrDecompressionFailure, ErrQuantizationOverflow,
// ErrMalformedPayload), so callers can classify failures with errors.Is
// regardless of the exact message text.
//
// # Concurrency
//
// An IntegerCodec or FloatCodec is immutable after construction and safe to share across
// concurrent callers. Encode/decode calls never perform I/O and hold no
// lock observable to the caller.
package cydec

import "github.com/cydec/cydec/codec"

// IntegerCodec encodes and decodes i64, u64, i32, u32, and raw byte sample
// arrays.
type IntegerCodec = codec.IntegerCodec

// FloatCodec encodes and decodes f64 and f32 sample arrays via fixed-point
// quantization.
type FloatCodec = codec.FloatCodec

// Option configures a codec at construction time.
type Option = codec.Option

// DefaultF64Scale is the fixed-point multiplier EncodeF64 uses when the
// caller does not supply one (unless overridden with WithDefaultF64Scale).
// DecodeF64 without a scale uses the blob's header scale instead.
const DefaultF64Scale = codec.DefaultF64Scale

// DefaultF32Scale is the fixed-point multiplier EncodeF32 uses when the
// caller does not supply one (unless overridden with WithDefaultF32Scale).
// DecodeF32 without a scale uses the blob's header scale instead.
const DefaultF32Scale = codec.DefaultF32Scale

// NewIntegerCodec builds an IntegerCodec from the given options. See
// codec.WithLevel, codec.WithAlgorithm.
func NewIntegerCodec(opts ...Option) (*IntegerCodec, error) {
	return codec.NewIntegerCodec(opts...)
}

// NewFloatCodec builds a FloatCodec from the given options. See
// codec.WithLevel, codec.WithDefaultF64Scale, codec.WithDefaultF32Scale,
// codec.WithAlgorithm.
func NewFloatCodec(opts ...Option) (*FloatCodec, error) {
	return codec.NewFloatCodec(opts...)
}

// WithLevel sets the backing compressor's level.
func WithLevel(level int) Option { return codec.WithLevel(level) }

// WithDefaultF64Scale overrides the default f64 quantization scale.
func WithDefaultF64Scale(scale float64) Option { return codec.WithDefaultF64Scale(scale) }

// WithDefaultF32Scale overrides the default f32 quantization scale.
func WithDefaultF32Scale(scale float64) Option { return codec.WithDefaultF32Scale(scale) }
