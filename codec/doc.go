// Package codec implements cydec's two public facades — IntegerCodec and
// FloatCodec — over the transform chain in internal/xform, the fixed-point
// quantizer in package encoding, the container header in package section,
// and the backing compressors in package compress.
//
// # Basic usage
//
// An IntegerCodec handles the four integer element types plus raw bytes:
//
//	ic, err := codec.NewIntegerCodec()
//	blob, err := ic.EncodeI64(samples)
//	back, err := ic.DecodeI64(blob)
//
// A FloatCodec quantizes before delegating to the same transform chain:
//
//	fc, err := codec.NewFloatCodec()
//	blob, err := fc.EncodeF64(samples, 0) // 0 = use codec.DefaultF64Scale
//	back, err := fc.DecodeF64(blob, 0)    // 0 = use the blob's own header scale
//
// Both facades expose EncodeMany*/DecodeMany* batch operations that preserve
// input order and are byte-identical to calling the single-item operation
// in a loop, regardless of whether the batch runs inline or fans out across
// goroutines.
//
// # Configuration
//
// Construction takes functional options: WithLevel, WithDefaultF64Scale,
// WithDefaultF32Scale, WithAlgorithm. A codec's configuration is immutable
// once built and safe to share across concurrent callers.
package codec
